package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Date is a calendar date. It is stored as a DATE column through
// datatypes.Date and travels as "YYYY-MM-DD" in JSON.
type Date datatypes.Date

func (d Date) Value() (driver.Value, error) {
	return datatypes.Date(d).Value()
}

func (d *Date) Scan(value interface{}) error {
	return (*datatypes.Date)(d).Scan(value)
}

func (Date) GormDataType() string {
	return datatypes.Date{}.GormDataType()
}

func (d Date) String() string {
	return time.Time(d).Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("date %q is not in %s format: %w", s, DateLayout, err)
	}
	*d = Date(t)
	return nil
}
