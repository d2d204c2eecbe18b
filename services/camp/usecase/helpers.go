package usecase

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"ecamp/domain"

	"github.com/asaskevich/govalidator"
)

func isBlank(s string) bool {
	return govalidator.IsNull(strings.TrimSpace(s))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// parseDate reads a YYYY-MM-DD calendar date. A blank value yields nil.
func parseDate(value string) (*domain.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return nil, err
	}

	d := domain.Date(t)
	return &d, nil
}

// parseID accepts a JSON number or a numeric string.
func parseID(v any) (int, error) {
	switch id := v.(type) {
	case float64:
		if id != math.Trunc(id) || id > math.MaxInt32 || id < math.MinInt32 {
			return 0, fmt.Errorf("id %v is not an integer", id)
		}
		return int(id), nil
	case int:
		return id, nil
	case int64:
		return int(id), nil
	case json.Number:
		return strconv.Atoi(id.String())
	case string:
		return strconv.Atoi(strings.TrimSpace(id))
	default:
		return 0, fmt.Errorf("unsupported id type %T", v)
	}
}
