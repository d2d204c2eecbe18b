package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Trip struct {
	ID          int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(150);not null" json:"name"`
	Destination string          `gorm:"type:varchar(255)" json:"destination"`
	Description *string         `gorm:"type:text" json:"description"`
	TripDate    *Date           `json:"tripDate"`
	Cost        decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"cost"`
	CampID      *int            `gorm:"index" json:"campId"`
	Camp        *Camp           `gorm:"foreignKey:CampID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

type TripPayload struct {
	Name        string          `json:"name" valid:"required~Trip name is required"`
	Destination string          `json:"destination"`
	Description *string         `json:"description"`
	TripDate    string          `json:"tripDate"`
	Cost        decimal.Decimal `json:"cost" valid:"-"`
	CampID      *int            `json:"campId"`
}

type TripRepo interface {
	GetAllTrips(ctx context.Context) (*[]Trip, error)
	GetTripByID(ctx context.Context, id int) (*Trip, error)
	// GetTripsByIDs returns only the trips that exist; unknown ids are skipped.
	GetTripsByIDs(ctx context.Context, ids []int) (*[]Trip, error)
	CreateTrip(ctx context.Context, trip *Trip) error
}

type TripUseCase interface {
	GetAllTrips(ctx context.Context) (*[]Trip, error)
	GetTripByID(ctx context.Context, id int) (*Trip, error)
	CreateTrip(ctx context.Context, req *TripPayload) (*Trip, error)
}
