package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Camp struct {
	ID          int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(150);not null" json:"name"`
	Location    string          `gorm:"type:varchar(255)" json:"location"`
	Description *string         `gorm:"type:text" json:"description"`
	StartDate   *Date           `json:"startDate"`
	EndDate     *Date           `json:"endDate"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	Capacity    int             `gorm:"not null;default:0" json:"capacity"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

type CampPayload struct {
	Name        string          `json:"name" valid:"required~Camp name is required"`
	Location    string          `json:"location"`
	Description *string         `json:"description"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	Price       decimal.Decimal `json:"price" valid:"-"`
	Capacity    int             `json:"capacity"`
}

type CampRepo interface {
	GetAllCamps(ctx context.Context) (*[]Camp, error)
	GetCampByID(ctx context.Context, id int) (*Camp, error)
	ExistsCamp(ctx context.Context, id int) (bool, error)
	CreateCamp(ctx context.Context, camp *Camp) error
}

type CampUseCase interface {
	GetAllCamps(ctx context.Context) (*[]Camp, error)
	GetCampByID(ctx context.Context, id int) (*Camp, error)
	CreateCamp(ctx context.Context, req *CampPayload) (*Camp, error)
}
