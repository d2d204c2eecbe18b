package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const (
	RegistrationPending   = "PENDING"
	RegistrationConfirmed = "CONFIRMED"
	RegistrationCancelled = "CANCELLED"
)

func IsValidRegistrationStatus(status string) bool {
	switch status {
	case RegistrationPending, RegistrationConfirmed, RegistrationCancelled:
		return true
	}
	return false
}

// Registration links one child to one camp. The (child_id, camp_id) pair is unique.
type Registration struct {
	ID               int             `gorm:"primaryKey;autoIncrement" json:"id"`
	RegistrationDate time.Time       `gorm:"not null" json:"registrationDate"`
	TotalCost        decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"totalCost"`
	Status           string          `gorm:"type:varchar(10);not null;default:PENDING" json:"status"`
	ChildID          int             `gorm:"not null;uniqueIndex:idx_registrations_child_camp,priority:1" json:"childId"`
	Child            Child           `gorm:"foreignKey:ChildID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CampID           int             `gorm:"not null;uniqueIndex:idx_registrations_child_camp,priority:2;index" json:"campId"`
	Camp             Camp            `gorm:"foreignKey:CampID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Trips            []Trip          `gorm:"many2many:registration_trips;constraint:OnDelete:CASCADE" json:"-"`
}

// RegistrationPayload keeps ids loosely typed so that non-numeric input can be
// told apart from missing input.
type RegistrationPayload struct {
	ChildID any     `json:"childId"`
	CampID  any     `json:"campId"`
	Status  *string `json:"status"`
	TripIDs []any   `json:"tripIds"`
}

// RegistrationDTO renders a registration with its child, camp and trips and no
// back-references.
type RegistrationDTO struct {
	ID               int             `json:"id"`
	RegistrationDate time.Time       `json:"registrationDate"`
	TotalCost        decimal.Decimal `json:"totalCost"`
	Status           string          `json:"status"`
	Child            ChildDTO        `json:"child"`
	Camp             Camp            `json:"camp"`
	Trips            []Trip          `json:"trips"`
}

func NewRegistrationDTO(r *Registration) RegistrationDTO {
	trips := r.Trips
	if trips == nil {
		trips = []Trip{}
	}

	return RegistrationDTO{
		ID:               r.ID,
		RegistrationDate: r.RegistrationDate,
		TotalCost:        r.TotalCost,
		Status:           r.Status,
		Child:            NewChildDTO(&r.Child),
		Camp:             r.Camp,
		Trips:            trips,
	}
}

func NewRegistrationDTOList(registrations []Registration) []RegistrationDTO {
	list := make([]RegistrationDTO, 0, len(registrations))
	for i := range registrations {
		list = append(list, NewRegistrationDTO(&registrations[i]))
	}
	return list
}

type RegistrationRepo interface {
	GetAllRegistrations(ctx context.Context) (*[]Registration, error)
	GetRegistrationByID(ctx context.Context, id int) (*Registration, error)
	GetRegistrationsByChildID(ctx context.Context, childID int) (*[]Registration, error)
	ExistsRegistration(ctx context.Context, childID, campID int) (bool, error)
	CreateRegistration(ctx context.Context, registration *Registration) error
	DeleteRegistration(ctx context.Context, id int) error
}

type RegistrationUseCase interface {
	GetAllRegistrations(ctx context.Context) (*[]RegistrationDTO, error)
	GetRegistrationByID(ctx context.Context, id int) (*RegistrationDTO, error)
	GetRegistrationsByChildID(ctx context.Context, childID int) (*[]RegistrationDTO, error)
	CreateRegistration(ctx context.Context, req *RegistrationPayload) (*RegistrationDTO, error)
	DeleteRegistration(ctx context.Context, id int) error
}
