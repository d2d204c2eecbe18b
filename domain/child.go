package domain

import (
	"context"
	"time"
)

const (
	// DateLayout is the calendar date format accepted and returned by the API.
	DateLayout = "2006-01-02"

	// DefaultChildPhone is stored when a child is created without a phone number.
	DefaultChildPhone = "0000000000"
)

type Child struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(150);not null" json:"name"`
	School      string    `gorm:"type:varchar(150);not null" json:"school"`
	Email       string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_children_email" json:"email"`
	Password    string    `gorm:"type:varchar(255);not null" json:"-"`
	DateOfBirth *Date     `json:"dateOfBirth"`
	MedicalInfo *string   `gorm:"type:text" json:"medicalInfo"`
	Phone       string    `gorm:"type:varchar(20);not null" json:"phone"`
	Role        string    `gorm:"type:varchar(10);not null" json:"role"`
	ParentID    int       `gorm:"not null;index" json:"parentId"`
	Parent      Parent    `gorm:"foreignKey:ParentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ParentRef carries the owning parent's id inside a child payload: {"parent": {"id": 1}}.
type ParentRef struct {
	ID *int `json:"id"`
}

type ChildPayload struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	School      string     `json:"school"`
	Email       string     `json:"email"`
	Password    string     `json:"password"`
	DateOfBirth string     `json:"dateOfBirth"`
	MedicalInfo *string    `json:"medicalInfo"`
	Phone       string     `json:"phone"`
	Parent      *ParentRef `json:"parent"`
}

// ChildDTO is the public view of a child: no password, parent reduced to its id.
type ChildDTO struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	School      string  `json:"school"`
	ParentID    int     `json:"parentId"`
	DateOfBirth *string `json:"dateOfBirth"`
	MedicalInfo *string `json:"medicalInfo"`
	Email       string  `json:"email"`
}

func NewChildDTO(c *Child) ChildDTO {
	dto := ChildDTO{
		ID:          c.ID,
		Name:        c.Name,
		School:      c.School,
		ParentID:    c.ParentID,
		MedicalInfo: c.MedicalInfo,
		Email:       c.Email,
	}

	if c.DateOfBirth != nil {
		dob := time.Time(*c.DateOfBirth).Format(DateLayout)
		dto.DateOfBirth = &dob
	}

	return dto
}

func NewChildDTOList(children []Child) []ChildDTO {
	list := make([]ChildDTO, 0, len(children))
	for i := range children {
		list = append(list, NewChildDTO(&children[i]))
	}
	return list
}

type ChildRepo interface {
	GetAllChildren(ctx context.Context) (*[]Child, error)
	GetChildByID(ctx context.Context, id int) (*Child, error)
	GetChildrenByParentID(ctx context.Context, parentID int) (*[]Child, error)
	ExistsChild(ctx context.Context, id int) (bool, error)
	CreateChild(ctx context.Context, child *Child) error
	UpdateChild(ctx context.Context, child *Child) error
	DeleteChild(ctx context.Context, id int) error
}

type ChildUseCase interface {
	GetAllChildren(ctx context.Context) (*[]ChildDTO, error)
	GetChildByID(ctx context.Context, id int) (*ChildDTO, error)
	GetChildrenByParentID(ctx context.Context, parentID int) (*[]ChildDTO, error)
	CreateChild(ctx context.Context, req *ChildPayload) (*ChildDTO, error)
	UpdateChild(ctx context.Context, id int, req *ChildPayload) (*ChildDTO, error)
	DeleteChild(ctx context.Context, id int) error
}
