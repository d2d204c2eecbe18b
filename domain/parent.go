package domain

import (
	"context"
	"time"
)

const (
	RoleParent = "PARENT"
	RoleChild  = "CHILD"
	RoleAdmin  = "ADMIN"
)

type Parent struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(150);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_parents_email" json:"email"`
	Phone     string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_parents_phone" json:"phone"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Role      string    `gorm:"type:varchar(10);not null" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type ParentRegisterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// ParentLoginResponse is the only view of a parent handed back by login.
type ParentLoginResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ParentRepo interface {
	CreateParent(ctx context.Context, parent *Parent) error
	GetParentByID(ctx context.Context, id int) (*Parent, error)
	GetParentByEmail(ctx context.Context, email string) (*Parent, error)
}

type ParentUseCase interface {
	Register(ctx context.Context, req *ParentRegisterPayload) error
	Login(ctx context.Context, email, phone string) (*ParentLoginResponse, error)
}
