package repository

import (
	"context"
	"fmt"

	"ecamp/domain"

	"gorm.io/gorm"
)

type parentRepository struct {
	db *gorm.DB
}

func NewParentRepository(database *gorm.DB) domain.ParentRepo {
	return &parentRepository{
		db: database,
	}
}

func (pr *parentRepository) CreateParent(ctx context.Context, parent *domain.Parent) error {
	err := pr.db.WithContext(ctx).Create(parent).Error
	if err != nil {
		return fmt.Errorf("could not create parent: %w", classifyConstraint(err))
	}
	return nil
}

func (pr *parentRepository) GetParentByID(ctx context.Context, id int) (*domain.Parent, error) {
	var parent domain.Parent
	err := pr.db.WithContext(ctx).Where("id = ?", id).First(&parent).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &parent, nil
}

func (pr *parentRepository) GetParentByEmail(ctx context.Context, email string) (*domain.Parent, error) {
	var parent domain.Parent
	err := pr.db.WithContext(ctx).Where("email = ?", email).First(&parent).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &parent, nil
}
