package repository

import (
	"context"
	"fmt"

	"ecamp/domain"

	"gorm.io/gorm"
)

type campRepository struct {
	db *gorm.DB
}

func NewCampRepository(database *gorm.DB) domain.CampRepo {
	return &campRepository{
		db: database,
	}
}

func (cr *campRepository) GetAllCamps(ctx context.Context) (*[]domain.Camp, error) {
	var camps []domain.Camp
	err := cr.db.WithContext(ctx).Order("start_date, id").Find(&camps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve camps: %w", err)
	}
	return &camps, nil
}

func (cr *campRepository) GetCampByID(ctx context.Context, id int) (*domain.Camp, error) {
	var camp domain.Camp
	err := cr.db.WithContext(ctx).Where("id = ?", id).First(&camp).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &camp, nil
}

func (cr *campRepository) ExistsCamp(ctx context.Context, id int) (bool, error) {
	var count int64
	err := cr.db.WithContext(ctx).Model(&domain.Camp{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("error checking camp %d: %w", id, err)
	}
	return count > 0, nil
}

func (cr *campRepository) CreateCamp(ctx context.Context, camp *domain.Camp) error {
	err := cr.db.WithContext(ctx).Create(camp).Error
	if err != nil {
		return fmt.Errorf("could not insert camp: %w", classifyConstraint(err))
	}
	return nil
}
