package repository

import (
	"context"
	"fmt"

	"ecamp/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type childRepository struct {
	db *gorm.DB
}

func NewChildRepository(database *gorm.DB) domain.ChildRepo {
	return &childRepository{
		db: database,
	}
}

func (cr *childRepository) GetAllChildren(ctx context.Context) (*[]domain.Child, error) {
	var children []domain.Child
	err := cr.db.WithContext(ctx).Order("id").Find(&children).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve children: %w", err)
	}
	return &children, nil
}

func (cr *childRepository) GetChildByID(ctx context.Context, id int) (*domain.Child, error) {
	var child domain.Child
	err := cr.db.WithContext(ctx).Where("id = ?", id).First(&child).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &child, nil
}

func (cr *childRepository) GetChildrenByParentID(ctx context.Context, parentID int) (*[]domain.Child, error) {
	var children []domain.Child
	err := cr.db.WithContext(ctx).Where("parent_id = ?", parentID).Order("id").Find(&children).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve children of parent %d: %w", parentID, err)
	}
	return &children, nil
}

func (cr *childRepository) ExistsChild(ctx context.Context, id int) (bool, error) {
	var count int64
	err := cr.db.WithContext(ctx).Model(&domain.Child{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("error checking child %d: %w", id, err)
	}
	return count > 0, nil
}

func (cr *childRepository) CreateChild(ctx context.Context, child *domain.Child) error {
	err := cr.db.WithContext(ctx).Omit(clause.Associations).Create(child).Error
	if err != nil {
		return fmt.Errorf("could not insert child: %w", classifyConstraint(err))
	}
	return nil
}

func (cr *childRepository) UpdateChild(ctx context.Context, child *domain.Child) error {
	err := cr.db.WithContext(ctx).Omit(clause.Associations).Save(child).Error
	if err != nil {
		return fmt.Errorf("could not update child %d: %w", child.ID, classifyConstraint(err))
	}
	return nil
}

func (cr *childRepository) DeleteChild(ctx context.Context, id int) error {
	result := cr.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Child{})
	if result.Error != nil {
		return fmt.Errorf("error deleting child %d: %w", id, classifyConstraint(result.Error))
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
