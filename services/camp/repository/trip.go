package repository

import (
	"context"
	"fmt"

	"ecamp/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(database *gorm.DB) domain.TripRepo {
	return &tripRepository{
		db: database,
	}
}

func (tr *tripRepository) GetAllTrips(ctx context.Context) (*[]domain.Trip, error) {
	var trips []domain.Trip
	err := tr.db.WithContext(ctx).Order("id").Find(&trips).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve trips: %w", err)
	}
	return &trips, nil
}

func (tr *tripRepository) GetTripByID(ctx context.Context, id int) (*domain.Trip, error) {
	var trip domain.Trip
	err := tr.db.WithContext(ctx).Where("id = ?", id).First(&trip).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &trip, nil
}

func (tr *tripRepository) GetTripsByIDs(ctx context.Context, ids []int) (*[]domain.Trip, error) {
	trips := []domain.Trip{}
	if len(ids) == 0 {
		return &trips, nil
	}

	err := tr.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&trips).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve trips: %w", err)
	}
	return &trips, nil
}

func (tr *tripRepository) CreateTrip(ctx context.Context, trip *domain.Trip) error {
	err := tr.db.WithContext(ctx).Omit(clause.Associations).Create(trip).Error
	if err != nil {
		return fmt.Errorf("could not insert trip: %w", classifyConstraint(err))
	}
	return nil
}
