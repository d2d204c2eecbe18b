package repository

import (
	"context"
	"fmt"

	"ecamp/domain"

	"gorm.io/gorm"
)

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(database *gorm.DB) domain.RegistrationRepo {
	return &registrationRepository{
		db: database,
	}
}

func (rr *registrationRepository) withDetails(ctx context.Context) *gorm.DB {
	return rr.db.WithContext(ctx).
		Preload("Child").
		Preload("Camp").
		Preload("Trips", func(db *gorm.DB) *gorm.DB {
			return db.Order("trips.id")
		})
}

func (rr *registrationRepository) GetAllRegistrations(ctx context.Context) (*[]domain.Registration, error) {
	var registrations []domain.Registration
	err := rr.withDetails(ctx).Order("id").Find(&registrations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve registrations: %w", err)
	}
	return &registrations, nil
}

func (rr *registrationRepository) GetRegistrationByID(ctx context.Context, id int) (*domain.Registration, error) {
	var registration domain.Registration
	err := rr.withDetails(ctx).Where("id = ?", id).First(&registration).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &registration, nil
}

// GetRegistrationsByChildID is served by idx_registrations_child_camp, whose
// leading column is child_id.
func (rr *registrationRepository) GetRegistrationsByChildID(ctx context.Context, childID int) (*[]domain.Registration, error) {
	var registrations []domain.Registration
	err := rr.withDetails(ctx).Where("child_id = ?", childID).Order("id").Find(&registrations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve registrations of child %d: %w", childID, err)
	}
	return &registrations, nil
}

func (rr *registrationRepository) ExistsRegistration(ctx context.Context, childID, campID int) (bool, error) {
	var count int64
	err := rr.db.WithContext(ctx).
		Model(&domain.Registration{}).
		Where("child_id = ? AND camp_id = ?", childID, campID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("error checking registration of child %d for camp %d: %w", childID, campID, err)
	}
	return count > 0, nil
}

// CreateRegistration inserts the row and its trip links in one transaction.
// Trips are linked only; the trip rows themselves are never written.
func (rr *registrationRepository) CreateRegistration(ctx context.Context, registration *domain.Registration) error {
	err := rr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Child", "Camp", "Trips.*").Create(registration).Error
	})
	if err != nil {
		return fmt.Errorf("could not insert registration: %w", classifyConstraint(err))
	}
	return nil
}

func (rr *registrationRepository) DeleteRegistration(ctx context.Context, id int) error {
	err := rr.db.WithContext(ctx).Select("Trips").Delete(&domain.Registration{ID: id}).Error
	if err != nil {
		return fmt.Errorf("error deleting registration %d: %w", id, err)
	}
	return nil
}
