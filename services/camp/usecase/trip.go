package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"ecamp/domain"

	"github.com/asaskevich/govalidator"
)

const (
	msgTripNameRequired = "Trip name is required"
	msgTripNotFound     = "Trip not found."
	msgTripDateInvalid  = "Trip date must be in YYYY-MM-DD format."
	msgTripCostNegative = "Cost must not be negative."
	msgTripCampNotFound = "Selected camp not found. Please try again."
	msgTripCreateFailed = "Failed to create trip. Please try again later."
	msgTripLoadFailed   = "Failed to load trips. Please try again later."
)

type tripUseCase struct {
	repo     domain.TripRepo
	campRepo domain.CampRepo
	TimeOut  time.Duration
}

func NewTripUseCase(repo domain.TripRepo, campRepo domain.CampRepo, to time.Duration) domain.TripUseCase {
	return &tripUseCase{
		repo:     repo,
		campRepo: campRepo,
		TimeOut:  to,
	}
}

func (tu *tripUseCase) GetAllTrips(ctx context.Context) (*[]domain.Trip, error) {
	ctx, cancel := context.WithTimeout(ctx, tu.TimeOut)
	defer cancel()

	trips, err := tu.repo.GetAllTrips(ctx)
	if err != nil {
		return nil, domain.NewInternalError(msgTripLoadFailed, err)
	}
	return trips, nil
}

func (tu *tripUseCase) GetTripByID(ctx context.Context, id int) (*domain.Trip, error) {
	ctx, cancel := context.WithTimeout(ctx, tu.TimeOut)
	defer cancel()

	trip, err := tu.repo.GetTripByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(msgTripNotFound)
		}
		return nil, domain.NewInternalError(msgTripLoadFailed, err)
	}
	return trip, nil
}

func (tu *tripUseCase) CreateTrip(ctx context.Context, req *domain.TripPayload) (*domain.Trip, error) {
	ctx, cancel := context.WithTimeout(ctx, tu.TimeOut)
	defer cancel()

	if _, err := govalidator.ValidateStruct(req); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}
	// required~ lets a whitespace-only name through
	if isBlank(req.Name) {
		return nil, domain.NewValidationError(msgTripNameRequired)
	}

	tripDate, err := parseDate(req.TripDate)
	if err != nil {
		return nil, domain.NewValidationError(msgTripDateInvalid)
	}
	if req.Cost.IsNegative() {
		return nil, domain.NewValidationError(msgTripCostNegative)
	}

	if req.CampID != nil {
		exists, err := tu.campRepo.ExistsCamp(ctx, *req.CampID)
		if err != nil {
			return nil, domain.NewInternalError(msgTripCreateFailed, err)
		}
		if !exists {
			return nil, domain.NewValidationError(msgTripCampNotFound)
		}
	}

	trip := &domain.Trip{
		Name:        strings.TrimSpace(req.Name),
		Destination: strings.TrimSpace(req.Destination),
		Description: req.Description,
		TripDate:    tripDate,
		Cost:        req.Cost,
		CampID:      req.CampID,
	}

	if err := tu.repo.CreateTrip(ctx, trip); err != nil {
		return nil, domain.NewInternalError(msgTripCreateFailed, err)
	}

	return trip, nil
}
