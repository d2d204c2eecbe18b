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
	msgCampNameRequired     = "Camp name is required"
	msgCampNotFound         = "Camp not found."
	msgCampStartDateInvalid = "Start date must be in YYYY-MM-DD format."
	msgCampEndDateInvalid   = "End date must be in YYYY-MM-DD format."
	msgCampDateOrder        = "Start date must not be after end date."
	msgCampPriceNegative    = "Price must not be negative."
	msgCampCapacityNegative = "Capacity must not be negative."
	msgCampCreateFailed     = "Failed to create camp. Please try again later."
	msgCampLoadFailed       = "Failed to load camps. Please try again later."
)

type campUseCase struct {
	repo    domain.CampRepo
	TimeOut time.Duration
}

func NewCampUseCase(repo domain.CampRepo, to time.Duration) domain.CampUseCase {
	return &campUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (cu *campUseCase) GetAllCamps(ctx context.Context) (*[]domain.Camp, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	camps, err := cu.repo.GetAllCamps(ctx)
	if err != nil {
		return nil, domain.NewInternalError(msgCampLoadFailed, err)
	}
	return camps, nil
}

func (cu *campUseCase) GetCampByID(ctx context.Context, id int) (*domain.Camp, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	camp, err := cu.repo.GetCampByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(msgCampNotFound)
		}
		return nil, domain.NewInternalError(msgCampLoadFailed, err)
	}
	return camp, nil
}

func (cu *campUseCase) CreateCamp(ctx context.Context, req *domain.CampPayload) (*domain.Camp, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	if _, err := govalidator.ValidateStruct(req); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}
	// required~ lets a whitespace-only name through
	if isBlank(req.Name) {
		return nil, domain.NewValidationError(msgCampNameRequired)
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, domain.NewValidationError(msgCampStartDateInvalid)
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, domain.NewValidationError(msgCampEndDateInvalid)
	}
	if start != nil && end != nil && time.Time(*start).After(time.Time(*end)) {
		return nil, domain.NewValidationError(msgCampDateOrder)
	}
	if req.Price.IsNegative() {
		return nil, domain.NewValidationError(msgCampPriceNegative)
	}
	if req.Capacity < 0 {
		return nil, domain.NewValidationError(msgCampCapacityNegative)
	}

	camp := &domain.Camp{
		Name:        strings.TrimSpace(req.Name),
		Location:    strings.TrimSpace(req.Location),
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
		Price:       req.Price,
		Capacity:    req.Capacity,
	}

	if err := cu.repo.CreateCamp(ctx, camp); err != nil {
		return nil, domain.NewInternalError(msgCampCreateFailed, err)
	}

	return camp, nil
}
