package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"ecamp/domain"

	"github.com/shopspring/decimal"
)

const (
	msgRegistrationChildRequired = "Please select a child."
	msgRegistrationCampRequired  = "Please select a camp."
	msgRegistrationChildNotFound = "Selected child not found. Please try again."
	msgRegistrationCampNotFound  = "Selected camp not found. Please try again."
	msgRegistrationDuplicate     = "This child is already registered for this camp."
	msgRegistrationInvalidID     = "Invalid child or camp selection."
	msgRegistrationInvalidTrip   = "Invalid trip selection."
	msgRegistrationInvalidStatus = "Invalid registration status. Use PENDING, CONFIRMED or CANCELLED."
	msgRegistrationInvalidData   = "Registration failed due to invalid data. Please check your selection."
	msgRegistrationFailed        = "Registration failed. Please try again later or contact support."
	msgRegistrationNotFound      = "Registration not found."
	msgRegistrationLoadFailed    = "Failed to load registrations. Please try again later."
	msgRegistrationDeleteFailed  = "Failed to delete registration. Please try again later."
)

type registrationUseCase struct {
	repo      domain.RegistrationRepo
	childRepo domain.ChildRepo
	campRepo  domain.CampRepo
	tripRepo  domain.TripRepo
	TimeOut   time.Duration
}

func NewRegistrationUseCase(repo domain.RegistrationRepo, childRepo domain.ChildRepo, campRepo domain.CampRepo, tripRepo domain.TripRepo, to time.Duration) domain.RegistrationUseCase {
	return &registrationUseCase{
		repo:      repo,
		childRepo: childRepo,
		campRepo:  campRepo,
		tripRepo:  tripRepo,
		TimeOut:   to,
	}
}

func (ru *registrationUseCase) GetAllRegistrations(ctx context.Context) (*[]domain.RegistrationDTO, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	registrations, err := ru.repo.GetAllRegistrations(ctx)
	if err != nil {
		return nil, domain.NewInternalError(msgRegistrationLoadFailed, err)
	}

	list := domain.NewRegistrationDTOList(*registrations)
	return &list, nil
}

func (ru *registrationUseCase) GetRegistrationByID(ctx context.Context, id int) (*domain.RegistrationDTO, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	registration, err := ru.repo.GetRegistrationByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(msgRegistrationNotFound)
		}
		return nil, domain.NewInternalError(msgRegistrationLoadFailed, err)
	}

	dto := domain.NewRegistrationDTO(registration)
	return &dto, nil
}

func (ru *registrationUseCase) GetRegistrationsByChildID(ctx context.Context, childID int) (*[]domain.RegistrationDTO, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	registrations, err := ru.repo.GetRegistrationsByChildID(ctx, childID)
	if err != nil {
		return nil, domain.NewInternalError(msgRegistrationLoadFailed, err)
	}

	list := domain.NewRegistrationDTOList(*registrations)
	return &list, nil
}

func registrationStatus(status *string) (string, error) {
	if status == nil || isBlank(*status) {
		return domain.RegistrationPending, nil
	}

	s := strings.ToUpper(strings.TrimSpace(*status))
	if !domain.IsValidRegistrationStatus(s) {
		return "", domain.NewValidationError(msgRegistrationInvalidStatus)
	}
	return s, nil
}

func (ru *registrationUseCase) CreateRegistration(ctx context.Context, req *domain.RegistrationPayload) (*domain.RegistrationDTO, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	if req.ChildID == nil {
		return nil, domain.NewValidationError(msgRegistrationChildRequired)
	}
	if req.CampID == nil {
		return nil, domain.NewValidationError(msgRegistrationCampRequired)
	}

	childID, err := parseID(req.ChildID)
	if err != nil {
		return nil, domain.NewBadRequestError(msgRegistrationInvalidID)
	}

	child, err := ru.childRepo.GetChildByID(ctx, childID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError(msgRegistrationChildNotFound)
		}
		return nil, domain.NewInternalError(msgRegistrationFailed, err)
	}

	campID, err := parseID(req.CampID)
	if err != nil {
		return nil, domain.NewBadRequestError(msgRegistrationInvalidID)
	}

	camp, err := ru.campRepo.GetCampByID(ctx, campID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError(msgRegistrationCampNotFound)
		}
		return nil, domain.NewInternalError(msgRegistrationFailed, err)
	}

	exists, err := ru.repo.ExistsRegistration(ctx, child.ID, camp.ID)
	if err != nil {
		return nil, domain.NewInternalError(msgRegistrationFailed, err)
	}
	if exists {
		return nil, domain.NewConflictError(msgRegistrationDuplicate)
	}

	status, err := registrationStatus(req.Status)
	if err != nil {
		return nil, err
	}

	tripIDs := make([]int, 0, len(req.TripIDs))
	for _, raw := range req.TripIDs {
		id, err := parseID(raw)
		if err != nil {
			return nil, domain.NewBadRequestError(msgRegistrationInvalidTrip)
		}
		tripIDs = append(tripIDs, id)
	}

	// unknown trip ids are dropped: only trips that exist come back
	trips, err := ru.tripRepo.GetTripsByIDs(ctx, tripIDs)
	if err != nil {
		return nil, domain.NewInternalError(msgRegistrationFailed, err)
	}

	registration := &domain.Registration{
		RegistrationDate: time.Now(),
		TotalCost:        decimal.Zero,
		Status:           status,
		ChildID:          child.ID,
		CampID:           camp.ID,
		Trips:            *trips,
	}

	err = ru.repo.CreateRegistration(ctx, registration)
	if err != nil {
		switch domain.ConstraintName(err) {
		case domain.ConstraintRegistrationChildCamp:
			return nil, &domain.AppError{Kind: domain.KindConflict, Message: msgRegistrationDuplicate, Err: err}
		case "":
			return nil, domain.NewInternalError(msgRegistrationFailed, err)
		default:
			return nil, &domain.AppError{Kind: domain.KindBadRequest, Message: msgRegistrationInvalidData, Err: err}
		}
	}

	registration.Child = *child
	registration.Camp = *camp

	dto := domain.NewRegistrationDTO(registration)
	return &dto, nil
}

// DeleteRegistration does not check that the registration exists.
func (ru *registrationUseCase) DeleteRegistration(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	if err := ru.repo.DeleteRegistration(ctx, id); err != nil {
		return domain.NewInternalError(msgRegistrationDeleteFailed, err)
	}
	return nil
}
