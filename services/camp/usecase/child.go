package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"ecamp/domain"
)

const (
	msgChildParentRequired   = "Parent information is required."
	msgChildParentNotFound   = "Parent not found. Please log in again."
	msgChildParentImmutable  = "Parent cannot be changed."
	msgChildNameRequired     = "Child's name is required."
	msgChildEmailRequired    = "Child's email is required."
	msgChildPasswordRequired = "Password is required."
	msgChildDOBRequired      = "Date of birth is required."
	msgChildDOBInvalid       = "Date of birth must be in YYYY-MM-DD format."
	msgChildSchoolRequired   = "School name is required."
	msgChildNotFound         = "Child not found."
	msgChildEmailTaken       = "This email is already registered. Please use a different email."
	msgChildInvalidData      = "Failed to add child due to invalid data. Please check the information."
	msgChildCreateFailed     = "Failed to add child. Please try again later."
	msgChildUpdateInvalid    = "Failed to update child due to invalid data. Please check the information."
	msgChildUpdateFailed     = "Failed to update child. Please try again later."
	msgChildDeleteFailed     = "Failed to delete child. Please try again later."
	msgChildLoadFailed       = "Failed to load children. Please try again later."
)

type childUseCase struct {
	repo       domain.ChildRepo
	parentRepo domain.ParentRepo
	hasher     domain.PasswordHasher
	TimeOut    time.Duration
}

func NewChildUseCase(repo domain.ChildRepo, parentRepo domain.ParentRepo, hasher domain.PasswordHasher, to time.Duration) domain.ChildUseCase {
	return &childUseCase{
		repo:       repo,
		parentRepo: parentRepo,
		hasher:     hasher,
		TimeOut:    to,
	}
}

func (cu *childUseCase) GetAllChildren(ctx context.Context) (*[]domain.ChildDTO, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	children, err := cu.repo.GetAllChildren(ctx)
	if err != nil {
		return nil, domain.NewInternalError(msgChildLoadFailed, err)
	}

	list := domain.NewChildDTOList(*children)
	return &list, nil
}

func (cu *childUseCase) GetChildByID(ctx context.Context, id int) (*domain.ChildDTO, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	child, err := cu.repo.GetChildByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(msgChildNotFound)
		}
		return nil, domain.NewInternalError(msgChildLoadFailed, err)
	}

	dto := domain.NewChildDTO(child)
	return &dto, nil
}

func (cu *childUseCase) GetChildrenByParentID(ctx context.Context, parentID int) (*[]domain.ChildDTO, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	children, err := cu.repo.GetChildrenByParentID(ctx, parentID)
	if err != nil {
		return nil, domain.NewInternalError(msgChildLoadFailed, err)
	}

	list := domain.NewChildDTOList(*children)
	return &list, nil
}

// validateChildFields checks the required fields in a fixed order; the first
// miss is reported. Password is only required when creating.
func validateChildFields(req *domain.ChildPayload, requirePassword bool) error {
	switch {
	case isBlank(req.Name):
		return domain.NewValidationError(msgChildNameRequired)
	case isBlank(req.Email):
		return domain.NewValidationError(msgChildEmailRequired)
	case requirePassword && isBlank(req.Password):
		return domain.NewValidationError(msgChildPasswordRequired)
	case isBlank(req.DateOfBirth):
		return domain.NewValidationError(msgChildDOBRequired)
	case isBlank(req.School):
		return domain.NewValidationError(msgChildSchoolRequired)
	}
	return nil
}

func childPhone(phone string) string {
	if isBlank(phone) {
		return domain.DefaultChildPhone
	}
	return strings.TrimSpace(phone)
}

func classifyChildWrite(err error, invalidMsg, failedMsg string) error {
	switch domain.ConstraintName(err) {
	case domain.ConstraintChildEmail:
		return &domain.AppError{Kind: domain.KindConflict, Message: msgChildEmailTaken, Err: err}
	case "":
		return domain.NewInternalError(failedMsg, err)
	default:
		return &domain.AppError{Kind: domain.KindBadRequest, Message: invalidMsg, Err: err}
	}
}

func (cu *childUseCase) CreateChild(ctx context.Context, req *domain.ChildPayload) (*domain.ChildDTO, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	if req.Parent == nil || req.Parent.ID == nil {
		return nil, domain.NewValidationError(msgChildParentRequired)
	}

	parent, err := cu.parentRepo.GetParentByID(ctx, *req.Parent.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError(msgChildParentNotFound)
		}
		return nil, domain.NewInternalError(msgChildCreateFailed, err)
	}

	if err := validateChildFields(req, true); err != nil {
		return nil, err
	}

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, domain.NewValidationError(msgChildDOBInvalid)
	}

	hashed, err := cu.hasher.Hash(req.Password)
	if err != nil {
		return nil, domain.NewInternalError(msgChildCreateFailed, err)
	}

	child := &domain.Child{
		Name:        strings.TrimSpace(req.Name),
		School:      strings.TrimSpace(req.School),
		Email:       normalizeEmail(req.Email),
		Password:    hashed,
		DateOfBirth: dob,
		MedicalInfo: req.MedicalInfo,
		Phone:       childPhone(req.Phone),
		Role:        domain.RoleChild,
		ParentID:    parent.ID,
		Parent:      *parent,
	}

	if err := cu.repo.CreateChild(ctx, child); err != nil {
		return nil, classifyChildWrite(err, msgChildInvalidData, msgChildCreateFailed)
	}

	dto := domain.NewChildDTO(child)
	return &dto, nil
}

// UpdateChild replaces the stored child with req. Required fields are checked
// as on create, the owning parent is fixed, and a supplied password is
// re-hashed; a blank password keeps the stored hash.
func (cu *childUseCase) UpdateChild(ctx context.Context, id int, req *domain.ChildPayload) (*domain.ChildDTO, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	child, err := cu.repo.GetChildByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(msgChildNotFound)
		}
		return nil, domain.NewInternalError(msgChildUpdateFailed, err)
	}

	if req.Parent != nil && req.Parent.ID != nil && *req.Parent.ID != child.ParentID {
		return nil, domain.NewValidationError(msgChildParentImmutable)
	}

	if err := validateChildFields(req, false); err != nil {
		return nil, err
	}

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, domain.NewValidationError(msgChildDOBInvalid)
	}

	if !isBlank(req.Password) {
		hashed, err := cu.hasher.Hash(req.Password)
		if err != nil {
			return nil, domain.NewInternalError(msgChildUpdateFailed, err)
		}
		child.Password = hashed
	}

	child.ID = id
	child.Name = strings.TrimSpace(req.Name)
	child.School = strings.TrimSpace(req.School)
	child.Email = normalizeEmail(req.Email)
	child.DateOfBirth = dob
	child.MedicalInfo = req.MedicalInfo
	child.Phone = childPhone(req.Phone)
	child.Role = domain.RoleChild

	if err := cu.repo.UpdateChild(ctx, child); err != nil {
		return nil, classifyChildWrite(err, msgChildUpdateInvalid, msgChildUpdateFailed)
	}

	dto := domain.NewChildDTO(child)
	return &dto, nil
}

func (cu *childUseCase) DeleteChild(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	exists, err := cu.repo.ExistsChild(ctx, id)
	if err != nil {
		return domain.NewInternalError(msgChildDeleteFailed, err)
	}
	if !exists {
		return domain.NewNotFoundError(msgChildNotFound)
	}

	err = cu.repo.DeleteChild(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewNotFoundError(msgChildNotFound)
		}
		return domain.NewInternalError(msgChildDeleteFailed, err)
	}

	return nil
}
