package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"ecamp/domain"
)

const (
	msgParentNameRequired     = "Name is required"
	msgParentEmailRequired    = "Email is required"
	msgParentPhoneRequired    = "Phone number is required"
	msgParentPasswordRequired = "Password is required"
	msgParentEmailTaken       = "This email is already registered. Please use a different email or try logging in."
	msgParentPhoneTaken       = "This phone number is already registered. Please use a different phone number."
	msgParentInvalidData      = "Registration failed due to invalid data. Please check your information and try again."
	msgParentRegisterFailed   = "Registration failed. Please try again later or contact support if the problem persists."
	msgParentNoAccount        = "No account found with this email. Please check your email or register a new account."
	msgParentWrongPhone       = "Incorrect phone number. Please check your credentials and try again."
	msgParentLoginFailed      = "Login failed. Please try again later."
)

type parentUseCase struct {
	repo    domain.ParentRepo
	hasher  domain.PasswordHasher
	TimeOut time.Duration
}

func NewParentUseCase(repo domain.ParentRepo, hasher domain.PasswordHasher, to time.Duration) domain.ParentUseCase {
	return &parentUseCase{
		repo:    repo,
		hasher:  hasher,
		TimeOut: to,
	}
}

func (pu *parentUseCase) Register(ctx context.Context, req *domain.ParentRegisterPayload) error {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	switch {
	case isBlank(req.Name):
		return domain.NewValidationError(msgParentNameRequired)
	case isBlank(req.Email):
		return domain.NewValidationError(msgParentEmailRequired)
	case isBlank(req.Phone):
		return domain.NewValidationError(msgParentPhoneRequired)
	case isBlank(req.Password):
		return domain.NewValidationError(msgParentPasswordRequired)
	}

	email := normalizeEmail(req.Email)

	_, err := pu.repo.GetParentByEmail(ctx, email)
	if err == nil {
		return domain.NewConflictError(msgParentEmailTaken)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.NewInternalError(msgParentRegisterFailed, err)
	}

	hashed, err := pu.hasher.Hash(req.Password)
	if err != nil {
		return domain.NewInternalError(msgParentRegisterFailed, err)
	}

	parent := &domain.Parent{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Phone:    strings.TrimSpace(req.Phone),
		Password: hashed,
		Role:     domain.RoleParent,
	}

	err = pu.repo.CreateParent(ctx, parent)
	if err != nil {
		switch domain.ConstraintName(err) {
		case domain.ConstraintParentEmail:
			return domain.NewConflictError(msgParentEmailTaken)
		case domain.ConstraintParentPhone:
			return domain.NewConflictError(msgParentPhoneTaken)
		case "":
			return domain.NewInternalError(msgParentRegisterFailed, err)
		default:
			return &domain.AppError{Kind: domain.KindBadRequest, Message: msgParentInvalidData, Err: err}
		}
	}

	return nil
}

// Login matches the phone number literally. The phone is not a hashed secret.
func (pu *parentUseCase) Login(ctx context.Context, email, phone string) (*domain.ParentLoginResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	if isBlank(email) {
		return nil, domain.NewValidationError(msgParentEmailRequired)
	}
	if isBlank(phone) {
		return nil, domain.NewValidationError(msgParentPhoneRequired)
	}

	parent, err := pu.repo.GetParentByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(msgParentNoAccount)
		}
		return nil, domain.NewInternalError(msgParentLoginFailed, err)
	}

	if subtle.ConstantTimeCompare([]byte(parent.Phone), []byte(strings.TrimSpace(phone))) != 1 {
		return nil, domain.NewUnauthorizedError(msgParentWrongPhone)
	}

	return &domain.ParentLoginResponse{
		ID:    parent.ID,
		Name:  parent.Name,
		Email: parent.Email,
	}, nil
}
