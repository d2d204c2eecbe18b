package delivery

import (
	"context"
	"testing"
	"time"

	"ecamp/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationDelivery_Create(t *testing.T) {
	var got *domain.RegistrationPayload
	uc := &mockRegistrationUseCase{
		CreateRegistrationFn: func(_ context.Context, req *domain.RegistrationPayload) (*domain.RegistrationDTO, error) {
			got = req
			return &domain.RegistrationDTO{
				ID:               9,
				RegistrationDate: time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
				TotalCost:        decimal.Zero,
				Status:           domain.RegistrationPending,
				Child:            domain.ChildDTO{ID: 3, Name: "Leo"},
				Camp:             domain.Camp{ID: 5, Name: "Pine Ridge"},
				Trips:            []domain.Trip{},
			}, nil
		},
	}
	app := newTestApp()
	NewRegistrationDelivery(app, uc)

	res := doRequest(t, app, "POST", "/api/registrations", `{"childId":3,"campId":"5","tripIds":[1,2]}`, "")
	require.Equal(t, 200, res.Status)
	require.NotNil(t, got)
	assert.EqualValues(t, 3, got.ChildID)
	assert.Equal(t, "5", got.CampID)
	assert.Len(t, got.TripIDs, 2)
	assert.Nil(t, got.Status)

	body := res.envelope(t)
	assert.Equal(t, "PENDING", body["status"])
	assert.Equal(t, float64(0), body["totalCost"])
	assert.Equal(t, []any{}, body["trips"])
	child := body["child"].(map[string]any)
	assert.Equal(t, "Leo", child["name"])
	assert.NotContains(t, child, "password")
}

func TestRegistrationDelivery_CreateErrors(t *testing.T) {
	tests := []struct {
		err    *domain.AppError
		status int
	}{
		{domain.NewValidationError("Please select a child."), 400},
		{domain.NewBadRequestError("Invalid child or camp selection."), 400},
		{domain.NewConflictError("This child is already registered for this camp."), 409},
		{domain.NewInternalError("Registration failed.", context.DeadlineExceeded), 500},
	}

	for _, tt := range tests {
		uc := &mockRegistrationUseCase{
			CreateRegistrationFn: func(context.Context, *domain.RegistrationPayload) (*domain.RegistrationDTO, error) {
				return nil, tt.err
			},
		}
		app := newTestApp()
		NewRegistrationDelivery(app, uc)

		res := doRequest(t, app, "POST", "/api/registrations", `{}`, "")
		assert.Equal(t, tt.status, res.Status, tt.err.Message)
		assert.Equal(t, tt.err.Message, res.envelope(t)["message"])
	}
}

func TestRegistrationDelivery_Queries(t *testing.T) {
	var deleted int
	uc := &mockRegistrationUseCase{
		GetAllRegistrationsFn: func(context.Context) (*[]domain.RegistrationDTO, error) {
			return &[]domain.RegistrationDTO{{ID: 1}, {ID: 2}}, nil
		},
		GetRegistrationByIDFn: func(_ context.Context, id int) (*domain.RegistrationDTO, error) {
			return nil, domain.NewNotFoundError("Registration not found.")
		},
		GetRegistrationsByChildIDFn: func(_ context.Context, childID int) (*[]domain.RegistrationDTO, error) {
			return &[]domain.RegistrationDTO{{ID: 1, Child: domain.ChildDTO{ID: childID}}}, nil
		},
		DeleteRegistrationFn: func(_ context.Context, id int) error {
			deleted = id
			return nil
		},
	}
	app := newTestApp()
	NewRegistrationDelivery(app, uc)

	res := doRequest(t, app, "GET", "/api/registrations", "", "")
	require.Equal(t, 200, res.Status)

	res = doRequest(t, app, "GET", "/api/registrations/77", "", "")
	assert.Equal(t, 404, res.Status)
	assert.Equal(t, "Registration not found.", res.envelope(t)["message"])

	res = doRequest(t, app, "GET", "/api/registrations/byChild/3", "", "")
	assert.Equal(t, 200, res.Status)

	res = doRequest(t, app, "GET", "/api/registrations/byChild/three", "", "")
	assert.Equal(t, 400, res.Status)

	res = doRequest(t, app, "DELETE", "/api/registrations/12", "", "")
	assert.Equal(t, 200, res.Status)
	assert.Equal(t, 12, deleted)
	assert.Equal(t, msgRegistrationDeleted, res.envelope(t)["message"])

	res = doRequest(t, app, "DELETE", "/api/registrations/0", "", "")
	assert.Equal(t, 400, res.Status)
}
