package delivery

import (
	"context"
	"errors"

	"ecamp/domain"
)

type mockParentUseCase struct {
	RegisterFn func(ctx context.Context, req *domain.ParentRegisterPayload) error
	LoginFn    func(ctx context.Context, email, phone string) (*domain.ParentLoginResponse, error)
}

func (m *mockParentUseCase) Register(ctx context.Context, req *domain.ParentRegisterPayload) error {
	return m.RegisterFn(ctx, req)
}

func (m *mockParentUseCase) Login(ctx context.Context, email, phone string) (*domain.ParentLoginResponse, error) {
	return m.LoginFn(ctx, email, phone)
}

type mockChildUseCase struct {
	GetAllChildrenFn        func(ctx context.Context) (*[]domain.ChildDTO, error)
	GetChildByIDFn          func(ctx context.Context, id int) (*domain.ChildDTO, error)
	GetChildrenByParentIDFn func(ctx context.Context, parentID int) (*[]domain.ChildDTO, error)
	CreateChildFn           func(ctx context.Context, req *domain.ChildPayload) (*domain.ChildDTO, error)
	UpdateChildFn           func(ctx context.Context, id int, req *domain.ChildPayload) (*domain.ChildDTO, error)
	DeleteChildFn           func(ctx context.Context, id int) error
}

func (m *mockChildUseCase) GetAllChildren(ctx context.Context) (*[]domain.ChildDTO, error) {
	return m.GetAllChildrenFn(ctx)
}

func (m *mockChildUseCase) GetChildByID(ctx context.Context, id int) (*domain.ChildDTO, error) {
	return m.GetChildByIDFn(ctx, id)
}

func (m *mockChildUseCase) GetChildrenByParentID(ctx context.Context, parentID int) (*[]domain.ChildDTO, error) {
	return m.GetChildrenByParentIDFn(ctx, parentID)
}

func (m *mockChildUseCase) CreateChild(ctx context.Context, req *domain.ChildPayload) (*domain.ChildDTO, error) {
	return m.CreateChildFn(ctx, req)
}

func (m *mockChildUseCase) UpdateChild(ctx context.Context, id int, req *domain.ChildPayload) (*domain.ChildDTO, error) {
	return m.UpdateChildFn(ctx, id, req)
}

func (m *mockChildUseCase) DeleteChild(ctx context.Context, id int) error {
	return m.DeleteChildFn(ctx, id)
}

type mockRegistrationUseCase struct {
	GetAllRegistrationsFn       func(ctx context.Context) (*[]domain.RegistrationDTO, error)
	GetRegistrationByIDFn       func(ctx context.Context, id int) (*domain.RegistrationDTO, error)
	GetRegistrationsByChildIDFn func(ctx context.Context, childID int) (*[]domain.RegistrationDTO, error)
	CreateRegistrationFn        func(ctx context.Context, req *domain.RegistrationPayload) (*domain.RegistrationDTO, error)
	DeleteRegistrationFn        func(ctx context.Context, id int) error
}

func (m *mockRegistrationUseCase) GetAllRegistrations(ctx context.Context) (*[]domain.RegistrationDTO, error) {
	return m.GetAllRegistrationsFn(ctx)
}

func (m *mockRegistrationUseCase) GetRegistrationByID(ctx context.Context, id int) (*domain.RegistrationDTO, error) {
	return m.GetRegistrationByIDFn(ctx, id)
}

func (m *mockRegistrationUseCase) GetRegistrationsByChildID(ctx context.Context, childID int) (*[]domain.RegistrationDTO, error) {
	return m.GetRegistrationsByChildIDFn(ctx, childID)
}

func (m *mockRegistrationUseCase) CreateRegistration(ctx context.Context, req *domain.RegistrationPayload) (*domain.RegistrationDTO, error) {
	return m.CreateRegistrationFn(ctx, req)
}

func (m *mockRegistrationUseCase) DeleteRegistration(ctx context.Context, id int) error {
	return m.DeleteRegistrationFn(ctx, id)
}

type mockCampUseCase struct {
	GetAllCampsFn func(ctx context.Context) (*[]domain.Camp, error)
	GetCampByIDFn func(ctx context.Context, id int) (*domain.Camp, error)
	CreateCampFn  func(ctx context.Context, req *domain.CampPayload) (*domain.Camp, error)
}

func (m *mockCampUseCase) GetAllCamps(ctx context.Context) (*[]domain.Camp, error) {
	return m.GetAllCampsFn(ctx)
}

func (m *mockCampUseCase) GetCampByID(ctx context.Context, id int) (*domain.Camp, error) {
	return m.GetCampByIDFn(ctx, id)
}

func (m *mockCampUseCase) CreateCamp(ctx context.Context, req *domain.CampPayload) (*domain.Camp, error) {
	return m.CreateCampFn(ctx, req)
}

type mockTripUseCase struct {
	GetAllTripsFn func(ctx context.Context) (*[]domain.Trip, error)
	GetTripByIDFn func(ctx context.Context, id int) (*domain.Trip, error)
	CreateTripFn  func(ctx context.Context, req *domain.TripPayload) (*domain.Trip, error)
}

func (m *mockTripUseCase) GetAllTrips(ctx context.Context) (*[]domain.Trip, error) {
	return m.GetAllTripsFn(ctx)
}

func (m *mockTripUseCase) GetTripByID(ctx context.Context, id int) (*domain.Trip, error) {
	return m.GetTripByIDFn(ctx, id)
}

func (m *mockTripUseCase) CreateTrip(ctx context.Context, req *domain.TripPayload) (*domain.Trip, error) {
	return m.CreateTripFn(ctx, req)
}

type mockPinger struct {
	err error
}

func (m mockPinger) PingContext(context.Context) error {
	return m.err
}

var errDatabaseDown = errors.New("database down")
