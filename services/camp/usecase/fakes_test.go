package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"ecamp/domain"

	"github.com/stretchr/testify/require"
)

const testTimeout = 2 * time.Second

// plainHasher keeps tests fast; it is not a real hash.
type plainHasher struct {
	fail error
}

func (h plainHasher) Hash(plain string) (string, error) {
	if h.fail != nil {
		return "", h.fail
	}
	return "hashed:" + plain, nil
}

func (h plainHasher) Compare(hashed, plain string) error {
	if hashed != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

// store is an in-memory stand-in for the gorm repositories. Unique indexes are
// enforced the same way Postgres would, surfacing a ConstraintError.
type store struct {
	mu            sync.Mutex
	nextID        int
	parents       map[int]domain.Parent
	children      map[int]domain.Child
	camps         map[int]domain.Camp
	trips         map[int]domain.Trip
	registrations map[int]domain.Registration

	failWith error
}

func newStore() *store {
	return &store{
		parents:       map[int]domain.Parent{},
		children:      map[int]domain.Child{},
		camps:         map[int]domain.Camp{},
		trips:         map[int]domain.Trip{},
		registrations: map[int]domain.Registration{},
	}
}

func (s *store) id() int {
	s.nextID++
	return s.nextID
}

func uniqueViolation(constraint string) error {
	return &domain.ConstraintError{Constraint: constraint, Code: "23505", Err: errors.New("duplicate key value violates unique constraint")}
}

// parents

type parentRepo struct{ *store }

func (r parentRepo) CreateParent(_ context.Context, p *domain.Parent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	for _, existing := range r.parents {
		if existing.Email == p.Email {
			return uniqueViolation(domain.ConstraintParentEmail)
		}
		if existing.Phone == p.Phone {
			return uniqueViolation(domain.ConstraintParentPhone)
		}
	}
	p.ID = r.id()
	r.parents[p.ID] = *p
	return nil
}

func (r parentRepo) GetParentByID(_ context.Context, id int) (*domain.Parent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.parents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r parentRepo) GetParentByEmail(_ context.Context, email string) (*domain.Parent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.parents {
		if p.Email == email {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// children

type childRepo struct{ *store }

func (r childRepo) sorted(filter func(domain.Child) bool) *[]domain.Child {
	list := []domain.Child{}
	for _, c := range r.children {
		if filter(c) {
			list = append(list, c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return &list
}

func (r childRepo) GetAllChildren(_ context.Context) (*[]domain.Child, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(func(domain.Child) bool { return true }), nil
}

func (r childRepo) GetChildByID(_ context.Context, id int) (*domain.Child, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.children[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r childRepo) GetChildrenByParentID(_ context.Context, parentID int) (*[]domain.Child, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(func(c domain.Child) bool { return c.ParentID == parentID }), nil
}

func (r childRepo) ExistsChild(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.children[id]
	return ok, nil
}

func (r childRepo) emailTaken(email string, except int) bool {
	for _, c := range r.children {
		if c.ID != except && strings.EqualFold(c.Email, email) {
			return true
		}
	}
	return false
}

func (r childRepo) CreateChild(_ context.Context, c *domain.Child) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	if r.emailTaken(c.Email, 0) {
		return uniqueViolation(domain.ConstraintChildEmail)
	}
	c.ID = r.id()
	r.children[c.ID] = *c
	return nil
}

func (r childRepo) UpdateChild(_ context.Context, c *domain.Child) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	if r.emailTaken(c.Email, c.ID) {
		return uniqueViolation(domain.ConstraintChildEmail)
	}
	r.children[c.ID] = *c
	return nil
}

func (r childRepo) DeleteChild(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.children[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.children, id)
	for rid, reg := range r.registrations {
		if reg.ChildID == id {
			delete(r.registrations, rid)
		}
	}
	return nil
}

// camps

type campRepo struct{ *store }

func (r campRepo) GetAllCamps(_ context.Context) (*[]domain.Camp, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := []domain.Camp{}
	for _, c := range r.camps {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return &list, nil
}

func (r campRepo) GetCampByID(_ context.Context, id int) (*domain.Camp, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.camps[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r campRepo) ExistsCamp(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.camps[id]
	return ok, nil
}

func (r campRepo) CreateCamp(_ context.Context, c *domain.Camp) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	c.ID = r.id()
	r.camps[c.ID] = *c
	return nil
}

// trips

type tripRepo struct{ *store }

func (r tripRepo) GetAllTrips(_ context.Context) (*[]domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := []domain.Trip{}
	for _, t := range r.trips {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return &list, nil
}

func (r tripRepo) GetTripByID(_ context.Context, id int) (*domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.trips[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (r tripRepo) GetTripsByIDs(_ context.Context, ids []int) (*[]domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := []domain.Trip{}
	for _, id := range ids {
		if t, ok := r.trips[id]; ok {
			list = append(list, t)
		}
	}
	return &list, nil
}

func (r tripRepo) CreateTrip(_ context.Context, t *domain.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	t.ID = r.id()
	r.trips[t.ID] = *t
	return nil
}

// registrations

type registrationRepo struct{ *store }

func (r registrationRepo) withDetails(reg domain.Registration) domain.Registration {
	reg.Child = r.children[reg.ChildID]
	reg.Camp = r.camps[reg.CampID]
	return reg
}

func (r registrationRepo) list(filter func(domain.Registration) bool) *[]domain.Registration {
	list := []domain.Registration{}
	for _, reg := range r.registrations {
		if filter(reg) {
			list = append(list, r.withDetails(reg))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return &list
}

func (r registrationRepo) GetAllRegistrations(_ context.Context) (*[]domain.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(func(domain.Registration) bool { return true }), nil
}

func (r registrationRepo) GetRegistrationByID(_ context.Context, id int) (*domain.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.registrations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	reg = r.withDetails(reg)
	return &reg, nil
}

func (r registrationRepo) GetRegistrationsByChildID(_ context.Context, childID int) (*[]domain.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(func(reg domain.Registration) bool { return reg.ChildID == childID }), nil
}

func (r registrationRepo) ExistsRegistration(_ context.Context, childID, campID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, reg := range r.registrations {
		if reg.ChildID == childID && reg.CampID == campID {
			return true, nil
		}
	}
	return false, nil
}

func (r registrationRepo) CreateRegistration(_ context.Context, reg *domain.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	for _, existing := range r.registrations {
		if existing.ChildID == reg.ChildID && existing.CampID == reg.CampID {
			return uniqueViolation(domain.ConstraintRegistrationChildCamp)
		}
	}
	reg.ID = r.id()
	stored := *reg
	stored.Child = domain.Child{}
	stored.Camp = domain.Camp{}
	r.registrations[reg.ID] = stored
	return nil
}

func (r registrationRepo) DeleteRegistration(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.registrations, id)
	return nil
}

// seed helpers

func (s *store) seedParent(name, email, phone string) domain.Parent {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := domain.Parent{ID: s.id(), Name: name, Email: email, Phone: phone, Password: "hashed:secret", Role: domain.RoleParent}
	s.parents[p.ID] = p
	return p
}

func (s *store) seedChild(parentID int, name, email string) domain.Child {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := domain.Child{ID: s.id(), Name: name, Email: email, School: "Hillside", Password: "hashed:pw", Phone: domain.DefaultChildPhone, Role: domain.RoleChild, ParentID: parentID}
	s.children[c.ID] = c
	return c
}

func (s *store) seedCamp(name string) domain.Camp {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := domain.Camp{ID: s.id(), Name: name, Location: "Lakeside"}
	s.camps[c.ID] = c
	return c
}

func (s *store) seedTrip(name string) domain.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := domain.Trip{ID: s.id(), Name: name, Destination: "Falls"}
	s.trips[t.ID] = t
	return t
}

func messageOf(t *testing.T, err error) string {
	t.Helper()
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Message
}
