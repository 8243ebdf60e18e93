package handler

// store_test.go provides in-memory fakes for the storage ports and the
// user store so the HTTP layer can be exercised with httptest, without a
// database behind it.

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/globetrotter/internal/model"
	"github.com/iliyamo/globetrotter/internal/repository"
	"github.com/iliyamo/globetrotter/internal/service"
	"github.com/iliyamo/globetrotter/internal/utils"
)

type fakeStore struct {
	users      map[uint64]model.User
	cities     map[uint64]bool
	activities map[uint64]*int64
	trips      map[uint64]*model.Trip
	stops      []*model.TripStop
	stopActs   []*model.StopActivity
	budgets    map[uint64]int64
	nextID     uint64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:      map[uint64]model.User{},
		cities:     map[uint64]bool{},
		activities: map[uint64]*int64{},
		trips:      map[uint64]*model.Trip{},
		budgets:    map[uint64]int64{},
	}
}

func (f *fakeStore) id() uint64 {
	f.nextID++
	return f.nextID
}

// addUser seeds a user with a real bcrypt hash so Login can verify it.
func (f *fakeStore) addUser(t *testing.T, name, email, password string) uint64 {
	t.Helper()
	hash, err := utils.HashPassword(password, 4)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	id := f.id()
	f.users[id] = model.User{ID: id, Name: name, Email: email, PasswordHash: hash}
	return id
}

// ---- UserStore / EmailChecker ----

func (f *fakeStore) Create(ctx context.Context, name, email, password string, cost int) (uint64, error) {
	for _, u := range f.users {
		if u.Email == email {
			return 0, repository.ErrEmailExists
		}
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	id := f.id()
	f.users[id] = model.User{ID: id, Name: name, Email: email, PasswordHash: hash}
	return id, nil
}

func (f *fakeStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, repository.ErrUserNotFound
}

func (f *fakeStore) GetByID(_ context.Context, id uint64) (model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeStore) EmailTaken(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// ---- ReferenceChecker ----

func (f *fakeStore) Exists(_ context.Context, kind repository.RefKind, id uint64) (bool, error) {
	switch kind {
	case repository.KindUser:
		_, ok := f.users[id]
		return ok, nil
	case repository.KindTrip:
		_, ok := f.trips[id]
		return ok, nil
	case repository.KindCity:
		return f.cities[id], nil
	case repository.KindStop:
		for _, s := range f.stops {
			if s.ID == id {
				return true, nil
			}
		}
		return false, nil
	case repository.KindActivity:
		_, ok := f.activities[id]
		return ok, nil
	}
	return false, nil
}

// ---- TripStore ----

type tripAdapter struct{ *fakeStore }

func (a tripAdapter) Create(_ context.Context, t *model.Trip) error {
	t.ID = a.id()
	cp := *t
	a.trips[t.ID] = &cp
	return nil
}

func (a tripAdapter) GetByID(_ context.Context, id uint64) (*model.Trip, error) {
	t, ok := a.trips[id]
	if !ok {
		return nil, repository.ErrTripNotFound
	}
	cp := *t
	return &cp, nil
}

func (a tripAdapter) ListByUser(_ context.Context, userID uint64) ([]*model.Trip, error) {
	var out []*model.Trip
	for id := uint64(1); id <= a.nextID; id++ {
		if t, ok := a.trips[id]; ok && t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (a tripAdapter) Delete(_ context.Context, id uint64) error {
	if _, ok := a.trips[id]; !ok {
		return repository.ErrTripNotFound
	}
	delete(a.trips, id)
	return nil
}

// ---- StopStore ----

type stopAdapter struct{ *fakeStore }

func (a stopAdapter) Create(_ context.Context, s *model.TripStop) error {
	s.ID = a.id()
	cp := *s
	a.stops = append(a.stops, &cp)
	return nil
}

func (a stopAdapter) ListByTrip(_ context.Context, tripID uint64) ([]*model.TripStop, error) {
	var out []*model.TripStop
	for _, s := range a.stops {
		if s.TripID == tripID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ---- StopActivityStore ----

type stopActAdapter struct{ *fakeStore }

func (a stopActAdapter) Create(_ context.Context, sa *model.StopActivity) error {
	sa.ID = a.id()
	cp := *sa
	a.stopActs = append(a.stopActs, &cp)
	return nil
}

func (a stopActAdapter) ListByStop(_ context.Context, stopID uint64) ([]*model.StopActivity, error) {
	var out []*model.StopActivity
	for _, sa := range a.stopActs {
		if sa.StopID == stopID {
			cp := *sa
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ---- BudgetStore ----

type budgetAdapter struct{ *fakeStore }

func (a budgetAdapter) Upsert(_ context.Context, tripID uint64, estimated int64) (model.Budget, error) {
	a.budgets[tripID] = estimated
	return model.Budget{TripID: tripID, EstimatedBudget: estimated}, nil
}

func (a budgetAdapter) GetByTrip(_ context.Context, tripID uint64) (model.Budget, error) {
	v, ok := a.budgets[tripID]
	if !ok {
		return model.Budget{}, repository.ErrBudgetNotFound
	}
	return model.Budget{TripID: tripID, EstimatedBudget: v}, nil
}

func (a budgetAdapter) ActivityCostsByTrip(_ context.Context, tripID uint64) ([]*int64, error) {
	var out []*int64
	for _, sa := range a.stopActs {
		for _, s := range a.stops {
			if s.ID == sa.StopID && s.TripID == tripID {
				out = append(out, a.activities[sa.ActivityID])
			}
		}
	}
	return out, nil
}

// newHandlers builds the trip and budget handlers over a fresh fake.
func newHandlers() (*fakeStore, *TripHandler, *BudgetHandler) {
	f := newFakeStore()
	it := service.NewItineraryService(f, tripAdapter{f}, stopAdapter{f}, stopActAdapter{f})
	bu := service.NewBudgetService(f, budgetAdapter{f})
	return f, NewTripHandler(it), NewBudgetHandler(bu)
}

// doJSON drives a handler directly through an echo context. asUser > 0
// plants the id the JWT middleware would have set.
func doJSON(t *testing.T, method, target, body string, asUser uint64, params map[string]string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if asUser > 0 {
		c.Set("user_id", float64(asUser))
	}
	if len(params) > 0 {
		names := make([]string, 0, len(params))
		values := make([]string, 0, len(params))
		for k, v := range params {
			names = append(names, k)
			values = append(values, v)
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func itoa(n uint64) string { return strconv.FormatUint(n, 10) }

func wantStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, want, rec.Body.String())
	}
}
