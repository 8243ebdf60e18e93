package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/iliyamo/globetrotter/internal/config"
)

func testCfg() config.Config {
	return config.Config{
		JWTSecret:    "test-secret",
		AccessTTLMin: 15,
		BcryptCost:   4,
	}
}

func newAuthHandler() (*fakeStore, *AuthHandler) {
	f := newFakeStore()
	return f, NewAuthHandler(testCfg(), f, f)
}

func TestRegister(t *testing.T) {
	f, h := newAuthHandler()

	rec := doJSON(t, http.MethodPost, "/v1/auth/register",
		`{"name":"Ada","email":"ada@example.com","password":"hunter2"}`, 0, nil, h.Register)
	wantStatus(t, rec, http.StatusCreated)

	var resp struct {
		User struct {
			ID    uint64 `json:"user_id"`
			Email string `json:"email"`
		} `json:"user"`
		Access struct {
			Token string `json:"token"`
		} `json:"access"`
	}
	decodeBody(t, rec, &resp)
	if resp.User.ID == 0 || resp.User.Email != "ada@example.com" {
		t.Errorf("user part = %+v", resp.User)
	}
	if resp.Access.Token == "" {
		t.Error("register must return an access token")
	}

	u := f.users[resp.User.ID]
	if u.PasswordHash == "hunter2" || u.PasswordHash == "" {
		t.Error("stored credential must be a hash, not the plaintext")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f, h := newAuthHandler()
	f.addUser(t, "Ada", "ada@example.com", "original")

	rec := doJSON(t, http.MethodPost, "/v1/auth/register",
		`{"name":"Imposter","email":"ada@example.com","password":"other"}`, 0, nil, h.Register)
	wantStatus(t, rec, http.StatusConflict)
	if len(f.users) != 1 {
		t.Errorf("user count = %d, want 1 (conflict must not insert)", len(f.users))
	}
}

func TestRegisterCaseSensitiveEmailCheck(t *testing.T) {
	// The uniqueness check is an exact byte match, so a different casing of
	// an existing address registers as a new account.
	f, h := newAuthHandler()
	f.addUser(t, "Ada", "ada@example.com", "pw")

	rec := doJSON(t, http.MethodPost, "/v1/auth/register",
		`{"name":"Ada2","email":"Ada@example.com","password":"pw"}`, 0, nil, h.Register)
	wantStatus(t, rec, http.StatusCreated)
	if len(f.users) != 2 {
		t.Errorf("user count = %d, want 2", len(f.users))
	}
}

func TestRegisterMissingFields(t *testing.T) {
	_, h := newAuthHandler()
	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"no email", `{"name":"Ada","password":"pw"}`},
		{"no password", `{"name":"Ada","email":"a@b.c"}`},
		{"blank name", `{"name":"  ","email":"a@b.c","password":"pw"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, http.MethodPost, "/v1/auth/register", tt.body, 0, nil, h.Register)
			wantStatus(t, rec, http.StatusBadRequest)
		})
	}
}

func TestLogin(t *testing.T) {
	f, h := newAuthHandler()
	id := f.addUser(t, "Ada", "ada@example.com", "hunter2")

	rec := doJSON(t, http.MethodPost, "/v1/auth/login",
		`{"email":"ada@example.com","password":"hunter2"}`, 0, nil, h.Login)
	wantStatus(t, rec, http.StatusOK)

	var resp struct {
		User struct {
			ID uint64 `json:"user_id"`
		} `json:"user"`
		Access struct {
			Token string `json:"token"`
		} `json:"access"`
	}
	decodeBody(t, rec, &resp)
	if resp.User.ID != id {
		t.Errorf("user id = %d, want %d", resp.User.ID, id)
	}
	if resp.Access.Token == "" {
		t.Error("login must return an access token")
	}
}

func TestLoginRejections(t *testing.T) {
	f, h := newAuthHandler()
	f.addUser(t, "Ada", "ada@example.com", "hunter2")

	tests := []struct {
		name string
		body string
	}{
		{"wrong password", `{"email":"ada@example.com","password":"wrong"}`},
		{"unknown email", `{"email":"ghost@example.com","password":"hunter2"}`},
	}
	var bodies []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, http.MethodPost, "/v1/auth/login", tt.body, 0, nil, h.Login)
			wantStatus(t, rec, http.StatusUnauthorized)
			bodies = append(bodies, rec.Body.String())
		})
	}
	// Both failures must look identical so the endpoint does not reveal
	// which accounts exist.
	if len(bodies) == 2 && bodies[0] != bodies[1] {
		t.Errorf("rejection bodies differ: %q vs %q", bodies[0], bodies[1])
	}
}

func TestGetUser(t *testing.T) {
	f, h := newAuthHandler()
	id := f.addUser(t, "Ada", "ada@example.com", "pw")

	rec := doJSON(t, http.MethodGet, "/v1/users/1", "", 0, map[string]string{"id": "1"}, h.GetUser)
	wantStatus(t, rec, http.StatusOK)
	var resp struct {
		ID    uint64 `json:"user_id"`
		Email string `json:"email"`
	}
	decodeBody(t, rec, &resp)
	if resp.ID != id || resp.Email != "ada@example.com" {
		t.Errorf("resp = %+v", resp)
	}
	if strings.Contains(rec.Body.String(), f.users[id].PasswordHash) {
		t.Error("profile response leaks the password hash")
	}

	rec = doJSON(t, http.MethodGet, "/v1/users/99", "", 0, map[string]string{"id": "99"}, h.GetUser)
	wantStatus(t, rec, http.StatusNotFound)
}
