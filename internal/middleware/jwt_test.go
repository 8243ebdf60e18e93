package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/globetrotter/internal/utils"
)

func TestJWTAuth(t *testing.T) {
	const secret = "test-secret"
	at, err := utils.NewAccessToken(secret, 42, 5)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	other, err := utils.NewAccessToken("other-secret", 42, 5)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantSub    bool
	}{
		{"valid token", "Bearer " + at.Token, http.StatusOK, true},
		{"missing header", "", http.StatusUnauthorized, false},
		{"not bearer", "Basic abc", http.StatusUnauthorized, false},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized, false},
		{"wrong secret", "Bearer " + other.Token, http.StatusUnauthorized, false},
	}

	mw := JWTAuth(secret)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotSub interface{}
			h := mw(func(c echo.Context) error {
				gotSub = c.Get("user_id")
				return c.NoContent(http.StatusOK)
			})

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			if err := h(e.NewContext(req, rec)); err != nil {
				t.Fatalf("handler: %v", err)
			}
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantSub {
				sub, ok := gotSub.(float64)
				if !ok || uint64(sub) != 42 {
					t.Errorf("user_id = %v, want 42", gotSub)
				}
			}
		})
	}
}
