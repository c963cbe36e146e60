package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/csbs-dept/portal-api/internal/config"
)

func TestMiddleware(t *testing.T) {
	handler := NewAuthHandler(testConfig())

	protected := handler.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("No token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/notices", nil)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("Malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/notices", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("Invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/notices", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("Token signed with another secret", func(t *testing.T) {
		other := NewAuthHandler(&config.Config{JWTSecret: "other-secret", AdminUsername: "admin", AdminPassword: "admin123"})
		token, err := other.GenerateToken("admin")
		if err != nil {
			t.Fatalf("GenerateToken returned error: %v", err)
		}

		req := httptest.NewRequest(http.MethodPost, "/api/notices", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("Valid token", func(t *testing.T) {
		token, err := handler.GenerateToken("admin")
		if err != nil {
			t.Fatalf("GenerateToken returned error: %v", err)
		}

		req := httptest.NewRequest(http.MethodPost, "/api/notices", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})
}
