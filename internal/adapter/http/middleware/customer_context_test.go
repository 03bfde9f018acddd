package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "session-secret"

func signedToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	claims := customerClaims{
		Email: "Dana@Example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "c-1",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func newTestRouter(secret string) (*gin.Engine, *gin.Context) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var captured gin.Context
	r.Use(CustomerContext(secret))
	r.GET("/whoami", func(c *gin.Context) {
		captured = *c.Copy()
		c.Status(http.StatusOK)
	})
	return r, &captured
}

func TestCustomerContext(t *testing.T) {
	t.Run("no header means guest", func(t *testing.T) {
		r, captured := newTestRouter(testSecret)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if captured.GetString(ContextCustomerID) != "" {
			t.Fatalf("guest request must not carry a customer id")
		}
	})

	t.Run("valid token sets identity", func(t *testing.T) {
		r, captured := newTestRouter(testSecret)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, time.Now().Add(time.Hour)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if captured.GetString(ContextCustomerID) != "c-1" {
			t.Fatalf("expected customer id, got %q", captured.GetString(ContextCustomerID))
		}
		if captured.GetString(ContextCustomerEmail) != "dana@example.com" {
			t.Fatalf("expected lowercased email, got %q", captured.GetString(ContextCustomerEmail))
		}
	})

	t.Run("expired token rejected", func(t *testing.T) {
		r, _ := newTestRouter(testSecret)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, time.Now().Add(-time.Hour)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		r, _ := newTestRouter(testSecret)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, "other-secret", time.Now().Add(time.Hour)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("token rejected when no secret configured", func(t *testing.T) {
		r, captured := newTestRouter("")

		// A token signed with the empty key must not authenticate just
		// because the server has no secret of its own.
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, "", time.Now().Add(time.Hour)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if captured.GetString(ContextCustomerID) != "" {
			t.Fatalf("forged token must not set a customer id")
		}
	})

	t.Run("malformed scheme treated as guest", func(t *testing.T) {
		r, captured := newTestRouter(testSecret)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if captured.GetString(ContextCustomerID) != "" {
			t.Fatalf("malformed header must not authenticate")
		}
	})
}
