package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/tcp_snm/raffle/internal/service"
)

func adminToken(t *testing.T, key string) string {
	t.Helper()
	claims := service.AdminSessionClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(key))
	if err != nil {
		t.Fatalf("cannot sign test token: %v", err)
	}
	return token
}

func callAdminMiddleware(r *http.Request) (int, bool) {
	called := false
	rec := httptest.NewRecorder()
	AdminMiddleware(func(http.ResponseWriter, *http.Request) {
		called = true
	})(rec, r)
	return rec.Code, called
}

func TestAdminMiddlewareRejectsCookieWithoutConfiguredKey(t *testing.T) {
	t.Setenv(service.KeyEnvironment, "production")
	t.Setenv(service.KeyAdminSecret, "prod-secret")
	t.Setenv(service.KeyJWTSecret, "")

	// a token signed with the empty key must not grant admin access
	// when no signing key is configured
	r := httptest.NewRequest(http.MethodPost, "/v1/prizes", nil)
	r.AddCookie(&http.Cookie{
		Name:  KeyJwtSessionCookieName,
		Value: adminToken(t, ""),
	})

	code, called := callAdminMiddleware(r)
	if called {
		t.Fatal("handler invoked for a token signed with the empty key")
	}
	if code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", code, http.StatusUnauthorized)
	}
}

func TestAdminMiddlewareAcceptsValidSessionCookie(t *testing.T) {
	t.Setenv(service.KeyEnvironment, "production")
	t.Setenv(service.KeyAdminSecret, "prod-secret")
	t.Setenv(service.KeyJWTSecret, "session-signing-key")

	r := httptest.NewRequest(http.MethodPost, "/v1/prizes", nil)
	r.AddCookie(&http.Cookie{
		Name:  KeyJwtSessionCookieName,
		Value: adminToken(t, "session-signing-key"),
	})

	code, called := callAdminMiddleware(r)
	if !called {
		t.Fatalf("handler not invoked, status %d", code)
	}
}

func TestAdminMiddlewareRejectsWrongKeySignature(t *testing.T) {
	t.Setenv(service.KeyEnvironment, "production")
	t.Setenv(service.KeyAdminSecret, "prod-secret")
	t.Setenv(service.KeyJWTSecret, "session-signing-key")

	r := httptest.NewRequest(http.MethodPost, "/v1/prizes", nil)
	r.AddCookie(&http.Cookie{
		Name:  KeyJwtSessionCookieName,
		Value: adminToken(t, "some-other-key"),
	})

	code, called := callAdminMiddleware(r)
	if called || code != http.StatusUnauthorized {
		t.Fatalf("forged signature passed: called=%v status=%d", called, code)
	}
}

func TestAdminMiddlewareAcceptsSecretHeader(t *testing.T) {
	t.Setenv(service.KeyEnvironment, "production")
	t.Setenv(service.KeyAdminSecret, "prod-secret")
	t.Setenv(service.KeyJWTSecret, "")

	r := httptest.NewRequest(http.MethodPost, "/v1/prizes", nil)
	r.Header.Set("x-admin-secret", "prod-secret")

	if code, called := callAdminMiddleware(r); !called {
		t.Fatalf("handler not invoked, status %d", code)
	}

	r = httptest.NewRequest(http.MethodPost, "/v1/prizes", nil)
	r.Header.Set("Authorization", "Bearer prod-secret")

	if code, called := callAdminMiddleware(r); !called {
		t.Fatalf("handler not invoked for bearer form, status %d", code)
	}
}
