package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/raffle/internal/service"
)

/*
	context key types are used to avoid conflicts when sharing data via contexts
	visit https://vld.bg/articles/go-context-type/ for more info
*/
type contextKey string

const (
	KeyJwtSessionCookieName            = "jwt_session"
	KeyCtxAdminClaims       contextKey = "AdminClaims"

	headerAdminSecret = "x-admin-secret"
)

// AdminMiddleware guards mutating endpoints. It accepts either the jwt
// session cookie issued by the login endpoint or the raw shared secret
// in the x-admin-secret / Authorization header (compatibility with
// clients of the original deployment).
func AdminMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		expected, err := service.AdminSecret()
		if err != nil {
			log.Error(err)
			http.Error(w, "server misconfigured", http.StatusInternalServerError)
			return
		}

		if secretFromHeaders(r) == expected {
			next(w, r)
			return
		}

		claims, err := claimsFromSessionCookie(r)
		if err != nil {
			log.Warnf("rejected admin request to %s: %v", r.URL.Path, err)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), KeyCtxAdminClaims, claims)
		next(w, r.WithContext(ctx))
	}
}

func secretFromHeaders(r *http.Request) string {
	if secret := strings.TrimSpace(r.Header.Get(headerAdminSecret)); secret != "" {
		return secret
	}
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	if rest, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(rest)
	}
	return ""
}

func claimsFromSessionCookie(r *http.Request) (service.AdminSessionClaims, error) {
	var claims service.AdminSessionClaims

	cookie, err := r.Cookie(KeyJwtSessionCookieName)
	if err != nil {
		return claims, fmt.Errorf("no session cookie: %w", err)
	}

	// without a configured signing key every HS256 token would verify
	// against the empty key, so the cookie path is disabled entirely
	jwtSecret := os.Getenv(service.KeyJWTSecret)
	if jwtSecret == "" {
		return claims, fmt.Errorf("%s is not configured, session cookies are disabled", service.KeyJWTSecret)
	}

	token, err := jwt.ParseWithClaims(
		cookie.Value,
		&claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(jwtSecret), nil
		},
	)
	if err != nil {
		return claims, fmt.Errorf("cannot parse session token: %w", err)
	}
	if !token.Valid {
		return claims, fmt.Errorf("invalid session token")
	}

	return claims, nil
}
