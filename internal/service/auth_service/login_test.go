package auth_service

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"

	"github.com/tcp_snm/raffle/internal/raffle_errors"
	"github.com/tcp_snm/raffle/internal/service"
)

func TestMain(m *testing.M) {
	logrus.SetLevel(logrus.ErrorLevel)
	service.InitializeServices()
	os.Exit(m.Run())
}

func TestLogin(t *testing.T) {
	// development mode, default shared secret
	t.Setenv(service.KeyEnvironment, "development")
	t.Setenv(service.KeyAdminSecret, "")
	t.Setenv(service.KeyJWTSecret, "unit-test-secret")

	auth, err := New()
	if err != nil {
		t.Fatalf("cannot construct auth service: %v", err)
	}

	t.Run("correct secret issues a session", func(t *testing.T) {
		response, token, expiry, err := auth.Login(
			context.Background(),
			AdminLoginRequest{AdminSecret: service.DevDefaultAdminSecret},
		)
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if response.Role != "admin" {
			t.Errorf("role = %q, want admin", response.Role)
		}
		if time.Until(expiry) < 11*time.Hour {
			t.Errorf("session expiry too soon: %v", expiry)
		}

		var claims service.AdminSessionClaims
		_, err = jwt.ParseWithClaims(
			token,
			&claims,
			func(*jwt.Token) (interface{}, error) {
				return []byte("unit-test-secret"), nil
			},
		)
		if err != nil {
			t.Fatalf("cannot parse issued token: %v", err)
		}
		if claims.Role != "admin" {
			t.Errorf("token role = %q, want admin", claims.Role)
		}
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		_, _, _, err := auth.Login(
			context.Background(),
			AdminLoginRequest{AdminSecret: "not-the-secret"},
		)
		if !errors.Is(err, raffle_errors.ErrInvalidAdminSecret) {
			t.Fatalf("got err=%v, want ErrInvalidAdminSecret", err)
		}
	})

	t.Run("empty secret fails validation", func(t *testing.T) {
		_, _, _, err := auth.Login(context.Background(), AdminLoginRequest{})
		if !errors.Is(err, raffle_errors.ErrInvalidRequest) {
			t.Fatalf("got err=%v, want ErrInvalidRequest", err)
		}
	})
}
