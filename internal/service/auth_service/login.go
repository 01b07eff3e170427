package auth_service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/tcp_snm/raffle/internal/raffle_errors"
	"github.com/tcp_snm/raffle/internal/service"
)

const sessionDuration = 12 * time.Hour

// Login exchanges the shared admin secret for a signed session token.
func (a *AuthService) Login(
	ctx context.Context,
	request AdminLoginRequest,
) (response AdminLoginResponse, token string, expiry time.Time, err error) {
	// validate the request shape
	if err = service.ValidateInput(request); err != nil {
		return
	}

	// compare against the startup hash
	if cmpErr := bcrypt.CompareHashAndPassword(
		a.secretHash,
		[]byte(request.AdminSecret),
	); cmpErr != nil {
		err = raffle_errors.ErrInvalidAdminSecret
		log.Warn("admin login rejected, secret mismatch")
		return
	}

	jwtSecret := os.Getenv(service.KeyJWTSecret)
	if jwtSecret == "" && service.IsProduction() {
		err = fmt.Errorf(
			"%w, %s is required in production",
			raffle_errors.ErrServerMisconfiguration,
			service.KeyJWTSecret,
		)
		log.Error(err)
		return
	}

	expiry = time.Now().Add(sessionDuration)
	claims := service.AdminSessionClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(jwtSecret))
	if err != nil {
		err = fmt.Errorf(
			"%w, cannot sign session token, %w",
			raffle_errors.ErrInternal,
			err,
		)
		log.Error(err)
		return
	}

	response = AdminLoginResponse{Role: "admin"}
	log.Info("admin logged in")
	return
}
