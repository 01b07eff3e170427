package service

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/raffle/internal/raffle_errors"
)

const (
	KeyDBURL            = "DB_URL"
	KeyEnvironment      = "ENVIRONMENT"
	KeyAdminSecret      = "ADMIN_SECRET"
	KeyJWTSecret        = "JWT_SECRET"
	KeyAdminNotifyEmail = "ADMIN_NOTIFY_EMAIL"

	EnvProduction = "production"

	// development fallback so a bare checkout works without a .env
	DevDefaultAdminSecret = "test"
)

var (
	validate *validator.Validate
)

func InitializeServices() {
	validate = initValidator() // used for validating struct fields
}

func initValidator() *validator.Validate {
	log.Info("initializing validator")
	validate := validator.New(validator.WithRequiredStructEnabled())

	// This makes error.Field() return "entry_number" instead of "EntryNumber"
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validate
}

func IsProduction() bool {
	return strings.EqualFold(os.Getenv(KeyEnvironment), EnvProduction)
}

// AdminSecret resolves the shared admin secret. Development falls back
// to a well-known default, production must configure one explicitly.
func AdminSecret() (string, error) {
	secret := strings.TrimSpace(os.Getenv(KeyAdminSecret))
	if secret != "" {
		return secret, nil
	}
	if IsProduction() {
		return "", fmt.Errorf(
			"%w, %s is required in production",
			raffle_errors.ErrServerMisconfiguration,
			KeyAdminSecret,
		)
	}
	return DevDefaultAdminSecret, nil
}
