package auth_service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/tcp_snm/raffle/internal/service"
)

type AuthService struct {
	// bcrypt hash of the shared admin secret, computed once at startup
	// so the plain secret is not kept around in memory
	secretHash []byte
}

type AdminLoginRequest struct {
	AdminSecret string `json:"admin_secret" validate:"required"`
}

type AdminLoginResponse struct {
	Role string `json:"role"`
}

func New() (*AuthService, error) {
	secret, err := service.AdminSecret()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{secretHash: hash}, nil
}
