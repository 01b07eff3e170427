package service

import "github.com/golang-jwt/jwt/v4"

type AdminSessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
