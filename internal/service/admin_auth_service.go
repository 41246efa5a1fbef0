package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AdminAuthService interface {
	Login(email, password string) (string, error)
}

type adminAuthService struct {
}

func NewAdminAuthService() AdminAuthService {
	return &adminAuthService{}
}

// Login checks the credentials against the ADMIN_EMAIL / ADMIN_PASSWORD_HASH
// environment pair and issues a short-lived JWT for the /admin endpoints.
// There is a single admin; no user store exists in this service.
func (s *adminAuthService) Login(email, password string) (string, error) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminEmail == "" || adminHash == "" {
		return "", errors.New("admin credentials not configured")
	}

	if email != adminEmail {
		return "", errors.New("invalid credentials")
	}

	// Comparamos o password com o hash bcrypt configurado
	if err := bcrypt.CompareHashAndPassword([]byte(adminHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Hour * 1).Unix(), // Token expira em 1 hora
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
