package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"taxi/internal/config"
)

// AuthService issues and verifies the short-lived admin tokens that gate
// mutating endpoints. Tokens are stateless; expiry is the only way one
// stops working.
type AuthService struct {
	cfg config.AdminConfig
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg config.AdminConfig) *AuthService {
	return &AuthService{cfg: cfg}
}

// Login checks the supplied credentials against the configured admin pair
// and returns a signed token with an admin-role claim.
func (s *AuthService) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrMissingCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Password)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(s.cfg.TokenTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates a token's signature and expiry. Any failure maps to
// ErrUnauthorized; the caller never learns why a token was rejected.
func (s *AuthService) VerifyToken(tokenString string) error {
	if tokenString == "" {
		return ErrUnauthorized
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return ErrUnauthorized
	}
	return nil
}
