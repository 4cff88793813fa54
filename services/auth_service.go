package services

import (
	"time"

	"github.com/jibrilosman/self-order-kiosk/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService issues staff tokens for the order board and catalog admin.
type AuthService struct {
	pinHash   string
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(pinHash, secret string, ttl time.Duration) *AuthService {
	return &AuthService{pinHash: pinHash, jwtSecret: secret, jwtTTL: ttl}
}

func (s *AuthService) Enabled() bool {
	return s.jwtSecret != "" && s.pinHash != ""
}

// Login checks the staff PIN against its bcrypt hash and issues a token.
func (s *AuthService) Login(pin string) (string, error) {
	if !s.Enabled() {
		return "", ErrStaffAuthDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.pinHash), []byte(pin)); err != nil {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateToken(utils.RoleStaff, s.jwtSecret, s.jwtTTL)
}
