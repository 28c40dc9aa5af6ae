// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/moneybook/backend/internal/application/adapter"
)

// bcryptPasswordService hashes and verifies credentials with bcrypt.
type bcryptPasswordService struct {
	cost      int
	minLength int
}

// NewPasswordService creates the bcrypt-backed password service.
func NewPasswordService() adapter.PasswordService {
	return &bcryptPasswordService{cost: 12, minLength: 8}
}

func (s *bcryptPasswordService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (s *bcryptPasswordService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func (s *bcryptPasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < s.minLength {
		return fmt.Errorf("password must be at least %d characters long", s.minLength)
	}
	return nil
}
