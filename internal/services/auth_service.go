package services

import (
	"context"
	"errors"
	"fmt"

	"booking_backend/internal/models"
	"booking_backend/internal/repositories"
	"booking_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors ---
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmptyPassword      = errors.New("admin password must not be empty")
)

// --- AuthService Interface ---
type AuthService interface {
	// LoginAdmin returns the admin iff username exists and password matches its hash.
	LoginAdmin(ctx context.Context, creds models.Credentials) (*models.AdminUser, error)
	// EnsureAdmin seeds the admin account if no user with that username exists.
	EnsureAdmin(ctx context.Context, username, password string) error
}

type authService struct {
	authRepo repositories.AuthRepository
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(authRepo repositories.AuthRepository) AuthService {
	return &authService{authRepo: authRepo}
}

// HashPassword bcrypt-hashes a plaintext password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (s *authService) LoginAdmin(ctx context.Context, creds models.Credentials) (*models.AdminUser, error) {
	user, err := s.authRepo.FindAdminByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login attempt failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		// bcrypt.ErrMismatchedHashAndPassword, or a corrupt stored hash
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) EnsureAdmin(ctx context.Context, username, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}

	_, err := s.authRepo.FindAdminByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := s.authRepo.CreateAdminUser(ctx, username, hash); err != nil {
		// another instance seeded it between the lookup and the insert
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil
		}
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	utils.LogInfo("Seeded admin user", map[string]interface{}{"username": username})
	return nil
}
