package professional

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"beautybook/models"
	"beautybook/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 7 * 24 * time.Hour

// ErrInvalidCredentials is returned when email or password do not match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Register creates a new professional account and returns it with a signed
// session token.
func (s *DefaultProfessionalService) Register(req RegisterRequest) (*models.Professional, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || strings.TrimSpace(req.Name) == "" {
		return nil, "", errors.New("name and email are required")
	}
	if len(req.Password) < 8 {
		return nil, "", errors.New("password must be at least 8 characters")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, "", fmt.Errorf("an account with email %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	prof := &models.Professional{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		Specialty:    strings.TrimSpace(req.Specialty),
		Availability: models.WeeklyAvailability{},
		Security:     models.Security{PasswordHash: string(hash)},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	token, err := utils.GenerateToken(prof.ID, prof.Email, tokenLifetime)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	prof.Security.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(prof); err != nil {
		return nil, "", err
	}
	return prof, token, nil
}

// Authenticate verifies credentials and rotates the session token.
func (s *DefaultProfessionalService) Authenticate(email, password string) (*models.Professional, string, error) {
	prof, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch account: %w", err)
	}
	if prof == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(prof.Security.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(prof.ID, prof.Email, tokenLifetime)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	prof.Security.TokenHash = utils.HashToken(token)

	if err := s.Repo.UpdateFields(prof.ID, map[string]interface{}{
		"security.tokenHash": prof.Security.TokenHash,
	}); err != nil {
		return nil, "", err
	}
	return prof, token, nil
}
