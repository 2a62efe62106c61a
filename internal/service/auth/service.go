package auth

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordforge-backend/internal/config"
	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

// tokenIssuer defines the token generation interface needed by auth service.
type tokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, role string, email string) (string, error)
}

// Service implements auth operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenIssuer
	cfg    config.AuthConfig
	suffix func() string
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, tokens tokenIssuer, cfg config.AuthConfig) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tokens: tokens,
		cfg:    cfg,
		suffix: randomSuffix,
	}
}

// issueToken signs an access token for the user and wraps it in an AuthResult.
// Emails listed in admin_emails are issued the admin role.
func (s *Service) issueToken(u domain.User) (AuthResult, error) {
	role := u.Role
	if s.cfg.IsAdminEmail(u.Email) {
		role = domain.UserRoleAdmin
	}

	token, err := s.tokens.GenerateAccessToken(u.ID, role.String(), u.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("generate access token: %w", err)
	}
	return AuthResult{Token: token, User: u}, nil
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSuffix() string {
	b := make([]byte, 3)
	for i := range b {
		b[i] = suffixAlphabet[rand.IntN(len(suffixAlphabet))]
	}
	return string(b)
}
