package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

// usernameAttempts bounds retries when a generated username is taken.
const usernameAttempts = 3

// Register creates a new user with email + password authentication.
// Returns ErrAlreadyExists if the email is already registered.
func (s *Service) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	// Normalize input before validation.
	input.Email = normalizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return AuthResult{}, err
	}

	// Step 2: Reject a taken email before paying for the hash
	_, err := s.users.GetByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return AuthResult{}, fmt.Errorf("auth.Register: email %s: %w", input.Email, domain.ErrAlreadyExists)
	case !errors.Is(err, domain.ErrNotFound):
		return AuthResult{}, fmt.Errorf("auth.Register get user: %w", err)
	}

	// Step 3: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Step 4: Create the user. Email and username uniqueness are enforced by
	// DB constraints; a clash retries with a new username suffix.
	local, _, _ := strings.Cut(input.Email, "@")
	var user domain.User
	for attempt := 1; ; attempt++ {
		user = domain.User{
			Email:        input.Email,
			Username:     local + s.suffix(),
			Name:         input.Name,
			PasswordHash: string(hash),
			Role:         domain.UserRoleUser,
		}
		err = s.users.Create(ctx, &user)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrAlreadyExists) || attempt == usernameAttempts {
			return AuthResult{}, fmt.Errorf("auth.Register: %w", err)
		}
	}

	// Step 5: Issue token
	result, err := s.issueToken(user)
	if err != nil {
		return AuthResult{}, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))

	return result, nil
}
