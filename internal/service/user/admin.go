package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
	"github.com/heartmarshall/wordforge-backend/pkg/ctxutil"
)

// AdminStats returns content and activity totals (admin only).
func (s *Service) AdminStats(ctx context.Context) (domain.AdminStats, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.AdminStats{}, domain.ErrForbidden
	}

	words, err := s.words.Count(ctx)
	if err != nil {
		return domain.AdminStats{}, fmt.Errorf("user.AdminStats: %w", err)
	}
	quizzes, err := s.quizzes.CountResults(ctx, nil)
	if err != nil {
		return domain.AdminStats{}, fmt.Errorf("user.AdminStats: %w", err)
	}
	learners, err := s.users.CountActiveLearners(ctx)
	if err != nil {
		return domain.AdminStats{}, fmt.Errorf("user.AdminStats: %w", err)
	}

	return domain.AdminStats{
		TotalWords:   words,
		TotalQuizzes: quizzes,
		TotalUsers:   learners,
		LastUpdated:  s.now().UTC(),
	}, nil
}

// Promote grants the admin role to the user with the given email. It is used
// by the operator CLI and is not exposed over HTTP.
func (s *Service) Promote(ctx context.Context, input PromoteInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if err := s.users.SetRoleByEmail(ctx, email, domain.UserRoleAdmin); err != nil {
		return fmt.Errorf("user.Promote: %w", err)
	}

	s.log.InfoContext(ctx, "user promoted to admin", slog.String("email", email))
	return nil
}
