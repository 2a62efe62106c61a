package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
	"github.com/heartmarshall/wordforge-backend/pkg/ctxutil"
)

// RecentBadgeLimit is how many badges a profile shows.
const RecentBadgeLimit = 5

// Profile is a user with aggregate stats and recent badges.
type Profile struct {
	User         domain.User
	Stats        domain.UserStats
	RecentBadges []domain.Badge
}

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Profile{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return Profile{}, fmt.Errorf("user.GetProfile: %w", err)
	}

	learned, err := s.progress.CountLearned(ctx, userID)
	if err != nil {
		return Profile{}, fmt.Errorf("user.GetProfile: %w", err)
	}
	badgeCount, err := s.progress.CountBadges(ctx, userID)
	if err != nil {
		return Profile{}, fmt.Errorf("user.GetProfile: %w", err)
	}
	badges, err := s.progress.ListBadges(ctx, userID, RecentBadgeLimit)
	if err != nil {
		return Profile{}, fmt.Errorf("user.GetProfile: %w", err)
	}
	quizzes, err := s.quizzes.CountResults(ctx, &userID)
	if err != nil {
		return Profile{}, fmt.Errorf("user.GetProfile: %w", err)
	}

	// A user who never reviewed has no streak row.
	streak, err := s.progress.GetStreak(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return Profile{}, fmt.Errorf("user.GetProfile: %w", err)
	}

	return Profile{
		User: user,
		Stats: domain.UserStats{
			WordsLearned:     learned,
			TotalBadges:      badgeCount,
			QuizzesCompleted: quizzes,
			CurrentStreak:    streak.CurrentDays,
			LongestStreak:    streak.LongestDays,
			MemberSince:      user.CreatedAt,
		},
		RecentBadges: badges,
	}, nil
}

// UpdateName changes the authenticated user's display name.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) UpdateName(ctx context.Context, input UpdateNameInput) (domain.User, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return domain.User{}, err
	}

	// Step 2: Extract userID from context
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.User{}, domain.ErrUnauthorized
	}

	// Step 3: Update name
	user, err := s.users.UpdateName(ctx, userID, strings.TrimSpace(input.Name))
	if err != nil {
		return domain.User{}, fmt.Errorf("user.UpdateName: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()))

	return user, nil
}
