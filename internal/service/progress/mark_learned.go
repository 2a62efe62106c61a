package progress

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
	"github.com/heartmarshall/wordforge-backend/pkg/ctxutil"
)

// MarkLearnedResult is the outcome of marking a word learned.
type MarkLearnedResult struct {
	Progress  domain.UserProgress
	Streak    domain.LearningStreak
	NewBadges []domain.Badge
}

// MarkLearned flags the word as learned for the calling user, records today
// as a review day, refreshes the stored streak, and awards any badges now
// earned. An unknown word yields domain.ErrNotFound.
func (s *Service) MarkLearned(ctx context.Context, wordID uuid.UUID) (MarkLearnedResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return MarkLearnedResult{}, domain.ErrUnauthorized
	}
	if wordID == uuid.Nil {
		return MarkLearnedResult{}, domain.NewValidationError("word_id", "required")
	}

	now := s.now().UTC()
	var out MarkLearnedResult

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.progress.MarkLearned(ctx, userID, wordID, now)
		if err != nil {
			return err
		}
		out.Progress = p

		if err := s.progress.AddReviewDay(ctx, userID, now); err != nil {
			return fmt.Errorf("add review day: %w", err)
		}

		days, err := s.progress.ReviewDays(ctx, userID, time.Time{})
		if err != nil {
			return err
		}
		streak, err := s.progress.SaveStreak(ctx, userID, domain.CalculateStreak(days, now), now)
		if err != nil {
			return fmt.Errorf("save streak: %w", err)
		}
		out.Streak = streak

		learned, err := s.progress.CountLearned(ctx, userID)
		if err != nil {
			return err
		}

		for _, rule := range earnedBadges(learned, streak.CurrentDays) {
			b := domain.Badge{UserID: userID, Code: rule.code, Name: rule.name, EarnedAt: now}
			awarded, err := s.progress.AwardBadge(ctx, &b)
			if err != nil {
				return fmt.Errorf("award badge %s: %w", rule.code, err)
			}
			if awarded {
				out.NewBadges = append(out.NewBadges, b)
			}
		}
		return nil
	})
	if err != nil {
		return MarkLearnedResult{}, fmt.Errorf("progress.MarkLearned: %w", err)
	}

	s.log.InfoContext(ctx, "word marked learned",
		slog.String("user_id", userID.String()),
		slog.String("word_id", wordID.String()),
		slog.Int("streak", out.Streak.CurrentDays),
		slog.Int("new_badges", len(out.NewBadges)),
	)
	return out, nil
}
