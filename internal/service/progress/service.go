// Package progress tracks learned words, review streaks, and badges.
package progress

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

type progressRepo interface {
	MarkLearned(ctx context.Context, userID uuid.UUID, wordID uuid.UUID, at time.Time) (domain.UserProgress, error)
	ListWithWords(ctx context.Context, userID uuid.UUID) ([]domain.UserProgress, error)
	CountLearned(ctx context.Context, userID uuid.UUID) (int, error)
	AddReviewDay(ctx context.Context, userID uuid.UUID, at time.Time) error
	ReviewDays(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)
	SaveStreak(ctx context.Context, userID uuid.UUID, current int, lastActive time.Time) (domain.LearningStreak, error)
	AwardBadge(ctx context.Context, b *domain.Badge) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the progress operations.
type Service struct {
	log      *slog.Logger
	progress progressRepo
	tx       txManager
	now      func() time.Time
}

// NewService creates a progress service.
func NewService(logger *slog.Logger, progress progressRepo, tx txManager) *Service {
	return &Service{
		log:      logger.With("service", "progress"),
		progress: progress,
		tx:       tx,
		now:      time.Now,
	}
}
