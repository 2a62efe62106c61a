package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (domain.User, error)
	SetRoleByEmail(ctx context.Context, email string, role domain.UserRole) error
	CountActiveLearners(ctx context.Context) (int, error)
}

// progressRepo defines the progress reads needed for profile stats.
type progressRepo interface {
	CountLearned(ctx context.Context, userID uuid.UUID) (int, error)
	GetStreak(ctx context.Context, userID uuid.UUID) (domain.LearningStreak, error)
	CountBadges(ctx context.Context, userID uuid.UUID) (int, error)
	ListBadges(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Badge, error)
}

// quizRepo defines the quiz result counts needed by user service.
type quizRepo interface {
	CountResults(ctx context.Context, userID *uuid.UUID) (int, error)
}

// wordRepo defines the word count needed for admin stats.
type wordRepo interface {
	Count(ctx context.Context) (int, error)
}

// Service implements user profile and admin operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	progress progressRepo
	quizzes  quizRepo
	words    wordRepo
	now      func() time.Time
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	progress progressRepo,
	quizzes quizRepo,
	words wordRepo,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		progress: progress,
		quizzes:  quizzes,
		words:    words,
		now:      time.Now,
	}
}
