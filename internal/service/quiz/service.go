// Package quiz generates vocabulary quizzes and scores submissions.
package quiz

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
	"github.com/heartmarshall/wordforge-backend/internal/service/generation"
)

type quizRepo interface {
	Create(ctx context.Context, q *domain.Quiz) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Quiz, error)
	CreateResult(ctx context.Context, res *domain.QuizResult) error
}

type wordRepo interface {
	RecentTexts(ctx context.Context, difficulty *string, limit int) ([]string, error)
}

type quizGenerator interface {
	Quiz(ctx context.Context, p generation.QuizParams) (string, error)
}

// Service implements quiz generation and submission.
type Service struct {
	log     *slog.Logger
	quizzes quizRepo
	words   wordRepo
	gen     quizGenerator
	now     func() time.Time
}

// NewService creates a quiz service.
func NewService(logger *slog.Logger, quizzes quizRepo, words wordRepo, gen quizGenerator) *Service {
	return &Service{
		log:     logger.With("service", "quiz"),
		quizzes: quizzes,
		words:   words,
		gen:     gen,
		now:     time.Now,
	}
}
