package vocabulary

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
	"github.com/heartmarshall/wordforge-backend/internal/service/generation"
)

type wordRepo interface {
	ExistsByText(ctx context.Context, text string) (bool, error)
	Create(ctx context.Context, w *domain.Word) error
	MarkWordOfTheDay(ctx context.Context, id uuid.UUID, day time.Time) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Word, error)
	GetWordOfTheDay(ctx context.Context, day time.Time) (domain.Word, error)
	List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error)
	Search(ctx context.Context, term string, limit int) ([]domain.Word, error)
	NextUnseen(ctx context.Context, userID *uuid.UUID) (domain.Word, error)
}

type progressRepo interface {
	RecordView(ctx context.Context, userID uuid.UUID, wordID uuid.UUID, at time.Time) error
}

type wordGenerator interface {
	Words(ctx context.Context, count int) (generation.WordBatch, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements word generation and the word read operations.
type Service struct {
	log      *slog.Logger
	words    wordRepo
	progress progressRepo
	gen      wordGenerator
	tx       txManager
	now      func() time.Time
}

// NewService creates a vocabulary service.
func NewService(
	logger *slog.Logger,
	words wordRepo,
	progress progressRepo,
	gen wordGenerator,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "vocabulary"),
		words:    words,
		progress: progress,
		gen:      gen,
		tx:       tx,
		now:      time.Now,
	}
}
