// Package content generates and serves stories, grammar lessons,
// pronunciation guides, idioms, and the free-form practice activities.
package content

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Constants
// ---------------------------------------------------------------------------

const (
	StoryListLimit    = 20
	DefaultIdiomLimit = 20
	MaxIdiomLimit     = 100
	MaxStoryWords     = 20
	DefaultStoryTheme = "adventure"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type contentRepo interface {
	CreateStory(ctx context.Context, s *domain.Story) error
	ListStories(ctx context.Context, limit int) ([]domain.Story, error)
	CreateLesson(ctx context.Context, l *domain.GrammarLesson) error
	GetLesson(ctx context.Context, id uuid.UUID) (domain.GrammarLesson, error)
	GetGuideByWord(ctx context.Context, word string) (domain.PronunciationGuide, error)
	CreateGuide(ctx context.Context, g *domain.PronunciationGuide) error
}

type idiomRepo interface {
	ExistsByText(ctx context.Context, text string) (bool, error)
	Create(ctx context.Context, i *domain.Idiom) error
	List(ctx context.Context, limit int) ([]domain.Idiom, error)
}

type generator interface {
	Story(ctx context.Context, theme string, difficulty domain.Difficulty, words []string) (domain.Story, error)
	Lesson(ctx context.Context, topic string, difficulty domain.Difficulty) (domain.GrammarLesson, error)
	Guide(ctx context.Context, word string) (domain.PronunciationGuide, error)
	Idioms(ctx context.Context, count int) ([]domain.Idiom, error)
	WordAssociation(ctx context.Context, difficulty domain.Difficulty) (json.RawMessage, error)
	ConversationStarters(ctx context.Context, difficulty domain.Difficulty) (json.RawMessage, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the content business logic.
type Service struct {
	log     *slog.Logger
	content contentRepo
	idioms  idiomRepo
	gen     generator
	tx      txManager
	now     func() time.Time
}

// NewService creates a new content service.
func NewService(
	logger *slog.Logger,
	content contentRepo,
	idioms idiomRepo,
	gen generator,
	tx txManager,
) *Service {
	return &Service{
		log:     logger.With("service", "content"),
		content: content,
		idioms:  idioms,
		gen:     gen,
		tx:      tx,
		now:     time.Now,
	}
}
