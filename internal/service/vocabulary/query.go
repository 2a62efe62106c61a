package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	SearchLimit     = 20
)

// ListInput holds the parameters of a word listing.
type ListInput struct {
	Difficulty *string
	Category   *string
	Cursor     *uuid.UUID
	Limit      int
}

// List returns one page of words, newest first.
func (s *Service) List(ctx context.Context, in ListInput) (domain.WordPage, error) {
	limit := in.Limit
	switch {
	case limit <= 0:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}

	words, err := s.words.List(ctx, domain.WordFilter{
		Difficulty: nonEmpty(in.Difficulty),
		Category:   nonEmpty(in.Category),
		Cursor:     in.Cursor,
		Limit:      limit,
	})
	if err != nil {
		return domain.WordPage{}, fmt.Errorf("vocabulary.List: %w", err)
	}

	page := domain.WordPage{Words: words, HasMore: len(words) == limit}
	if page.HasMore {
		last := words[len(words)-1].ID
		page.NextCursor = &last
	}
	return page, nil
}

// Search finds words matching q in text, meanings, or synonyms.
func (s *Service) Search(ctx context.Context, q string) ([]domain.Word, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, domain.NewValidationError("q", "required")
	}

	words, err := s.words.Search(ctx, q, SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.Search: %w", err)
	}
	return words, nil
}

// Get returns one word with its children.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Word, error) {
	w, err := s.words.GetByID(ctx, id)
	if err != nil {
		return domain.Word{}, fmt.Errorf("vocabulary.Get: %w", err)
	}
	return w, nil
}

// WordOfTheDay returns today's featured word or domain.ErrNotFound.
func (s *Service) WordOfTheDay(ctx context.Context) (domain.Word, error) {
	w, err := s.words.GetWordOfTheDay(ctx, s.now())
	if err != nil {
		return domain.Word{}, fmt.Errorf("vocabulary.WordOfTheDay: %w", err)
	}
	return w, nil
}

// NextForWidget returns the newest word the user has not seen and records
// the view. Anonymous callers get the newest word.
func (s *Service) NextForWidget(ctx context.Context, userID *uuid.UUID) (domain.Word, error) {
	w, err := s.words.NextUnseen(ctx, userID)
	if err != nil {
		return domain.Word{}, fmt.Errorf("vocabulary.NextForWidget: %w", err)
	}

	if userID != nil {
		if err := s.progress.RecordView(ctx, *userID, w.ID, s.now()); err != nil {
			s.log.WarnContext(ctx, "record widget view failed",
				slog.String("user_id", userID.String()),
				slog.String("word_id", w.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}
	return w, nil
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToLower(strings.TrimSpace(*s))
	if v == "" {
		return nil
	}
	return &v
}
