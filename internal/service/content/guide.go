package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

// PronunciationGuide returns the stored guide for word, generating and
// storing one on first request.
func (s *Service) PronunciationGuide(ctx context.Context, word string) (domain.PronunciationGuide, error) {
	key := strings.ToLower(strings.TrimSpace(word))
	if key == "" {
		return domain.PronunciationGuide{}, domain.NewValidationError("word", "required")
	}
	if len(key) > 100 {
		return domain.PronunciationGuide{}, domain.NewValidationError("word", "max 100 characters")
	}

	g, err := s.content.GetGuideByWord(ctx, key)
	switch {
	case err == nil:
		return g, nil
	case !errors.Is(err, domain.ErrNotFound):
		return domain.PronunciationGuide{}, fmt.Errorf("content.PronunciationGuide: %w", err)
	}

	g, err = s.gen.Guide(ctx, key)
	if err != nil {
		return domain.PronunciationGuide{}, fmt.Errorf("content.PronunciationGuide: %w", err)
	}
	g.CreatedAt = s.now().UTC()

	if err := s.content.CreateGuide(ctx, &g); err != nil {
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return domain.PronunciationGuide{}, fmt.Errorf("content.PronunciationGuide: %w", err)
		}
		// Stored by a concurrent request.
		stored, err := s.content.GetGuideByWord(ctx, key)
		if err != nil {
			return domain.PronunciationGuide{}, fmt.Errorf("content.PronunciationGuide: %w", err)
		}
		return stored, nil
	}

	s.log.InfoContext(ctx, "pronunciation guide generated", slog.String("word", key))
	return g, nil
}
