package quiz

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
	"github.com/heartmarshall/wordforge-backend/internal/service/generation"
)

// Generate builds a quiz over recently generated words of the requested
// difficulty and stores it.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (domain.Quiz, error) {
	if err := input.Validate(); err != nil {
		return domain.Quiz{}, err
	}
	typ, difficulty, count := input.params()

	level := difficulty.String()
	words, err := s.words.RecentTexts(ctx, &level, 2*count)
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("quiz.Generate: recent words: %w", err)
	}

	questions, err := s.gen.Quiz(ctx, generation.QuizParams{
		Type:       typ,
		Difficulty: difficulty,
		Count:      count,
		Words:      words,
	})
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("quiz.Generate: %w", err)
	}

	q := domain.Quiz{
		Type:       typ,
		Difficulty: difficulty,
		Questions:  questions,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.quizzes.Create(ctx, &q); err != nil {
		return domain.Quiz{}, fmt.Errorf("quiz.Generate: %w", err)
	}

	s.log.InfoContext(ctx, "quiz generated",
		slog.String("quiz_id", q.ID.String()),
		slog.String("type", typ.String()),
		slog.String("difficulty", level),
		slog.Int("vocabulary", len(words)),
	)
	return q, nil
}
