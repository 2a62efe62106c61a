package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

// GenerateLesson generates a grammar lesson on the topic and stores it.
func (s *Service) GenerateLesson(ctx context.Context, input LessonInput) (domain.GrammarLesson, error) {
	if err := input.Validate(); err != nil {
		return domain.GrammarLesson{}, err
	}
	topic := strings.TrimSpace(input.Topic)
	difficulty := difficultyOrDefault(input.Difficulty)

	lesson, err := s.gen.Lesson(ctx, topic, difficulty)
	if err != nil {
		return domain.GrammarLesson{}, fmt.Errorf("content.GenerateLesson: %w", err)
	}
	lesson.CreatedAt = s.now().UTC()

	if err := s.content.CreateLesson(ctx, &lesson); err != nil {
		return domain.GrammarLesson{}, fmt.Errorf("content.GenerateLesson: %w", err)
	}

	s.log.InfoContext(ctx, "grammar lesson generated",
		slog.String("lesson_id", lesson.ID.String()),
		slog.String("topic", topic),
	)
	return lesson, nil
}

// GetLesson returns a stored lesson.
func (s *Service) GetLesson(ctx context.Context, id uuid.UUID) (domain.GrammarLesson, error) {
	l, err := s.content.GetLesson(ctx, id)
	if err != nil {
		return domain.GrammarLesson{}, fmt.Errorf("content.GetLesson: %w", err)
	}
	return l, nil
}

// GrammarTopics returns the fixed topic catalogue.
func (s *Service) GrammarTopics() []string {
	out := make([]string, len(domain.GrammarTopics))
	copy(out, domain.GrammarTopics)
	return out
}
