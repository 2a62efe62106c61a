package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

// GenerateStory generates a story that uses the given words and stores it.
func (s *Service) GenerateStory(ctx context.Context, input StoryInput) (domain.Story, error) {
	if err := input.Validate(); err != nil {
		return domain.Story{}, err
	}
	theme, difficulty, words := input.normalized()

	story, err := s.gen.Story(ctx, theme, difficulty, words)
	if err != nil {
		return domain.Story{}, fmt.Errorf("content.GenerateStory: %w", err)
	}
	story.CreatedAt = s.now().UTC()

	if err := s.content.CreateStory(ctx, &story); err != nil {
		return domain.Story{}, fmt.Errorf("content.GenerateStory: %w", err)
	}

	s.log.InfoContext(ctx, "story generated",
		slog.String("story_id", story.ID.String()),
		slog.String("theme", theme),
		slog.String("difficulty", difficulty.String()),
	)
	return story, nil
}

// ListStories returns the latest stories, newest first.
func (s *Service) ListStories(ctx context.Context) ([]domain.Story, error) {
	stories, err := s.content.ListStories(ctx, StoryListLimit)
	if err != nil {
		return nil, fmt.Errorf("content.ListStories: %w", err)
	}
	return stories, nil
}
