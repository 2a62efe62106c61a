package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

// WordAssociation generates a word association game. The result is not stored.
func (s *Service) WordAssociation(ctx context.Context, difficulty string) (json.RawMessage, error) {
	if !validDifficulty(difficulty) {
		return nil, domain.NewValidationError("difficulty", "unsupported difficulty")
	}
	out, err := s.gen.WordAssociation(ctx, difficultyOrDefault(difficulty))
	if err != nil {
		return nil, fmt.Errorf("content.WordAssociation: %w", err)
	}
	return out, nil
}

// ConversationStarters generates discussion prompts. The result is not stored.
func (s *Service) ConversationStarters(ctx context.Context, difficulty string) (json.RawMessage, error) {
	if !validDifficulty(difficulty) {
		return nil, domain.NewValidationError("difficulty", "unsupported difficulty")
	}
	out, err := s.gen.ConversationStarters(ctx, difficultyOrDefault(difficulty))
	if err != nil {
		return nil, fmt.Errorf("content.ConversationStarters: %w", err)
	}
	return out, nil
}
