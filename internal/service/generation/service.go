// Package generation builds prompts for each content type, calls the
// completion API with the type's sampling preset, and turns the answer into
// validated domain records.
package generation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordforge-backend/internal/adapter/provider/completion"
	"github.com/heartmarshall/wordforge-backend/internal/config"
	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

type completer interface {
	Complete(ctx context.Context, req completion.Request) (string, error)
}

// Service is the generation pipeline. It never persists anything.
type Service struct {
	log    *slog.Logger
	client completer
	models map[ModelTier]string
	picker Picker
}

// NewService creates a generation service. A nil picker picks at random.
func NewService(logger *slog.Logger, client completer, cfg config.LLMConfig, picker Picker) *Service {
	if picker == nil {
		picker = RandomPicker{}
	}
	return &Service{
		log:    logger.With("service", "generation"),
		client: client,
		models: map[ModelTier]string{
			ModelMain:     cfg.MainModel,
			ModelCreative: cfg.CreativeModel,
		},
		picker: picker,
	}
}

// complete sends msgs with the preset of ct and returns the raw answer.
func (s *Service) complete(ctx context.Context, ct domain.ContentType, msgs []completion.Message) (string, error) {
	preset, ok := PresetFor(ct)
	if !ok {
		return "", fmt.Errorf("generation: no preset for %q", ct)
	}

	raw, err := s.client.Complete(ctx, completion.Request{
		Model:       s.models[preset.Model],
		Messages:    msgs,
		Temperature: preset.Temperature,
		TopP:        preset.TopP,
		MaxTokens:   preset.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("generate %s: %w", ct, err)
	}
	return raw, nil
}

func (s *Service) logRejections(ctx context.Context, ct domain.ContentType, rejected []Rejection) {
	for _, r := range rejected {
		s.log.WarnContext(ctx, "generated entry dropped",
			slog.String("content_type", ct.String()),
			slog.Int("index", r.Index),
			slog.String("reason", r.Reason),
		)
	}
}
