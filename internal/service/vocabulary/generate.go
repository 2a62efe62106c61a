package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
	"github.com/heartmarshall/wordforge-backend/internal/service/generation"
)

// GenerateResult reports one word generation run.
type GenerateResult struct {
	Category     string
	Generated    int
	Created      int
	Skipped      int
	Failed       int
	Dropped      int
	WordOfTheDay *uuid.UUID
}

// GenerateWords asks the model for count new words and stores the ones not
// yet known. When today has no word of the day, the first created word
// becomes it.
func (s *Service) GenerateWords(ctx context.Context, count int) (GenerateResult, error) {
	batch, err := s.gen.Words(ctx, count)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("vocabulary.GenerateWords: %w", err)
	}

	upsert := generation.Upserter[domain.Word]{
		Log:    s.log,
		Tx:     s.tx,
		Key:    func(w domain.Word) string { return w.Text },
		Exists: s.words.ExistsByText,
		Create: s.words.Create,
	}
	res, err := upsert.Run(ctx, batch.Words)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("vocabulary.GenerateWords: %w", err)
	}

	out := GenerateResult{
		Category:  batch.Category,
		Generated: len(batch.Words) + batch.Dropped,
		Created:   len(res.Created),
		Skipped:   res.Skipped,
		Failed:    res.Failed,
		Dropped:   batch.Dropped,
	}

	if len(res.Created) > 0 {
		id, err := s.featureIfMissing(ctx, res.Created[0].ID)
		if err != nil {
			return out, fmt.Errorf("vocabulary.GenerateWords: %w", err)
		}
		out.WordOfTheDay = id
	}

	s.log.InfoContext(ctx, "word generation finished",
		slog.String("category", out.Category),
		slog.Int("created", out.Created),
		slog.Int("skipped", out.Skipped),
		slog.Int("failed", out.Failed),
		slog.Int("dropped", out.Dropped),
	)
	return out, nil
}

// featureIfMissing marks id as today's word unless one is already featured.
// The check and both flag updates share one transaction.
func (s *Service) featureIfMissing(ctx context.Context, id uuid.UUID) (*uuid.UUID, error) {
	today := s.now()
	featured := false

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		_, err := s.words.GetWordOfTheDay(ctx, today)
		switch {
		case err == nil:
			return nil
		case !errors.Is(err, domain.ErrNotFound):
			return err
		}

		if err := s.words.MarkWordOfTheDay(ctx, id, today); err != nil {
			return err
		}
		featured = true
		return nil
	})
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		return nil, nil
	case err != nil:
		return nil, err
	case !featured:
		return nil, nil
	}
	return &id, nil
}
