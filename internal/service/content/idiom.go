package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
	"github.com/heartmarshall/wordforge-backend/internal/service/generation"
)

// IdiomResult reports one idiom generation run.
type IdiomResult struct {
	Generated int
	Created   int
	Skipped   int
	Failed    int
}

// GenerateIdioms generates count idioms and stores the ones not yet known.
func (s *Service) GenerateIdioms(ctx context.Context, count int) (IdiomResult, error) {
	idioms, err := s.gen.Idioms(ctx, count)
	if err != nil {
		return IdiomResult{}, fmt.Errorf("content.GenerateIdioms: %w", err)
	}

	upsert := generation.Upserter[domain.Idiom]{
		Log:    s.log,
		Tx:     s.tx,
		Key:    func(i domain.Idiom) string { return i.Text },
		Exists: s.idioms.ExistsByText,
		Create: s.idioms.Create,
	}
	res, err := upsert.Run(ctx, idioms)
	if err != nil {
		return IdiomResult{}, fmt.Errorf("content.GenerateIdioms: %w", err)
	}

	out := IdiomResult{
		Generated: len(idioms),
		Created:   len(res.Created),
		Skipped:   res.Skipped,
		Failed:    res.Failed,
	}
	s.log.InfoContext(ctx, "idiom generation finished",
		slog.Int("created", out.Created),
		slog.Int("skipped", out.Skipped),
		slog.Int("failed", out.Failed),
	)
	return out, nil
}

// ListIdioms returns the newest idioms.
func (s *Service) ListIdioms(ctx context.Context, limit int) ([]domain.Idiom, error) {
	switch {
	case limit <= 0:
		limit = DefaultIdiomLimit
	case limit > MaxIdiomLimit:
		limit = MaxIdiomLimit
	}

	idioms, err := s.idioms.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("content.ListIdioms: %w", err)
	}
	return idioms, nil
}
