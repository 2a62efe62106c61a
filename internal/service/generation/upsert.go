package generation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// UpsertResult tallies one batch. Created holds the persisted entries with
// their assigned IDs, in input order.
type UpsertResult[T any] struct {
	Created []T
	Skipped int
	Failed  int
}

// Upserter stores entries that are not yet present under their natural key.
// Each entry is checked and created in its own transaction; a unique
// violation from a concurrent run counts as skipped.
type Upserter[T any] struct {
	Log    *slog.Logger
	Tx     txManager
	Key    func(T) string
	Exists func(ctx context.Context, key string) (bool, error)
	Create func(ctx context.Context, entry *T) error
}

// Run stores entries one by one. A failing entry is logged and counted; it
// does not stop the batch. Only context cancellation ends the run early.
func (u Upserter[T]) Run(ctx context.Context, entries []T) (UpsertResult[T], error) {
	res := UpsertResult[T]{Created: make([]T, 0, len(entries))}

	for i := range entries {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		entry := entries[i]
		key := u.Key(entry)
		created := false

		err := u.Tx.RunInTx(ctx, func(ctx context.Context) error {
			exists, err := u.Exists(ctx, key)
			if err != nil {
				return err
			}
			if exists {
				return nil
			}
			if err := u.Create(ctx, &entry); err != nil {
				return err
			}
			created = true
			return nil
		})

		switch {
		case err == nil && created:
			res.Created = append(res.Created, entry)
		case err == nil, errors.Is(err, domain.ErrAlreadyExists):
			res.Skipped++
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return res, err
		default:
			res.Failed++
			u.Log.WarnContext(ctx, "upsert entry failed",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
	}
	return res, nil
}
