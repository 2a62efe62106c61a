// Package idiom implements the idiom repository using PostgreSQL.
package idiom

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wordforge-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

// Repo provides idiom persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new idiom repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ExistsByText reports whether an idiom with the given normalized text exists.
func (r *Repo) ExistsByText(ctx context.Context, text string) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM idioms WHERE text = $1)`, text,
	).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "idiom", text)
	}
	return exists, nil
}

// Create inserts an idiom. A duplicate text yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, i *domain.Idiom) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = time.Now().UTC()
	}
	if i.Examples == "" {
		i.Examples = "[]"
	}

	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO idioms (id, text, meaning, hindi_translation, gujarati_translation,
		                     examples, origin, difficulty, category, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		i.ID, i.Text, i.Meaning, i.HindiTranslation, i.GujaratiTranslation,
		i.Examples, i.Origin, i.Difficulty, i.Category, i.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "idiom", i.Text)
	}
	return nil
}

// List returns the newest idioms.
func (r *Repo) List(ctx context.Context, limit int) ([]domain.Idiom, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT id, text, meaning, hindi_translation, gujarati_translation,
		        examples, origin, difficulty, category, created_at
		 FROM idioms ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list idioms: %w", err)
	}

	idioms, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Idiom])
	if err != nil {
		return nil, fmt.Errorf("scan idioms: %w", err)
	}
	if idioms == nil {
		idioms = []domain.Idiom{}
	}
	return idioms, nil
}
