// Package daily implements persistence for the daily quote and fact of the day.
package daily

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wordforge-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

// Repo provides daily content persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new daily content repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Quotes
// ---------------------------------------------------------------------------

// CreateQuote inserts a daily quote.
func (r *Repo) CreateQuote(ctx context.Context, q *domain.DailyQuote) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}

	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO daily_quotes (id, quote, author, hindi_translation, gujarati_translation,
		                           explanation, relevance_to_learning, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		q.ID, q.Quote, q.Author, q.HindiTranslation, q.GujaratiTranslation,
		q.Explanation, q.RelevanceToLearning, q.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "daily quote", q.ID.String())
	}
	return nil
}

// LatestQuoteSince returns the newest quote created at or after since.
func (r *Repo) LatestQuoteSince(ctx context.Context, since time.Time) (domain.DailyQuote, error) {
	var q domain.DailyQuote
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT id, quote, author, hindi_translation, gujarati_translation,
		        explanation, relevance_to_learning, created_at
		 FROM daily_quotes WHERE created_at >= $1
		 ORDER BY created_at DESC LIMIT 1`, since,
	).Scan(&q.ID, &q.Quote, &q.Author, &q.HindiTranslation, &q.GujaratiTranslation,
		&q.Explanation, &q.RelevanceToLearning, &q.CreatedAt)
	if err != nil {
		return domain.DailyQuote{}, postgres.MapError(err, "daily quote", since.Format(time.DateOnly))
	}
	return q, nil
}

// ---------------------------------------------------------------------------
// Facts
// ---------------------------------------------------------------------------

// CreateFact inserts a fact of the day.
func (r *Repo) CreateFact(ctx context.Context, f *domain.Fact) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}

	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO facts (id, fact, topic, hindi_translation, gujarati_translation,
		                    explanation, did_you_know, source, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		f.ID, f.Fact, f.Topic, f.HindiTranslation, f.GujaratiTranslation,
		f.Explanation, f.DidYouKnow, f.Source, f.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "fact", f.ID.String())
	}
	return nil
}

// LatestFactSince returns the newest fact created at or after since.
func (r *Repo) LatestFactSince(ctx context.Context, since time.Time) (domain.Fact, error) {
	var f domain.Fact
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT id, fact, topic, hindi_translation, gujarati_translation,
		        explanation, did_you_know, source, created_at
		 FROM facts WHERE created_at >= $1
		 ORDER BY created_at DESC LIMIT 1`, since,
	).Scan(&f.ID, &f.Fact, &f.Topic, &f.HindiTranslation, &f.GujaratiTranslation,
		&f.Explanation, &f.DidYouKnow, &f.Source, &f.CreatedAt)
	if err != nil {
		return domain.Fact{}, postgres.MapError(err, "fact", since.Format(time.DateOnly))
	}
	return f, nil
}

// ---------------------------------------------------------------------------
// Retention
// ---------------------------------------------------------------------------

// DeleteBefore removes quotes and facts created before cutoff and returns the
// number of rows removed from each table.
func (r *Repo) DeleteBefore(ctx context.Context, cutoff time.Time) (quotes, facts int, err error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	for _, t := range []struct {
		table string
		n     *int
	}{
		{"daily_quotes", &quotes},
		{"facts", &facts},
	} {
		sql, args, buildErr := postgres.Builder().Delete(t.table).Where(sq.Lt{"created_at": cutoff}).ToSql()
		if buildErr != nil {
			return quotes, facts, fmt.Errorf("build delete %s query: %w", t.table, buildErr)
		}

		tag, execErr := q.Exec(ctx, sql, args...)
		if execErr != nil {
			return quotes, facts, fmt.Errorf("delete %s: %w", t.table, execErr)
		}
		*t.n = int(tag.RowsAffected())
	}

	return quotes, facts, nil
}
