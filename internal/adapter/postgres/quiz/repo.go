// Package quiz implements quiz and quiz result persistence using PostgreSQL.
package quiz

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

// Repo provides quiz persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new quiz repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a generated quiz.
func (r *Repo) Create(ctx context.Context, q *domain.Quiz) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}

	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO quizzes (id, type, difficulty, questions, created_at) VALUES ($1, $2, $3, $4, $5)`,
		q.ID, string(q.Type), string(q.Difficulty), q.Questions, q.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "quiz", q.ID.String())
	}
	return nil
}

// GetByID returns a quiz by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Quiz, error) {
	var (
		q               domain.Quiz
		typ, difficulty string
	)
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT id, type, difficulty, questions, created_at FROM quizzes WHERE id = $1`, id,
	).Scan(&q.ID, &typ, &difficulty, &q.Questions, &q.CreatedAt)
	if err != nil {
		return domain.Quiz{}, postgres.MapError(err, "quiz", id.String())
	}
	q.Type = domain.QuizType(typ)
	q.Difficulty = domain.Difficulty(difficulty)
	return q, nil
}

// CreateResult inserts a submission. An unknown QuizID yields domain.ErrNotFound.
func (r *Repo) CreateResult(ctx context.Context, res *domain.QuizResult) error {
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	if res.CompletedAt.IsZero() {
		res.CompletedAt = time.Now().UTC()
	}

	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO quiz_results (id, user_id, quiz_id, answers, score, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		res.ID, res.UserID, res.QuizID, res.Answers, res.Score, res.CompletedAt,
	)
	if err != nil {
		return postgres.MapError(err, "quiz result", res.ID.String())
	}
	return nil
}

// CountResults returns the number of submissions. A nil userID counts all of them.
func (r *Repo) CountResults(ctx context.Context, userID *uuid.UUID) (int, error) {
	qb := postgres.Builder().Select("count(*)").From("quiz_results")
	if userID != nil {
		qb = qb.Where(sq.Eq{"user_id": *userID})
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count results query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count quiz results: %w", err)
	}
	return n, nil
}

// DeleteAnonymousResultsBefore removes submissions without a user completed
// before cutoff and returns how many were removed.
func (r *Repo) DeleteAnonymousResultsBefore(ctx context.Context, cutoff time.Time) (int, error) {
	sql, args, err := postgres.Builder().
		Delete("quiz_results").
		Where(sq.Eq{"user_id": nil}).
		Where(sq.Lt{"completed_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete anonymous results query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("delete anonymous quiz results: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
