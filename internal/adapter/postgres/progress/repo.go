// Package progress implements per-user learning progress, review days,
// streaks, and badges using PostgreSQL.
package progress

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

// Repo provides progress persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new progress repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const markLearnedSQL = `
INSERT INTO user_progress (id, user_id, word_id, is_learned, review_count, last_reviewed, created_at)
VALUES ($1, $2, $3, true, 1, $4, $4)
ON CONFLICT (user_id, word_id) DO UPDATE
SET is_learned    = true,
    review_count  = user_progress.review_count + 1,
    last_reviewed = EXCLUDED.last_reviewed
RETURNING id, user_id, word_id, is_learned, review_count, last_reviewed, created_at`

const recordViewSQL = `
INSERT INTO user_progress (id, user_id, word_id, is_learned, review_count, last_reviewed, created_at)
VALUES ($1, $2, $3, false, 0, $4, $4)
ON CONFLICT (user_id, word_id) DO UPDATE
SET last_reviewed = EXCLUDED.last_reviewed`

const listWithWordsSQL = `
SELECT p.id, p.user_id, p.word_id, p.is_learned, p.review_count, p.last_reviewed, p.created_at,
       w.text, w.meaning_hindi, w.meaning_gujarati, w.pronunciation, w.part_of_speech,
       w.difficulty, w.category, w.created_at
FROM user_progress p
JOIN words w ON w.id = p.word_id
WHERE p.user_id = $1
ORDER BY p.last_reviewed DESC, p.id DESC`

const upsertStreakSQL = `
INSERT INTO learning_streaks (user_id, current_days, longest_days, last_active, updated_at)
VALUES ($1, $2, $2, $3, now())
ON CONFLICT (user_id) DO UPDATE
SET current_days = EXCLUDED.current_days,
    longest_days = GREATEST(learning_streaks.longest_days, EXCLUDED.current_days),
    last_active  = EXCLUDED.last_active,
    updated_at   = now()
RETURNING user_id, current_days, longest_days, last_active, updated_at`

// ---------------------------------------------------------------------------
// Progress
// ---------------------------------------------------------------------------

// MarkLearned flags the word as learned for the user and counts a review.
// An unknown user or word yields domain.ErrNotFound.
func (r *Repo) MarkLearned(ctx context.Context, userID, wordID uuid.UUID, at time.Time) (domain.UserProgress, error) {
	var p domain.UserProgress
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, markLearnedSQL, uuid.New(), userID, wordID, at).
		Scan(&p.ID, &p.UserID, &p.WordID, &p.IsLearned, &p.ReviewCount, &p.LastReviewed, &p.CreatedAt)
	if err != nil {
		return domain.UserProgress{}, postgres.MapError(err, "progress", wordID.String())
	}
	return p, nil
}

// RecordView notes that the user was shown the word without changing its
// learned state or review count.
func (r *Repo) RecordView(ctx context.Context, userID, wordID uuid.UUID, at time.Time) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, recordViewSQL, uuid.New(), userID, wordID, at)
	if err != nil {
		return postgres.MapError(err, "progress", wordID.String())
	}
	return nil
}

// ListWithWords returns every progress row of the user with its word,
// most recently reviewed first.
func (r *Repo) ListWithWords(ctx context.Context, userID uuid.UUID) ([]domain.UserProgress, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listWithWordsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.UserProgress, error) {
		var (
			p domain.UserProgress
			w domain.Word
		)
		err := row.Scan(&p.ID, &p.UserID, &p.WordID, &p.IsLearned, &p.ReviewCount, &p.LastReviewed, &p.CreatedAt,
			&w.Text, &w.MeaningHindi, &w.MeaningGujarati, &w.Pronunciation, &w.PartOfSpeech,
			&w.Difficulty, &w.Category, &w.CreatedAt)
		w.ID = p.WordID
		p.Word = &w
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan progress: %w", err)
	}
	if items == nil {
		items = []domain.UserProgress{}
	}
	return items, nil
}

// CountLearned returns how many words the user has marked learned.
func (r *Repo) CountLearned(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT count(*) FROM user_progress WHERE user_id = $1 AND is_learned`, userID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count learned: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Review days + streak
// ---------------------------------------------------------------------------

// AddReviewDay records activity on the UTC day containing at. Repeated calls
// for the same day are no-ops.
func (r *Repo) AddReviewDay(ctx context.Context, userID uuid.UUID, at time.Time) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO review_days (user_id, day) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, domain.DayStart(at),
	)
	if err != nil {
		return postgres.MapError(err, "review day", userID.String())
	}
	return nil
}

// ReviewDays returns the user's active days on or after since, newest first.
func (r *Repo) ReviewDays(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT day FROM review_days WHERE user_id = $1 AND day >= $2 ORDER BY day DESC`,
		userID, domain.DayStart(since),
	)
	if err != nil {
		return nil, fmt.Errorf("get review days: %w", err)
	}

	days, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
	if err != nil {
		return nil, fmt.Errorf("scan review days: %w", err)
	}
	if days == nil {
		days = []time.Time{}
	}
	return days, nil
}

// SaveStreak stores the current streak and keeps the longest one seen.
func (r *Repo) SaveStreak(ctx context.Context, userID uuid.UUID, current int, lastActive time.Time) (domain.LearningStreak, error) {
	s, err := scanStreak(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		upsertStreakSQL, userID, current, domain.DayStart(lastActive)))
	if err != nil {
		return domain.LearningStreak{}, postgres.MapError(err, "streak", userID.String())
	}
	return s, nil
}

// GetStreak returns the stored streak. A user without reviews yields
// domain.ErrNotFound.
func (r *Repo) GetStreak(ctx context.Context, userID uuid.UUID) (domain.LearningStreak, error) {
	s, err := scanStreak(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT user_id, current_days, longest_days, last_active, updated_at
		 FROM learning_streaks WHERE user_id = $1`, userID))
	if err != nil {
		return domain.LearningStreak{}, postgres.MapError(err, "streak", userID.String())
	}
	return s, nil
}

// ---------------------------------------------------------------------------
// Badges
// ---------------------------------------------------------------------------

// AwardBadge stores the badge unless the user already holds that code.
// It reports whether a new badge was stored.
func (r *Repo) AwardBadge(ctx context.Context, b *domain.Badge) (bool, error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.EarnedAt.IsZero() {
		b.EarnedAt = time.Now().UTC()
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO badges (id, user_id, code, name, earned_at) VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, code) DO NOTHING`,
		b.ID, b.UserID, string(b.Code), b.Name, b.EarnedAt,
	)
	if err != nil {
		return false, postgres.MapError(err, "badge", string(b.Code))
	}
	return tag.RowsAffected() == 1, nil
}

// ListBadges returns the user's most recently earned badges.
func (r *Repo) ListBadges(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Badge, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT id, user_id, code, name, earned_at FROM badges
		 WHERE user_id = $1 ORDER BY earned_at DESC, id DESC LIMIT $2`, userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}

	badges, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Badge, error) {
		var (
			b    domain.Badge
			code string
		)
		err := row.Scan(&b.ID, &b.UserID, &code, &b.Name, &b.EarnedAt)
		b.Code = domain.BadgeCode(code)
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan badges: %w", err)
	}
	if badges == nil {
		badges = []domain.Badge{}
	}
	return badges, nil
}

// CountBadges returns how many badges the user holds.
func (r *Repo) CountBadges(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT count(*) FROM badges WHERE user_id = $1`, userID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count badges: %w", err)
	}
	return n, nil
}

func scanStreak(row pgx.Row) (domain.LearningStreak, error) {
	var s domain.LearningStreak
	err := row.Scan(&s.UserID, &s.CurrentDays, &s.LongestDays, &s.LastActive, &s.UpdatedAt)
	return s, err
}
