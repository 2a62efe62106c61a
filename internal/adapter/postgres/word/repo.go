// Package word implements the vocabulary word repository using PostgreSQL.
// Fixed queries are raw SQL; filtered listings and search are built with squirrel.
package word

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wordforge-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

var wordColumns = []string{
	"w.id", "w.text", "w.meaning_hindi", "w.meaning_gujarati", "w.pronunciation",
	"w.part_of_speech", "w.difficulty", "w.category", "w.etymology", "w.mnemonic_trick",
	"w.common_mistakes", "w.related_words", "w.is_word_of_the_day", "w.featured_on", "w.created_at",
}

var selectWordSQL = `SELECT ` + strings.Join(wordColumns, ", ") + ` FROM words w`

const insertWordSQL = `
INSERT INTO words (id, text, meaning_hindi, meaning_gujarati, pronunciation, part_of_speech,
                   difficulty, category, etymology, mnemonic_trick, common_mistakes, related_words, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

const nextUnseenSQL = `
SELECT ` + "%s" + ` FROM words w
WHERE NOT EXISTS (SELECT 1 FROM user_progress p WHERE p.word_id = w.id AND p.user_id = $1)
ORDER BY w.created_at DESC, w.id DESC
LIMIT 1`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// ExistsByText reports whether a word with the given normalized text exists.
func (r *Repo) ExistsByText(ctx context.Context, text string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM words WHERE text = $1)`, text).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "word", text)
	}
	return exists, nil
}

// Create inserts the word and all of its synonyms, antonyms, and sentences.
// Callers wrap Create in a transaction so that children are never stored
// without their parent. A duplicate text yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, w *domain.Word) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now().UTC()
	}

	_, err := q.Exec(ctx, insertWordSQL,
		w.ID, w.Text, w.MeaningHindi, w.MeaningGujarati, w.Pronunciation, w.PartOfSpeech,
		w.Difficulty, w.Category, w.Etymology, w.MnemonicTrick, jsonOrEmpty(w.CommonMistakes),
		jsonOrEmpty(w.RelatedWords), w.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "word", w.Text)
	}

	batch := &pgx.Batch{}
	for i := range w.Synonyms {
		s := &w.Synonyms[i]
		s.ID, s.WordID = uuid.New(), w.ID
		batch.Queue(`INSERT INTO synonyms (id, word_id, text) VALUES ($1, $2, $3)`, s.ID, s.WordID, s.Text)
	}
	for i := range w.Antonyms {
		a := &w.Antonyms[i]
		a.ID, a.WordID = uuid.New(), w.ID
		batch.Queue(`INSERT INTO antonyms (id, word_id, text) VALUES ($1, $2, $3)`, a.ID, a.WordID, a.Text)
	}
	for i := range w.Sentences {
		s := &w.Sentences[i]
		s.ID, s.WordID = uuid.New(), w.ID
		batch.Queue(
			`INSERT INTO sentences (id, word_id, text, difficulty, position) VALUES ($1, $2, $3, $4, $5)`,
			s.ID, s.WordID, s.Text, string(s.Difficulty), i,
		)
	}

	if batch.Len() == 0 {
		return nil
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range batch.Len() {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "word children", w.Text)
		}
	}

	return nil
}

// MarkWordOfTheDay makes id the only word flagged as word of the day and
// records day as its featured date. A second word for the same day yields
// domain.ErrAlreadyExists.
func (r *Repo) MarkWordOfTheDay(ctx context.Context, id uuid.UUID, day time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx,
		`UPDATE words SET is_word_of_the_day = false WHERE is_word_of_the_day AND id <> $1`, id,
	); err != nil {
		return postgres.MapError(err, "word", id.String())
	}

	tag, err := q.Exec(ctx,
		`UPDATE words SET is_word_of_the_day = true, featured_on = $2 WHERE id = $1`,
		id, domain.DayStart(day),
	)
	if err != nil {
		return postgres.MapError(err, "word", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a word with its children.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWord(q.QueryRow(ctx, selectWordSQL+` WHERE w.id = $1`, id))
	if err != nil {
		return domain.Word{}, postgres.MapError(err, "word", id.String())
	}

	words := []domain.Word{w}
	if err := r.loadChildren(ctx, q, words); err != nil {
		return domain.Word{}, err
	}
	return words[0], nil
}

// GetWordOfTheDay returns the word featured on the given day.
func (r *Repo) GetWordOfTheDay(ctx context.Context, day time.Time) (domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWord(q.QueryRow(ctx, selectWordSQL+` WHERE w.featured_on = $1`, domain.DayStart(day)))
	if err != nil {
		return domain.Word{}, postgres.MapError(err, "word of the day", day.Format(time.DateOnly))
	}

	words := []domain.Word{w}
	if err := r.loadChildren(ctx, q, words); err != nil {
		return domain.Word{}, err
	}
	return words[0], nil
}

// List returns one page of words ordered newest first. When filter.Cursor is
// set the page starts strictly after that word. The caller clamps the limit.
func (r *Repo) List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error) {
	qb := postgres.Builder().
		Select(wordColumns...).
		From("words w").
		OrderBy("w.created_at DESC", "w.id DESC").
		Limit(uint64(filter.Limit))

	if filter.Difficulty != nil {
		qb = qb.Where(sq.Eq{"w.difficulty": *filter.Difficulty})
	}
	if filter.Category != nil {
		qb = qb.Where(sq.Eq{"w.category": *filter.Category})
	}
	if filter.Cursor != nil {
		qb = qb.Where(
			sq.Expr("(w.created_at, w.id) < (SELECT c.created_at, c.id FROM words c WHERE c.id = ?)", *filter.Cursor),
		)
	}

	return r.queryWords(ctx, qb)
}

// Search returns up to limit words whose text, either meaning, or any synonym
// contains term, case-insensitively.
func (r *Repo) Search(ctx context.Context, term string, limit int) ([]domain.Word, error) {
	pattern := "%" + escapeLike(term) + "%"

	qb := postgres.Builder().
		Select(wordColumns...).
		From("words w").
		Where(sq.Or{
			sq.ILike{"w.text": pattern},
			sq.ILike{"w.meaning_hindi": pattern},
			sq.ILike{"w.meaning_gujarati": pattern},
			sq.Expr("EXISTS (SELECT 1 FROM synonyms s WHERE s.word_id = w.id AND s.text ILIKE ?)", pattern),
		}).
		OrderBy("w.created_at DESC", "w.id DESC").
		Limit(uint64(limit))

	return r.queryWords(ctx, qb)
}

// NextUnseen returns the newest word the user has no progress row for.
// A nil userID returns the newest word overall.
func (r *Repo) NextUnseen(ctx context.Context, userID *uuid.UUID) (domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row pgx.Row
	if userID == nil {
		row = q.QueryRow(ctx, selectWordSQL+` ORDER BY w.created_at DESC, w.id DESC LIMIT 1`)
	} else {
		row = q.QueryRow(ctx, fmt.Sprintf(nextUnseenSQL, strings.Join(wordColumns, ", ")), *userID)
	}

	w, err := scanWord(row)
	if err != nil {
		return domain.Word{}, postgres.MapError(err, "word", "next unseen")
	}

	words := []domain.Word{w}
	if err := r.loadChildren(ctx, q, words); err != nil {
		return domain.Word{}, err
	}
	return words[0], nil
}

// RecentTexts returns the texts of the newest words, optionally restricted to
// a difficulty.
func (r *Repo) RecentTexts(ctx context.Context, difficulty *string, limit int) ([]string, error) {
	qb := postgres.Builder().
		Select("text").
		From("words").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))
	if difficulty != nil {
		qb = qb.Where(sq.Eq{"difficulty": *difficulty})
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build recent texts query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("recent texts: %w", err)
	}

	texts, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan recent texts: %w", err)
	}
	if texts == nil {
		texts = []string{}
	}
	return texts, nil
}

// Count returns the number of stored words.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, `SELECT count(*) FROM words`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) queryWords(ctx context.Context, qb sq.SelectBuilder) ([]domain.Word, error) {
	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build words query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	words := []domain.Word{}
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate words: %w", err)
	}

	if err := r.loadChildren(ctx, q, words); err != nil {
		return nil, err
	}
	return words, nil
}

// loadChildren fills synonyms, antonyms, and sentences for words in place.
func (r *Repo) loadChildren(ctx context.Context, q postgres.Querier, words []domain.Word) error {
	if len(words) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(words))
	index := make(map[uuid.UUID]int, len(words))
	for i := range words {
		ids[i] = words[i].ID
		index[words[i].ID] = i
		words[i].Synonyms = []domain.Synonym{}
		words[i].Antonyms = []domain.Antonym{}
		words[i].Sentences = []domain.Sentence{}
	}

	rows, err := q.Query(ctx, `SELECT id, word_id, text FROM synonyms WHERE word_id = ANY($1) ORDER BY text`, ids)
	if err != nil {
		return fmt.Errorf("get synonyms: %w", err)
	}
	syns, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Synonym])
	if err != nil {
		return fmt.Errorf("scan synonyms: %w", err)
	}
	for _, s := range syns {
		i := index[s.WordID]
		words[i].Synonyms = append(words[i].Synonyms, s)
	}

	rows, err = q.Query(ctx, `SELECT id, word_id, text FROM antonyms WHERE word_id = ANY($1) ORDER BY text`, ids)
	if err != nil {
		return fmt.Errorf("get antonyms: %w", err)
	}
	ants, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Antonym])
	if err != nil {
		return fmt.Errorf("scan antonyms: %w", err)
	}
	for _, a := range ants {
		i := index[a.WordID]
		words[i].Antonyms = append(words[i].Antonyms, a)
	}

	rows, err = q.Query(ctx,
		`SELECT id, word_id, text, difficulty FROM sentences WHERE word_id = ANY($1) ORDER BY position`, ids)
	if err != nil {
		return fmt.Errorf("get sentences: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			s          domain.Sentence
			difficulty string
		)
		if err := rows.Scan(&s.ID, &s.WordID, &s.Text, &difficulty); err != nil {
			return fmt.Errorf("scan sentence: %w", err)
		}
		s.Difficulty = domain.Difficulty(difficulty)
		i := index[s.WordID]
		words[i].Sentences = append(words[i].Sentences, s)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate sentences: %w", err)
	}

	return nil
}

func scanWord(row pgx.Row) (domain.Word, error) {
	var w domain.Word
	err := row.Scan(
		&w.ID, &w.Text, &w.MeaningHindi, &w.MeaningGujarati, &w.Pronunciation,
		&w.PartOfSpeech, &w.Difficulty, &w.Category, &w.Etymology, &w.MnemonicTrick,
		&w.CommonMistakes, &w.RelatedWords, &w.IsWordOfTheDay, &w.FeaturedOn, &w.CreatedAt,
	)
	return w, err
}

func jsonOrEmpty(s string) string {
	if s == "" {
		return "[]"
	}
	return s
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE metacharacters so term matches literally.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
