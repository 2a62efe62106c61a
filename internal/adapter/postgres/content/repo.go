// Package content implements persistence for stories, grammar lessons, and
// pronunciation guides.
package content

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

// Repo provides generated document persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new content repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Stories
// ---------------------------------------------------------------------------

const selectStorySQL = `
SELECT id, title, content, theme, difficulty, moral_lesson, vocabulary_highlights,
       comprehension_questions, hindi_summary, gujarati_summary, created_at
FROM stories`

// CreateStory inserts a generated story.
func (r *Repo) CreateStory(ctx context.Context, s *domain.Story) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO stories (id, title, content, theme, difficulty, moral_lesson, vocabulary_highlights,
		                      comprehension_questions, hindi_summary, gujarati_summary, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		s.ID, s.Title, s.Content, s.Theme, string(s.Difficulty), s.MoralLesson,
		s.VocabularyHighlights, s.ComprehensionQuestions, s.HindiSummary, s.GujaratiSummary, s.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "story", s.ID.String())
	}
	return nil
}

// ListStories returns the newest stories.
func (r *Repo) ListStories(ctx context.Context, limit int) ([]domain.Story, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		selectStorySQL+` ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}

	stories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Story, error) {
		var (
			s          domain.Story
			difficulty string
		)
		err := row.Scan(&s.ID, &s.Title, &s.Content, &s.Theme, &difficulty, &s.MoralLesson,
			&s.VocabularyHighlights, &s.ComprehensionQuestions, &s.HindiSummary, &s.GujaratiSummary, &s.CreatedAt)
		s.Difficulty = domain.Difficulty(difficulty)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan stories: %w", err)
	}
	if stories == nil {
		stories = []domain.Story{}
	}
	return stories, nil
}

// ---------------------------------------------------------------------------
// Grammar lessons
// ---------------------------------------------------------------------------

// CreateLesson inserts a generated grammar lesson.
func (r *Repo) CreateLesson(ctx context.Context, l *domain.GrammarLesson) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}

	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO grammar_lessons (id, title, topic, difficulty, explanation, rules, examples,
		                              common_mistakes, practice_exercises, tips, hindi_explanation,
		                              gujarati_explanation, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		l.ID, l.Title, l.Topic, string(l.Difficulty), l.Explanation, l.Rules, l.Examples,
		l.CommonMistakes, l.PracticeExercises, l.Tips, l.HindiExplanation, l.GujaratiExplanation, l.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "grammar lesson", l.ID.String())
	}
	return nil
}

// GetLesson returns a grammar lesson by primary key.
func (r *Repo) GetLesson(ctx context.Context, id uuid.UUID) (domain.GrammarLesson, error) {
	var (
		l          domain.GrammarLesson
		difficulty string
	)
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT id, title, topic, difficulty, explanation, rules, examples, common_mistakes,
		        practice_exercises, tips, hindi_explanation, gujarati_explanation, created_at
		 FROM grammar_lessons WHERE id = $1`, id,
	).Scan(&l.ID, &l.Title, &l.Topic, &difficulty, &l.Explanation, &l.Rules, &l.Examples,
		&l.CommonMistakes, &l.PracticeExercises, &l.Tips, &l.HindiExplanation, &l.GujaratiExplanation, &l.CreatedAt)
	if err != nil {
		return domain.GrammarLesson{}, postgres.MapError(err, "grammar lesson", id.String())
	}
	l.Difficulty = domain.Difficulty(difficulty)
	return l, nil
}

// ---------------------------------------------------------------------------
// Pronunciation guides
// ---------------------------------------------------------------------------

// GetGuideByWord returns the guide stored for the normalized word.
func (r *Repo) GetGuideByWord(ctx context.Context, word string) (domain.PronunciationGuide, error) {
	var g domain.PronunciationGuide
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT id, word, ipa, syllables, stress, sound_tips, similar_sounds, common_errors,
		        practice_phrase, audio_description, created_at
		 FROM pronunciation_guides WHERE word = $1`, word,
	).Scan(&g.ID, &g.Word, &g.IPA, &g.Syllables, &g.Stress, &g.SoundTips, &g.SimilarSounds,
		&g.CommonErrors, &g.PracticePhrase, &g.AudioDescription, &g.CreatedAt)
	if err != nil {
		return domain.PronunciationGuide{}, postgres.MapError(err, "pronunciation guide", word)
	}
	return g, nil
}

// CreateGuide inserts a pronunciation guide. A second guide for the same word
// yields domain.ErrAlreadyExists.
func (r *Repo) CreateGuide(ctx context.Context, g *domain.PronunciationGuide) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}

	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO pronunciation_guides (id, word, ipa, syllables, stress, sound_tips, similar_sounds,
		                                   common_errors, practice_phrase, audio_description, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		g.ID, g.Word, g.IPA, g.Syllables, g.Stress, g.SoundTips, g.SimilarSounds,
		g.CommonErrors, g.PracticePhrase, g.AudioDescription, g.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "pronunciation guide", g.Word)
	}
	return nil
}
