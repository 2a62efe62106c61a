package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the "user" role.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := UniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser" + suffix,
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$04$not-a-real-hash",
		Role:         domain.UserRoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, username, name, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.Username, user.Name, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedWord creates a word with one synonym, one antonym, and one sentence.
// createdAt controls list ordering; pass the zero time for now().
func SeedWord(t *testing.T, pool *pgxpool.Pool, text string, createdAt time.Time) domain.Word {
	t.Helper()
	ctx := context.Background()

	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	difficulty := "advanced"
	category := "academic"
	w := domain.Word{
		ID:              uuid.New(),
		Text:            domain.NormalizeText(text),
		MeaningHindi:    "hindi " + text,
		MeaningGujarati: "gujarati " + text,
		Difficulty:      &difficulty,
		Category:        &category,
		CommonMistakes:  "[]",
		RelatedWords:    "[]",
		CreatedAt:       createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO words (id, text, meaning_hindi, meaning_gujarati, difficulty, category, common_mistakes, related_words, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		w.ID, w.Text, w.MeaningHindi, w.MeaningGujarati, w.Difficulty, w.Category, w.CommonMistakes, w.RelatedWords, w.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert word: %v", err)
	}

	syn := domain.Synonym{ID: uuid.New(), WordID: w.ID, Text: "syn-" + w.Text}
	ant := domain.Antonym{ID: uuid.New(), WordID: w.ID, Text: "ant-" + w.Text}
	sen := domain.Sentence{ID: uuid.New(), WordID: w.ID, Text: "A sentence with " + w.Text + ".", Difficulty: domain.DifficultyIntermediate}

	if _, err := pool.Exec(ctx, `INSERT INTO synonyms (id, word_id, text) VALUES ($1, $2, $3)`, syn.ID, syn.WordID, syn.Text); err != nil {
		t.Fatalf("testhelper: SeedWord insert synonym: %v", err)
	}
	if _, err := pool.Exec(ctx, `INSERT INTO antonyms (id, word_id, text) VALUES ($1, $2, $3)`, ant.ID, ant.WordID, ant.Text); err != nil {
		t.Fatalf("testhelper: SeedWord insert antonym: %v", err)
	}
	if _, err := pool.Exec(ctx,
		`INSERT INTO sentences (id, word_id, text, difficulty, position) VALUES ($1, $2, $3, $4, 0)`,
		sen.ID, sen.WordID, sen.Text, string(sen.Difficulty),
	); err != nil {
		t.Fatalf("testhelper: SeedWord insert sentence: %v", err)
	}

	w.Synonyms = []domain.Synonym{syn}
	w.Antonyms = []domain.Antonym{ant}
	w.Sentences = []domain.Sentence{sen}
	return w
}

// SeedQuiz creates a quiz with an empty question list.
func SeedQuiz(t *testing.T, pool *pgxpool.Pool) domain.Quiz {
	t.Helper()

	q := domain.Quiz{
		ID:         uuid.New(),
		Type:       domain.QuizTypeMultipleChoice,
		Difficulty: domain.DifficultyIntermediate,
		Questions:  "[]",
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO quizzes (id, type, difficulty, questions, created_at) VALUES ($1, $2, $3, $4, $5)`,
		q.ID, string(q.Type), string(q.Difficulty), q.Questions, q.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQuiz: %v", err)
	}
	return q
}
