package content

import (
	"strings"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// StoryInput
// ---------------------------------------------------------------------------

// StoryInput holds the parameters for generating a story.
type StoryInput struct {
	Theme      string
	Difficulty string
	Words      []string
}

// Validate checks all fields and collects all errors.
func (i StoryInput) Validate() error {
	var errs []domain.FieldError

	if len(strings.TrimSpace(i.Theme)) > 100 {
		errs = append(errs, domain.FieldError{Field: "theme", Message: "max 100 characters"})
	}
	if !validDifficulty(i.Difficulty) {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "unsupported difficulty"})
	}
	if len(i.Words) > MaxStoryWords {
		errs = append(errs, domain.FieldError{Field: "words", Message: "max 20 words"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i StoryInput) normalized() (string, domain.Difficulty, []string) {
	theme := strings.TrimSpace(i.Theme)
	if theme == "" {
		theme = DefaultStoryTheme
	}

	words := make([]string, 0, len(i.Words))
	for _, w := range i.Words {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return theme, difficultyOrDefault(i.Difficulty), words
}

// ---------------------------------------------------------------------------
// LessonInput
// ---------------------------------------------------------------------------

// LessonInput holds the parameters for generating a grammar lesson.
type LessonInput struct {
	Topic      string
	Difficulty string
}

// Validate checks all fields and collects all errors.
func (i LessonInput) Validate() error {
	var errs []domain.FieldError

	topic := strings.TrimSpace(i.Topic)
	if topic == "" {
		errs = append(errs, domain.FieldError{Field: "topic", Message: "required"})
	}
	if len(topic) > 200 {
		errs = append(errs, domain.FieldError{Field: "topic", Message: "max 200 characters"})
	}
	if !validDifficulty(i.Difficulty) {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "unsupported difficulty"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validDifficulty(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || domain.Difficulty(strings.ToLower(s)).IsValid()
}

func difficultyOrDefault(s string) domain.Difficulty {
	d := domain.Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if d == "" {
		return domain.DifficultyIntermediate
	}
	return d
}
