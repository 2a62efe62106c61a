package quiz

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

const (
	DefaultQuestionCount = 10
	MaxQuestionCount     = 50
)

// GenerateInput holds the parameters for generating a quiz.
type GenerateInput struct {
	Type       string
	Difficulty string
	Count      int
}

// Validate checks all fields and collects all errors.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	typ := strings.TrimSpace(i.Type)
	switch {
	case typ == "":
		errs = append(errs, domain.FieldError{Field: "type", Message: "required"})
	case !domain.QuizType(strings.ToLower(typ)).IsValid():
		errs = append(errs, domain.FieldError{Field: "type", Message: "unsupported quiz type"})
	}

	if d := strings.TrimSpace(i.Difficulty); d != "" && !domain.Difficulty(strings.ToLower(d)).IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "unsupported difficulty"})
	}

	if i.Count < 0 {
		errs = append(errs, domain.FieldError{Field: "count", Message: "must be non-negative"})
	}
	if i.Count > MaxQuestionCount {
		errs = append(errs, domain.FieldError{Field: "count", Message: "max 50"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i GenerateInput) params() (domain.QuizType, domain.Difficulty, int) {
	difficulty := domain.Difficulty(strings.ToLower(strings.TrimSpace(i.Difficulty)))
	if difficulty == "" {
		difficulty = domain.DifficultyIntermediate
	}
	count := i.Count
	if count == 0 {
		count = DefaultQuestionCount
	}
	return domain.QuizType(strings.ToLower(strings.TrimSpace(i.Type))), difficulty, count
}

// SubmitInput holds one quiz submission. QuizID is optional.
type SubmitInput struct {
	QuizID  *uuid.UUID
	Answers []domain.QuizAnswer
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Answers) == 0 {
		errs = append(errs, domain.FieldError{Field: "answers", Message: "required"})
	}
	for _, a := range i.Answers {
		if a.QuestionIndex < 0 {
			errs = append(errs, domain.FieldError{Field: "answers", Message: "questionIndex must be non-negative"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
