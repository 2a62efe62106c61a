package domain

import (
	"time"

	"github.com/google/uuid"
)

// Quiz is a generated question set. Questions holds the JSON-encoded array.
type Quiz struct {
	ID         uuid.UUID
	Type       QuizType
	Difficulty Difficulty
	Questions  string
	CreatedAt  time.Time
}

// QuizAnswer is one submitted answer.
type QuizAnswer struct {
	QuestionIndex int    `json:"questionIndex"`
	Answer        string `json:"answer"`
	IsCorrect     bool   `json:"isCorrect"`
}

// QuizResult records one submission. UserID is nil for anonymous submissions.
type QuizResult struct {
	ID          uuid.UUID
	UserID      *uuid.UUID
	QuizID      *uuid.UUID
	Answers     string
	Score       int
	CompletedAt time.Time
}

// QuizScore returns the rounded percentage of correct answers.
// An empty answer set scores 0.
func QuizScore(answers []QuizAnswer) int {
	if len(answers) == 0 {
		return 0
	}
	correct := 0
	for _, a := range answers {
		if a.IsCorrect {
			correct++
		}
	}
	// Integer form of round(correct/total*100), half away from zero.
	return (correct*200 + len(answers)) / (2 * len(answers))
}

// DailyQuote is the inspirational quote for one calendar day.
type DailyQuote struct {
	ID                  uuid.UUID
	Quote               string
	Author              *string
	HindiTranslation    *string
	GujaratiTranslation *string
	Explanation         *string
	RelevanceToLearning *string
	CreatedAt           time.Time
}

// Fact is the fact of the day for one calendar day.
type Fact struct {
	ID                  uuid.UUID
	Fact                string
	Topic               *string
	HindiTranslation    *string
	GujaratiTranslation *string
	Explanation         *string
	DidYouKnow          *string
	Source              *string
	CreatedAt           time.Time
}

// Story is a generated reading passage. VocabularyHighlights and
// ComprehensionQuestions hold JSON-encoded arrays.
type Story struct {
	ID                     uuid.UUID
	Title                  string
	Content                string
	Theme                  string
	Difficulty             Difficulty
	MoralLesson            *string
	VocabularyHighlights   string
	ComprehensionQuestions string
	HindiSummary           *string
	GujaratiSummary        *string
	CreatedAt              time.Time
}

// GrammarLesson is a generated lesson on one topic. The list fields hold
// JSON-encoded arrays.
type GrammarLesson struct {
	ID                  uuid.UUID
	Title               string
	Topic               string
	Difficulty          Difficulty
	Explanation         *string
	Rules               string
	Examples            string
	CommonMistakes      string
	PracticeExercises   string
	Tips                string
	HindiExplanation    *string
	GujaratiExplanation *string
	CreatedAt           time.Time
}

// PronunciationGuide is unique per lowercased word. The list fields hold
// JSON-encoded arrays.
type PronunciationGuide struct {
	ID               uuid.UUID
	Word             string
	IPA              *string
	Syllables        *string
	Stress           *string
	SoundTips        string
	SimilarSounds    string
	CommonErrors     string
	PracticePhrase   *string
	AudioDescription *string
	CreatedAt        time.Time
}

// GrammarTopics is the fixed catalogue offered to clients.
var GrammarTopics = []string{
	"Present Perfect Tense",
	"Past Continuous",
	"Future Perfect",
	"Conditional Sentences",
	"Passive Voice",
	"Reported Speech",
	"Modal Verbs",
	"Relative Clauses",
	"Subjunctive Mood",
	"Phrasal Verbs",
	"Articles",
	"Prepositions",
}
