package domain

// Difficulty is the learner level a piece of content targets.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert:
		return true
	}
	return false
}

// SentenceDifficulty returns the tag for the example sentence at position i.
// Sentences are generated in increasing complexity.
func SentenceDifficulty(i int) Difficulty {
	switch i {
	case 0:
		return DifficultyIntermediate
	case 1:
		return DifficultyAdvanced
	default:
		return DifficultyExpert
	}
}

// ContentType identifies a kind of generated content. It selects the prompt,
// the sampling preset, and the scheduler lock.
type ContentType string

const (
	ContentTypeWords                ContentType = "words"
	ContentTypeQuiz                 ContentType = "quiz"
	ContentTypeQuote                ContentType = "quote"
	ContentTypeFact                 ContentType = "fact"
	ContentTypeStory                ContentType = "story"
	ContentTypeGrammarLesson        ContentType = "grammar_lesson"
	ContentTypePronunciationGuide   ContentType = "pronunciation_guide"
	ContentTypeIdioms               ContentType = "idioms"
	ContentTypeWordAssociation      ContentType = "word_association"
	ContentTypeConversationStarters ContentType = "conversation_starters"
	ContentTypeCleanup              ContentType = "cleanup"
)

func (c ContentType) String() string { return string(c) }

func (c ContentType) IsValid() bool {
	switch c {
	case ContentTypeWords, ContentTypeQuiz, ContentTypeQuote, ContentTypeFact,
		ContentTypeStory, ContentTypeGrammarLesson, ContentTypePronunciationGuide,
		ContentTypeIdioms, ContentTypeWordAssociation, ContentTypeConversationStarters,
		ContentTypeCleanup:
		return true
	}
	return false
}

// QuizType is the question format requested from the model.
type QuizType string

const (
	QuizTypeMultipleChoice     QuizType = "multiple-choice"
	QuizTypeFillInTheBlank     QuizType = "fill-in-the-blank"
	QuizTypeSynonymMatch       QuizType = "synonym-match"
	QuizTypeDefinitionMatch    QuizType = "definition-match"
	QuizTypeSentenceCompletion QuizType = "sentence-completion"
)

func (q QuizType) String() string { return string(q) }

func (q QuizType) IsValid() bool {
	switch q {
	case QuizTypeMultipleChoice, QuizTypeFillInTheBlank, QuizTypeSynonymMatch,
		QuizTypeDefinitionMatch, QuizTypeSentenceCompletion:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// BadgeCode identifies an achievement.
type BadgeCode string

const (
	BadgeFirstWord  BadgeCode = "first_word"
	BadgeTenWords   BadgeCode = "ten_words"
	BadgeWeekStreak BadgeCode = "week_streak"
)

func (b BadgeCode) String() string { return string(b) }
