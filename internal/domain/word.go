package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is a generated vocabulary entry. Text is the lowercased natural key.
// CommonMistakes and RelatedWords hold JSON-encoded arrays.
type Word struct {
	ID              uuid.UUID
	Text            string
	MeaningHindi    string
	MeaningGujarati string
	Pronunciation   *string
	PartOfSpeech    *string
	Difficulty      *string
	Category        *string
	Etymology       *string
	MnemonicTrick   *string
	CommonMistakes  string
	RelatedWords    string
	IsWordOfTheDay  bool
	FeaturedOn      *time.Time
	CreatedAt       time.Time

	Synonyms  []Synonym
	Antonyms  []Antonym
	Sentences []Sentence
}

// Synonym belongs to exactly one Word.
type Synonym struct {
	ID     uuid.UUID
	WordID uuid.UUID
	Text   string
}

// Antonym belongs to exactly one Word.
type Antonym struct {
	ID     uuid.UUID
	WordID uuid.UUID
	Text   string
}

// Sentence is an example usage of a Word.
type Sentence struct {
	ID         uuid.UUID
	WordID     uuid.UUID
	Text       string
	Difficulty Difficulty
}

// WordFilter narrows a word listing. Cursor is the id of the last item of the
// previous page.
type WordFilter struct {
	Difficulty *string
	Category   *string
	Cursor     *uuid.UUID
	Limit      int
}

// WordPage is one page of a cursor-paginated word listing.
type WordPage struct {
	Words      []Word
	NextCursor *uuid.UUID
	HasMore    bool
}

// Idiom is a generated idiom or phrase. Text is the lowercased natural key.
// Examples holds a JSON-encoded array.
type Idiom struct {
	ID                  uuid.UUID
	Text                string
	Meaning             string
	HindiTranslation    *string
	GujaratiTranslation *string
	Examples            string
	Origin              *string
	Difficulty          *string
	Category            *string
	CreatedAt           time.Time
}
