package generation

import "github.com/heartmarshall/wordforge-backend/internal/domain"

// ModelTier selects which configured model serves a content type.
type ModelTier int

const (
	ModelMain ModelTier = iota
	ModelCreative
)

// Preset holds the sampling settings of one content type.
type Preset struct {
	Model       ModelTier
	Temperature float64
	TopP        *float64
	MaxTokens   int
}

func topP(v float64) *float64 { return &v }

var presets = map[domain.ContentType]Preset{
	domain.ContentTypeWords:                {Model: ModelMain, Temperature: 0.85, TopP: topP(0.9), MaxTokens: 4000},
	domain.ContentTypeQuiz:                 {Model: ModelMain, Temperature: 0.7, MaxTokens: 2000},
	domain.ContentTypeQuote:                {Model: ModelCreative, Temperature: 0.9, MaxTokens: 500},
	domain.ContentTypeFact:                 {Model: ModelMain, Temperature: 0.8, MaxTokens: 600},
	domain.ContentTypeStory:                {Model: ModelCreative, Temperature: 0.8, MaxTokens: 1500},
	domain.ContentTypeGrammarLesson:        {Model: ModelMain, Temperature: 0.7, MaxTokens: 1200},
	domain.ContentTypePronunciationGuide:   {Model: ModelMain, Temperature: 0.6, MaxTokens: 800},
	domain.ContentTypeIdioms:               {Model: ModelMain, Temperature: 0.8, MaxTokens: 2000},
	domain.ContentTypeWordAssociation:      {Model: ModelMain, Temperature: 0.8, MaxTokens: 1000},
	domain.ContentTypeConversationStarters: {Model: ModelMain, Temperature: 0.8, MaxTokens: 1500},
}

// PresetFor returns the sampling preset of ct.
func PresetFor(ct domain.ContentType) (Preset, bool) {
	p, ok := presets[ct]
	return p, ok
}
