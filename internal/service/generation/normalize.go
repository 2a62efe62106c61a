package generation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
	"github.com/heartmarshall/wordforge-backend/pkg/llmjson"
)

// Rejection describes a dropped batch entry.
type Rejection struct {
	Index  int
	Reason string
}

// parseArray sanitizes raw model output and splits the first top-level array
// into its elements.
func parseArray(raw string) ([]json.RawMessage, error) {
	arr, err := llmjson.ExtractArray(llmjson.StripCodeFences(raw))
	if err != nil {
		return nil, domain.NewParseError(err.Error())
	}
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(arr), &items); err != nil {
		return nil, domain.NewParseError("invalid JSON array: " + err.Error())
	}
	return items, nil
}

// parseObject sanitizes raw model output and decodes the first top-level
// object into v.
func parseObject(raw string, v any) (json.RawMessage, error) {
	obj, err := llmjson.ExtractObject(llmjson.StripCodeFences(raw))
	if err != nil {
		return nil, domain.NewParseError(err.Error())
	}
	if err := json.Unmarshal([]byte(obj), v); err != nil {
		return nil, domain.NewParseError("invalid JSON object: " + err.Error())
	}
	return json.RawMessage(compactJSON([]byte(obj))), nil
}

// NormalizeWords turns array elements into words. Elements that do not decode
// or lack text are rejected; the rest are kept in order.
func NormalizeWords(items []json.RawMessage) ([]domain.Word, []Rejection) {
	words := make([]domain.Word, 0, len(items))
	var rejected []Rejection

	for i, raw := range items {
		var p wordPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			rejected = append(rejected, Rejection{Index: i, Reason: "malformed entry: " + err.Error()})
			continue
		}
		w, ok := normalizeWord(p)
		if !ok {
			rejected = append(rejected, Rejection{Index: i, Reason: "missing text"})
			continue
		}
		words = append(words, w)
	}
	return words, rejected
}

func normalizeWord(p wordPayload) (domain.Word, bool) {
	text := domain.NormalizeText(p.Text)
	if text == "" {
		return domain.Word{}, false
	}

	w := domain.Word{
		Text:            text,
		MeaningHindi:    p.MeaningHindi.String(),
		MeaningGujarati: p.MeaningGujarati.String(),
		Pronunciation:   p.Pronunciation.optional(),
		PartOfSpeech:    lowerOptional(p.PartOfSpeech),
		Difficulty:      lowerOptional(p.Difficulty),
		Category:        lowerOptional(p.Category),
		Etymology:       p.Etymology.optional(),
		MnemonicTrick:   p.MnemonicTrick.optional(),
		CommonMistakes:  encodeList(p.CommonMistakes),
		RelatedWords:    encodeList(p.RelatedWords),
		Synonyms:        []domain.Synonym{},
		Antonyms:        []domain.Antonym{},
		Sentences:       []domain.Sentence{},
	}
	for _, s := range domain.NormalizeList(p.Synonyms) {
		w.Synonyms = append(w.Synonyms, domain.Synonym{Text: s})
	}
	for _, a := range domain.NormalizeList(p.Antonyms) {
		w.Antonyms = append(w.Antonyms, domain.Antonym{Text: a})
	}
	for i, s := range domain.TrimList(p.Sentences) {
		w.Sentences = append(w.Sentences, domain.Sentence{Text: s, Difficulty: domain.SentenceDifficulty(i)})
	}
	return w, true
}

// NormalizeIdioms turns array elements into idioms keyed by lowercased text.
func NormalizeIdioms(items []json.RawMessage) ([]domain.Idiom, []Rejection) {
	idioms := make([]domain.Idiom, 0, len(items))
	var rejected []Rejection

	for i, raw := range items {
		var p idiomPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			rejected = append(rejected, Rejection{Index: i, Reason: "malformed entry: " + err.Error()})
			continue
		}
		text := domain.NormalizeText(p.Idiom)
		if text == "" {
			rejected = append(rejected, Rejection{Index: i, Reason: "missing idiom"})
			continue
		}
		idioms = append(idioms, domain.Idiom{
			Text:                text,
			Meaning:             p.Meaning.String(),
			HindiTranslation:    p.HindiTranslation.optional(),
			GujaratiTranslation: p.GujaratiTranslation.optional(),
			Examples:            encodeList(p.Examples),
			Origin:              p.Origin.optional(),
			Difficulty:          lowerOptional(p.Difficulty),
			Category:            lowerOptional(p.Category),
		})
	}
	return idioms, rejected
}

// NormalizeQuiz returns the compact questions array of a quiz object.
func NormalizeQuiz(raw string) (string, error) {
	var p quizPayload
	if _, err := parseObject(raw, &p); err != nil {
		return "", err
	}
	questions := bytes.TrimSpace(p.Questions)
	if len(questions) == 0 || questions[0] != '[' {
		return "", domain.NewParseError("quiz has no questions array")
	}
	var items []json.RawMessage
	if err := json.Unmarshal(questions, &items); err != nil || len(items) == 0 {
		return "", domain.NewParseError("quiz has no questions")
	}
	return compactJSON(questions), nil
}

// NormalizeQuote decodes a quote object; "quote" is required.
func NormalizeQuote(raw string) (domain.DailyQuote, error) {
	var p quotePayload
	if _, err := parseObject(raw, &p); err != nil {
		return domain.DailyQuote{}, err
	}
	if p.Quote.String() == "" {
		return domain.DailyQuote{}, domain.NewParseError("missing quote")
	}
	return domain.DailyQuote{
		Quote:               p.Quote.String(),
		Author:              p.Author.optional(),
		HindiTranslation:    p.HindiTranslation.optional(),
		GujaratiTranslation: p.GujaratiTranslation.optional(),
		Explanation:         p.Explanation.optional(),
		RelevanceToLearning: p.RelevanceToLearning.optional(),
	}, nil
}

// NormalizeFact decodes a fact object; "fact" is required. topic is used
// when the model omits one.
func NormalizeFact(raw, topic string) (domain.Fact, error) {
	var p factPayload
	if _, err := parseObject(raw, &p); err != nil {
		return domain.Fact{}, err
	}
	if p.Fact.String() == "" {
		return domain.Fact{}, domain.NewParseError("missing fact")
	}
	f := domain.Fact{
		Fact:                p.Fact.String(),
		Topic:               p.Topic.optional(),
		HindiTranslation:    p.HindiTranslation.optional(),
		GujaratiTranslation: p.GujaratiTranslation.optional(),
		Explanation:         p.Explanation.optional(),
		DidYouKnow:          p.DidYouKnow.optional(),
		Source:              p.Source.optional(),
	}
	if f.Topic == nil && topic != "" {
		f.Topic = &topic
	}
	return f, nil
}

// NormalizeStory decodes a story object; "title" and "story" are required.
func NormalizeStory(raw, theme string, difficulty domain.Difficulty) (domain.Story, error) {
	var p storyPayload
	if _, err := parseObject(raw, &p); err != nil {
		return domain.Story{}, err
	}
	if p.Title.String() == "" || p.Story.String() == "" {
		return domain.Story{}, domain.NewParseError("story needs title and story")
	}
	return domain.Story{
		Title:                  p.Title.String(),
		Content:                p.Story.String(),
		Theme:                  theme,
		Difficulty:             difficulty,
		MoralLesson:            p.MoralLesson.optional(),
		VocabularyHighlights:   encodeList(p.VocabularyHighlights),
		ComprehensionQuestions: encodeList(p.ComprehensionQuestions),
		HindiSummary:           p.HindiSummary.optional(),
		GujaratiSummary:        p.GujaratiSummary.optional(),
	}, nil
}

// NormalizeLesson decodes a grammar lesson object; "title" is required.
func NormalizeLesson(raw, topic string, difficulty domain.Difficulty) (domain.GrammarLesson, error) {
	var p lessonPayload
	if _, err := parseObject(raw, &p); err != nil {
		return domain.GrammarLesson{}, err
	}
	if p.Title.String() == "" {
		return domain.GrammarLesson{}, domain.NewParseError("missing lesson title")
	}
	return domain.GrammarLesson{
		Title:               p.Title.String(),
		Topic:               topic,
		Difficulty:          difficulty,
		Explanation:         p.Explanation.optional(),
		Rules:               encodeList(p.Rules),
		Examples:            encodeList(p.Examples),
		CommonMistakes:      encodeList(p.CommonMistakes),
		PracticeExercises:   encodeList(p.PracticeExercises),
		Tips:                encodeList(p.Tips),
		HindiExplanation:    p.HindiExplanation.optional(),
		GujaratiExplanation: p.GujaratiExplanation.optional(),
	}, nil
}

// NormalizeGuide decodes a pronunciation guide for word. The stored key is
// the requested word, not whatever the model echoes back.
func NormalizeGuide(raw, word string) (domain.PronunciationGuide, error) {
	key := domain.NormalizeText(word)
	if key == "" {
		return domain.PronunciationGuide{}, fmt.Errorf("%w: empty word", domain.ErrValidation)
	}
	var p guidePayload
	if _, err := parseObject(raw, &p); err != nil {
		return domain.PronunciationGuide{}, err
	}
	return domain.PronunciationGuide{
		Word:             key,
		IPA:              p.IPA.optional(),
		Syllables:        p.Syllables.optional(),
		Stress:           p.Stress.optional(),
		SoundTips:        encodeList(p.SoundTips),
		SimilarSounds:    encodeList(p.SimilarSounds),
		CommonErrors:     encodeList(p.CommonErrors),
		PracticePhrase:   p.PracticePhrase.optional(),
		AudioDescription: p.AudioDescription.optional(),
	}, nil
}

func lowerOptional(t looseText) *string {
	s := strings.ToLower(t.String())
	if s == "" {
		return nil
	}
	return &s
}
