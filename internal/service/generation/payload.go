package generation

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Raw shapes of model output. Field names follow the prompts.

type wordPayload struct {
	Text            string          `json:"text"`
	MeaningHindi    looseText       `json:"meaningHindi"`
	MeaningGujarati looseText       `json:"meaningGujarati"`
	Pronunciation   looseText       `json:"pronunciation"`
	PartOfSpeech    looseText       `json:"partOfSpeech"`
	Difficulty      looseText       `json:"difficulty"`
	Category        looseText       `json:"category"`
	Etymology       looseText       `json:"etymology"`
	Synonyms        stringList      `json:"synonyms"`
	Antonyms        stringList      `json:"antonyms"`
	Sentences       stringList      `json:"sentences"`
	MnemonicTrick   looseText       `json:"mnemonicTrick"`
	CommonMistakes  json.RawMessage `json:"commonMistakes"`
	RelatedWords    json.RawMessage `json:"relatedWords"`
}

type idiomPayload struct {
	Idiom               string          `json:"idiom"`
	Meaning             looseText       `json:"meaning"`
	HindiTranslation    looseText       `json:"hindiTranslation"`
	GujaratiTranslation looseText       `json:"gujaratiTranslation"`
	Examples            json.RawMessage `json:"examples"`
	Origin              looseText       `json:"origin"`
	Difficulty          looseText       `json:"difficulty"`
	Category            looseText       `json:"category"`
}

type quizPayload struct {
	Questions json.RawMessage `json:"questions"`
}

type quotePayload struct {
	Quote               looseText `json:"quote"`
	Author              looseText `json:"author"`
	HindiTranslation    looseText `json:"hindiTranslation"`
	GujaratiTranslation looseText `json:"gujaratiTranslation"`
	Explanation         looseText `json:"explanation"`
	RelevanceToLearning looseText `json:"relevanceToLearning"`
}

type factPayload struct {
	Fact                looseText `json:"fact"`
	Topic               looseText `json:"topic"`
	HindiTranslation    looseText `json:"hindiTranslation"`
	GujaratiTranslation looseText `json:"gujaratiTranslation"`
	Explanation         looseText `json:"explanation"`
	DidYouKnow          looseText `json:"didYouKnow"`
	Source              looseText `json:"source"`
}

type storyPayload struct {
	Title                  looseText       `json:"title"`
	Story                  looseText       `json:"story"`
	MoralLesson            looseText       `json:"moralLesson"`
	VocabularyHighlights   json.RawMessage `json:"vocabularyHighlights"`
	ComprehensionQuestions json.RawMessage `json:"comprehensionQuestions"`
	HindiSummary           looseText       `json:"hindiSummary"`
	GujaratiSummary        looseText       `json:"gujaratiSummary"`
}

type lessonPayload struct {
	Title               looseText       `json:"title"`
	Explanation         looseText       `json:"explanation"`
	Rules               json.RawMessage `json:"rules"`
	Examples            json.RawMessage `json:"examples"`
	CommonMistakes      json.RawMessage `json:"commonMistakes"`
	PracticeExercises   json.RawMessage `json:"practiceExercises"`
	Tips                json.RawMessage `json:"tips"`
	HindiExplanation    looseText       `json:"hindiExplanation"`
	GujaratiExplanation looseText       `json:"gujaratiExplanation"`
}

type guidePayload struct {
	IPA              looseText       `json:"ipa"`
	Syllables        looseText       `json:"syllables"`
	Stress           looseText       `json:"stress"`
	SoundTips        json.RawMessage `json:"soundTips"`
	SimilarSounds    json.RawMessage `json:"similarSounds"`
	CommonErrors     json.RawMessage `json:"commonErrors"`
	PracticePhrase   looseText       `json:"practicePhrase"`
	AudioDescription looseText       `json:"audioDescription"`
}

// looseText accepts a JSON string or any other value. Non-string values are
// kept as compact JSON text.
type looseText string

func (t *looseText) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = looseText(s)
		return nil
	}
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*t = ""
		return nil
	}
	*t = looseText(compactJSON(b))
	return nil
}

func (t looseText) String() string { return strings.TrimSpace(string(t)) }

// optional returns nil for blank text.
func (t looseText) optional() *string {
	s := t.String()
	if s == "" {
		return nil
	}
	return &s
}

// stringList accepts an array of strings, a single string, or an array of
// objects carrying a "text" or "sentence" field.
type stringList []string

func (l *stringList) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*l = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*l = stringList{single}
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}

	out := make(stringList, 0, len(items))
	for _, raw := range items {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			out = append(out, s)
			continue
		}
		var obj struct {
			Text     string `json:"text"`
			Sentence string `json:"sentence"`
		}
		if err := json.Unmarshal(raw, &obj); err == nil {
			if obj.Text != "" {
				out = append(out, obj.Text)
			} else if obj.Sentence != "" {
				out = append(out, obj.Sentence)
			}
		}
	}
	*l = out
	return nil
}

// encodeList stores a free-form list as compact JSON text; "[]" when absent.
func encodeList(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "[]"
	}
	return compactJSON(trimmed)
}

func compactJSON(b []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		return string(b)
	}
	return buf.String()
}
