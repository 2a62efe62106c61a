package rest

import (
	"encoding/json"
	"time"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

// rawJSON embeds a stored JSON text column as-is. Empty or corrupt text is
// emitted as an empty array.
func rawJSON(s string) json.RawMessage {
	if s == "" || !json.Valid([]byte(s)) {
		return json.RawMessage("[]")
	}
	return json.RawMessage(s)
}

// ---------------------------------------------------------------------------
// Words
// ---------------------------------------------------------------------------

type sentenceResponse struct {
	Text       string `json:"text"`
	Difficulty string `json:"difficulty"`
}

type wordResponse struct {
	ID              string             `json:"id"`
	Word            string             `json:"word"`
	MeaningHindi    string             `json:"meaningHindi"`
	MeaningGujarati string             `json:"meaningGujarati"`
	Pronunciation   *string            `json:"pronunciation,omitempty"`
	PartOfSpeech    *string            `json:"partOfSpeech,omitempty"`
	Difficulty      *string            `json:"difficulty,omitempty"`
	Category        *string            `json:"category,omitempty"`
	Etymology       *string            `json:"etymology,omitempty"`
	MnemonicTrick   *string            `json:"mnemonicTrick,omitempty"`
	CommonMistakes  json.RawMessage    `json:"commonMistakes"`
	RelatedWords    json.RawMessage    `json:"relatedWords"`
	IsWordOfTheDay  bool               `json:"isWordOfTheDay"`
	FeaturedOn      *time.Time         `json:"featuredOn,omitempty"`
	Synonyms        []string           `json:"synonyms"`
	Antonyms        []string           `json:"antonyms"`
	Sentences       []sentenceResponse `json:"sentences"`
	CreatedAt       time.Time          `json:"createdAt"`
}

func toWordResponse(w domain.Word) wordResponse {
	resp := wordResponse{
		ID:              w.ID.String(),
		Word:            w.Text,
		MeaningHindi:    w.MeaningHindi,
		MeaningGujarati: w.MeaningGujarati,
		Pronunciation:   w.Pronunciation,
		PartOfSpeech:    w.PartOfSpeech,
		Difficulty:      w.Difficulty,
		Category:        w.Category,
		Etymology:       w.Etymology,
		MnemonicTrick:   w.MnemonicTrick,
		CommonMistakes:  rawJSON(w.CommonMistakes),
		RelatedWords:    rawJSON(w.RelatedWords),
		IsWordOfTheDay:  w.IsWordOfTheDay,
		FeaturedOn:      w.FeaturedOn,
		Synonyms:        make([]string, 0, len(w.Synonyms)),
		Antonyms:        make([]string, 0, len(w.Antonyms)),
		Sentences:       make([]sentenceResponse, 0, len(w.Sentences)),
		CreatedAt:       w.CreatedAt,
	}
	for _, s := range w.Synonyms {
		resp.Synonyms = append(resp.Synonyms, s.Text)
	}
	for _, a := range w.Antonyms {
		resp.Antonyms = append(resp.Antonyms, a.Text)
	}
	for _, s := range w.Sentences {
		resp.Sentences = append(resp.Sentences, sentenceResponse{Text: s.Text, Difficulty: s.Difficulty.String()})
	}
	return resp
}

func toWordResponses(words []domain.Word) []wordResponse {
	out := make([]wordResponse, 0, len(words))
	for _, w := range words {
		out = append(out, toWordResponse(w))
	}
	return out
}

// ---------------------------------------------------------------------------
// Quiz
// ---------------------------------------------------------------------------

type quizResponse struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Difficulty string          `json:"difficulty"`
	Questions  json.RawMessage `json:"questions"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func toQuizResponse(q domain.Quiz) quizResponse {
	return quizResponse{
		ID:         q.ID.String(),
		Type:       q.Type.String(),
		Difficulty: q.Difficulty.String(),
		Questions:  rawJSON(q.Questions),
		CreatedAt:  q.CreatedAt,
	}
}

type quizResultResponse struct {
	ID          string          `json:"id"`
	QuizID      *string         `json:"quizId,omitempty"`
	Score       int             `json:"score"`
	Answers     json.RawMessage `json:"answers"`
	CompletedAt time.Time       `json:"completedAt"`
}

func toQuizResultResponse(r domain.QuizResult) quizResultResponse {
	resp := quizResultResponse{
		ID:          r.ID.String(),
		Score:       r.Score,
		Answers:     rawJSON(r.Answers),
		CompletedAt: r.CompletedAt,
	}
	if r.QuizID != nil {
		s := r.QuizID.String()
		resp.QuizID = &s
	}
	return resp
}

// ---------------------------------------------------------------------------
// Daily content
// ---------------------------------------------------------------------------

type quoteResponse struct {
	ID                  string    `json:"id"`
	Quote               string    `json:"quote"`
	Author              *string   `json:"author,omitempty"`
	HindiTranslation    *string   `json:"hindiTranslation,omitempty"`
	GujaratiTranslation *string   `json:"gujaratiTranslation,omitempty"`
	Explanation         *string   `json:"explanation,omitempty"`
	RelevanceToLearning *string   `json:"relevanceToLearning,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

func toQuoteResponse(q domain.DailyQuote) quoteResponse {
	return quoteResponse{
		ID:                  q.ID.String(),
		Quote:               q.Quote,
		Author:              q.Author,
		HindiTranslation:    q.HindiTranslation,
		GujaratiTranslation: q.GujaratiTranslation,
		Explanation:         q.Explanation,
		RelevanceToLearning: q.RelevanceToLearning,
		CreatedAt:           q.CreatedAt,
	}
}

type factResponse struct {
	ID                  string    `json:"id"`
	Fact                string    `json:"fact"`
	Topic               *string   `json:"topic,omitempty"`
	HindiTranslation    *string   `json:"hindiTranslation,omitempty"`
	GujaratiTranslation *string   `json:"gujaratiTranslation,omitempty"`
	Explanation         *string   `json:"explanation,omitempty"`
	DidYouKnow          *string   `json:"didYouKnow,omitempty"`
	Source              *string   `json:"source,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

func toFactResponse(f domain.Fact) factResponse {
	return factResponse{
		ID:                  f.ID.String(),
		Fact:                f.Fact,
		Topic:               f.Topic,
		HindiTranslation:    f.HindiTranslation,
		GujaratiTranslation: f.GujaratiTranslation,
		Explanation:         f.Explanation,
		DidYouKnow:          f.DidYouKnow,
		Source:              f.Source,
		CreatedAt:           f.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Learning content
// ---------------------------------------------------------------------------

type storyResponse struct {
	ID                     string          `json:"id"`
	Title                  string          `json:"title"`
	Story                  string          `json:"story"`
	Theme                  string          `json:"theme"`
	Difficulty             string          `json:"difficulty"`
	MoralLesson            *string         `json:"moralLesson,omitempty"`
	VocabularyHighlights   json.RawMessage `json:"vocabularyHighlights"`
	ComprehensionQuestions json.RawMessage `json:"comprehensionQuestions"`
	HindiSummary           *string         `json:"hindiSummary,omitempty"`
	GujaratiSummary        *string         `json:"gujaratiSummary,omitempty"`
	CreatedAt              time.Time       `json:"createdAt"`
}

func toStoryResponse(s domain.Story) storyResponse {
	return storyResponse{
		ID:                     s.ID.String(),
		Title:                  s.Title,
		Story:                  s.Content,
		Theme:                  s.Theme,
		Difficulty:             s.Difficulty.String(),
		MoralLesson:            s.MoralLesson,
		VocabularyHighlights:   rawJSON(s.VocabularyHighlights),
		ComprehensionQuestions: rawJSON(s.ComprehensionQuestions),
		HindiSummary:           s.HindiSummary,
		GujaratiSummary:        s.GujaratiSummary,
		CreatedAt:              s.CreatedAt,
	}
}

type lessonResponse struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	Topic               string          `json:"topic"`
	Difficulty          string          `json:"difficulty"`
	Explanation         *string         `json:"explanation,omitempty"`
	Rules               json.RawMessage `json:"rules"`
	Examples            json.RawMessage `json:"examples"`
	CommonMistakes      json.RawMessage `json:"commonMistakes"`
	PracticeExercises   json.RawMessage `json:"practiceExercises"`
	Tips                json.RawMessage `json:"tips"`
	HindiExplanation    *string         `json:"hindiExplanation,omitempty"`
	GujaratiExplanation *string         `json:"gujaratiExplanation,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
}

func toLessonResponse(l domain.GrammarLesson) lessonResponse {
	return lessonResponse{
		ID:                  l.ID.String(),
		Title:               l.Title,
		Topic:               l.Topic,
		Difficulty:          l.Difficulty.String(),
		Explanation:         l.Explanation,
		Rules:               rawJSON(l.Rules),
		Examples:            rawJSON(l.Examples),
		CommonMistakes:      rawJSON(l.CommonMistakes),
		PracticeExercises:   rawJSON(l.PracticeExercises),
		Tips:                rawJSON(l.Tips),
		HindiExplanation:    l.HindiExplanation,
		GujaratiExplanation: l.GujaratiExplanation,
		CreatedAt:           l.CreatedAt,
	}
}

type guideResponse struct {
	ID               string          `json:"id"`
	Word             string          `json:"word"`
	IPA              *string         `json:"ipa,omitempty"`
	Syllables        *string         `json:"syllables,omitempty"`
	Stress           *string         `json:"stress,omitempty"`
	SoundTips        json.RawMessage `json:"soundTips"`
	SimilarSounds    json.RawMessage `json:"similarSounds"`
	CommonErrors     json.RawMessage `json:"commonErrors"`
	PracticePhrase   *string         `json:"practicePhrase,omitempty"`
	AudioDescription *string         `json:"audioDescription,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

func toGuideResponse(g domain.PronunciationGuide) guideResponse {
	return guideResponse{
		ID:               g.ID.String(),
		Word:             g.Word,
		IPA:              g.IPA,
		Syllables:        g.Syllables,
		Stress:           g.Stress,
		SoundTips:        rawJSON(g.SoundTips),
		SimilarSounds:    rawJSON(g.SimilarSounds),
		CommonErrors:     rawJSON(g.CommonErrors),
		PracticePhrase:   g.PracticePhrase,
		AudioDescription: g.AudioDescription,
		CreatedAt:        g.CreatedAt,
	}
}

type idiomResponse struct {
	ID                  string          `json:"id"`
	Idiom               string          `json:"idiom"`
	Meaning             string          `json:"meaning"`
	HindiTranslation    *string         `json:"hindiTranslation,omitempty"`
	GujaratiTranslation *string         `json:"gujaratiTranslation,omitempty"`
	Examples            json.RawMessage `json:"examples"`
	Origin              *string         `json:"origin,omitempty"`
	Difficulty          *string         `json:"difficulty,omitempty"`
	Category            *string         `json:"category,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
}

func toIdiomResponse(i domain.Idiom) idiomResponse {
	return idiomResponse{
		ID:                  i.ID.String(),
		Idiom:               i.Text,
		Meaning:             i.Meaning,
		HindiTranslation:    i.HindiTranslation,
		GujaratiTranslation: i.GujaratiTranslation,
		Examples:            rawJSON(i.Examples),
		Origin:              i.Origin,
		Difficulty:          i.Difficulty,
		Category:            i.Category,
		CreatedAt:           i.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Users and progress
// ---------------------------------------------------------------------------

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Username:  u.Username,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

type badgeResponse struct {
	Code     string    `json:"code"`
	Name     string    `json:"name"`
	EarnedAt time.Time `json:"earnedAt"`
}

func toBadgeResponses(badges []domain.Badge) []badgeResponse {
	out := make([]badgeResponse, 0, len(badges))
	for _, b := range badges {
		out = append(out, badgeResponse{Code: string(b.Code), Name: b.Name, EarnedAt: b.EarnedAt})
	}
	return out
}

type progressResponse struct {
	ID           string        `json:"id"`
	WordID       string        `json:"wordId"`
	IsLearned    bool          `json:"isLearned"`
	ReviewCount  int           `json:"reviewCount"`
	LastReviewed time.Time     `json:"lastReviewed"`
	Word         *wordResponse `json:"word,omitempty"`
}

func toProgressResponse(p domain.UserProgress) progressResponse {
	resp := progressResponse{
		ID:           p.ID.String(),
		WordID:       p.WordID.String(),
		IsLearned:    p.IsLearned,
		ReviewCount:  p.ReviewCount,
		LastReviewed: p.LastReviewed,
	}
	if p.Word != nil {
		w := toWordResponse(*p.Word)
		resp.Word = &w
	}
	return resp
}
