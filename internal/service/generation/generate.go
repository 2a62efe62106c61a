package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordforge-backend/internal/adapter/provider/completion"
	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

const (
	DefaultWordCount  = 15
	DefaultIdiomCount = 10
)

// WordBatch is the normalized outcome of one word generation call.
type WordBatch struct {
	Category string
	Words    []domain.Word
	Dropped  int
}

// Words generates count words (DefaultWordCount when count <= 0) in a
// randomly picked category.
func (s *Service) Words(ctx context.Context, count int) (WordBatch, error) {
	if count <= 0 {
		count = DefaultWordCount
	}
	category := s.picker.Pick(WordCategories)

	raw, err := s.complete(ctx, domain.ContentTypeWords, wordsPrompt(count, category))
	if err != nil {
		return WordBatch{}, err
	}
	items, err := parseArray(raw)
	if err != nil {
		return WordBatch{}, fmt.Errorf("generate words: %w", err)
	}

	words, rejected := NormalizeWords(items)
	s.logRejections(ctx, domain.ContentTypeWords, rejected)

	s.log.InfoContext(ctx, "words generated",
		slog.String("category", category),
		slog.Int("entries", len(items)),
		slog.Int("usable", len(words)),
	)
	return WordBatch{Category: category, Words: words, Dropped: len(rejected)}, nil
}

// Idioms generates count idioms (DefaultIdiomCount when count <= 0).
func (s *Service) Idioms(ctx context.Context, count int) ([]domain.Idiom, error) {
	if count <= 0 {
		count = DefaultIdiomCount
	}

	raw, err := s.complete(ctx, domain.ContentTypeIdioms, idiomsPrompt(count))
	if err != nil {
		return nil, err
	}
	items, err := parseArray(raw)
	if err != nil {
		return nil, fmt.Errorf("generate idioms: %w", err)
	}

	idioms, rejected := NormalizeIdioms(items)
	s.logRejections(ctx, domain.ContentTypeIdioms, rejected)
	return idioms, nil
}

// QuizParams describes a quiz request. Words is the vocabulary to test.
type QuizParams struct {
	Type       domain.QuizType
	Difficulty domain.Difficulty
	Count      int
	Words      []string
}

// Quiz generates the questions of a quiz and returns them as a JSON array.
func (s *Service) Quiz(ctx context.Context, p QuizParams) (string, error) {
	raw, err := s.complete(ctx, domain.ContentTypeQuiz,
		quizPrompt(p.Type.String(), p.Difficulty.String(), p.Count, p.Words))
	if err != nil {
		return "", err
	}
	questions, err := NormalizeQuiz(raw)
	if err != nil {
		return "", fmt.Errorf("generate quiz: %w", err)
	}
	return questions, nil
}

// Quote generates the quote of the day.
func (s *Service) Quote(ctx context.Context) (domain.DailyQuote, error) {
	raw, err := s.complete(ctx, domain.ContentTypeQuote, quotePrompt())
	if err != nil {
		return domain.DailyQuote{}, err
	}
	q, err := NormalizeQuote(raw)
	if err != nil {
		return domain.DailyQuote{}, fmt.Errorf("generate quote: %w", err)
	}
	return q, nil
}

// Fact generates the fact of the day on a randomly picked topic.
func (s *Service) Fact(ctx context.Context) (domain.Fact, error) {
	topic := s.picker.Pick(FactTopics)

	raw, err := s.complete(ctx, domain.ContentTypeFact, factPrompt(topic))
	if err != nil {
		return domain.Fact{}, err
	}
	f, err := NormalizeFact(raw, topic)
	if err != nil {
		return domain.Fact{}, fmt.Errorf("generate fact: %w", err)
	}
	return f, nil
}

// Story generates a story around theme that uses words.
func (s *Service) Story(ctx context.Context, theme string, difficulty domain.Difficulty, words []string) (domain.Story, error) {
	raw, err := s.complete(ctx, domain.ContentTypeStory, storyPrompt(theme, difficulty.String(), words))
	if err != nil {
		return domain.Story{}, err
	}
	story, err := NormalizeStory(raw, theme, difficulty)
	if err != nil {
		return domain.Story{}, fmt.Errorf("generate story: %w", err)
	}
	return story, nil
}

// Lesson generates a grammar lesson on topic.
func (s *Service) Lesson(ctx context.Context, topic string, difficulty domain.Difficulty) (domain.GrammarLesson, error) {
	raw, err := s.complete(ctx, domain.ContentTypeGrammarLesson, lessonPrompt(topic, difficulty.String()))
	if err != nil {
		return domain.GrammarLesson{}, err
	}
	lesson, err := NormalizeLesson(raw, topic, difficulty)
	if err != nil {
		return domain.GrammarLesson{}, fmt.Errorf("generate lesson: %w", err)
	}
	return lesson, nil
}

// Guide generates a pronunciation guide for word.
func (s *Service) Guide(ctx context.Context, word string) (domain.PronunciationGuide, error) {
	raw, err := s.complete(ctx, domain.ContentTypePronunciationGuide, guidePrompt(word))
	if err != nil {
		return domain.PronunciationGuide{}, err
	}
	guide, err := NormalizeGuide(raw, word)
	if err != nil {
		return domain.PronunciationGuide{}, fmt.Errorf("generate guide: %w", err)
	}
	return guide, nil
}

// WordAssociation generates a word association game. The object is returned
// as produced.
func (s *Service) WordAssociation(ctx context.Context, difficulty domain.Difficulty) (json.RawMessage, error) {
	return s.freeform(ctx, domain.ContentTypeWordAssociation, wordAssociationPrompt(difficulty.String()))
}

// ConversationStarters generates conversation topics and questions.
func (s *Service) ConversationStarters(ctx context.Context, difficulty domain.Difficulty) (json.RawMessage, error) {
	return s.freeform(ctx, domain.ContentTypeConversationStarters, conversationStartersPrompt(difficulty.String()))
}

func (s *Service) freeform(ctx context.Context, ct domain.ContentType, msgs []completion.Message) (json.RawMessage, error) {
	raw, err := s.complete(ctx, ct, msgs)
	if err != nil {
		return nil, err
	}
	var probe map[string]json.RawMessage
	obj, err := parseObject(raw, &probe)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", ct, err)
	}
	return obj, nil
}
