package generation

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/wordforge-backend/internal/adapter/provider/completion"
)

const jsonOnlySystem = `You are an expert English vocabulary teacher.
Return only valid JSON with no explanations, no code fences, and no extra text.
If you cannot provide JSON, return an empty JSON array "[]".`

func messages(system, user string) []completion.Message {
	var out []completion.Message
	if system != "" {
		out = append(out, completion.Message{Role: completion.RoleSystem, Content: system})
	}
	return append(out, completion.Message{Role: completion.RoleUser, Content: user})
}

func wordsPrompt(count int, category string) []completion.Message {
	user := fmt.Sprintf(`Generate %d advanced-level English vocabulary words for a serious learner aiming at C1-C2 proficiency.

The words should:
- be moderately rare but still used in educated writing and speech
- avoid basic words such as "happy", "run", "good" or "important"
- avoid archaic terms unless they are still academically relevant
- cover a variety of parts of speech
- be semantically diverse (not synonyms of each other)

Target difficulty examples: "pernicious", "cogent", "ubiquitous", "alacrity", "tenuous", "esoteric".

For each word provide:
- text: the English word
- meaningHindi: Hindi translation
- meaningGujarati: Gujarati translation
- pronunciation: IPA notation
- partOfSpeech: noun, verb, adjective, etc.
- difficulty: advanced
- category: %s
- etymology: brief word origin
- synonyms: array of 3-5 synonyms
- antonyms: array of 2-4 antonyms
- sentences: array of 3 example sentences of increasing complexity
- mnemonicTrick: a memory technique for the word
- commonMistakes: array of common usage errors
- relatedWords: array of related vocabulary

Return only a valid JSON array.`, count, category)
	return messages(jsonOnlySystem, user)
}

func quizPrompt(quizType, difficulty string, count int, words []string) []completion.Message {
	user := fmt.Sprintf(`Create a %s quiz at %s level with %d questions using these words: %s

Quiz types:
- multiple-choice: 4 options per question
- fill-in-the-blank: sentences with missing words
- synonym-match: match words with synonyms
- definition-match: match words with definitions
- sentence-completion: complete sentences using given words

For each question provide:
- question: the question text
- options: array of possible answers (for multiple choice)
- correctAnswer: the correct answer
- explanation: why this answer is correct
- difficulty: question difficulty level

Make questions challenging but fair. Return a JSON object with a "questions" array.`,
		quizType, difficulty, count, strings.Join(words, ", "))
	return messages("You are a quiz generator for English learning. Create engaging, educational quizzes.", user)
}

func quotePrompt() []completion.Message {
	user := `Generate one inspirational quote about learning English, personal growth, or education.

Provide:
- quote: the inspirational text
- author: author name (may be fictional for original quotes)
- hindiTranslation: Hindi translation
- gujaratiTranslation: Gujarati translation
- explanation: brief explanation of the meaning
- relevanceToLearning: how it applies to language learning

Return a JSON object.`
	return messages("Generate an inspiring, educational quote about learning, growth, or knowledge.", user)
}

func factPrompt(topic string) []completion.Message {
	user := fmt.Sprintf(`Generate an interesting, educational fact about %[1]s.

Provide:
- fact: the fact
- topic: %[1]s
- hindiTranslation: Hindi translation
- gujaratiTranslation: Gujarati translation
- explanation: detailed explanation
- didYouKnow: additional related information
- source: general source type (e.g. "Scientific Research", "Historical Records")

Return a JSON object.`, topic)
	return messages("", user)
}

func storyPrompt(theme, difficulty string, words []string) []completion.Message {
	include := "any suitable words"
	if len(words) > 0 {
		include = strings.Join(words, ", ")
	}
	user := fmt.Sprintf(`Write an engaging %[2]s-level story with a %[1]s theme.

Include these vocabulary words: %[3]s

The story should be 200-400 words long, educational, carry a moral lesson, and use vocabulary appropriate for the %[2]s level.

Provide:
- title: story title
- story: the complete story text
- moralLesson: key takeaway
- vocabularyHighlights: array of key words used, with definitions
- comprehensionQuestions: 3 questions about the story
- hindiSummary: brief Hindi summary
- gujaratiSummary: brief Gujarati summary

Return a JSON object.`, theme, difficulty, include)
	return messages("You are a creative writer specializing in educational stories for English learners.", user)
}

func lessonPrompt(topic, difficulty string) []completion.Message {
	user := fmt.Sprintf(`Create a comprehensive grammar lesson on %q for %s level students.

Include:
- title: lesson title
- explanation: clear explanation of the grammar rule
- rules: array of key grammar rules
- examples: array of example sentences showing correct usage
- commonMistakes: array of common errors students make
- practiceExercises: 5 practice questions with answers
- tips: array of tips for remembering the rule
- hindiExplanation: brief Hindi explanation
- gujaratiExplanation: brief Gujarati explanation

Return a JSON object.`, topic, difficulty)
	return messages("You are an expert English grammar teacher creating comprehensive lessons.", user)
}

func guidePrompt(word string) []completion.Message {
	user := fmt.Sprintf(`Create a comprehensive pronunciation guide for the word %q.

Include:
- word: the target word
- ipa: International Phonetic Alphabet notation
- syllables: the word broken into syllables
- stress: which syllable to stress
- soundTips: array of tips for difficult sounds
- similarSounds: array of words with similar pronunciation patterns
- commonErrors: array of common mispronunciations
- practicePhrase: a phrase to practice the word in context
- audioDescription: how to make each sound

Return a JSON object.`, word)
	return messages("You are a pronunciation expert helping English learners with correct pronunciation.", user)
}

func idiomsPrompt(count int) []completion.Message {
	user := fmt.Sprintf(`Generate %d common English idioms and phrases that are useful for learners.

For each idiom provide:
- idiom: the idiom or phrase
- meaning: what it means
- hindiTranslation: Hindi equivalent or explanation
- gujaratiTranslation: Gujarati equivalent or explanation
- examples: 2 example sentences using the idiom
- origin: brief history of the idiom, if known
- difficulty: beginner, intermediate or advanced
- category: type of idiom (business, casual, literary, etc.)

Return a JSON array.`, count)
	return messages("", user)
}

func wordAssociationPrompt(difficulty string) []completion.Message {
	user := fmt.Sprintf(`Create a word association game for %s level English learners.

Generate:
- centerWord: main word to associate with
- associations: array of 8-10 related words
- categories: categories of associations (synonyms, related concepts, etc.)
- explanations: why each word is associated
- gameInstructions: how to play
- scoringSystem: how to score the game

Return a JSON object.`, difficulty)
	return messages("", user)
}

func conversationStartersPrompt(difficulty string) []completion.Message {
	user := fmt.Sprintf(`Generate conversation starters for %s level English learners.

Create:
- topics: array of 10 conversation topics
- questions: 3-5 questions for each topic
- vocabulary: key vocabulary for each topic
- culturalTips: cultural context for conversations
- practiceScenarios: role-play scenarios

Return a JSON object.`, difficulty)
	return messages("", user)
}
