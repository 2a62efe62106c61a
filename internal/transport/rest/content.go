package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
	"github.com/heartmarshall/wordforge-backend/internal/service/content"
)

type contentService interface {
	GenerateStory(ctx context.Context, input content.StoryInput) (domain.Story, error)
	ListStories(ctx context.Context) ([]domain.Story, error)
	GenerateLesson(ctx context.Context, input content.LessonInput) (domain.GrammarLesson, error)
	GetLesson(ctx context.Context, id uuid.UUID) (domain.GrammarLesson, error)
	GrammarTopics() []string
	PronunciationGuide(ctx context.Context, word string) (domain.PronunciationGuide, error)
	ListIdioms(ctx context.Context, limit int) ([]domain.Idiom, error)
	WordAssociation(ctx context.Context, difficulty string) (json.RawMessage, error)
	ConversationStarters(ctx context.Context, difficulty string) (json.RawMessage, error)
}

// ContentHandler serves stories, grammar lessons, pronunciation guides,
// idioms and the unstored practice activities.
type ContentHandler struct {
	content contentService
	log     *slog.Logger
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(content contentService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{content: content, log: logger.With("handler", "content")}
}

type storyRequest struct {
	Theme      string   `json:"theme" validate:"max=100"`
	Difficulty string   `json:"difficulty"`
	Words      []string `json:"words" validate:"max=20,dive,max=64"`
}

type lessonRequest struct {
	Topic      string `json:"topic" validate:"required,max=200"`
	Difficulty string `json:"difficulty"`
}

type guideRequest struct {
	Word string `json:"word" validate:"required,max=64"`
}

type activityRequest struct {
	Difficulty string `json:"difficulty"`
}

// GenerateStory handles POST /stories/generate.
func (h *ContentHandler) GenerateStory(w http.ResponseWriter, r *http.Request) {
	var req storyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	story, err := h.content.GenerateStory(r.Context(), content.StoryInput{
		Theme:      req.Theme,
		Difficulty: req.Difficulty,
		Words:      req.Words,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusCreated, toStoryResponse(story))
}

// ListStories handles GET /stories.
func (h *ContentHandler) ListStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.content.ListStories(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]storyResponse, 0, len(stories))
	for _, s := range stories {
		out = append(out, toStoryResponse(s))
	}
	writeData(w, http.StatusOK, out)
}

// GenerateLesson handles POST /grammar/lesson.
func (h *ContentHandler) GenerateLesson(w http.ResponseWriter, r *http.Request) {
	var req lessonRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	lesson, err := h.content.GenerateLesson(r.Context(), content.LessonInput{
		Topic:      req.Topic,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusCreated, toLessonResponse(lesson))
}

// GetLesson handles GET /grammar/lesson/{id}.
func (h *ContentHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("id", "invalid id"))
		return
	}

	lesson, err := h.content.GetLesson(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, toLessonResponse(lesson))
}

// GrammarTopics handles GET /grammar/topics.
func (h *ContentHandler) GrammarTopics(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, h.content.GrammarTopics())
}

// PronunciationGuide handles POST /pronunciation/guide.
func (h *ContentHandler) PronunciationGuide(w http.ResponseWriter, r *http.Request) {
	var req guideRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	guide, err := h.content.PronunciationGuide(r.Context(), req.Word)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, toGuideResponse(guide))
}

// ListIdioms handles GET /idioms?limit.
func (h *ContentHandler) ListIdioms(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("limit", "must be an integer"))
			return
		}
		limit = n
	}

	idioms, err := h.content.ListIdioms(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]idiomResponse, 0, len(idioms))
	for _, i := range idioms {
		out = append(out, toIdiomResponse(i))
	}
	writeData(w, http.StatusOK, out)
}

// WordAssociation handles POST /games/word-association.
func (h *ContentHandler) WordAssociation(w http.ResponseWriter, r *http.Request) {
	h.activity(w, r, h.content.WordAssociation)
}

// ConversationStarters handles POST /conversation/starters.
func (h *ContentHandler) ConversationStarters(w http.ResponseWriter, r *http.Request) {
	h.activity(w, r, h.content.ConversationStarters)
}

func (h *ContentHandler) activity(
	w http.ResponseWriter,
	r *http.Request,
	generate func(ctx context.Context, difficulty string) (json.RawMessage, error),
) {
	var req activityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out, err := generate(r.Context(), req.Difficulty)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, out)
}
