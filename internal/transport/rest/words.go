package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
	"github.com/heartmarshall/wordforge-backend/internal/service/progress"
	"github.com/heartmarshall/wordforge-backend/internal/service/vocabulary"
)

type wordService interface {
	List(ctx context.Context, in vocabulary.ListInput) (domain.WordPage, error)
	Search(ctx context.Context, q string) ([]domain.Word, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Word, error)
	WordOfTheDay(ctx context.Context) (domain.Word, error)
	NextForWidget(ctx context.Context, userID *uuid.UUID) (domain.Word, error)
}

type learnedMarker interface {
	MarkLearned(ctx context.Context, wordID uuid.UUID) (progress.MarkLearnedResult, error)
}

// WordHandler serves the word catalogue, the daily word and the widget feed.
type WordHandler struct {
	words    wordService
	progress learnedMarker
	log      *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(words wordService, progress learnedMarker, logger *slog.Logger) *WordHandler {
	return &WordHandler{words: words, progress: progress, log: logger.With("handler", "words")}
}

// List handles GET /words?cursor&limit&difficulty&category.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var in vocabulary.ListInput
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("limit", "must be an integer"))
			return
		}
		in.Limit = n
	}
	if s := q.Get("cursor"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("cursor", "invalid cursor"))
			return
		}
		in.Cursor = &id
	}
	if s := q.Get("difficulty"); s != "" {
		in.Difficulty = &s
	}
	if s := q.Get("category"); s != "" {
		in.Category = &s
	}

	page, err := h.words.List(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writePage(w, toWordResponses(page.Words), page.NextCursor, page.HasMore)
}

// Search handles GET /words/search?q.
func (h *WordHandler) Search(w http.ResponseWriter, r *http.Request) {
	words, err := h.words.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, toWordResponses(words))
}

// Get handles GET /words/{id}.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	word, err := h.words.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, toWordResponse(word))
}

type markLearnedResponse struct {
	Progress      progressResponse `json:"progress"`
	CurrentStreak int              `json:"currentStreak"`
	LongestStreak int              `json:"longestStreak"`
	NewBadges     []badgeResponse  `json:"newBadges"`
}

// MarkLearned handles POST /words/{id}/learned.
func (h *WordHandler) MarkLearned(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	res, err := h.progress.MarkLearned(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, markLearnedResponse{
		Progress:      toProgressResponse(res.Progress),
		CurrentStreak: res.Streak.CurrentDays,
		LongestStreak: res.Streak.LongestDays,
		NewBadges:     toBadgeResponses(res.NewBadges),
	})
}

// WordOfTheDay handles GET /daily/word.
func (h *WordHandler) WordOfTheDay(w http.ResponseWriter, r *http.Request) {
	word, err := h.words.WordOfTheDay(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, toWordResponse(word))
}

// NextForWidget handles GET /widget/word/next?userId. Without userId the
// newest word is returned and no view is recorded.
func (h *WordHandler) NextForWidget(w http.ResponseWriter, r *http.Request) {
	var userID *uuid.UUID
	if s := r.URL.Query().Get("userId"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("userId", "invalid id"))
			return
		}
		userID = &id
	}

	word, err := h.words.NextForWidget(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, toWordResponse(word))
}

func (h *WordHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("id", "invalid id"))
		return uuid.Nil, false
	}
	return id, true
}
