package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
	"github.com/heartmarshall/wordforge-backend/internal/scheduler"
	"github.com/heartmarshall/wordforge-backend/internal/service/content"
	"github.com/heartmarshall/wordforge-backend/internal/service/vocabulary"
)

type generationTrigger interface {
	GenerateWords(ctx context.Context, count int) (vocabulary.GenerateResult, error)
	GenerateDailyContent(ctx context.Context) (scheduler.DailyResult, error)
	GenerateIdioms(ctx context.Context, count int) (content.IdiomResult, error)
	Cleanup(ctx context.Context) (scheduler.CleanupResult, error)
}

type statsService interface {
	AdminStats(ctx context.Context) (domain.AdminStats, error)
}

// AdminHandler serves the manual triggers and stats. Routes are wrapped in
// RequireAdmin.
type AdminHandler struct {
	triggers generationTrigger
	stats    statsService
	log      *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(triggers generationTrigger, stats statsService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{triggers: triggers, stats: stats, log: logger.With("handler", "admin")}
}

type countRequest struct {
	Count int `json:"count" validate:"gte=0,lte=50"`
}

type generateWordsResponse struct {
	Category     string  `json:"category"`
	Generated    int     `json:"generated"`
	Created      int     `json:"created"`
	Skipped      int     `json:"skipped"`
	Failed       int     `json:"failed"`
	Dropped      int     `json:"dropped"`
	WordOfTheDay *string `json:"wordOfTheDay,omitempty"`
}

type dailyContentResponse struct {
	Quote quoteResponse `json:"quote"`
	Fact  factResponse  `json:"fact"`
}

type generateIdiomsResponse struct {
	Generated int `json:"generated"`
	Created   int `json:"created"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

type cleanupResponse struct {
	Quotes           int `json:"quotes"`
	Facts            int `json:"facts"`
	AnonymousResults int `json:"anonymousResults"`
}

type adminStatsResponse struct {
	TotalWords   int       `json:"totalWords"`
	TotalQuizzes int       `json:"totalQuizzes"`
	TotalUsers   int       `json:"totalUsers"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// GenerateWords handles POST /admin/generate-words.
func (h *AdminHandler) GenerateWords(w http.ResponseWriter, r *http.Request) {
	var req countRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.triggers.GenerateWords(r.Context(), req.Count)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := generateWordsResponse{
		Category:  res.Category,
		Generated: res.Generated,
		Created:   res.Created,
		Skipped:   res.Skipped,
		Failed:    res.Failed,
		Dropped:   res.Dropped,
	}
	if res.WordOfTheDay != nil {
		s := res.WordOfTheDay.String()
		resp.WordOfTheDay = &s
	}
	writeData(w, http.StatusOK, resp)
}

// GenerateDailyContent handles POST /admin/generate-daily-content.
func (h *AdminHandler) GenerateDailyContent(w http.ResponseWriter, r *http.Request) {
	res, err := h.triggers.GenerateDailyContent(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, dailyContentResponse{
		Quote: toQuoteResponse(res.Quote),
		Fact:  toFactResponse(res.Fact),
	})
}

// GenerateIdioms handles POST /admin/generate-idioms.
func (h *AdminHandler) GenerateIdioms(w http.ResponseWriter, r *http.Request) {
	var req countRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.triggers.GenerateIdioms(r.Context(), req.Count)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, generateIdiomsResponse{
		Generated: res.Generated,
		Created:   res.Created,
		Skipped:   res.Skipped,
		Failed:    res.Failed,
	})
}

// Cleanup handles POST /admin/cleanup.
func (h *AdminHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	res, err := h.triggers.Cleanup(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, cleanupResponse{
		Quotes:           res.Quotes,
		Facts:            res.Facts,
		AnonymousResults: res.AnonymousResults,
	})
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.stats.AdminStats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, adminStatsResponse{
		TotalWords:   st.TotalWords,
		TotalQuizzes: st.TotalQuizzes,
		TotalUsers:   st.TotalUsers,
		LastUpdated:  st.LastUpdated,
	})
}
