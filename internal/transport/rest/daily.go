package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

type dailyService interface {
	Quote(ctx context.Context) (domain.DailyQuote, error)
	Fact(ctx context.Context) (domain.Fact, error)
}

// DailyHandler serves the quote and fact of the day.
type DailyHandler struct {
	daily dailyService
	log   *slog.Logger
}

// NewDailyHandler creates a DailyHandler.
func NewDailyHandler(daily dailyService, logger *slog.Logger) *DailyHandler {
	return &DailyHandler{daily: daily, log: logger.With("handler", "daily")}
}

// Quote handles GET /daily/quote.
func (h *DailyHandler) Quote(w http.ResponseWriter, r *http.Request) {
	q, err := h.daily.Quote(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, toQuoteResponse(q))
}

// Fact handles GET /daily/fact.
func (h *DailyHandler) Fact(w http.ResponseWriter, r *http.Request) {
	f, err := h.daily.Fact(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, toFactResponse(f))
}
