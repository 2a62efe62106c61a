package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordforge-backend/internal/service/progress"
)

type progressService interface {
	Overview(ctx context.Context) (progress.Overview, error)
}

// ProgressHandler serves the caller's learning progress.
type ProgressHandler struct {
	progress progressService
	log      *slog.Logger
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(progress progressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{progress: progress, log: logger.With("handler", "progress")}
}

type progressStatsResponse struct {
	TotalWords         int     `json:"totalWords"`
	LearnedWords       int     `json:"learnedWords"`
	StreakDays         int     `json:"streakDays"`
	AverageReviewCount float64 `json:"averageReviewCount"`
}

type overviewResponse struct {
	Progress []progressResponse    `json:"progress"`
	Stats    progressStatsResponse `json:"stats"`
}

// Overview handles GET /progress.
func (h *ProgressHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.progress.Overview(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]progressResponse, 0, len(ov.Items))
	for _, p := range ov.Items {
		items = append(items, toProgressResponse(p))
	}

	writeData(w, http.StatusOK, overviewResponse{
		Progress: items,
		Stats: progressStatsResponse{
			TotalWords:         ov.Stats.TotalWords,
			LearnedWords:       ov.Stats.LearnedWords,
			StreakDays:         ov.Stats.StreakDays,
			AverageReviewCount: ov.Stats.AverageReviewCount,
		},
	})
}
