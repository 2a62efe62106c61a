package progress

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
	"github.com/heartmarshall/wordforge-backend/pkg/ctxutil"
)

// Overview is the calling user's progress list with summary stats.
type Overview struct {
	Items []domain.UserProgress
	Stats domain.ProgressStats
}

// Overview returns every progress row of the calling user, most recently
// reviewed first, with the streak computed as of now.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Overview{}, domain.ErrUnauthorized
	}

	items, err := s.progress.ListWithWords(ctx, userID)
	if err != nil {
		return Overview{}, fmt.Errorf("progress.Overview: %w", err)
	}
	days, err := s.progress.ReviewDays(ctx, userID, time.Time{})
	if err != nil {
		return Overview{}, fmt.Errorf("progress.Overview: %w", err)
	}

	return Overview{
		Items: items,
		Stats: computeStats(items, domain.CalculateStreak(days, s.now())),
	}, nil
}

func computeStats(items []domain.UserProgress, streak int) domain.ProgressStats {
	st := domain.ProgressStats{TotalWords: len(items), StreakDays: streak}
	if len(items) == 0 {
		return st
	}

	reviews := 0
	for _, p := range items {
		if p.IsLearned {
			st.LearnedWords++
		}
		reviews += p.ReviewCount
	}
	avg := float64(reviews) / float64(len(items))
	st.AverageReviewCount = math.Round(avg*100) / 100
	return st
}
