package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
	"github.com/heartmarshall/wordforge-backend/pkg/ctxutil"
)

// Submit scores the answers and records the result. The caller's user id is
// taken from the context; anonymous submissions are stored without one.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (domain.QuizResult, error) {
	if err := input.Validate(); err != nil {
		return domain.QuizResult{}, err
	}

	if input.QuizID != nil {
		if _, err := s.quizzes.GetByID(ctx, *input.QuizID); err != nil {
			return domain.QuizResult{}, fmt.Errorf("quiz.Submit: %w", err)
		}
	}

	answers, err := json.Marshal(input.Answers)
	if err != nil {
		return domain.QuizResult{}, fmt.Errorf("quiz.Submit: encode answers: %w", err)
	}

	res := domain.QuizResult{
		QuizID:      input.QuizID,
		Answers:     string(answers),
		Score:       domain.QuizScore(input.Answers),
		CompletedAt: s.now().UTC(),
	}
	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		res.UserID = &userID
	}

	if err := s.quizzes.CreateResult(ctx, &res); err != nil {
		return domain.QuizResult{}, fmt.Errorf("quiz.Submit: %w", err)
	}

	attrs := []any{
		slog.String("result_id", res.ID.String()),
		slog.Int("score", res.Score),
		slog.Bool("anonymous", res.UserID == nil),
	}
	if res.QuizID != nil {
		attrs = append(attrs, slog.String("quiz_id", res.QuizID.String()))
	}
	s.log.InfoContext(ctx, "quiz submitted", attrs...)
	return res, nil
}
