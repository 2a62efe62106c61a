package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
	"github.com/heartmarshall/wordforge-backend/internal/service/quiz"
)

type quizService interface {
	Generate(ctx context.Context, input quiz.GenerateInput) (domain.Quiz, error)
	Submit(ctx context.Context, input quiz.SubmitInput) (domain.QuizResult, error)
}

// QuizHandler serves quiz generation and submission.
type QuizHandler struct {
	quizzes quizService
	log     *slog.Logger
}

// NewQuizHandler creates a QuizHandler.
func NewQuizHandler(quizzes quizService, logger *slog.Logger) *QuizHandler {
	return &QuizHandler{quizzes: quizzes, log: logger.With("handler", "quiz")}
}

type generateQuizRequest struct {
	Type       string `json:"type" validate:"required"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count" validate:"gte=0,lte=50"`
}

type answerRequest struct {
	QuestionIndex int    `json:"questionIndex" validate:"gte=0"`
	Answer        string `json:"answer"`
	IsCorrect     bool   `json:"isCorrect"`
}

type submitQuizRequest struct {
	QuizID  string          `json:"quizId" validate:"omitempty,uuid"`
	Answers []answerRequest `json:"answers" validate:"required,min=1,dive"`
}

// Generate handles POST /quiz/generate.
func (h *QuizHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateQuizRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	q, err := h.quizzes.Generate(r.Context(), quiz.GenerateInput{
		Type:       req.Type,
		Difficulty: req.Difficulty,
		Count:      req.Count,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusCreated, toQuizResponse(q))
}

// Submit handles POST /quiz/submit. Anonymous callers are accepted.
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitQuizRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := quiz.SubmitInput{Answers: make([]domain.QuizAnswer, 0, len(req.Answers))}
	if req.QuizID != "" {
		id, err := uuid.Parse(req.QuizID)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("quizId", "invalid id"))
			return
		}
		input.QuizID = &id
	}
	for _, a := range req.Answers {
		input.Answers = append(input.Answers, domain.QuizAnswer{
			QuestionIndex: a.QuestionIndex,
			Answer:        a.Answer,
			IsCorrect:     a.IsCorrect,
		})
	}

	res, err := h.quizzes.Submit(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusCreated, toQuizResultResponse(res))
}
