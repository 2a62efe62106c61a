package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
	"github.com/heartmarshall/wordforge-backend/internal/service/quiz"
)

var _ quizService = &quizServiceMock{}

type quizServiceMock struct {
	GenerateFunc func(ctx context.Context, input quiz.GenerateInput) (domain.Quiz, error)
	SubmitFunc   func(ctx context.Context, input quiz.SubmitInput) (domain.QuizResult, error)

	calls struct {
		Generate []struct {
			Ctx   context.Context
			Input quiz.GenerateInput
		}
		Submit []struct {
			Ctx   context.Context
			Input quiz.SubmitInput
		}
	}
	lockGenerate sync.RWMutex
	lockSubmit   sync.RWMutex
}

func (mock *quizServiceMock) Generate(ctx context.Context, input quiz.GenerateInput) (domain.Quiz, error) {
	if mock.GenerateFunc == nil {
		panic("quizServiceMock.GenerateFunc: method is nil but quizService.Generate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input quiz.GenerateInput
	}{Ctx: ctx, Input: input}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, input)
}

func (mock *quizServiceMock) GenerateCalls() []struct {
	Ctx   context.Context
	Input quiz.GenerateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input quiz.GenerateInput
	}
	mock.lockGenerate.RLock()
	calls = mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

func (mock *quizServiceMock) Submit(ctx context.Context, input quiz.SubmitInput) (domain.QuizResult, error) {
	if mock.SubmitFunc == nil {
		panic("quizServiceMock.SubmitFunc: method is nil but quizService.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input quiz.SubmitInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *quizServiceMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input quiz.SubmitInput
} {
	var calls []struct {
		Ctx   context.Context
		Input quiz.SubmitInput
	}
	mock.lockSubmit.RLock()
	calls = mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}
