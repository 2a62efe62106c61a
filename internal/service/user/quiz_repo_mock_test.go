package user

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ quizRepo = &quizRepoMock{}

type quizRepoMock struct {
	CountResultsFunc func(ctx context.Context, userID *uuid.UUID) (int, error)

	calls struct {
		CountResults []struct {
			Ctx    context.Context
			UserID *uuid.UUID
		}
	}
	lockCountResults sync.RWMutex
}

func (mock *quizRepoMock) CountResults(ctx context.Context, userID *uuid.UUID) (int, error) {
	if mock.CountResultsFunc == nil {
		panic("quizRepoMock.CountResultsFunc: method is nil but quizRepo.CountResults was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID *uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountResults.Lock()
	mock.calls.CountResults = append(mock.calls.CountResults, callInfo)
	mock.lockCountResults.Unlock()
	return mock.CountResultsFunc(ctx, userID)
}

func (mock *quizRepoMock) CountResultsCalls() []struct {
	Ctx    context.Context
	UserID *uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID *uuid.UUID
	}
	mock.lockCountResults.RLock()
	calls = mock.calls.CountResults
	mock.lockCountResults.RUnlock()
	return calls
}
