package scheduler

import (
	"context"
	"sync"
	"time"
)

var _ quizCleaner = &quizCleanerMock{}

type quizCleanerMock struct {
	DeleteAnonymousResultsBeforeFunc func(ctx context.Context, cutoff time.Time) (int, error)

	calls struct {
		DeleteAnonymousResultsBefore []struct {
			Ctx    context.Context
			Cutoff time.Time
		}
	}
	lockDeleteAnonymousResultsBefore sync.RWMutex
}

func (mock *quizCleanerMock) DeleteAnonymousResultsBefore(ctx context.Context, cutoff time.Time) (int, error) {
	if mock.DeleteAnonymousResultsBeforeFunc == nil {
		panic("quizCleanerMock.DeleteAnonymousResultsBeforeFunc: method is nil but quizCleaner.DeleteAnonymousResultsBefore was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Cutoff time.Time
	}{Ctx: ctx, Cutoff: cutoff}
	mock.lockDeleteAnonymousResultsBefore.Lock()
	mock.calls.DeleteAnonymousResultsBefore = append(mock.calls.DeleteAnonymousResultsBefore, callInfo)
	mock.lockDeleteAnonymousResultsBefore.Unlock()
	return mock.DeleteAnonymousResultsBeforeFunc(ctx, cutoff)
}

func (mock *quizCleanerMock) DeleteAnonymousResultsBeforeCalls() []struct {
	Ctx    context.Context
	Cutoff time.Time
} {
	var calls []struct {
		Ctx    context.Context
		Cutoff time.Time
	}
	mock.lockDeleteAnonymousResultsBefore.RLock()
	calls = mock.calls.DeleteAnonymousResultsBefore
	mock.lockDeleteAnonymousResultsBefore.RUnlock()
	return calls
}
