package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordforge-backend/internal/service/progress"
)

var _ learnedMarker = &learnedMarkerMock{}

type learnedMarkerMock struct {
	MarkLearnedFunc func(ctx context.Context, wordID uuid.UUID) (progress.MarkLearnedResult, error)

	calls struct {
		MarkLearned []struct {
			Ctx    context.Context
			WordID uuid.UUID
		}
	}
	lockMarkLearned sync.RWMutex
}

func (mock *learnedMarkerMock) MarkLearned(ctx context.Context, wordID uuid.UUID) (progress.MarkLearnedResult, error) {
	if mock.MarkLearnedFunc == nil {
		panic("learnedMarkerMock.MarkLearnedFunc: method is nil but learnedMarker.MarkLearned was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WordID uuid.UUID
	}{Ctx: ctx, WordID: wordID}
	mock.lockMarkLearned.Lock()
	mock.calls.MarkLearned = append(mock.calls.MarkLearned, callInfo)
	mock.lockMarkLearned.Unlock()
	return mock.MarkLearnedFunc(ctx, wordID)
}

func (mock *learnedMarkerMock) MarkLearnedCalls() []struct {
	Ctx    context.Context
	WordID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		WordID uuid.UUID
	}
	mock.lockMarkLearned.RLock()
	calls = mock.calls.MarkLearned
	mock.lockMarkLearned.RUnlock()
	return calls
}
