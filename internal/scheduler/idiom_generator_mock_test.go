package scheduler

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordforge-backend/internal/service/content"
)

var _ idiomGenerator = &idiomGeneratorMock{}

type idiomGeneratorMock struct {
	GenerateIdiomsFunc func(ctx context.Context, count int) (content.IdiomResult, error)

	calls struct {
		GenerateIdioms []struct {
			Ctx   context.Context
			Count int
		}
	}
	lockGenerateIdioms sync.RWMutex
}

func (mock *idiomGeneratorMock) GenerateIdioms(ctx context.Context, count int) (content.IdiomResult, error) {
	if mock.GenerateIdiomsFunc == nil {
		panic("idiomGeneratorMock.GenerateIdiomsFunc: method is nil but idiomGenerator.GenerateIdioms was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Count int
	}{Ctx: ctx, Count: count}
	mock.lockGenerateIdioms.Lock()
	mock.calls.GenerateIdioms = append(mock.calls.GenerateIdioms, callInfo)
	mock.lockGenerateIdioms.Unlock()
	return mock.GenerateIdiomsFunc(ctx, count)
}

func (mock *idiomGeneratorMock) GenerateIdiomsCalls() []struct {
	Ctx   context.Context
	Count int
} {
	var calls []struct {
		Ctx   context.Context
		Count int
	}
	mock.lockGenerateIdioms.RLock()
	calls = mock.calls.GenerateIdioms
	mock.lockGenerateIdioms.RUnlock()
	return calls
}
