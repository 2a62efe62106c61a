package vocabulary

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordforge-backend/internal/service/generation"
)

var _ wordGenerator = &wordGeneratorMock{}

type wordGeneratorMock struct {
	WordsFunc func(ctx context.Context, count int) (generation.WordBatch, error)

	calls struct {
		Words []struct {
			Ctx   context.Context
			Count int
		}
	}
	lockWords sync.RWMutex
}

func (mock *wordGeneratorMock) Words(ctx context.Context, count int) (generation.WordBatch, error) {
	if mock.WordsFunc == nil {
		panic("wordGeneratorMock.WordsFunc: method is nil but wordGenerator.Words was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Count int
	}{Ctx: ctx, Count: count}
	mock.lockWords.Lock()
	mock.calls.Words = append(mock.calls.Words, callInfo)
	mock.lockWords.Unlock()
	return mock.WordsFunc(ctx, count)
}

func (mock *wordGeneratorMock) WordsCalls() []struct {
	Ctx   context.Context
	Count int
} {
	var calls []struct {
		Ctx   context.Context
		Count int
	}
	mock.lockWords.RLock()
	calls = mock.calls.Words
	mock.lockWords.RUnlock()
	return calls
}
