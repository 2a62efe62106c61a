package quiz

import (
	"context"
	"sync"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	RecentTextsFunc func(ctx context.Context, difficulty *string, limit int) ([]string, error)

	calls struct {
		RecentTexts []struct {
			Ctx        context.Context
			Difficulty *string
			Limit      int
		}
	}
	lockRecentTexts sync.RWMutex
}

func (mock *wordRepoMock) RecentTexts(ctx context.Context, difficulty *string, limit int) ([]string, error) {
	if mock.RecentTextsFunc == nil {
		panic("wordRepoMock.RecentTextsFunc: method is nil but wordRepo.RecentTexts was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Difficulty *string
		Limit      int
	}{Ctx: ctx, Difficulty: difficulty, Limit: limit}
	mock.lockRecentTexts.Lock()
	mock.calls.RecentTexts = append(mock.calls.RecentTexts, callInfo)
	mock.lockRecentTexts.Unlock()
	return mock.RecentTextsFunc(ctx, difficulty, limit)
}

func (mock *wordRepoMock) RecentTextsCalls() []struct {
	Ctx        context.Context
	Difficulty *string
	Limit      int
} {
	var calls []struct {
		Ctx        context.Context
		Difficulty *string
		Limit      int
	}
	mock.lockRecentTexts.RLock()
	calls = mock.calls.RecentTexts
	mock.lockRecentTexts.RUnlock()
	return calls
}
