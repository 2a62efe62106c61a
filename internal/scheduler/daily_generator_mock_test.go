package scheduler

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

var _ dailyGenerator = &dailyGeneratorMock{}

type dailyGeneratorMock struct {
	GenerateQuoteFunc func(ctx context.Context) (domain.DailyQuote, error)
	GenerateFactFunc  func(ctx context.Context) (domain.Fact, error)

	calls struct {
		GenerateQuote []struct {
			Ctx context.Context
		}
		GenerateFact []struct {
			Ctx context.Context
		}
	}
	lockGenerateQuote sync.RWMutex
	lockGenerateFact  sync.RWMutex
}

func (mock *dailyGeneratorMock) GenerateQuote(ctx context.Context) (domain.DailyQuote, error) {
	if mock.GenerateQuoteFunc == nil {
		panic("dailyGeneratorMock.GenerateQuoteFunc: method is nil but dailyGenerator.GenerateQuote was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGenerateQuote.Lock()
	mock.calls.GenerateQuote = append(mock.calls.GenerateQuote, callInfo)
	mock.lockGenerateQuote.Unlock()
	return mock.GenerateQuoteFunc(ctx)
}

func (mock *dailyGeneratorMock) GenerateQuoteCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGenerateQuote.RLock()
	calls = mock.calls.GenerateQuote
	mock.lockGenerateQuote.RUnlock()
	return calls
}

func (mock *dailyGeneratorMock) GenerateFact(ctx context.Context) (domain.Fact, error) {
	if mock.GenerateFactFunc == nil {
		panic("dailyGeneratorMock.GenerateFactFunc: method is nil but dailyGenerator.GenerateFact was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGenerateFact.Lock()
	mock.calls.GenerateFact = append(mock.calls.GenerateFact, callInfo)
	mock.lockGenerateFact.Unlock()
	return mock.GenerateFactFunc(ctx)
}

func (mock *dailyGeneratorMock) GenerateFactCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGenerateFact.RLock()
	calls = mock.calls.GenerateFact
	mock.lockGenerateFact.RUnlock()
	return calls
}
