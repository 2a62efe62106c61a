package daily

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

var _ contentGenerator = &contentGeneratorMock{}

type contentGeneratorMock struct {
	QuoteFunc func(ctx context.Context) (domain.DailyQuote, error)
	FactFunc  func(ctx context.Context) (domain.Fact, error)

	calls struct {
		Quote []struct {
			Ctx context.Context
		}
		Fact []struct {
			Ctx context.Context
		}
	}
	lockQuote sync.RWMutex
	lockFact  sync.RWMutex
}

func (mock *contentGeneratorMock) Quote(ctx context.Context) (domain.DailyQuote, error) {
	if mock.QuoteFunc == nil {
		panic("contentGeneratorMock.QuoteFunc: method is nil but contentGenerator.Quote was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockQuote.Lock()
	mock.calls.Quote = append(mock.calls.Quote, callInfo)
	mock.lockQuote.Unlock()
	return mock.QuoteFunc(ctx)
}

func (mock *contentGeneratorMock) QuoteCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockQuote.RLock()
	calls = mock.calls.Quote
	mock.lockQuote.RUnlock()
	return calls
}

func (mock *contentGeneratorMock) Fact(ctx context.Context) (domain.Fact, error) {
	if mock.FactFunc == nil {
		panic("contentGeneratorMock.FactFunc: method is nil but contentGenerator.Fact was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockFact.Lock()
	mock.calls.Fact = append(mock.calls.Fact, callInfo)
	mock.lockFact.Unlock()
	return mock.FactFunc(ctx)
}

func (mock *contentGeneratorMock) FactCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockFact.RLock()
	calls = mock.calls.Fact
	mock.lockFact.RUnlock()
	return calls
}
