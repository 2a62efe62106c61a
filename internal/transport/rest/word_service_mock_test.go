package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
	"github.com/heartmarshall/wordforge-backend/internal/service/vocabulary"
)

var _ wordService = &wordServiceMock{}

type wordServiceMock struct {
	ListFunc          func(ctx context.Context, in vocabulary.ListInput) (domain.WordPage, error)
	SearchFunc        func(ctx context.Context, q string) ([]domain.Word, error)
	GetFunc           func(ctx context.Context, id uuid.UUID) (domain.Word, error)
	WordOfTheDayFunc  func(ctx context.Context) (domain.Word, error)
	NextForWidgetFunc func(ctx context.Context, userID *uuid.UUID) (domain.Word, error)

	calls struct {
		List []struct {
			Ctx context.Context
			In  vocabulary.ListInput
		}
		Search []struct {
			Ctx context.Context
			Q   string
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		WordOfTheDay []struct {
			Ctx context.Context
		}
		NextForWidget []struct {
			Ctx    context.Context
			UserID *uuid.UUID
		}
	}
	lockList          sync.RWMutex
	lockSearch        sync.RWMutex
	lockGet           sync.RWMutex
	lockWordOfTheDay  sync.RWMutex
	lockNextForWidget sync.RWMutex
}

func (mock *wordServiceMock) List(ctx context.Context, in vocabulary.ListInput) (domain.WordPage, error) {
	if mock.ListFunc == nil {
		panic("wordServiceMock.ListFunc: method is nil but wordService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  vocabulary.ListInput
	}{Ctx: ctx, In: in}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, in)
}

func (mock *wordServiceMock) ListCalls() []struct {
	Ctx context.Context
	In  vocabulary.ListInput
} {
	var calls []struct {
		Ctx context.Context
		In  vocabulary.ListInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *wordServiceMock) Search(ctx context.Context, q string) ([]domain.Word, error) {
	if mock.SearchFunc == nil {
		panic("wordServiceMock.SearchFunc: method is nil but wordService.Search was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   string
	}{Ctx: ctx, Q: q}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, q)
}

func (mock *wordServiceMock) SearchCalls() []struct {
	Ctx context.Context
	Q   string
} {
	var calls []struct {
		Ctx context.Context
		Q   string
	}
	mock.lockSearch.RLock()
	calls = mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *wordServiceMock) Get(ctx context.Context, id uuid.UUID) (domain.Word, error) {
	if mock.GetFunc == nil {
		panic("wordServiceMock.GetFunc: method is nil but wordService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *wordServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *wordServiceMock) WordOfTheDay(ctx context.Context) (domain.Word, error) {
	if mock.WordOfTheDayFunc == nil {
		panic("wordServiceMock.WordOfTheDayFunc: method is nil but wordService.WordOfTheDay was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockWordOfTheDay.Lock()
	mock.calls.WordOfTheDay = append(mock.calls.WordOfTheDay, callInfo)
	mock.lockWordOfTheDay.Unlock()
	return mock.WordOfTheDayFunc(ctx)
}

func (mock *wordServiceMock) WordOfTheDayCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockWordOfTheDay.RLock()
	calls = mock.calls.WordOfTheDay
	mock.lockWordOfTheDay.RUnlock()
	return calls
}

func (mock *wordServiceMock) NextForWidget(ctx context.Context, userID *uuid.UUID) (domain.Word, error) {
	if mock.NextForWidgetFunc == nil {
		panic("wordServiceMock.NextForWidgetFunc: method is nil but wordService.NextForWidget was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID *uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockNextForWidget.Lock()
	mock.calls.NextForWidget = append(mock.calls.NextForWidget, callInfo)
	mock.lockNextForWidget.Unlock()
	return mock.NextForWidgetFunc(ctx, userID)
}

func (mock *wordServiceMock) NextForWidgetCalls() []struct {
	Ctx    context.Context
	UserID *uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID *uuid.UUID
	}
	mock.lockNextForWidget.RLock()
	calls = mock.calls.NextForWidget
	mock.lockNextForWidget.RUnlock()
	return calls
}
