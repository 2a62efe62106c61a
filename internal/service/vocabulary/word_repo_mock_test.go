package vocabulary

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	ExistsByTextFunc     func(ctx context.Context, text string) (bool, error)
	CreateFunc           func(ctx context.Context, w *domain.Word) error
	MarkWordOfTheDayFunc func(ctx context.Context, id uuid.UUID, day time.Time) error
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (domain.Word, error)
	GetWordOfTheDayFunc  func(ctx context.Context, day time.Time) (domain.Word, error)
	ListFunc             func(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error)
	SearchFunc           func(ctx context.Context, term string, limit int) ([]domain.Word, error)
	NextUnseenFunc       func(ctx context.Context, userID *uuid.UUID) (domain.Word, error)

	calls struct {
		ExistsByText []struct {
			Ctx  context.Context
			Text string
		}
		Create []struct {
			Ctx context.Context
			W   *domain.Word
		}
		MarkWordOfTheDay []struct {
			Ctx context.Context
			ID  uuid.UUID
			Day time.Time
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetWordOfTheDay []struct {
			Ctx context.Context
			Day time.Time
		}
		List []struct {
			Ctx    context.Context
			Filter domain.WordFilter
		}
		Search []struct {
			Ctx   context.Context
			Term  string
			Limit int
		}
		NextUnseen []struct {
			Ctx    context.Context
			UserID *uuid.UUID
		}
	}
	lockExistsByText     sync.RWMutex
	lockCreate           sync.RWMutex
	lockMarkWordOfTheDay sync.RWMutex
	lockGetByID          sync.RWMutex
	lockGetWordOfTheDay  sync.RWMutex
	lockList             sync.RWMutex
	lockSearch           sync.RWMutex
	lockNextUnseen       sync.RWMutex
}

func (mock *wordRepoMock) ExistsByText(ctx context.Context, text string) (bool, error) {
	if mock.ExistsByTextFunc == nil {
		panic("wordRepoMock.ExistsByTextFunc: method is nil but wordRepo.ExistsByText was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{Ctx: ctx, Text: text}
	mock.lockExistsByText.Lock()
	mock.calls.ExistsByText = append(mock.calls.ExistsByText, callInfo)
	mock.lockExistsByText.Unlock()
	return mock.ExistsByTextFunc(ctx, text)
}

func (mock *wordRepoMock) ExistsByTextCalls() []struct {
	Ctx  context.Context
	Text string
} {
	var calls []struct {
		Ctx  context.Context
		Text string
	}
	mock.lockExistsByText.RLock()
	calls = mock.calls.ExistsByText
	mock.lockExistsByText.RUnlock()
	return calls
}

func (mock *wordRepoMock) Create(ctx context.Context, w *domain.Word) error {
	if mock.CreateFunc == nil {
		panic("wordRepoMock.CreateFunc: method is nil but wordRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   *domain.Word
	}{Ctx: ctx, W: w}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, w)
}

func (mock *wordRepoMock) CreateCalls() []struct {
	Ctx context.Context
	W   *domain.Word
} {
	var calls []struct {
		Ctx context.Context
		W   *domain.Word
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *wordRepoMock) MarkWordOfTheDay(ctx context.Context, id uuid.UUID, day time.Time) error {
	if mock.MarkWordOfTheDayFunc == nil {
		panic("wordRepoMock.MarkWordOfTheDayFunc: method is nil but wordRepo.MarkWordOfTheDay was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		Day time.Time
	}{Ctx: ctx, ID: id, Day: day}
	mock.lockMarkWordOfTheDay.Lock()
	mock.calls.MarkWordOfTheDay = append(mock.calls.MarkWordOfTheDay, callInfo)
	mock.lockMarkWordOfTheDay.Unlock()
	return mock.MarkWordOfTheDayFunc(ctx, id, day)
}

func (mock *wordRepoMock) MarkWordOfTheDayCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	Day time.Time
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
		Day time.Time
	}
	mock.lockMarkWordOfTheDay.RLock()
	calls = mock.calls.MarkWordOfTheDay
	mock.lockMarkWordOfTheDay.RUnlock()
	return calls
}

func (mock *wordRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Word, error) {
	if mock.GetByIDFunc == nil {
		panic("wordRepoMock.GetByIDFunc: method is nil but wordRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *wordRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *wordRepoMock) GetWordOfTheDay(ctx context.Context, day time.Time) (domain.Word, error) {
	if mock.GetWordOfTheDayFunc == nil {
		panic("wordRepoMock.GetWordOfTheDayFunc: method is nil but wordRepo.GetWordOfTheDay was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Day time.Time
	}{Ctx: ctx, Day: day}
	mock.lockGetWordOfTheDay.Lock()
	mock.calls.GetWordOfTheDay = append(mock.calls.GetWordOfTheDay, callInfo)
	mock.lockGetWordOfTheDay.Unlock()
	return mock.GetWordOfTheDayFunc(ctx, day)
}

func (mock *wordRepoMock) GetWordOfTheDayCalls() []struct {
	Ctx context.Context
	Day time.Time
} {
	var calls []struct {
		Ctx context.Context
		Day time.Time
	}
	mock.lockGetWordOfTheDay.RLock()
	calls = mock.calls.GetWordOfTheDay
	mock.lockGetWordOfTheDay.RUnlock()
	return calls
}

func (mock *wordRepoMock) List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error) {
	if mock.ListFunc == nil {
		panic("wordRepoMock.ListFunc: method is nil but wordRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.WordFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *wordRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.WordFilter
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.WordFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *wordRepoMock) Search(ctx context.Context, term string, limit int) ([]domain.Word, error) {
	if mock.SearchFunc == nil {
		panic("wordRepoMock.SearchFunc: method is nil but wordRepo.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Term  string
		Limit int
	}{Ctx: ctx, Term: term, Limit: limit}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, term, limit)
}

func (mock *wordRepoMock) SearchCalls() []struct {
	Ctx   context.Context
	Term  string
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		Term  string
		Limit int
	}
	mock.lockSearch.RLock()
	calls = mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *wordRepoMock) NextUnseen(ctx context.Context, userID *uuid.UUID) (domain.Word, error) {
	if mock.NextUnseenFunc == nil {
		panic("wordRepoMock.NextUnseenFunc: method is nil but wordRepo.NextUnseen was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID *uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockNextUnseen.Lock()
	mock.calls.NextUnseen = append(mock.calls.NextUnseen, callInfo)
	mock.lockNextUnseen.Unlock()
	return mock.NextUnseenFunc(ctx, userID)
}

func (mock *wordRepoMock) NextUnseenCalls() []struct {
	Ctx    context.Context
	UserID *uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID *uuid.UUID
	}
	mock.lockNextUnseen.RLock()
	calls = mock.calls.NextUnseen
	mock.lockNextUnseen.RUnlock()
	return calls
}
