package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordforge-backend/internal/service/progress"
)

var _ progressService = &progressServiceMock{}

type progressServiceMock struct {
	OverviewFunc func(ctx context.Context) (progress.Overview, error)

	calls struct {
		Overview []struct {
			Ctx context.Context
		}
	}
	lockOverview sync.RWMutex
}

func (mock *progressServiceMock) Overview(ctx context.Context) (progress.Overview, error) {
	if mock.OverviewFunc == nil {
		panic("progressServiceMock.OverviewFunc: method is nil but progressService.Overview was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockOverview.Lock()
	mock.calls.Overview = append(mock.calls.Overview, callInfo)
	mock.lockOverview.Unlock()
	return mock.OverviewFunc(ctx)
}

func (mock *progressServiceMock) OverviewCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockOverview.RLock()
	calls = mock.calls.Overview
	mock.lockOverview.RUnlock()
	return calls
}
