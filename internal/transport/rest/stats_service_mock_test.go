package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

var _ statsService = &statsServiceMock{}

type statsServiceMock struct {
	AdminStatsFunc func(ctx context.Context) (domain.AdminStats, error)

	calls struct {
		AdminStats []struct {
			Ctx context.Context
		}
	}
	lockAdminStats sync.RWMutex
}

func (mock *statsServiceMock) AdminStats(ctx context.Context) (domain.AdminStats, error) {
	if mock.AdminStatsFunc == nil {
		panic("statsServiceMock.AdminStatsFunc: method is nil but statsService.AdminStats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockAdminStats.Lock()
	mock.calls.AdminStats = append(mock.calls.AdminStats, callInfo)
	mock.lockAdminStats.Unlock()
	return mock.AdminStatsFunc(ctx)
}

func (mock *statsServiceMock) AdminStatsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockAdminStats.RLock()
	calls = mock.calls.AdminStats
	mock.lockAdminStats.RUnlock()
	return calls
}
