package daily

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

var _ locker = &lockerMock{}

type lockerMock struct {
	DoFunc func(ctx context.Context, ct domain.ContentType, fn func(ctx context.Context) error) error

	calls struct {
		Do []struct {
			Ctx context.Context
			Ct  domain.ContentType
			Fn  func(ctx context.Context) error
		}
	}
	lockDo sync.RWMutex
}

func (mock *lockerMock) Do(ctx context.Context, ct domain.ContentType, fn func(ctx context.Context) error) error {
	if mock.DoFunc == nil {
		panic("lockerMock.DoFunc: method is nil but locker.Do was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ct  domain.ContentType
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Ct: ct, Fn: fn}
	mock.lockDo.Lock()
	mock.calls.Do = append(mock.calls.Do, callInfo)
	mock.lockDo.Unlock()
	return mock.DoFunc(ctx, ct, fn)
}

func (mock *lockerMock) DoCalls() []struct {
	Ctx context.Context
	Ct  domain.ContentType
	Fn  func(ctx context.Context) error
} {
	var calls []struct {
		Ctx context.Context
		Ct  domain.ContentType
		Fn  func(ctx context.Context) error
	}
	mock.lockDo.RLock()
	calls = mock.calls.Do
	mock.lockDo.RUnlock()
	return calls
}
