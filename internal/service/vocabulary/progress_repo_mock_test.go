package vocabulary

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	RecordViewFunc func(ctx context.Context, userID uuid.UUID, wordID uuid.UUID, at time.Time) error

	calls struct {
		RecordView []struct {
			Ctx    context.Context
			UserID uuid.UUID
			WordID uuid.UUID
			At     time.Time
		}
	}
	lockRecordView sync.RWMutex
}

func (mock *progressRepoMock) RecordView(ctx context.Context, userID uuid.UUID, wordID uuid.UUID, at time.Time) error {
	if mock.RecordViewFunc == nil {
		panic("progressRepoMock.RecordViewFunc: method is nil but progressRepo.RecordView was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		WordID uuid.UUID
		At     time.Time
	}{Ctx: ctx, UserID: userID, WordID: wordID, At: at}
	mock.lockRecordView.Lock()
	mock.calls.RecordView = append(mock.calls.RecordView, callInfo)
	mock.lockRecordView.Unlock()
	return mock.RecordViewFunc(ctx, userID, wordID, at)
}

func (mock *progressRepoMock) RecordViewCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	WordID uuid.UUID
	At     time.Time
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		WordID uuid.UUID
		At     time.Time
	}
	mock.lockRecordView.RLock()
	calls = mock.calls.RecordView
	mock.lockRecordView.RUnlock()
	return calls
}
