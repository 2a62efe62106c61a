package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	CountLearnedFunc func(ctx context.Context, userID uuid.UUID) (int, error)
	GetStreakFunc    func(ctx context.Context, userID uuid.UUID) (domain.LearningStreak, error)
	CountBadgesFunc  func(ctx context.Context, userID uuid.UUID) (int, error)
	ListBadgesFunc   func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Badge, error)

	calls struct {
		CountLearned []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		GetStreak []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		CountBadges []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListBadges []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
	}
	lockCountLearned sync.RWMutex
	lockGetStreak    sync.RWMutex
	lockCountBadges  sync.RWMutex
	lockListBadges   sync.RWMutex
}

func (mock *progressRepoMock) CountLearned(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountLearnedFunc == nil {
		panic("progressRepoMock.CountLearnedFunc: method is nil but progressRepo.CountLearned was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountLearned.Lock()
	mock.calls.CountLearned = append(mock.calls.CountLearned, callInfo)
	mock.lockCountLearned.Unlock()
	return mock.CountLearnedFunc(ctx, userID)
}

func (mock *progressRepoMock) CountLearnedCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockCountLearned.RLock()
	calls = mock.calls.CountLearned
	mock.lockCountLearned.RUnlock()
	return calls
}

func (mock *progressRepoMock) GetStreak(ctx context.Context, userID uuid.UUID) (domain.LearningStreak, error) {
	if mock.GetStreakFunc == nil {
		panic("progressRepoMock.GetStreakFunc: method is nil but progressRepo.GetStreak was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetStreak.Lock()
	mock.calls.GetStreak = append(mock.calls.GetStreak, callInfo)
	mock.lockGetStreak.Unlock()
	return mock.GetStreakFunc(ctx, userID)
}

func (mock *progressRepoMock) GetStreakCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockGetStreak.RLock()
	calls = mock.calls.GetStreak
	mock.lockGetStreak.RUnlock()
	return calls
}

func (mock *progressRepoMock) CountBadges(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountBadgesFunc == nil {
		panic("progressRepoMock.CountBadgesFunc: method is nil but progressRepo.CountBadges was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountBadges.Lock()
	mock.calls.CountBadges = append(mock.calls.CountBadges, callInfo)
	mock.lockCountBadges.Unlock()
	return mock.CountBadgesFunc(ctx, userID)
}

func (mock *progressRepoMock) CountBadgesCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockCountBadges.RLock()
	calls = mock.calls.CountBadges
	mock.lockCountBadges.RUnlock()
	return calls
}

func (mock *progressRepoMock) ListBadges(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Badge, error) {
	if mock.ListBadgesFunc == nil {
		panic("progressRepoMock.ListBadgesFunc: method is nil but progressRepo.ListBadges was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockListBadges.Lock()
	mock.calls.ListBadges = append(mock.calls.ListBadges, callInfo)
	mock.lockListBadges.Unlock()
	return mock.ListBadgesFunc(ctx, userID, limit)
}

func (mock *progressRepoMock) ListBadgesCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}
	mock.lockListBadges.RLock()
	calls = mock.calls.ListBadges
	mock.lockListBadges.RUnlock()
	return calls
}
