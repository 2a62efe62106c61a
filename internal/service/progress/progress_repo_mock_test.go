package progress

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	MarkLearnedFunc   func(ctx context.Context, userID uuid.UUID, wordID uuid.UUID, at time.Time) (domain.UserProgress, error)
	ListWithWordsFunc func(ctx context.Context, userID uuid.UUID) ([]domain.UserProgress, error)
	CountLearnedFunc  func(ctx context.Context, userID uuid.UUID) (int, error)
	AddReviewDayFunc  func(ctx context.Context, userID uuid.UUID, at time.Time) error
	ReviewDaysFunc    func(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)
	SaveStreakFunc    func(ctx context.Context, userID uuid.UUID, current int, lastActive time.Time) (domain.LearningStreak, error)
	AwardBadgeFunc    func(ctx context.Context, b *domain.Badge) (bool, error)

	calls struct {
		MarkLearned []struct {
			Ctx    context.Context
			UserID uuid.UUID
			WordID uuid.UUID
			At     time.Time
		}
		ListWithWords []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		CountLearned []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		AddReviewDay []struct {
			Ctx    context.Context
			UserID uuid.UUID
			At     time.Time
		}
		ReviewDays []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Since  time.Time
		}
		SaveStreak []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			Current    int
			LastActive time.Time
		}
		AwardBadge []struct {
			Ctx context.Context
			B   *domain.Badge
		}
	}
	lockMarkLearned   sync.RWMutex
	lockListWithWords sync.RWMutex
	lockCountLearned  sync.RWMutex
	lockAddReviewDay  sync.RWMutex
	lockReviewDays    sync.RWMutex
	lockSaveStreak    sync.RWMutex
	lockAwardBadge    sync.RWMutex
}

func (mock *progressRepoMock) MarkLearned(ctx context.Context, userID uuid.UUID, wordID uuid.UUID, at time.Time) (domain.UserProgress, error) {
	if mock.MarkLearnedFunc == nil {
		panic("progressRepoMock.MarkLearnedFunc: method is nil but progressRepo.MarkLearned was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		WordID uuid.UUID
		At     time.Time
	}{Ctx: ctx, UserID: userID, WordID: wordID, At: at}
	mock.lockMarkLearned.Lock()
	mock.calls.MarkLearned = append(mock.calls.MarkLearned, callInfo)
	mock.lockMarkLearned.Unlock()
	return mock.MarkLearnedFunc(ctx, userID, wordID, at)
}

func (mock *progressRepoMock) MarkLearnedCalls() []struct {
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
	mock.lockMarkLearned.RLock()
	calls = mock.calls.MarkLearned
	mock.lockMarkLearned.RUnlock()
	return calls
}

func (mock *progressRepoMock) ListWithWords(ctx context.Context, userID uuid.UUID) ([]domain.UserProgress, error) {
	if mock.ListWithWordsFunc == nil {
		panic("progressRepoMock.ListWithWordsFunc: method is nil but progressRepo.ListWithWords was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListWithWords.Lock()
	mock.calls.ListWithWords = append(mock.calls.ListWithWords, callInfo)
	mock.lockListWithWords.Unlock()
	return mock.ListWithWordsFunc(ctx, userID)
}

func (mock *progressRepoMock) ListWithWordsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockListWithWords.RLock()
	calls = mock.calls.ListWithWords
	mock.lockListWithWords.RUnlock()
	return calls
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

func (mock *progressRepoMock) AddReviewDay(ctx context.Context, userID uuid.UUID, at time.Time) error {
	if mock.AddReviewDayFunc == nil {
		panic("progressRepoMock.AddReviewDayFunc: method is nil but progressRepo.AddReviewDay was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		At     time.Time
	}{Ctx: ctx, UserID: userID, At: at}
	mock.lockAddReviewDay.Lock()
	mock.calls.AddReviewDay = append(mock.calls.AddReviewDay, callInfo)
	mock.lockAddReviewDay.Unlock()
	return mock.AddReviewDayFunc(ctx, userID, at)
}

func (mock *progressRepoMock) AddReviewDayCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	At     time.Time
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		At     time.Time
	}
	mock.lockAddReviewDay.RLock()
	calls = mock.calls.AddReviewDay
	mock.lockAddReviewDay.RUnlock()
	return calls
}

func (mock *progressRepoMock) ReviewDays(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	if mock.ReviewDaysFunc == nil {
		panic("progressRepoMock.ReviewDaysFunc: method is nil but progressRepo.ReviewDays was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Since  time.Time
	}{Ctx: ctx, UserID: userID, Since: since}
	mock.lockReviewDays.Lock()
	mock.calls.ReviewDays = append(mock.calls.ReviewDays, callInfo)
	mock.lockReviewDays.Unlock()
	return mock.ReviewDaysFunc(ctx, userID, since)
}

func (mock *progressRepoMock) ReviewDaysCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Since  time.Time
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Since  time.Time
	}
	mock.lockReviewDays.RLock()
	calls = mock.calls.ReviewDays
	mock.lockReviewDays.RUnlock()
	return calls
}

func (mock *progressRepoMock) SaveStreak(ctx context.Context, userID uuid.UUID, current int, lastActive time.Time) (domain.LearningStreak, error) {
	if mock.SaveStreakFunc == nil {
		panic("progressRepoMock.SaveStreakFunc: method is nil but progressRepo.SaveStreak was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		Current    int
		LastActive time.Time
	}{Ctx: ctx, UserID: userID, Current: current, LastActive: lastActive}
	mock.lockSaveStreak.Lock()
	mock.calls.SaveStreak = append(mock.calls.SaveStreak, callInfo)
	mock.lockSaveStreak.Unlock()
	return mock.SaveStreakFunc(ctx, userID, current, lastActive)
}

func (mock *progressRepoMock) SaveStreakCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	Current    int
	LastActive time.Time
} {
	var calls []struct {
		Ctx        context.Context
		UserID     uuid.UUID
		Current    int
		LastActive time.Time
	}
	mock.lockSaveStreak.RLock()
	calls = mock.calls.SaveStreak
	mock.lockSaveStreak.RUnlock()
	return calls
}

func (mock *progressRepoMock) AwardBadge(ctx context.Context, b *domain.Badge) (bool, error) {
	if mock.AwardBadgeFunc == nil {
		panic("progressRepoMock.AwardBadgeFunc: method is nil but progressRepo.AwardBadge was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   *domain.Badge
	}{Ctx: ctx, B: b}
	mock.lockAwardBadge.Lock()
	mock.calls.AwardBadge = append(mock.calls.AwardBadge, callInfo)
	mock.lockAwardBadge.Unlock()
	return mock.AwardBadgeFunc(ctx, b)
}

func (mock *progressRepoMock) AwardBadgeCalls() []struct {
	Ctx context.Context
	B   *domain.Badge
} {
	var calls []struct {
		Ctx context.Context
		B   *domain.Badge
	}
	mock.lockAwardBadge.RLock()
	calls = mock.calls.AwardBadge
	mock.lockAwardBadge.RUnlock()
	return calls
}
