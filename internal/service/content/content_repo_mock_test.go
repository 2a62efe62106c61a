package content

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

var _ contentRepo = &contentRepoMock{}

type contentRepoMock struct {
	CreateStoryFunc    func(ctx context.Context, s *domain.Story) error
	ListStoriesFunc    func(ctx context.Context, limit int) ([]domain.Story, error)
	CreateLessonFunc   func(ctx context.Context, l *domain.GrammarLesson) error
	GetLessonFunc      func(ctx context.Context, id uuid.UUID) (domain.GrammarLesson, error)
	GetGuideByWordFunc func(ctx context.Context, word string) (domain.PronunciationGuide, error)
	CreateGuideFunc    func(ctx context.Context, g *domain.PronunciationGuide) error

	calls struct {
		CreateStory []struct {
			Ctx context.Context
			S   *domain.Story
		}
		ListStories []struct {
			Ctx   context.Context
			Limit int
		}
		CreateLesson []struct {
			Ctx context.Context
			L   *domain.GrammarLesson
		}
		GetLesson []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetGuideByWord []struct {
			Ctx  context.Context
			Word string
		}
		CreateGuide []struct {
			Ctx context.Context
			G   *domain.PronunciationGuide
		}
	}
	lockCreateStory    sync.RWMutex
	lockListStories    sync.RWMutex
	lockCreateLesson   sync.RWMutex
	lockGetLesson      sync.RWMutex
	lockGetGuideByWord sync.RWMutex
	lockCreateGuide    sync.RWMutex
}

func (mock *contentRepoMock) CreateStory(ctx context.Context, s *domain.Story) error {
	if mock.CreateStoryFunc == nil {
		panic("contentRepoMock.CreateStoryFunc: method is nil but contentRepo.CreateStory was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Story
	}{Ctx: ctx, S: s}
	mock.lockCreateStory.Lock()
	mock.calls.CreateStory = append(mock.calls.CreateStory, callInfo)
	mock.lockCreateStory.Unlock()
	return mock.CreateStoryFunc(ctx, s)
}

func (mock *contentRepoMock) CreateStoryCalls() []struct {
	Ctx context.Context
	S   *domain.Story
} {
	var calls []struct {
		Ctx context.Context
		S   *domain.Story
	}
	mock.lockCreateStory.RLock()
	calls = mock.calls.CreateStory
	mock.lockCreateStory.RUnlock()
	return calls
}

func (mock *contentRepoMock) ListStories(ctx context.Context, limit int) ([]domain.Story, error) {
	if mock.ListStoriesFunc == nil {
		panic("contentRepoMock.ListStoriesFunc: method is nil but contentRepo.ListStories was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListStories.Lock()
	mock.calls.ListStories = append(mock.calls.ListStories, callInfo)
	mock.lockListStories.Unlock()
	return mock.ListStoriesFunc(ctx, limit)
}

func (mock *contentRepoMock) ListStoriesCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		Limit int
	}
	mock.lockListStories.RLock()
	calls = mock.calls.ListStories
	mock.lockListStories.RUnlock()
	return calls
}

func (mock *contentRepoMock) CreateLesson(ctx context.Context, l *domain.GrammarLesson) error {
	if mock.CreateLessonFunc == nil {
		panic("contentRepoMock.CreateLessonFunc: method is nil but contentRepo.CreateLesson was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.GrammarLesson
	}{Ctx: ctx, L: l}
	mock.lockCreateLesson.Lock()
	mock.calls.CreateLesson = append(mock.calls.CreateLesson, callInfo)
	mock.lockCreateLesson.Unlock()
	return mock.CreateLessonFunc(ctx, l)
}

func (mock *contentRepoMock) CreateLessonCalls() []struct {
	Ctx context.Context
	L   *domain.GrammarLesson
} {
	var calls []struct {
		Ctx context.Context
		L   *domain.GrammarLesson
	}
	mock.lockCreateLesson.RLock()
	calls = mock.calls.CreateLesson
	mock.lockCreateLesson.RUnlock()
	return calls
}

func (mock *contentRepoMock) GetLesson(ctx context.Context, id uuid.UUID) (domain.GrammarLesson, error) {
	if mock.GetLessonFunc == nil {
		panic("contentRepoMock.GetLessonFunc: method is nil but contentRepo.GetLesson was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetLesson.Lock()
	mock.calls.GetLesson = append(mock.calls.GetLesson, callInfo)
	mock.lockGetLesson.Unlock()
	return mock.GetLessonFunc(ctx, id)
}

func (mock *contentRepoMock) GetLessonCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetLesson.RLock()
	calls = mock.calls.GetLesson
	mock.lockGetLesson.RUnlock()
	return calls
}

func (mock *contentRepoMock) GetGuideByWord(ctx context.Context, word string) (domain.PronunciationGuide, error) {
	if mock.GetGuideByWordFunc == nil {
		panic("contentRepoMock.GetGuideByWordFunc: method is nil but contentRepo.GetGuideByWord was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word}
	mock.lockGetGuideByWord.Lock()
	mock.calls.GetGuideByWord = append(mock.calls.GetGuideByWord, callInfo)
	mock.lockGetGuideByWord.Unlock()
	return mock.GetGuideByWordFunc(ctx, word)
}

func (mock *contentRepoMock) GetGuideByWordCalls() []struct {
	Ctx  context.Context
	Word string
} {
	var calls []struct {
		Ctx  context.Context
		Word string
	}
	mock.lockGetGuideByWord.RLock()
	calls = mock.calls.GetGuideByWord
	mock.lockGetGuideByWord.RUnlock()
	return calls
}

func (mock *contentRepoMock) CreateGuide(ctx context.Context, g *domain.PronunciationGuide) error {
	if mock.CreateGuideFunc == nil {
		panic("contentRepoMock.CreateGuideFunc: method is nil but contentRepo.CreateGuide was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   *domain.PronunciationGuide
	}{Ctx: ctx, G: g}
	mock.lockCreateGuide.Lock()
	mock.calls.CreateGuide = append(mock.calls.CreateGuide, callInfo)
	mock.lockCreateGuide.Unlock()
	return mock.CreateGuideFunc(ctx, g)
}

func (mock *contentRepoMock) CreateGuideCalls() []struct {
	Ctx context.Context
	G   *domain.PronunciationGuide
} {
	var calls []struct {
		Ctx context.Context
		G   *domain.PronunciationGuide
	}
	mock.lockCreateGuide.RLock()
	calls = mock.calls.CreateGuide
	mock.lockCreateGuide.RUnlock()
	return calls
}
