package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (domain.User, error)
	UpdateNameFunc          func(ctx context.Context, id uuid.UUID, name string) (domain.User, error)
	SetRoleByEmailFunc      func(ctx context.Context, email string, role domain.UserRole) error
	CountActiveLearnersFunc func(ctx context.Context) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateName []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Name string
		}
		SetRoleByEmail []struct {
			Ctx   context.Context
			Email string
			Role  domain.UserRole
		}
		CountActiveLearners []struct {
			Ctx context.Context
		}
	}
	lockGetByID             sync.RWMutex
	lockUpdateName          sync.RWMutex
	lockSetRoleByEmail      sync.RWMutex
	lockCountActiveLearners sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
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

func (mock *userRepoMock) GetByIDCalls() []struct {
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

func (mock *userRepoMock) UpdateName(ctx context.Context, id uuid.UUID, name string) (domain.User, error) {
	if mock.UpdateNameFunc == nil {
		panic("userRepoMock.UpdateNameFunc: method is nil but userRepo.UpdateName was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Name string
	}{Ctx: ctx, ID: id, Name: name}
	mock.lockUpdateName.Lock()
	mock.calls.UpdateName = append(mock.calls.UpdateName, callInfo)
	mock.lockUpdateName.Unlock()
	return mock.UpdateNameFunc(ctx, id, name)
}

func (mock *userRepoMock) UpdateNameCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Name string
} {
	var calls []struct {
		Ctx  context.Context
		ID   uuid.UUID
		Name string
	}
	mock.lockUpdateName.RLock()
	calls = mock.calls.UpdateName
	mock.lockUpdateName.RUnlock()
	return calls
}

func (mock *userRepoMock) SetRoleByEmail(ctx context.Context, email string, role domain.UserRole) error {
	if mock.SetRoleByEmailFunc == nil {
		panic("userRepoMock.SetRoleByEmailFunc: method is nil but userRepo.SetRoleByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
		Role  domain.UserRole
	}{Ctx: ctx, Email: email, Role: role}
	mock.lockSetRoleByEmail.Lock()
	mock.calls.SetRoleByEmail = append(mock.calls.SetRoleByEmail, callInfo)
	mock.lockSetRoleByEmail.Unlock()
	return mock.SetRoleByEmailFunc(ctx, email, role)
}

func (mock *userRepoMock) SetRoleByEmailCalls() []struct {
	Ctx   context.Context
	Email string
	Role  domain.UserRole
} {
	var calls []struct {
		Ctx   context.Context
		Email string
		Role  domain.UserRole
	}
	mock.lockSetRoleByEmail.RLock()
	calls = mock.calls.SetRoleByEmail
	mock.lockSetRoleByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) CountActiveLearners(ctx context.Context) (int, error) {
	if mock.CountActiveLearnersFunc == nil {
		panic("userRepoMock.CountActiveLearnersFunc: method is nil but userRepo.CountActiveLearners was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCountActiveLearners.Lock()
	mock.calls.CountActiveLearners = append(mock.calls.CountActiveLearners, callInfo)
	mock.lockCountActiveLearners.Unlock()
	return mock.CountActiveLearnersFunc(ctx)
}

func (mock *userRepoMock) CountActiveLearnersCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCountActiveLearners.RLock()
	calls = mock.calls.CountActiveLearners
	mock.lockCountActiveLearners.RUnlock()
	return calls
}
