package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mhladky/teamchat-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc        func(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByIDFunc       func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	TouchLastSeenFunc func(ctx context.Context, userID uuid.UUID) error

	calls struct {
		Create        []struct{ User *domain.User }
		GetByID       []struct{ UserID uuid.UUID }
		GetByUsername []struct{ Username string }
		TouchLastSeen []struct{ UserID uuid.UUID }
	}
	lockCreate        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockGetByUsername sync.RWMutex
	lockTouchLastSeen sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ User *domain.User }{User: u})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct{ User *domain.User } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ UserID uuid.UUID }{UserID: userID})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID)
}

func (mock *userRepoMock) GetByIDCalls() []struct{ UserID uuid.UUID } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, struct{ Username string }{Username: username})
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *userRepoMock) GetByUsernameCalls() []struct{ Username string } {
	mock.lockGetByUsername.RLock()
	calls := mock.calls.GetByUsername
	mock.lockGetByUsername.RUnlock()
	return calls
}

func (mock *userRepoMock) TouchLastSeen(ctx context.Context, userID uuid.UUID) error {
	if mock.TouchLastSeenFunc == nil {
		panic("userRepoMock.TouchLastSeenFunc: method is nil but userRepo.TouchLastSeen was just called")
	}
	mock.lockTouchLastSeen.Lock()
	mock.calls.TouchLastSeen = append(mock.calls.TouchLastSeen, struct{ UserID uuid.UUID }{UserID: userID})
	mock.lockTouchLastSeen.Unlock()
	return mock.TouchLastSeenFunc(ctx, userID)
}

func (mock *userRepoMock) TouchLastSeenCalls() []struct{ UserID uuid.UUID } {
	mock.lockTouchLastSeen.RLock()
	calls := mock.calls.TouchLastSeen
	mock.lockTouchLastSeen.RUnlock()
	return calls
}

var _ tokenGenerator = &tokenGeneratorMock{}

type tokenGeneratorMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID, username string) (string, error)

	calls struct {
		GenerateAccessToken []struct {
			UserID   uuid.UUID
			Username string
		}
	}
	lockGenerateAccessToken sync.RWMutex
}

func (mock *tokenGeneratorMock) GenerateAccessToken(userID uuid.UUID, username string) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("tokenGeneratorMock.GenerateAccessTokenFunc: method is nil but tokenGenerator.GenerateAccessToken was just called")
	}
	callInfo := struct {
		UserID   uuid.UUID
		Username string
	}{UserID: userID, Username: username}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(userID, username)
}

func (mock *tokenGeneratorMock) GenerateAccessTokenCalls() []struct {
	UserID   uuid.UUID
	Username string
} {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}
