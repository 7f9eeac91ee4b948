package room

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mhladky/teamchat-backend/internal/domain"
)

var _ roomRepo = &roomRepoMock{}

type roomRepoMock struct {
	CreateFunc         func(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByIDFunc        func(ctx context.Context, roomID uuid.UUID) (*domain.Room, error)
	GetByDirectKeyFunc func(ctx context.Context, key string) (*domain.Room, error)
	ListForUserFunc    func(ctx context.Context, userID uuid.UUID) ([]*domain.Room, error)
	AddMemberFunc      func(ctx context.Context, roomID, userID uuid.UUID) error
	IsMemberFunc       func(ctx context.Context, roomID, userID uuid.UUID) (bool, error)

	calls struct {
		Create         []struct{ Room *domain.Room }
		GetByID        []struct{ RoomID uuid.UUID }
		GetByDirectKey []struct{ Key string }
		ListForUser    []struct{ UserID uuid.UUID }
		AddMember      []struct {
			RoomID uuid.UUID
			UserID uuid.UUID
		}
		IsMember []struct {
			RoomID uuid.UUID
			UserID uuid.UUID
		}
	}
	lockCreate         sync.RWMutex
	lockGetByID        sync.RWMutex
	lockGetByDirectKey sync.RWMutex
	lockListForUser    sync.RWMutex
	lockAddMember      sync.RWMutex
	lockIsMember       sync.RWMutex
}

func (mock *roomRepoMock) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	if mock.CreateFunc == nil {
		panic("roomRepoMock.CreateFunc: method is nil but roomRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Room *domain.Room }{Room: room})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, room)
}

func (mock *roomRepoMock) CreateCalls() []struct{ Room *domain.Room } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *roomRepoMock) GetByID(ctx context.Context, roomID uuid.UUID) (*domain.Room, error) {
	if mock.GetByIDFunc == nil {
		panic("roomRepoMock.GetByIDFunc: method is nil but roomRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ RoomID uuid.UUID }{RoomID: roomID})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, roomID)
}

func (mock *roomRepoMock) GetByIDCalls() []struct{ RoomID uuid.UUID } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *roomRepoMock) GetByDirectKey(ctx context.Context, key string) (*domain.Room, error) {
	if mock.GetByDirectKeyFunc == nil {
		panic("roomRepoMock.GetByDirectKeyFunc: method is nil but roomRepo.GetByDirectKey was just called")
	}
	mock.lockGetByDirectKey.Lock()
	mock.calls.GetByDirectKey = append(mock.calls.GetByDirectKey, struct{ Key string }{Key: key})
	mock.lockGetByDirectKey.Unlock()
	return mock.GetByDirectKeyFunc(ctx, key)
}

func (mock *roomRepoMock) GetByDirectKeyCalls() []struct{ Key string } {
	mock.lockGetByDirectKey.RLock()
	calls := mock.calls.GetByDirectKey
	mock.lockGetByDirectKey.RUnlock()
	return calls
}

func (mock *roomRepoMock) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Room, error) {
	if mock.ListForUserFunc == nil {
		panic("roomRepoMock.ListForUserFunc: method is nil but roomRepo.ListForUser was just called")
	}
	mock.lockListForUser.Lock()
	mock.calls.ListForUser = append(mock.calls.ListForUser, struct{ UserID uuid.UUID }{UserID: userID})
	mock.lockListForUser.Unlock()
	return mock.ListForUserFunc(ctx, userID)
}

func (mock *roomRepoMock) ListForUserCalls() []struct{ UserID uuid.UUID } {
	mock.lockListForUser.RLock()
	calls := mock.calls.ListForUser
	mock.lockListForUser.RUnlock()
	return calls
}

func (mock *roomRepoMock) AddMember(ctx context.Context, roomID, userID uuid.UUID) error {
	if mock.AddMemberFunc == nil {
		panic("roomRepoMock.AddMemberFunc: method is nil but roomRepo.AddMember was just called")
	}
	callInfo := struct {
		RoomID uuid.UUID
		UserID uuid.UUID
	}{RoomID: roomID, UserID: userID}
	mock.lockAddMember.Lock()
	mock.calls.AddMember = append(mock.calls.AddMember, callInfo)
	mock.lockAddMember.Unlock()
	return mock.AddMemberFunc(ctx, roomID, userID)
}

func (mock *roomRepoMock) AddMemberCalls() []struct {
	RoomID uuid.UUID
	UserID uuid.UUID
} {
	mock.lockAddMember.RLock()
	calls := mock.calls.AddMember
	mock.lockAddMember.RUnlock()
	return calls
}

func (mock *roomRepoMock) IsMember(ctx context.Context, roomID, userID uuid.UUID) (bool, error) {
	if mock.IsMemberFunc == nil {
		panic("roomRepoMock.IsMemberFunc: method is nil but roomRepo.IsMember was just called")
	}
	callInfo := struct {
		RoomID uuid.UUID
		UserID uuid.UUID
	}{RoomID: roomID, UserID: userID}
	mock.lockIsMember.Lock()
	mock.calls.IsMember = append(mock.calls.IsMember, callInfo)
	mock.lockIsMember.Unlock()
	return mock.IsMemberFunc(ctx, roomID, userID)
}

func (mock *roomRepoMock) IsMemberCalls() []struct {
	RoomID uuid.UUID
	UserID uuid.UUID
} {
	mock.lockIsMember.RLock()
	calls := mock.calls.IsMember
	mock.lockIsMember.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct{ UserID uuid.UUID }
	}
	lockGetByID sync.RWMutex
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

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{ Ctx context.Context }
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{ Ctx context.Context } {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
