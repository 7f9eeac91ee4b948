package message

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mhladky/teamchat-backend/internal/domain"
)

var _ messageRepo = &messageRepoMock{}

type messageRepoMock struct {
	CreateFunc      func(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	GetByIDFunc     func(ctx context.Context, messageID uuid.UUID) (*domain.Message, error)
	ListByRoomFunc  func(ctx context.Context, roomID uuid.UUID, filter domain.MessageFilter) ([]*domain.Message, error)
	ListByTopicFunc func(ctx context.Context, topicID uuid.UUID) ([]*domain.Message, error)
	SearchFunc      func(ctx context.Context, roomID uuid.UUID, query string, limit int) ([]*domain.Message, error)

	calls struct {
		Create     []struct{ Msg *domain.Message }
		GetByID    []struct{ MessageID uuid.UUID }
		ListByRoom []struct {
			RoomID uuid.UUID
			Filter domain.MessageFilter
		}
		ListByTopic []struct{ TopicID uuid.UUID }
		Search      []struct {
			RoomID uuid.UUID
			Query  string
			Limit  int
		}
	}
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockListByRoom  sync.RWMutex
	lockListByTopic sync.RWMutex
	lockSearch      sync.RWMutex
}

func (mock *messageRepoMock) Create(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	if mock.CreateFunc == nil {
		panic("messageRepoMock.CreateFunc: method is nil but messageRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Msg *domain.Message }{Msg: msg})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, msg)
}

func (mock *messageRepoMock) CreateCalls() []struct{ Msg *domain.Message } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *messageRepoMock) GetByID(ctx context.Context, messageID uuid.UUID) (*domain.Message, error) {
	if mock.GetByIDFunc == nil {
		panic("messageRepoMock.GetByIDFunc: method is nil but messageRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ MessageID uuid.UUID }{MessageID: messageID})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, messageID)
}

func (mock *messageRepoMock) GetByIDCalls() []struct{ MessageID uuid.UUID } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *messageRepoMock) ListByRoom(ctx context.Context, roomID uuid.UUID, filter domain.MessageFilter) ([]*domain.Message, error) {
	if mock.ListByRoomFunc == nil {
		panic("messageRepoMock.ListByRoomFunc: method is nil but messageRepo.ListByRoom was just called")
	}
	callInfo := struct {
		RoomID uuid.UUID
		Filter domain.MessageFilter
	}{RoomID: roomID, Filter: filter}
	mock.lockListByRoom.Lock()
	mock.calls.ListByRoom = append(mock.calls.ListByRoom, callInfo)
	mock.lockListByRoom.Unlock()
	return mock.ListByRoomFunc(ctx, roomID, filter)
}

func (mock *messageRepoMock) ListByRoomCalls() []struct {
	RoomID uuid.UUID
	Filter domain.MessageFilter
} {
	mock.lockListByRoom.RLock()
	calls := mock.calls.ListByRoom
	mock.lockListByRoom.RUnlock()
	return calls
}

func (mock *messageRepoMock) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]*domain.Message, error) {
	if mock.ListByTopicFunc == nil {
		panic("messageRepoMock.ListByTopicFunc: method is nil but messageRepo.ListByTopic was just called")
	}
	mock.lockListByTopic.Lock()
	mock.calls.ListByTopic = append(mock.calls.ListByTopic, struct{ TopicID uuid.UUID }{TopicID: topicID})
	mock.lockListByTopic.Unlock()
	return mock.ListByTopicFunc(ctx, topicID)
}

func (mock *messageRepoMock) ListByTopicCalls() []struct{ TopicID uuid.UUID } {
	mock.lockListByTopic.RLock()
	calls := mock.calls.ListByTopic
	mock.lockListByTopic.RUnlock()
	return calls
}

func (mock *messageRepoMock) Search(ctx context.Context, roomID uuid.UUID, query string, limit int) ([]*domain.Message, error) {
	if mock.SearchFunc == nil {
		panic("messageRepoMock.SearchFunc: method is nil but messageRepo.Search was just called")
	}
	callInfo := struct {
		RoomID uuid.UUID
		Query  string
		Limit  int
	}{RoomID: roomID, Query: query, Limit: limit}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, roomID, query, limit)
}

func (mock *messageRepoMock) SearchCalls() []struct {
	RoomID uuid.UUID
	Query  string
	Limit  int
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	GetByIDFunc          func(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	GetByIDForUpdateFunc func(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)

	calls struct {
		GetByID          []struct{ TopicID uuid.UUID }
		GetByIDForUpdate []struct{ TopicID uuid.UUID }
	}
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
}

func (mock *topicRepoMock) GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if mock.GetByIDFunc == nil {
		panic("topicRepoMock.GetByIDFunc: method is nil but topicRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ TopicID uuid.UUID }{TopicID: topicID})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, topicID)
}

func (mock *topicRepoMock) GetByIDCalls() []struct{ TopicID uuid.UUID } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *topicRepoMock) GetByIDForUpdate(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("topicRepoMock.GetByIDForUpdateFunc: method is nil but topicRepo.GetByIDForUpdate was just called")
	}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, struct{ TopicID uuid.UUID }{TopicID: topicID})
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, topicID)
}

func (mock *topicRepoMock) GetByIDForUpdateCalls() []struct{ TopicID uuid.UUID } {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

var _ roomRepo = &roomRepoMock{}

type roomRepoMock struct {
	GetByIDFunc  func(ctx context.Context, roomID uuid.UUID) (*domain.Room, error)
	IsMemberFunc func(ctx context.Context, roomID, userID uuid.UUID) (bool, error)

	calls struct {
		GetByID  []struct{ RoomID uuid.UUID }
		IsMember []struct {
			RoomID uuid.UUID
			UserID uuid.UUID
		}
	}
	lockGetByID  sync.RWMutex
	lockIsMember sync.RWMutex
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

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
