package topic

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mhladky/teamchat-backend/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	CreateFunc           func(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	GetByIDFunc          func(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	GetByIDForUpdateFunc func(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	ListFunc             func(ctx context.Context, roomID uuid.UUID, status *domain.TopicStatus) ([]*domain.Topic, error)
	SetStatusFunc        func(ctx context.Context, topicID uuid.UUID, status domain.TopicStatus, closedAt *time.Time) (*domain.Topic, error)

	calls struct {
		Create           []struct{ Topic *domain.Topic }
		GetByID          []struct{ TopicID uuid.UUID }
		GetByIDForUpdate []struct{ TopicID uuid.UUID }
		List             []struct {
			RoomID uuid.UUID
			Status *domain.TopicStatus
		}
		SetStatus []struct {
			TopicID  uuid.UUID
			Status   domain.TopicStatus
			ClosedAt *time.Time
		}
	}
	lockCreate           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockList             sync.RWMutex
	lockSetStatus        sync.RWMutex
}

func (mock *topicRepoMock) Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	if mock.CreateFunc == nil {
		panic("topicRepoMock.CreateFunc: method is nil but topicRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Topic *domain.Topic }{Topic: topic})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, topic)
}

func (mock *topicRepoMock) CreateCalls() []struct{ Topic *domain.Topic } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *topicRepoMock) List(ctx context.Context, roomID uuid.UUID, status *domain.TopicStatus) ([]*domain.Topic, error) {
	if mock.ListFunc == nil {
		panic("topicRepoMock.ListFunc: method is nil but topicRepo.List was just called")
	}
	callInfo := struct {
		RoomID uuid.UUID
		Status *domain.TopicStatus
	}{RoomID: roomID, Status: status}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, roomID, status)
}

func (mock *topicRepoMock) ListCalls() []struct {
	RoomID uuid.UUID
	Status *domain.TopicStatus
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *topicRepoMock) SetStatus(ctx context.Context, topicID uuid.UUID, status domain.TopicStatus, closedAt *time.Time) (*domain.Topic, error) {
	if mock.SetStatusFunc == nil {
		panic("topicRepoMock.SetStatusFunc: method is nil but topicRepo.SetStatus was just called")
	}
	callInfo := struct {
		TopicID  uuid.UUID
		Status   domain.TopicStatus
		ClosedAt *time.Time
	}{TopicID: topicID, Status: status, ClosedAt: closedAt}
	mock.lockSetStatus.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lockSetStatus.Unlock()
	return mock.SetStatusFunc(ctx, topicID, status, closedAt)
}

func (mock *topicRepoMock) SetStatusCalls() []struct {
	TopicID  uuid.UUID
	Status   domain.TopicStatus
	ClosedAt *time.Time
} {
	mock.lockSetStatus.RLock()
	calls := mock.calls.SetStatus
	mock.lockSetStatus.RUnlock()
	return calls
}

var _ messageRepo = &messageRepoMock{}

type messageRepoMock struct {
	GetByIDFunc     func(ctx context.Context, messageID uuid.UUID) (*domain.Message, error)
	GetByIDsFunc    func(ctx context.Context, messageIDs []uuid.UUID) ([]*domain.Message, error)
	AssignTopicFunc func(ctx context.Context, messageIDs []uuid.UUID, topicID uuid.UUID) (int, error)
	ClearTopicFunc  func(ctx context.Context, messageID uuid.UUID) error

	calls struct {
		GetByID     []struct{ MessageID uuid.UUID }
		GetByIDs    []struct{ MessageIDs []uuid.UUID }
		AssignTopic []struct {
			MessageIDs []uuid.UUID
			TopicID    uuid.UUID
		}
		ClearTopic []struct{ MessageID uuid.UUID }
	}
	lockGetByID     sync.RWMutex
	lockGetByIDs    sync.RWMutex
	lockAssignTopic sync.RWMutex
	lockClearTopic  sync.RWMutex
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

func (mock *messageRepoMock) GetByIDs(ctx context.Context, messageIDs []uuid.UUID) ([]*domain.Message, error) {
	if mock.GetByIDsFunc == nil {
		panic("messageRepoMock.GetByIDsFunc: method is nil but messageRepo.GetByIDs was just called")
	}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, struct{ MessageIDs []uuid.UUID }{MessageIDs: messageIDs})
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, messageIDs)
}

func (mock *messageRepoMock) GetByIDsCalls() []struct{ MessageIDs []uuid.UUID } {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

func (mock *messageRepoMock) AssignTopic(ctx context.Context, messageIDs []uuid.UUID, topicID uuid.UUID) (int, error) {
	if mock.AssignTopicFunc == nil {
		panic("messageRepoMock.AssignTopicFunc: method is nil but messageRepo.AssignTopic was just called")
	}
	callInfo := struct {
		MessageIDs []uuid.UUID
		TopicID    uuid.UUID
	}{MessageIDs: messageIDs, TopicID: topicID}
	mock.lockAssignTopic.Lock()
	mock.calls.AssignTopic = append(mock.calls.AssignTopic, callInfo)
	mock.lockAssignTopic.Unlock()
	return mock.AssignTopicFunc(ctx, messageIDs, topicID)
}

func (mock *messageRepoMock) AssignTopicCalls() []struct {
	MessageIDs []uuid.UUID
	TopicID    uuid.UUID
} {
	mock.lockAssignTopic.RLock()
	calls := mock.calls.AssignTopic
	mock.lockAssignTopic.RUnlock()
	return calls
}

func (mock *messageRepoMock) ClearTopic(ctx context.Context, messageID uuid.UUID) error {
	if mock.ClearTopicFunc == nil {
		panic("messageRepoMock.ClearTopicFunc: method is nil but messageRepo.ClearTopic was just called")
	}
	mock.lockClearTopic.Lock()
	mock.calls.ClearTopic = append(mock.calls.ClearTopic, struct{ MessageID uuid.UUID }{MessageID: messageID})
	mock.lockClearTopic.Unlock()
	return mock.ClearTopicFunc(ctx, messageID)
}

func (mock *messageRepoMock) ClearTopicCalls() []struct{ MessageID uuid.UUID } {
	mock.lockClearTopic.RLock()
	calls := mock.calls.ClearTopic
	mock.lockClearTopic.RUnlock()
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
