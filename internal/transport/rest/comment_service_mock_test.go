package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/latitune-backend/internal/domain"
	"github.com/heartmarshall/latitune-backend/internal/service/comment"
)

var _ commentService = &commentServiceMock{}

type commentServiceMock struct {
	CreateFunc     func(ctx context.Context, input comment.CreateInput) (*domain.Comment, error)
	GetFunc        func(ctx context.Context, id int64) (*domain.Comment, error)
	ListByBlipFunc func(ctx context.Context, blipID int64) ([]domain.Comment, error)

	calls struct {
		Create     []struct {
			Ctx   context.Context
			Input comment.CreateInput
		}
		Get        []struct {
			Ctx context.Context
			Id  int64
		}
		ListByBlip []struct {
			Ctx    context.Context
			BlipID int64
		}
	}
	lockCreate     sync.RWMutex
	lockGet        sync.RWMutex
	lockListByBlip sync.RWMutex
}

func (mock *commentServiceMock) Create(ctx context.Context, input comment.CreateInput) (*domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentServiceMock.CreateFunc: method is nil but commentService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input comment.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *commentServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input comment.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *commentServiceMock) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	if mock.GetFunc == nil {
		panic("commentServiceMock.GetFunc: method is nil but commentService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *commentServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *commentServiceMock) ListByBlip(ctx context.Context, blipID int64) ([]domain.Comment, error) {
	if mock.ListByBlipFunc == nil {
		panic("commentServiceMock.ListByBlipFunc: method is nil but commentService.ListByBlip was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		BlipID int64
	}{Ctx: ctx, BlipID: blipID}
	mock.lockListByBlip.Lock()
	mock.calls.ListByBlip = append(mock.calls.ListByBlip, callInfo)
	mock.lockListByBlip.Unlock()
	return mock.ListByBlipFunc(ctx, blipID)
}

func (mock *commentServiceMock) ListByBlipCalls() []struct {
	Ctx    context.Context
	BlipID int64
} {
	mock.lockListByBlip.RLock()
	calls := mock.calls.ListByBlip
	mock.lockListByBlip.RUnlock()
	return calls
}
