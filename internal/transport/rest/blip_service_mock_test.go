package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/latitune-backend/internal/domain"
	"github.com/heartmarshall/latitune-backend/internal/service/blip"
)

var _ blipService = &blipServiceMock{}

type blipServiceMock struct {
	CreateFunc func(ctx context.Context, input blip.CreateInput) (*domain.Blip, error)
	GetFunc    func(ctx context.Context, id int64) (*domain.Blip, error)
	ListFunc   func(ctx context.Context) ([]domain.Blip, error)
	NearbyFunc func(ctx context.Context, p domain.Point) ([]domain.NearbyBlip, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input blip.CreateInput
		}
		Get    []struct {
			Ctx context.Context
			Id  int64
		}
		List   []struct {
			Ctx context.Context
		}
		Nearby []struct {
			Ctx context.Context
			P   domain.Point
		}
	}
	lockCreate sync.RWMutex
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
	lockNearby sync.RWMutex
}

func (mock *blipServiceMock) Create(ctx context.Context, input blip.CreateInput) (*domain.Blip, error) {
	if mock.CreateFunc == nil {
		panic("blipServiceMock.CreateFunc: method is nil but blipService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input blip.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *blipServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input blip.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *blipServiceMock) Get(ctx context.Context, id int64) (*domain.Blip, error) {
	if mock.GetFunc == nil {
		panic("blipServiceMock.GetFunc: method is nil but blipService.Get was just called")
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

func (mock *blipServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *blipServiceMock) List(ctx context.Context) ([]domain.Blip, error) {
	if mock.ListFunc == nil {
		panic("blipServiceMock.ListFunc: method is nil but blipService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *blipServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *blipServiceMock) Nearby(ctx context.Context, p domain.Point) ([]domain.NearbyBlip, error) {
	if mock.NearbyFunc == nil {
		panic("blipServiceMock.NearbyFunc: method is nil but blipService.Nearby was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Point
	}{Ctx: ctx, P: p}
	mock.lockNearby.Lock()
	mock.calls.Nearby = append(mock.calls.Nearby, callInfo)
	mock.lockNearby.Unlock()
	return mock.NearbyFunc(ctx, p)
}

func (mock *blipServiceMock) NearbyCalls() []struct {
	Ctx context.Context
	P   domain.Point
} {
	mock.lockNearby.RLock()
	calls := mock.calls.Nearby
	mock.lockNearby.RUnlock()
	return calls
}
