package blip

import (
	"context"
	"sync"

	"github.com/heartmarshall/latitune-backend/internal/domain"
)

var _ blipRepo = &blipRepoMock{}

type blipRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Blip, error)
	ListFunc    func(ctx context.Context) ([]domain.Blip, error)
	NearbyFunc  func(ctx context.Context, p domain.Point, limit int) ([]domain.NearbyBlip, error)
	CreateFunc  func(ctx context.Context, songID int64, userID int64, p domain.Point) (*domain.Blip, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		List    []struct {
			Ctx context.Context
		}
		Nearby  []struct {
			Ctx   context.Context
			P     domain.Point
			Limit int
		}
		Create  []struct {
			Ctx    context.Context
			SongID int64
			UserID int64
			P      domain.Point
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockNearby  sync.RWMutex
	lockCreate  sync.RWMutex
}

func (mock *blipRepoMock) GetByID(ctx context.Context, id int64) (*domain.Blip, error) {
	if mock.GetByIDFunc == nil {
		panic("blipRepoMock.GetByIDFunc: method is nil but blipRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *blipRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *blipRepoMock) List(ctx context.Context) ([]domain.Blip, error) {
	if mock.ListFunc == nil {
		panic("blipRepoMock.ListFunc: method is nil but blipRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *blipRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *blipRepoMock) Nearby(ctx context.Context, p domain.Point, limit int) ([]domain.NearbyBlip, error) {
	if mock.NearbyFunc == nil {
		panic("blipRepoMock.NearbyFunc: method is nil but blipRepo.Nearby was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		P     domain.Point
		Limit int
	}{Ctx: ctx, P: p, Limit: limit}
	mock.lockNearby.Lock()
	mock.calls.Nearby = append(mock.calls.Nearby, callInfo)
	mock.lockNearby.Unlock()
	return mock.NearbyFunc(ctx, p, limit)
}

func (mock *blipRepoMock) NearbyCalls() []struct {
	Ctx   context.Context
	P     domain.Point
	Limit int
} {
	mock.lockNearby.RLock()
	calls := mock.calls.Nearby
	mock.lockNearby.RUnlock()
	return calls
}

func (mock *blipRepoMock) Create(ctx context.Context, songID int64, userID int64, p domain.Point) (*domain.Blip, error) {
	if mock.CreateFunc == nil {
		panic("blipRepoMock.CreateFunc: method is nil but blipRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		SongID int64
		UserID int64
		P      domain.Point
	}{Ctx: ctx, SongID: songID, UserID: userID, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, songID, userID, p)
}

func (mock *blipRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	SongID int64
	UserID int64
	P      domain.Point
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
