package favorite

import (
	"context"
	"sync"

	"github.com/heartmarshall/latitune-backend/internal/domain"
)

var _ blipRepo = &blipRepoMock{}

type blipRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Blip, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockGetByID sync.RWMutex
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
