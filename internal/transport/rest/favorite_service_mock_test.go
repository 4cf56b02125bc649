package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/latitune-backend/internal/domain"
)

var _ favoriteService = &favoriteServiceMock{}

type favoriteServiceMock struct {
	CreateFunc      func(ctx context.Context, userID int64, blipID int64) (*domain.Favorite, error)
	DeleteFunc      func(ctx context.Context, userID int64, blipID int64) error
	UsersByBlipFunc func(ctx context.Context, blipID int64) ([]domain.User, error)
	BlipsByUserFunc func(ctx context.Context, userID int64) ([]domain.Blip, error)

	calls struct {
		Create      []struct {
			Ctx    context.Context
			UserID int64
			BlipID int64
		}
		Delete      []struct {
			Ctx    context.Context
			UserID int64
			BlipID int64
		}
		UsersByBlip []struct {
			Ctx    context.Context
			BlipID int64
		}
		BlipsByUser []struct {
			Ctx    context.Context
			UserID int64
		}
	}
	lockCreate      sync.RWMutex
	lockDelete      sync.RWMutex
	lockUsersByBlip sync.RWMutex
	lockBlipsByUser sync.RWMutex
}

func (mock *favoriteServiceMock) Create(ctx context.Context, userID int64, blipID int64) (*domain.Favorite, error) {
	if mock.CreateFunc == nil {
		panic("favoriteServiceMock.CreateFunc: method is nil but favoriteService.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
		BlipID int64
	}{Ctx: ctx, UserID: userID, BlipID: blipID}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, blipID)
}

func (mock *favoriteServiceMock) CreateCalls() []struct {
	Ctx    context.Context
	UserID int64
	BlipID int64
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *favoriteServiceMock) Delete(ctx context.Context, userID int64, blipID int64) error {
	if mock.DeleteFunc == nil {
		panic("favoriteServiceMock.DeleteFunc: method is nil but favoriteService.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
		BlipID int64
	}{Ctx: ctx, UserID: userID, BlipID: blipID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, blipID)
}

func (mock *favoriteServiceMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID int64
	BlipID int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *favoriteServiceMock) UsersByBlip(ctx context.Context, blipID int64) ([]domain.User, error) {
	if mock.UsersByBlipFunc == nil {
		panic("favoriteServiceMock.UsersByBlipFunc: method is nil but favoriteService.UsersByBlip was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		BlipID int64
	}{Ctx: ctx, BlipID: blipID}
	mock.lockUsersByBlip.Lock()
	mock.calls.UsersByBlip = append(mock.calls.UsersByBlip, callInfo)
	mock.lockUsersByBlip.Unlock()
	return mock.UsersByBlipFunc(ctx, blipID)
}

func (mock *favoriteServiceMock) UsersByBlipCalls() []struct {
	Ctx    context.Context
	BlipID int64
} {
	mock.lockUsersByBlip.RLock()
	calls := mock.calls.UsersByBlip
	mock.lockUsersByBlip.RUnlock()
	return calls
}

func (mock *favoriteServiceMock) BlipsByUser(ctx context.Context, userID int64) ([]domain.Blip, error) {
	if mock.BlipsByUserFunc == nil {
		panic("favoriteServiceMock.BlipsByUserFunc: method is nil but favoriteService.BlipsByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockBlipsByUser.Lock()
	mock.calls.BlipsByUser = append(mock.calls.BlipsByUser, callInfo)
	mock.lockBlipsByUser.Unlock()
	return mock.BlipsByUserFunc(ctx, userID)
}

func (mock *favoriteServiceMock) BlipsByUserCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockBlipsByUser.RLock()
	calls := mock.calls.BlipsByUser
	mock.lockBlipsByUser.RUnlock()
	return calls
}
