package admin

import (
	"context"
	"sync"
)

var _ schemaResetter = &schemaResetterMock{}

type schemaResetterMock struct {
	ResetFunc func(ctx context.Context) error

	calls struct {
		Reset []struct {
			Ctx context.Context
		}
	}
	lockReset sync.RWMutex
}

func (mock *schemaResetterMock) Reset(ctx context.Context) error {
	if mock.ResetFunc == nil {
		panic("schemaResetterMock.ResetFunc: method is nil but schemaResetter.Reset was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockReset.Lock()
	mock.calls.Reset = append(mock.calls.Reset, callInfo)
	mock.lockReset.Unlock()
	return mock.ResetFunc(ctx)
}

func (mock *schemaResetterMock) ResetCalls() []struct {
	Ctx context.Context
} {
	mock.lockReset.RLock()
	calls := mock.calls.Reset
	mock.lockReset.RUnlock()
	return calls
}
