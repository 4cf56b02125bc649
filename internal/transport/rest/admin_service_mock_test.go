package rest

import (
	"context"
	"sync"
)

var _ adminService = &adminServiceMock{}

type adminServiceMock struct {
	ResetSchemaFunc func(ctx context.Context) error

	calls struct {
		ResetSchema []struct {
			Ctx context.Context
		}
	}
	lockResetSchema sync.RWMutex
}

func (mock *adminServiceMock) ResetSchema(ctx context.Context) error {
	if mock.ResetSchemaFunc == nil {
		panic("adminServiceMock.ResetSchemaFunc: method is nil but adminService.ResetSchema was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockResetSchema.Lock()
	mock.calls.ResetSchema = append(mock.calls.ResetSchema, callInfo)
	mock.lockResetSchema.Unlock()
	return mock.ResetSchemaFunc(ctx)
}

func (mock *adminServiceMock) ResetSchemaCalls() []struct {
	Ctx context.Context
} {
	mock.lockResetSchema.RLock()
	calls := mock.calls.ResetSchema
	mock.lockResetSchema.RUnlock()
	return calls
}
