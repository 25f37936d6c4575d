package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// MockManager stands in for the transaction manager. With Return(nil) it
// runs the wrapped function directly; a non-nil Return short-circuits it.
type MockManager struct {
	mock.Mock
}

func (m *MockManager) Do(ctx context.Context, fn func(context.Context) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}
