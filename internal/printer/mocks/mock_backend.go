package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Kind() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockBackend) IsAvailable(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockBackend) Submit(ctx context.Context, jobName string, stream []byte) (string, error) {
	args := m.Called(ctx, jobName, stream)
	return args.String(0), args.Error(1)
}
