package mocks

import (
	"context"

	"labelprint/internal/model"
	"labelprint/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Create(ctx context.Context, job *model.PrintJob) (*model.PrintJob, error) {
	args := m.Called(ctx, job)
	if f, ok := args.Get(0).(func(context.Context, *model.PrintJob) *model.PrintJob); ok {
		return f(ctx, job), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PrintJob), args.Error(1)
}

func (m *MockJobRepository) FindByID(ctx context.Context, id string) (*model.PrintJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PrintJob), args.Error(1)
}

func (m *MockJobRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.PrintJob], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.PrintJob]), args.Error(1)
}
