package mocks

import (
	"context"

	"labelprint/internal/label"
	"labelprint/internal/model"
	"labelprint/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockPrintService struct {
	mock.Mock
}

func (m *MockPrintService) PrintOrder(ctx context.Context, order label.Order, opts service.PrintOptions) (*model.PrintJob, error) {
	args := m.Called(ctx, order, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PrintJob), args.Error(1)
}

func (m *MockPrintService) PrintImage(ctx context.Context, image []byte, opts service.PrintOptions) (*model.PrintJob, error) {
	args := m.Called(ctx, image, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PrintJob), args.Error(1)
}

func (m *MockPrintService) List(ctx context.Context, limit, offset int) (*service.JobListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.JobListResult), args.Error(1)
}

func (m *MockPrintService) Get(ctx context.Context, id string) (*model.PrintJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PrintJob), args.Error(1)
}

func (m *MockPrintService) ArtifactURL(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
