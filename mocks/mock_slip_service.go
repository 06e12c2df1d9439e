package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mumcuarda/debit/internal/domain"
	"github.com/mumcuarda/debit/internal/service"
)

// MockSlipService is a mock implementation of service.SlipService.
type MockSlipService struct {
	mock.Mock
}

func (m *MockSlipService) Process(ctx context.Context, input service.ProcessInput) (*service.ProcessResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProcessResult), args.Error(1)
}

func (m *MockSlipService) Extract(ctx context.Context, input service.ExtractInput) (*domain.ParsedSlip, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParsedSlip), args.Error(1)
}
