package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstreturns/internal/domain"
	"gstreturns/internal/returns"
	"gstreturns/internal/service"
)

// MockReturnService is a mock implementation of service.ReturnService.
type MockReturnService struct {
	mock.Mock
}

func (m *MockReturnService) Generate(ctx context.Context, input service.GenerateReturnInput) (*domain.PeriodicReturn, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodicReturn), args.Error(1)
}

func (m *MockReturnService) Get(ctx context.Context, businessID uuid.UUID, returnType domain.ReturnType, period string) (*domain.PeriodicReturn, error) {
	args := m.Called(ctx, businessID, returnType, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodicReturn), args.Error(1)
}

func (m *MockReturnService) List(ctx context.Context, businessID uuid.UUID, offset, limit int) ([]domain.PeriodicReturn, int, error) {
	args := m.Called(ctx, businessID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.PeriodicReturn), args.Int(1), args.Error(2)
}

func (m *MockReturnService) MarkFiled(ctx context.Context, businessID uuid.UUID, returnType domain.ReturnType, period string) (*domain.PeriodicReturn, error) {
	args := m.Called(ctx, businessID, returnType, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodicReturn), args.Error(1)
}

func (m *MockReturnService) GSTR1(ctx context.Context, businessID uuid.UUID, period string) (*returns.GSTR1, error) {
	args := m.Called(ctx, businessID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*returns.GSTR1), args.Error(1)
}

func (m *MockReturnService) ArchiveURL(ctx context.Context, businessID uuid.UUID, returnType domain.ReturnType, period string) (string, error) {
	args := m.Called(ctx, businessID, returnType, period)
	return args.String(0), args.Error(1)
}
