package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstreturns/internal/domain"
	"gstreturns/internal/port"
)

// MockReturnRepo is a mock implementation of port.ReturnRepository.
type MockReturnRepo struct {
	mock.Mock
}

func (m *MockReturnRepo) Upsert(ctx context.Context, ret *domain.PeriodicReturn) error {
	args := m.Called(ctx, ret)
	return args.Error(0)
}

func (m *MockReturnRepo) GetByPeriod(ctx context.Context, businessID uuid.UUID, returnType domain.ReturnType, period string) (*domain.PeriodicReturn, error) {
	args := m.Called(ctx, businessID, returnType, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodicReturn), args.Error(1)
}

func (m *MockReturnRepo) ListByBusiness(ctx context.Context, businessID uuid.UUID, offset, limit int) ([]domain.PeriodicReturn, int, error) {
	args := m.Called(ctx, businessID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.PeriodicReturn), args.Int(1), args.Error(2)
}

func (m *MockReturnRepo) MarkFiled(ctx context.Context, input port.FileReturnInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}
