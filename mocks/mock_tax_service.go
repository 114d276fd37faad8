package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstreturns/internal/gst"
	"gstreturns/internal/port"
)

// MockTaxService is a mock implementation of service.TaxService.
type MockTaxService struct {
	mock.Mock
}

func (m *MockTaxService) CalculateItem(ctx context.Context, input gst.ItemInput) (*gst.TaxBreakdown, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gst.TaxBreakdown), args.Error(1)
}

func (m *MockTaxService) CalculateDocument(ctx context.Context, input gst.DocumentInput) (*gst.DocumentResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gst.DocumentResult), args.Error(1)
}

func (m *MockTaxService) CalculatePurchase(ctx context.Context, input gst.PurchaseInput) (*gst.PurchaseResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gst.PurchaseResult), args.Error(1)
}

func (m *MockTaxService) CheckPurchaseDuplicate(ctx context.Context, businessID, excludePurchaseID uuid.UUID,
	supplierGSTIN, invoiceNumber string) ([]port.DuplicateMatch, error) {
	args := m.Called(ctx, businessID, excludePurchaseID, supplierGSTIN, invoiceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]port.DuplicateMatch), args.Error(1)
}

func (m *MockTaxService) Rates() []float64 {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]float64)
}
