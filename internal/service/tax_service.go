package service

import (
	"context"

	"github.com/google/uuid"

	"gstreturns/internal/domain"
	"gstreturns/internal/gst"
	"gstreturns/internal/port"
)

// TaxService exposes the stateless GST calculations to the HTTP layer.
type TaxService interface {
	CalculateItem(ctx context.Context, input gst.ItemInput) (*gst.TaxBreakdown, error)
	CalculateDocument(ctx context.Context, input gst.DocumentInput) (*gst.DocumentResult, error)
	CalculatePurchase(ctx context.Context, input gst.PurchaseInput) (*gst.PurchaseResult, error)
	// CheckPurchaseDuplicate fails with domain.ErrDuplicateDocument when another active
	// purchase carries the same supplier GSTIN and invoice number. The matches are returned
	// either way.
	CheckPurchaseDuplicate(ctx context.Context, businessID, excludePurchaseID uuid.UUID,
		supplierGSTIN, invoiceNumber string) ([]port.DuplicateMatch, error)
	Rates() []float64
}

type taxService struct {
	calc       *gst.Calculator
	duplicates port.DuplicateInvoiceFinder
}

// NewTaxService creates a new TaxService implementation.
func NewTaxService(calc *gst.Calculator, duplicates port.DuplicateInvoiceFinder) TaxService {
	return &taxService{calc: calc, duplicates: duplicates}
}

func (s *taxService) CalculateItem(_ context.Context, input gst.ItemInput) (*gst.TaxBreakdown, error) {
	tb, err := s.calc.CalculateItem(input)
	if err != nil {
		return nil, err
	}
	return &tb, nil
}

func (s *taxService) CalculateDocument(_ context.Context, input gst.DocumentInput) (*gst.DocumentResult, error) {
	return s.calc.CalculateDocument(input)
}

func (s *taxService) CalculatePurchase(_ context.Context, input gst.PurchaseInput) (*gst.PurchaseResult, error) {
	return s.calc.CalculatePurchase(input)
}

func (s *taxService) CheckPurchaseDuplicate(ctx context.Context, businessID, excludePurchaseID uuid.UUID,
	supplierGSTIN, invoiceNumber string) ([]port.DuplicateMatch, error) {
	if err := gst.ValidateGSTIN("supplier_gstin", supplierGSTIN); err != nil {
		return nil, err
	}
	matches, err := s.duplicates.FindDuplicates(ctx, businessID, excludePurchaseID, supplierGSTIN, invoiceNumber)
	if err != nil {
		return nil, err
	}
	if len(matches) > 0 {
		return matches, domain.NewFieldError(domain.ErrDuplicateDocument, "supplier_invoice_number", invoiceNumber,
			"unique per supplier GSTIN")
	}
	return matches, nil
}

func (s *taxService) Rates() []float64 {
	return s.calc.Rates().Rates()
}
