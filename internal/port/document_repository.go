package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gstreturns/internal/domain"
)

// InvoiceRepository reads outward invoices with their items.
type InvoiceRepository interface {
	// ListByPeriod returns active invoices dated within [from, to], items loaded.
	ListByPeriod(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]domain.Invoice, error)
}

// PurchaseRepository reads purchases with their items.
type PurchaseRepository interface {
	// ListByPeriod returns active purchases dated within [from, to], items loaded.
	ListByPeriod(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]domain.Purchase, error)
}
