package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstreturns/internal/domain"
	"gstreturns/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) ListByPeriod(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices, `
		SELECT * FROM invoices
		WHERE business_id = $1
		  AND status = 'active'
		  AND invoice_date BETWEEN $2 AND $3
		ORDER BY invoice_date, invoice_number`,
		businessID, from, to)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListByPeriod: %w", err)
	}
	if len(invoices) == 0 {
		return invoices, nil
	}

	ids := make([]uuid.UUID, len(invoices))
	byID := make(map[uuid.UUID]int, len(invoices))
	for i := range invoices {
		ids[i] = invoices[i].ID
		byID[invoices[i].ID] = i
	}

	query, args, err := sqlx.In(`SELECT * FROM invoice_items WHERE invoice_id IN (?) ORDER BY invoice_id, position`, ids)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListByPeriod items query: %w", err)
	}
	var items []domain.InvoiceItem
	if err := r.db.SelectContext(ctx, &items, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListByPeriod items: %w", err)
	}
	for i := range items {
		idx := byID[items[i].InvoiceID]
		invoices[idx].Items = append(invoices[idx].Items, items[i])
	}
	return invoices, nil
}
