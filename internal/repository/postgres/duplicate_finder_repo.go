package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstreturns/internal/port"
)

type duplicateFinderRepo struct {
	db *sqlx.DB
}

// NewDuplicateFinderRepo creates a new PostgreSQL-backed DuplicateInvoiceFinder.
func NewDuplicateFinderRepo(db *sqlx.DB) port.DuplicateInvoiceFinder {
	return &duplicateFinderRepo{db: db}
}

func (r *duplicateFinderRepo) FindDuplicates(
	ctx context.Context,
	businessID, excludePurchaseID uuid.UUID,
	supplierGSTIN, invoiceNumber string,
) ([]port.DuplicateMatch, error) {
	var matches []port.DuplicateMatch
	err := r.db.SelectContext(ctx, &matches, `
		SELECT id, supplier_name, purchase_date, created_at
		FROM purchases
		WHERE business_id = $1
		  AND id != $2
		  AND status = 'active'
		  AND supplier_gstin = $3
		  AND supplier_invoice_number = $4
		ORDER BY created_at DESC
		LIMIT 5`,
		businessID, excludePurchaseID, supplierGSTIN, invoiceNumber,
	)
	if err != nil {
		return nil, err
	}
	return matches, nil
}
