package port

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DuplicateMatch holds enough information about a matching purchase for an actionable warning message.
type DuplicateMatch struct {
	PurchaseID   uuid.UUID `db:"id" json:"purchase_id"`
	SupplierName string    `db:"supplier_name" json:"supplier_name"`
	PurchaseDate time.Time `db:"purchase_date" json:"purchase_date"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// DuplicateInvoiceFinder checks for other purchases with the same supplier GSTIN + invoice number.
type DuplicateInvoiceFinder interface {
	FindDuplicates(ctx context.Context, businessID, excludePurchaseID uuid.UUID,
		supplierGSTIN, invoiceNumber string) ([]DuplicateMatch, error)
}
