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

type purchaseRepo struct {
	db *sqlx.DB
}

// NewPurchaseRepo creates a new PostgreSQL-backed PurchaseRepository.
func NewPurchaseRepo(db *sqlx.DB) port.PurchaseRepository {
	return &purchaseRepo{db: db}
}

func (r *purchaseRepo) ListByPeriod(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]domain.Purchase, error) {
	var purchases []domain.Purchase
	err := r.db.SelectContext(ctx, &purchases, `
		SELECT * FROM purchases
		WHERE business_id = $1
		  AND status = 'active'
		  AND purchase_date BETWEEN $2 AND $3
		ORDER BY purchase_date, supplier_invoice_number`,
		businessID, from, to)
	if err != nil {
		return nil, fmt.Errorf("purchaseRepo.ListByPeriod: %w", err)
	}
	if len(purchases) == 0 {
		return purchases, nil
	}

	ids := make([]uuid.UUID, len(purchases))
	byID := make(map[uuid.UUID]int, len(purchases))
	for i := range purchases {
		ids[i] = purchases[i].ID
		byID[purchases[i].ID] = i
	}

	query, args, err := sqlx.In(`SELECT * FROM purchase_items WHERE purchase_id IN (?) ORDER BY purchase_id, position`, ids)
	if err != nil {
		return nil, fmt.Errorf("purchaseRepo.ListByPeriod items query: %w", err)
	}
	var items []domain.PurchaseItem
	if err := r.db.SelectContext(ctx, &items, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("purchaseRepo.ListByPeriod items: %w", err)
	}
	for i := range items {
		idx := byID[items[i].PurchaseID]
		purchases[idx].Items = append(purchases[idx].Items, items[i])
	}
	return purchases, nil
}
