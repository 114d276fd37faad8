package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstreturns/internal/domain"
	"gstreturns/internal/port"
)

type returnRepo struct {
	db *sqlx.DB
}

// NewReturnRepo creates a new PostgreSQL-backed ReturnRepository.
func NewReturnRepo(db *sqlx.DB) port.ReturnRepository {
	return &returnRepo{db: db}
}

// Upsert is last-writer-wins on (business_id, return_type, filing_period). A filed row is
// never overwritten.
func (r *returnRepo) Upsert(ctx context.Context, ret *domain.PeriodicReturn) error {
	if ret.ID == uuid.Nil {
		ret.ID = uuid.New()
	}
	now := time.Now().UTC()
	ret.CreatedAt = now
	ret.UpdatedAt = now

	query := `
		INSERT INTO periodic_returns (
			id, business_id, gstin, return_type, filing_period, payload,
			total_tax_liability, net_tax_payable, status, generated_at, filed_at,
			created_at, updated_at
		) VALUES (
			:id, :business_id, :gstin, :return_type, :filing_period, :payload,
			:total_tax_liability, :net_tax_payable, :status, :generated_at, :filed_at,
			:created_at, :updated_at
		)
		ON CONFLICT (business_id, return_type, filing_period) DO UPDATE SET
			gstin = EXCLUDED.gstin,
			payload = EXCLUDED.payload,
			total_tax_liability = EXCLUDED.total_tax_liability,
			net_tax_payable = EXCLUDED.net_tax_payable,
			status = EXCLUDED.status,
			generated_at = EXCLUDED.generated_at,
			filed_at = NULL,
			updated_at = EXCLUDED.updated_at
		WHERE periodic_returns.status <> 'filed'
		RETURNING id, created_at`

	rows, err := r.db.NamedQueryContext(ctx, query, ret)
	if err != nil {
		return fmt.Errorf("returnRepo.Upsert: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return fmt.Errorf("returnRepo.Upsert: %w", err)
		}
		return domain.ErrReturnAlreadyFiled
	}
	if err := rows.Scan(&ret.ID, &ret.CreatedAt); err != nil {
		return fmt.Errorf("returnRepo.Upsert scan: %w", err)
	}
	return nil
}

func (r *returnRepo) GetByPeriod(ctx context.Context, businessID uuid.UUID, returnType domain.ReturnType, period string) (*domain.PeriodicReturn, error) {
	var ret domain.PeriodicReturn
	err := r.db.GetContext(ctx, &ret, `
		SELECT * FROM periodic_returns
		WHERE business_id = $1 AND return_type = $2 AND filing_period = $3`,
		businessID, returnType, period)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReturnNotFound
		}
		return nil, fmt.Errorf("returnRepo.GetByPeriod: %w", err)
	}
	return &ret, nil
}

func (r *returnRepo) ListByBusiness(ctx context.Context, businessID uuid.UUID, offset, limit int) ([]domain.PeriodicReturn, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM periodic_returns WHERE business_id = $1", businessID)
	if err != nil {
		return nil, 0, fmt.Errorf("returnRepo.ListByBusiness count: %w", err)
	}

	var rets []domain.PeriodicReturn
	err = r.db.SelectContext(ctx, &rets, `
		SELECT * FROM periodic_returns
		WHERE business_id = $1
		ORDER BY filing_period DESC, return_type
		LIMIT $2 OFFSET $3`,
		businessID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("returnRepo.ListByBusiness: %w", err)
	}
	return rets, total, nil
}

func (r *returnRepo) MarkFiled(ctx context.Context, in port.FileReturnInput) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("returnRepo.MarkFiled begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var status domain.ReturnStatus
	err = tx.GetContext(ctx, &status, `
		SELECT status FROM periodic_returns
		WHERE business_id = $1 AND return_type = $2 AND filing_period = $3
		FOR UPDATE`,
		in.BusinessID, in.ReturnType, in.Period)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReturnNotFound
		}
		return fmt.Errorf("returnRepo.MarkFiled lock: %w", err)
	}
	if status == domain.ReturnStatusFiled {
		return domain.ErrReturnAlreadyFiled
	}

	if _, err = tx.ExecContext(ctx, `
		UPDATE periodic_returns SET status = 'filed', filed_at = $4, updated_at = NOW()
		WHERE business_id = $1 AND return_type = $2 AND filing_period = $3`,
		in.BusinessID, in.ReturnType, in.Period, in.FiledAt); err != nil {
		return fmt.Errorf("returnRepo.MarkFiled return: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `
		UPDATE invoices SET is_filed = TRUE, updated_at = NOW()
		WHERE business_id = $1 AND status = 'active' AND invoice_date BETWEEN $2 AND $3`,
		in.BusinessID, in.From, in.To); err != nil {
		return fmt.Errorf("returnRepo.MarkFiled invoices: %w", err)
	}

	if in.ReturnType == domain.ReturnTypeGSTR3B {
		if _, err = tx.ExecContext(ctx, `
			UPDATE purchases SET is_filed = TRUE, updated_at = NOW()
			WHERE business_id = $1 AND status = 'active' AND purchase_date BETWEEN $2 AND $3`,
			in.BusinessID, in.From, in.To); err != nil {
			return fmt.Errorf("returnRepo.MarkFiled purchases: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("returnRepo.MarkFiled commit: %w", err)
	}
	return nil
}
