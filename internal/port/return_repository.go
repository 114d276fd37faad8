package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gstreturns/internal/domain"
)

// FileReturnInput identifies a return to mark filed and the document window it covers.
type FileReturnInput struct {
	BusinessID uuid.UUID
	ReturnType domain.ReturnType
	Period     string
	From       time.Time
	To         time.Time
	FiledAt    time.Time
}

// ReturnRepository persists periodic returns. At most one row exists per
// (business, return type, period); Upsert overwrites it.
type ReturnRepository interface {
	// Upsert creates or replaces the return. It fails with domain.ErrReturnAlreadyFiled
	// when the existing row is filed.
	Upsert(ctx context.Context, ret *domain.PeriodicReturn) error
	GetByPeriod(ctx context.Context, businessID uuid.UUID, returnType domain.ReturnType, period string) (*domain.PeriodicReturn, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID, offset, limit int) ([]domain.PeriodicReturn, int, error)
	// MarkFiled flags the return and the period's source documents as filed atomically.
	MarkFiled(ctx context.Context, input FileReturnInput) error
}
