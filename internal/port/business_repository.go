package port

import (
	"context"

	"github.com/google/uuid"

	"gstreturns/internal/domain"
)

// BusinessRepository reads registered businesses.
type BusinessRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
}
