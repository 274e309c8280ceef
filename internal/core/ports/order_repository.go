package ports

import (
	"context"
	"time"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/core/domain/model/order"
)

// OrderRepositoryFactory creates OrderRepository bound to the current
// transaction.
type OrderRepositoryFactory interface {
	OrderRepository() OrderRepository
}

// OrderRepository persists the Order aggregate together with its lines.
type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error
	Update(ctx context.Context, aggregate *order.Order) error
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllPendingBefore returns orders still in PENDING that were placed
	// before the cutoff. Used by the stale order expiry job.
	GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
