package ports

import (
	"context"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/core/domain/model/review"
)

// ReviewRepositoryFactory creates ReviewRepository bound to the current
// transaction.
type ReviewRepositoryFactory interface {
	ReviewRepository() ReviewRepository
}

// ReviewRepository persists the Review aggregate.
type ReviewRepository interface {
	Add(ctx context.Context, aggregate *review.Review) error
	Update(ctx context.Context, aggregate *review.Review) error
	Get(ctx context.Context, id kernel.UUID) (*review.Review, error)
	GetByOrderDetailID(ctx context.Context, orderDetailID kernel.UUID) (*review.Review, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
