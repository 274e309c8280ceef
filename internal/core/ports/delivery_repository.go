package ports

import (
	"context"

	"fruitmall/internal/core/domain/model/delivery"
	"fruitmall/internal/core/domain/model/kernel"
)

// DeliveryRepositoryFactory creates DeliveryRepository bound to the current
// transaction.
type DeliveryRepositoryFactory interface {
	DeliveryRepository() DeliveryRepository
}

// DeliveryRepository persists the Delivery aggregate.
type DeliveryRepository interface {
	Add(ctx context.Context, aggregate *delivery.Delivery) error
	Update(ctx context.Context, aggregate *delivery.Delivery) error
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)
}
