package ports

import (
	"context"

	"fruitmall/internal/core/domain/model/fruit"
	"fruitmall/internal/core/domain/model/kernel"
)

// FruitRepositoryFactory creates FruitRepository bound to the current
// transaction.
type FruitRepositoryFactory interface {
	FruitRepository() FruitRepository
}

// FruitRepository persists the Fruit aggregate.
//
// GetForUpdate takes a row-level write lock on the fruit for the duration of
// the surrounding transaction. Every stock mutation must load through it so
// that two concurrent checkouts of the same fruit serialize instead of both
// reading the same stock level.
type FruitRepository interface {
	Add(ctx context.Context, aggregate *fruit.Fruit) error
	Update(ctx context.Context, aggregate *fruit.Fruit) error
	Get(ctx context.Context, id kernel.UUID) (*fruit.Fruit, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*fruit.Fruit, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

// CategoryRepositoryFactory creates CategoryRepository bound to the current
// transaction.
type CategoryRepositoryFactory interface {
	CategoryRepository() CategoryRepository
}

// CategoryRepository persists the Category aggregate.
type CategoryRepository interface {
	Add(ctx context.Context, aggregate *fruit.Category) error
	Update(ctx context.Context, aggregate *fruit.Category) error
	Get(ctx context.Context, id kernel.UUID) (*fruit.Category, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
