package queries

import (
	"errors"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/guard"
)

var ErrGetFruitQueryIsNotConstructed = errors.New(
	"GetFruitQuery must be created via NewGetFruitQuery constructor",
)

// GetFruitQuery retrieves a single catalog entry. Public.
type GetFruitQuery struct {
	fruitID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetFruitQuery creates a query for one fruit.
func NewGetFruitQuery(fruitID kernel.UUID) (GetFruitQuery, error) {
	if err := fruitID.Validate(); err != nil {
		return GetFruitQuery{}, err
	}

	return GetFruitQuery{
		fruitID: fruitID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFruitQuery) Validate() error {
	return q.guard.Validate(ErrGetFruitQueryIsNotConstructed)
}

// FruitID returns the identifier of the requested fruit.
func (q GetFruitQuery) FruitID() kernel.UUID {
	return q.fruitID
}
