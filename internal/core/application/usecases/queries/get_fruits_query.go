package queries

import (
	"errors"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetFruitsQueryIsNotConstructed = errors.New(
	"GetFruitsQuery must be created via NewGetFruitsQuery constructor",
)

// GetFruitsQuery lists the catalog. All filters are optional: a zero-value
// category skips the category filter, empty strings skip the season and name
// filters. The catalog is public.
type GetFruitsQuery struct {
	categoryID kernel.UUID
	season     string
	name       string

	guard guard.ConstructorGuard
}

// NewGetFruitsQuery creates a catalog listing query. The name filter matches
// as a case-insensitive substring.
func NewGetFruitsQuery(categoryID kernel.UUID, season, name string) (GetFruitsQuery, error) {
	return GetFruitsQuery{
		categoryID: categoryID,
		season:     season,
		name:       name,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFruitsQuery) Validate() error {
	return q.guard.Validate(ErrGetFruitsQueryIsNotConstructed)
}

// CategoryID returns the category filter; a zero UUID means no filter.
func (q GetFruitsQuery) CategoryID() kernel.UUID {
	return q.categoryID
}

// Season returns the season filter; empty means no filter.
func (q GetFruitsQuery) Season() string {
	return q.season
}

// Name returns the name filter; empty means no filter.
func (q GetFruitsQuery) Name() string {
	return q.name
}

// FruitResponse is one catalog entry.
type FruitResponse struct {
	ID            kernel.UUID
	Name          string
	Origin        string
	StockQuantity int
	Price         decimal.Decimal
	CategoryID    kernel.UUID
	CategoryName  string
	Season        string
	Description   string
	ImageURL      string
}
