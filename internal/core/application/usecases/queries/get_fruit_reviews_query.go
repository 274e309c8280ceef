package queries

import (
	"errors"
	"time"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/guard"
)

var ErrGetFruitReviewsQueryIsNotConstructed = errors.New(
	"GetFruitReviewsQuery must be created via NewGetFruitReviewsQuery constructor",
)

// GetFruitReviewsQuery lists the reviews written for one fruit. Public.
type GetFruitReviewsQuery struct {
	fruitID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetFruitReviewsQuery creates a query for a fruit's reviews.
func NewGetFruitReviewsQuery(fruitID kernel.UUID) (GetFruitReviewsQuery, error) {
	if err := fruitID.Validate(); err != nil {
		return GetFruitReviewsQuery{}, err
	}

	return GetFruitReviewsQuery{
		fruitID: fruitID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFruitReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetFruitReviewsQueryIsNotConstructed)
}

// FruitID returns the fruit whose reviews are requested.
func (q GetFruitReviewsQuery) FruitID() kernel.UUID {
	return q.fruitID
}

// ReviewResponse is one published review. AuthorName is the reviewer's
// username, shown instead of the member identifier.
type ReviewResponse struct {
	ID         kernel.UUID
	AuthorName string
	Rating     int
	Comment    string
	CreatedAt  time.Time
}
