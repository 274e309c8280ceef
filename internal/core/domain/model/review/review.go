// Package review provides the Review aggregate: a rating and comment a member
// leaves on one line of a delivered order.
package review

import (
	"errors"
	"time"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"
)

const (
	minRating = 1
	maxRating = 5
)

// ErrReviewIsNotConstructed is returned when a Review instance was not
// created through NewReview or RestoreReview.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

// Review is written against a single order line, so the product being
// reviewed and the purchase that entitles the member to review it are both
// pinned down. One review per order line.
type Review struct {
	id            kernel.UUID
	memberID      kernel.UUID
	orderDetailID kernel.UUID
	fruitID       kernel.UUID
	rating        int
	comment       string
	createdAt     time.Time

	isConstructed bool
}

// NewReview creates a review with a rating between 1 and 5.
func NewReview(id, memberID, orderDetailID, fruitID kernel.UUID, rating int, comment string,
	createdAt time.Time) (*Review, error) {
	if err := errors.Join(
		id.Validate(),
		memberID.Validate(),
		orderDetailID.Validate(),
		fruitID.Validate(),
	); err != nil {
		return nil, err
	}
	if rating < minRating || rating > maxRating {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, minRating, maxRating)
	}

	return &Review{
		id:            id,
		memberID:      memberID,
		orderDetailID: orderDetailID,
		fruitID:       fruitID,
		rating:        rating,
		comment:       comment,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreReview reconstructs a review from persistence.
func RestoreReview(id, memberID, orderDetailID, fruitID kernel.UUID, rating int, comment string,
	createdAt time.Time) (*Review, error) {
	return NewReview(id, memberID, orderDetailID, fruitID, rating, comment, createdAt)
}

// Validate ensures the review was created through a constructor.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// MemberID returns the author's identifier.
func (r *Review) MemberID() kernel.UUID {
	return r.memberID
}

// OrderDetailID returns the identifier of the reviewed order line.
func (r *Review) OrderDetailID() kernel.UUID {
	return r.orderDetailID
}

// FruitID returns the identifier of the reviewed product.
func (r *Review) FruitID() kernel.UUID {
	return r.fruitID
}

// Rating returns the star rating, 1 to 5.
func (r *Review) Rating() int {
	return r.rating
}

// Comment returns the free-text body of the review.
func (r *Review) Comment() string {
	return r.comment
}

// CreatedAt returns the time the review was written.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

// Update overwrites the rating and comment.
func (r *Review) Update(rating int, comment string) error {
	if rating < minRating || rating > maxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, minRating, maxRating)
	}
	r.rating = rating
	r.comment = comment
	return nil
}
