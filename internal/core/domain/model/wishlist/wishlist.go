// Package wishlist provides the WishlistItem aggregate: a member's bookmark
// of a fruit, unique per member and fruit pair.
package wishlist

import (
	"errors"
	"time"

	"fruitmall/internal/core/domain/model/kernel"
)

// ErrWishlistItemIsNotConstructed is returned when a WishlistItem instance
// was not created through NewWishlistItem or RestoreWishlistItem.
var ErrWishlistItemIsNotConstructed = errors.New(
	"WishlistItem must be created via NewWishlistItem constructor")

// WishlistItem marks a fruit a member wants to keep an eye on.
type WishlistItem struct {
	id       kernel.UUID
	memberID kernel.UUID
	fruitID  kernel.UUID
	addedAt  time.Time

	isConstructed bool
}

// NewWishlistItem creates a wishlist entry.
func NewWishlistItem(id, memberID, fruitID kernel.UUID, addedAt time.Time) (*WishlistItem, error) {
	if err := errors.Join(
		id.Validate(),
		memberID.Validate(),
		fruitID.Validate(),
	); err != nil {
		return nil, err
	}

	return &WishlistItem{
		id:            id,
		memberID:      memberID,
		fruitID:       fruitID,
		addedAt:       addedAt,
		isConstructed: true,
	}, nil
}

// RestoreWishlistItem reconstructs a wishlist entry from persistence.
func RestoreWishlistItem(id, memberID, fruitID kernel.UUID, addedAt time.Time) (*WishlistItem, error) {
	return NewWishlistItem(id, memberID, fruitID, addedAt)
}

// Validate ensures the entry was created through a constructor.
func (w *WishlistItem) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWishlistItemIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (w *WishlistItem) ID() kernel.UUID {
	return w.id
}

// MemberID returns the owning member's identifier.
func (w *WishlistItem) MemberID() kernel.UUID {
	return w.memberID
}

// FruitID returns the identifier of the wished-for fruit.
func (w *WishlistItem) FruitID() kernel.UUID {
	return w.fruitID
}

// AddedAt returns the time the fruit was added to the wishlist.
func (w *WishlistItem) AddedAt() time.Time {
	return w.addedAt
}
