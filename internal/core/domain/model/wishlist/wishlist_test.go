package wishlist_test

import (
	"testing"
	"time"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/core/domain/model/wishlist"

	"github.com/stretchr/testify/require"
)

func TestNewWishlistItem(t *testing.T) {
	item, err := wishlist.NewWishlistItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Now())
	require.NoError(t, err)
	require.NoError(t, item.Validate())

	_, err = wishlist.NewWishlistItem(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), time.Now())
	require.Error(t, err)

	var zero wishlist.WishlistItem
	require.Error(t, zero.Validate())
}
