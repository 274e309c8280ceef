package review_test

import (
	"testing"
	"time"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/core/domain/model/review"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReview(t *testing.T, rating int) (*review.Review, error) {
	t.Helper()
	return review.NewReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		rating, "juicy", time.Now())
}

func TestNewReview(t *testing.T) {
	t.Run("accepts boundary ratings", func(t *testing.T) {
		for _, rating := range []int{1, 5} {
			r, err := newReview(t, rating)
			require.NoError(t, err)
			assert.Equal(t, rating, r.Rating())
		}
	})

	t.Run("rejects out of range ratings", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			_, err := newReview(t, rating)
			require.Error(t, err)
		}
	})
}

func TestReview_Update(t *testing.T) {
	r, err := newReview(t, 3)
	require.NoError(t, err)

	require.NoError(t, r.Update(5, "even better the second time"))
	assert.Equal(t, 5, r.Rating())

	require.Error(t, r.Update(6, ""))
	assert.Equal(t, 5, r.Rating())
}
