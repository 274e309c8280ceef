package delivery_test

import (
	"testing"

	"fruitmall/internal/core/domain/model/delivery"
	"fruitmall/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("optional fields may be empty", func(t *testing.T) {
		a, err := delivery.NewAddress("Alice", "06236", "1 Orchard Lane", "",
			"010-1234-5678", "")
		require.NoError(t, err)

		assert.Equal(t, "Alice", a.Recipient())
		assert.Equal(t, "06236", a.ZipCode())
		assert.Equal(t, "1 Orchard Lane", a.Address1())
		assert.Empty(t, a.Address2())
		assert.Equal(t, "010-1234-5678", a.PhoneNumber())
		assert.Empty(t, a.DeliveryRequest())
	})

	t.Run("collects every missing required field", func(t *testing.T) {
		_, err := delivery.NewAddress("", "", "", "", "", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorContains(t, err, "recipient")
		assert.ErrorContains(t, err, "zipCode")
		assert.ErrorContains(t, err, "address1")
		assert.ErrorContains(t, err, "phoneNumber")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var a delivery.Address
		require.Error(t, a.Validate())
	})
}
