package delivery_test

import (
	"testing"
	"time"

	"fruitmall/internal/core/domain/model/delivery"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) delivery.Address {
	t.Helper()
	a, err := delivery.NewAddress("Alice", "06236", "1 Orchard Lane", "",
		"010-1234-5678", "leave at the door")
	require.NoError(t, err)
	return a
}

func newTestDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), delivery.Preparing, testAddress(t),
		"", "", time.Now().AddDate(0, 0, 2))
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	t.Run("starts with the given status", func(t *testing.T) {
		d := newTestDelivery(t)

		require.NoError(t, d.Validate())
		assert.Equal(t, delivery.Preparing, d.Status())
		assert.Nil(t, d.ActualDeliveryDate())
		assert.Empty(t, d.TrackingNumber())
	})

	t.Run("accepts courier details up front", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(),
			delivery.Shipping, testAddress(t), "Hanjin", "HJ-123456",
			time.Now().AddDate(0, 0, 2))
		require.NoError(t, err)

		assert.Equal(t, delivery.Shipping, d.Status())
		assert.Equal(t, "Hanjin", d.CourierCompany())
		assert.Equal(t, "HJ-123456", d.TrackingNumber())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(),
			delivery.UnknownStatus, testAddress(t), "", "", time.Now())
		require.Error(t, err)
	})

	t.Run("rejects unconstructed address", func(t *testing.T) {
		_, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(),
			delivery.Preparing, delivery.Address{}, "", "", time.Now())
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var d delivery.Delivery
		require.Error(t, d.Validate())
	})
}

func TestDelivery_UpdateStatus(t *testing.T) {
	t.Run("stamps actual date on delivered", func(t *testing.T) {
		d := newTestDelivery(t)
		now := time.Now()

		require.NoError(t, d.UpdateStatus(delivery.Shipping, now))
		assert.Nil(t, d.ActualDeliveryDate())

		require.NoError(t, d.UpdateStatus(delivery.Delivered, now))
		require.NotNil(t, d.ActualDeliveryDate())
		assert.True(t, d.ActualDeliveryDate().Equal(now))
	})

	t.Run("delivered rejects other statuses", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.UpdateStatus(delivery.Delivered, time.Now()))

		err := d.UpdateStatus(delivery.Shipping, time.Now())
		require.Error(t, err)
		assert.Equal(t, delivery.Delivered, d.Status())
	})

	t.Run("delivered to delivered is a no-op", func(t *testing.T) {
		d := newTestDelivery(t)
		firstDelivery := time.Now().Add(-time.Hour)
		require.NoError(t, d.UpdateStatus(delivery.Delivered, firstDelivery))

		require.NoError(t, d.UpdateStatus(delivery.Delivered, time.Now()))
		assert.Equal(t, delivery.Delivered, d.Status())
		require.NotNil(t, d.ActualDeliveryDate())
		assert.True(t, d.ActualDeliveryDate().Equal(firstDelivery))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		d := newTestDelivery(t)
		require.Error(t, d.UpdateStatus(delivery.UnknownStatus, time.Now()))
	})
}

func TestDelivery_UpdateInfo(t *testing.T) {
	t.Run("changes status and shipping details together", func(t *testing.T) {
		d := newTestDelivery(t)
		newDate := time.Now().AddDate(0, 0, 5)

		require.NoError(t, d.UpdateInfo(delivery.Shipping, newDate, "Hanjin", "HJ-123456",
			time.Now()))
		assert.Equal(t, delivery.Shipping, d.Status())
		assert.True(t, d.ExpectedDeliveryDate().Equal(newDate))
		assert.Equal(t, "Hanjin", d.CourierCompany())
		assert.Equal(t, "HJ-123456", d.TrackingNumber())
	})

	t.Run("overwrites courier details while shipping", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.UpdateTrackingInfo("Hanjin", "HJ-123456"))
		require.NoError(t, d.UpdateStatus(delivery.Shipping, time.Now()))

		newDate := time.Now().AddDate(0, 0, 3)
		require.NoError(t, d.UpdateInfo(delivery.Shipping, newDate, "CJ", "CJ-777", time.Now()))
		assert.Equal(t, "CJ", d.CourierCompany())
		assert.Equal(t, "CJ-777", d.TrackingNumber())
	})

	t.Run("stamps actual date when moving to delivered", func(t *testing.T) {
		d := newTestDelivery(t)
		now := time.Now()

		require.NoError(t, d.UpdateInfo(delivery.Delivered, d.ExpectedDeliveryDate(),
			"Hanjin", "HJ-123456", now))
		require.NotNil(t, d.ActualDeliveryDate())
		assert.True(t, d.ActualDeliveryDate().Equal(now))
	})

	t.Run("delivered rejects a different status", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.UpdateStatus(delivery.Delivered, time.Now()))
		before := d.ExpectedDeliveryDate()

		err := d.UpdateInfo(delivery.Shipping, time.Now().AddDate(0, 0, 9), "CJ", "CJ-1",
			time.Now())
		require.Error(t, err)
		assert.Equal(t, delivery.Delivered, d.Status())
		assert.True(t, d.ExpectedDeliveryDate().Equal(before))
		assert.Empty(t, d.TrackingNumber())
	})
}

func TestDelivery_Cancel(t *testing.T) {
	t.Run("cancels while preparing", func(t *testing.T) {
		d := newTestDelivery(t)

		require.NoError(t, d.Cancel())
		assert.Equal(t, delivery.Cancelled, d.Status())
	})

	t.Run("blocks shipping and delivered", func(t *testing.T) {
		for _, status := range []delivery.Status{delivery.Shipping, delivery.Delivered} {
			d := newTestDelivery(t)
			require.NoError(t, d.UpdateStatus(status, time.Now()))

			require.Error(t, d.Cancel())
			assert.Equal(t, status, d.Status())
		}
	})
}

func TestDelivery_UpdateTrackingInfo(t *testing.T) {
	d := newTestDelivery(t)

	require.NoError(t, d.UpdateTrackingInfo("Hanjin", "HJ-123456"))
	assert.Equal(t, "Hanjin", d.CourierCompany())
	assert.Equal(t, "HJ-123456", d.TrackingNumber())
	assert.Equal(t, delivery.Preparing, d.Status())

	require.Error(t, d.UpdateTrackingInfo("Hanjin", ""))
}

func TestDelivery_UpdateAddress(t *testing.T) {
	d := newTestDelivery(t)
	updated, err := delivery.NewAddress("Bob", "03187", "2 Orchard Lane", "Unit 4",
		"010-0000-1111", "")
	require.NoError(t, err)

	require.NoError(t, d.UpdateAddress(updated))
	assert.Equal(t, "Bob", d.Address().Recipient())
	assert.Equal(t, "2 Orchard Lane", d.Address().Address1())

	require.NoError(t, d.UpdateStatus(delivery.Shipping, time.Now()))
	require.Error(t, d.UpdateAddress(testAddress(t)))
}

func TestStatus_OrderStatus(t *testing.T) {
	cases := []struct {
		status     delivery.Status
		want       order.Status
		propagates bool
	}{
		{delivery.Preparing, order.UnknownStatus, false},
		{delivery.Shipping, order.Shipped, true},
		{delivery.Delivered, order.Delivered, true},
		{delivery.Cancelled, order.Cancelled, true},
	}
	for _, tc := range cases {
		got, ok := tc.status.OrderStatus()
		assert.Equal(t, tc.propagates, ok, tc.status.String())
		assert.Equal(t, tc.want, got, tc.status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	s, err := delivery.StatusFromString("SHIPPING")
	require.NoError(t, err)
	assert.Equal(t, delivery.Shipping, s)

	_, err = delivery.StatusFromString("UNKNOWN")
	require.Error(t, err)
}
