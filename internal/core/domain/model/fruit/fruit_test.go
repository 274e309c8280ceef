package fruit_test

import (
	"testing"

	"fruitmall/internal/core/domain/model/fruit"
	"fruitmall/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFruit(t *testing.T, stock int) *fruit.Fruit {
	t.Helper()
	price, err := kernel.MoneyFromString("3.50")
	require.NoError(t, err)
	f, err := fruit.NewFruit(
		kernel.NewUUID(), "Jeju Hallabong", "Jeju", stock, price,
		kernel.NewUUID(), "winter", "Sweet citrus", "https://img.example.com/hallabong.jpg")
	require.NoError(t, err)
	return f
}

func TestNewFruit(t *testing.T) {
	t.Run("creates fruit", func(t *testing.T) {
		f := newTestFruit(t, 10)

		require.NoError(t, f.Validate())
		assert.Equal(t, 10, f.StockQuantity())
		assert.Equal(t, "Jeju Hallabong", f.Name())
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		price, err := kernel.MoneyFromString("1.00")
		require.NoError(t, err)
		_, err = fruit.NewFruit(kernel.NewUUID(), "Apple", "", -1, price,
			kernel.NewUUID(), "", "", "")
		require.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := fruit.NewFruit(kernel.NewUUID(), "", "", 1, kernel.ZeroMoney(),
			kernel.NewUUID(), "", "", "")
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var f fruit.Fruit
		require.Error(t, f.Validate())
	})
}

func TestFruit_DecreaseStock(t *testing.T) {
	t.Run("decreases stock", func(t *testing.T) {
		f := newTestFruit(t, 10)

		require.NoError(t, f.DecreaseStock(3))
		assert.Equal(t, 7, f.StockQuantity())
	})

	t.Run("exact stock leaves zero", func(t *testing.T) {
		f := newTestFruit(t, 5)

		require.NoError(t, f.DecreaseStock(5))
		assert.Equal(t, 0, f.StockQuantity())
	})

	t.Run("one over stock fails and stock is unchanged", func(t *testing.T) {
		f := newTestFruit(t, 5)

		err := f.DecreaseStock(6)
		require.ErrorIs(t, err, fruit.ErrOutOfStock)
		assert.Equal(t, 5, f.StockQuantity())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		f := newTestFruit(t, 5)

		require.Error(t, f.DecreaseStock(0))
		require.Error(t, f.DecreaseStock(-1))
		assert.Equal(t, 5, f.StockQuantity())
	})
}

func TestFruit_IncreaseStock(t *testing.T) {
	f := newTestFruit(t, 2)

	require.NoError(t, f.IncreaseStock(3))
	assert.Equal(t, 5, f.StockQuantity())

	require.Error(t, f.IncreaseStock(0))
}

func TestFruit_UpdateStock(t *testing.T) {
	f := newTestFruit(t, 2)

	require.NoError(t, f.UpdateStock(0))
	assert.Equal(t, 0, f.StockQuantity())

	require.Error(t, f.UpdateStock(-1))
}

func TestFruit_UpdateInfo(t *testing.T) {
	f := newTestFruit(t, 2)
	newPrice, err := kernel.MoneyFromString("4.20")
	require.NoError(t, err)
	newCategory := kernel.NewUUID()

	require.NoError(t, f.UpdateInfo("Hallabong Premium", "Jeju", newPrice, newCategory,
		"winter", "Extra sweet", ""))
	assert.Equal(t, "Hallabong Premium", f.Name())
	assert.True(t, f.Price().IsEqual(newPrice))
	assert.Equal(t, 2, f.StockQuantity())

	require.Error(t, f.UpdateInfo("", "", newPrice, newCategory, "", "", ""))
}

func TestNewCategory(t *testing.T) {
	c, err := fruit.NewCategory(kernel.NewUUID(), "Citrus", "Oranges and friends")
	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.Equal(t, "Citrus", c.Name())

	_, err = fruit.NewCategory(kernel.NewUUID(), "", "")
	require.Error(t, err)
}
