package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-travel-agency/internal/model"
	"go-travel-agency/internal/pricing"
)

func product(id string, price int64, stock int) model.Product {
	return model.Product{
		ID:            id,
		ProductName:   "Product " + id,
		FinalPrice:    decimal.NewFromInt(price),
		StockQuantity: stock,
	}
}

func TestSubtotalAndDisplayedTotal(t *testing.T) {
	c := New()
	c.Add(product("a", 10, 5))
	c.Increment("a") // qty 2
	c.Add(product("b", 5, 5))

	assert.True(t, c.Subtotal().Equal(decimal.NewFromInt(25)))
	assert.Equal(t, "27.50", pricing.Display(c.Total()))
	assert.Equal(t, 3, c.TotalItems())
}

func TestIncrementClampsAtStock(t *testing.T) {
	c := New()
	c.Add(product("a", 10, 2))
	c.Increment("a")
	require.Equal(t, 2, c.Items()[0].Quantity)

	c.Increment("a") // at stock ceiling, no-op
	assert.Equal(t, 2, c.Items()[0].Quantity)
}

func TestDecrementClampsAtOne(t *testing.T) {
	c := New()
	c.Add(product("a", 10, 5))
	c.Decrement("a")
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestAddExistingProductBumpsQuantity(t *testing.T) {
	c := New()
	c.Add(product("a", 10, 5))
	c.Add(product("a", 10, 5))
	require.Len(t, c.Items(), 1)
	assert.Equal(t, 2, c.Items()[0].Quantity)
}

func TestRemoveAndClear(t *testing.T) {
	c := New()
	c.Add(product("a", 10, 5))
	c.Add(product("b", 5, 5))

	c.Remove("a")
	require.Len(t, c.Items(), 1)
	assert.Equal(t, "b", c.Items()[0].Product.ID)

	c.Clear()
	assert.Empty(t, c.Items())
	assert.True(t, c.Subtotal().Equal(decimal.Zero))
}

func TestCheckoutSnapshot(t *testing.T) {
	c := New()
	c.Add(product("a", 10, 5))
	c.Increment("a")
	c.Add(product("b", 5, 5))

	order := c.Checkout("Jane Roe", "jane@example.com", "12345678")
	assert.Equal(t, model.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(25)))
	assert.True(t, order.Total.Equal(order.Subtotal), "order total carries no tax")
}
