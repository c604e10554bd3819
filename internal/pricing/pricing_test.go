package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCartSubtotalAndTotal(t *testing.T) {
	lines := []Line{
		{UnitPrice: decimal.NewFromInt(10), Quantity: 2},
		{UnitPrice: decimal.NewFromInt(5), Quantity: 1},
	}

	subtotal := Subtotal(lines)
	assert.True(t, subtotal.Equal(decimal.NewFromInt(25)), "subtotal = %s", subtotal)
	assert.Equal(t, "27.50", Display(CartTotal(subtotal)))
}

func TestOrderTotalHasNoTax(t *testing.T) {
	subtotal := Subtotal([]Line{{UnitPrice: decimal.NewFromInt(40), Quantity: 3}})
	assert.True(t, OrderTotal(subtotal).Equal(subtotal))
	assert.Equal(t, "120.00", Display(OrderTotal(subtotal)))
}

func TestFinalPrice(t *testing.T) {
	got := FinalPrice(decimal.NewFromInt(100), decimal.NewFromInt(25))
	assert.True(t, got.Equal(decimal.NewFromInt(75)), "got %s", got)

	noDiscount := FinalPrice(decimal.NewFromInt(100), decimal.Zero)
	assert.True(t, noDiscount.Equal(decimal.NewFromInt(100)))
}

func TestSubtotalEmpty(t *testing.T) {
	assert.True(t, Subtotal(nil).Equal(decimal.Zero))
}

func TestTravelers(t *testing.T) {
	assert.Equal(t, 3, TotalTravelers(2, 1))
	amount := BookingAmount(decimal.NewFromInt(250), 3)
	assert.Equal(t, "750.00", Display(amount))
}
