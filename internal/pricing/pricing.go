// Package pricing is the single home for money formulas. The cart applies
// a flat tax on top of its subtotal; order totals never do. Keeping both
// here makes that divergence a stated rule instead of scattered arithmetic.
package pricing

import "github.com/shopspring/decimal"

// CartTaxRate is the flat rate applied to the cart subtotal. No shipping
// cost is modeled.
var CartTaxRate = decimal.NewFromFloat(0.10)

var hundred = decimal.NewFromInt(100)

// Line is one priced quantity, shared by cart and order calculations.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// FinalPrice applies a discount percentage to an original price.
func FinalPrice(original, discountPercent decimal.Decimal) decimal.Decimal {
	discount := original.Mul(discountPercent).Div(hundred)
	return original.Sub(discount)
}

// LineTotal is unit price times quantity.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// Subtotal sums the line totals.
func Subtotal(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(LineTotal(line.UnitPrice, line.Quantity))
	}
	return total
}

// CartTotal is the displayed cart total: subtotal plus the flat tax.
func CartTotal(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Add(subtotal.Mul(CartTaxRate))
}

// OrderTotal mirrors the server's order arithmetic: no tax, no shipping,
// the total is the subtotal.
func OrderTotal(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal
}

// TotalTravelers is the booking headcount.
func TotalTravelers(adults, children int) int {
	return adults + children
}

// BookingAmount prices a trip for a party.
func BookingAmount(tripPrice decimal.Decimal, travelers int) decimal.Decimal {
	return tripPrice.Mul(decimal.NewFromInt(int64(travelers)))
}

// Display renders an amount with two decimals. Rounding happens only
// here, at the edge.
func Display(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
