package cart

import (
	"github.com/shopspring/decimal"

	"go-travel-agency/internal/model"
	"go-travel-agency/internal/pricing"
)

// Item is one line in the cart: a product snapshot plus a quantity.
type Item struct {
	Product  model.Product
	Quantity int
}

// Cart holds the shopper's line items. All operations are local; nothing
// here talks to the server until checkout.
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

func (c *Cart) Items() []Item {
	return c.items
}

// Add puts a product in the cart with quantity 1, or bumps the existing
// line when the product is already there.
func (c *Cart) Add(p model.Product) {
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.Increment(p.ID)
			return
		}
	}
	c.items = append(c.items, Item{Product: p, Quantity: 1})
}

// Increment bumps a line's quantity, clamped at the product's stock.
// At the stock ceiling it is a no-op.
func (c *Cart) Increment(productID string) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			if c.items[i].Quantity < c.items[i].Product.StockQuantity {
				c.items[i].Quantity++
			}
			return
		}
	}
}

// Decrement lowers a line's quantity, never below 1.
func (c *Cart) Decrement(productID string) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			if c.items[i].Quantity > 1 {
				c.items[i].Quantity--
			}
			return
		}
	}
}

// Remove drops a line immediately, no confirmation, no server call.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// TotalItems is the summed quantity across lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) lines() []pricing.Line {
	lines := make([]pricing.Line, len(c.items))
	for i, item := range c.items {
		lines[i] = pricing.Line{UnitPrice: item.Product.FinalPrice, Quantity: item.Quantity}
	}
	return lines
}

// Subtotal is the sum of final price times quantity across lines.
func (c *Cart) Subtotal() decimal.Decimal {
	return pricing.Subtotal(c.lines())
}

// Total is the displayed total: subtotal plus the flat cart tax.
func (c *Cart) Total() decimal.Decimal {
	return pricing.CartTotal(c.Subtotal())
}

// Checkout snapshots the cart as a pending order. The order keeps the
// untaxed subtotal as its total; the cart tax is display-only.
func (c *Cart) Checkout(name, email, phone string) model.Order {
	items := make([]model.OrderItem, len(c.items))
	for i, item := range c.items {
		items[i] = model.OrderItem{
			ProductID: item.Product.ID,
			Name:      item.Product.ProductName,
			Quantity:  item.Quantity,
			Price:     item.Product.FinalPrice,
		}
	}
	subtotal := c.Subtotal()
	return model.Order{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Status:   model.OrderStatusPending,
		Subtotal: subtotal,
		Total:    pricing.OrderTotal(subtotal),
		Items:    items,
	}
}
