package model

import "github.com/shopspring/decimal"

type Product struct {
	ID              string          `json:"id"`
	Category        string          `json:"category" validate:"required"`
	ProductName     string          `json:"product_name" validate:"required"`
	OriginalPrice   decimal.Decimal `json:"original_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	FinalPrice      decimal.Decimal `json:"final_price"`
	Description     string          `json:"description"`
	Images          []string        `json:"images"`
	StockQuantity   int             `json:"stock_quantity"`
}
