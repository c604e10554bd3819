package model

import "github.com/shopspring/decimal"

type Trip struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Subtitle        string          `json:"subtitle,omitempty"`
	OriginalPrice   decimal.Decimal `json:"originalPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
}

type Country struct {
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}
