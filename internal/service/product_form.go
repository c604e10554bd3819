package service

import (
	"context"

	"github.com/shopspring/decimal"

	"go-travel-agency/internal/api"
	"go-travel-agency/internal/model"
	"go-travel-agency/internal/notify"
	"go-travel-agency/internal/pricing"
)

type ProductRequest struct {
	Category        string          `json:"category" validate:"required"`
	ProductName     string          `json:"product_name" validate:"required"`
	OriginalPrice   decimal.Decimal `json:"original_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	FinalPrice      decimal.Decimal `json:"final_price"`
	Description     string          `json:"description"`
	Images          []string        `json:"images"`
	StockQuantity   int             `json:"stock_quantity" validate:"min=0"`
}

type ProductForm struct {
	submitGuard
	client   *api.Client
	notifier notify.Notifier
	editing  *model.Product
}

func NewProductForm(client *api.Client, notifier notify.Notifier, editing *model.Product) *ProductForm {
	return &ProductForm{client: client, notifier: notifier, editing: editing}
}

// Submit derives the final price from the discount and saves. The
// derived price is never accepted from the caller.
func (f *ProductForm) Submit(ctx context.Context, req ProductRequest) (*model.Product, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}
	defer f.end()

	if err := validate(&req); err != nil {
		return nil, err
	}
	req.FinalPrice = pricing.FinalPrice(req.OriginalPrice, req.DiscountPercent)

	var saved model.Product
	var err error
	if f.editing != nil {
		err = f.client.Put(ctx, api.Product(f.editing.ID), &req, &saved)
	} else {
		err = f.client.Post(ctx, api.Products(), &req, &saved)
	}
	if err != nil {
		f.notifier.Error(api.Message(err, "Failed to save product. Please try again."))
		return nil, err
	}
	if f.editing != nil {
		f.notifier.Success("Product updated successfully!")
	} else {
		f.notifier.Success("Product created successfully!")
	}
	return &saved, nil
}
