package service

import (
	"context"

	"go-travel-agency/internal/api"
	"go-travel-agency/internal/model"
	"go-travel-agency/internal/notify"
	"go-travel-agency/internal/pricing"
)

type OrderRequest struct {
	Name   string            `json:"name" validate:"required"`
	Email  string            `json:"email" validate:"required,email"`
	Phone  string            `json:"phone" validate:"required"`
	Status string            `json:"status" validate:"required,oneof=Pending Completed Cancelled"`
	Items  []model.OrderItem `json:"items" validate:"dive"`

	// Computed from Items before submit; never taken from input.
	Subtotal string `json:"subtotal"`
	Total    string `json:"total"`
}

type OrderForm struct {
	submitGuard
	client   *api.Client
	notifier notify.Notifier
	editing  *model.Order
}

func NewOrderForm(client *api.Client, notifier notify.Notifier, editing *model.Order) *OrderForm {
	return &OrderForm{client: client, notifier: notifier, editing: editing}
}

// Submit recomputes subtotal and total from the line items. Order totals
// carry no tax.
func (f *OrderForm) Submit(ctx context.Context, req OrderRequest) (*model.Order, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}
	defer f.end()

	if err := validate(&req); err != nil {
		return nil, err
	}

	lines := make([]pricing.Line, len(req.Items))
	for i, item := range req.Items {
		lines[i] = pricing.Line{UnitPrice: item.Price, Quantity: item.Quantity}
	}
	subtotal := pricing.Subtotal(lines)
	req.Subtotal = pricing.Display(subtotal)
	req.Total = pricing.Display(pricing.OrderTotal(subtotal))

	var saved model.Order
	var err error
	if f.editing != nil {
		err = f.client.Put(ctx, api.Order(f.editing.ID), &req, &saved)
	} else {
		err = f.client.Post(ctx, api.Orders(), &req, &saved)
	}
	if err != nil {
		f.notifier.Error(api.Message(err, "Failed to save order"))
		return nil, err
	}
	if f.editing != nil {
		f.notifier.Success("Order updated successfully!")
	} else {
		f.notifier.Success("Order created successfully!")
	}
	return &saved, nil
}
