// Package storefront covers the public site: trip browsing and the
// booking, contact and review submission flows.
package storefront

import (
	"context"

	"go-travel-agency/internal/api"
	"go-travel-agency/internal/model"
)

// Catalog fetches the browsing data for the marketing pages.
type Catalog struct {
	client *api.Client
}

func NewCatalog(client *api.Client) *Catalog {
	return &Catalog{client: client}
}

// Trips returns the bookable travel types. The endpoint answers with a
// data envelope; bare arrays are tolerated too.
func (c *Catalog) Trips(ctx context.Context) ([]model.Trip, error) {
	return api.FetchList[model.Trip](ctx, c.client, api.Trips())
}

func (c *Catalog) Countries(ctx context.Context) ([]model.Country, error) {
	return api.FetchList[model.Country](ctx, c.client, api.Countries())
}

// Products returns the e-shop grid.
func (c *Catalog) Products(ctx context.Context) ([]model.Product, error) {
	return api.FetchList[model.Product](ctx, c.client, api.Products())
}
