package domain

import (
	"context"
	"time"
)

// Product is a catalog item as served by the backend. The storefront never
// mutates products; they are snapshotted into cart entries at add time.
// All money values are integer paise.
type Product struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	PricePaise      int64      `json:"price"`
	Stock           int32      `json:"stock"`
	ImageURL        string     `json:"imageUrl,omitempty"`
	Category        string     `json:"category,omitempty"`
	OfferActive     bool       `json:"offerActive"`
	OfferPricePaise int64      `json:"offerPrice,omitempty"`
	OfferPercentage int32      `json:"offerPercentage,omitempty"`
	OfferStartDate  *time.Time `json:"offerStartDate,omitempty"`
	OfferEndDate    *time.Time `json:"offerEndDate,omitempty"`
	FestivalName    string     `json:"festivalName,omitempty"`
}

// EffectiveUnitPrice returns the per-unit price used for totals: the offer
// price when an active, valid offer exists, else the list price. An offer
// whose price is missing or not strictly below the list price is ignored.
func (p Product) EffectiveUnitPrice() int64 {
	if p.OfferActive && p.OfferPricePaise > 0 && p.OfferPricePaise < p.PricePaise {
		return p.OfferPricePaise
	}
	return p.PricePaise
}

// Category is a product category label from the backend catalog.
type Category struct {
	Name string `json:"name"`
}

// ProductService serves the public catalog.
type ProductService interface {
	// List returns the catalog, optionally filtered to one category.
	List(ctx context.Context, category string) ([]Product, error)

	// Get returns a single catalog item.
	Get(ctx context.Context, id int64) (*Product, error)

	// Categories returns the category labels.
	Categories(ctx context.Context) ([]Category, error)
}
