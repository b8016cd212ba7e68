package domain

import "testing"

func TestProduct_EffectiveUnitPrice(t *testing.T) {
	tests := []struct {
		name     string
		product  Product
		expected int64
	}{
		{
			name:     "no offer",
			product:  Product{PricePaise: 8000},
			expected: 8000,
		},
		{
			name:     "active offer below list price",
			product:  Product{PricePaise: 4000, OfferActive: true, OfferPricePaise: 3000},
			expected: 3000,
		},
		{
			name:     "inactive offer ignored",
			product:  Product{PricePaise: 4000, OfferActive: false, OfferPricePaise: 3000},
			expected: 4000,
		},
		{
			name:     "active offer without price ignored",
			product:  Product{PricePaise: 4000, OfferActive: true},
			expected: 4000,
		},
		{
			name:     "offer price equal to list price ignored",
			product:  Product{PricePaise: 4000, OfferActive: true, OfferPricePaise: 4000},
			expected: 4000,
		},
		{
			name:     "offer price above list price ignored",
			product:  Product{PricePaise: 4000, OfferActive: true, OfferPricePaise: 5000},
			expected: 4000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.product.EffectiveUnitPrice(); got != tt.expected {
				t.Errorf("EffectiveUnitPrice() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestCartEntry_LineTotal(t *testing.T) {
	entry := CartEntry{
		Product: Product{PricePaise: 4000, OfferActive: true, OfferPricePaise: 3000},
		Qty:     3,
	}
	if got := entry.LineTotal(); got != 9000 {
		t.Errorf("LineTotal() = %d, want 9000", got)
	}
}

func TestDefaultAddressID(t *testing.T) {
	addresses := []Address{
		{ID: 1},
		{ID: 2, IsDefault: true},
		{ID: 3},
	}
	if got := DefaultAddressID(addresses); got != 2 {
		t.Errorf("DefaultAddressID() = %d, want 2", got)
	}
	if got := DefaultAddressID([]Address{{ID: 1}}); got != 0 {
		t.Errorf("DefaultAddressID() with no default = %d, want 0", got)
	}
	if got := DefaultAddressID(nil); got != 0 {
		t.Errorf("DefaultAddressID(nil) = %d, want 0", got)
	}
}
