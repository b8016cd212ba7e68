package domain

import "context"

// Cart domain errors.
var (
	ErrCartEmpty       = &Error{Code: EINVALID, Message: "Cart is empty"}
	ErrInvalidQuantity = &Error{Code: EINVALID, Message: "Quantity must be greater than 0"}
)

// CartService maintains the authoritative view of a user's pending purchase
// list. Entries are persisted per user id; an empty user id always yields an
// empty, unpersisted cart so carts can never leak across accounts.
type CartService interface {
	// Entries returns the cart entries for the user, loading from the
	// persisted slot. A missing or corrupt slot yields an empty cart.
	Entries(ctx context.Context, userID int64) ([]CartEntry, error)

	// AddToCart adds a product snapshot with the given quantity. If an entry
	// for the product already exists its quantity is incremented instead.
	AddToCart(ctx context.Context, userID int64, product Product, qty int32) (*CartSummary, error)

	// UpdateQty sets an entry's quantity, clamped to a minimum of 1.
	// Removal is a distinct explicit action, never a side effect of this call.
	UpdateQty(ctx context.Context, userID int64, productID int64, qty int32) (*CartSummary, error)

	// RemoveItem deletes the entry for the product id. No-op if absent.
	RemoveItem(ctx context.Context, userID int64, productID int64) (*CartSummary, error)

	// RemovePurchased deletes exactly the given product ids, leaving every
	// other entry untouched. Used after a positive payment acknowledgment.
	RemovePurchased(ctx context.Context, userID int64, productIDs []int64) error

	// ClearCart empties the entire list.
	ClearCart(ctx context.Context, userID int64) error

	// Summary returns the entries with the offer-aware total.
	Summary(ctx context.Context, userID int64) (*CartSummary, error)
}

// CartEntry is one line of a cart: a product snapshot taken at add time and
// a quantity of at least 1. At most one entry exists per product id.
type CartEntry struct {
	Product Product `json:"product"`
	Qty     int32   `json:"qty"`
}

// LineTotal returns qty times the effective unit price.
func (e CartEntry) LineTotal() int64 {
	return int64(e.Qty) * e.Product.EffectiveUnitPrice()
}

// CartSummary aggregates cart entries with the computed total.
type CartSummary struct {
	Entries    []CartEntry `json:"entries"`
	TotalPaise int64       `json:"total"`
	ItemCount  int32       `json:"itemCount"`
}
