package domain

import "context"

// Checkout domain errors.
var (
	ErrEmptySelection    = &Error{Code: EINVALID, Message: "Select at least one item to check out"}
	ErrSelectionNotFound = &Error{Code: ENOTFOUND, Message: "Checkout session expired or not found"}
	ErrNoAddressSelected = &Error{Code: EINVALID, Message: "Please select an address to proceed"}
)

// CheckoutSelection is the transient subset of cart entries carried through
// one checkout transaction. It is never persisted: it lives only for the
// duration of one checkout-address-payment pass and is consumed exactly once
// on a positive payment acknowledgment.
type CheckoutSelection struct {
	Token      string      `json:"token"`
	UserID     int64       `json:"-"`
	Entries    []CartEntry `json:"entries"`
	TotalPaise int64       `json:"total"`
	AddressID  int64       `json:"addressId,omitempty"`
}

// ProductIDs returns the product ids in the selection, in entry order.
func (s *CheckoutSelection) ProductIDs() []int64 {
	ids := make([]int64, len(s.Entries))
	for i, e := range s.Entries {
		ids[i] = e.Product.ID
	}
	return ids
}

// CheckoutService carries a user-chosen cart subset through the
// checkout-address-payment sequence.
type CheckoutService interface {
	// Begin snapshots the selected cart entries and their offer-aware total
	// into a new selection. An empty cart is refused with ErrCartEmpty; an
	// empty selection, or one matching no cart entry, with ErrEmptySelection.
	Begin(ctx context.Context, userID int64, selectedProductIDs []int64) (*CheckoutSelection, error)

	// Selection returns the live selection for the token, scoped to the user.
	Selection(ctx context.Context, userID int64, token string) (*CheckoutSelection, error)

	// SetAddress attaches the chosen delivery address to the selection.
	// An unset address id (0) is refused with ErrNoAddressSelected.
	SetAddress(ctx context.Context, userID int64, token string, addressID int64) (*CheckoutSelection, error)

	// Consume removes the selection after a completed payment. A consumed or
	// expired token yields ErrSelectionNotFound.
	Consume(ctx context.Context, userID int64, token string) (*CheckoutSelection, error)
}
