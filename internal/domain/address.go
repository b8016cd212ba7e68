package domain

import "context"

// AddressType classifies a delivery address.
type AddressType string

const (
	AddressTypeHome  AddressType = "HOME"
	AddressTypeWork  AddressType = "WORK"
	AddressTypeOther AddressType = "OTHER"
)

// Address is a delivery address owned by a user. At most one address per
// user carries IsDefault; the backend enforces that, the storefront only
// reflects it.
type Address struct {
	ID          int64       `json:"id"`
	Street      string      `json:"street"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	PostalCode  string      `json:"postalCode"`
	Country     string      `json:"country"`
	Landmark    string      `json:"landmark,omitempty"`
	PhoneNumber string      `json:"phoneNumber"`
	AddressType AddressType `json:"addressType"`
	IsDefault   bool        `json:"isDefault"`
}

// AddressForm is the payload for creating a delivery address.
type AddressForm struct {
	Street      string      `json:"street" validate:"required"`
	City        string      `json:"city" validate:"required"`
	State       string      `json:"state" validate:"required"`
	PostalCode  string      `json:"postalCode" validate:"required"`
	Country     string      `json:"country" validate:"required"`
	Landmark    string      `json:"landmark,omitempty"`
	PhoneNumber string      `json:"phoneNumber" validate:"required"`
	AddressType AddressType `json:"addressType" validate:"oneof=HOME WORK OTHER"`
	IsDefault   bool        `json:"isDefault"`
}

// AddressService resolves which delivery address a checkout uses.
type AddressService interface {
	// List returns all addresses owned by the user.
	List(ctx context.Context, userID int64) ([]Address, error)

	// Add validates and submits a new address, returning the stored record.
	Add(ctx context.Context, userID int64, form AddressForm) (*Address, error)
}

// DefaultAddressID returns the id of the default address in the list, or 0
// when none is marked default. Used to pre-select on the address step.
func DefaultAddressID(addresses []Address) int64 {
	for _, a := range addresses {
		if a.IsDefault {
			return a.ID
		}
	}
	return 0
}
