package storefront

import (
	"net/http"

	"freshcart/internal/domain"
	"freshcart/internal/handler"
)

// CheckoutHandler carries the checkout sequence: begin a selection, pick or
// add an address, then submit payment.
type CheckoutHandler struct {
	checkout  domain.CheckoutService
	addresses domain.AddressService
	payment   domain.PaymentService
}

func NewCheckoutHandler(checkout domain.CheckoutService, addresses domain.AddressService, payment domain.PaymentService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, addresses: addresses, payment: payment}
}

// Begin handles POST /checkout. The body names the cart lines being bought;
// checking out nothing is refused rather than silently buying everything.
func (h *CheckoutHandler) Begin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductIDs []int64 `json:"productIds"`
	}
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	selection, err := h.checkout.Begin(r.Context(), domain.UserIDFromContext(r.Context()), req.ProductIDs)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.JSON(w, http.StatusCreated, selection)
}

// Addresses handles GET /checkout/addresses. It returns the user's saved
// addresses with the default pre-selected, plus the live selection when a
// token is supplied.
func (h *CheckoutHandler) Addresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := domain.UserIDFromContext(ctx)

	addresses, err := h.addresses.List(ctx, userID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	resp := map[string]interface{}{
		"addresses":        addresses,
		"defaultAddressId": domain.DefaultAddressID(addresses),
	}

	if token := r.URL.Query().Get("token"); token != "" {
		selection, err := h.checkout.Selection(ctx, userID, token)
		if err != nil {
			handler.ErrorResponse(w, r, err)
			return
		}
		resp["selection"] = selection
	}

	handler.JSON(w, http.StatusOK, resp)
}

// AddAddress handles POST /checkout/addresses
func (h *CheckoutHandler) AddAddress(w http.ResponseWriter, r *http.Request) {
	var form domain.AddressForm
	if err := handler.DecodeJSON(r, &form); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	address, err := h.addresses.Add(r.Context(), domain.UserIDFromContext(r.Context()), form)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.JSON(w, http.StatusCreated, address)
}

// SetAddress handles POST /checkout/address
func (h *CheckoutHandler) SetAddress(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token     string `json:"token"`
		AddressID int64  `json:"addressId"`
	}
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	selection, err := h.checkout.SetAddress(r.Context(), domain.UserIDFromContext(r.Context()), req.Token, req.AddressID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.JSON(w, http.StatusOK, selection)
}

// Pay handles POST /checkout/payment
func (h *CheckoutHandler) Pay(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token         string               `json:"token"`
		PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
		Payment       *domain.CardDetails  `json:"payment"`
	}
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	session := domain.SessionFromContext(r.Context())
	result, err := h.payment.Submit(r.Context(), session, req.Token, req.PaymentMethod, req.Payment)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.JSON(w, http.StatusOK, result)
}
