package storefront

import (
	"net/http"

	"freshcart/internal/domain"
	"freshcart/internal/handler"
)

// CartHandler handles the cart routes. Reads are open to anonymous users
// (who always see an empty cart); mutations sit behind the auth gate.
type CartHandler struct {
	cart     domain.CartService
	products domain.ProductService
}

func NewCartHandler(cart domain.CartService, products domain.ProductService) *CartHandler {
	return &CartHandler{cart: cart, products: products}
}

// View handles GET /cart
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	summary, err := h.cart.Summary(r.Context(), domain.UserIDFromContext(r.Context()))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.JSON(w, http.StatusOK, summary)
}

// Add handles POST /cart/add. The product is snapshotted from the catalog
// at this moment; later catalog changes don't rewrite the cart line.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID int64 `json:"productId"`
		Qty       int32 `json:"qty"`
	}
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if req.Qty == 0 {
		req.Qty = 1
	}

	product, err := h.products.Get(r.Context(), req.ProductID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	summary, err := h.cart.AddToCart(r.Context(), domain.UserIDFromContext(r.Context()), *product, req.Qty)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.JSON(w, http.StatusOK, summary)
}

// Update handles POST /cart/update
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID int64 `json:"productId"`
		Qty       int32 `json:"qty"`
	}
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	summary, err := h.cart.UpdateQty(r.Context(), domain.UserIDFromContext(r.Context()), req.ProductID, req.Qty)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.JSON(w, http.StatusOK, summary)
}

// Remove handles POST /cart/remove
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID int64 `json:"productId"`
	}
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	summary, err := h.cart.RemoveItem(r.Context(), domain.UserIDFromContext(r.Context()), req.ProductID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.JSON(w, http.StatusOK, summary)
}

// Clear handles POST /cart/clear
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID := domain.UserIDFromContext(r.Context())
	if err := h.cart.ClearCart(r.Context(), userID); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	summary, err := h.cart.Summary(r.Context(), userID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.JSON(w, http.StatusOK, summary)
}
