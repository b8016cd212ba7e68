// Package storefront contains the customer-facing HTTP handlers: catalog,
// cart, checkout, and auth.
package storefront

import (
	"net/http"
	"strconv"

	"freshcart/internal/domain"
	"freshcart/internal/handler"
)

// ProductHandler serves the public catalog.
type ProductHandler struct {
	products domain.ProductService
}

func NewProductHandler(products domain.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles GET /products. An optional ?category= filters the listing.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.JSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

// Get handles GET /products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		handler.ErrorResponse(w, r, domain.Invalid("product.get", "Invalid product id"))
		return
	}

	product, err := h.products.Get(r.Context(), id)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.JSON(w, http.StatusOK, product)
}

// Categories handles GET /products/categories
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.products.Categories(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.JSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}
