package admin

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"freshcart/internal/domain"
	"freshcart/internal/handler"
	"freshcart/internal/service"
)

// ProductHandler handles the back-office product routes. Product payloads
// are the backend's schema, forwarded opaquely.
type ProductHandler struct {
	admin *service.AdminService
}

func NewProductHandler(admin *service.AdminService) *ProductHandler {
	return &ProductHandler{admin: admin}
}

// List handles GET /admin/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	payload, err := h.admin.ListProducts(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.Raw(w, http.StatusOK, payload)
}

// Create handles POST /admin/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	payload, err := h.admin.CreateProduct(r.Context(), body)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.Raw(w, http.StatusCreated, payload)
}

// Update handles PUT /admin/products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		handler.ErrorResponse(w, r, domain.Invalid("admin.updateProduct", "Invalid product id"))
		return
	}

	body, err := readBody(r)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	payload, err := h.admin.UpdateProduct(r.Context(), id, body)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.Raw(w, http.StatusOK, payload)
}

// Delete handles DELETE /admin/products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		handler.ErrorResponse(w, r, domain.Invalid("admin.deleteProduct", "Invalid product id"))
		return
	}

	if err := h.admin.DeleteProduct(r.Context(), id); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// readBody reads a request body as an opaque JSON document.
func readBody(r *http.Request) (json.RawMessage, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, domain.Invalid("", "Invalid request body")
	}
	if !json.Valid(body) {
		return nil, domain.Invalid("", "Invalid request body")
	}
	return body, nil
}
