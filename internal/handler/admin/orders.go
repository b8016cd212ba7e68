// Package admin contains the back-office HTTP handlers. They run behind the
// admin dashboard gate and forward to the backend, which owns all admin data.
package admin

import (
	"net/http"
	"strconv"

	"freshcart/internal/domain"
	"freshcart/internal/handler"
	"freshcart/internal/service"
)

// OrderHandler handles the back-office order routes.
type OrderHandler struct {
	admin *service.AdminService
}

func NewOrderHandler(admin *service.AdminService) *OrderHandler {
	return &OrderHandler{admin: admin}
}

// List handles GET /admin/orders
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	payload, err := h.admin.ListOrders(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.Raw(w, http.StatusOK, payload)
}

// UpdateStatus handles PUT /admin/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		handler.ErrorResponse(w, r, domain.Invalid("admin.updateOrderStatus", "Invalid order id"))
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	payload, err := h.admin.UpdateOrderStatus(r.Context(), id, req.Status)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.Raw(w, http.StatusOK, payload)
}

// ApprovePayment handles PUT /admin/payments/{id}/approve
func (h *OrderHandler) ApprovePayment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		handler.ErrorResponse(w, r, domain.Invalid("admin.approvePayment", "Invalid payment id"))
		return
	}

	payload, err := h.admin.ApprovePayment(r.Context(), id)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.Raw(w, http.StatusOK, payload)
}
