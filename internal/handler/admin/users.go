package admin

import (
	"net/http"

	"freshcart/internal/handler"
	"freshcart/internal/service"
)

// UserHandler handles the back-office user listing.
type UserHandler struct {
	admin *service.AdminService
}

func NewUserHandler(admin *service.AdminService) *UserHandler {
	return &UserHandler{admin: admin}
}

// List handles GET /admin/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	payload, err := h.admin.ListUsers(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.Raw(w, http.StatusOK, payload)
}
