package routes

import (
	"freshcart/internal/router"
)

// RegisterAdminRoutes registers the back-office routes behind the dashboard
// gate. Only ADMIN passes the gate; MANAGER can log in but stops here. The
// report import takes the larger upload body limit, everything else the
// default.
func RegisterAdminRoutes(r *router.Router, deps AdminDeps) {
	gated := r.Group(deps.RequireAdmin)
	small := gated.Group(deps.BodyLimiter)

	// Orders
	small.Get("/admin/orders", deps.OrderHandler.List)
	small.Put("/admin/orders/{id}/status", deps.OrderHandler.UpdateStatus)
	small.Put("/admin/payments/{id}/approve", deps.OrderHandler.ApprovePayment)

	// Products
	small.Get("/admin/products", deps.ProductHandler.List)
	small.Post("/admin/products", deps.ProductHandler.Create)
	small.Put("/admin/products/{id}", deps.ProductHandler.Update)
	small.Delete("/admin/products/{id}", deps.ProductHandler.Delete)

	// Users
	small.Get("/admin/users", deps.UserHandler.List)

	// Medical report catalog
	small.Get("/admin/reports", deps.ReportHandler.List)
	small.Post("/admin/reports", deps.ReportHandler.Create)
	small.Put("/admin/reports/{id}", deps.ReportHandler.Update)
	small.Delete("/admin/reports/{id}", deps.ReportHandler.Delete)
	small.Get("/admin/reports/template", deps.ReportHandler.Template)
	gated.Post("/admin/reports/import", deps.ReportHandler.Import, deps.UploadLimiter)
}
