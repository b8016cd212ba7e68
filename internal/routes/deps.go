// Package routes wires handlers onto the router, grouping them by the gate
// they sit behind: public, authenticated, and admin.
package routes

import (
	"freshcart/internal/handler/admin"
	"freshcart/internal/handler/storefront"
	"freshcart/internal/router"
)

// StorefrontDeps contains dependencies for the customer-facing routes
type StorefrontDeps struct {
	// Products (list, detail, categories)
	ProductHandler *storefront.ProductHandler

	// Cart
	CartHandler *storefront.CartHandler

	// Checkout (selection, addresses, payment)
	CheckoutHandler *storefront.CheckoutHandler

	// Auth (login, signup, admin login, logout)
	AuthHandler *storefront.AuthHandler

	// RequireAuth guards the cart mutations and the checkout flow
	RequireAuth router.Middleware

	// LoginLimiter throttles the credential endpoints
	LoginLimiter router.Middleware

	// BodyLimiter caps request bodies at the default size
	BodyLimiter router.Middleware
}

// AdminDeps contains dependencies for the back-office routes
type AdminDeps struct {
	OrderHandler   *admin.OrderHandler
	ProductHandler *admin.ProductHandler
	UserHandler    *admin.UserHandler
	ReportHandler  *admin.ReportHandler

	// RequireAdmin is the dashboard gate (ADMIN only)
	RequireAdmin router.Middleware

	// BodyLimiter caps request bodies at the default size
	BodyLimiter router.Middleware

	// UploadLimiter allows the larger report import bodies
	UploadLimiter router.Middleware
}
