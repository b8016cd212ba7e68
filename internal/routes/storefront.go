package routes

import (
	"freshcart/internal/router"
)

// RegisterStorefrontRoutes registers the customer-facing routes. Catalog and
// cart reads are public; cart mutations and the checkout flow require a
// session. All storefront bodies are small JSON, limited accordingly.
func RegisterStorefrontRoutes(r *router.Router, deps StorefrontDeps) {
	public := r.Group(deps.BodyLimiter)

	// Public catalog
	public.Get("/products", deps.ProductHandler.List)
	public.Get("/products/{id}", deps.ProductHandler.Get)
	public.Get("/products/categories", deps.ProductHandler.Categories)

	// Credential endpoints, throttled
	public.Post("/login", deps.AuthHandler.Login, deps.LoginLimiter)
	public.Post("/signup", deps.AuthHandler.Signup, deps.LoginLimiter)
	public.Post("/admin/login", deps.AuthHandler.AdminLogin, deps.LoginLimiter)
	public.Post("/admin/signup", deps.AuthHandler.AdminSignup, deps.LoginLimiter)

	// Cart reads are public; an anonymous viewer just sees an empty cart
	public.Get("/cart", deps.CartHandler.View)

	authed := public.Group(deps.RequireAuth)
	authed.Get("/me", deps.AuthHandler.Me)
	authed.Post("/logout", deps.AuthHandler.Logout)

	authed.Post("/cart/add", deps.CartHandler.Add)
	authed.Post("/cart/update", deps.CartHandler.Update)
	authed.Post("/cart/remove", deps.CartHandler.Remove)
	authed.Post("/cart/clear", deps.CartHandler.Clear)

	authed.Post("/checkout", deps.CheckoutHandler.Begin)
	authed.Get("/checkout/addresses", deps.CheckoutHandler.Addresses)
	authed.Post("/checkout/addresses", deps.CheckoutHandler.AddAddress)
	authed.Post("/checkout/address", deps.CheckoutHandler.SetAddress)
	authed.Post("/checkout/payment", deps.CheckoutHandler.Pay)
}
