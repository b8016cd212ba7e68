// Package domain provides core business types and context helpers for the
// freshcart storefront.
//
// Context helpers centralize request-scoped identity access so the session
// is injected explicitly rather than read from ambient globals.
package domain

import "context"

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey int

const (
	// sessionContextKey stores the authenticated session in context.
	sessionContextKey contextKey = iota
)

// NewContextWithSession returns a new context with the session attached.
func NewContextWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

// SessionFromContext retrieves the session from context.
// Returns nil if the request is anonymous.
func SessionFromContext(ctx context.Context) *Session {
	session, _ := ctx.Value(sessionContextKey).(*Session)
	return session
}

// UserIDFromContext retrieves the authenticated user id from context.
// Returns 0 if the request is anonymous.
func UserIDFromContext(ctx context.Context) int64 {
	if session := SessionFromContext(ctx); session != nil {
		return session.UserID
	}
	return 0
}
