package middleware

import (
	"net/http"

	"freshcart/internal/domain"
)

type contextKey string

const (
	// SessionCookieName is the cookie carrying the opaque session id. The
	// backend bearer token itself never reaches the browser.
	SessionCookieName = "fc_session"
)

// WithSession resolves the session cookie into a domain.Session on the
// request context. It never blocks a request: an absent or dead session
// simply leaves the request anonymous for the gates downstream.
func WithSession(sessions domain.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := sessions.SessionByID(r.Context(), cookie.Value)
			if err != nil {
				// Dead cookie; clear it so the browser stops sending it.
				ClearSessionCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			ctx := domain.NewContextWithSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth admits only authenticated requests. Anonymous browser
// navigation is redirected to the login page; JSON callers get a 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if domain.SessionFromContext(r.Context()) == nil {
			if acceptsJSON(r) {
				respondUnauthorized(w, r)
				return
			}
			returnTo := r.URL.Path
			if r.URL.RawQuery != "" {
				returnTo += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, "/login?return_to="+returnTo, http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin is the dashboard gate. Anonymous requests go to the admin
// login; an authenticated non-ADMIN (including MANAGER, who can log in at
// the admin login but goes no further) gets a 403.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := domain.SessionFromContext(r.Context())
		if session == nil {
			if acceptsJSON(r) {
				respondUnauthorized(w, r)
				return
			}
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}

		if !session.IsAdmin() {
			respondForbidden(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SetSessionCookie writes the session cookie for a fresh login.
func SetSessionCookie(w http.ResponseWriter, sid string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	})
}
