package storefront

import (
	"net/http"

	"freshcart/internal/domain"
	"freshcart/internal/handler"
	"freshcart/internal/middleware"
)

// AuthHandler handles login, signup, and logout for both the storefront and
// the back-office entrance. Logins set the fc_session cookie; the backend
// bearer token stays server-side in the session record.
type AuthHandler struct {
	sessions domain.SessionService
	secure   bool
}

func NewAuthHandler(sessions domain.SessionService, secure bool) *AuthHandler {
	return &AuthHandler{sessions: sessions, secure: secure}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		handler.ErrorResponse(w, r, domain.Invalid("auth.login", "Email and password are required"))
		return
	}

	session, sid, err := h.sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	middleware.SetSessionCookie(w, sid, h.secure)
	handler.JSON(w, http.StatusOK, sessionBody(session))
}

// AdminLogin handles POST /admin/login
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		handler.ErrorResponse(w, r, domain.Invalid("auth.adminLogin", "Email and password are required"))
		return
	}

	session, sid, err := h.sessions.AdminLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	middleware.SetSessionCookie(w, sid, h.secure)
	handler.JSON(w, http.StatusOK, sessionBody(session))
}

// Signup handles POST /signup. Registration does not log the user in.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		handler.ErrorResponse(w, r, domain.Invalid("auth.signup", "Name, email, and password are required"))
		return
	}

	if err := h.sessions.Signup(r.Context(), req.Name, req.Email, req.Password); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.JSON(w, http.StatusCreated, map[string]string{"message": "Account created. Please log in."})
}

// AdminSignup handles POST /admin/signup
func (h *AuthHandler) AdminSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		handler.ErrorResponse(w, r, domain.Invalid("auth.adminSignup", "Name, email, and password are required"))
		return
	}

	if err := h.sessions.AdminSignup(r.Context(), req.Name, req.Email, req.Password); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.JSON(w, http.StatusCreated, map[string]string{"message": "Account created. Please log in."})
}

// Logout handles POST /logout. Always succeeds, even with no session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Logout(r.Context(), cookie.Value); err != nil {
			handler.ErrorResponse(w, r, err)
			return
		}
	}

	middleware.ClearSessionCookie(w)
	handler.JSON(w, http.StatusOK, map[string]string{"message": "Logged out."})
}

// Me handles GET /me, returning the authenticated identity.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session := domain.SessionFromContext(r.Context())
	if session == nil {
		handler.UnauthorizedResponse(w, r)
		return
	}
	handler.JSON(w, http.StatusOK, sessionBody(session))
}

// sessionBody is the identity payload returned to the browser. The bearer
// token is deliberately omitted.
func sessionBody(session *domain.Session) map[string]interface{} {
	return map[string]interface{}{
		"id":    session.UserID,
		"name":  session.Name,
		"email": session.Email,
		"role":  session.Role,
	}
}
