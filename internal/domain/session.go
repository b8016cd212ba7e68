package domain

import "context"

// Role is the account role issued by the backend at login.
type Role string

const (
	RoleUser    Role = "USER"
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
)

// Session is the authenticated identity and bearer credential for one login.
// It is persisted under a crypto-random session id referenced by the
// fc_session cookie and destroyed on logout.
type Session struct {
	UserID int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Token  string `json:"token"`
}

// IsAdmin reports whether the session may pass the admin dashboard gate.
// Only ADMIN passes; MANAGER authenticates at the admin login but is not
// granted dashboard access.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// SessionService authenticates users against the backend and manages the
// persisted session records referenced by the fc_session cookie.
type SessionService interface {
	// Login authenticates a customer and returns the session with its new id.
	Login(ctx context.Context, email, password string) (*Session, string, error)

	// AdminLogin authenticates a back-office account. ADMIN and MANAGER roles
	// may log in here; any other role is refused.
	AdminLogin(ctx context.Context, email, password string) (*Session, string, error)

	// Signup registers a customer account. The user logs in separately.
	Signup(ctx context.Context, name, email, password string) error

	// AdminSignup registers a back-office account.
	AdminSignup(ctx context.Context, name, email, password string) error

	// SessionByID loads the session for a cookie's session id.
	SessionByID(ctx context.Context, sid string) (*Session, error)

	// Logout destroys the session record. Idempotent.
	Logout(ctx context.Context, sid string) error
}
