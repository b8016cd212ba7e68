package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"

	"freshcart/internal/api"
	"freshcart/internal/domain"
	"freshcart/internal/store"
)

// SessionService exchanges credentials with the backend and persists the
// resulting identity+token in the slot store under "session:<sid>". The sid
// travels in the fc_session cookie; the bearer token never leaves the server.
type SessionService struct {
	api    api.Client
	store  store.Store
	logger *slog.Logger
}

var _ domain.SessionService = (*SessionService)(nil)

func NewSessionService(client api.Client, st store.Store, logger *slog.Logger) *SessionService {
	return &SessionService{api: client, store: st, logger: logger}
}

func sessionKey(sid string) string {
	return "session:" + sid
}

func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.Session, string, error) {
	const op = "session.login"

	result, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, "", err
	}
	return s.create(ctx, op, result)
}

func (s *SessionService) AdminLogin(ctx context.Context, email, password string) (*domain.Session, string, error) {
	const op = "session.adminLogin"

	result, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	// Both back-office roles may sign in here. The dashboard gate separately
	// admits ADMIN only, so a MANAGER login succeeds but stops at the gate.
	if result.Role != domain.RoleAdmin && result.Role != domain.RoleManager {
		return nil, "", domain.Forbidden(op, "This account does not have back-office access.")
	}
	return s.create(ctx, op, result)
}

func (s *SessionService) Signup(ctx context.Context, name, email, password string) error {
	return s.api.Signup(ctx, api.SignupParams{Name: name, Email: email, Password: password})
}

func (s *SessionService) AdminSignup(ctx context.Context, name, email, password string) error {
	return s.api.AdminSignup(ctx, api.SignupParams{Name: name, Email: email, Password: password})
}

func (s *SessionService) SessionByID(ctx context.Context, sid string) (*domain.Session, error) {
	const op = "session.byID"

	if sid == "" {
		return nil, domain.Unauthorized(op, "Please log in.")
	}

	raw, err := s.store.Get(ctx, sessionKey(sid))
	if errors.Is(err, store.ErrSlotNotFound) {
		return nil, domain.Unauthorized(op, "Session expired. Please log in again.")
	}
	if err != nil {
		return nil, domain.Internal(err, op, "Failed to load session.")
	}

	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		// An unreadable record is dead weight; drop it and force a re-login.
		_ = s.store.Delete(ctx, sessionKey(sid))
		return nil, domain.Unauthorized(op, "Session expired. Please log in again.")
	}
	return &session, nil
}

func (s *SessionService) Logout(ctx context.Context, sid string) error {
	const op = "session.logout"

	if sid == "" {
		return nil
	}
	if err := s.store.Delete(ctx, sessionKey(sid)); err != nil {
		return domain.Internal(err, op, "Failed to log out.")
	}
	return nil
}

func (s *SessionService) create(ctx context.Context, op string, result *api.LoginResult) (*domain.Session, string, error) {
	session := &domain.Session{
		UserID: result.ID,
		Name:   result.Name,
		Email:  result.Email,
		Role:   result.Role,
		Token:  result.Token,
	}

	sid, err := newSessionID()
	if err != nil {
		return nil, "", domain.Internal(err, op, "Failed to create session.")
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return nil, "", domain.Internal(err, op, "Failed to create session.")
	}
	if err := s.store.Put(ctx, sessionKey(sid), raw); err != nil {
		return nil, "", domain.Internal(err, op, "Failed to create session.")
	}

	if s.logger != nil {
		s.logger.Info("session created",
			slog.Int64("user_id", session.UserID),
			slog.String("role", string(session.Role)))
	}
	return session, sid, nil
}

// newSessionID returns a 256-bit random hex id.
func newSessionID() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
