package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"freshcart/internal/domain"
)

// CheckoutService holds in-flight checkout selections in memory, keyed by a
// random token. Selections are deliberately not persisted: they expire after
// the configured TTL and are consumed exactly once on a completed payment, so
// a restart simply sends the user back to their (persisted) cart.
type CheckoutService struct {
	cart   domain.CartService
	ttl    time.Duration
	logger *slog.Logger

	// now is swappable for expiry tests.
	now func() time.Time

	mu         sync.Mutex
	selections map[string]*selectionRecord
}

type selectionRecord struct {
	selection domain.CheckoutSelection
	expiresAt time.Time
}

var _ domain.CheckoutService = (*CheckoutService)(nil)

func NewCheckoutService(cart domain.CartService, ttl time.Duration, logger *slog.Logger) *CheckoutService {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &CheckoutService{
		cart:       cart,
		ttl:        ttl,
		logger:     logger,
		now:        time.Now,
		selections: make(map[string]*selectionRecord),
	}
}

func (s *CheckoutService) Begin(ctx context.Context, userID int64, selectedProductIDs []int64) (*domain.CheckoutSelection, error) {
	if len(selectedProductIDs) == 0 {
		return nil, domain.ErrEmptySelection
	}

	entries, err := s.cart.Entries(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, domain.ErrCartEmpty
	}

	wanted := make(map[int64]bool, len(selectedProductIDs))
	for _, id := range selectedProductIDs {
		wanted[id] = true
	}

	var selected []domain.CartEntry
	var total int64
	for _, e := range entries {
		if wanted[e.Product.ID] {
			selected = append(selected, e)
			total += e.LineTotal()
		}
	}
	if len(selected) == 0 {
		return nil, domain.ErrEmptySelection
	}

	selection := domain.CheckoutSelection{
		Token:      uuid.NewString(),
		UserID:     userID,
		Entries:    selected,
		TotalPaise: total,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeExpiredLocked()
	s.selections[selection.Token] = &selectionRecord{
		selection: selection,
		expiresAt: s.now().Add(s.ttl),
	}

	out := selection
	return &out, nil
}

func (s *CheckoutService) Selection(ctx context.Context, userID int64, token string) (*domain.CheckoutSelection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.lookupLocked(userID, token)
	if err != nil {
		return nil, err
	}
	out := rec.selection
	return &out, nil
}

func (s *CheckoutService) SetAddress(ctx context.Context, userID int64, token string, addressID int64) (*domain.CheckoutSelection, error) {
	if addressID == 0 {
		return nil, domain.ErrNoAddressSelected
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.lookupLocked(userID, token)
	if err != nil {
		return nil, err
	}
	rec.selection.AddressID = addressID

	out := rec.selection
	return &out, nil
}

func (s *CheckoutService) Consume(ctx context.Context, userID int64, token string) (*domain.CheckoutSelection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.lookupLocked(userID, token)
	if err != nil {
		return nil, err
	}
	delete(s.selections, token)

	out := rec.selection
	return &out, nil
}

// lookupLocked resolves a token to a live selection owned by the user. The
// caller holds s.mu. A foreign user's token reads the same as a missing one.
func (s *CheckoutService) lookupLocked(userID int64, token string) (*selectionRecord, error) {
	rec, ok := s.selections[token]
	if !ok {
		return nil, domain.ErrSelectionNotFound
	}
	if s.now().After(rec.expiresAt) {
		delete(s.selections, token)
		return nil, domain.ErrSelectionNotFound
	}
	if rec.selection.UserID != userID {
		return nil, domain.ErrSelectionNotFound
	}
	return rec, nil
}

func (s *CheckoutService) purgeExpiredLocked() {
	now := s.now()
	for token, rec := range s.selections {
		if now.After(rec.expiresAt) {
			delete(s.selections, token)
		}
	}
}
