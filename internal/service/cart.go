// Package service implements the domain service interfaces: carts and
// sessions on the slot store, checkout selections in memory, and catalog,
// address, and payment operations against the backend API.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"freshcart/internal/domain"
	"freshcart/internal/store"
)

// CartService persists one cart per user in the slot store under "cart:<id>".
// Product details are snapshotted into entries at add time; totals always use
// the effective (offer-aware) unit price.
type CartService struct {
	store  store.Store
	logger *slog.Logger
}

var _ domain.CartService = (*CartService)(nil)

func NewCartService(st store.Store, logger *slog.Logger) *CartService {
	return &CartService{store: st, logger: logger}
}

func cartKey(userID int64) string {
	return fmt.Sprintf("cart:%d", userID)
}

func (s *CartService) Entries(ctx context.Context, userID int64) ([]domain.CartEntry, error) {
	return s.load(ctx, userID)
}

func (s *CartService) AddToCart(ctx context.Context, userID int64, product domain.Product, qty int32) (*domain.CartSummary, error) {
	const op = "cart.add"

	if userID == 0 {
		return nil, domain.Unauthorized(op, "Please log in to modify your cart.")
	}
	if qty < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	entries, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range entries {
		if entries[i].Product.ID == product.ID {
			entries[i].Qty += qty
			found = true
			break
		}
	}
	if !found {
		entries = append(entries, domain.CartEntry{Product: product, Qty: qty})
	}

	if err := s.save(ctx, userID, entries); err != nil {
		return nil, err
	}
	return summarize(entries), nil
}

func (s *CartService) UpdateQty(ctx context.Context, userID int64, productID int64, qty int32) (*domain.CartSummary, error) {
	const op = "cart.updateQty"

	if userID == 0 {
		return nil, domain.Unauthorized(op, "Please log in to modify your cart.")
	}

	// Quantity never drops below 1 here. Removing a line is a separate,
	// explicit action so a stray decrement can't silently empty the cart.
	if qty < 1 {
		qty = 1
	}

	entries, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range entries {
		if entries[i].Product.ID == productID {
			entries[i].Qty = qty
			found = true
			break
		}
	}
	if !found {
		return nil, domain.NotFound(op, "cart item", fmt.Sprintf("%d", productID))
	}

	if err := s.save(ctx, userID, entries); err != nil {
		return nil, err
	}
	return summarize(entries), nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID int64, productID int64) (*domain.CartSummary, error) {
	const op = "cart.remove"

	if userID == 0 {
		return nil, domain.Unauthorized(op, "Please log in to modify your cart.")
	}

	entries, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.Product.ID != productID {
			kept = append(kept, e)
		}
	}

	if err := s.save(ctx, userID, kept); err != nil {
		return nil, err
	}
	return summarize(kept), nil
}

func (s *CartService) RemovePurchased(ctx context.Context, userID int64, productIDs []int64) error {
	const op = "cart.removePurchased"

	if userID == 0 {
		return domain.Unauthorized(op, "Please log in to modify your cart.")
	}

	purchased := make(map[int64]bool, len(productIDs))
	for _, id := range productIDs {
		purchased[id] = true
	}

	entries, err := s.load(ctx, userID)
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if !purchased[e.Product.ID] {
			kept = append(kept, e)
		}
	}

	return s.save(ctx, userID, kept)
}

func (s *CartService) ClearCart(ctx context.Context, userID int64) error {
	const op = "cart.clear"

	if userID == 0 {
		return domain.Unauthorized(op, "Please log in to modify your cart.")
	}
	if err := s.store.Delete(ctx, cartKey(userID)); err != nil {
		return domain.Internal(err, op, "Failed to clear cart.")
	}
	return nil
}

func (s *CartService) Summary(ctx context.Context, userID int64) (*domain.CartSummary, error) {
	entries, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return summarize(entries), nil
}

// load reads the user's cart slot. A missing slot is an empty cart; a slot
// that no longer unmarshals is discarded rather than wedging the user.
func (s *CartService) load(ctx context.Context, userID int64) ([]domain.CartEntry, error) {
	const op = "cart.load"

	if userID == 0 {
		return []domain.CartEntry{}, nil
	}

	raw, err := s.store.Get(ctx, cartKey(userID))
	if errors.Is(err, store.ErrSlotNotFound) {
		return []domain.CartEntry{}, nil
	}
	if err != nil {
		return nil, domain.Internal(err, op, "Failed to load cart.")
	}

	var entries []domain.CartEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		if s.logger != nil {
			s.logger.Warn("discarding unreadable cart slot",
				slog.Int64("user_id", userID),
				slog.String("error", err.Error()))
		}
		return []domain.CartEntry{}, nil
	}
	return entries, nil
}

func (s *CartService) save(ctx context.Context, userID int64, entries []domain.CartEntry) error {
	const op = "cart.save"

	raw, err := json.Marshal(entries)
	if err != nil {
		return domain.Internal(err, op, "Failed to save cart.")
	}
	if err := s.store.Put(ctx, cartKey(userID), raw); err != nil {
		return domain.Internal(err, op, "Failed to save cart.")
	}
	return nil
}

func summarize(entries []domain.CartEntry) *domain.CartSummary {
	if entries == nil {
		// An emptied cart still serializes as "entries": [].
		entries = []domain.CartEntry{}
	}
	summary := &domain.CartSummary{Entries: entries}
	for _, e := range entries {
		summary.TotalPaise += e.LineTotal()
		summary.ItemCount += e.Qty
	}
	return summary
}
