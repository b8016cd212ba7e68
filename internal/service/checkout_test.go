package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshcart/internal/domain"
	"freshcart/internal/store"
)

func newCheckoutFixture(t *testing.T) (*CartService, *CheckoutService) {
	t.Helper()
	cart := NewCartService(store.NewMemoryStore(), nil)
	checkout := NewCheckoutService(cart, 30*time.Minute, nil)
	return cart, checkout
}

func TestCheckoutService_Begin(t *testing.T) {
	ctx := context.Background()
	cart, checkout := newCheckoutFixture(t)

	_, err := cart.AddToCart(ctx, 7, rice, 2)
	require.NoError(t, err)
	_, err = cart.AddToCart(ctx, 7, dal, 3)
	require.NoError(t, err)
	_, err = cart.AddToCart(ctx, 7, ghee, 1)
	require.NoError(t, err)

	selection, err := checkout.Begin(ctx, 7, []int64{rice.ID, dal.ID})
	require.NoError(t, err)
	assert.NotEmpty(t, selection.Token)
	require.Len(t, selection.Entries, 2)

	// 2 x 8000 + 3 x 3000; the unselected ghee line contributes nothing.
	assert.Equal(t, int64(25000), selection.TotalPaise)
	assert.Zero(t, selection.AddressID)
}

func TestCheckoutService_BeginEmptySelection(t *testing.T) {
	ctx := context.Background()
	cart, checkout := newCheckoutFixture(t)

	_, err := cart.AddToCart(ctx, 7, rice, 1)
	require.NoError(t, err)

	_, err = checkout.Begin(ctx, 7, nil)
	assert.ErrorIs(t, err, domain.ErrEmptySelection)

	// Ids that match nothing in the cart are as good as no selection.
	_, err = checkout.Begin(ctx, 7, []int64{98, 99})
	assert.ErrorIs(t, err, domain.ErrEmptySelection)
}

func TestCheckoutService_BeginEmptyCart(t *testing.T) {
	ctx := context.Background()
	_, checkout := newCheckoutFixture(t)

	_, err := checkout.Begin(ctx, 7, []int64{rice.ID})
	assert.ErrorIs(t, err, domain.ErrCartEmpty)
}

func TestCheckoutService_SelectionScopedToUser(t *testing.T) {
	ctx := context.Background()
	cart, checkout := newCheckoutFixture(t)

	_, err := cart.AddToCart(ctx, 7, rice, 1)
	require.NoError(t, err)

	selection, err := checkout.Begin(ctx, 7, []int64{rice.ID})
	require.NoError(t, err)

	_, err = checkout.Selection(ctx, 8, selection.Token)
	assert.ErrorIs(t, err, domain.ErrSelectionNotFound)

	got, err := checkout.Selection(ctx, 7, selection.Token)
	require.NoError(t, err)
	assert.Equal(t, selection.Token, got.Token)
}

func TestCheckoutService_SetAddress(t *testing.T) {
	ctx := context.Background()
	cart, checkout := newCheckoutFixture(t)

	_, err := cart.AddToCart(ctx, 7, rice, 1)
	require.NoError(t, err)
	selection, err := checkout.Begin(ctx, 7, []int64{rice.ID})
	require.NoError(t, err)

	_, err = checkout.SetAddress(ctx, 7, selection.Token, 0)
	assert.ErrorIs(t, err, domain.ErrNoAddressSelected)

	updated, err := checkout.SetAddress(ctx, 7, selection.Token, 12)
	require.NoError(t, err)
	assert.Equal(t, int64(12), updated.AddressID)

	// The address sticks for later reads of the same selection.
	got, err := checkout.Selection(ctx, 7, selection.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.AddressID)
}

func TestCheckoutService_ConsumeIsOneShot(t *testing.T) {
	ctx := context.Background()
	cart, checkout := newCheckoutFixture(t)

	_, err := cart.AddToCart(ctx, 7, rice, 1)
	require.NoError(t, err)
	selection, err := checkout.Begin(ctx, 7, []int64{rice.ID})
	require.NoError(t, err)

	got, err := checkout.Consume(ctx, 7, selection.Token)
	require.NoError(t, err)
	assert.Equal(t, selection.Token, got.Token)

	_, err = checkout.Consume(ctx, 7, selection.Token)
	assert.ErrorIs(t, err, domain.ErrSelectionNotFound)

	_, err = checkout.Selection(ctx, 7, selection.Token)
	assert.ErrorIs(t, err, domain.ErrSelectionNotFound)
}

func TestCheckoutService_SelectionExpires(t *testing.T) {
	ctx := context.Background()
	cart := NewCartService(store.NewMemoryStore(), nil)
	checkout := NewCheckoutService(cart, 10*time.Minute, nil)

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	checkout.now = func() time.Time { return current }

	_, err := cart.AddToCart(ctx, 7, rice, 1)
	require.NoError(t, err)
	selection, err := checkout.Begin(ctx, 7, []int64{rice.ID})
	require.NoError(t, err)

	current = current.Add(5 * time.Minute)
	_, err = checkout.Selection(ctx, 7, selection.Token)
	require.NoError(t, err)

	current = current.Add(6 * time.Minute)
	_, err = checkout.Selection(ctx, 7, selection.Token)
	assert.ErrorIs(t, err, domain.ErrSelectionNotFound)
}

func TestCheckoutService_SnapshotUnaffectedByLaterCartEdits(t *testing.T) {
	ctx := context.Background()
	cart, checkout := newCheckoutFixture(t)

	_, err := cart.AddToCart(ctx, 7, rice, 2)
	require.NoError(t, err)
	selection, err := checkout.Begin(ctx, 7, []int64{rice.ID})
	require.NoError(t, err)

	// Cart edits after Begin do not rewrite the in-flight selection.
	_, err = cart.UpdateQty(ctx, 7, rice.ID, 9)
	require.NoError(t, err)

	got, err := checkout.Selection(ctx, 7, selection.Token)
	require.NoError(t, err)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, int32(2), got.Entries[0].Qty)
	assert.Equal(t, int64(16000), got.TotalPaise)
}
