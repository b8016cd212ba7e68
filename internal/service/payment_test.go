package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshcart/internal/api"
	"freshcart/internal/domain"
	"freshcart/internal/store"
)

type paymentFixture struct {
	api      *api.MockClient
	cart     *CartService
	checkout *CheckoutService
	payment  *PaymentService
	session  *domain.Session
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	client := api.NewMockClient()
	cart := NewCartService(store.NewMemoryStore(), nil)
	checkout := NewCheckoutService(cart, 30*time.Minute, nil)
	return &paymentFixture{
		api:      client,
		cart:     cart,
		checkout: checkout,
		payment:  NewPaymentService(client, cart, checkout, nil),
		session:  &domain.Session{UserID: 7, Name: "Asha", Email: "asha@example.com", Role: domain.RoleUser, Token: "tok-123"},
	}
}

// beginCheckout stocks the cart with rice, dal, and ghee, selects rice and
// dal, and attaches an address, leaving ghee behind.
func (f *paymentFixture) beginCheckout(t *testing.T) *domain.CheckoutSelection {
	t.Helper()
	ctx := context.Background()

	_, err := f.cart.AddToCart(ctx, 7, rice, 2)
	require.NoError(t, err)
	_, err = f.cart.AddToCart(ctx, 7, dal, 3)
	require.NoError(t, err)
	_, err = f.cart.AddToCart(ctx, 7, ghee, 1)
	require.NoError(t, err)

	selection, err := f.checkout.Begin(ctx, 7, []int64{rice.ID, dal.ID})
	require.NoError(t, err)
	_, err = f.checkout.SetAddress(ctx, 7, selection.Token, 12)
	require.NoError(t, err)
	return selection
}

func validCard() *domain.CardDetails {
	return &domain.CardDetails{
		CardHolder: "Asha Kumar",
		CardNumber: "4111111111111111",
		Expiry:     "2027-12",
		CVV:        "123",
	}
}

func TestPaymentService_OnlineSuccess(t *testing.T) {
	ctx := context.Background()
	f := newPaymentFixture(t)
	selection := f.beginCheckout(t)

	var captured api.PaymentRequest
	f.api.ProcessPaymentFunc = func(ctx context.Context, token string, req api.PaymentRequest) (*api.PaymentResponse, error) {
		captured = req
		assert.Equal(t, "tok-123", token)
		return &api.PaymentResponse{Status: domain.PaymentStatusSuccess, OrderID: "ord-1"}, nil
	}

	result, err := f.payment.Submit(ctx, f.session, selection.Token, domain.PaymentMethodOnline, validCard())
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusSuccess, result.Status)
	assert.Equal(t, "ord-1", result.OrderID)
	assert.Equal(t, int64(25000), result.TotalPaise)

	// Payload lines carry list prices; the offer-aware amount is the total.
	require.Len(t, captured.Items, 2)
	assert.Equal(t, int64(8000), captured.Items[0].Price)
	assert.Equal(t, int64(25000), captured.Total)
	assert.Equal(t, int64(7), captured.UserID)
	require.NotNil(t, captured.Payment)

	// Only the purchased lines leave the cart.
	entries, err := f.cart.Entries(ctx, 7)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ghee.ID, entries[0].Product.ID)

	// The selection is consumed.
	_, err = f.checkout.Selection(ctx, 7, selection.Token)
	assert.ErrorIs(t, err, domain.ErrSelectionNotFound)
}

func TestPaymentService_CODSendsNoCard(t *testing.T) {
	ctx := context.Background()
	f := newPaymentFixture(t)
	selection := f.beginCheckout(t)

	f.api.ProcessPaymentFunc = func(ctx context.Context, token string, req api.PaymentRequest) (*api.PaymentResponse, error) {
		assert.Equal(t, domain.PaymentMethodCOD, req.PaymentMethod)
		assert.Nil(t, req.Payment)
		return &api.PaymentResponse{Status: domain.PaymentStatusCODPending, OrderID: "ord-2"}, nil
	}

	// A card passed with COD is ignored, not validated.
	result, err := f.payment.Submit(ctx, f.session, selection.Token, domain.PaymentMethodCOD, &domain.CardDetails{CardNumber: "bogus"})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCODPending, result.Status)
}

func TestPaymentService_UPIReturnsBarcode(t *testing.T) {
	ctx := context.Background()
	f := newPaymentFixture(t)
	selection := f.beginCheckout(t)

	f.api.ProcessPaymentFunc = func(ctx context.Context, token string, req api.PaymentRequest) (*api.PaymentResponse, error) {
		assert.Nil(t, req.Payment)
		return &api.PaymentResponse{Status: domain.PaymentStatusUPIPending, OrderID: "ord-3", BarcodeBase64: "aGVsbG8="}, nil
	}

	result, err := f.payment.Submit(ctx, f.session, selection.Token, domain.PaymentMethodUPI, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusUPIPending, result.Status)
	assert.Equal(t, "aGVsbG8=", result.BarcodeBase64)
}

func TestPaymentService_DeclineLeavesCartAndSelection(t *testing.T) {
	ctx := context.Background()
	f := newPaymentFixture(t)
	selection := f.beginCheckout(t)

	f.api.ProcessPaymentFunc = func(ctx context.Context, token string, req api.PaymentRequest) (*api.PaymentResponse, error) {
		return nil, domain.PaymentFailed("api.ProcessPayment", "Card declined by issuer")
	}

	_, err := f.payment.Submit(ctx, f.session, selection.Token, domain.PaymentMethodOnline, validCard())
	require.Error(t, err)
	assert.Equal(t, domain.EPAYMENT, domain.ErrorCode(err))
	assert.Equal(t, "Card declined by issuer", domain.ErrorMessage(err))

	// Nothing moved: cart intact, selection still live for a retry.
	entries, err := f.cart.Entries(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	_, err = f.checkout.Selection(ctx, 7, selection.Token)
	require.NoError(t, err)
}

func TestPaymentService_FailedStatusLeavesCart(t *testing.T) {
	ctx := context.Background()
	f := newPaymentFixture(t)
	selection := f.beginCheckout(t)

	f.api.ProcessPaymentFunc = func(ctx context.Context, token string, req api.PaymentRequest) (*api.PaymentResponse, error) {
		return &api.PaymentResponse{Status: domain.PaymentStatusFailed, Message: "Insufficient funds"}, nil
	}

	_, err := f.payment.Submit(ctx, f.session, selection.Token, domain.PaymentMethodOnline, validCard())
	require.Error(t, err)
	assert.Equal(t, domain.EPAYMENT, domain.ErrorCode(err))
	assert.Equal(t, "Insufficient funds", domain.ErrorMessage(err))

	entries, err := f.cart.Entries(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestPaymentService_OnlineRequiresValidCard(t *testing.T) {
	ctx := context.Background()
	f := newPaymentFixture(t)
	selection := f.beginCheckout(t)

	tests := []struct {
		name string
		card *domain.CardDetails
	}{
		{"missing card", nil},
		{"short number", &domain.CardDetails{CardHolder: "Asha", CardNumber: "4111", Expiry: "2027-12", CVV: "123"}},
		{"bad expiry month", &domain.CardDetails{CardHolder: "Asha", CardNumber: "4111111111111111", Expiry: "2027-13", CVV: "123"}},
		{"bad expiry format", &domain.CardDetails{CardHolder: "Asha", CardNumber: "4111111111111111", Expiry: "12/27", CVV: "123"}},
		{"bad cvv", &domain.CardDetails{CardHolder: "Asha", CardNumber: "4111111111111111", Expiry: "2027-12", CVV: "12"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.payment.Submit(ctx, f.session, selection.Token, domain.PaymentMethodOnline, tt.card)
			require.Error(t, err)
			assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
		})
	}

	// No request ever reached the processor.
	assert.NotContains(t, f.api.Calls(), "ProcessPayment")
}

func TestPaymentService_RequiresAddress(t *testing.T) {
	ctx := context.Background()
	f := newPaymentFixture(t)

	_, err := f.cart.AddToCart(ctx, 7, rice, 1)
	require.NoError(t, err)
	selection, err := f.checkout.Begin(ctx, 7, []int64{rice.ID})
	require.NoError(t, err)

	_, err = f.payment.Submit(ctx, f.session, selection.Token, domain.PaymentMethodCOD, nil)
	assert.ErrorIs(t, err, domain.ErrNoAddressSelected)
}

func TestPaymentService_UnknownMethod(t *testing.T) {
	ctx := context.Background()
	f := newPaymentFixture(t)
	selection := f.beginCheckout(t)

	_, err := f.payment.Submit(ctx, f.session, selection.Token, domain.PaymentMethod("WALLET"), nil)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func TestPaymentService_ExpiredSelection(t *testing.T) {
	ctx := context.Background()
	f := newPaymentFixture(t)

	_, err := f.payment.Submit(ctx, f.session, "no-such-token", domain.PaymentMethodCOD, nil)
	assert.ErrorIs(t, err, domain.ErrSelectionNotFound)
}
