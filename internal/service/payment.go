package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"

	"github.com/go-playground/validator/v10"

	"freshcart/internal/api"
	"freshcart/internal/domain"
)

// expiryMonthPattern accepts YYYY-MM with a real month, the value a month
// input submits.
var expiryMonthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// PaymentService submits a checkout selection to the backend payment
// processor. The cart changes only after a positive acknowledgment: a
// declined or errored submission leaves both the cart and the selection
// intact so the user can correct and retry. Nothing retries automatically.
type PaymentService struct {
	api      api.Client
	cart     domain.CartService
	checkout domain.CheckoutService
	validate *validator.Validate
	logger   *slog.Logger
}

var _ domain.PaymentService = (*PaymentService)(nil)

func NewPaymentService(client api.Client, cart domain.CartService, checkout domain.CheckoutService, logger *slog.Logger) *PaymentService {
	v := validator.New()

	// Card expiry must be YYYY-MM; the stdlib tags can't express the month range.
	_ = v.RegisterValidation("expiry_month", func(fl validator.FieldLevel) bool {
		return expiryMonthPattern.MatchString(fl.Field().String())
	})

	return &PaymentService{
		api:      client,
		cart:     cart,
		checkout: checkout,
		validate: v,
		logger:   logger,
	}
}

func (s *PaymentService) Submit(ctx context.Context, session *domain.Session, token string, method domain.PaymentMethod, card *domain.CardDetails) (*domain.PaymentResult, error) {
	const op = "payment.submit"

	if session == nil {
		return nil, domain.Unauthorized(op, "Please log in to complete checkout.")
	}

	selection, err := s.checkout.Selection(ctx, session.UserID, token)
	if err != nil {
		return nil, err
	}
	if selection.AddressID == 0 {
		return nil, domain.ErrNoAddressSelected
	}

	switch method {
	case domain.PaymentMethodOnline:
		if card == nil {
			return nil, domain.Invalid(op, "Card details are required for online payment.")
		}
		if err := s.validate.Struct(card); err != nil {
			return nil, domain.Invalid(op, cardValidationMessage(err))
		}
	case domain.PaymentMethodCOD, domain.PaymentMethodUPI:
		// No payment fields; the processor handles collection out of band.
		card = nil
	default:
		return nil, domain.Errorf(domain.EINVALID, op, "Unsupported payment method: %s", method)
	}

	req := api.PaymentRequest{
		Items:         paymentItems(selection.Entries),
		Total:         selection.TotalPaise,
		PaymentMethod: method,
		Payment:       card,
		UserID:        session.UserID,
	}

	resp, err := s.api.ProcessPayment(ctx, session.Token, req)
	if err != nil {
		return nil, err
	}

	// A 2xx body can still carry a negative verdict.
	if !resp.Status.Settled() {
		message := resp.Message
		if message == "" {
			message = "Payment failed. Please try again."
		}
		return nil, domain.PaymentFailed(op, message)
	}

	// Positive acknowledgment: consume the one-shot selection, then drop
	// exactly the purchased lines from the cart. Unselected lines stay.
	if _, err := s.checkout.Consume(ctx, session.UserID, token); err != nil && s.logger != nil {
		s.logger.Warn("checkout selection already consumed",
			slog.Int64("user_id", session.UserID),
			slog.String("error", err.Error()))
	}
	if err := s.cart.RemovePurchased(ctx, session.UserID, selection.ProductIDs()); err != nil && s.logger != nil {
		// The order exists; a cleanup failure must not fail the checkout.
		s.logger.Error("failed to remove purchased items from cart",
			slog.Int64("user_id", session.UserID),
			slog.String("error", err.Error()))
	}

	if s.logger != nil {
		s.logger.Info("payment settled",
			slog.Int64("user_id", session.UserID),
			slog.String("method", string(method)),
			slog.String("status", string(resp.Status)),
			slog.Int64("total_paise", selection.TotalPaise))
	}

	return &domain.PaymentResult{
		OrderID:       resp.OrderID,
		Status:        resp.Status,
		Method:        method,
		TotalPaise:    selection.TotalPaise,
		BarcodeBase64: resp.BarcodeBase64,
	}, nil
}

// paymentItems builds the processor payload lines. Per-line price is the
// list price snapshot; the offer-aware amount travels in the total.
func paymentItems(entries []domain.CartEntry) []api.PaymentItem {
	items := make([]api.PaymentItem, len(entries))
	for i, e := range entries {
		items[i] = api.PaymentItem{
			ProductID: e.Product.ID,
			Qty:       e.Qty,
			Price:     e.Product.PricePaise,
		}
	}
	return items
}

func cardValidationMessage(err error) string {
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) || len(fields) == 0 {
		return "Card details are invalid."
	}
	switch fields[0].Field() {
	case "CardHolder":
		return "Cardholder name is required."
	case "CardNumber":
		return "Card number must be 13 to 19 digits."
	case "Expiry":
		return "Expiry must be in YYYY-MM format."
	case "CVV":
		return "CVV must be 3 digits."
	}
	return "Card details are invalid."
}
