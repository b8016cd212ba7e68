package domain

import "context"

// PaymentMethod selects the checkout payment branch.
type PaymentMethod string

const (
	PaymentMethodOnline PaymentMethod = "ONLINE"
	PaymentMethodCOD    PaymentMethod = "COD"
	PaymentMethodUPI    PaymentMethod = "UPI"
)

// PaymentStatus values returned by the backend payment processor.
// SUCCESS settles immediately; COD_PENDING and UPI_PENDING await external
// confirmation but still complete the storefront checkout.
type PaymentStatus string

const (
	PaymentStatusSuccess    PaymentStatus = "SUCCESS"
	PaymentStatusCODPending PaymentStatus = "COD_PENDING"
	PaymentStatusUPIPending PaymentStatus = "UPI_PENDING"
	PaymentStatusFailed     PaymentStatus = "FAILED"
)

// Settled reports whether the status completes the checkout: purchased items
// leave the cart only for settled statuses.
func (s PaymentStatus) Settled() bool {
	switch s {
	case PaymentStatusSuccess, PaymentStatusCODPending, PaymentStatusUPIPending:
		return true
	}
	return false
}

// CardDetails are the client-side payment fields required for ONLINE.
// COD and UPI require no payment fields. Expiry is YYYY-MM, as submitted
// by a month input.
type CardDetails struct {
	CardHolder string `json:"cardHolder" validate:"required"`
	CardNumber string `json:"cardNumber" validate:"required,numeric,min=13,max=19"`
	Expiry     string `json:"expiry" validate:"required,expiry_month"`
	CVV        string `json:"cvv" validate:"required,numeric,len=3"`
}

// PaymentResult is the outcome of a settled payment submission.
type PaymentResult struct {
	OrderID       string        `json:"orderId,omitempty"`
	Status        PaymentStatus `json:"status"`
	Method        PaymentMethod `json:"paymentMethod"`
	TotalPaise    int64         `json:"total"`
	BarcodeBase64 string        `json:"barcodeBase64,omitempty"`
}

// PaymentService submits an order+payment payload to the backend and, on a
// positive acknowledgment, removes exactly the purchased entries from the
// cart. A failed or errored submission leaves cart and selection untouched
// so the user can retry; no automatic retry is performed.
type PaymentService interface {
	Submit(ctx context.Context, session *Session, token string, method PaymentMethod, card *CardDetails) (*PaymentResult, error)
}
