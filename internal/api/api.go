// Package api provides the client for the remote commerce backend.
// The storefront owns no catalog, auth, or order data; everything it shows
// or submits is a round-trip to this API, authenticated with the session's
// bearer token where one exists.
package api

import (
	"context"
	"encoding/json"
	"io"

	"freshcart/internal/domain"
)

// Client defines the interface to the remote commerce backend.
// Implementations can use HTTP or an in-memory mock for tests.
type Client interface {
	// ListProducts returns the public catalog.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// GetProduct returns a single catalog item by id.
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)

	// ListCategories returns the catalog category labels.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// Login exchanges credentials for an identity and bearer token.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// Signup registers a customer account. No auto-login.
	Signup(ctx context.Context, params SignupParams) error

	// AdminSignup registers a back-office account. No auto-login.
	AdminSignup(ctx context.Context, params SignupParams) error

	// ListAddresses returns all delivery addresses owned by the user.
	ListAddresses(ctx context.Context, token string, userID int64) ([]domain.Address, error)

	// AddAddress creates a delivery address and returns the stored record.
	AddAddress(ctx context.Context, token string, userID int64, form domain.AddressForm) (*domain.Address, error)

	// ProcessPayment submits the order+payment payload and returns the
	// processor's verdict. A non-2xx verdict is returned as *Error carrying
	// the server message so the caller can surface it verbatim.
	ProcessPayment(ctx context.Context, token string, req PaymentRequest) (*PaymentResponse, error)

	// Admin back-office pass-throughs. Payloads are owned by the backend;
	// the storefront forwards them opaquely.
	AdminListOrders(ctx context.Context, token string) (json.RawMessage, error)
	AdminUpdateOrderStatus(ctx context.Context, token string, orderID int64, status string) (json.RawMessage, error)
	AdminApprovePayment(ctx context.Context, token string, paymentID int64) (json.RawMessage, error)
	AdminListUsers(ctx context.Context, token string) (json.RawMessage, error)
	AdminListProducts(ctx context.Context, token string) (json.RawMessage, error)
	AdminCreateProduct(ctx context.Context, token string, body json.RawMessage) (json.RawMessage, error)
	AdminUpdateProduct(ctx context.Context, token string, id int64, body json.RawMessage) (json.RawMessage, error)
	AdminDeleteProduct(ctx context.Context, token string, id int64) error
	AdminListReports(ctx context.Context, token string) (json.RawMessage, error)
	AdminCreateReport(ctx context.Context, token string, body json.RawMessage) (json.RawMessage, error)
	AdminUpdateReport(ctx context.Context, token string, id int64, body json.RawMessage) (json.RawMessage, error)
	AdminDeleteReport(ctx context.Context, token string, id int64) error
	AdminImportReports(ctx context.Context, token string, filename string, file io.Reader) (json.RawMessage, error)
	AdminReportTemplate(ctx context.Context, token string) (*Download, error)
}

// LoginResult is the backend's response to a successful login.
type LoginResult struct {
	Token string      `json:"token"`
	ID    int64       `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// SignupParams contains the registration payload.
type SignupParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PaymentItem is one purchased line in the payment payload. Price is the
// list price snapshot; the offer-aware total travels separately.
type PaymentItem struct {
	ProductID int64 `json:"productId"`
	Qty       int32 `json:"qty"`
	Price     int64 `json:"price"`
}

// PaymentRequest is the order+payment payload for the backend processor.
// Payment is nil for COD and UPI.
type PaymentRequest struct {
	Items         []PaymentItem        `json:"items"`
	Total         int64                `json:"total"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	Payment       *domain.CardDetails  `json:"payment"`
	UserID        int64                `json:"userId"`
}

// PaymentResponse is the processor's verdict.
type PaymentResponse struct {
	Status        domain.PaymentStatus `json:"status"`
	OrderID       string               `json:"orderId,omitempty"`
	BarcodeBase64 string               `json:"barcodeBase64,omitempty"`
	Message       string               `json:"message,omitempty"`
}

// Download is a file response forwarded from the backend (report template).
type Download struct {
	ContentType string
	Filename    string
	Body        []byte
}
