package api

import (
	"context"
	"encoding/json"
	"io"
	"strconv"
	"sync"

	"freshcart/internal/domain"
)

// MockClient is a test double for the backend API. Each method can be
// overridden by setting the corresponding *Func field; unset methods fall
// back to a benign default. Calls are recorded for assertions.
type MockClient struct {
	mu      sync.Mutex
	CallLog []string

	ListProductsFunc   func(ctx context.Context) ([]domain.Product, error)
	GetProductFunc     func(ctx context.Context, id int64) (*domain.Product, error)
	ListCategoriesFunc func(ctx context.Context) ([]domain.Category, error)

	LoginFunc       func(ctx context.Context, email, password string) (*LoginResult, error)
	SignupFunc      func(ctx context.Context, params SignupParams) error
	AdminSignupFunc func(ctx context.Context, params SignupParams) error

	ListAddressesFunc func(ctx context.Context, token string, userID int64) ([]domain.Address, error)
	AddAddressFunc    func(ctx context.Context, token string, userID int64, form domain.AddressForm) (*domain.Address, error)

	ProcessPaymentFunc func(ctx context.Context, token string, req PaymentRequest) (*PaymentResponse, error)

	AdminListOrdersFunc        func(ctx context.Context, token string) (json.RawMessage, error)
	AdminUpdateOrderStatusFunc func(ctx context.Context, token string, orderID int64, status string) (json.RawMessage, error)
	AdminApprovePaymentFunc    func(ctx context.Context, token string, paymentID int64) (json.RawMessage, error)
	AdminListUsersFunc         func(ctx context.Context, token string) (json.RawMessage, error)
	AdminListProductsFunc      func(ctx context.Context, token string) (json.RawMessage, error)
	AdminCreateProductFunc     func(ctx context.Context, token string, body json.RawMessage) (json.RawMessage, error)
	AdminUpdateProductFunc     func(ctx context.Context, token string, id int64, body json.RawMessage) (json.RawMessage, error)
	AdminDeleteProductFunc     func(ctx context.Context, token string, id int64) error
	AdminListReportsFunc       func(ctx context.Context, token string) (json.RawMessage, error)
	AdminCreateReportFunc      func(ctx context.Context, token string, body json.RawMessage) (json.RawMessage, error)
	AdminUpdateReportFunc      func(ctx context.Context, token string, id int64, body json.RawMessage) (json.RawMessage, error)
	AdminDeleteReportFunc      func(ctx context.Context, token string, id int64) error
	AdminImportReportsFunc     func(ctx context.Context, token string, filename string, file io.Reader) (json.RawMessage, error)
	AdminReportTemplateFunc    func(ctx context.Context, token string) (*Download, error)
}

var _ Client = (*MockClient)(nil)

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallLog = append(m.CallLog, call)
}

// Calls returns a copy of the recorded call names.
func (m *MockClient) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.CallLog))
	copy(out, m.CallLog)
	return out
}

func (m *MockClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	m.record("ListProducts")
	if m.ListProductsFunc != nil {
		return m.ListProductsFunc(ctx)
	}
	return []domain.Product{}, nil
}

func (m *MockClient) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	m.record("GetProduct")
	if m.GetProductFunc != nil {
		return m.GetProductFunc(ctx, id)
	}
	return nil, domain.NotFound("api.GetProduct", "product", strconv.FormatInt(id, 10))
}

func (m *MockClient) ListCategories(ctx context.Context) ([]domain.Category, error) {
	m.record("ListCategories")
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	return []domain.Category{}, nil
}

func (m *MockClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	m.record("Login")
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, domain.Unauthorized("api.Login", "Invalid credentials.")
}

func (m *MockClient) Signup(ctx context.Context, params SignupParams) error {
	m.record("Signup")
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, params)
	}
	return nil
}

func (m *MockClient) AdminSignup(ctx context.Context, params SignupParams) error {
	m.record("AdminSignup")
	if m.AdminSignupFunc != nil {
		return m.AdminSignupFunc(ctx, params)
	}
	return nil
}

func (m *MockClient) ListAddresses(ctx context.Context, token string, userID int64) ([]domain.Address, error) {
	m.record("ListAddresses")
	if m.ListAddressesFunc != nil {
		return m.ListAddressesFunc(ctx, token, userID)
	}
	return []domain.Address{}, nil
}

func (m *MockClient) AddAddress(ctx context.Context, token string, userID int64, form domain.AddressForm) (*domain.Address, error) {
	m.record("AddAddress")
	if m.AddAddressFunc != nil {
		return m.AddAddressFunc(ctx, token, userID, form)
	}
	return &domain.Address{ID: 1, AddressType: form.AddressType}, nil
}

func (m *MockClient) ProcessPayment(ctx context.Context, token string, req PaymentRequest) (*PaymentResponse, error) {
	m.record("ProcessPayment")
	if m.ProcessPaymentFunc != nil {
		return m.ProcessPaymentFunc(ctx, token, req)
	}
	return &PaymentResponse{Status: domain.PaymentStatusSuccess, OrderID: "mock-order"}, nil
}

func (m *MockClient) AdminListOrders(ctx context.Context, token string) (json.RawMessage, error) {
	m.record("AdminListOrders")
	if m.AdminListOrdersFunc != nil {
		return m.AdminListOrdersFunc(ctx, token)
	}
	return json.RawMessage(`[]`), nil
}

func (m *MockClient) AdminUpdateOrderStatus(ctx context.Context, token string, orderID int64, status string) (json.RawMessage, error) {
	m.record("AdminUpdateOrderStatus")
	if m.AdminUpdateOrderStatusFunc != nil {
		return m.AdminUpdateOrderStatusFunc(ctx, token, orderID, status)
	}
	return json.RawMessage(`{}`), nil
}

func (m *MockClient) AdminApprovePayment(ctx context.Context, token string, paymentID int64) (json.RawMessage, error) {
	m.record("AdminApprovePayment")
	if m.AdminApprovePaymentFunc != nil {
		return m.AdminApprovePaymentFunc(ctx, token, paymentID)
	}
	return json.RawMessage(`{}`), nil
}

func (m *MockClient) AdminListUsers(ctx context.Context, token string) (json.RawMessage, error) {
	m.record("AdminListUsers")
	if m.AdminListUsersFunc != nil {
		return m.AdminListUsersFunc(ctx, token)
	}
	return json.RawMessage(`[]`), nil
}

func (m *MockClient) AdminListProducts(ctx context.Context, token string) (json.RawMessage, error) {
	m.record("AdminListProducts")
	if m.AdminListProductsFunc != nil {
		return m.AdminListProductsFunc(ctx, token)
	}
	return json.RawMessage(`[]`), nil
}

func (m *MockClient) AdminCreateProduct(ctx context.Context, token string, body json.RawMessage) (json.RawMessage, error) {
	m.record("AdminCreateProduct")
	if m.AdminCreateProductFunc != nil {
		return m.AdminCreateProductFunc(ctx, token, body)
	}
	return json.RawMessage(`{}`), nil
}

func (m *MockClient) AdminUpdateProduct(ctx context.Context, token string, id int64, body json.RawMessage) (json.RawMessage, error) {
	m.record("AdminUpdateProduct")
	if m.AdminUpdateProductFunc != nil {
		return m.AdminUpdateProductFunc(ctx, token, id, body)
	}
	return json.RawMessage(`{}`), nil
}

func (m *MockClient) AdminDeleteProduct(ctx context.Context, token string, id int64) error {
	m.record("AdminDeleteProduct")
	if m.AdminDeleteProductFunc != nil {
		return m.AdminDeleteProductFunc(ctx, token, id)
	}
	return nil
}

func (m *MockClient) AdminListReports(ctx context.Context, token string) (json.RawMessage, error) {
	m.record("AdminListReports")
	if m.AdminListReportsFunc != nil {
		return m.AdminListReportsFunc(ctx, token)
	}
	return json.RawMessage(`[]`), nil
}

func (m *MockClient) AdminCreateReport(ctx context.Context, token string, body json.RawMessage) (json.RawMessage, error) {
	m.record("AdminCreateReport")
	if m.AdminCreateReportFunc != nil {
		return m.AdminCreateReportFunc(ctx, token, body)
	}
	return json.RawMessage(`{}`), nil
}

func (m *MockClient) AdminUpdateReport(ctx context.Context, token string, id int64, body json.RawMessage) (json.RawMessage, error) {
	m.record("AdminUpdateReport")
	if m.AdminUpdateReportFunc != nil {
		return m.AdminUpdateReportFunc(ctx, token, id, body)
	}
	return json.RawMessage(`{}`), nil
}

func (m *MockClient) AdminDeleteReport(ctx context.Context, token string, id int64) error {
	m.record("AdminDeleteReport")
	if m.AdminDeleteReportFunc != nil {
		return m.AdminDeleteReportFunc(ctx, token, id)
	}
	return nil
}

func (m *MockClient) AdminImportReports(ctx context.Context, token string, filename string, file io.Reader) (json.RawMessage, error) {
	m.record("AdminImportReports")
	if m.AdminImportReportsFunc != nil {
		return m.AdminImportReportsFunc(ctx, token, filename, file)
	}
	return json.RawMessage(`{}`), nil
}

func (m *MockClient) AdminReportTemplate(ctx context.Context, token string) (*Download, error) {
	m.record("AdminReportTemplate")
	if m.AdminReportTemplateFunc != nil {
		return m.AdminReportTemplateFunc(ctx, token)
	}
	return &Download{ContentType: "text/csv", Filename: "report_template.csv", Body: []byte("id,name\n")}, nil
}
