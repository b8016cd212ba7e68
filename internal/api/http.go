package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"freshcart/internal/domain"
)

// HTTPClient talks to the commerce backend over HTTP. Every request carries
// the caller's context so an abandoned storefront request cancels its
// backend round-trip instead of leaking it.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, client *http.Client, logger *slog.Logger) *HTTPClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger,
	}
}

func (c *HTTPClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "api.ListProducts"
	var products []domain.Product
	if err := c.doJSON(ctx, op, http.MethodGet, "/products", "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *HTTPClient) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "api.GetProduct"
	var product domain.Product
	if err := c.doJSON(ctx, op, http.MethodGet, fmt.Sprintf("/products/%d", id), "", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *HTTPClient) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "api.ListCategories"
	var categories []domain.Category
	if err := c.doJSON(ctx, op, http.MethodGet, "/products/categories", "", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	const op = "api.Login"
	body := map[string]string{"email": email, "password": password}
	var result LoginResult
	if err := c.doJSON(ctx, op, http.MethodPost, "/auth/login", "", body, &result); err != nil {
		return nil, err
	}
	if result.Token == "" {
		return nil, domain.Errorf(domain.EINTERNAL, op, "login response missing token")
	}
	return &result, nil
}

func (c *HTTPClient) Signup(ctx context.Context, params SignupParams) error {
	const op = "api.Signup"
	return c.doJSON(ctx, op, http.MethodPost, "/auth/signup", "", params, nil)
}

func (c *HTTPClient) AdminSignup(ctx context.Context, params SignupParams) error {
	const op = "api.AdminSignup"
	return c.doJSON(ctx, op, http.MethodPost, "/auth/admin/signup", "", params, nil)
}

func (c *HTTPClient) ListAddresses(ctx context.Context, token string, userID int64) ([]domain.Address, error) {
	const op = "api.ListAddresses"
	var addresses []domain.Address
	path := fmt.Sprintf("/addresses/user/%d", userID)
	if err := c.doJSON(ctx, op, http.MethodGet, path, token, nil, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (c *HTTPClient) AddAddress(ctx context.Context, token string, userID int64, form domain.AddressForm) (*domain.Address, error) {
	const op = "api.AddAddress"
	var address domain.Address
	path := fmt.Sprintf("/addresses/user/%d/add", userID)
	if err := c.doJSON(ctx, op, http.MethodPost, path, token, form, &address); err != nil {
		return nil, err
	}
	return &address, nil
}

func (c *HTTPClient) ProcessPayment(ctx context.Context, token string, req PaymentRequest) (*PaymentResponse, error) {
	const op = "api.ProcessPayment"

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to encode payment request")
	}

	resp, err := c.do(ctx, op, http.MethodPost, "/payments/process", token, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.Upstream(err, op, "Payment service is unreachable. Please try again.")
	}

	// A declined payment is a negative verdict, not an outage. Surface the
	// processor's own message so the user sees exactly what it said.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domain.PaymentFailed(op, serverMessage(raw, "Payment failed. Please try again."))
	}

	var result PaymentResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to decode payment response")
	}
	return &result, nil
}

func (c *HTTPClient) AdminListOrders(ctx context.Context, token string) (json.RawMessage, error) {
	return c.passthrough(ctx, "api.AdminListOrders", http.MethodGet, "/orders/admin", token, nil)
}

func (c *HTTPClient) AdminUpdateOrderStatus(ctx context.Context, token string, orderID int64, status string) (json.RawMessage, error) {
	// The backend takes the new status as a query parameter, not a body.
	path := fmt.Sprintf("/orders/admin/%d/status?status=%s", orderID, url.QueryEscape(status))
	return c.passthrough(ctx, "api.AdminUpdateOrderStatus", http.MethodPut, path, token, nil)
}

func (c *HTTPClient) AdminApprovePayment(ctx context.Context, token string, paymentID int64) (json.RawMessage, error) {
	path := fmt.Sprintf("/payments/admin/%d/approve", paymentID)
	return c.passthrough(ctx, "api.AdminApprovePayment", http.MethodPut, path, token, nil)
}

func (c *HTTPClient) AdminListUsers(ctx context.Context, token string) (json.RawMessage, error) {
	return c.passthrough(ctx, "api.AdminListUsers", http.MethodGet, "/admin/users", token, nil)
}

func (c *HTTPClient) AdminListProducts(ctx context.Context, token string) (json.RawMessage, error) {
	return c.passthrough(ctx, "api.AdminListProducts", http.MethodGet, "/admin/products", token, nil)
}

func (c *HTTPClient) AdminCreateProduct(ctx context.Context, token string, body json.RawMessage) (json.RawMessage, error) {
	return c.passthrough(ctx, "api.AdminCreateProduct", http.MethodPost, "/admin/products", token, body)
}

func (c *HTTPClient) AdminUpdateProduct(ctx context.Context, token string, id int64, body json.RawMessage) (json.RawMessage, error) {
	path := fmt.Sprintf("/admin/products/%d", id)
	return c.passthrough(ctx, "api.AdminUpdateProduct", http.MethodPut, path, token, body)
}

func (c *HTTPClient) AdminDeleteProduct(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/admin/products/%d", id)
	_, err := c.passthrough(ctx, "api.AdminDeleteProduct", http.MethodDelete, path, token, nil)
	return err
}

func (c *HTTPClient) AdminListReports(ctx context.Context, token string) (json.RawMessage, error) {
	return c.passthrough(ctx, "api.AdminListReports", http.MethodGet, "/admin/reports", token, nil)
}

func (c *HTTPClient) AdminCreateReport(ctx context.Context, token string, body json.RawMessage) (json.RawMessage, error) {
	return c.passthrough(ctx, "api.AdminCreateReport", http.MethodPost, "/admin/reports", token, body)
}

func (c *HTTPClient) AdminUpdateReport(ctx context.Context, token string, id int64, body json.RawMessage) (json.RawMessage, error) {
	path := fmt.Sprintf("/admin/reports/%d", id)
	return c.passthrough(ctx, "api.AdminUpdateReport", http.MethodPut, path, token, body)
}

func (c *HTTPClient) AdminDeleteReport(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/admin/reports/%d", id)
	_, err := c.passthrough(ctx, "api.AdminDeleteReport", http.MethodDelete, path, token, nil)
	return err
}

func (c *HTTPClient) AdminImportReports(ctx context.Context, token string, filename string, file io.Reader) (json.RawMessage, error) {
	const op = "api.AdminImportReports"

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to build import upload")
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to build import upload")
	}
	if err := mw.Close(); err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to build import upload")
	}

	resp, err := c.do(ctx, op, http.MethodPost, "/admin/reports/import", token, mw.FormDataContentType(), &buf)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return c.readJSON(op, resp)
}

func (c *HTTPClient) AdminReportTemplate(ctx context.Context, token string) (*Download, error) {
	const op = "api.AdminReportTemplate"

	resp, err := c.do(ctx, op, http.MethodGet, "/admin/reports/template", token, "", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.Upstream(err, op, "The backend service is unreachable. Please try again.")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(op, resp.StatusCode, raw)
	}

	filename := "report_template.csv"
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil && params["filename"] != "" {
			filename = params["filename"]
		}
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &Download{ContentType: contentType, Filename: filename, Body: raw}, nil
}

// passthrough forwards an opaque JSON request to the backend and returns the
// raw response body for the handler to relay.
func (c *HTTPClient) passthrough(ctx context.Context, op, method, path, token string, body json.RawMessage) (json.RawMessage, error) {
	var reader io.Reader
	contentType := ""
	if body != nil {
		reader = bytes.NewReader(body)
		contentType = "application/json"
	}

	resp, err := c.do(ctx, op, method, path, token, contentType, reader)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return c.readJSON(op, resp)
}

// doJSON sends an optional JSON body and decodes the JSON response into out.
// A nil out discards the response body.
func (c *HTTPClient) doJSON(ctx context.Context, op, method, path, token string, body, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return domain.WrapError(err, domain.EINTERNAL, op, "failed to encode request")
		}
		reader = bytes.NewReader(payload)
		contentType = "application/json"
	}

	resp, err := c.do(ctx, op, method, path, token, contentType, reader)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := c.readJSON(op, resp)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return domain.WrapError(err, domain.EINTERNAL, op, "failed to decode response")
	}
	return nil
}

// do performs the round-trip. Transport failures map to EUNAVAILABLE;
// HTTP-level verdicts are the caller's to interpret.
func (c *HTTPClient) do(ctx context.Context, op, method, path, token, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("backend request failed",
				slog.String("method", method),
				slog.String("path", path),
				slog.String("error", err.Error()))
		}
		return nil, domain.Upstream(err, op, "The backend service is unreachable. Please try again.")
	}
	return resp, nil
}

func (c *HTTPClient) readJSON(op string, resp *http.Response) (json.RawMessage, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.Upstream(err, op, "The backend service is unreachable. Please try again.")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(op, resp.StatusCode, raw)
	}
	return raw, nil
}
