package service

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"freshcart/internal/api"
	"freshcart/internal/domain"
)

// AdminService forwards back-office operations to the backend. The backend
// owns all admin data and authorization; the storefront contributes only the
// dashboard gate and the bearer token of the signed-in admin.
type AdminService struct {
	api    api.Client
	logger *slog.Logger
}

func NewAdminService(client api.Client, logger *slog.Logger) *AdminService {
	return &AdminService{api: client, logger: logger}
}

// token resolves the caller's bearer token. The dashboard gate runs before
// any admin handler, so a missing session here is a programming error, but
// it still fails closed.
func (s *AdminService) token(ctx context.Context, op string) (string, error) {
	session := domain.SessionFromContext(ctx)
	if session == nil {
		return "", domain.Unauthorized(op, "Please log in.")
	}
	return session.Token, nil
}

func (s *AdminService) ListOrders(ctx context.Context) (json.RawMessage, error) {
	token, err := s.token(ctx, "admin.listOrders")
	if err != nil {
		return nil, err
	}
	return s.api.AdminListOrders(ctx, token)
}

func (s *AdminService) UpdateOrderStatus(ctx context.Context, orderID int64, status string) (json.RawMessage, error) {
	const op = "admin.updateOrderStatus"

	token, err := s.token(ctx, op)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return nil, domain.Invalid(op, "Order status is required.")
	}
	return s.api.AdminUpdateOrderStatus(ctx, token, orderID, status)
}

func (s *AdminService) ApprovePayment(ctx context.Context, paymentID int64) (json.RawMessage, error) {
	token, err := s.token(ctx, "admin.approvePayment")
	if err != nil {
		return nil, err
	}
	return s.api.AdminApprovePayment(ctx, token, paymentID)
}

func (s *AdminService) ListUsers(ctx context.Context) (json.RawMessage, error) {
	token, err := s.token(ctx, "admin.listUsers")
	if err != nil {
		return nil, err
	}
	return s.api.AdminListUsers(ctx, token)
}

func (s *AdminService) ListProducts(ctx context.Context) (json.RawMessage, error) {
	token, err := s.token(ctx, "admin.listProducts")
	if err != nil {
		return nil, err
	}
	return s.api.AdminListProducts(ctx, token)
}

func (s *AdminService) CreateProduct(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	token, err := s.token(ctx, "admin.createProduct")
	if err != nil {
		return nil, err
	}
	return s.api.AdminCreateProduct(ctx, token, body)
}

func (s *AdminService) UpdateProduct(ctx context.Context, id int64, body json.RawMessage) (json.RawMessage, error) {
	token, err := s.token(ctx, "admin.updateProduct")
	if err != nil {
		return nil, err
	}
	return s.api.AdminUpdateProduct(ctx, token, id, body)
}

func (s *AdminService) DeleteProduct(ctx context.Context, id int64) error {
	token, err := s.token(ctx, "admin.deleteProduct")
	if err != nil {
		return err
	}
	return s.api.AdminDeleteProduct(ctx, token, id)
}

func (s *AdminService) ListReports(ctx context.Context) (json.RawMessage, error) {
	token, err := s.token(ctx, "admin.listReports")
	if err != nil {
		return nil, err
	}
	return s.api.AdminListReports(ctx, token)
}

func (s *AdminService) CreateReport(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	token, err := s.token(ctx, "admin.createReport")
	if err != nil {
		return nil, err
	}
	return s.api.AdminCreateReport(ctx, token, body)
}

func (s *AdminService) UpdateReport(ctx context.Context, id int64, body json.RawMessage) (json.RawMessage, error) {
	token, err := s.token(ctx, "admin.updateReport")
	if err != nil {
		return nil, err
	}
	return s.api.AdminUpdateReport(ctx, token, id, body)
}

func (s *AdminService) DeleteReport(ctx context.Context, id int64) error {
	token, err := s.token(ctx, "admin.deleteReport")
	if err != nil {
		return err
	}
	return s.api.AdminDeleteReport(ctx, token, id)
}

func (s *AdminService) ImportReports(ctx context.Context, filename string, file io.Reader) (json.RawMessage, error) {
	token, err := s.token(ctx, "admin.importReports")
	if err != nil {
		return nil, err
	}
	return s.api.AdminImportReports(ctx, token, filename, file)
}

func (s *AdminService) ReportTemplate(ctx context.Context) (*api.Download, error) {
	token, err := s.token(ctx, "admin.reportTemplate")
	if err != nil {
		return nil, err
	}
	return s.api.AdminReportTemplate(ctx, token)
}
