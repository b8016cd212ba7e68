package service

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"freshcart/internal/api"
	"freshcart/internal/domain"
)

// AddressService proxies delivery addresses to the backend; the storefront
// stores none of its own. The bearer token comes from the request session.
type AddressService struct {
	api      api.Client
	validate *validator.Validate
	logger   *slog.Logger
}

var _ domain.AddressService = (*AddressService)(nil)

func NewAddressService(client api.Client, logger *slog.Logger) *AddressService {
	return &AddressService{api: client, validate: validator.New(), logger: logger}
}

func (s *AddressService) List(ctx context.Context, userID int64) ([]domain.Address, error) {
	const op = "address.list"

	session := domain.SessionFromContext(ctx)
	if session == nil {
		return nil, domain.Unauthorized(op, "Please log in.")
	}
	return s.api.ListAddresses(ctx, session.Token, userID)
}

func (s *AddressService) Add(ctx context.Context, userID int64, form domain.AddressForm) (*domain.Address, error) {
	const op = "address.add"

	session := domain.SessionFromContext(ctx)
	if session == nil {
		return nil, domain.Unauthorized(op, "Please log in.")
	}
	if err := s.validate.Struct(form); err != nil {
		return nil, domain.Invalid(op, "Please fill in all required address fields.")
	}
	return s.api.AddAddress(ctx, session.Token, userID, form)
}
