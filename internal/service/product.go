package service

import (
	"context"
	"log/slog"

	"freshcart/internal/api"
	"freshcart/internal/domain"
)

// ProductService serves the public catalog from the backend.
type ProductService struct {
	api    api.Client
	logger *slog.Logger
}

var _ domain.ProductService = (*ProductService)(nil)

func NewProductService(client api.Client, logger *slog.Logger) *ProductService {
	return &ProductService{api: client, logger: logger}
}

func (s *ProductService) List(ctx context.Context, category string) ([]domain.Product, error) {
	products, err := s.api.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return products, nil
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.api.GetProduct(ctx, id)
}

func (s *ProductService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.api.ListCategories(ctx)
}
