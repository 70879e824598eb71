package service

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	"storefront/internal/infra/repository"
)

type IProductService interface {
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
}

// ProductService serves read-only catalog browsing. All stock mutation
// goes through the order placement path.
type ProductService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

var _ IProductService = (*ProductService)(nil)

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotExist
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.products.List(ctx)
}
