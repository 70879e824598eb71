package db

import (
	"context"

	"gorm.io/gorm/clause"

	"storefront/internal/domain/model"
	"storefront/internal/infra/repository"
)

type ProductRepo struct {
	db *DbDao
}

func NewProductRepo(db *DbDao) *ProductRepo {
	return &ProductRepo{db: db}
}

var _ repository.ProductRepository = (*ProductRepo)(nil)

func (s *ProductRepo) Create(ctx context.Context, product *model.Product) error {
	return s.db.conn(ctx).Create(product).Error
}

func (s *ProductRepo) GetByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := s.db.conn(ctx).First(&product, "product_id = ?", id).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &product, nil
}

// GetForUpdate takes a SELECT ... FOR UPDATE row lock. Two concurrent
// reservations against the same product serialize here, so the stock check
// and the decrement cannot interleave.
func (s *ProductRepo) GetForUpdate(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := s.db.conn(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "product_id = ?", id).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &product, nil
}

func (s *ProductRepo) Save(ctx context.Context, product *model.Product) error {
	return s.db.conn(ctx).Save(product).Error
}

func (s *ProductRepo) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := s.db.conn(ctx).Order("product_id").Find(&products).Error
	return products, err
}
