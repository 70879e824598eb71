package db

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"storefront/internal/domain/model"
	"storefront/internal/infra/repository"
)

type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

var _ repository.OrderRepository = (*OrderRepo)(nil)

// Create persists the aggregate and its line items in one insert. A unique
// violation is reported as repository.ErrDuplicateOrderNumber: the order id
// is freshly generated, so the only unique constraint this insert can hit
// is the order-number index.
func (s *OrderRepo) Create(ctx context.Context, order *model.Order) error {
	err := s.db.conn(ctx).Create(order).Error
	if err != nil && isUniqueViolation(err) {
		return repository.ErrDuplicateOrderNumber
	}
	return err
}

func (s *OrderRepo) GetByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := s.db.conn(ctx).Preload("Items").First(&order, "order_id = ?", id).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &order, nil
}

func (s *OrderRepo) GetByNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	var order model.Order
	err := s.db.conn(ctx).Preload("Items").First(&order, "order_number = ?", orderNumber).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &order, nil
}

func (s *OrderRepo) GetByCustomerEmail(ctx context.Context, email string) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.conn(ctx).Preload("Items").
		Where("cust_email = ?", email).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

func (s *OrderRepo) UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) error {
	return s.db.conn(ctx).Model(&model.Order{}).Where("order_id = ?", id).
		Update("status", status).Error
}

func (s *OrderRepo) UpdatePaymentStatus(ctx context.Context, id uint, status model.PaymentStatus) error {
	return s.db.conn(ctx).Model(&model.Order{}).Where("order_id = ?", id).
		Update("payment_status", status).Error
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// fallback for drivers that bypass gorm's error translation
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
