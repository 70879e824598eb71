package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateOrderNumber is returned by OrderRepository.Create when the
	// generated order number collides with an existing order. It is the only
	// persistence failure the placement engine recovers from.
	ErrDuplicateOrderNumber = errors.New("order number already exists")
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id uint) (*model.Product, error)
	// GetForUpdate loads the product with a row lock so that the stock
	// check and the decrement observe the same record. Must be called
	// inside a transaction.
	GetForUpdate(ctx context.Context, id uint) (*model.Product, error)
	Save(ctx context.Context, product *model.Product) error
	List(ctx context.Context) ([]model.Product, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id uint) (*model.Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (*model.Order, error)
	GetByCustomerEmail(ctx context.Context, email string) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, id uint, status model.PaymentStatus) error
}

type CurrencyRepository interface {
	GetByCode(ctx context.Context, code string) (*model.CurrencyRate, error)
	Upsert(ctx context.Context, rate *model.CurrencyRate) error
	List(ctx context.Context) ([]model.CurrencyRate, error)
}

// TxManager scopes a group of repository calls into one atomic unit of
// work. The transaction handle travels inside fn's context; repositories
// join it transparently. A nested call opens a savepoint so a failed
// statement can be retried without poisoning the outer transaction.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
