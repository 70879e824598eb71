package db

import (
	"context"

	"gorm.io/gorm"

	"storefront/internal/domain/model"
)

type DbDao struct {
	*gorm.DB
}

func NewDbDao(conn *gorm.DB) *DbDao {
	return &DbDao{
		DB: conn,
	}
}

// InitMigrate creates or updates the schema. Idempotent.
func (d *DbDao) InitMigrate() error {
	return d.AutoMigrate(
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.CurrencyRate{},
	)
}

type txKey struct{}

// WithinTransaction runs fn inside a database transaction and stores the
// transaction handle in fn's context so repositories join it. Called with
// a context that already carries a transaction it opens a savepoint, which
// lets the order-number retry re-run a failed insert without aborting the
// outer transaction.
func (d *DbDao) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return d.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the ambient transaction if the context carries one, else a
// session bound to ctx.
func (d *DbDao) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return d.DB.WithContext(ctx)
}
