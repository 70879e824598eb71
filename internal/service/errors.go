package service

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotExist   = errors.New("order is not exist")
	ErrProductNotExist = errors.New("product is not exist")
)

// Business-rule and validation failures carry their details as typed
// errors so the transport layer can map them to machine-readable kinds
// without parsing messages.

type ProductNotFoundError struct {
	ProductID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

type InsufficientStockError struct {
	ProductID uint
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: available %d, requested %d",
		e.ProductID, e.Available, e.Requested)
}

type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}

type UnsupportedCurrencyError struct {
	Code string
}

func (e *UnsupportedCurrencyError) Error() string {
	return fmt.Sprintf("unsupported currency %q", e.Code)
}
