package service

import (
	"storefront/internal/domain/model"
)

type OrderItemRequest struct {
	ProductID uint
	Quantity  int
}

// PlaceOrderRequest is the transport-agnostic cart submission. Card and
// PayPal payments are authorized upstream; the engine only records the
// outcome.
type PlaceOrderRequest struct {
	Items           []OrderItemRequest
	ShippingAddress model.Address
	Customer        model.CustomerInfo
	PaymentMethod   model.PaymentMethod
	Currency        string
}

// Validate rejects malformed requests before any unit of work is opened.
func (r *PlaceOrderRequest) Validate() error {
	if len(r.Items) == 0 {
		return &InvalidRequestError{Field: "items", Reason: "must not be empty"}
	}
	seen := make(map[uint]struct{}, len(r.Items))
	for _, item := range r.Items {
		if item.ProductID == 0 {
			return &InvalidRequestError{Field: "items.productId", Reason: "is required"}
		}
		if item.Quantity <= 0 {
			return &InvalidRequestError{Field: "items.quantity", Reason: "must be positive"}
		}
		if _, ok := seen[item.ProductID]; ok {
			return &InvalidRequestError{Field: "items.productId", Reason: "appears more than once"}
		}
		seen[item.ProductID] = struct{}{}
	}
	if r.ShippingAddress.Street == "" {
		return &InvalidRequestError{Field: "shippingAddress.street", Reason: "is required"}
	}
	if r.ShippingAddress.City == "" {
		return &InvalidRequestError{Field: "shippingAddress.city", Reason: "is required"}
	}
	if r.ShippingAddress.Country == "" {
		return &InvalidRequestError{Field: "shippingAddress.country", Reason: "is required"}
	}
	if r.Customer.Email == "" {
		return &InvalidRequestError{Field: "customerInfo.email", Reason: "is required"}
	}
	if r.Customer.Mobile == "" {
		return &InvalidRequestError{Field: "customerInfo.mobile", Reason: "is required"}
	}
	switch r.PaymentMethod {
	case model.PaymentMethodCard, model.PaymentMethodPayPal, model.PaymentMethodCOD:
	default:
		return &InvalidRequestError{Field: "paymentMethod", Reason: "must be one of card, paypal, cod"}
	}
	return nil
}
