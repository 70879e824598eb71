package dto

import (
	"github.com/shopspring/decimal"

	"storefront/internal/domain/model"
	"storefront/internal/service"
)

type OrderItemDTO struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type AddressDTO struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type CustomerInfoDTO struct {
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	Email           string `json:"email"`
	Mobile          string `json:"mobile"`
	SecondaryMobile string `json:"secondary_mobile,omitempty"`
}

type PlaceOrderDTO struct {
	Items           []OrderItemDTO  `json:"items"`
	ShippingAddress AddressDTO      `json:"shipping_address"`
	CustomerInfo    CustomerInfoDTO `json:"customer_info"`
	PaymentMethod   string          `json:"payment_method"`
	Currency        string          `json:"currency,omitempty"`
}

func (d *PlaceOrderDTO) ToServiceRequest() *service.PlaceOrderRequest {
	items := make([]service.OrderItemRequest, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, service.OrderItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return &service.PlaceOrderRequest{
		Items: items,
		ShippingAddress: model.Address{
			Street:  d.ShippingAddress.Street,
			City:    d.ShippingAddress.City,
			Country: d.ShippingAddress.Country,
		},
		Customer: model.CustomerInfo{
			FirstName:       d.CustomerInfo.FirstName,
			LastName:        d.CustomerInfo.LastName,
			Email:           d.CustomerInfo.Email,
			Mobile:          d.CustomerInfo.Mobile,
			SecondaryMobile: d.CustomerInfo.SecondaryMobile,
		},
		PaymentMethod: model.PaymentMethod(d.PaymentMethod),
		Currency:      d.Currency,
	}
}

type PlaceOrderResponse struct {
	OrderID       uint            `json:"order_id"`
	OrderNumber   string          `json:"order_number"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
}

func NewPlaceOrderResponse(order *model.Order) PlaceOrderResponse {
	return PlaceOrderResponse{
		OrderID:       order.OrderID,
		OrderNumber:   order.OrderNumber,
		TotalAmount:   order.TotalAmount,
		Currency:      order.Currency,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
	}
}
