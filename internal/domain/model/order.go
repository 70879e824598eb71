package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodPayPal PaymentMethod = "paypal"
	PaymentMethodCOD    PaymentMethod = "cod"
)

type Address struct {
	Street  string `gorm:"not null;type:varchar(255)" json:"street"`
	City    string `gorm:"not null;type:varchar(100)" json:"city"`
	Country string `gorm:"not null;type:varchar(100)" json:"country"`
}

type CustomerInfo struct {
	FirstName       string `gorm:"type:varchar(100)" json:"first_name,omitempty"`
	LastName        string `gorm:"type:varchar(100)" json:"last_name,omitempty"`
	Email           string `gorm:"not null;type:varchar(255)" json:"email"`
	Mobile          string `gorm:"not null;type:varchar(32)" json:"mobile"`
	SecondaryMobile string `gorm:"type:varchar(32)" json:"secondary_mobile,omitempty"`
}

// Order is the persisted aggregate. It owns its line-item snapshots:
// product data is copied in at order time so later catalog edits never
// alter historical orders.
type Order struct {
	OrderID         uint            `gorm:"primaryKey" json:"order_id"`
	OrderNumber     string          `gorm:"uniqueIndex;not null;type:varchar(64)" json:"order_number"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount     decimal.Decimal `gorm:"not null;type:decimal(12,2)" json:"total_amount"`
	Currency        string          `gorm:"not null;type:varchar(8)" json:"currency"`
	ExchangeRate    decimal.Decimal `gorm:"not null;type:decimal(12,6)" json:"exchange_rate"`
	ShippingAddress Address         `gorm:"embedded;embeddedPrefix:ship_" json:"shipping_address"`
	Customer        CustomerInfo    `gorm:"embedded;embeddedPrefix:cust_" json:"customer"`
	PaymentMethod   PaymentMethod   `gorm:"not null;type:varchar(16)" json:"payment_method"`
	Status          OrderStatus     `gorm:"not null;type:varchar(16)" json:"status"`
	PaymentStatus   PaymentStatus   `gorm:"not null;type:varchar(16)" json:"payment_status"`
	OrderDate       time.Time       `gorm:"not null" json:"order_date"`
	BaseModel
}

// OrderItem snapshots one reserved line item. Price is the unit price in
// the order currency at order time and is never recomputed.
type OrderItem struct {
	OrderID   uint            `gorm:"primaryKey;autoIncrement:false" json:"-"`
	ProductID uint            `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
	Name      string          `gorm:"not null;type:varchar(100)" json:"name"`
	Image     string          `gorm:"type:varchar(255)" json:"image,omitempty"`
	Price     decimal.Decimal `gorm:"not null;type:decimal(12,2)" json:"price"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	BaseModel
}
