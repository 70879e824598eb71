package model

import (
	"github.com/shopspring/decimal"
)

// CurrencyRate maps a currency code to its multiplier against the base
// currency. The set of rows is the supported-currency registry.
type CurrencyRate struct {
	ID   uint            `gorm:"primaryKey" json:"id"`
	Code string          `gorm:"uniqueIndex;not null;type:varchar(8)" json:"code"`
	Rate decimal.Decimal `gorm:"not null;type:decimal(12,6)" json:"rate"`
	BaseModel
}
