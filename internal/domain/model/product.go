package model

import (
	"github.com/shopspring/decimal"
)

// Product holds the catalog record. Price is stored in the base currency;
// Stock is the only field contended by concurrent order placements.
type Product struct {
	ProductID   uint            `gorm:"primaryKey" json:"product_id"`
	Name        string          `gorm:"not null;type:varchar(100)" json:"name"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(12,2)" json:"price"`
	Stock       int             `gorm:"not null" json:"stock"`
	Images      []string        `gorm:"serializer:json" json:"images"`
	Category    string          `gorm:"type:varchar(50)" json:"category"`
	Description string          `gorm:"type:text" json:"description"`
	BaseModel
}

// Thumbnail is the first image, used for line-item snapshots.
func (p *Product) Thumbnail() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}
