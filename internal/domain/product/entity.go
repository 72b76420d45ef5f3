// internal/domain/product/entity.go
package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a catalog item
type Product struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	Name        string          `gorm:"not null;size:255;index" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	ImageURL    string          `gorm:"size:500" json:"imageUrl"`
	Category    string          `gorm:"not null;size:100;index" json:"category"`
	Origin      string          `gorm:"size:100" json:"origin"`
	Stock       int             `gorm:"default:0" json:"stock"`
	IsFeatured  bool            `gorm:"default:false;index" json:"isFeatured"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// BulkProduct is the projection used to render cart lines
type BulkProduct struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"imageUrl"`
	Stock    int             `json:"stock"`
}

// CategoryCount pairs a category with the number of products in it
type CategoryCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// TableName overrides
func (Product) TableName() string { return "products" }

// BeforeCreate assigns a UUID when the caller did not
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Business methods for Product
func (p *Product) IsInStock() bool {
	return IsStockAvailable(p.Stock)
}

func (p *Product) IsLowStock() bool {
	return GetStockStatus(p.Stock) == StockLow
}

// GetFormattedPrice renders the price as "$12.99"
func (p *Product) GetFormattedPrice() string {
	return "$" + p.Price.StringFixed(2)
}
