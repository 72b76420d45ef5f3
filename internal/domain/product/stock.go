// internal/domain/product/stock.go
package product

import "fmt"

// StockStatus describes product availability
type StockStatus string

const (
	StockIn  StockStatus = "inStock"
	StockLow StockStatus = "lowStock"
	StockOut StockStatus = "outOfStock"
)

// LowStockThreshold is the highest quantity still reported as low stock
const LowStockThreshold = 5

// GetStockStatus classifies a stock quantity
func GetStockStatus(stock int) StockStatus {
	if stock <= 0 {
		return StockOut
	}
	if stock <= LowStockThreshold {
		return StockLow
	}
	return StockIn
}

// IsStockAvailable reports whether the product can be purchased
func IsStockAvailable(stock int) bool {
	return stock > 0
}

// GetStockMessage returns the customer-facing stock label
func GetStockMessage(stock int) string {
	switch GetStockStatus(stock) {
	case StockOut:
		return "Out of stock"
	case StockLow:
		return fmt.Sprintf("Only %d left", stock)
	default:
		return fmt.Sprintf("%d in stock", stock)
	}
}
