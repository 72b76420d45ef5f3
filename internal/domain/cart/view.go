// internal/domain/cart/view.go
package cart

import (
	"github.com/shopspring/decimal"
	"github.com/weirdbites/storefront/internal/domain/product"
)

// ViewLine is a cart line joined with current product details
type ViewLine struct {
	product.BulkProduct
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// View is everything the cart page renders
type View struct {
	Lines         []ViewLine      `json:"lines"`
	TotalQuantity int             `json:"totalQuantity"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Total         decimal.Decimal `json:"total"`
	CanCheckout   bool            `json:"canCheckout"`
}

// ProductIDs lists the product ids of lines in cart order
func ProductIDs(lines []Line) []string {
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}
	return ids
}

// BuildView merges lines with looked-up products. Lines whose product no
// longer exists are left out of the view but stay in the cart.
func BuildView(lines []Line, products []product.BulkProduct) View {
	byID := make(map[string]product.BulkProduct, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	view := View{
		Lines:    []ViewLine{},
		Subtotal: decimal.Zero,
	}

	for _, l := range lines {
		p, ok := byID[l.ProductID]
		if !ok {
			continue
		}
		lineTotal := p.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		view.Lines = append(view.Lines, ViewLine{
			BulkProduct: p,
			Quantity:    l.Quantity,
			LineTotal:   lineTotal,
		})
		view.TotalQuantity += l.Quantity
		view.Subtotal = view.Subtotal.Add(lineTotal)
	}

	// No tax or shipping yet
	view.Total = view.Subtotal
	view.CanCheckout = !view.Subtotal.IsZero()

	return view
}
