// internal/domain/cart/cart.go
package cart

import (
	"context"
	"slices"
)

// Cart is the line list for one session. It is owned by a single request
// and is not safe for concurrent use.
type Cart struct {
	store Store
	clock Clock
	items []Line
}

// New loads the session's cart from store. Loading never writes back.
func New(ctx context.Context, store Store, clock Clock) *Cart {
	if clock == nil {
		clock = SystemClock
	}
	return &Cart{
		store: store,
		clock: clock,
		items: store.LoadCart(ctx),
	}
}

func (c *Cart) mustExist() {
	if c == nil {
		panic(ErrNoProvider)
	}
}

// Items returns a copy of the lines in first-added order
func (c *Cart) Items() []Line {
	c.mustExist()
	return slices.Clone(c.items)
}

// TotalQuantity sums the quantities of all lines
func (c *Cart) TotalQuantity() int {
	c.mustExist()
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// AddItem adds one unit of productID, creating the line if needed
func (c *Cart) AddItem(ctx context.Context, productID string) {
	c.mustExist()

	if i := c.indexOf(productID); i >= 0 {
		c.items[i].Quantity++
	} else {
		c.items = append(c.items, Line{
			ProductID: productID,
			Quantity:  1,
			AddedAt:   c.clock(),
		})
	}

	c.store.SaveCart(ctx, c.items)
}

// UpdateQuantity overwrites the quantity of an existing line. The value is
// stored as given, including zero and negatives. Unknown products are ignored.
func (c *Cart) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	c.mustExist()

	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	c.items[i].Quantity = quantity

	c.store.SaveCart(ctx, c.items)
}

// RemoveItem drops the line for productID if present
func (c *Cart) RemoveItem(ctx context.Context, productID string) {
	c.mustExist()

	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	c.items = slices.Delete(c.items, i, i+1)

	c.store.SaveCart(ctx, c.items)
}

// ClearCart empties the cart and deletes the stored snapshot
func (c *Cart) ClearCart(ctx context.Context) {
	c.mustExist()

	c.items = []Line{}
	c.store.ClearCartStorage(ctx)
}

func (c *Cart) indexOf(productID string) int {
	return slices.IndexFunc(c.items, func(l Line) bool {
		return l.ProductID == productID
	})
}
