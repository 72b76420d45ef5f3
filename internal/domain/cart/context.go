// internal/domain/cart/context.go
package cart

import (
	"context"

	"github.com/cockroachdb/errors"
)

// ErrNoProvider is the panic value when a cart is read before one was attached
var ErrNoProvider = errors.New("cart: accessor used outside of cart provider")

type contextKey struct{}

// WithCart attaches c to ctx
func WithCart(ctx context.Context, c *Cart) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the cart attached by the provider and panics if there is none
func FromContext(ctx context.Context) *Cart {
	c, ok := ctx.Value(contextKey{}).(*Cart)
	if !ok || c == nil {
		panic(ErrNoProvider)
	}
	return c
}
