// internal/domain/cart/entity.go
package cart

import (
	"time"
)

// Line is one product held in the cart
type Line struct {
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

// snapshot is the stored form of a cart. Timestamps are kept as strings so
// a malformed value can be told apart from a missing one.
type snapshot struct {
	Items     []snapshotLine `json:"items"`
	ExpiresAt string         `json:"expiresAt"`
}

type snapshotLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	AddedAt   string `json:"addedAt"`
}

// Clock returns the current time
type Clock func() time.Time

// SystemClock is the wall clock
func SystemClock() time.Time {
	return time.Now()
}
