// internal/domain/product/errors.go
package product

import "github.com/cockroachdb/errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrTooManyIDs      = errors.New("too many product ids")
)

// MaxBulkIDs caps a single bulk lookup
const MaxBulkIDs = 100
