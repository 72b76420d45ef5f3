// internal/pkg/pagination/pagination.go
package pagination

import (
	"math"

	"github.com/cockroachdb/errors"
)

const (
	// DefaultPageSize is used when the requested size is missing or invalid
	DefaultPageSize = 12
	// MaxPageSize caps any page request
	MaxPageSize = 100
	// MaxPage keeps (page-1)*pageSize from overflowing
	MaxPage = math.MaxInt32
)

var (
	ErrInvalidPage     = errors.New("Page must be a number greater than 0")
	ErrPageTooLarge    = errors.New("Page is out of range")
	ErrInvalidPageSize = errors.New("Page size must be between 1 and 100")
)

// Meta describes where a page sits within the full result set
type Meta struct {
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
}

// CalculateOffset converts a 1-indexed page into skip/take values.
//
//	CalculateOffset(2, 12) // 12, 12
func CalculateOffset(page, pageSize int) (skip, take int) {
	return (page - 1) * pageSize, pageSize
}

// CalculateMeta builds pagination metadata; totalPages rounds up.
//
//	CalculateMeta(2, 12, 50) // {2 12 50 5}
func CalculateMeta(page, pageSize int, totalItems int64) Meta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	}

	return Meta{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
	}
}

// ValidateParams returns nil when both values are in range
func ValidateParams(page, pageSize int) error {
	if page < 1 {
		return ErrInvalidPage
	}
	if page > MaxPage {
		return ErrPageTooLarge
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return ErrInvalidPageSize
	}
	return nil
}

// Normalize replaces out-of-range values with the defaults (page 1, size 12)
func Normalize(page, pageSize int) (int, int) {
	if page < 1 || page > MaxPage {
		page = 1
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}
