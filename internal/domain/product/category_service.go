// internal/domain/product/category_service.go
package product

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/weirdbites/storefront/internal/config"
	"gorm.io/gorm"
)

// CategoryService handles category business logic.
// Categories are not a table of their own; they are derived from products.
type CategoryService struct {
	db     *gorm.DB
	config *config.Config
}

// NewCategoryService creates a new category service
func NewCategoryService(db *gorm.DB, cfg *config.Config) *CategoryService {
	return &CategoryService{
		db:     db,
		config: cfg,
	}
}

// GetCategoriesWithCount lists every category with its product count, by name
func (s *CategoryService) GetCategoriesWithCount(ctx context.Context) ([]CategoryCount, error) {
	categories := []CategoryCount{}

	if err := s.db.WithContext(ctx).Model(&Product{}).
		Select("category AS name, COUNT(*) AS count").
		Group("category").
		Order("category ASC").
		Scan(&categories).Error; err != nil {
		return nil, errors.Wrap(err, "failed to retrieve categories")
	}

	return categories, nil
}
