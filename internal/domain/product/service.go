// internal/domain/product/service.go
package product

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/weirdbites/storefront/internal/config"
	"github.com/weirdbites/storefront/internal/pkg/pagination"
	"gorm.io/gorm"
)

// Service handles product business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new product service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ProductListRequest represents product list query parameters
type ProductListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
	Category string `form:"category"`
}

// ProductResponse represents a page of products
type ProductResponse struct {
	Products   []Product       `json:"products"`
	Pagination pagination.Meta `json:"pagination"`
}

// byCategory restricts a query to one category; empty means all
func byCategory(category string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if category == "" {
			return db
		}
		return db.Where("category = ?", category)
	}
}

// GetProducts retrieves one page of products ordered by name
func (s *Service) GetProducts(ctx context.Context, req *ProductListRequest) (*ProductResponse, error) {
	if err := pagination.ValidateParams(req.Page, req.PageSize); err != nil {
		return nil, err
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&Product{}).
		Scopes(byCategory(req.Category)).
		Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	skip, take := pagination.CalculateOffset(req.Page, req.PageSize)

	products := []Product{}
	if err := s.db.WithContext(ctx).
		Scopes(byCategory(req.Category)).
		Order("name ASC").
		Offset(skip).
		Limit(take).
		Find(&products).Error; err != nil {
		return nil, errors.Wrap(err, "failed to retrieve products")
	}

	return &ProductResponse{
		Products:   products,
		Pagination: pagination.CalculateMeta(req.Page, req.PageSize, total),
	}, nil
}

// ListProducts returns the first limit products ordered by name
func (s *Service) ListProducts(ctx context.Context, limit int) ([]Product, error) {
	products := []Product{}
	if err := s.db.WithContext(ctx).
		Order("name ASC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, errors.Wrap(err, "failed to retrieve products")
	}
	return products, nil
}

// GetProduct retrieves a single product by ID
func (s *Service) GetProduct(ctx context.Context, id string) (*Product, error) {
	var product Product
	result := s.db.WithContext(ctx).Where("id = ?", id).First(&product)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errors.Wrapf(result.Error, "failed to retrieve product %s", id)
	}

	return &product, nil
}

// GetProductsByIDs returns the cart display projection for the given IDs.
// Unknown IDs are skipped; the result order is unspecified.
func (s *Service) GetProductsByIDs(ctx context.Context, ids []string) ([]BulkProduct, error) {
	if len(ids) > MaxBulkIDs {
		return nil, errors.Wrapf(ErrTooManyIDs, "got %d, max %d", len(ids), MaxBulkIDs)
	}

	products := []BulkProduct{}
	if len(ids) == 0 {
		return products, nil
	}

	if err := s.db.WithContext(ctx).Model(&Product{}).
		Select("id", "name", "price", "image_url", "stock").
		Where("id IN ?", ids).
		Find(&products).Error; err != nil {
		return nil, errors.Wrap(err, "failed to retrieve products")
	}

	return products, nil
}

// GetFeaturedProducts returns featured products, newest first
func (s *Service) GetFeaturedProducts(ctx context.Context, limit int) ([]Product, error) {
	products := []Product{}
	if err := s.db.WithContext(ctx).
		Where("is_featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, errors.Wrap(err, "failed to retrieve featured products")
	}
	return products, nil
}

// MarkFeatured flags the n newest products as featured and returns them
func (s *Service) MarkFeatured(ctx context.Context, n int) ([]Product, error) {
	var newest []Product
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(n).
		Find(&newest).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find newest products")
	}

	if len(newest) == 0 {
		return newest, nil
	}

	ids := make([]string, 0, len(newest))
	for i := range newest {
		ids = append(ids, newest[i].ID)
		newest[i].IsFeatured = true
	}

	if err := s.db.WithContext(ctx).Model(&Product{}).
		Where("id IN ?", ids).
		Update("is_featured", true).Error; err != nil {
		return nil, errors.Wrap(err, "failed to mark products as featured")
	}

	return newest, nil
}
