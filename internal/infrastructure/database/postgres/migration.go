// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/weirdbites/storefront/internal/domain/product"
	"gorm.io/gorm"
)

// Migration handles database migrations and seed data
type Migration struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB, log logrus.FieldLogger) *Migration {
	return &Migration{
		db:  db,
		log: log,
	}
}

// TableInfo is a row count for one table
type TableInfo struct {
	Name  string
	Count int64
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	m.log.Info("🔄 Running database auto-migrations...")

	models := []interface{}{
		&product.Product{},
	}

	for _, model := range models {
		m.log.Infof("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return errors.Wrapf(err, "failed to migrate model %T", model)
		}
	}

	m.log.Info("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for the listing queries
func (m *Migration) CreateIndexes() error {
	m.log.Info("🔄 Creating additional database indexes...")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_category_name ON products(category, name)",
		"CREATE INDEX IF NOT EXISTS idx_products_featured_created ON products(is_featured, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",
	}

	for _, index := range indexes {
		if err := m.db.Exec(index).Error; err != nil {
			return errors.Wrapf(err, "failed to create index: %s", index)
		}
	}

	m.log.Info("✅ Database indexes created successfully")
	return nil
}

// SeedInitialData loads the starter catalog when the products table is empty.
// It returns the number of products created.
func (m *Migration) SeedInitialData(ctx context.Context) (int, error) {
	m.log.Info("🌱 Seeding initial data...")

	var productCount int64
	if err := m.db.WithContext(ctx).Model(&product.Product{}).Count(&productCount).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	if productCount > 0 {
		m.log.Infof("⏭️ Catalog already has %d products", productCount)
		return 0, nil
	}

	products := catalogSeed()

	// Stagger creation times so "newest" has a stable meaning
	base := time.Now().UTC().Add(-time.Duration(len(products)) * time.Second)
	for i := range products {
		products[i].CreatedAt = base.Add(time.Duration(i) * time.Second)
		products[i].UpdatedAt = products[i].CreatedAt
	}

	if err := m.db.WithContext(ctx).Create(&products).Error; err != nil {
		return 0, errors.Wrap(err, "failed to seed products")
	}

	for _, p := range products {
		m.log.Debugf("✅ Created product: %s", p.Name)
	}

	m.log.Infof("✅ Seeded %d products", len(products))
	return len(products), nil
}

// ResetCatalog deletes every product
func (m *Migration) ResetCatalog(ctx context.Context) error {
	m.log.Warn("⚠️ WARNING: Deleting all products...")

	result := m.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&product.Product{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete products")
	}

	m.log.Infof("🗑️ Removed %d products", result.RowsAffected)
	return nil
}

// DropAllTables drops every table owned by the storefront
func (m *Migration) DropAllTables() error {
	m.log.Warn("⚠️ WARNING: Dropping all database tables...")

	if err := m.db.Migrator().DropTable(&product.Product{}); err != nil {
		return errors.Wrap(err, "failed to drop products")
	}

	m.log.Info("🗑️ Dropped table: products")
	return nil
}

// GetTableInfo counts rows per table in the public schema
func (m *Migration) GetTableInfo(ctx context.Context) ([]TableInfo, error) {
	var tables []string

	if err := m.db.WithContext(ctx).
		Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename").
		Scan(&tables).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tables")
	}

	m.log.Info("📊 Database Tables Information:")

	info := make([]TableInfo, 0, len(tables))
	totalRecords := int64(0)
	for _, table := range tables {
		var count int64
		if err := m.db.WithContext(ctx).Table(table).Count(&count).Error; err != nil {
			return nil, errors.Wrapf(err, "failed to count %s", table)
		}
		totalRecords += count

		status := "✅"
		if count == 0 {
			status = "📭"
		}
		m.log.Infof("%s %-25s | %d records", status, table, count)

		info = append(info, TableInfo{Name: table, Count: count})
	}

	m.log.Infof("📈 Total records across all tables: %d", totalRecords)
	return info, nil
}
