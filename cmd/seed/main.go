// cmd/seed/main.go
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/weirdbites/storefront/internal/config"
	"github.com/weirdbites/storefront/internal/domain/product"
	"github.com/weirdbites/storefront/internal/infrastructure/database/postgres"
	"github.com/weirdbites/storefront/internal/pkg/logger"
)

func main() {
	drop := flag.Bool("drop", false, "drop and recreate the storefront tables before seeding")
	reset := flag.Bool("reset", false, "delete every product before seeding")
	featured := flag.Int("featured", 6, "number of newest products to mark as featured (0 to skip)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(cfg.Logging)

	db, err := postgres.NewConnection(cfg, logg)
	if err != nil {
		logg.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	migration := postgres.NewMigration(db.GetDB(), logg)
	if *drop {
		if err := migration.DropAllTables(); err != nil {
			logg.Fatalf("Drop failed: %v", err)
		}
	}
	if err := migration.RunAutoMigrations(); err != nil {
		logg.Fatalf("Database migration failed: %v", err)
	}

	if *reset {
		if err := migration.ResetCatalog(ctx); err != nil {
			logg.Fatalf("Reset failed: %v", err)
		}
	}

	if _, err := migration.SeedInitialData(ctx); err != nil {
		logg.Fatalf("Seeding failed: %v", err)
	}

	if *featured > 0 {
		marked, err := product.NewService(db.GetDB(), cfg).MarkFeatured(ctx, *featured)
		if err != nil {
			logg.Fatalf("Marking featured products failed: %v", err)
		}
		for _, p := range marked {
			logg.Infof("⭐ Featured: %s", p.Name)
		}
	}

	logg.Info("✅ Seed completed")
}
