// Package testdb opens migrated in-memory databases for tests.
package testdb

import (
	"testing"

	"deliverus/configs"
	"deliverus/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New returns a migrated in-memory SQLite database closed with the test.
func New(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("sql db: %v", err)
	}
	// every connection to :memory: is a new database
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { sqlDB.Close() })

	if err := configs.SetupDatabase(db); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	return db
}

// Fixture is the data most product tests start from.
type Fixture struct {
	Owner      entity.User
	Other      entity.User
	Restaurant entity.Restaurant
	Category   entity.ProductCategory
}

// Seed creates two owners, a restaurant of the first one and a product
// category.
func Seed(tb testing.TB, db *gorm.DB) Fixture {
	tb.Helper()

	f := Fixture{
		Owner:    entity.User{Email: "owner1@owner.com", Role: entity.RoleOwner},
		Other:    entity.User{Email: "owner2@owner.com", Role: entity.RoleOwner},
		Category: entity.ProductCategory{Name: "Starters"},
	}
	must(tb, db.Create(&f.Owner).Error)
	must(tb, db.Create(&f.Other).Error)
	must(tb, db.Create(&f.Category).Error)

	f.Restaurant = entity.Restaurant{Name: "Casa Félix", UserID: f.Owner.ID}
	must(tb, db.Create(&f.Restaurant).Error)
	return f
}

// Product inserts a product of restaurant restID.
func Product(tb testing.TB, db *gorm.DB, restID, categoryID uint, promoted, highlight bool) entity.Product {
	tb.Helper()

	p := entity.Product{
		Name:              "Ensaladilla",
		Price:             4.5,
		Availability:      true,
		Promoted:          promoted,
		Highlight:         highlight,
		ProductCategoryID: categoryID,
		RestaurantID:      restID,
	}
	must(tb, db.Create(&p).Error)
	return p
}

func must(tb testing.TB, err error) {
	tb.Helper()
	if err != nil {
		tb.Fatalf("seed: %v", err)
	}
}
