package configs

import (
	"fmt"
	"strings"

	"deliverus/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDB opens the database selected by DB_DRIVER.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBSource)
	case "sqlite":
		dialector = sqlite.Open(SQLiteDSN(cfg.DBSource))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	gormLogger := logger.Default.LogMode(logger.Warn)
	if cfg.LogLevel == "debug" {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}
	return db, nil
}

// SQLiteDSN adds the connection options product writes rely on: writer
// transactions start with BEGIN IMMEDIATE, so a second writer waits up to
// the busy timeout instead of failing with "database is locked".
func SQLiteDSN(source string) string {
	params := []string{}
	if !strings.Contains(source, "_txlock=") {
		params = append(params, "_txlock=immediate")
	}
	if !strings.Contains(source, "_busy_timeout=") {
		params = append(params, "_busy_timeout=5000")
	}
	if len(params) == 0 {
		return source
	}
	sep := "?"
	if strings.Contains(source, "?") {
		sep = "&"
	}
	return source + sep + strings.Join(params, "&")
}

// SetupDatabase migrates the schema.
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.RestaurantCategory{}, &entity.Restaurant{},
		&entity.ProductCategory{}, &entity.Product{},
	)
}
