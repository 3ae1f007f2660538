// Package cmd holds the deliverus command line.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"deliverus/configs"
	"deliverus/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "deliverus",
	Short: "DeliverUS restaurant ordering backend",
	Long: `DeliverUS serves the restaurant product API.

Configuration is read from .env and the environment (PORT, DB_DRIVER,
DB_SOURCE, JWT_SECRET, JWT_TTL, LOG_LEVEL, ADMIN_EMAIL, ADMIN_PASSWORD,
OWNER_EMAIL, OWNER_PASSWORD).`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// bootstrap loads configuration, installs the logger and opens the
// database shared by every subcommand.
func bootstrap() (*configs.Config, *slog.Logger, *gorm.DB, error) {
	cfg, err := configs.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	db, err := configs.ConnectDB(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, log, db, nil
}

func migrateAndSeed(db *gorm.DB, cfg *configs.Config) error {
	if err := configs.SetupDatabase(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := configs.SeedLookups(db); err != nil {
		return fmt.Errorf("seed lookups: %w", err)
	}
	if err := configs.SeedAdmin(db, cfg); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := configs.SeedOwner(db, cfg); err != nil {
		return fmt.Errorf("seed owner: %w", err)
	}
	return nil
}
