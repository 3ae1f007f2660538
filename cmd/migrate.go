package cmd

import (
	"deliverus/configs"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, db, err := bootstrap()
		if err != nil {
			return err
		}
		if err := configs.SetupDatabase(db); err != nil {
			return err
		}
		log.Info("schema migrated")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate and seed lookups, the admin and the demo owner",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, db, err := bootstrap()
		if err != nil {
			return err
		}
		if err := migrateAndSeed(db, cfg); err != nil {
			return err
		}
		log.Info("database seeded")
		return nil
	},
}
