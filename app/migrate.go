package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/engine"
)

var withLegacy bool

func init() { //nolint: gochecknoinits
	migrateCmd.Flags().BoolVar(&withLegacy, "legacy", false, "Also create the Wo_* tables (fresh installs only)")

	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(_ *cobra.Command, _ []string) error {
		db, err := engine.Open(&cfg)
		if err != nil {
			return err
		}

		if err = engine.Migrate(db, withLegacy); err != nil {
			return err
		}

		log.Info().Bool("legacy", withLegacy).Msg("schema migrated")

		return nil
	},
}
