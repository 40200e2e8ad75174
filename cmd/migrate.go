package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	config "skill-share.com/skill-share/internal/configs"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()

		if err := config.Migrate(db); err != nil {
			return err
		}

		log.Info("database migrated", zap.String("driver", cfg.DatabaseDriver))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
