package cmd

import (
	"context"
	"fmt"

	"github.com/AzielCF/az-access/access/repository"
	coreconfig "github.com/AzielCF/az-access/core/config"
	coreDB "github.com/AzielCF/az-access/core/database"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the grant schema and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMigrations(cmd.Context(), coreconfig.Global)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrations(ctx context.Context, cfg *coreconfig.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Database.Driver == driverMemory {
		logrus.Warn("[MIGRATION] DB_DRIVER=memory has no schema, nothing to do")
		return nil
	}

	db, err := coreDB.NewDatabase(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := coreDB.Close(db); err != nil {
			logrus.Errorf("[MIGRATION] Error closing database: %v", err)
		}
	}()

	logrus.Infof("[MIGRATION] Migrating %s database %s", cfg.Database.Driver, cfg.Database.Name)
	if err := repository.NewGrantGormRepository(db).InitSchema(ctx); err != nil {
		return fmt.Errorf("failed to migrate grant schema: %w", err)
	}
	logrus.Info("[MIGRATION] Schema is up to date")
	return nil
}
