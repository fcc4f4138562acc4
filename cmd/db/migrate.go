package main

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orbitscale/orbitscale/internal/db"
	"github.com/orbitscale/orbitscale/internal/migrations"
	"github.com/orbitscale/orbitscale/internal/paths"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			sqlDB, err := openDB(cmd)
			if err != nil {
				return err
			}
			defer func() {
				_ = sqlDB.Close()
			}()

			if err := migrations.Apply(cmd.Context(), sqlDB); err != nil {
				return err
			}

			fmt.Println("Migrations applied successfully")
			return nil
		},
	}
}

func openDB(cmd *cobra.Command) (*sql.DB, error) {
	if _, err := paths.EnsureDir(); err != nil {
		return nil, err
	}
	dbPath, err := paths.DB()
	if err != nil {
		return nil, err
	}
	return db.Open(cmd.Context(), dbPath)
}
