package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orbitscale/orbitscale/internal/repository"
)

func resetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Factory reset: delete all data and raise the first-start flag",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to reset without --yes")
			}

			sqlDB, err := openDB(cmd)
			if err != nil {
				return err
			}
			defer func() {
				_ = sqlDB.Close()
			}()

			repo := repository.New(sqlDB)
			ctx := cmd.Context()

			if err := repo.Measurements.DeleteAll(ctx); err != nil {
				return err
			}
			if err := repo.MetricTypes.DeleteAll(ctx); err != nil {
				return err
			}
			// Raised last: the next app start re-seeds against empty tables.
			if err := repo.Settings.SetFirstAppStart(ctx, true); err != nil {
				return err
			}

			fmt.Println("Database reset; defaults will be seeded on next start")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
