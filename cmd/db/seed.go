package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orbitscale/orbitscale/internal/metric"
	"github.com/orbitscale/orbitscale/internal/migrations"
	"github.com/orbitscale/orbitscale/internal/repository"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default metric types (no-op for rows already present)",
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

			repo := repository.New(sqlDB)
			types := metric.DefaultTypes()
			if err := repo.MetricTypes.BulkInsert(cmd.Context(), types); err != nil {
				return err
			}
			if err := repo.Settings.SetFirstAppStart(cmd.Context(), false); err != nil {
				return err
			}

			fmt.Printf("Seeded %d metric types\n", len(types))
			return nil
		},
	}
}
