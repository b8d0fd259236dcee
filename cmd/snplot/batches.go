package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"snplot/adapters/postgres"
)

var batchesCmd = &cobra.Command{
	Use:   "batches",
	Short: "List observation batches stored in the database",
	Args:  cobra.NoArgs,
	RunE:  runBatches,
}

func init() {
	rootCmd.AddCommand(batchesCmd)
}

func runBatches(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("batches requires DATABASE_URL to be set")
	}

	db, err := sqlx.Open("postgres", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ids, err := postgres.NewObservationRepository(db).ListBatches(cmd.Context())
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}
