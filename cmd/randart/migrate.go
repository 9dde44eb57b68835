package main

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

var (
	migrateDir  string
	migrateDown bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := sql.Open("pgx", cfg.GetDBConnString())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		if err := goose.SetDialect("postgres"); err != nil {
			return fmt.Errorf("failed to set goose dialect: %w", err)
		}

		if migrateDown {
			if err := goose.DownContext(cmd.Context(), db, migrateDir); err != nil {
				return fmt.Errorf("migration down failed: %w", err)
			}
			fmt.Println("Rolled back one migration.")
			return nil
		}

		if err := goose.UpContext(cmd.Context(), db, migrateDir); err != nil {
			return fmt.Errorf("migration up failed: %w", err)
		}
		fmt.Println("Migrations applied.")
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateDir, "dir", "migrations", "directory holding goose migrations")
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "roll back the most recent migration")
}
