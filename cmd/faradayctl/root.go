package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/faraday-ai/faraday/internal/db"
)

var (
	dbDriver string
	dbDSN    string
)

var rootCmd = &cobra.Command{
	Use:   "faradayctl",
	Short: "Admin tooling for the Faraday AI backend",
	Long: `faradayctl manages a Faraday AI deployment from the command line:
seed sample PE curriculum, load users, and inspect the database the gateway
serves from.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbDriver, "db-driver", "sqlite", "database driver (sqlite|postgres)")
	rootCmd.PersistentFlags().StringVar(&dbDSN, "db-dsn", "", "database DSN (driver default when empty)")
}

func openDB(ctx context.Context) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return db.Open(ctx, db.Driver(dbDriver), dbDSN)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
