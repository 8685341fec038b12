// Command migrate applies the record-store schema to DATABASE_URL.
//
//	go run ./cmd/migrate          # apply pending migrations
//	go run ./cmd/migrate version  # print the current schema version
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"resume-extractor/internal/shared/config"
	"resume-extractor/internal/shared/storage/db"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var databaseURL string
	connect := func(ctx context.Context) (*sql.DB, error) {
		url := strings.TrimSpace(databaseURL)
		if url == "" {
			url = config.Load().DatabaseURL
		}
		if url == "" {
			return nil, fmt.Errorf("DATABASE_URL not set (set DATABASE_URL or use --db-url)")
		}
		sqlDB, err := db.Connect(ctx, url, db.OptionsFromEnv(db.DefaultMigrateOptions()))
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		return sqlDB, nil
	}

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply pending record-store migrations",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sqlDB, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer sqlDB.Close()
			return db.RunMigrations(cmd.Context(), sqlDB)
		},
	}
	root.PersistentFlags().StringVar(&databaseURL, "db-url", "", "Database URL (overrides DATABASE_URL)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sqlDB, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer sqlDB.Close()
			version, err := db.Version(cmd.Context(), sqlDB)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	})
	return root
}
