package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var schemaPath string

	command := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			schema, err := os.ReadFile(schemaPath)
			if err != nil {
				return fmt.Errorf("failed to read schema file: %w", err)
			}

			ctx := context.Background()
			pool, err := pgxpool.New(ctx, cfg.DB.Source)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer pool.Close()

			if _, err := pool.Exec(ctx, string(schema)); err != nil {
				return fmt.Errorf("failed to apply schema: %w", err)
			}
			logrus.WithFields(logrus.Fields{"component": "main", "schema": schemaPath}).Info("schema applied")
			return nil
		},
	}

	command.Flags().StringVar(&schemaPath, "schema", "db/init.sql", "path to the SQL schema")
	return command
}
