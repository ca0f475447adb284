package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	redisad "aurora_hotels/internal/adapters/redis"
	"aurora_hotels/internal/app"
	"aurora_hotels/internal/domain"
	"aurora_hotels/internal/shared"
	mysqlload "aurora_hotels/internal/storage/mysql"
)

func generateCmd(cfg shared.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the dataset and write one CSV per table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var manifests domain.ManifestStore
			if cfg.RedisAddr != "" {
				store := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.ManifestTTL)
				defer store.Close()
				manifests = store
			}
			svc := app.NewGenerationService(manifests, os.Stdout, log.Logger)
			_, err := svc.Run(cmd.Context(), cfg.Generator, app.GenerateOptions{
				OutputDir: cfg.OutputDir,
				XLSX:      cfg.XLSX,
			})
			return err
		},
	}
}

func loadCmd(cfg shared.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Load the exported CSV directory into MySQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := sql.Open("mysql", cfg.MySQLDSN)
			if err != nil {
				return fmt.Errorf("sql.Open: %w", err)
			}
			defer db.Close()
			if err := db.PingContext(cmd.Context()); err != nil {
				return fmt.Errorf("db ping: %w", err)
			}
			log.Info().Msg("db ping ok")

			loader := mysqlload.New(db, mysqlload.Options{
				Workers:       cfg.LoadWorkers,
				BatchSize:     cfg.LoadBatchSize,
				BatchesPerSec: cfg.BatchesPerSec,
			})
			return app.NewLoadService(loader, log.Logger).Run(cmd.Context(), cfg.OutputDir)
		},
	}
}
