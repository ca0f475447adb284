package main

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"aurora_hotels/internal/adapters/observability"
	"aurora_hotels/internal/shared"
)

func main() {
	cfg, err := shared.Load()
	// initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	gen := generateCmd(cfg)
	root := &cobra.Command{
		Use:           "aurora",
		Short:         "Synthetic dataset generator for the Rede Aurora hotel chain",
		Args:          cobra.NoArgs,
		RunE:          gen.RunE,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(gen, loadCmd(cfg))

	err = root.ExecuteContext(context.Background())
	if perr := observability.Push(cfg.PushgatewayURL, "aurora", reg); perr != nil {
		log.Warn().Err(perr).Msg("metrics push failed")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("aurora failed")
	}
}
