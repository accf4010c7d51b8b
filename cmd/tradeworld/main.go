// Package main is the entry point for Tradeworld.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tradeworld/internal/game"
	"github.com/samdwyer/tradeworld/internal/telemetry"
)

type options struct {
	configPath string
	seed       int64
	logFile    string
}

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_TRADEWORLD_API_KEY available
	envErr := godotenv.Load()

	var opts options
	rootCmd := &cobra.Command{
		Use:   "tradeworld",
		Short: "Terminal tycoon: buy land, build, hire and move goods",
		Long: `Tradeworld is a terminal tycoon game. Buy land parcels, build housing
and production buildings, hire workers and drag goods between your tiles.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"YAML config file (defaults to $"+game.ConfigEnv+")")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Start a game in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				fmt.Fprintf(os.Stderr, "Note: .env file not loaded: %v\n", envErr)
			}
			return runPlay(cmd.Context(), opts)
		},
	}
	playCmd.Flags().Int64Var(&opts.seed, "seed", 0, "map seed (0 picks one at random)")
	playCmd.Flags().StringVar(&opts.logFile, "log-file", "tradeworld.log", "where to write the game log")

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print items, buildings and workers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(os.Stdout)
		},
	}

	rootCmd.AddCommand(playCmd, catalogCmd)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func runPlay(ctx context.Context, opts options) error {
	cfg, err := game.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	level, _ := cfg.Level()
	logOut, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logOut.Close()
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx,
		attribute.Int64("game.seed", cfg.Seed),
		attribute.Int("map.rows", cfg.Map.Rows),
		attribute.Int("map.cols", cfg.Map.Cols),
	)
	if err != nil {
		logger.Warn("telemetry setup failed, running without observability", "err", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Error("telemetry shutdown failed", "err", err)
			}
		}()
	}

	session, err := game.NewWorld(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	g, err := game.New(session)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer g.Close()

	return g.Run(ctx)
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// The .env file may have an unexpanded variable reference that doesn't
	// work, so the header is constructed here
	apiKey := os.Getenv("HONEYCOMB_TRADEWORLD_API_KEY")
	dataset := os.Getenv("HONEYCOMB_TRADEWORLD_DATASET")
	if dataset == "" {
		dataset = "tradeworld"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
