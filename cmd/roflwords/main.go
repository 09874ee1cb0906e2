// Package main is the entry point for RoflWords.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/samdwyer/roflwords/internal/game"
	"github.com/samdwyer/roflwords/internal/telemetry"
	"github.com/samdwyer/roflwords/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Info().Err(err).Msg(".env file not loaded")
	}

	setupOTelEnv()

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// The terminal belongs to the game screen, so logs go to a file from here on
	logFile, err := setupLogger(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.LogFile).Msg("failed to open log file")
	}
	defer logFile.Close()

	ctx := context.Background()

	var opts []game.Option
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("telemetry setup failed, game will run without observability")
		opts = append(opts, game.WithTracer(telemetry.NoopTracer()))
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Error().Err(err).Msg("error shutting down telemetry")
			}
		}()
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open terminal screen")
	}

	g, err := game.New(ctx, cfg, screen, log.Logger, opts...)
	if err != nil {
		screen.Close()
		fmt.Fprintf(os.Stderr, "Failed to initialize game: %v\n", err)
		log.Fatal().Err(err).Msg("failed to initialize game")
	}

	log.Info().
		Str("session_id", g.Session().ID().String()).
		Int("rows", cfg.Rows).
		Int("columns", cfg.Columns).
		Msg("game started")

	if err := g.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("game error")
	}
	log.Info().Int("total", g.Session().TotalScore()).Msg("game over")
}

// setupLogger points the global zerolog logger at cfg.LogFile with the configured level.
func setupLogger(cfg game.Config) (io.Closer, error) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Build the headers here; an unexpanded reference in .env does not work
	apiKey := os.Getenv("HONEYCOMB_ROFLWORDS_API_KEY")
	dataset := os.Getenv("HONEYCOMB_ROFLWORDS_DATASET")
	if dataset == "" {
		dataset = "roflwords" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
