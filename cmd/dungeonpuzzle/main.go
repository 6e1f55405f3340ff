// Package main is the entry point for the dungeon puzzle CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeonpuzzle/internal/config"
	"github.com/samdwyer/dungeonpuzzle/internal/telemetry"
)

var (
	cfg      config.Config
	envFile  string
	logLevel string

	shutdownTelemetry func(context.Context) error
)

var rootCmd = &cobra.Command{
	Use:   "dungeonpuzzle",
	Short: "Generate, check and play Dungeons & Diagrams puzzles",
	Long: `Dungeons & Diagrams is a logic puzzle: place walls so each row and column
matches its target, every dead end holds a monster, and every treasure sits
in a 3x3 treasure room.

Settings are read from the environment and an optional .env file.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Env file with settings")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if shutdownTelemetry != nil {
		if serr := shutdownTelemetry(context.Background()); serr != nil {
			logrus.WithError(serr).Warn("telemetry shutdown failed")
		}
	}
	if err != nil {
		os.Exit(1)
	}
}

// setup configures logging, loads settings and starts telemetry when enabled.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(cmd.ErrOrStderr())

	if cfg, err = config.Load(envFile); err != nil {
		return err
	}
	if !cfg.Telemetry {
		return nil
	}

	if err := cfg.ApplyOTelEnv(); err != nil {
		return err
	}
	shutdown, err := telemetry.Setup(cmd.Context(),
		attribute.Int("dungeon.rows", cfg.Rows),
		attribute.Int("dungeon.cols", cfg.Cols),
		attribute.String("dungeon.timezone", cfg.Location.String()),
	)
	if err != nil {
		// The puzzle tools work without traces.
		logrus.WithError(err).Warn("telemetry setup failed")
		return nil
	}
	shutdownTelemetry = shutdown
	logrus.WithField("dataset", cfg.Dataset).Debug("telemetry enabled")
	return nil
}

// startSpan opens a span named after the running command.
func startSpan(cmd *cobra.Command) (context.Context, trace.Span) {
	return telemetry.Tracer("cli").Start(cmd.Context(), "cli."+cmd.Name())
}
