package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonpuzzle/internal/world"
)

var (
	genSeed     int64
	genRows     int
	genCols     int
	genStyle    string
	genUnsolved bool
)

func init() {
	genCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle",
		Long: `Generate a puzzle from a seed. The same seed and size always give the same
puzzle. Without --seed a seed is picked from the clock.

Examples:
  dungeonpuzzle generate --seed 42
  dungeonpuzzle generate -r 10 -c 10 --style plain --unsolved`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	genCmd.Flags().Int64VarP(&genSeed, "seed", "s", 0, "Seed, normalized into 1-30000")
	genCmd.Flags().IntVarP(&genRows, "rows", "r", 0, "Rows (default from DUNGEON_ROWS)")
	genCmd.Flags().IntVarP(&genCols, "cols", "c", 0, "Columns (default from DUNGEON_COLS)")
	genCmd.Flags().StringVar(&genStyle, "style", "emoji", "Output style: plain, emoji, uri or uri-unsolved")
	genCmd.Flags().BoolVarP(&genUnsolved, "unsolved", "u", false, "Hide the answer")

	rootCmd.AddCommand(genCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx, span := startSpan(cmd)
	defer span.End()

	rows, cols, err := boardSize(genRows, genCols)
	if err != nil {
		return err
	}
	seed := genSeed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}

	g := world.Generate(ctx, seed, rows, cols, cfg.Monster())
	span.SetAttributes(
		attribute.Int64("puzzle.seed", seed),
		attribute.String("puzzle.name", g.Name),
	)
	logrus.WithFields(logrus.Fields{
		"seed": seed,
		"name": g.Name,
	}).Info("generated puzzle")

	if err := output(cmd.OutOrStdout(), g, genStyle, genUnsolved); err != nil {
		return fmt.Errorf("write puzzle: %w", err)
	}
	return nil
}
