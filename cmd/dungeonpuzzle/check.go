package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonpuzzle/internal/telemetry"
	"github.com/samdwyer/dungeonpuzzle/internal/world"
)

var errUnsolved = errors.New("puzzle is not solved")

func init() {
	checkCmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check whether a puzzle is solved",
		Long: `Check a puzzle against the rules. The puzzle is read from the file, or from
standard input when no file (or "-") is given, in any style or as a share link.
Exits non-zero when the puzzle is not solved.

Examples:
  dungeonpuzzle generate --seed 7 | dungeonpuzzle check
  dungeonpuzzle check my-solution.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	_, span := startSpan(cmd)
	defer span.End()

	g, err := readPuzzle(cmd.InOrStdin(), args)
	if err != nil {
		telemetry.Fail(span, err)
		return err
	}

	result := g.IsSolved()
	span.SetAttributes(
		attribute.String("puzzle.name", g.Name),
		attribute.Bool("puzzle.solved", result.Solved),
	)
	fmt.Fprintln(cmd.OutOrStdout(), describe(result))
	if result.Solved {
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"name": g.Name,
		"rule": result.Rule.String(),
	}).Info("check failed")
	telemetry.Fail(span, errUnsolved)
	return errUnsolved
}

// describe renders a validation result for humans.
func describe(r world.Result) string {
	if r.Solved {
		return "solved"
	}
	return fmt.Sprintf("not solved (%s): %s", r.Rule, r.Reason)
}
