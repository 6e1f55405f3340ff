package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonpuzzle/internal/codec"
	"github.com/samdwyer/dungeonpuzzle/internal/daily"
)

var archiveDays int

func init() {
	archiveCmd := &cobra.Command{
		Use:   "archive",
		Short: "List recent daily puzzles",
		Long: `List the daily puzzles up to today, newest first, with a share link for each.

Examples:
  dungeonpuzzle archive
  dungeonpuzzle archive --days 30 --tz local`,
		Args: cobra.NoArgs,
		RunE: runArchive,
	}

	addDayFlags(archiveCmd)
	archiveCmd.Flags().IntVarP(&archiveDays, "days", "n", 7, "Number of days to list")

	rootCmd.AddCommand(archiveCmd)
}

func runArchive(cmd *cobra.Command, _ []string) error {
	ctx, span := startSpan(cmd)
	defer span.End()

	if archiveDays < 1 {
		return fmt.Errorf("days must be positive, got %d", archiveDays)
	}
	loc, err := dayLocation()
	if err != nil {
		return err
	}

	last := daily.DayNumber(time.Now(), loc)
	first := max(last-archiveDays+1, 0)
	entries := daily.Archive(ctx, first, last, cfg.Rows, cfg.Cols, cfg.Monster(), loc)
	span.SetAttributes(attribute.Int("archive.entries", len(entries)))

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", e.Day, e.Date.Format(time.DateOnly), codec.ShareQuery(e.Grid, false))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return ctx.Err()
}
