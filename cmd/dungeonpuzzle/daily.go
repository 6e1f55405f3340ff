package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonpuzzle/internal/daily"
)

var (
	dailyDate   string
	dailyTZ     string
	dailyStyle  string
	dailyAnswer bool
)

func init() {
	dailyCmd := &cobra.Command{
		Use:   "daily",
		Short: "Show the daily puzzle",
		Long: `Show the puzzle for a day. Every day since 2022-10-01 has its own puzzle,
numbered from 0; the day number is the generator seed.

Examples:
  dungeonpuzzle daily
  dungeonpuzzle daily --date 2024-02-29 --tz local --answer`,
		Args: cobra.NoArgs,
		RunE: runDaily,
	}

	addDayFlags(dailyCmd)
	dailyCmd.Flags().StringVar(&dailyDate, "date", "", "Day as YYYY-MM-DD (default today)")
	dailyCmd.Flags().StringVar(&dailyStyle, "style", "emoji", "Output style: plain, emoji, uri or uri-unsolved")
	dailyCmd.Flags().BoolVar(&dailyAnswer, "answer", false, "Show the answer instead of the blank puzzle")

	rootCmd.AddCommand(dailyCmd)
}

// addDayFlags registers the timezone flag shared by the daily commands.
func addDayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&dailyTZ, "tz", "", "Timezone for day boundaries: utc or local (default from DUNGEON_TIMEZONE)")
}

// dayLocation resolves --tz, falling back to the config.
func dayLocation() (*time.Location, error) {
	if dailyTZ == "" {
		return cfg.Location, nil
	}
	return daily.Location(dailyTZ)
}

func runDaily(cmd *cobra.Command, _ []string) error {
	ctx, span := startSpan(cmd)
	defer span.End()

	loc, err := dayLocation()
	if err != nil {
		return err
	}
	date, err := parseDate(dailyDate, loc, time.Now())
	if err != nil {
		return err
	}

	day := daily.DayNumber(date, loc)
	g := daily.Puzzle(ctx, day, cfg.Rows, cfg.Cols, cfg.Monster())
	span.SetAttributes(attribute.Int("puzzle.day", day))

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Day %d (%s)\n", day, daily.Date(day, loc).Format(time.DateOnly))
	return output(w, g, dailyStyle, !dailyAnswer)
}
