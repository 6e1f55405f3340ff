package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeonpuzzle/internal/codec"
	"github.com/samdwyer/dungeonpuzzle/internal/telemetry"
)

var (
	shareState bool
	shareBase  string
)

func init() {
	shareCmd := &cobra.Command{
		Use:   "share [file]",
		Short: "Build a share link for a puzzle",
		Long: `Build a share link. The link never carries the answer; with --state it also
carries the walls and marks placed so far.

Examples:
  dungeonpuzzle share puzzle.txt
  dungeonpuzzle share --state --base https://example.com/dungeon progress.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShare,
	}

	shareCmd.Flags().BoolVar(&shareState, "state", false, "Include the current progress")
	shareCmd.Flags().StringVar(&shareBase, "base", "", "URL to prefix the query with")

	rootCmd.AddCommand(shareCmd)
}

func runShare(cmd *cobra.Command, args []string) error {
	_, span := startSpan(cmd)
	defer span.End()

	g, err := readPuzzle(cmd.InOrStdin(), args)
	if err != nil {
		telemetry.Fail(span, err)
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), shareBase+codec.ShareQuery(g, shareState))
	return err
}
