package main

import (
	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeonpuzzle/internal/telemetry"
)

var (
	renderStyle    string
	renderUnsolved bool
)

func init() {
	renderCmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Convert a puzzle to another style",
		Long: `Read a puzzle in any style (or a share link) and write it in the chosen style.

Examples:
  dungeonpuzzle render --style plain puzzle.txt
  echo '?puzzle=...' | dungeonpuzzle render --style emoji`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRender,
	}

	renderCmd.Flags().StringVar(&renderStyle, "style", "emoji", "Output style: plain, emoji, uri or uri-unsolved")
	renderCmd.Flags().BoolVarP(&renderUnsolved, "unsolved", "u", false, "Hide the answer")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	_, span := startSpan(cmd)
	defer span.End()

	g, err := readPuzzle(cmd.InOrStdin(), args)
	if err != nil {
		telemetry.Fail(span, err)
		return err
	}
	return output(cmd.OutOrStdout(), g, renderStyle, renderUnsolved)
}
