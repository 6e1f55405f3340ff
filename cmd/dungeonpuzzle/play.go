package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeonpuzzle/internal/codec"
	"github.com/samdwyer/dungeonpuzzle/internal/daily"
	"github.com/samdwyer/dungeonpuzzle/internal/game"
	"github.com/samdwyer/dungeonpuzzle/internal/world"
)

var (
	playDesign  bool
	playDaily   bool
	playSeed    int64
	playLink    string
	playPlain   bool
	playLogFile string
)

func init() {
	playCmd := &cobra.Command{
		Use:   "play [file]",
		Short: "Play or design a puzzle in the terminal",
		Long: `Open the terminal board. The puzzle comes from the file, a share link, the
daily puzzle or the generator, in that order of preference.

With --design the answer itself is edited; the finished design is printed as a
share link on exit.

Examples:
  dungeonpuzzle play --daily
  dungeonpuzzle play --seed 99
  dungeonpuzzle play --link '?puzzle=...'
  dungeonpuzzle play --design`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPlay,
	}

	playCmd.Flags().BoolVarP(&playDesign, "design", "d", false, "Edit the answer instead of solving")
	playCmd.Flags().BoolVar(&playDaily, "daily", false, "Play today's daily puzzle")
	playCmd.Flags().Int64VarP(&playSeed, "seed", "s", 0, "Generate the puzzle from this seed")
	playCmd.Flags().StringVar(&playLink, "link", "", "Share link to load")
	playCmd.Flags().BoolVar(&playPlain, "plain", false, "Draw ASCII tiles instead of emoji")
	playCmd.Flags().StringVar(&playLogFile, "log-file", "", "Write logs here while the board is open")

	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	g, err := playPuzzle(cmd, args)
	if err != nil {
		return err
	}

	// The board owns the terminal, so logs go to a file or nowhere.
	restore, err := redirectLogs(playLogFile)
	if err != nil {
		return err
	}
	defer restore()

	style := world.StylePictographic
	if playPlain {
		style = world.StylePlain
	}
	session, err := game.New(game.Options{
		Grid:    g,
		Design:  playDesign,
		Monster: cfg.Monster(),
		Style:   style,
	})
	if err != nil {
		return fmt.Errorf("open board: %w", err)
	}
	if err := session.Run(cmd.Context()); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch session.State() {
	case game.StateSolved:
		fmt.Fprintf(w, "Solved %s!\n", session.Grid().Name)
	case game.StateDesign:
		fmt.Fprintln(w, codec.ShareQuery(session.Grid(), false))
	default:
		fmt.Fprintln(w, codec.ShareQuery(session.Grid(), true))
	}
	return nil
}

// playPuzzle picks the board for the session.
func playPuzzle(cmd *cobra.Command, args []string) (*world.Grid, error) {
	switch {
	case len(args) > 0:
		return readPuzzle(cmd.InOrStdin(), args)
	case playLink != "":
		return codec.ParseShareQuery(playLink)
	case playDaily:
		day := daily.DayNumber(time.Now(), cfg.Location)
		return daily.Puzzle(cmd.Context(), day, cfg.Rows, cfg.Cols, cfg.Monster()), nil
	case cmd.Flags().Changed("seed"):
		return world.Generate(cmd.Context(), playSeed, cfg.Rows, cfg.Cols, cfg.Monster()), nil
	case playDesign:
		return world.NewEditableGrid("Untitled", cfg.Rows, cfg.Cols, world.NewTile(world.KindWall)), nil
	default:
		seed := time.Now().UnixNano()
		return world.Generate(cmd.Context(), seed, cfg.Rows, cfg.Cols, cfg.Monster()), nil
	}
}

// redirectLogs sends logrus output to path, or discards it when path is empty.
func redirectLogs(path string) (restore func(), err error) {
	prev := logrus.StandardLogger().Out
	var out io.Writer = io.Discard
	var file *os.File
	if path != "" {
		file, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = file
	}
	logrus.SetOutput(out)
	return func() {
		logrus.SetOutput(prev)
		if file != nil {
			file.Close()
		}
	}, nil
}
