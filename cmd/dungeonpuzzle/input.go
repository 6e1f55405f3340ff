package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/samdwyer/dungeonpuzzle/internal/codec"
	"github.com/samdwyer/dungeonpuzzle/internal/config"
	"github.com/samdwyer/dungeonpuzzle/internal/world"
)

var errEmptyPuzzle = errors.New("no puzzle tiles found")

// readPuzzle decodes a puzzle from the file named by args, or from in when args is
// empty or "-".
func readPuzzle(in io.Reader, args []string) (*world.Grid, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, fmt.Errorf("read puzzle: %w", err)
	}
	return decodePuzzle(string(data))
}

// decodePuzzle accepts puzzle text in any style, or a share link.
func decodePuzzle(text string) (*world.Grid, error) {
	text = strings.TrimSpace(text)
	if strings.Contains(text, "puzzle=") {
		return codec.ParseShareQuery(text)
	}
	g := codec.Parse(text)
	if g.Rows() == 0 || g.Cols() == 0 {
		return nil, errEmptyPuzzle
	}
	return g, nil
}

// boardSize fills zero dimensions from the config and validates both.
func boardSize(rows, cols int) (int, int, error) {
	if rows == 0 {
		rows = cfg.Rows
	}
	if cols == 0 {
		cols = cfg.Cols
	}
	if err := config.ValidateSize(rows); err != nil {
		return 0, 0, fmt.Errorf("rows: %w", err)
	}
	if err := config.ValidateSize(cols); err != nil {
		return 0, 0, fmt.Errorf("cols: %w", err)
	}
	return rows, cols, nil
}

// parseDate reads a YYYY-MM-DD date in loc. An empty string means now.
func parseDate(s string, loc *time.Location, now time.Time) (time.Time, error) {
	if s == "" || s == "today" {
		return now.In(loc), nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// output serializes g, blanking the answer first when unsolved is set.
func output(w io.Writer, g *world.Grid, styleName string, unsolved bool) error {
	style, err := codec.ParseStyle(styleName)
	if err != nil {
		return err
	}
	if unsolved {
		g = g.SolvableCopy().Unsolve()
	}
	_, err = fmt.Fprintln(w, codec.Serialize(g, style))
	return err
}
