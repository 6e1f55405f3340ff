package codec

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/samdwyer/dungeonpuzzle/internal/world"
)

// ErrNoPuzzle is returned when a share link has no puzzle parameter.
var ErrNoPuzzle = errors.New("share link has no puzzle parameter")

// StateString records the solver's progress: each row's plain codes with trailing
// floors trimmed, rows joined by "!".
func StateString(g *world.Grid) string {
	rows := make([]string, g.Rows())
	for r := range rows {
		var b strings.Builder
		for _, t := range g.TilesInRect(r, 0, 1, g.Cols()) {
			b.WriteString(t.Text(world.StylePlain))
		}
		rows[r] = strings.TrimRight(b.String(), ".")
	}
	return strings.Join(rows, "!")
}

// ApplyState restores progress written by StateString. Only solvable kinds are
// written, and only onto cells the grid lets the caller edit; cells the state
// does not cover become floor. It returns the number of tiles changed.
func ApplyState(g *world.Grid, state string) int {
	lines := newLexer(state).lines()

	changed := 0
	g.Batch(func() {
		for c, current := range g.All() {
			kind := world.KindFloor
			if c.Row < len(lines) && c.Col < len(lines[c.Row]) {
				kind = world.Classify(lines[c.Row][c.Col])
			}
			if !kind.IsSolvable() || !current.IsSolvable() || current.Kind == kind {
				continue
			}
			if g.Set(c.Row, c.Col, world.NewTile(kind)) {
				changed++
			}
		}
	})
	return changed
}

// ShareQuery builds "?puzzle=<unsolved puzzle>", optionally followed by
// "#?state=<progress>". The puzzle part never carries the answer.
func ShareQuery(g *world.Grid, includeState bool) string {
	blank := g.SolvableCopy().Unsolve()
	query := "?puzzle=" + url.QueryEscape(Serialize(blank, StyleURIUnsolved))
	if includeState {
		query += "#?state=" + url.QueryEscape(StateString(g))
	}
	return query
}

// ParseShareQuery reads a link or query string built by ShareQuery and returns the
// puzzle with any saved progress applied.
func ParseShareQuery(link string) (*world.Grid, error) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return nil, fmt.Errorf("parse share link: %w", err)
	}
	query, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("parse share query: %w", err)
	}
	puzzle := query.Get("puzzle")
	if puzzle == "" {
		return nil, ErrNoPuzzle
	}

	g := Parse(puzzle)
	if fragment := strings.TrimPrefix(u.EscapedFragment(), "?"); fragment != "" {
		params, err := url.ParseQuery(fragment)
		if err != nil {
			return nil, fmt.Errorf("parse share state: %w", err)
		}
		if state := params.Get("state"); state != "" {
			ApplyState(g, state)
		}
	}
	return g, nil
}
