// Package daily maps calendar days to puzzle seeds.
package daily

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samdwyer/dungeonpuzzle/internal/world"
)

// Day 0 is 2022-10-01.
var epoch = time.Date(2022, time.October, 1, 0, 0, 0, 0, time.UTC)

const secondsPerDay = 24 * 60 * 60

// Location resolves a timezone setting: "utc" (or empty) and "local".
func Location(name string) (*time.Location, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utc", "gmt":
		return time.UTC, nil
	case "local":
		return time.Local, nil
	default:
		return nil, fmt.Errorf("unknown timezone %q (want utc or local)", name)
	}
}

// DayNumber returns the number of calendar days between the epoch and t's date in loc.
// Days before the epoch are negative. A nil loc means UTC.
func DayNumber(t time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int((day.Unix() - epoch.Unix()) / secondsPerDay)
}

// Date returns midnight in loc on the given day.
func Date(day int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(epoch.Year(), epoch.Month(), epoch.Day()+day, 0, 0, 0, 0, loc)
}

// Puzzle generates the answer grid for a day. The day number is the seed.
func Puzzle(ctx context.Context, day, rows, cols int, monster world.Tile) *world.Grid {
	return world.Generate(ctx, int64(day), rows, cols, monster)
}

// Entry is one day in the archive.
type Entry struct {
	Day  int
	Date time.Time
	Grid *world.Grid // Read-only answer
}

// Archive generates the puzzles for days first through last, newest first.
// Callers that want to play an entry take a SolvableCopy.
func Archive(ctx context.Context, first, last, rows, cols int, monster world.Tile, loc *time.Location) []Entry {
	if last < first {
		return nil
	}
	entries := make([]Entry, 0, last-first+1)
	for day := last; day >= first; day-- {
		if ctx.Err() != nil {
			break
		}
		entries = append(entries, Entry{
			Day:  day,
			Date: Date(day, loc),
			Grid: Puzzle(ctx, day, rows, cols, monster).ReadOnlyCopy(),
		})
	}
	return entries
}
