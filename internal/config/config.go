// Package config reads settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/dungeonpuzzle/internal/daily"
	"github.com/samdwyer/dungeonpuzzle/internal/world"
)

// Environment variables.
const (
	EnvRows         = "DUNGEON_ROWS"
	EnvCols         = "DUNGEON_COLS"
	EnvMonsterGlyph = "DUNGEON_MONSTER_GLYPH"
	EnvTimezone     = "DUNGEON_TIMEZONE"
	EnvTelemetry    = "DUNGEON_TELEMETRY"
	EnvAPIKey       = "HONEYCOMB_DUNGEONPUZZLE_API_KEY"
	EnvDataset      = "HONEYCOMB_DUNGEONPUZZLE_DATASET"

	defaultDataset = "dungeonpuzzle"
	honeycombOTLP  = "https://api.honeycomb.io"
	maxGridSize    = 30
)

// Config holds the puzzle settings.
type Config struct {
	// Board size for generated puzzles.
	Rows, Cols int

	// Glyph painted by the monster brush and placed by the generator.
	MonsterGlyph string

	// Timezone used to pick the daily puzzle.
	Location *time.Location

	// Export traces over OTLP.
	Telemetry bool

	// Honeycomb credentials mapped onto the standard OTEL_* variables.
	APIKey  string
	Dataset string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Rows:         world.DefaultRows,
		Cols:         world.DefaultCols,
		MonsterGlyph: world.DefaultGlyph(world.KindMonster, world.StylePictographic),
		Location:     time.UTC,
		Dataset:      defaultDataset,
	}
}

// Load reads the given .env files (".env" when none are named) into the process
// environment, then parses it. A missing file is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file: %w", err)
		}
		logrus.WithError(err).Debug("env file not loaded")
	}
	return FromEnv(os.Getenv)
}

// FromEnv parses settings using getenv. Unset variables keep their defaults.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	var err error
	if cfg.Rows, err = sizeVar(getenv, EnvRows, cfg.Rows); err != nil {
		return Config{}, err
	}
	if cfg.Cols, err = sizeVar(getenv, EnvCols, cfg.Cols); err != nil {
		return Config{}, err
	}

	if glyph := strings.TrimSpace(getenv(EnvMonsterGlyph)); glyph != "" {
		if kind := world.Classify(glyph); !kind.IsMonster() {
			return Config{}, fmt.Errorf("%s: %q is a %v, not a monster", EnvMonsterGlyph, glyph, kind)
		}
		cfg.MonsterGlyph = glyph
	}

	if cfg.Location, err = daily.Location(getenv(EnvTimezone)); err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvTimezone, err)
	}

	if v := strings.TrimSpace(getenv(EnvTelemetry)); v != "" {
		if cfg.Telemetry, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvTelemetry, err)
		}
	}

	cfg.APIKey = getenv(EnvAPIKey)
	if dataset := getenv(EnvDataset); dataset != "" {
		cfg.Dataset = dataset
	}
	return cfg, nil
}

func sizeVar(getenv func(string) string, name string, fallback int) (int, error) {
	v := strings.TrimSpace(getenv(name))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if err := ValidateSize(n); err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

// ValidateSize checks a board dimension.
func ValidateSize(n int) error {
	if n < 1 || n > maxGridSize {
		return fmt.Errorf("size %d out of range 1-%d", n, maxGridSize)
	}
	return nil
}

// Monster returns the tile the generator places on dead ends.
func (c Config) Monster() world.Tile {
	return world.ParseTile(c.MonsterGlyph)
}

// ApplyOTelEnv points the OTLP exporter at Honeycomb. The headers are built here
// because .env files may hold an unexpanded variable reference.
func (c Config) ApplyOTelEnv() error {
	if err := os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", honeycombOTLP); err != nil {
		return fmt.Errorf("set otlp endpoint: %w", err)
	}
	if c.APIKey == "" {
		return nil
	}
	headers := fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", c.APIKey, c.Dataset)
	if err := os.Setenv("OTEL_EXPORTER_OTLP_HEADERS", headers); err != nil {
		return fmt.Errorf("set otlp headers: %w", err)
	}
	return nil
}
