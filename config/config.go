// Package config loads the runtime settings of the keypad controller from .env files and
// the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvSPI      = "LEDMATRIX_SPI"
	EnvRows     = "LEDMATRIX_ROWS"
	EnvCols     = "LEDMATRIX_COLS"
	EnvLayout   = "LEDMATRIX_LAYOUT"
	EnvDebounce = "LEDMATRIX_DEBOUNCE"
	EnvPoll     = "LEDMATRIX_POLL"
	EnvLogLevel = "LEDMATRIX_LOG_LEVEL"
)

// Config holds the controller settings.
type Config struct {
	SPIBus   string   // spireg name; empty selects the first bus
	RowPins  []string // gpioreg names, top row first
	ColPins  []string // gpioreg names, left column first
	Layout   string   // see ledmatrix.ParseLayout
	Debounce time.Duration
	Poll     time.Duration
	LogLevel slog.Level
}

// Default returns the settings for the reference wiring: rows on GPIO 28, 27, 26, 22 and
// columns on GPIO 21, 20, 19, 18.
func Default() Config {
	return Config{
		RowPins:  []string{"GPIO28", "GPIO27", "GPIO26", "GPIO22"},
		ColPins:  []string{"GPIO21", "GPIO20", "GPIO19", "GPIO18"},
		Layout:   "serpentine",
		Debounce: 300 * time.Millisecond,
		Poll:     50 * time.Millisecond,
		LogLevel: slog.LevelInfo,
	}
}

// Load loads each existing file in paths into the environment, then returns Default
// overridden by the LEDMATRIX_* variables. Variables already set in the environment are
// not replaced by file values. Missing files are skipped.
func Load(paths ...string) (Config, error) {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return Config{}, fmt.Errorf("config: failed to load %s: %w", p, err)
		}
	}
	return FromEnv()
}

// FromEnv returns Default overridden by the LEDMATRIX_* variables.
func FromEnv() (Config, error) {
	c := Default()
	if v, ok := os.LookupEnv(EnvSPI); ok {
		c.SPIBus = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvRows); ok {
		c.RowPins = splitList(v)
	}
	if v, ok := lookup(EnvCols); ok {
		c.ColPins = splitList(v)
	}
	if v, ok := lookup(EnvLayout); ok {
		c.Layout = v
	}
	var err error
	if c.Debounce, err = duration(EnvDebounce, c.Debounce); err != nil {
		return Config{}, err
	}
	if c.Poll, err = duration(EnvPoll, c.Poll); err != nil {
		return Config{}, err
	}
	if v, ok := lookup(EnvLogLevel); ok {
		if err := c.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvLogLevel, err)
		}
	}
	return c, c.Validate()
}

// Validate reports settings the controller cannot run with.
func (c Config) Validate() error {
	if len(c.RowPins) != 4 {
		return fmt.Errorf("config: need 4 row pins, got %d", len(c.RowPins))
	}
	if len(c.ColPins) != 4 {
		return fmt.Errorf("config: need 4 column pins, got %d", len(c.ColPins))
	}
	if c.Debounce < 0 || c.Poll < 0 {
		return errors.New("config: delays must not be negative")
	}
	return nil
}

// lookup returns the trimmed value of a variable that is set and not blank.
func lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

func duration(key string, def time.Duration) (time.Duration, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
