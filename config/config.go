// Package config loads the settings of the runnable programs from the
// environment, optionally seeded by a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/maze"
)

// ErrInvalidValue is returned when a variable is set but cannot be parsed.
var ErrInvalidValue = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvHeight      = "MAZE_HEIGHT"
	EnvWidth       = "MAZE_WIDTH"
	EnvRewards     = "MAZE_REWARDS"
	EnvSeed        = "MAZE_SEED"
	EnvBraidChance = "MAZE_BRAID_CHANCE"
	EnvLogLevel    = "LOG_LEVEL"
)

// Config holds the program settings.
type Config struct {
	Height      int          // maze rows
	Width       int          // maze columns
	Rewards     int          // reward cells to place
	Seed        int64        // 0 lets the program pick a time-based seed
	BraidChance float64      // loop density
	LogLevel    logrus.Level // logrus threshold
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Height:      maze.DefaultHeight,
		Width:       maze.DefaultWidth,
		Rewards:     maze.DefaultRewards,
		BraidChance: maze.DefaultOptions().BraidChance,
		LogLevel:    logrus.InfoLevel,
	}
}

// Load reads files (default ".env") and the process environment. Process
// variables win over file values. A missing default .env is not an error;
// a missing explicit file is.
func Load(files ...string) (Config, error) {
	optional := len(files) == 0
	if optional {
		files = []string{".env"}
	}

	fromFile, err := godotenv.Read(files...)
	if err != nil {
		if !optional || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: read %v: %w", files, err)
		}
		fromFile = map[string]string{}
	}

	return parse(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fromFile[key]
		return v, ok
	})
}

// lookupFunc resolves one variable; ok is false when it is unset.
type lookupFunc func(key string) (value string, ok bool)

func parse(lookup lookupFunc) (Config, error) {
	c := Default()
	var err error

	if c.Height, err = getInt(lookup, EnvHeight, c.Height); err != nil {
		return Config{}, err
	}
	if c.Width, err = getInt(lookup, EnvWidth, c.Width); err != nil {
		return Config{}, err
	}
	if c.Rewards, err = getInt(lookup, EnvRewards, c.Rewards); err != nil {
		return Config{}, err
	}
	if v, ok := lookup(EnvSeed); ok {
		if c.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvSeed, v)
		}
	}
	if v, ok := lookup(EnvBraidChance); ok {
		if c.BraidChance, err = strconv.ParseFloat(v, 64); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvBraidChance, v)
		}
	}
	if v, ok := lookup(EnvLogLevel); ok {
		if c.LogLevel, err = logrus.ParseLevel(v); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvLogLevel, v)
		}
	}
	return c, nil
}

// getInt returns the integer value of key, or def when key is unset.
func getInt(lookup lookupFunc, key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, v)
	}
	return n, nil
}
