package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/config"
)

// clearEnv unsets every variable Load reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		config.EnvHeight, config.EnvWidth, config.EnvRewards,
		config.EnvSeed, config.EnvBraidChance, config.EnvLogLevel,
	} {
		t.Setenv(k, "") // registers restore
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeEnvFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	c, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
	assert.Equal(t, 20, c.Height)
	assert.Equal(t, 80, c.Width)
	assert.Equal(t, 5, c.Rewards)
	assert.Zero(t, c.Seed)
	assert.InDelta(t, 0.4, c.BraidChance, 1e-9)
	assert.Equal(t, logrus.InfoLevel, c.LogLevel)
}

func TestLoad_FileAndEnvPrecedence(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "MAZE_HEIGHT=31\nMAZE_WIDTH=61\nMAZE_SEED=9\nLOG_LEVEL=debug\n")
	t.Setenv(config.EnvWidth, "41")

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 31, c.Height)
	assert.Equal(t, 41, c.Width) // process env wins
	assert.Equal(t, int64(9), c.Seed)
	assert.Equal(t, logrus.DebugLevel, c.LogLevel)
	assert.Equal(t, 5, c.Rewards)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		config.EnvHeight:      "tall",
		config.EnvRewards:     "1.5",
		config.EnvSeed:        "x",
		config.EnvBraidChance: "lots",
		config.EnvLogLevel:    "chatty",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			_, err := config.Load()
			assert.ErrorIs(t, err, config.ErrInvalidValue)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearEnv(t)
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidValue)
}
