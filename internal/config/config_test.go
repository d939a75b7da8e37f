package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adnope/connect4-engine/internal/config"
)

func TestParseSingleModeFlag(t *testing.T) {
	cfg, err := config.Parse([]string{"--play"})
	require.NoError(t, err)
	assert.Equal(t, config.ModePlay, cfg.Mode)
}

func TestParseRejectsZeroModeFlags(t *testing.T) {
	_, err := config.Parse([]string{})
	assert.Error(t, err)
}

func TestParseRejectsMultipleModeFlags(t *testing.T) {
	_, err := config.Parse([]string{"--play", "--train"})
	assert.Error(t, err)
}

func TestParseShorthandFlags(t *testing.T) {
	cfg, err := config.Parse([]string{"-f"})
	require.NoError(t, err)
	assert.Equal(t, config.ModeFind, cfg.Mode)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := config.Parse([]string{"--web", "--listen", "127.0.0.1:9000", "--book", "custom.book"})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
	assert.Equal(t, "custom.book", cfg.BookPath)
}
