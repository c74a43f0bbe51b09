package config

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, []string{"mix", "colorize"}, cfg.Classifier.Command)
	assert.Equal(t, 30, cfg.Classifier.TimeoutSecs)
	assert.Empty(t, cfg.Classifier.RootDir)

	assert.Equal(t, 5, cfg.Display.LineNumberWidth)
	assert.Contains(t, cfg.Keybindings.Quit, "q")
	assert.Contains(t, cfg.Keybindings.Search, "/")

	// the seven semantic names all carry a color, plus the fallback
	assert.NotEmpty(t, cfg.Palette.Cool)
	assert.NotEmpty(t, cfg.Palette.Critical)
	assert.NotEmpty(t, cfg.Palette.Default)
}

func TestConfigTOMLRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Classifier.TimeoutSecs = 10
	cfg.Palette.Critical = "#CC0000"

	data, err := toml.Marshal(cfg)
	require.NoError(t, err)

	var loaded Config
	require.NoError(t, toml.Unmarshal(data, &loaded))

	assert.Equal(t, 10, loaded.Classifier.TimeoutSecs)
	assert.Equal(t, "#CC0000", loaded.Palette.Critical)
	assert.Equal(t, cfg.Keybindings, loaded.Keybindings)
}

func TestPartialConfigKeepsDefaults(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, toml.Unmarshal([]byte("[classifier]\ntimeout_secs = 5\n"), cfg))

	assert.Equal(t, 5, cfg.Classifier.TimeoutSecs)
	assert.Equal(t, []string{"mix", "colorize"}, cfg.Classifier.Command)
	assert.Equal(t, "#FF0000", cfg.Palette.Critical)
}
