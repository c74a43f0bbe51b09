package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds all application configuration
type Config struct {
	Palette     PaletteConfig    `toml:"palette"`
	Classifier  ClassifierConfig `toml:"classifier"`
	Keybindings KeybindingConfig `toml:"keybindings"`
	Display     DisplayConfig    `toml:"display"`
}

// PaletteConfig maps the semantic temperature/mood names to RGB hex colors
type PaletteConfig struct {
	Cool     string `toml:"cool"`
	Neutral  string `toml:"neutral"`
	Elevated string `toml:"elevated"`
	Uneasy   string `toml:"uneasy"`
	Troubled string `toml:"troubled"`
	Warm     string `toml:"warm"`
	Critical string `toml:"critical"`
	Default  string `toml:"default"`
}

// ClassifierConfig controls how the external classifier is invoked
type ClassifierConfig struct {
	Command     []string `toml:"command"`
	TimeoutSecs int      `toml:"timeout_secs"`
	RootDir     string   `toml:"root_dir"` // empty = derive from executable location
}

// KeybindingConfig allows customizing keybindings
type KeybindingConfig struct {
	Quit       []string `toml:"quit"`
	ScrollUp   []string `toml:"scroll_up"`
	ScrollDown []string `toml:"scroll_down"`
	PageUp     []string `toml:"page_up"`
	PageDown   []string `toml:"page_down"`
	Top        []string `toml:"top"`
	Bottom     []string `toml:"bottom"`
	Search     []string `toml:"search"`
}

// DisplayConfig holds display options
type DisplayConfig struct {
	LineNumberWidth int  `toml:"line_number_width"`
	ShowHelpBar     bool `toml:"show_help_bar"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Palette: PaletteConfig{
			Cool:     "#00FFFF", // cyan
			Neutral:  "#FFFFFF", // white
			Elevated: "#FFFF00", // yellow
			Uneasy:   "#FFFF00", // yellow
			Troubled: "#FF8700", // orange
			Warm:     "#FF8700", // orange
			Critical: "#FF0000", // red
			Default:  "#FFFFFF",
		},
		Classifier: ClassifierConfig{
			Command:     []string{"mix", "colorize"},
			TimeoutSecs: 30,
		},
		Keybindings: KeybindingConfig{
			Quit:       []string{"q", "ctrl+c"},
			ScrollUp:   []string{"k", "up"},
			ScrollDown: []string{"j", "down"},
			PageUp:     []string{"ctrl+u", "pgup", "b"},
			PageDown:   []string{"ctrl+d", "pgdown", "f"},
			Top:        []string{"g", "home"},
			Bottom:     []string{"G", "end"},
			Search:     []string{"/"},
		},
		Display: DisplayConfig{
			LineNumberWidth: 5,
			ShowHelpBar:     true,
		},
	}
}

// Load loads config from file, falling back to defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	configPath := getConfigPath()
	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves config to file
func Save(cfg *Config) error {
	configPath := getConfigPath()
	if configPath == "" {
		return nil
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// getConfigPath returns the config file path
func getConfigPath() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hymnless", "config.toml")
	}

	// Fall back to ~/.config
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "hymnless", "config.toml")
}

// GetConfigPath exports the config path for user reference
func GetConfigPath() string {
	return getConfigPath()
}
