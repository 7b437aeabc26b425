package app

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Tokens are the one-shot expression tokens from the command line.
	// Empty means an interactive session.
	Tokens []string

	PluginsPath string // directory of .hcl operator-group files
	RCPath      string // optional driver rc file (TOML)

	LogFormat string
	LogLevel  string
}

// NewConfig validates and normalizes a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PluginsPath == "" {
		cfg.PluginsPath = "plugins"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}

// DriverConfig is the presentation configuration of the interactive
// driver, loadable from a TOML rc file. It replaces the original's global
// alias tables: all of it is handed to the console at construction.
type DriverConfig struct {
	Prompt   string            `toml:"prompt"`
	Window   int               `toml:"window"`
	Autoload []string          `toml:"autoload"`
	Aliases  map[string]string `toml:"aliases"`
}

// DefaultDriverConfig returns the compiled-in driver defaults: a four-line
// stack window and the classic short aliases, plus x for multiplication so
// the shell never needs a quoted *.
func DefaultDriverConfig() DriverConfig {
	return DriverConfig{
		Prompt: "> ",
		Window: 4,
		Aliases: map[string]string{
			"d": "drop",
			"s": "swap",
			"x": "*",
		},
	}
}

// LoadDriverConfig reads a TOML rc file and overlays it on the defaults.
// An empty path means defaults; a named file must exist and parse.
func LoadDriverConfig(path string) (DriverConfig, error) {
	cfg := DefaultDriverConfig()
	if path == "" {
		return cfg, nil
	}

	var file DriverConfig
	if _, err := toml.DecodeFile(path, &file); err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("rc file %s not found: %w", path, err)
		}
		return cfg, fmt.Errorf("failed to parse rc file %s: %w", path, err)
	}

	if file.Prompt != "" {
		cfg.Prompt = file.Prompt
	}
	if file.Window > 0 {
		cfg.Window = file.Window
	}
	cfg.Autoload = append(cfg.Autoload, file.Autoload...)
	for from, to := range file.Aliases {
		cfg.Aliases[from] = to
	}
	return cfg, nil
}
