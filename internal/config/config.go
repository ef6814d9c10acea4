package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete facetdrawer configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig controls where filter categories come from
type CatalogConfig struct {
	// Path is the YAML catalog file (default: "catalog.yaml", relative to the working directory)
	Path string `mapstructure:"path"`
	// Watch reloads the catalog when the file changes (default: true)
	Watch bool `mapstructure:"watch"`
	// PruneOnReload drops selected values the reloaded catalog no longer offers (default: false)
	PruneOnReload bool `mapstructure:"prune_on_reload"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the drawer (default: "default")
	// Options: "default", "monokai", "dracula", "nord"
	Theme string `mapstructure:"theme"`
	// Placement is a cosmetic hint for which edge the drawer slides from.
	// It has no effect on filtering behavior. Options: "left", "right"
	Placement string `mapstructure:"placement"`
	// DrawerWidth is the width of the drawer in columns (default: 40, min: 24, max: 80)
	DrawerWidth int `mapstructure:"drawer_width"`
	// Mouse enables mouse support (click to open, toggle, and click the backdrop to close)
	Mouse bool `mapstructure:"mouse"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is active (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level sets the minimum log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// Dir is where debug.log is written (default: "" uses the state directory)
	Dir string `mapstructure:"dir"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path:          "catalog.yaml",
			Watch:         true,
			PruneOnReload: false,
		},
		TUI: TUIConfig{
			Theme:       "default",
			Placement:   "left",
			DrawerWidth: 40,
			Mouse:       true,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Dir:     "", // Empty means use StateDir()
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("catalog.path", defaults.Catalog.Path)
	viper.SetDefault("catalog.watch", defaults.Catalog.Watch)
	viper.SetDefault("catalog.prune_on_reload", defaults.Catalog.PruneOnReload)

	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.placement", defaults.TUI.Placement)
	viper.SetDefault("tui.drawer_width", defaults.TUI.DrawerWidth)
	viper.SetDefault("tui.mouse", defaults.TUI.Mouse)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ResolveLogDir returns the directory debug.log should be written to
func (l *LoggingConfig) ResolveLogDir() string {
	if l.Dir == "" {
		return StateDir()
	}
	return expandHome(l.Dir)
}

// ResolvePath returns the catalog path, expanding a leading ~ and making
// relative paths absolute against baseDir.
func (c *CatalogConfig) ResolvePath(baseDir string) string {
	path := expandHome(c.Path)
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	return path
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
	}
	return path
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "facetdrawer")
	}
	// Fall back to ~/.config/facetdrawer
	home, err := os.UserHomeDir()
	if err != nil {
		return ".facetdrawer"
	}
	return filepath.Join(home, ".config", "facetdrawer")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// StateDir returns the directory for logs and other runtime state
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "facetdrawer")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".facetdrawer"
	}
	return filepath.Join(home, ".local", "state", "facetdrawer")
}

// ValidThemes returns the list of built-in theme names
func ValidThemes() []string {
	return []string{"default", "monokai", "dracula", "nord"}
}

// ValidPlacements returns the list of valid drawer placements
func ValidPlacements() []string {
	return []string{"left", "right"}
}
