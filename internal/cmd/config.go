package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/facetdrawer/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify facetdrawer configuration",
	Long: `View or modify facetdrawer configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  facetdrawer config set tui.theme dracula
  facetdrawer config set tui.drawer_width 48
  facetdrawer config set catalog.watch false

Valid keys:
  catalog.path             - Catalog file, relative to the working directory
  catalog.watch            - Reload the catalog when it changes (true/false)
  catalog.prune_on_reload  - Drop selected values a reloaded catalog no longer offers (true/false)
  tui.theme                - Color theme: default, monokai, dracula, nord
  tui.placement            - Drawer edge: left, right
  tui.drawer_width         - Drawer width in columns (24-80)
  tui.mouse                - Enable mouse support (true/false)
  logging.enabled          - Write a debug log (true/false)
  logging.level            - Log level: debug, info, warn, error
  logging.dir              - Log directory (empty for the default state directory)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/facetdrawer/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

// configKeys maps each settable key to its value kind.
var configKeys = map[string]string{
	"catalog.path":            "string",
	"catalog.watch":           "bool",
	"catalog.prune_on_reload": "bool",
	"tui.theme":               "string",
	"tui.placement":           "string",
	"tui.drawer_width":        "int",
	"tui.mouse":               "bool",
	"logging.enabled":         "bool",
	"logging.level":           "string",
	"logging.dir":             "string",
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	writeConfig(cmd.OutOrStdout(), config.Get(), viper.ConfigFileUsed())
	return nil
}

func writeConfig(w io.Writer, cfg *config.Config, source string) {
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w)

	// Show where config is being read from
	if source != "" {
		fmt.Fprintf(w, "Config file: %s\n", source)
	} else {
		fmt.Fprintf(w, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "catalog:")
	fmt.Fprintf(w, "  path: %s\n", cfg.Catalog.Path)
	fmt.Fprintf(w, "  watch: %v\n", cfg.Catalog.Watch)
	fmt.Fprintf(w, "  prune_on_reload: %v\n", cfg.Catalog.PruneOnReload)

	fmt.Fprintln(w, "tui:")
	fmt.Fprintf(w, "  theme: %s\n", cfg.TUI.Theme)
	fmt.Fprintf(w, "  placement: %s\n", cfg.TUI.Placement)
	fmt.Fprintf(w, "  drawer_width: %d\n", cfg.TUI.DrawerWidth)
	fmt.Fprintf(w, "  mouse: %v\n", cfg.TUI.Mouse)

	fmt.Fprintln(w, "logging:")
	fmt.Fprintf(w, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(w, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(w, "  dir: %s\n", cfg.Logging.ResolveLogDir())

	if errs := cfg.Validate(); len(errs) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, config.ValidationErrors(errs).Error())
	}
}

// parseConfigValue checks value against the key's kind and allowed values.
func parseConfigValue(key, value string) (any, error) {
	keyType, ok := configKeys[key]
	if !ok {
		return nil, fmt.Errorf("unknown configuration key: %s\nRun 'facetdrawer config set --help' to see valid keys", key)
	}

	switch keyType {
	case "bool":
		if value != "true" && value != "false" {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return value == "true", nil
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if key == "tui.drawer_width" && (intVal < config.MinDrawerWidth || intVal > config.MaxDrawerWidth) {
			return nil, fmt.Errorf("invalid value for %s: must be between %d and %d",
				key, config.MinDrawerWidth, config.MaxDrawerWidth)
		}
		return intVal, nil
	}

	var allowed []string
	switch key {
	case "tui.theme":
		allowed = config.ValidThemes()
	case "tui.placement":
		allowed = config.ValidPlacements()
	case "logging.level":
		allowed = config.ValidLogLevels()
		value = strings.ToLower(value)
	}
	if allowed != nil && !slices.Contains(allowed, value) {
		return nil, fmt.Errorf("invalid value for %s: %s\nValid options: %s", key, value, strings.Join(allowed, ", "))
	}
	return value, nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	typedValue, err := parseConfigValue(key, args[1])
	if err != nil {
		return err
	}

	// Ensure config directory exists
	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set(key, typedValue)

	configFile := config.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)
	return nil
}

const defaultConfigContent = `# facetdrawer configuration

catalog:
  # Catalog file with categories and items, relative to the working directory
  path: catalog.yaml
  # Reload the catalog when the file changes
  watch: true
  # Drop selected values the reloaded catalog no longer offers
  prune_on_reload: false

# TUI (terminal user interface) settings
tui:
  # Color theme: default, monokai, dracula, nord
  theme: default
  # Edge the drawer opens from: left, right
  placement: left
  # Drawer width in columns (24-80)
  drawer_width: 40
  # Click the button, options and backdrop with the mouse
  mouse: true

logging:
  enabled: true
  # debug, info, warn, error
  level: info
  # Empty uses ~/.local/state/facetdrawer
  dir: ""
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'facetdrawer config set' to modify values", configFile)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created config file at %s\n", configFile)
	fmt.Fprintln(out, "Edit this file to customize facetdrawer.")
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", config.ConfigFile())
	}

	// Also show config search paths
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. $HOME/.config/facetdrawer/config.yaml\n")
	fmt.Fprintf(out, "  3. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: FACETDRAWER_* (e.g., FACETDRAWER_TUI_THEME)")
	return nil
}
