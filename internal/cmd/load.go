package cmd

import (
	"fmt"
	"os"

	"github.com/Iron-Ham/facetdrawer/internal/catalog"
	"github.com/Iron-Ham/facetdrawer/internal/config"
	"github.com/Iron-Ham/facetdrawer/internal/facet"
	"github.com/Iron-Ham/facetdrawer/internal/logging"
	"github.com/Iron-Ham/facetdrawer/internal/selection"
)

// loadConfig reads and validates the configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.ValidateErr(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadCatalog loads the configured catalog, resolving relative paths against
// the working directory.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return catalog.Load(cfg.Catalog.ResolvePath(cwd))
}

// parseSelection turns --select flags into a selection against cat.
func parseSelection(exprs []string, cat *catalog.Catalog) (facet.Selection, error) {
	sel, err := selection.ParseSelectors(exprs, cat.Categories)
	if err != nil {
		return nil, fmt.Errorf("invalid --select: %w", err)
	}
	return sel, nil
}

// newLogger opens the session log, or returns a no-op logger when logging
// is disabled.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	logger, err := logging.NewLogger(cfg.Logging.ResolveLogDir(), logging.ParseLevel(cfg.Logging.Level))
	if err != nil {
		return nil, err
	}
	return logger.WithSession(logging.NewSessionID()), nil
}
