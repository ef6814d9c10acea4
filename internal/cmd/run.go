package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Iron-Ham/facetdrawer/internal/catalog"
	"github.com/Iron-Ham/facetdrawer/internal/facet"
	"github.com/Iron-Ham/facetdrawer/internal/selection"
	"github.com/Iron-Ham/facetdrawer/internal/tui"
	"github.com/Iron-Ham/facetdrawer/internal/tui/styles"
)

// staticWidth is the width of the single frame printed when stdout is not a
// terminal.
const staticWidth = 100

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the filter drawer",
	Long: `Open the catalog in the terminal with the filter drawer.

Press f to open the drawer, space to toggle the option under the cursor and
a to apply. On exit the final selection is printed in --select form so it can
be passed back in.

When stdout is not a terminal a single frame with the drawer open is printed
instead.

Examples:
  facetdrawer run
  facetdrawer run --select color=Red,Blue --select size=M
  facetdrawer run --catalog ./shoes.yaml | less -R`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

var runSelect []string

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringArrayVarP(&runSelect, "select", "s", nil,
		"initial selection as category=value[,value...] (repeatable)")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	sel, err := parseSelection(runSelect, cat)
	if err != nil {
		return err
	}
	if err := styles.SetActiveTheme(cfg.TUI.Theme); err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer func() { _ = logger.Close() }()

	logger.Info("starting",
		"catalog", cat.Path,
		"categories", len(cat.Categories),
		"items", len(cat.Items),
		"selection", selection.FormatSelectors(sel, cat.Categories),
	)

	opts := tui.Options{
		Catalog:       cat,
		Selection:     sel,
		PruneOnReload: cfg.Catalog.PruneOnReload,
		Placement:     cfg.TUI.Placement,
		DrawerWidth:   cfg.TUI.DrawerWidth,
		Mouse:         cfg.TUI.Mouse,
		Logger:        logger,
	}

	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		_, err := fmt.Fprintln(out, tui.Render(opts, staticWidth))
		return err
	}

	if cfg.Catalog.Watch {
		w, err := catalog.NewWatcher(cat.Path, logger)
		if err != nil {
			// Hot reload is a convenience; run without it.
			logger.Warn("catalog watch disabled", "error", err)
		} else {
			w.Start()
			defer w.Stop()
			opts.Reloads = w.Events()
			opts.WatchErrors = w.Errors()
		}
	}

	final, err := tui.New(opts).Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("finished", "selection", selection.FormatSelectors(final, cat.Categories))
	printSelection(out, final, cat.Categories)
	return nil
}

// printSelection writes the selection as --select flags, one per line.
func printSelection(w io.Writer, sel facet.Selection, categories []facet.Category) {
	selectors := selection.FormatSelectors(sel, categories)
	if len(selectors) == 0 {
		fmt.Fprintln(w, "No filters selected.")
		return
	}
	for _, s := range selectors {
		fmt.Fprintf(w, "--select %s\n", s)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
