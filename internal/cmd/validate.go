package cmd

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/facetdrawer/internal/catalog"
	"github.com/Iron-Ham/facetdrawer/internal/util"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration and the catalog",
	Long: `Load the configuration and the catalog and report every problem found.

Catalog checks cover empty and duplicate category ids, duplicate options,
and items that reference categories or values the catalog does not offer.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	writeCatalogSummary(cmd.OutOrStdout(), cat)
	return nil
}

func writeCatalogSummary(w io.Writer, cat *catalog.Catalog) {
	options := 0
	for _, c := range cat.Categories {
		options += len(c.Options)
	}

	fmt.Fprintf(w, "Catalog OK: %s\n", cat.Path)
	fmt.Fprintf(w, "  %d %s, %s %s, %s %s\n",
		len(cat.Categories), util.Pluralize(len(cat.Categories), "category", "categories"),
		humanize.Comma(int64(options)), util.Pluralize(options, "option", "options"),
		humanize.Comma(int64(len(cat.Items))), util.Pluralize(len(cat.Items), "item", "items"))
}
