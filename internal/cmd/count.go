package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/facetdrawer/internal/catalog"
	"github.com/Iron-Ham/facetdrawer/internal/facet"
	"github.com/Iron-Ham/facetdrawer/internal/util"
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count active filters and matching items",
	Long: `Print the active-filter count for a selection, broken down by category,
and how many catalog items the selection matches.

Examples:
  facetdrawer count --select color=Red,Blue
  facetdrawer count -s size=M -s color=red`,
	Args: cobra.NoArgs,
	RunE: runCount,
}

var countSelect []string

func init() {
	rootCmd.AddCommand(countCmd)

	countCmd.Flags().StringArrayVarP(&countSelect, "select", "s", nil,
		"selection as category=value[,value...] (repeatable)")
}

func runCount(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	sel, err := parseSelection(countSelect, cat)
	if err != nil {
		return err
	}

	writeCount(cmd.OutOrStdout(), cat, sel)
	return nil
}

// writeCount prints the active-filter summary for sel.
func writeCount(w io.Writer, cat *catalog.Catalog, sel facet.Selection) {
	counter := facet.NewCounter(sel)

	fmt.Fprintf(w, "Active filters: %s\n", humanize.Comma(int64(counter.Count())))
	for _, row := range facet.Rows(cat.Categories, sel) {
		n := counter.CategoryCount(row.ID)
		if n == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s: %d  %s\n", row.Label, n, strings.Join(sel.Values(row.ID), ", "))
	}

	total := len(cat.Items)
	matched := len(catalog.Match(cat.Items, sel))
	fmt.Fprintf(w, "Matching items: %s of %s %s\n",
		humanize.Comma(int64(matched)), humanize.Comma(int64(total)), util.Pluralize(total, "item", "items"))
}
