package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/facetdrawer/internal/config"
	"github.com/Iron-Ham/facetdrawer/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "facetdrawer",
	Short: "Filter a catalog from a terminal filter drawer",
	Long: `Facetdrawer loads a catalog of filter categories and items and lets you
narrow the items down from a filter drawer in the terminal.

The drawer never owns the selection: every change it proposes is applied
by the application, which re-renders the drawer with the result.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and reports any failure on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// reportError prints err for the user. Catalog and selector problems are
// printed without the context wrapped around them; anything else keeps its
// whole chain.
func reportError(w io.Writer, err error) {
	msg := err.Error()
	if errors.IsUserFacing(err) {
		msg = errors.UserMessage(err)
	}
	fmt.Fprintln(w, "Error:", msg)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/facetdrawer/config.yaml)")
	rootCmd.PersistentFlags().String("catalog", "", "catalog file (overrides catalog.path)")
}

func initConfig() {
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("catalog.path", rootCmd.PersistentFlags().Lookup("catalog"))

	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/facetdrawer")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("FACETDRAWER")
	// Replace dots with underscores for nested keys in env vars
	// e.g., FACETDRAWER_TUI_DRAWER_WIDTH for tui.drawer_width
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
