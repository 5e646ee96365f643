package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-sqlite/internal/logger"
)

// Version is set at build time via ldflags.
var version = "dev"

var (
	verbose    bool
	configDir  string
	dataDir    string
	identifier string
)

var rootCmd = &cobra.Command{
	Use:   "sqlitehost",
	Short: "Reference host application for the sqlite plugin",
	Long: `sqlitehost starts a host application with the sqlite plugin registered,
the same way a desktop application would at startup.

The database file is kept in the application data directory, which is
derived from the application identifier unless --data-dir is given.
Settings are read from config.toml in the config directory.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "print setup diagnostics to stderr")
	flags.StringVar(&configDir, "config-dir", "", "directory containing config.toml (default: user config dir)")
	flags.StringVar(&dataDir, "data-dir", "", "override the application data directory")
	flags.StringVar(&identifier, "identifier", "", "application identifier used to locate the data directory")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
