package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-sqlite/host"
	"github.com/custodia-labs/sercha-sqlite/internal/logger"
	"github.com/custodia-labs/sercha-sqlite/sqlite"
)

var openPath string

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Start the host and open the application database",
	Long: `Builds the host application with the sqlite plugin, which creates the
data directory and the database file if they are missing, then reports
the pool that was registered.`,
	Args: cobra.NoArgs,
	RunE: runOpen,
}

func init() {
	openCmd.Flags().StringVarP(&openPath, "path", "p", "", "database file relative to the data directory")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, _ []string) error {
	store, err := newConfigStore()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	s := loadSettings(store, openPath)

	logger.Section("Setup")
	logger.Debug("config: %s", store.Path())
	logger.Debug("identifier: %s", s.identifier)

	ctx := cmd.Context()
	app, err := host.NewBuilder(appName, s.identifier).
		WithPathResolver(s.resolver()).
		Plugin(sqlite.NewPlugin(s.sqlite)).
		Build(ctx)
	if err != nil {
		return fmt.Errorf("startup failed: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("shutdown: %v", err)
		}
	}()

	pool, ok := sqlite.FromApp(app)
	if !ok {
		return fmt.Errorf("startup failed: plugin %s registered no pool", sqlite.PluginName)
	}

	v, err := pool.Version(ctx)
	if err != nil {
		return err
	}

	stats := pool.Stats()
	cmd.Printf("Database: %s\n", pool.Path())
	cmd.Printf("SQLite:   %s\n", v)
	cmd.Printf("Pool:     %d open, %d max\n", stats.OpenConnections, stats.MaxOpenConnections)
	return nil
}
