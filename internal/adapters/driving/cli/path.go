package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-sqlite/sqlite"
)

var pathFlag string

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the database file path",
	Long:  `Prints where the database file would be opened, without creating anything.`,
	Args:  cobra.NoArgs,
	RunE:  runPath,
}

func init() {
	pathCmd.Flags().StringVarP(&pathFlag, "path", "p", "", "database file relative to the data directory")
	rootCmd.AddCommand(pathCmd)
}

func runPath(cmd *cobra.Command, _ []string) error {
	store, err := newConfigStore()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	s := loadSettings(store, pathFlag)

	path, err := sqlite.ResolvePath(s.resolver(), s.sqlite.Path)
	if err != nil {
		return err
	}

	cmd.Println(path)
	return nil
}
