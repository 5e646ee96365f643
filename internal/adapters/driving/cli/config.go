package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage host configuration",
	Long: `Read and write config.toml.

Keys:
  app.identifier          application identifier (selects the data directory)
  app.data_dir            fixed data directory, overrides the identifier
  sqlite.path             database file relative to the data directory
  sqlite.max_open_conns   maximum open connections (0 = unlimited)
  sqlite.max_idle_conns   maximum idle connections
  sqlite.busy_timeout_ms  lock wait in milliseconds (default 5000)
  sqlite.journal_mode     delete, truncate, persist, memory, wal or off
  sqlite.foreign_keys     enforce foreign keys (true/false)`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	store, err := newConfigStore()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	val, ok := store.Get(args[0])
	if !ok {
		return fmt.Errorf("config key %q is not set", args[0])
	}

	cmd.Println(val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	store, err := newConfigStore()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := store.Set(args[0], parseValue(args[1])); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}

	cmd.Printf("%s = %s\n", args[0], args[1])
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	store, err := newConfigStore()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	for _, key := range store.Keys() {
		val, _ := store.Get(key)
		cmd.Printf("%s = %v\n", key, val)
	}
	return nil
}

// parseValue converts a command-line value to the TOML type it looks like.
func parseValue(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}
