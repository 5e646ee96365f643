package cli

import (
	"time"

	"github.com/custodia-labs/sercha-sqlite/host"
	"github.com/custodia-labs/sercha-sqlite/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sercha-sqlite/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-sqlite/sqlite"
)

// Application defaults used when neither config nor flags set a value.
const (
	appName           = "sqlitehost"
	defaultIdentifier = "com.custodia-labs.sqlitehost"
	defaultPath       = "app.db"
)

// Config keys understood by the host.
const (
	keyIdentifier   = "app.identifier"
	keyDataDir      = "app.data_dir"
	keyPath         = "sqlite.path"
	keyMaxOpenConns = "sqlite.max_open_conns"
	keyMaxIdleConns = "sqlite.max_idle_conns"
	keyBusyTimeout  = "sqlite.busy_timeout_ms"
	keyJournalMode  = "sqlite.journal_mode"
	keyForeignKeys  = "sqlite.foreign_keys"
)

// settings is the resolved host configuration.
type settings struct {
	identifier string
	dataDir    string
	sqlite     sqlite.Config
}

// resolver returns where the application data directory comes from.
func (s settings) resolver() host.PathResolver {
	if s.dataDir != "" {
		return host.StaticDir(s.dataDir)
	}
	return host.DataDirResolver{Identifier: s.identifier}
}

// newConfigStore opens the config store selected by --config-dir.
func newConfigStore() (driven.ConfigStore, error) {
	return file.NewConfigStore(configDir)
}

// loadSettings reads the config store and applies non-empty flag overrides.
func loadSettings(store driven.ConfigStore, path string) settings {
	return settings{
		identifier: firstNonEmpty(identifier, store.GetString(keyIdentifier), defaultIdentifier),
		dataDir:    firstNonEmpty(dataDir, store.GetString(keyDataDir)),
		sqlite: sqlite.Config{
			Path:         firstNonEmpty(path, store.GetString(keyPath), defaultPath),
			MaxOpenConns: store.GetInt(keyMaxOpenConns),
			MaxIdleConns: store.GetInt(keyMaxIdleConns),
			BusyTimeout:  time.Duration(store.GetInt(keyBusyTimeout)) * time.Millisecond,
			JournalMode:  store.GetString(keyJournalMode),
			ForeignKeys:  store.GetBool(keyForeignKeys),
		},
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
