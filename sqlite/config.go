package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultBusyTimeout is used when Config.BusyTimeout is zero.
const DefaultBusyTimeout = 5 * time.Second

// journalModes lists the values accepted by PRAGMA journal_mode.
var journalModes = map[string]bool{
	"delete":   true,
	"truncate": true,
	"persist":  true,
	"memory":   true,
	"wal":      true,
	"off":      true,
}

// Config configures the plugin. Only Path is required.
type Config struct {
	// Path is the database file name relative to the application data
	// directory, e.g. "app.db" or "data/app.db".
	Path string

	// MaxOpenConns limits open connections; zero means no limit.
	MaxOpenConns int

	// MaxIdleConns limits idle connections; zero keeps the database/sql default.
	MaxIdleConns int

	// ConnMaxLifetime closes connections older than this; zero means never.
	ConnMaxLifetime time.Duration

	// BusyTimeout is how long a connection waits on a locked database.
	BusyTimeout time.Duration

	// ForeignKeys enables foreign key enforcement on every connection.
	ForeignKeys bool

	// JournalMode sets PRAGMA journal_mode on every connection.
	// Empty leaves the file's current mode unchanged.
	JournalMode string
}

// validate checks the tuning fields. Path is checked by ResolvePath.
func (c Config) validate() error {
	if c.MaxOpenConns < 0 || c.MaxIdleConns < 0 {
		return errors.New("negative connection limit")
	}
	if c.ConnMaxLifetime < 0 || c.BusyTimeout < 0 {
		return errors.New("negative duration")
	}
	if c.JournalMode != "" && !journalModes[strings.ToLower(c.JournalMode)] {
		return fmt.Errorf("unknown journal mode %q", c.JournalMode)
	}
	return nil
}

func (c Config) busyTimeout() time.Duration {
	if c.BusyTimeout == 0 {
		return DefaultBusyTimeout
	}
	return c.BusyTimeout
}

// apply sets pool limits on db.
func (c Config) apply(db *sql.DB) {
	if c.MaxOpenConns > 0 {
		db.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.MaxIdleConns > 0 {
		db.SetMaxIdleConns(c.MaxIdleConns)
	}
	db.SetConnMaxLifetime(c.ConnMaxLifetime)
}
