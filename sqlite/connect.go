package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/sercha-sqlite/host"
	"github.com/custodia-labs/sercha-sqlite/internal/logger"
)

// driverName is the database/sql name registered by modernc.org/sqlite.
const driverName = "sqlite"

// ResolvePath returns the absolute database file path for rel inside the
// application data directory reported by paths.
//
// It does not touch the filesystem beyond what paths does.
func ResolvePath(paths host.PathResolver, rel string) (string, error) {
	dir, err := paths.AppDataDir()
	if err != nil {
		return "", &Error{Kind: ErrConfiguration, Op: "resolve data directory", Err: err}
	}

	if err := checkRelative(rel); err != nil {
		return "", &Error{Kind: ErrConfiguration, Op: "invalid path", Path: rel, Err: err}
	}

	return filepath.Join(dir, rel), nil
}

// checkRelative reports why rel cannot name a file inside the data directory.
func checkRelative(rel string) error {
	switch {
	case rel == "":
		return errors.New("empty path")
	case !utf8.ValidString(rel):
		return errors.New("path is not valid UTF-8")
	case strings.IndexByte(rel, 0) >= 0:
		return errors.New("path contains NUL byte")
	case filepath.IsAbs(rel):
		return errors.New("path must be relative to the data directory")
	case !filepath.IsLocal(rel):
		return errors.New("path escapes the data directory")
	}
	return nil
}

// Connect resolves cfg.Path, creates the directory that will hold the
// database file and opens a pool to it, creating the file if missing.
//
// The returned pool has at least one live connection.
func Connect(ctx context.Context, paths host.PathResolver, cfg Config) (*Pool, error) {
	if err := cfg.validate(); err != nil {
		return nil, &Error{Kind: ErrConfiguration, Op: "invalid config", Err: err}
	}

	path, err := ResolvePath(paths, cfg.Path)
	if err != nil {
		return nil, err
	}
	logger.Debug("sqlite: resolved database path %s", path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &Error{Kind: ErrIO, Op: "create directory", Path: dir, Err: err}
	}

	return open(ctx, path, cfg)
}

// open opens or creates the database file at path.
func open(ctx context.Context, path string, cfg Config) (*Pool, error) {
	db, err := sql.Open(driverName, dsn(path, cfg))
	if err != nil {
		return nil, &Error{Kind: ErrConnection, Op: "open or create", Path: path, Err: err}
	}

	cfg.apply(db)

	// sql.Open is lazy: force the first connection so the file is created
	// now, and read the schema so a file that is not a database is rejected.
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &Error{Kind: ErrConnection, Op: "open or create", Path: path, Err: err}
	}

	var tables int
	if err := db.QueryRowContext(ctx, "SELECT count(*) FROM sqlite_master").Scan(&tables); err != nil {
		_ = db.Close()
		return nil, &Error{Kind: ErrConnection, Op: "open or create", Path: path, Err: err}
	}

	logger.Debug("sqlite: opened %s (%d schema objects)", path, tables)

	return &Pool{DB: db, path: path}, nil
}

// dsn returns a SQLite URI for path with the create-if-missing policy.
//
// The path is percent-encoded, so '?', '#' and '%' in file names are kept.
// Query parameters prefixed with an underscore are handled by the driver,
// the rest by SQLite itself.
func dsn(path string, cfg Config) string {
	p := filepath.ToSlash(path)
	if filepath.VolumeName(path) != "" {
		p = "/" + p
	}

	q := url.Values{}
	q.Set("mode", "rwc")
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", cfg.busyTimeout().Milliseconds()))
	if cfg.ForeignKeys {
		q.Add("_pragma", "foreign_keys(1)")
	}
	if cfg.JournalMode != "" {
		q.Add("_pragma", "journal_mode("+strings.ToLower(cfg.JournalMode)+")")
	}

	u := &url.URL{
		Scheme:   "file",
		Path:     p,
		OmitHost: true,
		RawQuery: q.Encode(),
	}
	return u.String()
}
