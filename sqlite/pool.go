package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// Pool is a pool of connections to one SQLite database file.
//
// It embeds *sql.DB, so connections are checked out and returned by the
// usual database/sql methods.
type Pool struct {
	*sql.DB
	path string
}

// Path returns the absolute database file path.
func (p *Pool) Path() string {
	return p.path
}

// Version returns the SQLite library version used by the pool.
func (p *Pool) Version(ctx context.Context) (string, error) {
	var v string
	if err := p.QueryRowContext(ctx, "SELECT sqlite_version()").Scan(&v); err != nil {
		return "", fmt.Errorf("querying SQLite version: %w", err)
	}
	return v, nil
}
