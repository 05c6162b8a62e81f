// Package port defines interfaces for infrastructure adapters.
package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the view database. The file is opened, and
// its schema migrated, on the first DB call; commands that never read a
// view (version, config path, schema) leave it closed.
type DatabaseProvider interface {
	// DB returns the connection, opening it on first use. An open failure
	// is sticky: every later call returns the same error.
	DB(ctx context.Context) (*sql.DB, error)

	// Path is the database file, known before the file is opened.
	Path() string

	// IsInitialized reports whether DB has opened the connection.
	IsInitialized() bool

	Close() error
}
