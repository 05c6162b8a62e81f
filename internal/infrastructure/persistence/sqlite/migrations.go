package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/bnema/rclayout/internal/logging"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// SchemaStatus reports the view schema of an open database.
type SchemaStatus struct {
	Version int64
	Pending int
}

// newMigrator builds a goose provider over the embedded migrations. The
// provider keeps no package state, so tests can migrate databases in parallel.
func newMigrator(db *sql.DB) (*goose.Provider, error) {
	sub, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, sub)
	if err != nil {
		return nil, fmt.Errorf("create migration provider: %w", err)
	}
	return provider, nil
}

// RunMigrations brings the views schema up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	log := logging.FromContext(ctx)

	migrator, err := newMigrator(db)
	if err != nil {
		return err
	}

	results, err := migrator.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// One line per applied file; an up-to-date schema only logs at debug.
	for _, res := range results {
		log.Debug().
			Int64("version", res.Source.Version).
			Dur("took", res.Duration).
			Msg("migration applied")
	}

	version, err := migrator.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get db version after migration: %w", err)
	}
	if len(results) > 0 {
		log.Info().Int("applied", len(results)).Int64("version", version).Msg("view schema migrated")
	} else {
		log.Debug().Int64("version", version).Msg("view schema up to date")
	}
	return nil
}

// GetMigrationStatus returns the applied schema version and how many
// embedded migrations have not run yet.
func GetMigrationStatus(ctx context.Context, db *sql.DB) (SchemaStatus, error) {
	migrator, err := newMigrator(db)
	if err != nil {
		return SchemaStatus{}, err
	}

	states, err := migrator.Status(ctx)
	if err != nil {
		return SchemaStatus{}, fmt.Errorf("read migration status: %w", err)
	}

	var status SchemaStatus
	for _, st := range states {
		if st.State == goose.StatePending {
			status.Pending++
			continue
		}
		status.Version = max(status.Version, st.Source.Version)
	}
	return status, nil
}
