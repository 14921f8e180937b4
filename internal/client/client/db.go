package client

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/client/migrations"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/metadata"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Goose dialect names.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "pgx"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// RunMigrations applies the embedded migrations of the given goose dialect.
func RunMigrations(ctx context.Context, db *sql.DB, dialect string) error {
	var dir string
	switch dialect {
	case DialectSQLite:
		dir = migrations.DirSQLite
	case DialectPostgres:
		dir = migrations.DirPostgres
	default:
		return fmt.Errorf("migrations for dialect %q: %w", dialect, ErrUnsupportedDriver)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return gooseUpContext(ctx, db, dir)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenStore opens the key-value store named by driver. The returned closer
// releases the underlying database handle.
func OpenStore(ctx context.Context, driver, dsn string) (metadata.Repository, io.Closer, error) {
	var (
		sqlDriver string
		dialect   string
	)

	switch driver {
	case config.DriverMemory:
		return metadata.NewMemoryRepository(), nopCloser{}, nil
	case config.DriverSQLite:
		sqlDriver, dialect = "sqlite", DialectSQLite
	case config.DriverPostgres:
		sqlDriver, dialect = "pgx", DialectPostgres
	default:
		return nil, nil, fmt.Errorf("%q: %w", driver, ErrUnsupportedDriver)
	}

	db, err := sqlOpen(sqlDriver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if err := RunMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate %s: %w", driver, err)
	}

	if dialect == DialectPostgres {
		return metadata.NewPostgresRepository(db), db, nil
	}
	return metadata.NewSQLiteRepository(db), db, nil
}
