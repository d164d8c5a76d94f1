// Package sqlite opens a document store in an embedded SQLite database using
// the pure Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver

	"github.com/dankimjw/portfolio-api/internal/adapters/store/sqldb"
	"github.com/dankimjw/portfolio-api/internal/platform/config"
)

const driverName = "sqlite"

// Open creates the database file's directory if needed, opens the database
// and applies the document schema. SQLite allows a single writer, so the pool
// is capped at one connection.
func Open(ctx context.Context, cfg config.StoreConfig) (*sqldb.Store, error) {
	if dir := filepath.Dir(filePath(cfg.DSN)); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
	}

	db, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	store, err := sqldb.New(ctx, db, sqldb.SQLite)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// filePath strips the file: scheme and query parameters from a DSN.
func filePath(dsn string) string {
	p := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	return p
}
