// Package store persists the session credential across application restarts.
// The primary implementation keeps it in a local sqlite database; when that
// database cannot be opened the store degrades to in-memory for the current
// run, which only costs the user a fresh login next time.
package store

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/skybrief/skybrief/internal/client/migrations"
	"github.com/skybrief/skybrief/internal/logging"

	_ "modernc.org/sqlite"
)

// Store holds the current session credential. Get returns "" when no
// credential is present. Implementations perform no network access.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, credential string) error
	Clear(ctx context.Context) error
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// Open initializes the sqlite-backed store at dsn. Storage being unavailable
// is non-fatal: the error is logged and an in-memory store is returned.
func Open(ctx context.Context, dsn string, log logging.Logger) Store {
	db, err := sql.Open("sqlite", dsn)
	if err == nil {
		err = runMigrations(ctx, db)
	}
	if err != nil {
		log.Warn(ctx, "local storage unavailable, credential will not survive restart",
			"dsn", dsn, "error", err.Error())
		return NewMemoryStore()
	}
	return NewSQLiteStore(db)
}
