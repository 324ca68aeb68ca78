package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/skybrief/skybrief/internal/common"
	"github.com/skybrief/skybrief/internal/dbx"
)

// SQLiteStore keeps the credential in a single-row key/value table so a new
// login atomically replaces whatever was there before.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM session WHERE key = ?`, common.CredentialKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credential: %w", err)
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, credential string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM session WHERE key = ?`, common.CredentialKey); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO session (key, value) VALUES (?, ?)`, common.CredentialKey, credential)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM session WHERE key = ?`, common.CredentialKey); err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}
