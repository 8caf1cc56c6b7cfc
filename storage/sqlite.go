package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQLiteAdapter stores values in the kv_store table, scoped to one namespace
type SQLiteAdapter struct {
	db        *sql.DB
	namespace string
}

// NewSQLiteAdapter creates an adapter over an opened and migrated database
func NewSQLiteAdapter(db *sql.DB, namespace string) *SQLiteAdapter {
	return &SQLiteAdapter{db: db, namespace: namespace}
}

// Get returns the stored value for key
func (a *SQLiteAdapter) Get(ctx context.Context, key string) (string, bool, error) {
	query := `
		SELECT value
		FROM kv_store
		WHERE namespace = ? AND key = ?
	`

	var value string
	err := a.db.QueryRowContext(ctx, query, a.namespace, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %s: %w", key, err)
	}

	return value, true, nil
}

// Set inserts or replaces the value under key
func (a *SQLiteAdapter) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_store (namespace, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := a.db.ExecContext(ctx, query, a.namespace, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}

	return nil
}

// Remove deletes key; removing a missing key is not an error
func (a *SQLiteAdapter) Remove(ctx context.Context, key string) error {
	query := `DELETE FROM kv_store WHERE namespace = ? AND key = ?`

	if _, err := a.db.ExecContext(ctx, query, a.namespace, key); err != nil {
		return fmt.Errorf("failed to remove key %s: %w", key, err)
	}

	return nil
}

// Clear deletes every key of the namespace
func (a *SQLiteAdapter) Clear(ctx context.Context) error {
	query := `DELETE FROM kv_store WHERE namespace = ?`

	if _, err := a.db.ExecContext(ctx, query, a.namespace); err != nil {
		return fmt.Errorf("failed to clear namespace %s: %w", a.namespace, err)
	}

	return nil
}
