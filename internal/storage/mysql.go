package storage

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

const createSlotsTable = `
	CREATE TABLE IF NOT EXISTS kv_slots (
		slot_key   VARCHAR(255) PRIMARY KEY,
		slot_value MEDIUMBLOB NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

// MySQL stores slots in a single key-value table. It is the optional shared
// backend, enabled when a DSN is configured.
type MySQL struct {
	db *sql.DB
}

// NewMySQL opens a MySQL connection pool, verifies connectivity and ensures
// the slot table exists.
func NewMySQL(dsn string) (*MySQL, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		slog.Warn("database ping failed", "error", err)
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(createSlotsTable); err != nil {
		db.Close()
		return nil, err
	}

	return &MySQL{db: db}, nil
}

// Get reads a slot value.
func (m *MySQL) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := m.db.QueryRowContext(ctx,
		`SELECT slot_value FROM kv_slots WHERE slot_key = ?`, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

// Put replaces the slot value.
func (m *MySQL) Put(ctx context.Context, key string, value []byte) error {
	_, err := m.db.ExecContext(ctx,
		`INSERT INTO kv_slots (slot_key, slot_value) VALUES (?, ?)
		 ON DUPLICATE KEY UPDATE slot_value = VALUES(slot_value)`,
		key, value,
	)
	return err
}

// Delete removes the slot. Deleting an absent slot is a no-op.
func (m *MySQL) Delete(ctx context.Context, key string) error {
	_, err := m.db.ExecContext(ctx, `DELETE FROM kv_slots WHERE slot_key = ?`, key)
	return err
}

// Close releases the connection pool.
func (m *MySQL) Close() error {
	return m.db.Close()
}
