// Package database owns the sqlite file that remembers decks and their play
// sessions.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens the deck history at path. Foreign keys are on so sessions go
// away with their deck.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)
	return db, nil
}

// WithTx runs fn in a transaction bound to ctx, rolling back when fn fails.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Now is the timestamp written to opened_at and friends.
func Now() time.Time {
	return Stamp(time.Now())
}

// Stamp normalises t to UTC seconds, matching CURRENT_TIMESTAMP.
func Stamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
