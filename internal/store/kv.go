package store

import (
	"context"
	"database/sql"
	"errors"

	_ "modernc.org/sqlite"
)

// The persistent surface is deliberately tiny: a single key/value table
// holding one JSON blob per panel. Readers treat a missing row the same as
// an empty value.

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.sqlitePath())
	if err != nil {
		return nil, err
	}
	// WAL + busy_timeout keep concurrent CLI invocations from tripping over
	// "database is locked".
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS panels (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// getValue returns the stored value for key, or ("", false) when absent.
func (s Store) getValue(ctx context.Context, key string) (string, bool, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return "", false, err
	}
	defer db.Close()

	var v string
	err = db.QueryRowContext(ctx, `SELECT v FROM panels WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s Store) putValue(ctx context.Context, key, value string) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `INSERT OR REPLACE INTO panels(k, v) VALUES(?, ?)`, key, value)
	return err
}
