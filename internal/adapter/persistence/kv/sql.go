package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const sqlSchema = `
CREATE TABLE IF NOT EXISTS kv_records (
	record_key TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	version    BIGINT NOT NULL
)`

// SQLStore keeps one row per collection. It works with the sqlite3 and pgx
// drivers; placeholders are rebound for the driver in use.
type SQLStore struct {
	db *sqlx.DB
}

var _ Store = (*SQLStore)(nil)

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Migrate creates the records table when missing.
func (s *SQLStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqlSchema); err != nil {
		return fmt.Errorf("create kv_records: %w", err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	var row struct {
		Value   string `db:"value"`
		Version int64  `db:"version"`
	}
	q := s.db.Rebind(`SELECT value, version FROM kv_records WHERE record_key = ?`)
	if err := s.db.GetContext(ctx, &row, q, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, false, nil
		}
		return Entry{}, false, err
	}
	return Entry{Value: []byte(row.Value), Version: row.Version}, true, nil
}

func (s *SQLStore) Put(ctx context.Context, key string, value []byte, expectedVersion int64) (int64, error) {
	next := expectedVersion + 1

	var (
		res sql.Result
		err error
	)
	if expectedVersion == 0 {
		q := s.db.Rebind(`INSERT INTO kv_records (record_key, value, version) VALUES (?, ?, ?)
			ON CONFLICT (record_key) DO NOTHING`)
		res, err = s.db.ExecContext(ctx, q, key, string(value), next)
	} else {
		q := s.db.Rebind(`UPDATE kv_records SET value = ?, version = ? WHERE record_key = ? AND version = ?`)
		res, err = s.db.ExecContext(ctx, q, string(value), next, key, expectedVersion)
	}
	if err != nil {
		return 0, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrVersionConflict
	}
	return next, nil
}
