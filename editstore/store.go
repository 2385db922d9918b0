// CLAUDE:SUMMARY SQLite persistence for committed cell edits; Block adapts one block to the engine's EditSink.
// Package editstore persists committed cell edits per content block.
//
// The engine's EditStore accumulates a session's edits in memory; saving
// hands them to an EditSink in one call. This package provides the
// SQLite-backed sink:
//
//	store, err := editstore.Open(ctx, "edits.db")
//	defer store.Close()
//	err = session.Save(ctx, store.Block("blk_42"))
package editstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hazyhaar/gridpipe"
)

// Store is the edit persistence database handle.
type Store struct {
	DB *sql.DB
}

// Open opens (or creates) the edits SQLite database at path and applies the
// schema. The modernc.org/sqlite driver must be linked by the caller.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	for _, pragma := range []string{
		`PRAGMA journal_mode = WAL`,
		`PRAGMA busy_timeout = 5000`,
		`PRAGMA foreign_keys = ON`,
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{DB: db}, nil
}

// New wraps an already-open database handle and applies the schema.
func New(ctx context.Context, db *sql.DB) (*Store, error) {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return nil, err
	}
	return &Store{DB: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.DB.Close()
}

// SaveEdits upserts a block's edit set in one transaction: either every edit
// lands or none do.
func (s *Store) SaveEdits(ctx context.Context, blockID string, edits map[string]string) error {
	if blockID == "" {
		return errors.New("block id required")
	}
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UnixMilli()
	for key, value := range edits {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO cell_edits (block_id, edit_key, value, updated_at)
			VALUES (?,?,?,?)
			ON CONFLICT(block_id, edit_key) DO UPDATE SET
				value = excluded.value,
				updated_at = excluded.updated_at`,
			blockID, key, value, now,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListEdits returns a block's stored edits keyed by cell edit key.
func (s *Store) ListEdits(ctx context.Context, blockID string) (map[string]string, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT edit_key, value FROM cell_edits WHERE block_id = ?`, blockID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	edits := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		edits[key] = value
	}
	return edits, rows.Err()
}

// DeleteEdits removes every stored edit for a block.
func (s *Store) DeleteEdits(ctx context.Context, blockID string) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM cell_edits WHERE block_id = ?`, blockID)
	return err
}

// CountEdits returns the number of stored edits for a block.
func (s *Store) CountEdits(ctx context.Context, blockID string) (int, error) {
	var n int
	err := s.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM cell_edits WHERE block_id = ?`, blockID).Scan(&n)
	return n, err
}

// Block binds the store to one content block as a gridpipe.EditSink, the
// shape EditStore.Save expects.
func (s *Store) Block(blockID string) gridpipe.EditSink {
	return blockSink{store: s, blockID: blockID}
}

type blockSink struct {
	store   *Store
	blockID string
}

func (b blockSink) SaveEdits(ctx context.Context, edits map[string]string) error {
	return b.store.SaveEdits(ctx, b.blockID, edits)
}
