// CLAUDE:SUMMARY Block-scoped edit store: commit-if-changed, cancel, and all-or-nothing save to a collaborator.
package gridpipe

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoEdits is returned by Save when the store holds nothing to flush.
var ErrNoEdits = errors.New("no edits to save")

// EditSink persists one block's committed edits. The editstore package
// provides a SQLite-backed implementation.
type EditSink interface {
	SaveEdits(ctx context.Context, edits map[string]string) error
}

// EditStore accumulates committed cell overrides during one block's editing
// session. Committed values survive re-renders until the session is saved or
// cancelled. Methods are not safe for concurrent use: a block has one editor.
type EditStore struct {
	overrides map[CellEditKey]string
}

// NewEditStore returns an empty store.
func NewEditStore() *EditStore {
	return &EditStore{overrides: make(map[CellEditKey]string)}
}

// EditStoreFrom rehydrates a store from previously persisted edits, for
// reopening a block whose session was saved earlier.
func EditStoreFrom(edits map[string]string) *EditStore {
	s := NewEditStore()
	for key, value := range edits {
		s.overrides[CellEditKey(key)] = value
	}
	return s
}

// Commit records value for key when it differs from the text currently
// displayed for that cell, and reports whether the store changed. Committing
// the displayed text back is a no-op, so tabbing through cells records
// nothing. The last committed value per key wins.
func (s *EditStore) Commit(key CellEditKey, displayed, value string) bool {
	if value == displayed {
		return false
	}
	s.overrides[key] = value
	return true
}

// Get returns the committed override for key.
func (s *EditStore) Get(key CellEditKey) (string, bool) {
	v, ok := s.overrides[key]
	return v, ok
}

// Len returns the number of committed edits.
func (s *EditStore) Len() int {
	return len(s.overrides)
}

// Cancel discards every committed edit, reverting the block to its parsed
// values on the next render.
func (s *EditStore) Cancel() {
	s.overrides = make(map[CellEditKey]string)
}

// Snapshot copies the committed edits into the plain map shape collaborators
// receive.
func (s *EditStore) Snapshot() map[string]string {
	out := make(map[string]string, len(s.overrides))
	for key, value := range s.overrides {
		out[string(key)] = value
	}
	return out
}

// Save flushes every committed edit to the sink in one call. On success the
// store empties; on failure it is left untouched so no edit is lost and the
// save can be retried.
func (s *EditStore) Save(ctx context.Context, sink EditSink) error {
	if len(s.overrides) == 0 {
		return ErrNoEdits
	}
	if err := sink.SaveEdits(ctx, s.Snapshot()); err != nil {
		return fmt.Errorf("save edits: %w", err)
	}
	s.overrides = make(map[CellEditKey]string)
	return nil
}
