package gridpipe

import (
	"context"
	"errors"
	"testing"
)

// mapSink collects saved edits in memory; err, when set, makes every save
// fail.
type mapSink struct {
	saved map[string]string
	calls int
	err   error
}

func (m *mapSink) SaveEdits(_ context.Context, edits map[string]string) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	m.saved = edits
	return nil
}

func TestEditStore_CommitOnlyWhenChanged(t *testing.T) {
	// WHAT: Committing the displayed text back records nothing; committing
	// a different value does.
	// WHY: Tabbing through cells without typing must not mark the block
	// dirty.
	s := NewEditStore()
	if s.Commit(EditKey(0, 0), "Monday", "Monday") {
		t.Error("unchanged commit reported a change")
	}
	if s.Len() != 0 {
		t.Fatalf("len = %d, want 0", s.Len())
	}
	if !s.Commit(EditKey(0, 0), "Monday", "Tuesday") {
		t.Error("changed commit reported no change")
	}
	if got, ok := s.Get(EditKey(0, 0)); !ok || got != "Tuesday" {
		t.Errorf("Get = %q, %v", got, ok)
	}
}

func TestEditStore_LastCommitWins(t *testing.T) {
	s := NewEditStore()
	s.Commit(EditKey(1, 2), "a", "b")
	s.Commit(EditKey(1, 2), "b", "c")
	if got, _ := s.Get(EditKey(1, 2)); got != "c" {
		t.Errorf("Get = %q, want c", got)
	}
	if s.Len() != 1 {
		t.Errorf("len = %d, want 1", s.Len())
	}
}

func TestEditStore_CancelRestoresParsedValues(t *testing.T) {
	// WHAT: Cancel drops every override, so the next render shows the
	// parsed text again.
	grid := &TableGrid{BodyRows: []Row{{"raw"}}}
	s := NewEditStore()
	s.Commit(EditKey(0, 0), "raw", "edited")

	if got := Render(grid, s).Rows[0][0]; got.Text != "edited" {
		t.Fatalf("before cancel: text = %q", got.Text)
	}
	s.Cancel()
	got := Render(grid, s).Rows[0][0]
	if got.Text != "raw" || got.Edited {
		t.Errorf("after cancel: cell = %+v, want parsed text", got)
	}
}

func TestEditStore_SaveFlushesAndClears(t *testing.T) {
	s := NewEditStore()
	s.Commit(EditKey(0, 0), "a", "b")
	s.Commit(EditKey(2, 1), "x", "y")

	sink := &mapSink{}
	if err := s.Save(context.Background(), sink); err != nil {
		t.Fatal(err)
	}
	if len(sink.saved) != 2 || sink.saved["cell-0-0"] != "b" || sink.saved["cell-2-1"] != "y" {
		t.Errorf("saved = %v", sink.saved)
	}
	if s.Len() != 0 {
		t.Errorf("len after save = %d, want 0", s.Len())
	}

	// The edited values were persisted, so reopening the block rehydrates
	// them rather than keeping them in session state.
	if err := s.Save(context.Background(), sink); !errors.Is(err, ErrNoEdits) {
		t.Errorf("second save err = %v, want ErrNoEdits", err)
	}
}

func TestEditStore_SaveFailureKeepsEdits(t *testing.T) {
	// WHAT: A failed save leaves the store intact.
	// WHY: Losing the editor's work on an I/O error is unacceptable; the
	// save must be retryable.
	s := NewEditStore()
	s.Commit(EditKey(0, 0), "a", "b")

	sink := &mapSink{err: errors.New("disk full")}
	err := s.Save(context.Background(), sink)
	if err == nil {
		t.Fatal("expected error")
	}
	if s.Len() != 1 {
		t.Fatalf("len after failed save = %d, want 1", s.Len())
	}

	sink.err = nil
	if err := s.Save(context.Background(), sink); err != nil {
		t.Fatal(err)
	}
	if sink.calls != 2 || sink.saved["cell-0-0"] != "b" {
		t.Errorf("retry did not persist: calls=%d saved=%v", sink.calls, sink.saved)
	}
}

func TestEditStoreFrom_Rehydrates(t *testing.T) {
	s := EditStoreFrom(map[string]string{"cell-0-1": "kept"})
	if got, ok := s.Get(EditKey(0, 1)); !ok || got != "kept" {
		t.Errorf("Get = %q, %v", got, ok)
	}
}

func TestEditStore_SnapshotIsACopy(t *testing.T) {
	s := NewEditStore()
	s.Commit(EditKey(0, 0), "a", "b")
	snap := s.Snapshot()
	snap["cell-0-0"] = "mutated"
	if got, _ := s.Get(EditKey(0, 0)); got != "b" {
		t.Errorf("store changed through snapshot: %q", got)
	}
}
