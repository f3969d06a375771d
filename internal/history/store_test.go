package history

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := newTestStore(t)

	store.Record("ping", "success", 12*time.Millisecond, "")
	store.Record("spawn_actor", "error", 40*time.Millisecond, "bad actor name")
	store.Record("ping", "success", 8*time.Millisecond, "")

	entries, err := store.Recent(10, "")
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	// Newest first.
	if entries[0].Command != "ping" || entries[0].DurationMS != 8 {
		t.Errorf("unexpected newest entry %+v", entries[0])
	}
	if entries[1].Status != "error" || entries[1].Error != "bad actor name" {
		t.Errorf("error entry not preserved %+v", entries[1])
	}
}

func TestRecentFiltersByCommand(t *testing.T) {
	store := newTestStore(t)

	store.Record("ping", "success", time.Millisecond, "")
	store.Record("exec_editor_python", "success", time.Second, "")
	store.Record("ping", "error", time.Millisecond, "timeout")

	entries, err := store.Recent(10, "ping")
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 ping entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Command != "ping" {
			t.Errorf("filter leaked entry %+v", e)
		}
	}
}

func TestRecentLimitClamped(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 5; i++ {
		store.Record("ping", "success", time.Millisecond, "")
	}

	entries, err := store.Recent(2, "")
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected limit of 2, got %d", len(entries))
	}

	entries, err = store.Recent(-1, "")
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 5 {
		t.Errorf("invalid limit should fall back to default, got %d", len(entries))
	}
}

func TestRecentOversizedLimitClampsToMax(t *testing.T) {
	store := newTestStore(t)

	// More rows than the default limit of 50, so a clamp back to the
	// default would be visible.
	for i := 0; i < 60; i++ {
		store.Record("ping", "success", time.Millisecond, "")
	}

	entries, err := store.Recent(10000, "")
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 60 {
		t.Errorf("oversized limit should clamp to 500, not the default; got %d entries", len(entries))
	}
}

func TestHistoryTool(t *testing.T) {
	store := newTestStore(t)
	store.Record("take_screenshot", "success", 300*time.Millisecond, "")

	tool := NewTool(store)
	if tool.Name() != "command_history" {
		t.Errorf("unexpected name %q", tool.Name())
	}

	result, err := tool.Execute(json.RawMessage(`{"limit": 5}`))
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	out := result.(map[string]interface{})
	if out["count"] != 1 {
		t.Errorf("expected 1 entry, got %v", out["count"])
	}

	// No input at all is valid.
	if _, err := tool.Execute(nil); err != nil {
		t.Errorf("empty input: %v", err)
	}
}
