package journal

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "activity.db"), "")
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestAppendAndRecentPreservesTimeOrder(t *testing.T) {
	j := openTestJournal(t)

	base := time.Now().Add(-time.Hour)
	for i, action := range []string{"create", "update", "mark_read"} {
		err := j.Append(Entry{
			Entity:   EntityTask,
			Action:   action,
			Snapshot: json.RawMessage(`{"id":"t1"}`),
			At:       base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append %s: %v", action, err)
		}
	}

	entries, err := j.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, action := range []string{"create", "update", "mark_read"} {
		if entries[i].Action != action {
			t.Fatalf("position %d: expected %s, got %s", i, action, entries[i].Action)
		}
		if entries[i].ID == "" {
			t.Fatal("expected generated entry id")
		}
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	j := openTestJournal(t)

	for i := 0; i < 5; i++ {
		if err := j.Append(Entry{Entity: EntityProject, Action: "create"}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	entries, err := j.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestPruneRemovesOldEntries(t *testing.T) {
	j := openTestJournal(t)

	old := time.Now().Add(-48 * time.Hour)
	if err := j.Append(Entry{Entity: EntityTask, Action: "create", At: old}); err != nil {
		t.Fatalf("append old: %v", err)
	}
	if err := j.Append(Entry{Entity: EntityTask, Action: "update"}); err != nil {
		t.Fatalf("append fresh: %v", err)
	}

	if err := j.Prune(time.Now().Add(-24 * time.Hour)); err != nil {
		t.Fatalf("prune: %v", err)
	}

	size, err := j.Size()
	if err != nil {
		t.Fatalf("size: %v", err)
	}
	if size != 1 {
		t.Fatalf("expected 1 surviving entry, got %d", size)
	}
}
