package history_test

import (
	"path/filepath"
	"testing"

	"github.com/funvibe/minijava/internal/history"
)

func openStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openStore(t)

	run, err := store.Record("Main.java", 3, 1, 2)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if run.ID == "" {
		t.Error("run has no id")
	}

	runs, err := store.Recent("Main.java", 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	got := runs[0]
	if got.ID != run.ID || got.File != "Main.java" || got.Errors != 3 || got.Warnings != 1 || got.Unused != 2 {
		t.Errorf("run round-trip mismatch: %+v", got)
	}
}

func TestRecentFilterAndLimit(t *testing.T) {
	store := openStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.Record("A.java", i, 0, 0); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}
	if _, err := store.Record("B.java", 0, 0, 0); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	runs, err := store.Recent("A.java", 3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("got %d runs, want 3", len(runs))
	}
	for _, r := range runs {
		if r.File != "A.java" {
			t.Errorf("filter leaked run for %s", r.File)
		}
	}

	all, err := store.Recent("", 100)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("got %d runs across files, want 6", len(all))
	}
}
