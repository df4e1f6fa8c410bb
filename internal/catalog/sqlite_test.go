package catalog

import "testing"

func TestOpenSQLiteSeedsEmptyDatabase(t *testing.T) {
	cat, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}

	got := cat.AllEvents(0)
	want := SeedEvents()
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Name != want[i].Name {
			t.Fatalf("event %d mismatch: got %+v, want %+v", i, got[i], want[i])
		}
		if len(got[i].Moods) != len(want[i].Moods) {
			t.Fatalf("event %d moods mismatch: got %+v, want %+v", i, got[i].Moods, want[i].Moods)
		}
	}
}

func TestOpenSQLiteFileDatabase(t *testing.T) {
	dsn := t.TempDir() + "/catalog.db"

	cat, err := OpenSQLite(dsn)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	if len(cat.AllEvents(0)) != len(SeedEvents()) {
		t.Fatalf("first open should seed the database")
	}

	// Reopening must load the persisted rows, not reseed.
	cat2, err := OpenSQLite(dsn)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if len(cat2.AllEvents(0)) != len(SeedEvents()) {
		t.Fatalf("reopen should load existing rows")
	}
}

func TestSQLiteCatalogMoodFilter(t *testing.T) {
	cat, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}

	got := cat.EventsByMood("adventurous")
	if len(got) == 0 {
		t.Fatalf("expected adventurous seed events")
	}
	for _, ev := range got {
		if !ev.HasMood("adventurous") {
			t.Fatalf("event %q does not carry the mood", ev.Name)
		}
	}
}
