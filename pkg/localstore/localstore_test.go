package localstore

import (
	"path/filepath"
	"testing"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	if _, ok, err := m.Get("missing"); ok || err != nil {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
	if err := m.Set("k", "v"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	v, ok, err := m.Get("k")
	if err != nil || !ok || v != "v" {
		t.Fatalf("expected stored value, got %q ok=%v err=%v", v, ok, err)
	}
}

func TestBuntDBRoundTrip(t *testing.T) {
	db, err := NewBuntDB(":memory:")
	if err != nil {
		t.Fatalf("NewBuntDB returned error: %v", err)
	}
	defer db.Close()

	if _, ok, err := db.Get("missing"); ok || err != nil {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
	if err := db.Set("advisor.widgets", `[{"id":"w1"}]`); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	v, ok, err := db.Get("advisor.widgets")
	if err != nil || !ok || v != `[{"id":"w1"}]` {
		t.Fatalf("expected stored value, got %q ok=%v err=%v", v, ok, err)
	}

	if err := db.Delete("advisor.widgets"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := db.Delete("advisor.widgets"); err != nil {
		t.Fatalf("Delete of absent key returned error: %v", err)
	}
	if _, ok, _ := db.Get("advisor.widgets"); ok {
		t.Fatalf("expected key removed")
	}
}

func TestBuntDBPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advisor.db")

	db, err := NewBuntDB(path)
	if err != nil {
		t.Fatalf("NewBuntDB returned error: %v", err)
	}
	if err := db.Set("k", "v"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	reopened, err := NewBuntDB(path)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	defer reopened.Close()
	v, ok, err := reopened.Get("k")
	if err != nil || !ok || v != "v" {
		t.Fatalf("expected durable value, got %q ok=%v err=%v", v, ok, err)
	}
}
