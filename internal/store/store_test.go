package store

import (
	"errors"
	"path/filepath"
	"testing"
)

type widget struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestSQLite(t *testing.T, quota int64) *SQLite {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "store.db"), quota)
	if err != nil {
		t.Fatalf("failed to open sqlite store: %v", err)
	}
	return s
}

func TestReadJSONMissingKey(t *testing.T) {
	m := NewMemory()

	v, ok := ReadJSON[widget](m, "nope")
	if ok {
		t.Fatal("expected absent for missing key")
	}
	if v != (widget{}) {
		t.Fatalf("expected zero value, got %+v", v)
	}
}

func TestReadJSONCorruptBlobIsAbsent(t *testing.T) {
	m := NewMemory()
	if err := m.Set("bad", "{not json"); err != nil {
		t.Fatalf("set: %v", err)
	}

	// Corrupt content degrades to "no data", never an error.
	v, ok := ReadJSON[widget](m, "bad")
	if ok {
		t.Fatal("expected corrupt blob to read as absent")
	}
	if v != (widget{}) {
		t.Fatalf("expected zero value, got %+v", v)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	m := NewMemory()

	in := widget{Name: "geyser", Count: 3}
	if err := WriteJSON(m, "w", in); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, ok := ReadJSON[widget](m, "w")
	if !ok {
		t.Fatal("expected value present")
	}
	if out != in {
		t.Fatalf("round trip mismatch: %+v != %+v", out, in)
	}
}

func TestSQLiteRoundTripAndDelete(t *testing.T) {
	s := newTestSQLite(t, 0)

	if err := s.Set("k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set("k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	v, ok := s.Get("k")
	if !ok || v != "v2" {
		t.Fatalf("expected v2, got %q (ok=%v)", v, ok)
	}

	if err := s.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := s.Get("k"); ok {
		t.Fatal("expected key gone after delete")
	}
}

func TestSQLiteQuotaRejectsWrite(t *testing.T) {
	s := newTestSQLite(t, 10)

	if err := s.Set("k", "12345"); err != nil {
		t.Fatalf("first write should fit: %v", err)
	}

	err := s.Set("other", "12345678901")
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
}

func TestSQLiteRejectedWriteKeepsOldValue(t *testing.T) {
	s := newTestSQLite(t, 10)

	if err := s.Set("k", "short"); err != nil {
		t.Fatalf("set: %v", err)
	}

	// Replacing with something too big must fail all-or-nothing.
	if err := s.Set("k", "waaaaaay too long for the quota"); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}

	v, ok := s.Get("k")
	if !ok || v != "short" {
		t.Fatalf("old value should survive a rejected write, got %q (ok=%v)", v, ok)
	}
}

func TestSQLiteQuotaCountsReplacedValueOnce(t *testing.T) {
	s := newTestSQLite(t, 10)

	if err := s.Set("k", "1234567890"); err != nil {
		t.Fatalf("set: %v", err)
	}
	// Same size replacement fits: the old value under this key does
	// not count against the new one.
	if err := s.Set("k", "0987654321"); err != nil {
		t.Fatalf("replacement of same size should fit: %v", err)
	}
}

func TestMemorySetErr(t *testing.T) {
	m := NewMemory()
	if err := m.Set("k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}

	m.SetErr = ErrQuotaExceeded
	if err := m.Set("k", "new"); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected injected error, got %v", err)
	}

	v, _ := m.Get("k")
	if v != "v" {
		t.Fatalf("failed write must not change data, got %q", v)
	}
}
