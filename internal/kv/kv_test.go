package kv_test

import (
	"path/filepath"
	"testing"

	"github.com/mindcastle/mindcastle/internal/kv"
)

func newTestStore(t *testing.T) *kv.Store {
	t.Helper()
	s, err := kv.Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// ─── Open ───────────────────────────────────────────────────────────────────

func TestOpen_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s, err := kv.Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer s.Close()
}

func TestOpen_ReopenPreservesData(t *testing.T) {
	dir := t.TempDir()

	s1, err := kv.Open(dir)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := s1.Set("greeting", []byte("hello")); err != nil {
		t.Fatalf("set: %v", err)
	}
	s1.Close()

	s2, err := kv.Open(dir)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer s2.Close()

	got, err := s2.Get("greeting")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("value = %q, want %q", got, "hello")
	}
}

// ─── Get / Set / Delete ─────────────────────────────────────────────────────

func TestGet_MissingKeyReturnsNil(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Get("nope")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != nil {
		t.Errorf("Get(missing) = %q, want nil", got)
	}
}

func TestSet_OverwritesExistingValue(t *testing.T) {
	s := newTestStore(t)

	if err := s.Set("k", []byte("one")); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("k", []byte("two")); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "two" {
		t.Errorf("value = %q, want %q", got, "two")
	}
}

func TestDelete_RemovesKey(t *testing.T) {
	s := newTestStore(t)

	if err := s.Set("k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	got, err := s.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("value after delete = %q, want nil", got)
	}
}

func TestDelete_MissingKeyIsNoOp(t *testing.T) {
	s := newTestStore(t)
	if err := s.Delete("never-set"); err != nil {
		t.Errorf("Delete(missing) error: %v", err)
	}
}
