package store

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:", log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSetAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "abc", "theme"); err != nil || ok {
		t.Fatalf("Get() on empty store = ok %t, err %v", ok, err)
	}
	if err := s.Set(ctx, "abc", "theme", "light"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Set(ctx, "abc", "theme", "dark"); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}
	got, ok, err := s.Get(ctx, "abc", "theme")
	if err != nil || !ok || got != "dark" {
		t.Fatalf("Get() = %q, %t, %v, want %q, true, nil", got, ok, err, "dark")
	}
	if _, ok, _ := s.Get(ctx, "other", "theme"); ok {
		t.Fatal("Get() leaked a value across owners")
	}
}

func TestPrune(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	s.now = func() time.Time { return base }
	if err := s.Set(ctx, "old", "theme", "light"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	s.now = func() time.Time { return base.AddDate(1, 1, 0) }
	if err := s.Set(ctx, "new", "theme", "light"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	removed, err := s.Prune(ctx, 365*24*time.Hour)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if removed != 1 {
		t.Fatalf("Prune() removed %d, want 1", removed)
	}
	if _, ok, _ := s.Get(ctx, "new", "theme"); !ok {
		t.Fatal("Prune() removed a fresh preference")
	}
}

func TestClosedStore(t *testing.T) {
	s, err := Open(context.Background(), ":memory:", log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	s.Close()
	_, _, err = s.Get(context.Background(), "abc", "theme")
	if !errors.Is(err, ErrClosed) {
		t.Fatalf("Get() after Close error = %v, want ErrClosed", err)
	}
}

func TestCountValues(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	for owner, value := range map[string]string{"a": "dark", "b": "light", "c": "light"} {
		if err := s.Set(ctx, owner, "theme", value); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
	}
	if err := s.Set(ctx, "a", "other", "x"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	counts, err := s.CountValues(ctx, "theme")
	if err != nil {
		t.Fatalf("CountValues() error = %v", err)
	}
	if counts["dark"] != 1 || counts["light"] != 2 || len(counts) != 2 {
		t.Fatalf("counts = %v, want dark:1 light:2", counts)
	}
}
