package file

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/getpawsy/pawsy/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(Config{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	return s
}

func TestSetGetRoundtrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "pawsy:catalog", []byte(`[{"id":"p1"}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := s.Get(ctx, "pawsy:catalog")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[{"id":"p1"}]` {
		t.Errorf("unexpected value %q", got)
	}
}

func TestGet_Missing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "nope")
	if !errors.Is(err, storage.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestSet_Overwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_ = s.Set(ctx, "k", []byte("v1"))
	if err := s.Set(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, _ := s.Get(ctx, "k")
	if string(got) != "v2" {
		t.Errorf("expected v2, got %q", got)
	}
}

func TestDel(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_ = s.Set(ctx, "k", []byte("v"))
	if err := s.Del(ctx, "k"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if _, err := s.Get(ctx, "k"); !errors.Is(err, storage.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound after delete, got %v", err)
	}

	// Deleting a missing key is fine
	if err := s.Del(ctx, "k"); err != nil {
		t.Errorf("delete of missing key should not fail: %v", err)
	}
}

func TestPingAndReady(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Ping(ctx); err != nil {
		t.Errorf("ping: %v", err)
	}
	if err := s.WaitForReady(ctx, time.Second); err != nil {
		t.Errorf("wait for ready: %v", err)
	}
}

func TestKeyNamespacing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Namespaced keys must not collide with each other
	_ = s.Set(ctx, "pawsy:catalog", []byte("a"))
	_ = s.Set(ctx, "pawsy:search_index", []byte("b"))

	got, _ := s.Get(ctx, "pawsy:search_index")
	if string(got) != "b" {
		t.Errorf("expected b, got %q", got)
	}
}
