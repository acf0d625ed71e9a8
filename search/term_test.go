package search

import (
	"context"
	"errors"
	"testing"
)

// failingStore errors on every call
type failingStore struct{ getErr, setErr error }

func (f failingStore) Get(context.Context, string) (string, bool, error) { return "", false, f.getErr }
func (f failingStore) Set(context.Context, string, string) error { return f.setErr }
func (f failingStore) Close() error { return nil }

func TestLoadDefaultWhenAbsent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	term, err := Load(ctx, store, "search", "React")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if term.Value() != "React" {
		t.Fatalf("Value = %q; want default", term.Value())
	}
	if v, ok, _ := store.Get(ctx, "search"); !ok || v != "React" {
		t.Fatalf("default not written back: %q %v", v, ok)
	}
}

func TestLoadStoredValue(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Set(ctx, "search", "Go")

	term, err := Load(ctx, store, "search", "React")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if term.Value() != "Go" {
		t.Fatalf("Value = %q; want stored %q", term.Value(), "Go")
	}
}

func TestLoadReplacesStoredEmptyString(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Set(ctx, "search", "")

	term, err := Load(ctx, store, "search", "React")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if term.Value() != "React" {
		t.Fatalf("Value = %q; want default for a cleared term", term.Value())
	}
	if v, _, _ := store.Get(ctx, "search"); v != "React" {
		t.Fatalf("default not written back: %q", v)
	}
}

func TestSetWritesThrough(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	term, _ := Load(ctx, store, "search", "React")

	for _, v := range []string{"R", "Re", "", "Rust"} {
		if err := term.Set(ctx, v); err != nil {
			t.Fatalf("Set(%q): %v", v, err)
		}
		if got, _, _ := store.Get(ctx, "search"); got != v {
			t.Fatalf("store holds %q after Set(%q)", got, v)
		}
		if term.Value() != v {
			t.Fatalf("Value = %q; want %q", term.Value(), v)
		}
	}

	// a new session sees the last value
	again, _ := Load(ctx, store, "search", "React")
	if again.Value() != "Rust" {
		t.Fatalf("reloaded value = %q; want Rust", again.Value())
	}
}

func TestStoreErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	if _, err := Load(ctx, failingStore{getErr: boom}, "search", "React"); !errors.Is(err, boom) {
		t.Fatalf("Load get error = %v; want wrapped boom", err)
	}
	if _, err := Load(ctx, failingStore{setErr: boom}, "search", "React"); !errors.Is(err, boom) {
		t.Fatalf("Load set error = %v; want wrapped boom", err)
	}

	term := &Term{store: failingStore{setErr: boom}, key: "search", value: "a"}
	if err := term.Set(ctx, "a"); err != nil {
		t.Fatalf("unchanged value should not touch the store: %v", err)
	}
	if err := term.Set(ctx, "b"); !errors.Is(err, boom) {
		t.Fatalf("Set error = %v; want wrapped boom", err)
	}
	if term.Value() != "b" {
		t.Fatalf("session value should change even when persisting fails")
	}
}
