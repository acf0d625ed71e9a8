package search

import (
	"context"
	"fmt"
	"sync"
)

// Term is the session's search term, written through to a Store on every
// change.
type Term struct {
	store Store
	key   string

	mu    sync.Mutex
	value string
}

// Load reads the term stored under key once, falling back to def when
// nothing or an empty term is stored. The initial value is written back so
// the store always reflects the session.
func Load(ctx context.Context, store Store, key, def string) (*Term, error) {
	value, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("search: load %q: %w", key, err)
	}
	if !ok || value == "" {
		value = def
		if err := store.Set(ctx, key, value); err != nil {
			return nil, fmt.Errorf("search: store initial %q: %w", key, err)
		}
	}
	return &Term{store: store, key: key, value: value}, nil
}

// Value returns the current term.
func (t *Term) Value() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.value
}

// Set changes the term and persists it. Setting the current value is a no-op.
// On a store error the in-session value has still changed.
func (t *Term) Set(ctx context.Context, value string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if value == t.value {
		return nil
	}
	t.value = value
	if err := t.store.Set(ctx, t.key, value); err != nil {
		return fmt.Errorf("search: persist %q: %w", t.key, err)
	}
	return nil
}
