// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

package edit

import (
	"context"
	"sync"
)

// Store holds the draft of one content type: the in-memory, possibly-unsaved
// copy of the document currently being edited.
//
// # Semantics
//
// A draft is a value, not a reference to server state. Callers build new
// draft values (via the collection operations or struct literals) and swap
// them in with [Store.Replace]; the store never merges partial updates.
// There is no background refresh — a draft can go stale if another session
// edits the same resource, which is an accepted limitation.
//
// # Concurrency
//
// The store is safe for concurrent handler access, but it does not serialize
// overlapping saves of the same draft. Two racing saves resolve by network
// arrival order, so the console disables its save control while a save is in
// flight.
type Store[T any] struct {
	mu     sync.Mutex
	draft  T
	loaded bool
}

// NewStore constructs an empty draft store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{}
}

// Load performs exactly one fetch and seeds the store with the result.
//
// On failure the store holds no draft and the error is returned unchanged;
// the store never retries. A successful load replaces whatever draft was
// held before.
func (store *Store[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) (T, error) {
	value, err := fetch(ctx)
	if err != nil {
		var zero T
		store.mu.Lock()
		store.draft = zero
		store.loaded = false
		store.mu.Unlock()
		return zero, err
	}

	store.mu.Lock()
	store.draft = value
	store.loaded = true
	store.mu.Unlock()
	return value, nil
}

// Current returns the held draft and whether one is held.
func (store *Store[T]) Current() (T, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.draft, store.loaded
}

// Replace swaps in a full new draft value. This is the only mutation
// primitive; the caller is responsible for having built newDraft immutably.
func (store *Store[T]) Replace(newDraft T) {
	store.mu.Lock()
	store.draft = newDraft
	store.loaded = true
	store.mu.Unlock()
}

// Seed places an initial draft without fetching (new-record editing).
func (store *Store[T]) Seed(draft T) {
	store.Replace(draft)
}

// Discard drops the held draft (navigate-away / close-dialog semantics).
func (store *Store[T]) Discard() {
	var zero T
	store.mu.Lock()
	store.draft = zero
	store.loaded = false
	store.mu.Unlock()
}
