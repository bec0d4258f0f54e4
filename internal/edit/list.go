// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

package edit

import (
	"sort"
	"sync"

	"github.com/theijon/folio/pkg/slice"
)

// State is the lifecycle of a synchronized collection view.
type State int

const (
	// StateEmpty: nothing fetched yet, or the last load failed.
	StateEmpty State = iota
	// StateLoading: a load is in flight.
	StateLoading
	// StateLoaded: the list is live; re-entered after every successful mutation.
	StateLoaded
)

// String returns the lowercase state name for logs and responses.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	default:
		return "empty"
	}
}

// SyncedList keeps a locally held collection consistent with one-at-a-time
// server mutations (add one, update one, remove one) without refetching the
// whole collection after every change.
//
// Members are matched by identifier, never by position — unlike nested record
// list elements, collection members are independently identifiable. Failed
// mutations must not touch the list: callers only invoke Append/Update/Remove
// after the server confirmed the corresponding operation.
type SyncedList[T Identifiable] struct {
	mu    sync.Mutex
	state State
	items []T

	// less re-sorts the list after every replacement; server order is never
	// assumed stable. Nil keeps arrival order.
	less func(a, b T) bool
}

// NewSyncedList constructs an empty list with an optional sort comparator.
func NewSyncedList[T Identifiable](less func(a, b T) bool) *SyncedList[T] {
	return &SyncedList[T]{less: less}
}

// State reports the current lifecycle state.
func (list *SyncedList[T]) State() State {
	list.mu.Lock()
	defer list.mu.Unlock()
	return list.state
}

// BeginLoad marks a fetch as in flight.
func (list *SyncedList[T]) BeginLoad() {
	list.mu.Lock()
	list.state = StateLoading
	list.mu.Unlock()
}

// FailLoad records a failed fetch: the list empties and returns to StateEmpty
// so the view renders a "no data" presentation instead of stale content.
func (list *SyncedList[T]) FailLoad() {
	list.mu.Lock()
	list.items = nil
	list.state = StateEmpty
	list.mu.Unlock()
}

// ReplaceAll installs a freshly fetched collection and enters StateLoaded.
func (list *SyncedList[T]) ReplaceAll(items []T) {
	list.mu.Lock()
	list.items = list.sorted(items)
	list.state = StateLoaded
	list.mu.Unlock()
}

// Append adds a server-confirmed new member (no refetch).
func (list *SyncedList[T]) Append(member T) {
	list.mu.Lock()
	list.items = list.sorted(append(list.copyItems(), member))
	list.state = StateLoaded
	list.mu.Unlock()
}

// Update replaces the member with the matching identifier. It reports whether
// a member with that identifier was present. Mutations against a list that
// has not been loaded are ignored; the state stays as it was.
func (list *SyncedList[T]) Update(member T) bool {
	list.mu.Lock()
	defer list.mu.Unlock()

	if list.state != StateLoaded {
		return false
	}

	items := list.copyItems()
	for i, existing := range items {
		if existing.Identity() == member.Identity() {
			items[i] = member
			list.items = list.sorted(items)
			return true
		}
	}
	return false
}

// Remove drops the member with the matching identifier. It reports whether a
// member with that identifier was present. Like [SyncedList.Update], it is a
// no-op on a list that has not been loaded.
func (list *SyncedList[T]) Remove(id int) bool {
	list.mu.Lock()
	defer list.mu.Unlock()

	if list.state != StateLoaded {
		return false
	}

	before := len(list.items)
	list.items = slice.Filter(list.copyItems(), func(member T) bool {
		return member.Identity() != id
	})
	return len(list.items) != before
}

// Find returns the member with the matching identifier.
func (list *SyncedList[T]) Find(id int) (T, bool) {
	list.mu.Lock()
	defer list.mu.Unlock()

	for _, member := range list.items {
		if member.Identity() == id {
			return member, true
		}
	}
	var zero T
	return zero, false
}

// Items returns a copy of the held members in display order.
func (list *SyncedList[T]) Items() []T {
	list.mu.Lock()
	defer list.mu.Unlock()
	return list.copyItems()
}

// MaxBy returns the maximum value of extract over the held members, or zero
// for an empty list. Used for derived ordering of new members.
func (list *SyncedList[T]) MaxBy(extract func(T) int) int {
	list.mu.Lock()
	defer list.mu.Unlock()

	return slice.Reduce(list.items, 0, func(maxValue int, member T) int {
		if v := extract(member); v > maxValue {
			return v
		}
		return maxValue
	})
}

// copyItems clones the backing slice. Callers hold the lock.
func (list *SyncedList[T]) copyItems() []T {
	if list.items == nil {
		return []T{}
	}
	clone := make([]T, len(list.items))
	copy(clone, list.items)
	return clone
}

// sorted applies the comparator to a slice the caller already owns.
func (list *SyncedList[T]) sorted(items []T) []T {
	if list.less != nil {
		sort.SliceStable(items, func(i, j int) bool { return list.less(items[i], items[j]) })
	}
	return items
}
