// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

/*
Package edit is the generic content editing engine.

The original admin console re-implemented the same state-management pattern
by hand for every content type: load a draft of a partially-nested document,
mutate its nested record lists locally, persist the whole document, and
reconcile the local copy with the server response. This package collapses
that pattern into three reusable pieces:

  - [Store]: the per-content-type draft holder (load once, replace, discard).
  - Insert / UpdateAt / RemoveAt: copy-on-write operations over nested record
    lists, whose elements carry no identifier and are addressed by position.
  - [SyncedList]: the per-collection view state machine that absorbs
    one-at-a-time server mutations without a full reload.

Every operation produces new values; nothing held by the engine is ever
mutated in place. The engine performs no I/O of its own — fetching and
persisting are injected by the per-type services.
*/
package edit

// Identifiable is implemented by collection members, which carry a
// server-assigned integer identifier. An identity of zero means the member
// has not been created yet.
//
// Nested record list elements deliberately do NOT implement this: they have
// no identity of their own and are addressed purely by position.
type Identifiable interface {
	Identity() int
}
