// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

package edit

import "errors"

// ErrIndexOutOfRange is returned when a positional operation targets an index
// outside [0, len). Out-of-range access is a caller contract violation and is
// never silently ignored.
var ErrIndexOutOfRange = errors.New("edit: index out of range")

// Insert appends value to items, returning a brand-new slice. The input slice
// is never modified; prior elements keep their positions.
func Insert[T any](items []T, value T) []T {
	result := make([]T, len(items)+1)
	copy(result, items)
	result[len(items)] = value
	return result
}

// UpdateAt returns a new slice where the element at index is replaced by
// merge(old). All other elements are unchanged and keep their positions.
//
// The merge function receives the current element by value and returns its
// replacement, which is how per-type shallow patch merging plugs in without
// the engine knowing any field names.
func UpdateAt[T any](items []T, index int, merge func(T) T) ([]T, error) {
	if index < 0 || index >= len(items) {
		return nil, ErrIndexOutOfRange
	}

	result := make([]T, len(items))
	copy(result, items)
	result[index] = merge(items[index])
	return result, nil
}

// RemoveAt returns a new slice with the element at index removed; elements
// above the removal point shift down by one.
//
// Because elements carry no identifier, a removal invalidates every pending
// positional reference above index. Callers must serialize edits to a given
// list and apply removals before later positional updates are dispatched.
func RemoveAt[T any](items []T, index int) ([]T, error) {
	if index < 0 || index >= len(items) {
		return nil, ErrIndexOutOfRange
	}

	result := make([]T, 0, len(items)-1)
	result = append(result, items[:index]...)
	result = append(result, items[index+1:]...)
	return result, nil
}
