// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

package edit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theijon/folio/internal/edit"
)

/*
TestInsert verifies appending preserves prior elements and never mutates the input.
*/
func TestInsert(t *testing.T) {
	original := []string{"a", "b"}

	result := edit.Insert(original, "c")

	assert.Equal(t, []string{"a", "b", "c"}, result)
	assert.Equal(t, []string{"a", "b"}, original, "input slice must not be modified")
}

func TestInsert_Empty(t *testing.T) {
	result := edit.Insert(nil, 42)
	assert.Equal(t, []int{42}, result)
}

/*
TestUpdateAt verifies positional replacement: only the targeted element
changes, everything else keeps its position.
*/
func TestUpdateAt(t *testing.T) {
	original := []int{10, 20, 30}

	result, err := edit.UpdateAt(original, 1, func(v int) int { return v + 1 })

	require.NoError(t, err)
	assert.Equal(t, []int{10, 21, 30}, result)
	assert.Equal(t, []int{10, 20, 30}, original, "input slice must not be modified")
}

func TestUpdateAt_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		index int
	}{
		{"negative", []int{1, 2}, -1},
		{"at_length", []int{1, 2}, 2},
		{"beyond_length", []int{1, 2}, 5},
		{"empty_list", []int{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := edit.UpdateAt(tt.items, tt.index, func(v int) int { return v })

			require.ErrorIs(t, err, edit.ErrIndexOutOfRange)
			assert.Nil(t, result)
		})
	}
}

/*
TestRemoveAt verifies removal shifts later elements down by one.
*/
func TestRemoveAt(t *testing.T) {
	tests := []struct {
		name     string
		items    []string
		index    int
		expected []string
	}{
		{"first", []string{"a", "b", "c"}, 0, []string{"b", "c"}},
		{"middle", []string{"a", "b", "c"}, 1, []string{"a", "c"}},
		{"last", []string{"a", "b", "c"}, 2, []string{"a", "b"}},
		{"only_element", []string{"a"}, 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := edit.RemoveAt(tt.items, tt.index)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRemoveAt_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		index int
	}{
		{"negative", []string{"a"}, -1},
		{"at_length", []string{"a"}, 1},
		{"empty_list", []string{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := edit.RemoveAt(tt.items, tt.index)

			require.ErrorIs(t, err, edit.ErrIndexOutOfRange)
			assert.Nil(t, result)
		})
	}
}

/*
TestRemoveAt_DoesNotMutateInput guards the copy-on-write contract: a removal
followed by reuse of the original slice must see the original content.
*/
func TestRemoveAt_DoesNotMutateInput(t *testing.T) {
	original := []int{1, 2, 3, 4}

	_, err := edit.RemoveAt(original, 1)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, original)
}
