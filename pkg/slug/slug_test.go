// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theijon/folio/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"title_with_punctuation", "Hello, World! 2024", "hello-world-2024"},
		{"plain_words", "My First Post", "my-first-post"},
		{"accents_removed", "Café à Tokyo", "cafe-a-tokyo"},
		{"underscores_kept", "snake_case title", "snake_case-title"},
		{"leading_trailing_noise", "  --Edge Case-- ", "edge-case"},
		{"consecutive_separators", "a  -  b", "a-b"},
		{"already_a_slug", "hello-world", "hello-world"},
		{"empty", "", ""},
		{"only_punctuation", "?!...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.From(tt.input))
		})
	}
}
