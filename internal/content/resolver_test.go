// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theijon/folio/internal/content"
)

func newResolver() content.Resolver {
	return content.Resolver{
		LocalBase:      "http://localhost:3763",
		ProductionBase: "https://api6.example.com",
		APIPrefix:      "/api",
	}
}

/*
TestResolver_Resolve walks every deployment topology rule in priority order.
*/
func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		resolver content.Resolver
		path     string
		origin   content.Origin
		expected string
	}{
		{
			name: "internal_base_wins_server_side",
			resolver: content.Resolver{
				InternalBase:   "http://backend:3763",
				LocalBase:      "http://localhost:3763",
				ProductionBase: "https://api6.example.com",
				APIPrefix:      "/api",
			},
			path:     "/hero",
			origin:   content.Origin{ServerSide: true, Host: "example.com", Scheme: "https"},
			expected: "http://backend:3763/hero",
		},
		{
			name:     "loopback_host_uses_local_base",
			resolver: newResolver(),
			path:     "/hero",
			origin:   content.Origin{ServerSide: true, Host: "localhost:8080", Scheme: "http"},
			expected: "http://localhost:3763/hero",
		},
		{
			name:     "loopback_ip_uses_local_base",
			resolver: newResolver(),
			path:     "/blogs",
			origin:   content.Origin{ServerSide: true, Host: "127.0.0.1:8080", Scheme: "http"},
			expected: "http://localhost:3763/blogs",
		},
		{
			name:     "request_origin_with_prefix",
			resolver: newResolver(),
			path:     "/works",
			origin:   content.Origin{ServerSide: true, Host: "example.com", Scheme: "https"},
			expected: "https://example.com/api/works",
		},
		{
			name:     "request_origin_defaults_scheme_to_https",
			resolver: newResolver(),
			path:     "/works",
			origin:   content.Origin{ServerSide: true, Host: "example.com"},
			expected: "https://example.com/api/works",
		},
		{
			name:     "client_side_stays_relative",
			resolver: newResolver(),
			path:     "/contact",
			origin:   content.Origin{ServerSide: false, Host: "example.com", Scheme: "https"},
			expected: "/api/contact",
		},
		{
			name:     "no_origin_falls_back_to_production",
			resolver: newResolver(),
			path:     "/techstack",
			origin:   content.Origin{ServerSide: true},
			expected: "https://api6.example.com/techstack",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.resolver.Resolve(tt.path, tt.origin))
		})
	}
}

/*
TestResolver_Normalization verifies path hygiene: duplicated API prefixes are
stripped and exactly one leading separator survives.
*/
func TestResolver_Normalization(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"missing_leading_slash", "hero", "https://api6.example.com/hero"},
		{"double_leading_slash", "//hero", "https://api6.example.com/hero"},
		{"duplicated_api_prefix", "/api/hero", "https://api6.example.com/hero"},
		{"nested_path", "/blogs/7", "https://api6.example.com/blogs/7"},
	}

	resolver := newResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolver.Resolve(tt.path, content.Origin{ServerSide: true}))
		})
	}
}

func TestResolver_TrailingSlashOnBases(t *testing.T) {
	resolver := content.Resolver{
		InternalBase: "http://backend:3763/",
		APIPrefix:    "/api",
	}

	assert.Equal(t, "http://backend:3763/hero",
		resolver.Resolve("/hero", content.Origin{ServerSide: true}))
}
