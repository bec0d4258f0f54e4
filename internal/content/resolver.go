// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

/*
Package content implements the client side of the external content service:
endpoint resolution across deployment topologies and a typed JSON transport
with a strict upstream error taxonomy.

The content service is an opaque HTTP document store addressed by resource
path. Everything durable lives there; this package owns nothing but the wire.
*/
package content

import (
	"net"
	"strings"
)

// Resolver maps a logical resource path to an absolute network address.
//
// # Topologies
//
// The same binary must reach the content service in three set-ups:
//
//  1. Containerized deployment with private service-to-service networking
//     (InternalBase set, e.g. "http://backend:3763").
//  2. Local development with a separately running backend (request arrives on
//     a loopback host, LocalBase used).
//  3. Production behind a reverse proxy (request origin + APIPrefix).
//
// All inputs are explicit; the resolver never reads the process environment.
type Resolver struct {
	// InternalBase is the private service-to-service address. Takes priority
	// over every other rule when non-empty and the caller is server-side.
	InternalBase string

	// LocalBase is the fixed development backend address, used when the
	// inbound request targets a loopback host.
	LocalBase string

	// ProductionBase is the hard-coded last-resort absolute address for
	// server-side calls with no request context.
	ProductionBase string

	// APIPrefix is the fixed prefix under which the content service is
	// reverse-proxied (typically "/api").
	APIPrefix string
}

// Origin describes the execution context of a single resolution.
//
// ServerSide distinguishes calls made on behalf of an inbound HTTP request
// (or a background job) from URLs handed to a browser, which must stay
// host-relative.
type Origin struct {
	// ServerSide is true when the URL will be fetched by this process.
	ServerSide bool

	// Host is the inbound request's host (may include a port). Empty when no
	// request context is available.
	Host string

	// Scheme is the inbound request's scheme ("http" or "https").
	Scheme string
}

// Resolve maps a logical path (e.g. "/blogs/7") to the absolute URL to fetch.
//
// Rules are evaluated once, in priority order:
//
//  1. Server-side with InternalBase configured: InternalBase + path.
//  2. Server-side, loopback request host: LocalBase + path.
//  3. Server-side with a request origin: origin + APIPrefix + path.
//  4. Client context: APIPrefix + path, relative to the current page.
//  5. Server-side, no request context: ProductionBase + path.
func (resolver Resolver) Resolve(logicalPath string, origin Origin) string {
	path := resolver.normalize(logicalPath)

	if !origin.ServerSide {
		return resolver.APIPrefix + path
	}

	if resolver.InternalBase != "" {
		return strings.TrimSuffix(resolver.InternalBase, "/") + path
	}

	if origin.Host != "" {
		if isLoopback(origin.Host) {
			return strings.TrimSuffix(resolver.LocalBase, "/") + path
		}

		scheme := origin.Scheme
		if scheme == "" {
			scheme = "https"
		}
		return scheme + "://" + origin.Host + resolver.APIPrefix + path
	}

	return strings.TrimSuffix(resolver.ProductionBase, "/") + path
}

// normalize strips a duplicated API prefix and guarantees exactly one
// leading path separator.
func (resolver Resolver) normalize(logicalPath string) string {
	path := logicalPath

	if resolver.APIPrefix != "" && strings.HasPrefix(path, resolver.APIPrefix) {
		path = path[len(resolver.APIPrefix):]
	}

	path = "/" + strings.TrimLeft(path, "/")
	return path
}

// isLoopback reports whether the request host addresses the local machine.
func isLoopback(host string) bool {
	hostname := host
	if h, _, err := net.SplitHostPort(host); err == nil {
		hostname = h
	}

	if hostname == "localhost" {
		return true
	}
	if ip := net.ParseIP(hostname); ip != nil {
		return ip.IsLoopback()
	}
	return false
}
