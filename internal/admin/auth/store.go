// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

/*
Package auth implements the admin console session lifecycle: credential
login, server-side session storage, and cookie issuance.

There is exactly one admin identity, configured through the environment.
Sessions are opaque server-side records; the browser only ever holds a
signed token wrapping the session ID, so logout revokes access immediately.
*/
package auth

import (
	"context"
	"time"
)

// # Session Data Access

// SessionRepository defines the storage contract for live admin sessions.
type SessionRepository interface {

	/*
		Create persists a new session record for a successful login.

		Parameters:
		  - context: context.Context
		  - sessionID: string
		  - username: string
		  - ttl: time.Duration

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, sessionID, username string, ttl time.Duration) error

	/*
		Get returns the username bound to an active session.

		Parameters:
		  - context: context.Context
		  - sessionID: string

		Returns:
		  - string: Username
		  - error: apperr.NotFound for absent or expired sessions
	*/
	Get(context context.Context, sessionID string) (string, error)

	/*
		Delete revokes a session immediately.

		Parameters:
		  - context: context.Context
		  - sessionID: string

		Returns:
		  - error: Persistence failures
	*/
	Delete(context context.Context, sessionID string) error
}
