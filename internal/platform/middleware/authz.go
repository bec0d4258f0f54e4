// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

package middleware

import (
	"net/http"

	"github.com/theijon/folio/internal/platform/apperr"
	"github.com/theijon/folio/internal/platform/constants"
	"github.com/theijon/folio/internal/platform/ctxutil"
	"github.com/theijon/folio/internal/platform/respond"
	"github.com/theijon/folio/internal/platform/sec"
)

// SessionVerifier resolves a signed cookie value into a live admin session.
//
// # Why an interface?
//
// Defining SessionVerifier here decouples the middleware from the auth
// service implementation, allowing us to easily inject mocks during unit
// testing.
type SessionVerifier interface {
	// VerifySession validates the cookie token and checks the session is still
	// active in the session store. Returns an error for expired, revoked, or
	// forged tokens.
	VerifySession(r *http.Request, token string) (*sec.Session, error)
}

// Authenticate resolves the session cookie, if present, into a [sec.Session]
// stored in the request context.
//
// # Flow
//  1. Look for the session cookie.
//  2. If absent, the request proceeds as anonymous.
//  3. If present, verify the token and the server-side session via [SessionVerifier].
//  4. Inject [*sec.Session] into the request context for downstream use.
//
// Invalid cookies are treated as anonymous rather than rejected, so that the
// public surface keeps working for visitors with stale cookies.
func Authenticate(verifier SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			cookie, err := request.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			session, err := verifier.VerifySession(request, cookie.Value)
			if err != nil {
				next.ServeHTTP(writer, request)
				return
			}

			ctx := ctxutil.WithSession(request.Context(), session)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAdmin blocks requests that do not carry an authenticated session.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. The editing core
// behind this gate only ever sees requests from the single admin identity;
// it consumes authentication purely as a boolean capability.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetSession(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
