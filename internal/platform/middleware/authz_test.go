// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theijon/folio/internal/platform/constants"
	"github.com/theijon/folio/internal/platform/ctxutil"
	"github.com/theijon/folio/internal/platform/middleware"
	"github.com/theijon/folio/internal/platform/sec"
)

// fakeVerifier accepts exactly one token value.
type fakeVerifier struct {
	valid string
}

func (f fakeVerifier) VerifySession(r *http.Request, token string) (*sec.Session, error) {
	if token == f.valid {
		return &sec.Session{SessionID: "sess-1", Username: "jon"}, nil
	}
	return nil, errors.New("invalid session")
}

func protected() (http.Handler, *bool, **sec.Session) {
	reached := false
	var seen *sec.Session

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		seen = ctxutil.GetSession(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	chain := middleware.Authenticate(fakeVerifier{valid: "good-token"})(middleware.RequireAdmin(handler))
	return chain, &reached, &seen
}

func TestAuthenticate_ValidCookie(t *testing.T) {
	chain, reached, seen := protected()

	request := httptest.NewRequest("GET", "/admin/hero/draft", nil)
	request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: "good-token"})
	recorder := httptest.NewRecorder()

	chain.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, *reached)
	assert.Equal(t, "jon", (*seen).Username)
}

func TestRequireAdmin_NoCookie(t *testing.T) {
	chain, reached, _ := protected()

	request := httptest.NewRequest("GET", "/admin/hero/draft", nil)
	recorder := httptest.NewRecorder()

	chain.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, *reached)
}

func TestRequireAdmin_InvalidCookie(t *testing.T) {
	chain, reached, _ := protected()

	request := httptest.NewRequest("GET", "/admin/hero/draft", nil)
	request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: "forged"})
	recorder := httptest.NewRecorder()

	chain.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, *reached, "invalid cookies are anonymous, and anonymous is blocked")
}

// Anonymous requests pass Authenticate untouched; only RequireAdmin blocks.
func TestAuthenticate_AnonymousPassesThrough(t *testing.T) {
	reached := false
	open := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		assert.Nil(t, ctxutil.GetSession(r.Context()))
	})
	chain := middleware.Authenticate(fakeVerifier{valid: "good-token"})(open)

	request := httptest.NewRequest("GET", "/api/hero", nil)
	recorder := httptest.NewRecorder()

	chain.ServeHTTP(recorder, request)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
