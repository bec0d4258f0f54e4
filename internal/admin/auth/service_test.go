// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

package auth_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theijon/folio/internal/admin/auth"
	"github.com/theijon/folio/internal/platform/sec"
)

const tokenSecret = "0123456789abcdef0123456789abcdef"

func newService(t *testing.T) *auth.Service {
	t.Helper()

	// bcrypt hash computed once at test setup, not a fixture string, so the
	// cost factor can change without breaking tests.
	hash, err := sec.HashPassword("correct horse")
	require.NoError(t, err)

	tokens, err := sec.NewTokenService(tokenSecret, "test-issuer")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return auth.NewService(
		auth.Credentials{Username: "jon", PasswordHash: hash},
		auth.NewMemorySessionRepository(),
		tokens,
		time.Hour,
		logger,
	)
}

func TestService_Login_And_Verify(t *testing.T) {
	service := newService(t)

	token, err := service.Login(context.Background(), "jon", "correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	request := httptest.NewRequest("GET", "/admin/hero/draft", nil)
	session, err := service.VerifySession(request, token)
	require.NoError(t, err)
	assert.Equal(t, "jon", session.Username)
	assert.NotEmpty(t, session.SessionID)
}

func TestService_Login_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong_password", "jon", "incorrect"},
		{"wrong_username", "admin", "correct horse"},
		{"both_wrong", "admin", "incorrect"},
		{"empty", "", ""},
	}

	service := newService(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(context.Background(), tt.username, tt.password)
			assert.Error(t, err)
		})
	}
}

/*
TestService_Logout_RevokesImmediately is the reason sessions are server-side:
a signed, unexpired token must stop working the moment the session is deleted.
*/
func TestService_Logout_RevokesImmediately(t *testing.T) {
	service := newService(t)

	token, err := service.Login(context.Background(), "jon", "correct horse")
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), token))

	request := httptest.NewRequest("GET", "/admin/hero/draft", nil)
	_, err = service.VerifySession(request, token)
	assert.Error(t, err)
}

func TestService_Logout_GarbageTokenIsNoop(t *testing.T) {
	service := newService(t)
	assert.NoError(t, service.Logout(context.Background(), "not.a.token"))
}

func TestService_VerifySession_ForgedToken(t *testing.T) {
	service := newService(t)

	// Signed with a different secret.
	otherTokens, err := sec.NewTokenService("ffffffffffffffffffffffffffffffff", "test-issuer")
	require.NoError(t, err)
	forged, err := otherTokens.Sign(sec.Session{SessionID: "sess-1", Username: "jon"}, time.Hour)
	require.NoError(t, err)

	request := httptest.NewRequest("GET", "/admin/hero/draft", nil)
	_, err = service.VerifySession(request, forged)
	assert.Error(t, err)
}

func TestMemorySessionRepository_Expiry(t *testing.T) {
	repository := auth.NewMemorySessionRepository()
	ctx := context.Background()

	require.NoError(t, repository.Create(ctx, "sess-1", "jon", -time.Minute))

	_, err := repository.Get(ctx, "sess-1")
	assert.Error(t, err, "expired sessions must not resolve")
}
