// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

package auth

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/theijon/folio/internal/platform/apperr"
	"github.com/theijon/folio/internal/platform/sec"
)

// Credentials is the configured admin identity the login check runs against.
type Credentials struct {
	Username     string
	PasswordHash string
}

// Service owns the session lifecycle: login, verification, logout.
type Service struct {
	credentials Credentials
	sessions    SessionRepository
	tokens      *sec.TokenService
	sessionTTL  time.Duration
	logger      *slog.Logger
}

// NewService constructs the auth [Service].
func NewService(credentials Credentials, sessions SessionRepository, tokens *sec.TokenService, sessionTTL time.Duration, logger *slog.Logger) *Service {
	return &Service{
		credentials: credentials,
		sessions:    sessions,
		tokens:      tokens,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

// Login checks the submitted credentials against the configured admin
// identity and, on success, creates a server-side session and returns the
// signed cookie token. Username and password failures are indistinguishable
// to the caller.
func (service *Service) Login(ctx context.Context, username, password string) (string, error) {
	usernameMatch := subtle.ConstantTimeCompare(
		[]byte(username), []byte(service.credentials.Username)) == 1
	passwordMatch := sec.CheckPasswordHash(password, service.credentials.PasswordHash)

	if !usernameMatch || !passwordMatch {
		service.logger.Warn("admin_login_rejected", slog.String("username", username))
		return "", apperr.Unauthorized("Invalid username or password")
	}

	sessionID := uuid.NewString()
	if err := service.sessions.Create(ctx, sessionID, username, service.sessionTTL); err != nil {
		return "", err
	}

	token, err := service.tokens.Sign(sec.Session{SessionID: sessionID, Username: username}, service.sessionTTL)
	if err != nil {
		// Roll back the orphaned session record.
		_ = service.sessions.Delete(ctx, sessionID)
		return "", apperr.Internal(err)
	}

	service.logger.Info("admin_login", slog.String("session_id", sessionID))
	return token, nil
}

// VerifySession implements middleware.SessionVerifier: the cookie token must
// carry a valid signature AND resolve to a live server-side session.
func (service *Service) VerifySession(r *http.Request, token string) (*sec.Session, error) {
	session, err := service.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	username, err := service.sessions.Get(r.Context(), session.SessionID)
	if err != nil {
		return nil, err
	}
	if username != session.Username {
		return nil, apperr.Unauthorized("Session mismatch")
	}

	return session, nil
}

// Logout revokes the session behind the given cookie token. A token that no
// longer verifies is treated as already logged out.
func (service *Service) Logout(ctx context.Context, token string) error {
	session, err := service.tokens.Verify(token)
	if err != nil {
		return nil
	}

	if err := service.sessions.Delete(ctx, session.SessionID); err != nil {
		return err
	}

	service.logger.Info("admin_logout", slog.String("session_id", session.SessionID))
	return nil
}

// SessionTTL exposes the configured session lifetime for cookie expiry.
func (service *Service) SessionTTL() time.Duration {
	return service.sessionTTL
}
