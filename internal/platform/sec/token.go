// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

/*
Package sec provides the cryptographic primitives for the admin console:
bcrypt password verification and signed session tokens.

The session cookie does not carry any authority by itself. It wraps an opaque
session ID which must still resolve against the server-side session store, so
revocation (logout) is immediate even though the cookie is stateless.
*/
package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session identifies an authenticated admin console session.
type Session struct {
	// SessionID is the opaque server-side session identifier.
	SessionID string
	// Username is the admin account the session belongs to.
	Username string
}

// TokenService signs and verifies the HS256 tokens stored in the session cookie.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService constructs a [TokenService] from the shared session secret.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("sec: session secret must be at least 32 bytes")
	}
	return &TokenService{secret: []byte(secret), issuer: issuer}, nil
}

// sessionClaims is the JWT claim set wrapped around a session.
type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Sign produces a signed token for the given session, valid for timeToLive.
func (service *TokenService) Sign(session Session, timeToLive time.Duration) (string, error) {
	now := time.Now()

	claims := sessionClaims{
		Username: session.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    service.issuer,
			Subject:   session.SessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(timeToLive)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a signed token, returning the wrapped session.
func (service *TokenService) Verify(tokenStr string) (*Session, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method %q", t.Method.Alg())
		}
		return service.secret, nil
	}, jwt.WithIssuer(service.issuer), jwt.WithExpirationRequired())

	if err != nil {
		return nil, fmt.Errorf("sec: invalid session token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("sec: session token failed validation")
	}

	return &Session{SessionID: claims.Subject, Username: claims.Username}, nil
}
