// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

package auth

import (
	"context"
	"sync"
	"time"

	"github.com/theijon/folio/internal/platform/apperr"
)

// MemorySessionRepository implements SessionRepository in process memory.
// It is the single-instance fallback when no Redis URL is configured;
// sessions do not survive a restart.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
}

type memorySession struct {
	username  string
	expiresAt time.Time
}

// NewMemorySessionRepository creates an in-memory SessionRepository.
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{sessions: make(map[string]memorySession)}
}

// Create stores the session with its expiry.
func (repository *MemorySessionRepository) Create(_ context.Context, sessionID, username string, ttl time.Duration) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.sessions[sessionID] = memorySession{
		username:  username,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Get resolves a session ID, lazily evicting expired entries.
func (repository *MemorySessionRepository) Get(_ context.Context, sessionID string) (string, error) {
	repository.mu.RLock()
	session, ok := repository.sessions[sessionID]
	repository.mu.RUnlock()

	if !ok {
		return "", apperr.NotFound("Session")
	}
	if time.Now().After(session.expiresAt) {
		repository.mu.Lock()
		delete(repository.sessions, sessionID)
		repository.mu.Unlock()
		return "", apperr.NotFound("Session")
	}
	return session.username, nil
}

// Delete revokes the session.
func (repository *MemorySessionRepository) Delete(_ context.Context, sessionID string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	delete(repository.sessions, sessionID)
	return nil
}
