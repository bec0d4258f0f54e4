// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/theijon/folio/internal/platform/apperr"
	"github.com/theijon/folio/internal/platform/constants"
)

// RedisSessionRepository implements SessionRepository using Redis, so sessions
// survive restarts and are shared between instances.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewRedisSessionRepository creates a Redis-backed SessionRepository.
func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

/*
Create stores the session with its TTL; Redis expires it for us.

Parameters:
  - context: context.Context
  - sessionID: string
  - username: string
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (repository *RedisSessionRepository) Create(context context.Context, sessionID, username string, ttl time.Duration) error {
	key := constants.RedisPrefixSession + sessionID

	if err := repository.client.Set(context, key, username, ttl).Err(); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

/*
Get resolves a session ID to its username.

Description: Returns apperr.NotFound if the session is absent or expired.

Parameters:
  - context: context.Context
  - sessionID: string

Returns:
  - string: Username
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisSessionRepository) Get(context context.Context, sessionID string) (string, error) {
	key := constants.RedisPrefixSession + sessionID

	username, err := repository.client.Get(context, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("Session")
		}
		return "", apperr.Internal(err)
	}
	return username, nil
}

/*
Delete revokes the session.

Parameters:
  - context: context.Context
  - sessionID: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisSessionRepository) Delete(context context.Context, sessionID string) error {
	key := constants.RedisPrefixSession + sessionID

	if err := repository.client.Del(context, key).Err(); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
