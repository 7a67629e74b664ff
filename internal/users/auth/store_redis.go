// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/legaldesign/internal/platform/constants"
)

// RedisRevocationRepository implements [RevocationRepository] using Redis.
// Each revoked token id is a key that expires with the token.
type RedisRevocationRepository struct {
	client *redis.Client
}

// NewRevocationRepository creates a Redis-backed [RevocationRepository].
func NewRevocationRepository(client *redis.Client) *RedisRevocationRepository {
	return &RedisRevocationRepository{client: client}
}

func revocationKey(tokenID string) string {
	return constants.RedisPrefixRevokedToken + tokenID
}

/*
Revoke stores the token id with its remaining lifetime.

Parameters:
  - context: context.Context
  - tokenID: string
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (repository *RedisRevocationRepository) Revoke(context context.Context, tokenID string, ttl time.Duration) error {
	if err := repository.client.Set(context, revocationKey(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis_token_revoke_failed: %w", err)
	}
	return nil
}

// IsRevoked reports whether the key of the token id still exists.
func (repository *RedisRevocationRepository) IsRevoked(context context.Context, tokenID string) (bool, error) {
	count, err := repository.client.Exists(context, revocationKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis_token_lookup_failed: %w", err)
	}
	return count > 0, nil
}
