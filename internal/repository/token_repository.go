package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const tokenKeyPrefix = "auth:token:"

// ErrTokenNotFound is returned when a token id is unknown or expired.
var ErrTokenNotFound = errors.New("token not found")

// TokenSession is what the store keeps for an issued access token.
type TokenSession struct {
	UserID   int64     `json:"user_id"`
	IssuedAt time.Time `json:"issued_at"`
}

// TokenRepository keeps issued access token ids in Redis until they expire or are revoked.
type TokenRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewTokenRepository constructs a Redis backed token store.
func NewTokenRepository(client *redis.Client, logger *zap.Logger) *TokenRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TokenRepository{client: client, logger: logger}
}

// Save stores the session under tokenID for ttl.
func (r *TokenRepository) Save(ctx context.Context, tokenID string, session TokenSession, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal token session: %w", err)
	}
	if err := r.client.Set(ctx, tokenKeyPrefix+tokenID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set token %s: %w", tokenID, err)
	}
	return nil
}

// Get returns the session stored for tokenID.
func (r *TokenRepository) Get(ctx context.Context, tokenID string) (*TokenSession, error) {
	raw, err := r.client.Get(ctx, tokenKeyPrefix+tokenID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("redis get token %s: %w", tokenID, err)
	}
	var session TokenSession
	if err := json.Unmarshal(raw, &session); err != nil {
		r.logger.Warn("dropping unreadable token session", zap.String("token_id", tokenID), zap.Error(err))
		_ = r.client.Del(ctx, tokenKeyPrefix+tokenID).Err()
		return nil, ErrTokenNotFound
	}
	return &session, nil
}

// Delete revokes tokenID.
func (r *TokenRepository) Delete(ctx context.Context, tokenID string) error {
	if err := r.client.Del(ctx, tokenKeyPrefix+tokenID).Err(); err != nil {
		return fmt.Errorf("redis delete token %s: %w", tokenID, err)
	}
	return nil
}
