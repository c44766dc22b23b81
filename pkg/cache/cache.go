// Package cache implements the ephemeral side of the conversation store:
// conversation metadata and message lists in Redis with a bounded TTL.
// Keyspace: conv:meta:{user}:{id} and conv:msgs:{id}.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stanley-ops/stanley/pkg/models"
)

// ErrCacheMiss is returned when a key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// DefaultTTL bounds how long cached conversation state lives.
const DefaultTTL = 30 * time.Minute

// Config holds Redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// ConversationCache stores conversation metadata and message lists.
type ConversationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewConversationCache connects to Redis and verifies the connection.
func NewConversationCache(ctx context.Context, cfg Config) (*ConversationCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ConversationCache{client: client, ttl: ttl}, nil
}

func metaKey(userID, conversationID string) string {
	return fmt.Sprintf("conv:meta:%s:%s", userID, conversationID)
}

func messagesKey(conversationID string) string {
	return fmt.Sprintf("conv:msgs:%s", conversationID)
}

// GetMeta returns cached conversation metadata.
func (c *ConversationCache) GetMeta(ctx context.Context, userID, conversationID string) (*models.ConversationMeta, error) {
	var meta models.ConversationMeta
	if err := c.get(ctx, metaKey(userID, conversationID), &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// SetMeta caches conversation metadata with the configured TTL.
func (c *ConversationCache) SetMeta(ctx context.Context, meta *models.ConversationMeta) error {
	return c.set(ctx, metaKey(meta.UserClientID, meta.ConversationID), meta)
}

// GetMessages returns the cached full message list.
func (c *ConversationCache) GetMessages(ctx context.Context, conversationID string) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	if err := c.get(ctx, messagesKey(conversationID), &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// SetMessages caches the full message list with the configured TTL.
func (c *ConversationCache) SetMessages(ctx context.Context, conversationID string, msgs []models.ChatMessage) error {
	return c.set(ctx, messagesKey(conversationID), msgs)
}

// InvalidateMessages drops the cached message list.
func (c *ConversationCache) InvalidateMessages(ctx context.Context, conversationID string) error {
	return c.client.Del(ctx, messagesKey(conversationID)).Err()
}

// Invalidate drops both cache entries for a conversation.
func (c *ConversationCache) Invalidate(ctx context.Context, userID, conversationID string) error {
	return c.client.Del(ctx, metaKey(userID, conversationID), messagesKey(conversationID)).Err()
}

// Health reports whether Redis answers a ping.
func (c *ConversationCache) Health(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the connection pool.
func (c *ConversationCache) Close() error {
	return c.client.Close()
}

func (c *ConversationCache) get(ctx context.Context, key string, out any) error {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("cache decode %s: %w", key, err)
	}
	return nil
}

func (c *ConversationCache) set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}
