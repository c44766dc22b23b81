package services

import (
	"context"
	"fmt"
	"time"

	"github.com/stanley-ops/stanley/ent"
	"github.com/stanley-ops/stanley/pkg/cache"
	"github.com/stanley-ops/stanley/pkg/config"
	"github.com/stanley-ops/stanley/pkg/models"
)

// Store is the conversation storage backend. The durable backend is the
// record of truth; the redis mode decorates it with a write-through cache.
type Store interface {
	CreateConversation(ctx context.Context, meta *models.ConversationMeta) error
	GetMeta(ctx context.Context, userID, conversationID string) (*models.ConversationMeta, error)
	ListMetas(ctx context.Context, userID string, since time.Time) ([]models.ConversationMeta, error)
	UpdateMeta(ctx context.Context, meta *models.ConversationMeta) error
	DeleteConversation(ctx context.Context, userID, conversationID string) error

	Messages(ctx context.Context, conversationID string) ([]models.ChatMessage, error)
	// ReplaceMessages atomically replaces the conversation's message
	// sequence and bumps last_modified.
	ReplaceMessages(ctx context.Context, conversationID string, msgs []models.ChatMessage) error
	SetEvaluation(ctx context.Context, conversationID string, sequenceNumber int, isSatisfy *bool, comment *string) error

	Close() error
}

// NewStore builds the backend selected by CHAT_HISTORY_MODE: local keeps
// everything in memory, postgres is durable-only, redis wraps postgres with
// the write-through conversation cache.
func NewStore(mode config.ChatHistoryMode, client *ent.Client, conversationCache *cache.ConversationCache) (Store, error) {
	switch mode {
	case config.HistoryModeLocal:
		return NewLocalStore(), nil
	case config.HistoryModePostgres:
		if client == nil {
			return nil, fmt.Errorf("chat history mode %q requires a database client", mode)
		}
		return NewEntStore(client), nil
	case config.HistoryModeRedis:
		if client == nil {
			return nil, fmt.Errorf("chat history mode %q requires a database client", mode)
		}
		if conversationCache == nil {
			return nil, fmt.Errorf("chat history mode %q requires a cache", mode)
		}
		return NewCachedStore(NewEntStore(client), conversationCache), nil
	default:
		return nil, fmt.Errorf("unknown chat history mode: %q", mode)
	}
}
