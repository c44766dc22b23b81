package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/stanley-ops/stanley/pkg/cache"
	"github.com/stanley-ops/stanley/pkg/models"
)

// CachedStore layers a Redis read-through/write-through cache over the
// durable store. Cache failures after a successful durable write are
// logged and swallowed; the durable store stays the source of truth.
type CachedStore struct {
	durable Store
	cache   *cache.ConversationCache
}

// NewCachedStore wraps a durable store with the conversation cache.
func NewCachedStore(durable Store, conversationCache *cache.ConversationCache) *CachedStore {
	return &CachedStore{durable: durable, cache: conversationCache}
}

func (s *CachedStore) CreateConversation(ctx context.Context, meta *models.ConversationMeta) error {
	if err := s.durable.CreateConversation(ctx, meta); err != nil {
		return err
	}
	if err := s.cache.SetMeta(ctx, meta); err != nil {
		s.logCacheError(ctx, "cache meta set failed after create", meta.ConversationID, err)
	}
	return nil
}

func (s *CachedStore) GetMeta(ctx context.Context, userID, conversationID string) (*models.ConversationMeta, error) {
	meta, err := s.cache.GetMeta(ctx, userID, conversationID)
	if err == nil {
		return meta, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logCacheError(ctx, "cache meta read failed", conversationID, err)
	}

	meta, err = s.durable.GetMeta(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}
	if cerr := s.cache.SetMeta(ctx, meta); cerr != nil {
		s.logCacheError(ctx, "cache meta backfill failed", conversationID, cerr)
	}
	return meta, nil
}

// ListMetas always hits the durable store; the listing window is bounded
// and per-user, caching individual metas does not serve it.
func (s *CachedStore) ListMetas(ctx context.Context, userID string, since time.Time) ([]models.ConversationMeta, error) {
	return s.durable.ListMetas(ctx, userID, since)
}

// UpdateMeta invalidates both cache entries so the next read rebuilds
// them from the durable store. Model and override changes must never be
// served stale.
func (s *CachedStore) UpdateMeta(ctx context.Context, meta *models.ConversationMeta) error {
	if err := s.durable.UpdateMeta(ctx, meta); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, meta.UserClientID, meta.ConversationID); err != nil {
		s.logCacheError(ctx, "cache invalidation failed after update", meta.ConversationID, err)
	}
	return nil
}

func (s *CachedStore) DeleteConversation(ctx context.Context, userID, conversationID string) error {
	if err := s.durable.DeleteConversation(ctx, userID, conversationID); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, userID, conversationID); err != nil {
		s.logCacheError(ctx, "cache invalidation failed after delete", conversationID, err)
	}
	return nil
}

func (s *CachedStore) Messages(ctx context.Context, conversationID string) ([]models.ChatMessage, error) {
	msgs, err := s.cache.GetMessages(ctx, conversationID)
	if err == nil {
		return msgs, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logCacheError(ctx, "cache message read failed", conversationID, err)
	}

	msgs, err = s.durable.Messages(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if cerr := s.cache.SetMessages(ctx, conversationID, msgs); cerr != nil {
		s.logCacheError(ctx, "cache message backfill failed", conversationID, cerr)
	}
	return msgs, nil
}

func (s *CachedStore) ReplaceMessages(ctx context.Context, conversationID string, msgs []models.ChatMessage) error {
	if err := s.durable.ReplaceMessages(ctx, conversationID, msgs); err != nil {
		return err
	}
	if err := s.cache.SetMessages(ctx, conversationID, msgs); err != nil {
		s.logCacheError(ctx, "cache message set failed after replace", conversationID, err)
	}
	return nil
}

func (s *CachedStore) SetEvaluation(ctx context.Context, conversationID string, sequenceNumber int, isSatisfy *bool, comment *string) error {
	if err := s.durable.SetEvaluation(ctx, conversationID, sequenceNumber, isSatisfy, comment); err != nil {
		return err
	}
	if err := s.cache.InvalidateMessages(ctx, conversationID); err != nil {
		s.logCacheError(ctx, "cache invalidation failed after evaluation", conversationID, err)
	}
	return nil
}

func (s *CachedStore) Close() error {
	cerr := s.cache.Close()
	derr := s.durable.Close()
	if derr != nil {
		return derr
	}
	return cerr
}

func (s *CachedStore) logCacheError(ctx context.Context, msg, conversationID string, err error) {
	slog.WarnContext(ctx, msg,
		"conversation_id", conversationID,
		"error", err)
}
