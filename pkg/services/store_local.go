package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stanley-ops/stanley/pkg/models"
)

// LocalStore keeps all conversation state in process memory. Used for
// development and tests; state is lost on restart.
type LocalStore struct {
	mu       sync.RWMutex
	metas    map[string]models.ConversationMeta // conversation ID → meta
	messages map[string][]models.ChatMessage    // conversation ID → messages
}

// NewLocalStore creates an empty in-memory store.
func NewLocalStore() *LocalStore {
	return &LocalStore{
		metas:    make(map[string]models.ConversationMeta),
		messages: make(map[string][]models.ChatMessage),
	}
}

func (s *LocalStore) CreateConversation(_ context.Context, meta *models.ConversationMeta) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metas[meta.ConversationID] = *meta
	return nil
}

func (s *LocalStore) GetMeta(_ context.Context, userID, conversationID string) (*models.ConversationMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meta, ok := s.metas[conversationID]
	if !ok || meta.UserClientID != userID {
		return nil, ErrNotFound
	}
	out := meta
	return &out, nil
}

func (s *LocalStore) ListMetas(_ context.Context, userID string, since time.Time) ([]models.ConversationMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var metas []models.ConversationMeta
	for _, meta := range s.metas {
		if meta.UserClientID == userID && !meta.LastModified.Before(since) {
			metas = append(metas, meta)
		}
	}
	sort.Slice(metas, func(i, j int) bool {
		return metas[i].LastModified.After(metas[j].LastModified)
	})
	return metas, nil
}

func (s *LocalStore) UpdateMeta(_ context.Context, meta *models.ConversationMeta) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.metas[meta.ConversationID]
	if !ok || existing.UserClientID != meta.UserClientID {
		return ErrNotFound
	}
	s.metas[meta.ConversationID] = *meta
	return nil
}

func (s *LocalStore) DeleteConversation(_ context.Context, userID, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	meta, ok := s.metas[conversationID]
	if !ok || meta.UserClientID != userID {
		return ErrNotFound
	}
	delete(s.metas, conversationID)
	delete(s.messages, conversationID)
	return nil
}

func (s *LocalStore) Messages(_ context.Context, conversationID string) ([]models.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.metas[conversationID]; !ok {
		return nil, ErrNotFound
	}
	msgs := make([]models.ChatMessage, len(s.messages[conversationID]))
	copy(msgs, s.messages[conversationID])
	return msgs, nil
}

func (s *LocalStore) ReplaceMessages(_ context.Context, conversationID string, msgs []models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	meta, ok := s.metas[conversationID]
	if !ok {
		return ErrNotFound
	}
	replaced := make([]models.ChatMessage, len(msgs))
	copy(replaced, msgs)
	s.messages[conversationID] = replaced
	meta.LastModified = time.Now().UTC()
	s.metas[conversationID] = meta
	return nil
}

func (s *LocalStore) SetEvaluation(_ context.Context, conversationID string, sequenceNumber int, isSatisfy *bool, comment *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs, ok := s.messages[conversationID]
	if !ok {
		return ErrNotFound
	}
	for i := range msgs {
		if msgs[i].SequenceNumber == sequenceNumber {
			msgs[i].IsSatisfy = isSatisfy
			msgs[i].Comment = comment
			return nil
		}
	}
	return ErrNotFound
}

func (s *LocalStore) Close() error { return nil }
