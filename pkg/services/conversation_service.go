// Package services implements the business layer between the HTTP API and
// the storage backends.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stanley-ops/stanley/pkg/config"
	"github.com/stanley-ops/stanley/pkg/models"
)

// writeTimeout bounds individual store writes so a stalled backend cannot
// hang request handlers indefinitely.
const writeTimeout = 5 * time.Second

// defaultTitle is assigned at creation and replaced by the derived title
// after the first exchange completes.
const defaultTitle = "New chat"

// titleMaxRunes caps derived conversation titles.
const titleMaxRunes = 28

// ConversationService manages conversation lifecycle, message history and
// per-message evaluations on top of a Store.
type ConversationService struct {
	store       Store
	modelReg    *config.ModelRegistry
	historyDays int

	// Writes to one conversation are serialized here; the store backends
	// replace the whole message list, so concurrent appends would race.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewConversationService creates the conversation business service.
func NewConversationService(store Store, modelReg *config.ModelRegistry, historyDays int) *ConversationService {
	if historyDays <= 0 {
		historyDays = 7
	}
	return &ConversationService{
		store:       store,
		modelReg:    modelReg,
		historyDays: historyDays,
		locks:       map[string]*sync.Mutex{},
	}
}

func (s *ConversationService) conversationLock(conversationID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[conversationID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[conversationID] = lock
	}
	return lock
}

func (s *ConversationService) dropLock(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.locks, conversationID)
}

// CreateConversation creates a new conversation for a user. An empty model
// selects the process default; a non-empty one must be registered.
func (s *ConversationService) CreateConversation(ctx context.Context, userID, model, defaultModel string) (*models.ConversationMeta, error) {
	if userID == "" {
		return nil, NewValidationError("user id is required")
	}
	if model == "" {
		model = defaultModel
	}
	if _, err := s.modelReg.Get(model); err != nil {
		return nil, NewValidationError(fmt.Sprintf("unknown model: %q", model))
	}

	now := time.Now().UTC()
	meta := &models.ConversationMeta{
		ConversationID: newConversationID(),
		UserClientID:   userID,
		Title:          defaultTitle,
		Model:          model,
		CreatedAt:      now,
		LastModified:   now,
	}

	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := s.store.CreateConversation(writeCtx, meta); err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	slog.InfoContext(ctx, "Conversation created",
		"conversation_id", meta.ConversationID,
		"user_id", userID,
		"model", model)
	return meta, nil
}

// ListConversations returns the user's conversations from the rolling
// history window, most recently modified first.
func (s *ConversationService) ListConversations(ctx context.Context, userID string) ([]models.ConversationMeta, error) {
	if userID == "" {
		return nil, NewValidationError("user id is required")
	}
	since := time.Now().UTC().AddDate(0, 0, -s.historyDays)
	metas, err := s.store.ListMetas(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return metas, nil
}

// GetConversation returns metadata plus the full ordered message list.
func (s *ConversationService) GetConversation(ctx context.Context, userID, conversationID string) (*models.Conversation, error) {
	meta, err := s.store.GetMeta(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}
	msgs, err := s.store.Messages(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	return &models.Conversation{ConversationMeta: *meta, Messages: msgs}, nil
}

// GetMeta returns conversation metadata only.
func (s *ConversationService) GetMeta(ctx context.Context, userID, conversationID string) (*models.ConversationMeta, error) {
	return s.store.GetMeta(ctx, userID, conversationID)
}

// Messages returns the conversation's ordered message list, verifying
// ownership first.
func (s *ConversationService) Messages(ctx context.Context, userID, conversationID string) ([]models.ChatMessage, error) {
	if _, err := s.store.GetMeta(ctx, userID, conversationID); err != nil {
		return nil, err
	}
	return s.store.Messages(ctx, conversationID)
}

// UpdateConversation applies a partial metadata update. Nil fields are
// left unchanged; an explicit model must be registered.
func (s *ConversationService) UpdateConversation(ctx context.Context, userID, conversationID string, req models.UpdateConversationRequest) (*models.ConversationMeta, error) {
	meta, err := s.store.GetMeta(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, NewValidationError("title must not be empty")
		}
		meta.Title = title
	}
	if req.Model != nil {
		if _, err := s.modelReg.Get(*req.Model); err != nil {
			return nil, NewValidationError(fmt.Sprintf("unknown model: %q", *req.Model))
		}
		meta.Model = *req.Model
	}
	if req.AgentLevelLLMOverwrite != nil {
		for agentKey, model := range req.AgentLevelLLMOverwrite {
			if _, err := s.modelReg.Get(model); err != nil {
				return nil, NewValidationError(fmt.Sprintf("unknown model %q for agent %q", model, agentKey))
			}
		}
		meta.AgentLevelLLMOverwrite = req.AgentLevelLLMOverwrite
	}
	meta.LastModified = time.Now().UTC()

	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := s.store.UpdateMeta(writeCtx, meta); err != nil {
		return nil, fmt.Errorf("failed to update conversation: %w", err)
	}
	return meta, nil
}

// DeleteConversation removes the conversation and its messages.
func (s *ConversationService) DeleteConversation(ctx context.Context, userID, conversationID string) error {
	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := s.store.DeleteConversation(writeCtx, userID, conversationID); err != nil {
		return err
	}
	s.dropLock(conversationID)
	slog.InfoContext(ctx, "Conversation deleted",
		"conversation_id", conversationID,
		"user_id", userID)
	return nil
}

// AppendMessage appends a message at the next dense sequence number and
// returns the stored message. Appends to the same conversation are
// serialized in-process.
func (s *ConversationService) AppendMessage(ctx context.Context, userID, conversationID string, role models.Role, content string) (*models.ChatMessage, error) {
	if content == "" {
		return nil, NewValidationError("message content must not be empty")
	}
	if _, err := s.store.GetMeta(ctx, userID, conversationID); err != nil {
		return nil, err
	}

	lock := s.conversationLock(conversationID)
	lock.Lock()
	defer lock.Unlock()

	msgs, err := s.store.Messages(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	msg := models.ChatMessage{
		SequenceNumber: len(msgs),
		Role:           role,
		Content:        content,
		Timestamp:      time.Now().UTC(),
	}
	msgs = append(msgs, msg)

	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := s.store.ReplaceMessages(writeCtx, conversationID, msgs); err != nil {
		return nil, fmt.Errorf("failed to append message: %w", err)
	}
	return &msg, nil
}

// MaybeDeriveTitle sets the title from the first user message once a
// conversation still carries the creation default. Returns the new title,
// or "" when the title was already user-visible. Non-fatal on failure.
func (s *ConversationService) MaybeDeriveTitle(ctx context.Context, userID, conversationID, firstUserMessage string) string {
	meta, err := s.store.GetMeta(ctx, userID, conversationID)
	if err != nil || meta.Title != defaultTitle {
		return ""
	}
	meta.Title = deriveTitle(firstUserMessage)
	meta.LastModified = time.Now().UTC()

	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := s.store.UpdateMeta(writeCtx, meta); err != nil {
		slog.WarnContext(ctx, "Failed to derive conversation title",
			"conversation_id", conversationID,
			"error", err)
		return ""
	}
	return meta.Title
}

// SetEvaluation records user feedback on an assistant message.
func (s *ConversationService) SetEvaluation(ctx context.Context, userID, conversationID string, sequenceNumber int, req models.EvaluationRequest) error {
	if err := s.checkEvaluationTarget(ctx, userID, conversationID, sequenceNumber); err != nil {
		return err
	}
	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return s.store.SetEvaluation(writeCtx, conversationID, sequenceNumber, &req.IsSatisfy, req.Comment)
}

// ClearEvaluation removes previously recorded feedback.
func (s *ConversationService) ClearEvaluation(ctx context.Context, userID, conversationID string, sequenceNumber int) error {
	if err := s.checkEvaluationTarget(ctx, userID, conversationID, sequenceNumber); err != nil {
		return err
	}
	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return s.store.SetEvaluation(writeCtx, conversationID, sequenceNumber, nil, nil)
}

func (s *ConversationService) checkEvaluationTarget(ctx context.Context, userID, conversationID string, sequenceNumber int) error {
	if _, err := s.store.GetMeta(ctx, userID, conversationID); err != nil {
		return err
	}
	msgs, err := s.store.Messages(ctx, conversationID)
	if err != nil {
		return err
	}
	for _, msg := range msgs {
		if msg.SequenceNumber == sequenceNumber {
			if msg.Role != models.RoleAssistant {
				return NewValidationError("only assistant messages can be evaluated")
			}
			return nil
		}
	}
	return ErrNotFound
}

// newConversationID returns a short 8-character id from a random UUID.
func newConversationID() string {
	return uuid.New().String()[:8]
}

// deriveTitle trims the first user message into a short display title.
func deriveTitle(firstUserMessage string) string {
	title := strings.Join(strings.Fields(firstUserMessage), " ")
	if title == "" {
		return defaultTitle
	}
	runes := []rune(title)
	if len(runes) > titleMaxRunes {
		return string(runes[:titleMaxRunes]) + "…"
	}
	return title
}
