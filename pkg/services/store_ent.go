package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stanley-ops/stanley/ent"
	"github.com/stanley-ops/stanley/ent/conversation"
	"github.com/stanley-ops/stanley/ent/message"
	"github.com/stanley-ops/stanley/pkg/models"
)

// EntStore is the durable conversation backend on Postgres.
type EntStore struct {
	client *ent.Client
}

// NewEntStore creates the durable store over an ent client.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

func (s *EntStore) CreateConversation(ctx context.Context, meta *models.ConversationMeta) error {
	create := s.client.Conversation.Create().
		SetID(meta.ConversationID).
		SetUserClientID(meta.UserClientID).
		SetTitle(meta.Title).
		SetModel(meta.Model).
		SetCreatedAt(meta.CreatedAt).
		SetLastModified(meta.LastModified)
	if len(meta.AgentLevelLLMOverwrite) > 0 {
		create.SetAgentLevelLlmOverwrite(meta.AgentLevelLLMOverwrite)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}
	return nil
}

func (s *EntStore) GetMeta(ctx context.Context, userID, conversationID string) (*models.ConversationMeta, error) {
	conv, err := s.client.Conversation.Query().
		Where(
			conversation.IDEQ(conversationID),
			conversation.UserClientIDEQ(userID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	meta := metaFromEnt(conv)
	return &meta, nil
}

func (s *EntStore) ListMetas(ctx context.Context, userID string, since time.Time) ([]models.ConversationMeta, error) {
	convs, err := s.client.Conversation.Query().
		Where(
			conversation.UserClientIDEQ(userID),
			conversation.LastModifiedGTE(since),
		).
		Order(ent.Desc(conversation.FieldLastModified)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	metas := make([]models.ConversationMeta, len(convs))
	for i, conv := range convs {
		metas[i] = metaFromEnt(conv)
	}
	return metas, nil
}

func (s *EntStore) UpdateMeta(ctx context.Context, meta *models.ConversationMeta) error {
	update := s.client.Conversation.Update().
		Where(
			conversation.IDEQ(meta.ConversationID),
			conversation.UserClientIDEQ(meta.UserClientID),
		).
		SetTitle(meta.Title).
		SetModel(meta.Model).
		SetLastModified(meta.LastModified)
	if len(meta.AgentLevelLLMOverwrite) > 0 {
		update.SetAgentLevelLlmOverwrite(meta.AgentLevelLLMOverwrite)
	} else {
		update.ClearAgentLevelLlmOverwrite()
	}
	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update conversation: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *EntStore) DeleteConversation(ctx context.Context, userID, conversationID string) error {
	// Messages and memories follow via ON DELETE CASCADE.
	n, err := s.client.Conversation.Delete().
		Where(
			conversation.IDEQ(conversationID),
			conversation.UserClientIDEQ(userID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete conversation: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *EntStore) Messages(ctx context.Context, conversationID string) ([]models.ChatMessage, error) {
	exists, err := s.client.Conversation.Query().
		Where(conversation.IDEQ(conversationID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check conversation: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	rows, err := s.client.Message.Query().
		Where(message.ConversationIDEQ(conversationID)).
		Order(ent.Asc(message.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	msgs := make([]models.ChatMessage, len(rows))
	for i, row := range rows {
		msgs[i] = models.ChatMessage{
			SequenceNumber: row.SequenceNumber,
			Role:           models.Role(row.Role),
			Content:        row.Content,
			Timestamp:      row.Timestamp,
			IsSatisfy:      row.IsSatisfy,
			Comment:        row.Comment,
		}
	}
	return msgs, nil
}

// ReplaceMessages replaces the conversation's message sequence in one
// transaction (delete-then-insert, guarded by the unique
// (conversation_id, sequence_number) constraint) and bumps last_modified.
func (s *EntStore) ReplaceMessages(ctx context.Context, conversationID string, msgs []models.ChatMessage) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to open transaction: %w", err)
	}
	if err := s.replaceMessagesTx(ctx, tx, conversationID, msgs); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit message replace: %w", err)
	}
	return nil
}

func (s *EntStore) replaceMessagesTx(ctx context.Context, tx *ent.Tx, conversationID string, msgs []models.ChatMessage) error {
	n, err := tx.Conversation.Update().
		Where(conversation.IDEQ(conversationID)).
		SetLastModified(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to touch conversation: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if _, err := tx.Message.Delete().
		Where(message.ConversationIDEQ(conversationID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete messages: %w", err)
	}

	creates := make([]*ent.MessageCreate, len(msgs))
	for i, msg := range msgs {
		creates[i] = tx.Message.Create().
			SetID(uuid.New().String()).
			SetConversationID(conversationID).
			SetSequenceNumber(msg.SequenceNumber).
			SetRole(message.Role(msg.Role)).
			SetContent(msg.Content).
			SetTimestamp(msg.Timestamp).
			SetNillableIsSatisfy(msg.IsSatisfy).
			SetNillableComment(msg.Comment)
	}
	if _, err := tx.Message.CreateBulk(creates...).Save(ctx); err != nil {
		return fmt.Errorf("failed to insert messages: %w", err)
	}
	return nil
}

func (s *EntStore) SetEvaluation(ctx context.Context, conversationID string, sequenceNumber int, isSatisfy *bool, comment *string) error {
	update := s.client.Message.Update().
		Where(
			message.ConversationIDEQ(conversationID),
			message.SequenceNumberEQ(sequenceNumber),
		)
	if isSatisfy == nil {
		update.ClearIsSatisfy().ClearComment()
	} else {
		update.SetIsSatisfy(*isSatisfy).SetNillableComment(comment)
		if comment == nil {
			update.ClearComment()
		}
	}
	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set evaluation: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *EntStore) Close() error { return nil }

func metaFromEnt(conv *ent.Conversation) models.ConversationMeta {
	return models.ConversationMeta{
		ConversationID:         conv.ID,
		UserClientID:           conv.UserClientID,
		Title:                  conv.Title,
		Model:                  conv.Model,
		AgentLevelLLMOverwrite: conv.AgentLevelLlmOverwrite,
		CreatedAt:              conv.CreatedAt,
		LastModified:           conv.LastModified,
	}
}
