// Package models contains request/response models and business domain types.
package models

import "time"

// Role identifies the author of a stored chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one stored message of a conversation. Sequence numbers are
// dense starting at 0; even sequences are user messages, odd are assistant.
type ChatMessage struct {
	SequenceNumber int       `json:"sequence_number"`
	Role           Role      `json:"role"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
	IsSatisfy      *bool     `json:"is_satisfy,omitempty"`
	Comment        *string   `json:"comment,omitempty"`
}

// Round returns the round index this message belongs to (user/assistant pair).
func (m ChatMessage) Round() int {
	return m.SequenceNumber / 2
}

// ConversationMeta is conversation metadata without messages.
type ConversationMeta struct {
	ConversationID         string            `json:"conversation_id"`
	UserClientID           string            `json:"user_client_id"`
	Title                  string            `json:"title"`
	Model                  string            `json:"model"`
	AgentLevelLLMOverwrite map[string]string `json:"agent_level_llm_overwrite,omitempty"`
	CreatedAt              time.Time         `json:"created_at"`
	LastModified           time.Time         `json:"last_modified"`
}

// Conversation is metadata plus the full ordered message list.
type Conversation struct {
	ConversationMeta
	Messages []ChatMessage `json:"messages"`
}

// UpdateConversationRequest carries the mutable conversation fields. Nil
// means "leave unchanged".
type UpdateConversationRequest struct {
	Title                  *string           `json:"title,omitempty"`
	Model                  *string           `json:"model,omitempty"`
	AgentLevelLLMOverwrite map[string]string `json:"agent_level_llm_overwrite,omitempty"`
}

// EvaluationRequest marks an assistant message as satisfying or not.
type EvaluationRequest struct {
	IsSatisfy bool    `json:"is_satisfy"`
	Comment   *string `json:"comment,omitempty"`
}
