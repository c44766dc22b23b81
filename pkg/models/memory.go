package models

import "time"

// MemoryStatus is the lifecycle state of a memory record.
type MemoryStatus string

const (
	MemoryProcessing MemoryStatus = "processing"
	MemoryCompleted  MemoryStatus = "completed"
	MemoryFailed     MemoryStatus = "failed"
)

// MemoryRecord is a rolling-window summary of one slice of a conversation.
type MemoryRecord struct {
	MemoryID         int          `json:"memory_id"`
	ConversationID   string       `json:"conversation_id"`
	MemoryText       string       `json:"memory_text"`
	StartSequence    int          `json:"start_sequence"`
	EndSequence      int          `json:"end_sequence"`
	BaseMemoryID     *int         `json:"base_memory_id,omitempty"`
	Status           MemoryStatus `json:"status"`
	CreatedAt        time.Time    `json:"created_at"`
	GenerationTimeMS *int64       `json:"generation_time_ms,omitempty"`
}

// ConversationContext is what the read path hands to a new workflow run:
// the newest completed summary (if any) plus the messages it does not cover.
// GapMessages never includes the user message that started the current turn.
type ConversationContext struct {
	MemoryText  *string       `json:"memory_text,omitempty"`
	GapMessages []ChatMessage `json:"gap_messages"`
}
