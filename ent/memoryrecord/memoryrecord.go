// Code generated by ent, DO NOT EDIT.

package memoryrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the memoryrecord type in the database.
	Label = "memory_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "memory_id"
	// FieldConversationID holds the string denoting the conversation_id field in the database.
	FieldConversationID = "conversation_id"
	// FieldMemoryText holds the string denoting the memory_text field in the database.
	FieldMemoryText = "memory_text"
	// FieldStartSequence holds the string denoting the start_sequence field in the database.
	FieldStartSequence = "start_sequence"
	// FieldEndSequence holds the string denoting the end_sequence field in the database.
	FieldEndSequence = "end_sequence"
	// FieldBaseMemoryID holds the string denoting the base_memory_id field in the database.
	FieldBaseMemoryID = "base_memory_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldGenerationTimeMs holds the string denoting the generation_time_ms field in the database.
	FieldGenerationTimeMs = "generation_time_ms"
	// EdgeConversation holds the string denoting the conversation edge name in mutations.
	EdgeConversation = "conversation"
	// ConversationFieldID holds the string denoting the ID field of the Conversation.
	ConversationFieldID = "conversation_id"
	// Table holds the table name of the memoryrecord in the database.
	Table = "memory_records"
	// ConversationTable is the table that holds the conversation relation/edge.
	ConversationTable = "memory_records"
	// ConversationInverseTable is the table name for the Conversation entity.
	// It exists in this package in order to avoid circular dependency with the "conversation" package.
	ConversationInverseTable = "conversations"
	// ConversationColumn is the table column denoting the conversation relation/edge.
	ConversationColumn = "conversation_id"
)

// Columns holds all SQL columns for memoryrecord fields.
var Columns = []string{
	FieldID,
	FieldConversationID,
	FieldMemoryText,
	FieldStartSequence,
	FieldEndSequence,
	FieldBaseMemoryID,
	FieldStatus,
	FieldCreatedAt,
	FieldGenerationTimeMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultMemoryText holds the default value on creation for the "memory_text" field.
	DefaultMemoryText string
	// StartSequenceValidator is a validator for the "start_sequence" field. It is called by the builders before save.
	StartSequenceValidator func(int) error
	// EndSequenceValidator is a validator for the "end_sequence" field. It is called by the builders before save.
	EndSequenceValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusProcessing is the default value of the Status enum.
const DefaultStatus = StatusProcessing

// Status values.
const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusProcessing, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("memoryrecord: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the MemoryRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConversationID orders the results by the conversation_id field.
func ByConversationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationID, opts...).ToFunc()
}

// ByMemoryText orders the results by the memory_text field.
func ByMemoryText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemoryText, opts...).ToFunc()
}

// ByStartSequence orders the results by the start_sequence field.
func ByStartSequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartSequence, opts...).ToFunc()
}

// ByEndSequence orders the results by the end_sequence field.
func ByEndSequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndSequence, opts...).ToFunc()
}

// ByBaseMemoryID orders the results by the base_memory_id field.
func ByBaseMemoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaseMemoryID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByGenerationTimeMs orders the results by the generation_time_ms field.
func ByGenerationTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenerationTimeMs, opts...).ToFunc()
}

// ByConversationField orders the results by conversation field.
func ByConversationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConversationStep(), sql.OrderByField(field, opts...))
	}
}
func newConversationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConversationInverseTable, ConversationFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ConversationTable, ConversationColumn),
	)
}
