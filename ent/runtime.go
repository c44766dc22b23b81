// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/stanley-ops/stanley/ent/conversation"
	"github.com/stanley-ops/stanley/ent/memoryrecord"
	"github.com/stanley-ops/stanley/ent/message"
	"github.com/stanley-ops/stanley/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescTitle is the schema descriptor for title field.
	conversationDescTitle := conversationFields[2].Descriptor()
	// conversation.DefaultTitle holds the default value on creation for the title field.
	conversation.DefaultTitle = conversationDescTitle.Default.(string)
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[5].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescLastModified is the schema descriptor for last_modified field.
	conversationDescLastModified := conversationFields[6].Descriptor()
	// conversation.DefaultLastModified holds the default value on creation for the last_modified field.
	conversation.DefaultLastModified = conversationDescLastModified.Default.(func() time.Time)
	memoryrecordFields := schema.MemoryRecord{}.Fields()
	_ = memoryrecordFields
	// memoryrecordDescMemoryText is the schema descriptor for memory_text field.
	memoryrecordDescMemoryText := memoryrecordFields[2].Descriptor()
	// memoryrecord.DefaultMemoryText holds the default value on creation for the memory_text field.
	memoryrecord.DefaultMemoryText = memoryrecordDescMemoryText.Default.(string)
	// memoryrecordDescStartSequence is the schema descriptor for start_sequence field.
	memoryrecordDescStartSequence := memoryrecordFields[3].Descriptor()
	// memoryrecord.StartSequenceValidator is a validator for the "start_sequence" field. It is called by the builders before save.
	memoryrecord.StartSequenceValidator = memoryrecordDescStartSequence.Validators[0].(func(int) error)
	// memoryrecordDescEndSequence is the schema descriptor for end_sequence field.
	memoryrecordDescEndSequence := memoryrecordFields[4].Descriptor()
	// memoryrecord.EndSequenceValidator is a validator for the "end_sequence" field. It is called by the builders before save.
	memoryrecord.EndSequenceValidator = memoryrecordDescEndSequence.Validators[0].(func(int) error)
	// memoryrecordDescCreatedAt is the schema descriptor for created_at field.
	memoryrecordDescCreatedAt := memoryrecordFields[7].Descriptor()
	// memoryrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	memoryrecord.DefaultCreatedAt = memoryrecordDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescSequenceNumber is the schema descriptor for sequence_number field.
	messageDescSequenceNumber := messageFields[2].Descriptor()
	// message.SequenceNumberValidator is a validator for the "sequence_number" field. It is called by the builders before save.
	message.SequenceNumberValidator = messageDescSequenceNumber.Validators[0].(func(int) error)
	// messageDescTimestamp is the schema descriptor for timestamp field.
	messageDescTimestamp := messageFields[5].Descriptor()
	// message.DefaultTimestamp holds the default value on creation for the timestamp field.
	message.DefaultTimestamp = messageDescTimestamp.Default.(func() time.Time)
}
