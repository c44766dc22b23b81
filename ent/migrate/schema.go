// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
		{Name: "user_client_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Default: "New chat"},
		{Name: "model", Type: field.TypeString},
		{Name: "agent_level_llm_overwrite", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_modified", Type: field.TypeTime},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_user_client_id_last_modified",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[1], ConversationsColumns[6]},
			},
			{
				Name:    "conversation_user_client_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[1], ConversationsColumns[5]},
			},
		},
	}
	// MemoryRecordsColumns holds the columns for the "memory_records" table.
	MemoryRecordsColumns = []*schema.Column{
		{Name: "memory_id", Type: field.TypeInt, Increment: true},
		{Name: "memory_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "start_sequence", Type: field.TypeInt},
		{Name: "end_sequence", Type: field.TypeInt},
		{Name: "base_memory_id", Type: field.TypeInt, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"processing", "completed", "failed"}, Default: "processing"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "generation_time_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// MemoryRecordsTable holds the schema information for the "memory_records" table.
	MemoryRecordsTable = &schema.Table{
		Name:       "memory_records",
		Columns:    MemoryRecordsColumns,
		PrimaryKey: []*schema.Column{MemoryRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "memory_records_conversations_memories",
				Columns:    []*schema.Column{MemoryRecordsColumns[8]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "memoryrecord_conversation_id_status_end_sequence",
				Unique:  false,
				Columns: []*schema.Column{MemoryRecordsColumns[8], MemoryRecordsColumns[5], MemoryRecordsColumns[3]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "is_satisfy", Type: field.TypeBool, Nullable: true},
		{Name: "comment", Type: field.TypeString, Nullable: true},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_conversations_messages",
				Columns:    []*schema.Column{MessagesColumns[7]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id_sequence_number",
				Unique:  true,
				Columns: []*schema.Column{MessagesColumns[7], MessagesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConversationsTable,
		MemoryRecordsTable,
		MessagesTable,
	}
)

func init() {
	MemoryRecordsTable.ForeignKeys[0].RefTable = ConversationsTable
	MessagesTable.ForeignKeys[0].RefTable = ConversationsTable
}
