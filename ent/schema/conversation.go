package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversation holds the schema definition for the Conversation entity.
// One row per chat conversation owned by a user.
type Conversation struct {
	ent.Schema
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("conversation_id").
			Unique().
			Immutable(),
		field.String("user_client_id").
			Immutable().
			Comment("Owning user"),
		field.String("title").
			Default("New chat"),
		field.String("model").
			Comment("Default model for this conversation"),
		field.JSON("agent_level_llm_overwrite", map[string]string{}).
			Optional().
			Comment("Per-agent model overrides keyed by agent key"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_modified").
			Default(time.Now),
	}
}

// Edges of the Conversation.
func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("memories", MemoryRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		// Recent-first listing per user
		index.Fields("user_client_id", "last_modified"),
		// History-window filtering
		index.Fields("user_client_id", "created_at"),
	}
}
