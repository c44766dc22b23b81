package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity.
// Conversation history rows; sequence numbers are dense per conversation,
// user messages at even sequences and assistant messages at odd ones.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.Int("sequence_number").
			NonNegative(),
		field.Enum("role").
			Values("user", "assistant"),
		field.Text("content"),
		field.Time("timestamp").
			Default(time.Now),

		// Per-message evaluation (optional, user-provided)
		field.Bool("is_satisfy").
			Optional().
			Nillable(),
		field.String("comment").
			Optional().
			Nillable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("messages").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		// Dense sequence per conversation
		index.Fields("conversation_id", "sequence_number").
			Unique(),
	}
}
