package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MemoryRecord holds the schema definition for the MemoryRecord entity.
// Rolling-window conversation summaries produced by the memory service.
// memory_id is a monotonically increasing integer so the version chain
// (base_memory_id) can be ordered without timestamps.
type MemoryRecord struct {
	ent.Schema
}

// Fields of the MemoryRecord.
func (MemoryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			StorageKey("memory_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.Text("memory_text").
			Default("").
			Comment("Empty while status=processing"),
		field.Int("start_sequence").
			NonNegative().
			Comment("Even; first message covered"),
		field.Int("end_sequence").
			NonNegative().
			Comment("Odd; last message covered"),
		field.Int("base_memory_id").
			Optional().
			Nillable().
			Comment("Completed record this summary incrementally extends"),
		field.Enum("status").
			Values("processing", "completed", "failed").
			Default("processing"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Int64("generation_time_ms").
			Optional().
			Nillable(),
	}
}

// Edges of the MemoryRecord.
func (MemoryRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("memories").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MemoryRecord.
func (MemoryRecord) Indexes() []ent.Index {
	return []ent.Index{
		// Latest completed lookup
		index.Fields("conversation_id", "status", "end_sequence"),
	}
}
