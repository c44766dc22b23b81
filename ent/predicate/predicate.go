// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// MemoryRecord is the predicate function for memoryrecord builders.
type MemoryRecord func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)
