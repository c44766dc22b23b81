// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stanley-ops/stanley/ent/conversation"
	"github.com/stanley-ops/stanley/ent/memoryrecord"
	"github.com/stanley-ops/stanley/ent/message"
	"github.com/stanley-ops/stanley/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeConversation = "Conversation"
	TypeMemoryRecord = "MemoryRecord"
	TypeMessage      = "Message"
)

// ConversationMutation represents an operation that mutates the Conversation nodes in the graph.
type ConversationMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	user_client_id            *string
	title                     *string
	model                     *string
	agent_level_llm_overwrite *map[string]string
	created_at                *time.Time
	last_modified             *time.Time
	clearedFields             map[string]struct{}
	messages                  map[string]struct{}
	removedmessages           map[string]struct{}
	clearedmessages           bool
	memories                  map[int]struct{}
	removedmemories           map[int]struct{}
	clearedmemories           bool
	done                      bool
	oldValue                  func(context.Context) (*Conversation, error)
	predicates                []predicate.Conversation
}

var _ ent.Mutation = (*ConversationMutation)(nil)

// conversationOption allows management of the mutation configuration using functional options.
type conversationOption func(*ConversationMutation)

// newConversationMutation creates new mutation for the Conversation entity.
func newConversationMutation(c config, op Op, opts ...conversationOption) *ConversationMutation {
	m := &ConversationMutation{
		config:        c,
		op:            op,
		typ:           TypeConversation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationID sets the ID field of the mutation.
func withConversationID(id string) conversationOption {
	return func(m *ConversationMutation) {
		var (
			err   error
			once  sync.Once
			value *Conversation
		)
		m.oldValue = func(ctx context.Context) (*Conversation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Conversation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversation sets the old Conversation of the mutation.
func withConversation(node *Conversation) conversationOption {
	return func(m *ConversationMutation) {
		m.oldValue = func(context.Context) (*Conversation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Conversation entities.
func (m *ConversationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Conversation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserClientID sets the "user_client_id" field.
func (m *ConversationMutation) SetUserClientID(s string) {
	m.user_client_id = &s
}

// UserClientID returns the value of the "user_client_id" field in the mutation.
func (m *ConversationMutation) UserClientID() (r string, exists bool) {
	v := m.user_client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserClientID returns the old "user_client_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldUserClientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserClientID: %w", err)
	}
	return oldValue.UserClientID, nil
}

// ResetUserClientID resets all changes to the "user_client_id" field.
func (m *ConversationMutation) ResetUserClientID() {
	m.user_client_id = nil
}

// SetTitle sets the "title" field.
func (m *ConversationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ConversationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ConversationMutation) ResetTitle() {
	m.title = nil
}

// SetModel sets the "model" field.
func (m *ConversationMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ConversationMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *ConversationMutation) ResetModel() {
	m.model = nil
}

// SetAgentLevelLlmOverwrite sets the "agent_level_llm_overwrite" field.
func (m *ConversationMutation) SetAgentLevelLlmOverwrite(value map[string]string) {
	m.agent_level_llm_overwrite = &value
}

// AgentLevelLlmOverwrite returns the value of the "agent_level_llm_overwrite" field in the mutation.
func (m *ConversationMutation) AgentLevelLlmOverwrite() (r map[string]string, exists bool) {
	v := m.agent_level_llm_overwrite
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentLevelLlmOverwrite returns the old "agent_level_llm_overwrite" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldAgentLevelLlmOverwrite(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentLevelLlmOverwrite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentLevelLlmOverwrite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentLevelLlmOverwrite: %w", err)
	}
	return oldValue.AgentLevelLlmOverwrite, nil
}

// ClearAgentLevelLlmOverwrite clears the value of the "agent_level_llm_overwrite" field.
func (m *ConversationMutation) ClearAgentLevelLlmOverwrite() {
	m.agent_level_llm_overwrite = nil
	m.clearedFields[conversation.FieldAgentLevelLlmOverwrite] = struct{}{}
}

// AgentLevelLlmOverwriteCleared returns if the "agent_level_llm_overwrite" field was cleared in this mutation.
func (m *ConversationMutation) AgentLevelLlmOverwriteCleared() bool {
	_, ok := m.clearedFields[conversation.FieldAgentLevelLlmOverwrite]
	return ok
}

// ResetAgentLevelLlmOverwrite resets all changes to the "agent_level_llm_overwrite" field.
func (m *ConversationMutation) ResetAgentLevelLlmOverwrite() {
	m.agent_level_llm_overwrite = nil
	delete(m.clearedFields, conversation.FieldAgentLevelLlmOverwrite)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastModified sets the "last_modified" field.
func (m *ConversationMutation) SetLastModified(t time.Time) {
	m.last_modified = &t
}

// LastModified returns the value of the "last_modified" field in the mutation.
func (m *ConversationMutation) LastModified() (r time.Time, exists bool) {
	v := m.last_modified
	if v == nil {
		return
	}
	return *v, true
}

// OldLastModified returns the old "last_modified" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldLastModified(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastModified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastModified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastModified: %w", err)
	}
	return oldValue.LastModified, nil
}

// ResetLastModified resets all changes to the "last_modified" field.
func (m *ConversationMutation) ResetLastModified() {
	m.last_modified = nil
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *ConversationMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *ConversationMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *ConversationMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *ConversationMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *ConversationMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ConversationMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ConversationMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddMemoryIDs adds the "memories" edge to the MemoryRecord entity by ids.
func (m *ConversationMutation) AddMemoryIDs(ids ...int) {
	if m.memories == nil {
		m.memories = make(map[int]struct{})
	}
	for i := range ids {
		m.memories[ids[i]] = struct{}{}
	}
}

// ClearMemories clears the "memories" edge to the MemoryRecord entity.
func (m *ConversationMutation) ClearMemories() {
	m.clearedmemories = true
}

// MemoriesCleared reports if the "memories" edge to the MemoryRecord entity was cleared.
func (m *ConversationMutation) MemoriesCleared() bool {
	return m.clearedmemories
}

// RemoveMemoryIDs removes the "memories" edge to the MemoryRecord entity by IDs.
func (m *ConversationMutation) RemoveMemoryIDs(ids ...int) {
	if m.removedmemories == nil {
		m.removedmemories = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.memories, ids[i])
		m.removedmemories[ids[i]] = struct{}{}
	}
}

// RemovedMemories returns the removed IDs of the "memories" edge to the MemoryRecord entity.
func (m *ConversationMutation) RemovedMemoriesIDs() (ids []int) {
	for id := range m.removedmemories {
		ids = append(ids, id)
	}
	return
}

// MemoriesIDs returns the "memories" edge IDs in the mutation.
func (m *ConversationMutation) MemoriesIDs() (ids []int) {
	for id := range m.memories {
		ids = append(ids, id)
	}
	return
}

// ResetMemories resets all changes to the "memories" edge.
func (m *ConversationMutation) ResetMemories() {
	m.memories = nil
	m.clearedmemories = false
	m.removedmemories = nil
}

// Where appends a list predicates to the ConversationMutation builder.
func (m *ConversationMutation) Where(ps ...predicate.Conversation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Conversation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Conversation).
func (m *ConversationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_client_id != nil {
		fields = append(fields, conversation.FieldUserClientID)
	}
	if m.title != nil {
		fields = append(fields, conversation.FieldTitle)
	}
	if m.model != nil {
		fields = append(fields, conversation.FieldModel)
	}
	if m.agent_level_llm_overwrite != nil {
		fields = append(fields, conversation.FieldAgentLevelLlmOverwrite)
	}
	if m.created_at != nil {
		fields = append(fields, conversation.FieldCreatedAt)
	}
	if m.last_modified != nil {
		fields = append(fields, conversation.FieldLastModified)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldUserClientID:
		return m.UserClientID()
	case conversation.FieldTitle:
		return m.Title()
	case conversation.FieldModel:
		return m.Model()
	case conversation.FieldAgentLevelLlmOverwrite:
		return m.AgentLevelLlmOverwrite()
	case conversation.FieldCreatedAt:
		return m.CreatedAt()
	case conversation.FieldLastModified:
		return m.LastModified()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversation.FieldUserClientID:
		return m.OldUserClientID(ctx)
	case conversation.FieldTitle:
		return m.OldTitle(ctx)
	case conversation.FieldModel:
		return m.OldModel(ctx)
	case conversation.FieldAgentLevelLlmOverwrite:
		return m.OldAgentLevelLlmOverwrite(ctx)
	case conversation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conversation.FieldLastModified:
		return m.OldLastModified(ctx)
	}
	return nil, fmt.Errorf("unknown Conversation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldUserClientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserClientID(v)
		return nil
	case conversation.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case conversation.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case conversation.FieldAgentLevelLlmOverwrite:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentLevelLlmOverwrite(v)
		return nil
	case conversation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conversation.FieldLastModified:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastModified(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Conversation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversation.FieldAgentLevelLlmOverwrite) {
		fields = append(fields, conversation.FieldAgentLevelLlmOverwrite)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationMutation) ClearField(name string) error {
	switch name {
	case conversation.FieldAgentLevelLlmOverwrite:
		m.ClearAgentLevelLlmOverwrite()
		return nil
	}
	return fmt.Errorf("unknown Conversation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationMutation) ResetField(name string) error {
	switch name {
	case conversation.FieldUserClientID:
		m.ResetUserClientID()
		return nil
	case conversation.FieldTitle:
		m.ResetTitle()
		return nil
	case conversation.FieldModel:
		m.ResetModel()
		return nil
	case conversation.FieldAgentLevelLlmOverwrite:
		m.ResetAgentLevelLlmOverwrite()
		return nil
	case conversation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conversation.FieldLastModified:
		m.ResetLastModified()
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.messages != nil {
		edges = append(edges, conversation.EdgeMessages)
	}
	if m.memories != nil {
		edges = append(edges, conversation.EdgeMemories)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case conversation.EdgeMemories:
		ids := make([]ent.Value, 0, len(m.memories))
		for id := range m.memories {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmessages != nil {
		edges = append(edges, conversation.EdgeMessages)
	}
	if m.removedmemories != nil {
		edges = append(edges, conversation.EdgeMemories)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case conversation.EdgeMemories:
		ids := make([]ent.Value, 0, len(m.removedmemories))
		for id := range m.removedmemories {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmessages {
		edges = append(edges, conversation.EdgeMessages)
	}
	if m.clearedmemories {
		edges = append(edges, conversation.EdgeMemories)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationMutation) EdgeCleared(name string) bool {
	switch name {
	case conversation.EdgeMessages:
		return m.clearedmessages
	case conversation.EdgeMemories:
		return m.clearedmemories
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Conversation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationMutation) ResetEdge(name string) error {
	switch name {
	case conversation.EdgeMessages:
		m.ResetMessages()
		return nil
	case conversation.EdgeMemories:
		m.ResetMemories()
		return nil
	}
	return fmt.Errorf("unknown Conversation edge %s", name)
}

// MemoryRecordMutation represents an operation that mutates the MemoryRecord nodes in the graph.
type MemoryRecordMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	memory_text           *string
	start_sequence        *int
	addstart_sequence     *int
	end_sequence          *int
	addend_sequence       *int
	base_memory_id        *int
	addbase_memory_id     *int
	status                *memoryrecord.Status
	created_at            *time.Time
	generation_time_ms    *int64
	addgeneration_time_ms *int64
	clearedFields         map[string]struct{}
	conversation          *string
	clearedconversation   bool
	done                  bool
	oldValue              func(context.Context) (*MemoryRecord, error)
	predicates            []predicate.MemoryRecord
}

var _ ent.Mutation = (*MemoryRecordMutation)(nil)

// memoryrecordOption allows management of the mutation configuration using functional options.
type memoryrecordOption func(*MemoryRecordMutation)

// newMemoryRecordMutation creates new mutation for the MemoryRecord entity.
func newMemoryRecordMutation(c config, op Op, opts ...memoryrecordOption) *MemoryRecordMutation {
	m := &MemoryRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeMemoryRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMemoryRecordID sets the ID field of the mutation.
func withMemoryRecordID(id int) memoryrecordOption {
	return func(m *MemoryRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *MemoryRecord
		)
		m.oldValue = func(ctx context.Context) (*MemoryRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MemoryRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMemoryRecord sets the old MemoryRecord of the mutation.
func withMemoryRecord(node *MemoryRecord) memoryrecordOption {
	return func(m *MemoryRecordMutation) {
		m.oldValue = func(context.Context) (*MemoryRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MemoryRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MemoryRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MemoryRecord entities.
func (m *MemoryRecordMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MemoryRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MemoryRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MemoryRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *MemoryRecordMutation) SetConversationID(s string) {
	m.conversation = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *MemoryRecordMutation) ConversationID() (r string, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *MemoryRecordMutation) ResetConversationID() {
	m.conversation = nil
}

// SetMemoryText sets the "memory_text" field.
func (m *MemoryRecordMutation) SetMemoryText(s string) {
	m.memory_text = &s
}

// MemoryText returns the value of the "memory_text" field in the mutation.
func (m *MemoryRecordMutation) MemoryText() (r string, exists bool) {
	v := m.memory_text
	if v == nil {
		return
	}
	return *v, true
}

// OldMemoryText returns the old "memory_text" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldMemoryText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemoryText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemoryText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemoryText: %w", err)
	}
	return oldValue.MemoryText, nil
}

// ResetMemoryText resets all changes to the "memory_text" field.
func (m *MemoryRecordMutation) ResetMemoryText() {
	m.memory_text = nil
}

// SetStartSequence sets the "start_sequence" field.
func (m *MemoryRecordMutation) SetStartSequence(i int) {
	m.start_sequence = &i
	m.addstart_sequence = nil
}

// StartSequence returns the value of the "start_sequence" field in the mutation.
func (m *MemoryRecordMutation) StartSequence() (r int, exists bool) {
	v := m.start_sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldStartSequence returns the old "start_sequence" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldStartSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartSequence: %w", err)
	}
	return oldValue.StartSequence, nil
}

// AddStartSequence adds i to the "start_sequence" field.
func (m *MemoryRecordMutation) AddStartSequence(i int) {
	if m.addstart_sequence != nil {
		*m.addstart_sequence += i
	} else {
		m.addstart_sequence = &i
	}
}

// AddedStartSequence returns the value that was added to the "start_sequence" field in this mutation.
func (m *MemoryRecordMutation) AddedStartSequence() (r int, exists bool) {
	v := m.addstart_sequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartSequence resets all changes to the "start_sequence" field.
func (m *MemoryRecordMutation) ResetStartSequence() {
	m.start_sequence = nil
	m.addstart_sequence = nil
}

// SetEndSequence sets the "end_sequence" field.
func (m *MemoryRecordMutation) SetEndSequence(i int) {
	m.end_sequence = &i
	m.addend_sequence = nil
}

// EndSequence returns the value of the "end_sequence" field in the mutation.
func (m *MemoryRecordMutation) EndSequence() (r int, exists bool) {
	v := m.end_sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldEndSequence returns the old "end_sequence" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldEndSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndSequence: %w", err)
	}
	return oldValue.EndSequence, nil
}

// AddEndSequence adds i to the "end_sequence" field.
func (m *MemoryRecordMutation) AddEndSequence(i int) {
	if m.addend_sequence != nil {
		*m.addend_sequence += i
	} else {
		m.addend_sequence = &i
	}
}

// AddedEndSequence returns the value that was added to the "end_sequence" field in this mutation.
func (m *MemoryRecordMutation) AddedEndSequence() (r int, exists bool) {
	v := m.addend_sequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetEndSequence resets all changes to the "end_sequence" field.
func (m *MemoryRecordMutation) ResetEndSequence() {
	m.end_sequence = nil
	m.addend_sequence = nil
}

// SetBaseMemoryID sets the "base_memory_id" field.
func (m *MemoryRecordMutation) SetBaseMemoryID(i int) {
	m.base_memory_id = &i
	m.addbase_memory_id = nil
}

// BaseMemoryID returns the value of the "base_memory_id" field in the mutation.
func (m *MemoryRecordMutation) BaseMemoryID() (r int, exists bool) {
	v := m.base_memory_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseMemoryID returns the old "base_memory_id" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldBaseMemoryID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseMemoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseMemoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseMemoryID: %w", err)
	}
	return oldValue.BaseMemoryID, nil
}

// AddBaseMemoryID adds i to the "base_memory_id" field.
func (m *MemoryRecordMutation) AddBaseMemoryID(i int) {
	if m.addbase_memory_id != nil {
		*m.addbase_memory_id += i
	} else {
		m.addbase_memory_id = &i
	}
}

// AddedBaseMemoryID returns the value that was added to the "base_memory_id" field in this mutation.
func (m *MemoryRecordMutation) AddedBaseMemoryID() (r int, exists bool) {
	v := m.addbase_memory_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearBaseMemoryID clears the value of the "base_memory_id" field.
func (m *MemoryRecordMutation) ClearBaseMemoryID() {
	m.base_memory_id = nil
	m.addbase_memory_id = nil
	m.clearedFields[memoryrecord.FieldBaseMemoryID] = struct{}{}
}

// BaseMemoryIDCleared returns if the "base_memory_id" field was cleared in this mutation.
func (m *MemoryRecordMutation) BaseMemoryIDCleared() bool {
	_, ok := m.clearedFields[memoryrecord.FieldBaseMemoryID]
	return ok
}

// ResetBaseMemoryID resets all changes to the "base_memory_id" field.
func (m *MemoryRecordMutation) ResetBaseMemoryID() {
	m.base_memory_id = nil
	m.addbase_memory_id = nil
	delete(m.clearedFields, memoryrecord.FieldBaseMemoryID)
}

// SetStatus sets the "status" field.
func (m *MemoryRecordMutation) SetStatus(value memoryrecord.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MemoryRecordMutation) Status() (r memoryrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldStatus(ctx context.Context) (v memoryrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MemoryRecordMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MemoryRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MemoryRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MemoryRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetGenerationTimeMs sets the "generation_time_ms" field.
func (m *MemoryRecordMutation) SetGenerationTimeMs(i int64) {
	m.generation_time_ms = &i
	m.addgeneration_time_ms = nil
}

// GenerationTimeMs returns the value of the "generation_time_ms" field in the mutation.
func (m *MemoryRecordMutation) GenerationTimeMs() (r int64, exists bool) {
	v := m.generation_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldGenerationTimeMs returns the old "generation_time_ms" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldGenerationTimeMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenerationTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenerationTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenerationTimeMs: %w", err)
	}
	return oldValue.GenerationTimeMs, nil
}

// AddGenerationTimeMs adds i to the "generation_time_ms" field.
func (m *MemoryRecordMutation) AddGenerationTimeMs(i int64) {
	if m.addgeneration_time_ms != nil {
		*m.addgeneration_time_ms += i
	} else {
		m.addgeneration_time_ms = &i
	}
}

// AddedGenerationTimeMs returns the value that was added to the "generation_time_ms" field in this mutation.
func (m *MemoryRecordMutation) AddedGenerationTimeMs() (r int64, exists bool) {
	v := m.addgeneration_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearGenerationTimeMs clears the value of the "generation_time_ms" field.
func (m *MemoryRecordMutation) ClearGenerationTimeMs() {
	m.generation_time_ms = nil
	m.addgeneration_time_ms = nil
	m.clearedFields[memoryrecord.FieldGenerationTimeMs] = struct{}{}
}

// GenerationTimeMsCleared returns if the "generation_time_ms" field was cleared in this mutation.
func (m *MemoryRecordMutation) GenerationTimeMsCleared() bool {
	_, ok := m.clearedFields[memoryrecord.FieldGenerationTimeMs]
	return ok
}

// ResetGenerationTimeMs resets all changes to the "generation_time_ms" field.
func (m *MemoryRecordMutation) ResetGenerationTimeMs() {
	m.generation_time_ms = nil
	m.addgeneration_time_ms = nil
	delete(m.clearedFields, memoryrecord.FieldGenerationTimeMs)
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *MemoryRecordMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[memoryrecord.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *MemoryRecordMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *MemoryRecordMutation) ConversationIDs() (ids []string) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *MemoryRecordMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// Where appends a list predicates to the MemoryRecordMutation builder.
func (m *MemoryRecordMutation) Where(ps ...predicate.MemoryRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MemoryRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MemoryRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MemoryRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MemoryRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MemoryRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MemoryRecord).
func (m *MemoryRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MemoryRecordMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.conversation != nil {
		fields = append(fields, memoryrecord.FieldConversationID)
	}
	if m.memory_text != nil {
		fields = append(fields, memoryrecord.FieldMemoryText)
	}
	if m.start_sequence != nil {
		fields = append(fields, memoryrecord.FieldStartSequence)
	}
	if m.end_sequence != nil {
		fields = append(fields, memoryrecord.FieldEndSequence)
	}
	if m.base_memory_id != nil {
		fields = append(fields, memoryrecord.FieldBaseMemoryID)
	}
	if m.status != nil {
		fields = append(fields, memoryrecord.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, memoryrecord.FieldCreatedAt)
	}
	if m.generation_time_ms != nil {
		fields = append(fields, memoryrecord.FieldGenerationTimeMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MemoryRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case memoryrecord.FieldConversationID:
		return m.ConversationID()
	case memoryrecord.FieldMemoryText:
		return m.MemoryText()
	case memoryrecord.FieldStartSequence:
		return m.StartSequence()
	case memoryrecord.FieldEndSequence:
		return m.EndSequence()
	case memoryrecord.FieldBaseMemoryID:
		return m.BaseMemoryID()
	case memoryrecord.FieldStatus:
		return m.Status()
	case memoryrecord.FieldCreatedAt:
		return m.CreatedAt()
	case memoryrecord.FieldGenerationTimeMs:
		return m.GenerationTimeMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MemoryRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case memoryrecord.FieldConversationID:
		return m.OldConversationID(ctx)
	case memoryrecord.FieldMemoryText:
		return m.OldMemoryText(ctx)
	case memoryrecord.FieldStartSequence:
		return m.OldStartSequence(ctx)
	case memoryrecord.FieldEndSequence:
		return m.OldEndSequence(ctx)
	case memoryrecord.FieldBaseMemoryID:
		return m.OldBaseMemoryID(ctx)
	case memoryrecord.FieldStatus:
		return m.OldStatus(ctx)
	case memoryrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case memoryrecord.FieldGenerationTimeMs:
		return m.OldGenerationTimeMs(ctx)
	}
	return nil, fmt.Errorf("unknown MemoryRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case memoryrecord.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case memoryrecord.FieldMemoryText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemoryText(v)
		return nil
	case memoryrecord.FieldStartSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartSequence(v)
		return nil
	case memoryrecord.FieldEndSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndSequence(v)
		return nil
	case memoryrecord.FieldBaseMemoryID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseMemoryID(v)
		return nil
	case memoryrecord.FieldStatus:
		v, ok := value.(memoryrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case memoryrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case memoryrecord.FieldGenerationTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenerationTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MemoryRecordMutation) AddedFields() []string {
	var fields []string
	if m.addstart_sequence != nil {
		fields = append(fields, memoryrecord.FieldStartSequence)
	}
	if m.addend_sequence != nil {
		fields = append(fields, memoryrecord.FieldEndSequence)
	}
	if m.addbase_memory_id != nil {
		fields = append(fields, memoryrecord.FieldBaseMemoryID)
	}
	if m.addgeneration_time_ms != nil {
		fields = append(fields, memoryrecord.FieldGenerationTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MemoryRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case memoryrecord.FieldStartSequence:
		return m.AddedStartSequence()
	case memoryrecord.FieldEndSequence:
		return m.AddedEndSequence()
	case memoryrecord.FieldBaseMemoryID:
		return m.AddedBaseMemoryID()
	case memoryrecord.FieldGenerationTimeMs:
		return m.AddedGenerationTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case memoryrecord.FieldStartSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartSequence(v)
		return nil
	case memoryrecord.FieldEndSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndSequence(v)
		return nil
	case memoryrecord.FieldBaseMemoryID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBaseMemoryID(v)
		return nil
	case memoryrecord.FieldGenerationTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGenerationTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MemoryRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(memoryrecord.FieldBaseMemoryID) {
		fields = append(fields, memoryrecord.FieldBaseMemoryID)
	}
	if m.FieldCleared(memoryrecord.FieldGenerationTimeMs) {
		fields = append(fields, memoryrecord.FieldGenerationTimeMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MemoryRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MemoryRecordMutation) ClearField(name string) error {
	switch name {
	case memoryrecord.FieldBaseMemoryID:
		m.ClearBaseMemoryID()
		return nil
	case memoryrecord.FieldGenerationTimeMs:
		m.ClearGenerationTimeMs()
		return nil
	}
	return fmt.Errorf("unknown MemoryRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MemoryRecordMutation) ResetField(name string) error {
	switch name {
	case memoryrecord.FieldConversationID:
		m.ResetConversationID()
		return nil
	case memoryrecord.FieldMemoryText:
		m.ResetMemoryText()
		return nil
	case memoryrecord.FieldStartSequence:
		m.ResetStartSequence()
		return nil
	case memoryrecord.FieldEndSequence:
		m.ResetEndSequence()
		return nil
	case memoryrecord.FieldBaseMemoryID:
		m.ResetBaseMemoryID()
		return nil
	case memoryrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case memoryrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case memoryrecord.FieldGenerationTimeMs:
		m.ResetGenerationTimeMs()
		return nil
	}
	return fmt.Errorf("unknown MemoryRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MemoryRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conversation != nil {
		edges = append(edges, memoryrecord.EdgeConversation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MemoryRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case memoryrecord.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MemoryRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MemoryRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MemoryRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconversation {
		edges = append(edges, memoryrecord.EdgeConversation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MemoryRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case memoryrecord.EdgeConversation:
		return m.clearedconversation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MemoryRecordMutation) ClearEdge(name string) error {
	switch name {
	case memoryrecord.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown MemoryRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MemoryRecordMutation) ResetEdge(name string) error {
	switch name {
	case memoryrecord.EdgeConversation:
		m.ResetConversation()
		return nil
	}
	return fmt.Errorf("unknown MemoryRecord edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	sequence_number     *int
	addsequence_number  *int
	role                *message.Role
	content             *string
	timestamp           *time.Time
	is_satisfy          *bool
	comment             *string
	clearedFields       map[string]struct{}
	conversation        *string
	clearedconversation bool
	done                bool
	oldValue            func(context.Context) (*Message, error)
	predicates          []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *MessageMutation) SetConversationID(s string) {
	m.conversation = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *MessageMutation) ConversationID() (r string, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *MessageMutation) ResetConversationID() {
	m.conversation = nil
}

// SetSequenceNumber sets the "sequence_number" field.
func (m *MessageMutation) SetSequenceNumber(i int) {
	m.sequence_number = &i
	m.addsequence_number = nil
}

// SequenceNumber returns the value of the "sequence_number" field in the mutation.
func (m *MessageMutation) SequenceNumber() (r int, exists bool) {
	v := m.sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNumber returns the old "sequence_number" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSequenceNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNumber: %w", err)
	}
	return oldValue.SequenceNumber, nil
}

// AddSequenceNumber adds i to the "sequence_number" field.
func (m *MessageMutation) AddSequenceNumber(i int) {
	if m.addsequence_number != nil {
		*m.addsequence_number += i
	} else {
		m.addsequence_number = &i
	}
}

// AddedSequenceNumber returns the value that was added to the "sequence_number" field in this mutation.
func (m *MessageMutation) AddedSequenceNumber() (r int, exists bool) {
	v := m.addsequence_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNumber resets all changes to the "sequence_number" field.
func (m *MessageMutation) ResetSequenceNumber() {
	m.sequence_number = nil
	m.addsequence_number = nil
}

// SetRole sets the "role" field.
func (m *MessageMutation) SetRole(value message.Role) {
	m.role = &value
}

// Role returns the value of the "role" field in the mutation.
func (m *MessageMutation) Role() (r message.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRole(ctx context.Context) (v message.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *MessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *MessageMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *MessageMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *MessageMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetIsSatisfy sets the "is_satisfy" field.
func (m *MessageMutation) SetIsSatisfy(b bool) {
	m.is_satisfy = &b
}

// IsSatisfy returns the value of the "is_satisfy" field in the mutation.
func (m *MessageMutation) IsSatisfy() (r bool, exists bool) {
	v := m.is_satisfy
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSatisfy returns the old "is_satisfy" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldIsSatisfy(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSatisfy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSatisfy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSatisfy: %w", err)
	}
	return oldValue.IsSatisfy, nil
}

// ClearIsSatisfy clears the value of the "is_satisfy" field.
func (m *MessageMutation) ClearIsSatisfy() {
	m.is_satisfy = nil
	m.clearedFields[message.FieldIsSatisfy] = struct{}{}
}

// IsSatisfyCleared returns if the "is_satisfy" field was cleared in this mutation.
func (m *MessageMutation) IsSatisfyCleared() bool {
	_, ok := m.clearedFields[message.FieldIsSatisfy]
	return ok
}

// ResetIsSatisfy resets all changes to the "is_satisfy" field.
func (m *MessageMutation) ResetIsSatisfy() {
	m.is_satisfy = nil
	delete(m.clearedFields, message.FieldIsSatisfy)
}

// SetComment sets the "comment" field.
func (m *MessageMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *MessageMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldComment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ClearComment clears the value of the "comment" field.
func (m *MessageMutation) ClearComment() {
	m.comment = nil
	m.clearedFields[message.FieldComment] = struct{}{}
}

// CommentCleared returns if the "comment" field was cleared in this mutation.
func (m *MessageMutation) CommentCleared() bool {
	_, ok := m.clearedFields[message.FieldComment]
	return ok
}

// ResetComment resets all changes to the "comment" field.
func (m *MessageMutation) ResetComment() {
	m.comment = nil
	delete(m.clearedFields, message.FieldComment)
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *MessageMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[message.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *MessageMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) ConversationIDs() (ids []string) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *MessageMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.conversation != nil {
		fields = append(fields, message.FieldConversationID)
	}
	if m.sequence_number != nil {
		fields = append(fields, message.FieldSequenceNumber)
	}
	if m.role != nil {
		fields = append(fields, message.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.timestamp != nil {
		fields = append(fields, message.FieldTimestamp)
	}
	if m.is_satisfy != nil {
		fields = append(fields, message.FieldIsSatisfy)
	}
	if m.comment != nil {
		fields = append(fields, message.FieldComment)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldConversationID:
		return m.ConversationID()
	case message.FieldSequenceNumber:
		return m.SequenceNumber()
	case message.FieldRole:
		return m.Role()
	case message.FieldContent:
		return m.Content()
	case message.FieldTimestamp:
		return m.Timestamp()
	case message.FieldIsSatisfy:
		return m.IsSatisfy()
	case message.FieldComment:
		return m.Comment()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldConversationID:
		return m.OldConversationID(ctx)
	case message.FieldSequenceNumber:
		return m.OldSequenceNumber(ctx)
	case message.FieldRole:
		return m.OldRole(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case message.FieldIsSatisfy:
		return m.OldIsSatisfy(ctx)
	case message.FieldComment:
		return m.OldComment(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case message.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNumber(v)
		return nil
	case message.FieldRole:
		v, ok := value.(message.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case message.FieldIsSatisfy:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSatisfy(v)
		return nil
	case message.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_number != nil {
		fields = append(fields, message.FieldSequenceNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case message.FieldSequenceNumber:
		return m.AddedSequenceNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case message.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldIsSatisfy) {
		fields = append(fields, message.FieldIsSatisfy)
	}
	if m.FieldCleared(message.FieldComment) {
		fields = append(fields, message.FieldComment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldIsSatisfy:
		m.ClearIsSatisfy()
		return nil
	case message.FieldComment:
		m.ClearComment()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldConversationID:
		m.ResetConversationID()
		return nil
	case message.FieldSequenceNumber:
		m.ResetSequenceNumber()
		return nil
	case message.FieldRole:
		m.ResetRole()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case message.FieldIsSatisfy:
		m.ResetIsSatisfy()
		return nil
	case message.FieldComment:
		m.ResetComment()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conversation != nil {
		edges = append(edges, message.EdgeConversation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconversation {
		edges = append(edges, message.EdgeConversation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeConversation:
		return m.clearedconversation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeConversation:
		m.ResetConversation()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}
