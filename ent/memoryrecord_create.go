// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stanley-ops/stanley/ent/conversation"
	"github.com/stanley-ops/stanley/ent/memoryrecord"
)

// MemoryRecordCreate is the builder for creating a MemoryRecord entity.
type MemoryRecordCreate struct {
	config
	mutation *MemoryRecordMutation
	hooks    []Hook
}

// SetConversationID sets the "conversation_id" field.
func (_c *MemoryRecordCreate) SetConversationID(v string) *MemoryRecordCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetMemoryText sets the "memory_text" field.
func (_c *MemoryRecordCreate) SetMemoryText(v string) *MemoryRecordCreate {
	_c.mutation.SetMemoryText(v)
	return _c
}

// SetNillableMemoryText sets the "memory_text" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableMemoryText(v *string) *MemoryRecordCreate {
	if v != nil {
		_c.SetMemoryText(*v)
	}
	return _c
}

// SetStartSequence sets the "start_sequence" field.
func (_c *MemoryRecordCreate) SetStartSequence(v int) *MemoryRecordCreate {
	_c.mutation.SetStartSequence(v)
	return _c
}

// SetEndSequence sets the "end_sequence" field.
func (_c *MemoryRecordCreate) SetEndSequence(v int) *MemoryRecordCreate {
	_c.mutation.SetEndSequence(v)
	return _c
}

// SetBaseMemoryID sets the "base_memory_id" field.
func (_c *MemoryRecordCreate) SetBaseMemoryID(v int) *MemoryRecordCreate {
	_c.mutation.SetBaseMemoryID(v)
	return _c
}

// SetNillableBaseMemoryID sets the "base_memory_id" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableBaseMemoryID(v *int) *MemoryRecordCreate {
	if v != nil {
		_c.SetBaseMemoryID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *MemoryRecordCreate) SetStatus(v memoryrecord.Status) *MemoryRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableStatus(v *memoryrecord.Status) *MemoryRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MemoryRecordCreate) SetCreatedAt(v time.Time) *MemoryRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableCreatedAt(v *time.Time) *MemoryRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetGenerationTimeMs sets the "generation_time_ms" field.
func (_c *MemoryRecordCreate) SetGenerationTimeMs(v int64) *MemoryRecordCreate {
	_c.mutation.SetGenerationTimeMs(v)
	return _c
}

// SetNillableGenerationTimeMs sets the "generation_time_ms" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableGenerationTimeMs(v *int64) *MemoryRecordCreate {
	if v != nil {
		_c.SetGenerationTimeMs(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MemoryRecordCreate) SetID(v int) *MemoryRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_c *MemoryRecordCreate) SetConversation(v *Conversation) *MemoryRecordCreate {
	return _c.SetConversationID(v.ID)
}

// Mutation returns the MemoryRecordMutation object of the builder.
func (_c *MemoryRecordCreate) Mutation() *MemoryRecordMutation {
	return _c.mutation
}

// Save creates the MemoryRecord in the database.
func (_c *MemoryRecordCreate) Save(ctx context.Context) (*MemoryRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MemoryRecordCreate) SaveX(ctx context.Context) *MemoryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MemoryRecordCreate) defaults() {
	if _, ok := _c.mutation.MemoryText(); !ok {
		v := memoryrecord.DefaultMemoryText
		_c.mutation.SetMemoryText(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := memoryrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := memoryrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MemoryRecordCreate) check() error {
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "MemoryRecord.conversation_id"`)}
	}
	if _, ok := _c.mutation.MemoryText(); !ok {
		return &ValidationError{Name: "memory_text", err: errors.New(`ent: missing required field "MemoryRecord.memory_text"`)}
	}
	if _, ok := _c.mutation.StartSequence(); !ok {
		return &ValidationError{Name: "start_sequence", err: errors.New(`ent: missing required field "MemoryRecord.start_sequence"`)}
	}
	if v, ok := _c.mutation.StartSequence(); ok {
		if err := memoryrecord.StartSequenceValidator(v); err != nil {
			return &ValidationError{Name: "start_sequence", err: fmt.Errorf(`ent: validator failed for field "MemoryRecord.start_sequence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EndSequence(); !ok {
		return &ValidationError{Name: "end_sequence", err: errors.New(`ent: missing required field "MemoryRecord.end_sequence"`)}
	}
	if v, ok := _c.mutation.EndSequence(); ok {
		if err := memoryrecord.EndSequenceValidator(v); err != nil {
			return &ValidationError{Name: "end_sequence", err: fmt.Errorf(`ent: validator failed for field "MemoryRecord.end_sequence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MemoryRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := memoryrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MemoryRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MemoryRecord.created_at"`)}
	}
	if len(_c.mutation.ConversationIDs()) == 0 {
		return &ValidationError{Name: "conversation", err: errors.New(`ent: missing required edge "MemoryRecord.conversation"`)}
	}
	return nil
}

func (_c *MemoryRecordCreate) sqlSave(ctx context.Context) (*MemoryRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MemoryRecordCreate) createSpec() (*MemoryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MemoryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(memoryrecord.Table, sqlgraph.NewFieldSpec(memoryrecord.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.MemoryText(); ok {
		_spec.SetField(memoryrecord.FieldMemoryText, field.TypeString, value)
		_node.MemoryText = value
	}
	if value, ok := _c.mutation.StartSequence(); ok {
		_spec.SetField(memoryrecord.FieldStartSequence, field.TypeInt, value)
		_node.StartSequence = value
	}
	if value, ok := _c.mutation.EndSequence(); ok {
		_spec.SetField(memoryrecord.FieldEndSequence, field.TypeInt, value)
		_node.EndSequence = value
	}
	if value, ok := _c.mutation.BaseMemoryID(); ok {
		_spec.SetField(memoryrecord.FieldBaseMemoryID, field.TypeInt, value)
		_node.BaseMemoryID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(memoryrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(memoryrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.GenerationTimeMs(); ok {
		_spec.SetField(memoryrecord.FieldGenerationTimeMs, field.TypeInt64, value)
		_node.GenerationTimeMs = &value
	}
	if nodes := _c.mutation.ConversationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   memoryrecord.ConversationTable,
			Columns: []string{memoryrecord.ConversationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ConversationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MemoryRecordCreateBulk is the builder for creating many MemoryRecord entities in bulk.
type MemoryRecordCreateBulk struct {
	config
	err      error
	builders []*MemoryRecordCreate
}

// Save creates the MemoryRecord entities in the database.
func (_c *MemoryRecordCreateBulk) Save(ctx context.Context) ([]*MemoryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MemoryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MemoryRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MemoryRecordCreateBulk) SaveX(ctx context.Context) []*MemoryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
