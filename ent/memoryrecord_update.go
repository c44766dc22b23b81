// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stanley-ops/stanley/ent/memoryrecord"
	"github.com/stanley-ops/stanley/ent/predicate"
)

// MemoryRecordUpdate is the builder for updating MemoryRecord entities.
type MemoryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MemoryRecordMutation
}

// Where appends a list predicates to the MemoryRecordUpdate builder.
func (_u *MemoryRecordUpdate) Where(ps ...predicate.MemoryRecord) *MemoryRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMemoryText sets the "memory_text" field.
func (_u *MemoryRecordUpdate) SetMemoryText(v string) *MemoryRecordUpdate {
	_u.mutation.SetMemoryText(v)
	return _u
}

// SetNillableMemoryText sets the "memory_text" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableMemoryText(v *string) *MemoryRecordUpdate {
	if v != nil {
		_u.SetMemoryText(*v)
	}
	return _u
}

// SetStartSequence sets the "start_sequence" field.
func (_u *MemoryRecordUpdate) SetStartSequence(v int) *MemoryRecordUpdate {
	_u.mutation.ResetStartSequence()
	_u.mutation.SetStartSequence(v)
	return _u
}

// SetNillableStartSequence sets the "start_sequence" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableStartSequence(v *int) *MemoryRecordUpdate {
	if v != nil {
		_u.SetStartSequence(*v)
	}
	return _u
}

// AddStartSequence adds value to the "start_sequence" field.
func (_u *MemoryRecordUpdate) AddStartSequence(v int) *MemoryRecordUpdate {
	_u.mutation.AddStartSequence(v)
	return _u
}

// SetEndSequence sets the "end_sequence" field.
func (_u *MemoryRecordUpdate) SetEndSequence(v int) *MemoryRecordUpdate {
	_u.mutation.ResetEndSequence()
	_u.mutation.SetEndSequence(v)
	return _u
}

// SetNillableEndSequence sets the "end_sequence" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableEndSequence(v *int) *MemoryRecordUpdate {
	if v != nil {
		_u.SetEndSequence(*v)
	}
	return _u
}

// AddEndSequence adds value to the "end_sequence" field.
func (_u *MemoryRecordUpdate) AddEndSequence(v int) *MemoryRecordUpdate {
	_u.mutation.AddEndSequence(v)
	return _u
}

// SetBaseMemoryID sets the "base_memory_id" field.
func (_u *MemoryRecordUpdate) SetBaseMemoryID(v int) *MemoryRecordUpdate {
	_u.mutation.ResetBaseMemoryID()
	_u.mutation.SetBaseMemoryID(v)
	return _u
}

// SetNillableBaseMemoryID sets the "base_memory_id" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableBaseMemoryID(v *int) *MemoryRecordUpdate {
	if v != nil {
		_u.SetBaseMemoryID(*v)
	}
	return _u
}

// AddBaseMemoryID adds value to the "base_memory_id" field.
func (_u *MemoryRecordUpdate) AddBaseMemoryID(v int) *MemoryRecordUpdate {
	_u.mutation.AddBaseMemoryID(v)
	return _u
}

// ClearBaseMemoryID clears the value of the "base_memory_id" field.
func (_u *MemoryRecordUpdate) ClearBaseMemoryID() *MemoryRecordUpdate {
	_u.mutation.ClearBaseMemoryID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *MemoryRecordUpdate) SetStatus(v memoryrecord.Status) *MemoryRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableStatus(v *memoryrecord.Status) *MemoryRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGenerationTimeMs sets the "generation_time_ms" field.
func (_u *MemoryRecordUpdate) SetGenerationTimeMs(v int64) *MemoryRecordUpdate {
	_u.mutation.ResetGenerationTimeMs()
	_u.mutation.SetGenerationTimeMs(v)
	return _u
}

// SetNillableGenerationTimeMs sets the "generation_time_ms" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableGenerationTimeMs(v *int64) *MemoryRecordUpdate {
	if v != nil {
		_u.SetGenerationTimeMs(*v)
	}
	return _u
}

// AddGenerationTimeMs adds value to the "generation_time_ms" field.
func (_u *MemoryRecordUpdate) AddGenerationTimeMs(v int64) *MemoryRecordUpdate {
	_u.mutation.AddGenerationTimeMs(v)
	return _u
}

// ClearGenerationTimeMs clears the value of the "generation_time_ms" field.
func (_u *MemoryRecordUpdate) ClearGenerationTimeMs() *MemoryRecordUpdate {
	_u.mutation.ClearGenerationTimeMs()
	return _u
}

// Mutation returns the MemoryRecordMutation object of the builder.
func (_u *MemoryRecordUpdate) Mutation() *MemoryRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MemoryRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MemoryRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryRecordUpdate) check() error {
	if v, ok := _u.mutation.StartSequence(); ok {
		if err := memoryrecord.StartSequenceValidator(v); err != nil {
			return &ValidationError{Name: "start_sequence", err: fmt.Errorf(`ent: validator failed for field "MemoryRecord.start_sequence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndSequence(); ok {
		if err := memoryrecord.EndSequenceValidator(v); err != nil {
			return &ValidationError{Name: "end_sequence", err: fmt.Errorf(`ent: validator failed for field "MemoryRecord.end_sequence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := memoryrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MemoryRecord.status": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MemoryRecord.conversation"`)
	}
	return nil
}

func (_u *MemoryRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memoryrecord.Table, memoryrecord.Columns, sqlgraph.NewFieldSpec(memoryrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MemoryText(); ok {
		_spec.SetField(memoryrecord.FieldMemoryText, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartSequence(); ok {
		_spec.SetField(memoryrecord.FieldStartSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartSequence(); ok {
		_spec.AddField(memoryrecord.FieldStartSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndSequence(); ok {
		_spec.SetField(memoryrecord.FieldEndSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndSequence(); ok {
		_spec.AddField(memoryrecord.FieldEndSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BaseMemoryID(); ok {
		_spec.SetField(memoryrecord.FieldBaseMemoryID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBaseMemoryID(); ok {
		_spec.AddField(memoryrecord.FieldBaseMemoryID, field.TypeInt, value)
	}
	if _u.mutation.BaseMemoryIDCleared() {
		_spec.ClearField(memoryrecord.FieldBaseMemoryID, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(memoryrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GenerationTimeMs(); ok {
		_spec.SetField(memoryrecord.FieldGenerationTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedGenerationTimeMs(); ok {
		_spec.AddField(memoryrecord.FieldGenerationTimeMs, field.TypeInt64, value)
	}
	if _u.mutation.GenerationTimeMsCleared() {
		_spec.ClearField(memoryrecord.FieldGenerationTimeMs, field.TypeInt64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MemoryRecordUpdateOne is the builder for updating a single MemoryRecord entity.
type MemoryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MemoryRecordMutation
}

// SetMemoryText sets the "memory_text" field.
func (_u *MemoryRecordUpdateOne) SetMemoryText(v string) *MemoryRecordUpdateOne {
	_u.mutation.SetMemoryText(v)
	return _u
}

// SetNillableMemoryText sets the "memory_text" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableMemoryText(v *string) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetMemoryText(*v)
	}
	return _u
}

// SetStartSequence sets the "start_sequence" field.
func (_u *MemoryRecordUpdateOne) SetStartSequence(v int) *MemoryRecordUpdateOne {
	_u.mutation.ResetStartSequence()
	_u.mutation.SetStartSequence(v)
	return _u
}

// SetNillableStartSequence sets the "start_sequence" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableStartSequence(v *int) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetStartSequence(*v)
	}
	return _u
}

// AddStartSequence adds value to the "start_sequence" field.
func (_u *MemoryRecordUpdateOne) AddStartSequence(v int) *MemoryRecordUpdateOne {
	_u.mutation.AddStartSequence(v)
	return _u
}

// SetEndSequence sets the "end_sequence" field.
func (_u *MemoryRecordUpdateOne) SetEndSequence(v int) *MemoryRecordUpdateOne {
	_u.mutation.ResetEndSequence()
	_u.mutation.SetEndSequence(v)
	return _u
}

// SetNillableEndSequence sets the "end_sequence" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableEndSequence(v *int) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetEndSequence(*v)
	}
	return _u
}

// AddEndSequence adds value to the "end_sequence" field.
func (_u *MemoryRecordUpdateOne) AddEndSequence(v int) *MemoryRecordUpdateOne {
	_u.mutation.AddEndSequence(v)
	return _u
}

// SetBaseMemoryID sets the "base_memory_id" field.
func (_u *MemoryRecordUpdateOne) SetBaseMemoryID(v int) *MemoryRecordUpdateOne {
	_u.mutation.ResetBaseMemoryID()
	_u.mutation.SetBaseMemoryID(v)
	return _u
}

// SetNillableBaseMemoryID sets the "base_memory_id" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableBaseMemoryID(v *int) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetBaseMemoryID(*v)
	}
	return _u
}

// AddBaseMemoryID adds value to the "base_memory_id" field.
func (_u *MemoryRecordUpdateOne) AddBaseMemoryID(v int) *MemoryRecordUpdateOne {
	_u.mutation.AddBaseMemoryID(v)
	return _u
}

// ClearBaseMemoryID clears the value of the "base_memory_id" field.
func (_u *MemoryRecordUpdateOne) ClearBaseMemoryID() *MemoryRecordUpdateOne {
	_u.mutation.ClearBaseMemoryID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *MemoryRecordUpdateOne) SetStatus(v memoryrecord.Status) *MemoryRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableStatus(v *memoryrecord.Status) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGenerationTimeMs sets the "generation_time_ms" field.
func (_u *MemoryRecordUpdateOne) SetGenerationTimeMs(v int64) *MemoryRecordUpdateOne {
	_u.mutation.ResetGenerationTimeMs()
	_u.mutation.SetGenerationTimeMs(v)
	return _u
}

// SetNillableGenerationTimeMs sets the "generation_time_ms" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableGenerationTimeMs(v *int64) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetGenerationTimeMs(*v)
	}
	return _u
}

// AddGenerationTimeMs adds value to the "generation_time_ms" field.
func (_u *MemoryRecordUpdateOne) AddGenerationTimeMs(v int64) *MemoryRecordUpdateOne {
	_u.mutation.AddGenerationTimeMs(v)
	return _u
}

// ClearGenerationTimeMs clears the value of the "generation_time_ms" field.
func (_u *MemoryRecordUpdateOne) ClearGenerationTimeMs() *MemoryRecordUpdateOne {
	_u.mutation.ClearGenerationTimeMs()
	return _u
}

// Mutation returns the MemoryRecordMutation object of the builder.
func (_u *MemoryRecordUpdateOne) Mutation() *MemoryRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the MemoryRecordUpdate builder.
func (_u *MemoryRecordUpdateOne) Where(ps ...predicate.MemoryRecord) *MemoryRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MemoryRecordUpdateOne) Select(field string, fields ...string) *MemoryRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MemoryRecord entity.
func (_u *MemoryRecordUpdateOne) Save(ctx context.Context) (*MemoryRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryRecordUpdateOne) SaveX(ctx context.Context) *MemoryRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MemoryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryRecordUpdateOne) check() error {
	if v, ok := _u.mutation.StartSequence(); ok {
		if err := memoryrecord.StartSequenceValidator(v); err != nil {
			return &ValidationError{Name: "start_sequence", err: fmt.Errorf(`ent: validator failed for field "MemoryRecord.start_sequence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndSequence(); ok {
		if err := memoryrecord.EndSequenceValidator(v); err != nil {
			return &ValidationError{Name: "end_sequence", err: fmt.Errorf(`ent: validator failed for field "MemoryRecord.end_sequence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := memoryrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MemoryRecord.status": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MemoryRecord.conversation"`)
	}
	return nil
}

func (_u *MemoryRecordUpdateOne) sqlSave(ctx context.Context) (_node *MemoryRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memoryrecord.Table, memoryrecord.Columns, sqlgraph.NewFieldSpec(memoryrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MemoryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, memoryrecord.FieldID)
		for _, f := range fields {
			if !memoryrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != memoryrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MemoryText(); ok {
		_spec.SetField(memoryrecord.FieldMemoryText, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartSequence(); ok {
		_spec.SetField(memoryrecord.FieldStartSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartSequence(); ok {
		_spec.AddField(memoryrecord.FieldStartSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndSequence(); ok {
		_spec.SetField(memoryrecord.FieldEndSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndSequence(); ok {
		_spec.AddField(memoryrecord.FieldEndSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BaseMemoryID(); ok {
		_spec.SetField(memoryrecord.FieldBaseMemoryID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBaseMemoryID(); ok {
		_spec.AddField(memoryrecord.FieldBaseMemoryID, field.TypeInt, value)
	}
	if _u.mutation.BaseMemoryIDCleared() {
		_spec.ClearField(memoryrecord.FieldBaseMemoryID, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(memoryrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GenerationTimeMs(); ok {
		_spec.SetField(memoryrecord.FieldGenerationTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedGenerationTimeMs(); ok {
		_spec.AddField(memoryrecord.FieldGenerationTimeMs, field.TypeInt64, value)
	}
	if _u.mutation.GenerationTimeMsCleared() {
		_spec.ClearField(memoryrecord.FieldGenerationTimeMs, field.TypeInt64)
	}
	_node = &MemoryRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
