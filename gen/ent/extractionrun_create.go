// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/kahawa-labs/beanmarket/gen/ent/extractionrun"
	"github.com/kahawa-labs/beanmarket/gen/ent/supplier"
)

// ExtractionRunCreate is the builder for creating a ExtractionRun entity.
type ExtractionRunCreate struct {
	config
	mutation *ExtractionRunMutation
	hooks    []Hook
}

// SetSupplierID sets the "supplier_id" field.
func (_c *ExtractionRunCreate) SetSupplierID(v uuid.UUID) *ExtractionRunCreate {
	_c.mutation.SetSupplierID(v)
	return _c
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_c *ExtractionRunCreate) SetNillableSupplierID(v *uuid.UUID) *ExtractionRunCreate {
	if v != nil {
		_c.SetSupplierID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractionRunCreate) SetStatus(v string) *ExtractionRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetLocale sets the "locale" field.
func (_c *ExtractionRunCreate) SetLocale(v string) *ExtractionRunCreate {
	_c.mutation.SetLocale(v)
	return _c
}

// SetNillableLocale sets the "locale" field if the given value is not nil.
func (_c *ExtractionRunCreate) SetNillableLocale(v *string) *ExtractionRunCreate {
	if v != nil {
		_c.SetLocale(*v)
	}
	return _c
}

// SetTextBytes sets the "text_bytes" field.
func (_c *ExtractionRunCreate) SetTextBytes(v int) *ExtractionRunCreate {
	_c.mutation.SetTextBytes(v)
	return _c
}

// SetNillableTextBytes sets the "text_bytes" field if the given value is not nil.
func (_c *ExtractionRunCreate) SetNillableTextBytes(v *int) *ExtractionRunCreate {
	if v != nil {
		_c.SetTextBytes(*v)
	}
	return _c
}

// SetChunksTotal sets the "chunks_total" field.
func (_c *ExtractionRunCreate) SetChunksTotal(v int) *ExtractionRunCreate {
	_c.mutation.SetChunksTotal(v)
	return _c
}

// SetNillableChunksTotal sets the "chunks_total" field if the given value is not nil.
func (_c *ExtractionRunCreate) SetNillableChunksTotal(v *int) *ExtractionRunCreate {
	if v != nil {
		_c.SetChunksTotal(*v)
	}
	return _c
}

// SetChunksProcessed sets the "chunks_processed" field.
func (_c *ExtractionRunCreate) SetChunksProcessed(v int) *ExtractionRunCreate {
	_c.mutation.SetChunksProcessed(v)
	return _c
}

// SetNillableChunksProcessed sets the "chunks_processed" field if the given value is not nil.
func (_c *ExtractionRunCreate) SetNillableChunksProcessed(v *int) *ExtractionRunCreate {
	if v != nil {
		_c.SetChunksProcessed(*v)
	}
	return _c
}

// SetChunksFailed sets the "chunks_failed" field.
func (_c *ExtractionRunCreate) SetChunksFailed(v int) *ExtractionRunCreate {
	_c.mutation.SetChunksFailed(v)
	return _c
}

// SetNillableChunksFailed sets the "chunks_failed" field if the given value is not nil.
func (_c *ExtractionRunCreate) SetNillableChunksFailed(v *int) *ExtractionRunCreate {
	if v != nil {
		_c.SetChunksFailed(*v)
	}
	return _c
}

// SetDuplicatesSkipped sets the "duplicates_skipped" field.
func (_c *ExtractionRunCreate) SetDuplicatesSkipped(v int) *ExtractionRunCreate {
	_c.mutation.SetDuplicatesSkipped(v)
	return _c
}

// SetNillableDuplicatesSkipped sets the "duplicates_skipped" field if the given value is not nil.
func (_c *ExtractionRunCreate) SetNillableDuplicatesSkipped(v *int) *ExtractionRunCreate {
	if v != nil {
		_c.SetDuplicatesSkipped(*v)
	}
	return _c
}

// SetListingsInserted sets the "listings_inserted" field.
func (_c *ExtractionRunCreate) SetListingsInserted(v int) *ExtractionRunCreate {
	_c.mutation.SetListingsInserted(v)
	return _c
}

// SetNillableListingsInserted sets the "listings_inserted" field if the given value is not nil.
func (_c *ExtractionRunCreate) SetNillableListingsInserted(v *int) *ExtractionRunCreate {
	if v != nil {
		_c.SetListingsInserted(*v)
	}
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *ExtractionRunCreate) SetErrorCode(v string) *ExtractionRunCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *ExtractionRunCreate) SetNillableErrorCode(v *string) *ExtractionRunCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExtractionRunCreate) SetErrorMessage(v string) *ExtractionRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExtractionRunCreate) SetNillableErrorMessage(v *string) *ExtractionRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *ExtractionRunCreate) SetModelName(v string) *ExtractionRunCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_c *ExtractionRunCreate) SetNillableModelName(v *string) *ExtractionRunCreate {
	if v != nil {
		_c.SetModelName(*v)
	}
	return _c
}

// SetModelParams sets the "model_params" field.
func (_c *ExtractionRunCreate) SetModelParams(v json.RawMessage) *ExtractionRunCreate {
	_c.mutation.SetModelParams(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExtractionRunCreate) SetStartedAt(v time.Time) *ExtractionRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExtractionRunCreate) SetNillableStartedAt(v *time.Time) *ExtractionRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ExtractionRunCreate) SetFinishedAt(v time.Time) *ExtractionRunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ExtractionRunCreate) SetNillableFinishedAt(v *time.Time) *ExtractionRunCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionRunCreate) SetID(v uuid.UUID) *ExtractionRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionRunCreate) SetNillableID(v *uuid.UUID) *ExtractionRunCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_c *ExtractionRunCreate) SetSupplier(v *Supplier) *ExtractionRunCreate {
	return _c.SetSupplierID(v.ID)
}

// Mutation returns the ExtractionRunMutation object of the builder.
func (_c *ExtractionRunCreate) Mutation() *ExtractionRunMutation {
	return _c.mutation
}

// Save creates the ExtractionRun in the database.
func (_c *ExtractionRunCreate) Save(ctx context.Context) (*ExtractionRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionRunCreate) SaveX(ctx context.Context) *ExtractionRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionRunCreate) defaults() {
	if _, ok := _c.mutation.TextBytes(); !ok {
		v := extractionrun.DefaultTextBytes
		_c.mutation.SetTextBytes(v)
	}
	if _, ok := _c.mutation.ChunksTotal(); !ok {
		v := extractionrun.DefaultChunksTotal
		_c.mutation.SetChunksTotal(v)
	}
	if _, ok := _c.mutation.ChunksProcessed(); !ok {
		v := extractionrun.DefaultChunksProcessed
		_c.mutation.SetChunksProcessed(v)
	}
	if _, ok := _c.mutation.ChunksFailed(); !ok {
		v := extractionrun.DefaultChunksFailed
		_c.mutation.SetChunksFailed(v)
	}
	if _, ok := _c.mutation.DuplicatesSkipped(); !ok {
		v := extractionrun.DefaultDuplicatesSkipped
		_c.mutation.SetDuplicatesSkipped(v)
	}
	if _, ok := _c.mutation.ListingsInserted(); !ok {
		v := extractionrun.DefaultListingsInserted
		_c.mutation.SetListingsInserted(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := extractionrun.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionrun.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionRunCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExtractionRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := extractionrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TextBytes(); !ok {
		return &ValidationError{Name: "text_bytes", err: errors.New(`ent: missing required field "ExtractionRun.text_bytes"`)}
	}
	if _, ok := _c.mutation.ChunksTotal(); !ok {
		return &ValidationError{Name: "chunks_total", err: errors.New(`ent: missing required field "ExtractionRun.chunks_total"`)}
	}
	if _, ok := _c.mutation.ChunksProcessed(); !ok {
		return &ValidationError{Name: "chunks_processed", err: errors.New(`ent: missing required field "ExtractionRun.chunks_processed"`)}
	}
	if _, ok := _c.mutation.ChunksFailed(); !ok {
		return &ValidationError{Name: "chunks_failed", err: errors.New(`ent: missing required field "ExtractionRun.chunks_failed"`)}
	}
	if _, ok := _c.mutation.DuplicatesSkipped(); !ok {
		return &ValidationError{Name: "duplicates_skipped", err: errors.New(`ent: missing required field "ExtractionRun.duplicates_skipped"`)}
	}
	if _, ok := _c.mutation.ListingsInserted(); !ok {
		return &ValidationError{Name: "listings_inserted", err: errors.New(`ent: missing required field "ExtractionRun.listings_inserted"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ExtractionRun.started_at"`)}
	}
	return nil
}

func (_c *ExtractionRunCreate) sqlSave(ctx context.Context) (*ExtractionRun, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractionRunCreate) createSpec() (*ExtractionRun, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionrun.Table, sqlgraph.NewFieldSpec(extractionrun.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extractionrun.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Locale(); ok {
		_spec.SetField(extractionrun.FieldLocale, field.TypeString, value)
		_node.Locale = &value
	}
	if value, ok := _c.mutation.TextBytes(); ok {
		_spec.SetField(extractionrun.FieldTextBytes, field.TypeInt, value)
		_node.TextBytes = value
	}
	if value, ok := _c.mutation.ChunksTotal(); ok {
		_spec.SetField(extractionrun.FieldChunksTotal, field.TypeInt, value)
		_node.ChunksTotal = value
	}
	if value, ok := _c.mutation.ChunksProcessed(); ok {
		_spec.SetField(extractionrun.FieldChunksProcessed, field.TypeInt, value)
		_node.ChunksProcessed = value
	}
	if value, ok := _c.mutation.ChunksFailed(); ok {
		_spec.SetField(extractionrun.FieldChunksFailed, field.TypeInt, value)
		_node.ChunksFailed = value
	}
	if value, ok := _c.mutation.DuplicatesSkipped(); ok {
		_spec.SetField(extractionrun.FieldDuplicatesSkipped, field.TypeInt, value)
		_node.DuplicatesSkipped = value
	}
	if value, ok := _c.mutation.ListingsInserted(); ok {
		_spec.SetField(extractionrun.FieldListingsInserted, field.TypeInt, value)
		_node.ListingsInserted = value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(extractionrun.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(extractionrun.FieldModelName, field.TypeString, value)
		_node.ModelName = &value
	}
	if value, ok := _c.mutation.ModelParams(); ok {
		_spec.SetField(extractionrun.FieldModelParams, field.TypeJSON, value)
		_node.ModelParams = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(extractionrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(extractionrun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.SupplierIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionrun.SupplierTable,
			Columns: []string{extractionrun.SupplierColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supplier.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SupplierID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionRunCreateBulk is the builder for creating many ExtractionRun entities in bulk.
type ExtractionRunCreateBulk struct {
	config
	err      error
	builders []*ExtractionRunCreate
}

// Save creates the ExtractionRun entities in the database.
func (_c *ExtractionRunCreateBulk) Save(ctx context.Context) ([]*ExtractionRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionRunMutation)
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
func (_c *ExtractionRunCreateBulk) SaveX(ctx context.Context) []*ExtractionRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
