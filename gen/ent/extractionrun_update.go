// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/kahawa-labs/beanmarket/gen/ent/extractionrun"
	"github.com/kahawa-labs/beanmarket/gen/ent/predicate"
	"github.com/kahawa-labs/beanmarket/gen/ent/supplier"
)

// ExtractionRunUpdate is the builder for updating ExtractionRun entities.
type ExtractionRunUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionRunMutation
}

// Where appends a list predicates to the ExtractionRunUpdate builder.
func (_u *ExtractionRunUpdate) Where(ps ...predicate.ExtractionRun) *ExtractionRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSupplierID sets the "supplier_id" field.
func (_u *ExtractionRunUpdate) SetSupplierID(v uuid.UUID) *ExtractionRunUpdate {
	_u.mutation.SetSupplierID(v)
	return _u
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_u *ExtractionRunUpdate) SetNillableSupplierID(v *uuid.UUID) *ExtractionRunUpdate {
	if v != nil {
		_u.SetSupplierID(*v)
	}
	return _u
}

// ClearSupplierID clears the value of the "supplier_id" field.
func (_u *ExtractionRunUpdate) ClearSupplierID() *ExtractionRunUpdate {
	_u.mutation.ClearSupplierID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionRunUpdate) SetStatus(v string) *ExtractionRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionRunUpdate) SetNillableStatus(v *string) *ExtractionRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLocale sets the "locale" field.
func (_u *ExtractionRunUpdate) SetLocale(v string) *ExtractionRunUpdate {
	_u.mutation.SetLocale(v)
	return _u
}

// SetNillableLocale sets the "locale" field if the given value is not nil.
func (_u *ExtractionRunUpdate) SetNillableLocale(v *string) *ExtractionRunUpdate {
	if v != nil {
		_u.SetLocale(*v)
	}
	return _u
}

// ClearLocale clears the value of the "locale" field.
func (_u *ExtractionRunUpdate) ClearLocale() *ExtractionRunUpdate {
	_u.mutation.ClearLocale()
	return _u
}

// SetTextBytes sets the "text_bytes" field.
func (_u *ExtractionRunUpdate) SetTextBytes(v int) *ExtractionRunUpdate {
	_u.mutation.ResetTextBytes()
	_u.mutation.SetTextBytes(v)
	return _u
}

// SetNillableTextBytes sets the "text_bytes" field if the given value is not nil.
func (_u *ExtractionRunUpdate) SetNillableTextBytes(v *int) *ExtractionRunUpdate {
	if v != nil {
		_u.SetTextBytes(*v)
	}
	return _u
}

// AddTextBytes adds value to the "text_bytes" field.
func (_u *ExtractionRunUpdate) AddTextBytes(v int) *ExtractionRunUpdate {
	_u.mutation.AddTextBytes(v)
	return _u
}

// SetChunksTotal sets the "chunks_total" field.
func (_u *ExtractionRunUpdate) SetChunksTotal(v int) *ExtractionRunUpdate {
	_u.mutation.ResetChunksTotal()
	_u.mutation.SetChunksTotal(v)
	return _u
}

// SetNillableChunksTotal sets the "chunks_total" field if the given value is not nil.
func (_u *ExtractionRunUpdate) SetNillableChunksTotal(v *int) *ExtractionRunUpdate {
	if v != nil {
		_u.SetChunksTotal(*v)
	}
	return _u
}

// AddChunksTotal adds value to the "chunks_total" field.
func (_u *ExtractionRunUpdate) AddChunksTotal(v int) *ExtractionRunUpdate {
	_u.mutation.AddChunksTotal(v)
	return _u
}

// SetChunksProcessed sets the "chunks_processed" field.
func (_u *ExtractionRunUpdate) SetChunksProcessed(v int) *ExtractionRunUpdate {
	_u.mutation.ResetChunksProcessed()
	_u.mutation.SetChunksProcessed(v)
	return _u
}

// SetNillableChunksProcessed sets the "chunks_processed" field if the given value is not nil.
func (_u *ExtractionRunUpdate) SetNillableChunksProcessed(v *int) *ExtractionRunUpdate {
	if v != nil {
		_u.SetChunksProcessed(*v)
	}
	return _u
}

// AddChunksProcessed adds value to the "chunks_processed" field.
func (_u *ExtractionRunUpdate) AddChunksProcessed(v int) *ExtractionRunUpdate {
	_u.mutation.AddChunksProcessed(v)
	return _u
}

// SetChunksFailed sets the "chunks_failed" field.
func (_u *ExtractionRunUpdate) SetChunksFailed(v int) *ExtractionRunUpdate {
	_u.mutation.ResetChunksFailed()
	_u.mutation.SetChunksFailed(v)
	return _u
}

// SetNillableChunksFailed sets the "chunks_failed" field if the given value is not nil.
func (_u *ExtractionRunUpdate) SetNillableChunksFailed(v *int) *ExtractionRunUpdate {
	if v != nil {
		_u.SetChunksFailed(*v)
	}
	return _u
}

// AddChunksFailed adds value to the "chunks_failed" field.
func (_u *ExtractionRunUpdate) AddChunksFailed(v int) *ExtractionRunUpdate {
	_u.mutation.AddChunksFailed(v)
	return _u
}

// SetDuplicatesSkipped sets the "duplicates_skipped" field.
func (_u *ExtractionRunUpdate) SetDuplicatesSkipped(v int) *ExtractionRunUpdate {
	_u.mutation.ResetDuplicatesSkipped()
	_u.mutation.SetDuplicatesSkipped(v)
	return _u
}

// SetNillableDuplicatesSkipped sets the "duplicates_skipped" field if the given value is not nil.
func (_u *ExtractionRunUpdate) SetNillableDuplicatesSkipped(v *int) *ExtractionRunUpdate {
	if v != nil {
		_u.SetDuplicatesSkipped(*v)
	}
	return _u
}

// AddDuplicatesSkipped adds value to the "duplicates_skipped" field.
func (_u *ExtractionRunUpdate) AddDuplicatesSkipped(v int) *ExtractionRunUpdate {
	_u.mutation.AddDuplicatesSkipped(v)
	return _u
}

// SetListingsInserted sets the "listings_inserted" field.
func (_u *ExtractionRunUpdate) SetListingsInserted(v int) *ExtractionRunUpdate {
	_u.mutation.ResetListingsInserted()
	_u.mutation.SetListingsInserted(v)
	return _u
}

// SetNillableListingsInserted sets the "listings_inserted" field if the given value is not nil.
func (_u *ExtractionRunUpdate) SetNillableListingsInserted(v *int) *ExtractionRunUpdate {
	if v != nil {
		_u.SetListingsInserted(*v)
	}
	return _u
}

// AddListingsInserted adds value to the "listings_inserted" field.
func (_u *ExtractionRunUpdate) AddListingsInserted(v int) *ExtractionRunUpdate {
	_u.mutation.AddListingsInserted(v)
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *ExtractionRunUpdate) SetErrorCode(v string) *ExtractionRunUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *ExtractionRunUpdate) SetNillableErrorCode(v *string) *ExtractionRunUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *ExtractionRunUpdate) ClearErrorCode() *ExtractionRunUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionRunUpdate) SetErrorMessage(v string) *ExtractionRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionRunUpdate) SetNillableErrorMessage(v *string) *ExtractionRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionRunUpdate) ClearErrorMessage() *ExtractionRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ExtractionRunUpdate) SetModelName(v string) *ExtractionRunUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ExtractionRunUpdate) SetNillableModelName(v *string) *ExtractionRunUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ExtractionRunUpdate) ClearModelName() *ExtractionRunUpdate {
	_u.mutation.ClearModelName()
	return _u
}

// SetModelParams sets the "model_params" field.
func (_u *ExtractionRunUpdate) SetModelParams(v json.RawMessage) *ExtractionRunUpdate {
	_u.mutation.SetModelParams(v)
	return _u
}

// AppendModelParams appends value to the "model_params" field.
func (_u *ExtractionRunUpdate) AppendModelParams(v json.RawMessage) *ExtractionRunUpdate {
	_u.mutation.AppendModelParams(v)
	return _u
}

// ClearModelParams clears the value of the "model_params" field.
func (_u *ExtractionRunUpdate) ClearModelParams() *ExtractionRunUpdate {
	_u.mutation.ClearModelParams()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionRunUpdate) SetStartedAt(v time.Time) *ExtractionRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionRunUpdate) SetNillableStartedAt(v *time.Time) *ExtractionRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractionRunUpdate) SetFinishedAt(v time.Time) *ExtractionRunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractionRunUpdate) SetNillableFinishedAt(v *time.Time) *ExtractionRunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractionRunUpdate) ClearFinishedAt() *ExtractionRunUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_u *ExtractionRunUpdate) SetSupplier(v *Supplier) *ExtractionRunUpdate {
	return _u.SetSupplierID(v.ID)
}

// Mutation returns the ExtractionRunMutation object of the builder.
func (_u *ExtractionRunUpdate) Mutation() *ExtractionRunMutation {
	return _u.mutation
}

// ClearSupplier clears the "supplier" edge to the Supplier entity.
func (_u *ExtractionRunUpdate) ClearSupplier() *ExtractionRunUpdate {
	_u.mutation.ClearSupplier()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionrun.Table, extractionrun.Columns, sqlgraph.NewFieldSpec(extractionrun.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionrun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Locale(); ok {
		_spec.SetField(extractionrun.FieldLocale, field.TypeString, value)
	}
	if _u.mutation.LocaleCleared() {
		_spec.ClearField(extractionrun.FieldLocale, field.TypeString)
	}
	if value, ok := _u.mutation.TextBytes(); ok {
		_spec.SetField(extractionrun.FieldTextBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTextBytes(); ok {
		_spec.AddField(extractionrun.FieldTextBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChunksTotal(); ok {
		_spec.SetField(extractionrun.FieldChunksTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunksTotal(); ok {
		_spec.AddField(extractionrun.FieldChunksTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChunksProcessed(); ok {
		_spec.SetField(extractionrun.FieldChunksProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunksProcessed(); ok {
		_spec.AddField(extractionrun.FieldChunksProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChunksFailed(); ok {
		_spec.SetField(extractionrun.FieldChunksFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunksFailed(); ok {
		_spec.AddField(extractionrun.FieldChunksFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DuplicatesSkipped(); ok {
		_spec.SetField(extractionrun.FieldDuplicatesSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuplicatesSkipped(); ok {
		_spec.AddField(extractionrun.FieldDuplicatesSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ListingsInserted(); ok {
		_spec.SetField(extractionrun.FieldListingsInserted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedListingsInserted(); ok {
		_spec.AddField(extractionrun.FieldListingsInserted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(extractionrun.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(extractionrun.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(extractionrun.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(extractionrun.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.ModelParams(); ok {
		_spec.SetField(extractionrun.FieldModelParams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModelParams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrun.FieldModelParams, value)
		})
	}
	if _u.mutation.ModelParamsCleared() {
		_spec.ClearField(extractionrun.FieldModelParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractionrun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractionrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractionrun.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.SupplierCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SupplierIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionRunUpdateOne is the builder for updating a single ExtractionRun entity.
type ExtractionRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionRunMutation
}

// SetSupplierID sets the "supplier_id" field.
func (_u *ExtractionRunUpdateOne) SetSupplierID(v uuid.UUID) *ExtractionRunUpdateOne {
	_u.mutation.SetSupplierID(v)
	return _u
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_u *ExtractionRunUpdateOne) SetNillableSupplierID(v *uuid.UUID) *ExtractionRunUpdateOne {
	if v != nil {
		_u.SetSupplierID(*v)
	}
	return _u
}

// ClearSupplierID clears the value of the "supplier_id" field.
func (_u *ExtractionRunUpdateOne) ClearSupplierID() *ExtractionRunUpdateOne {
	_u.mutation.ClearSupplierID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionRunUpdateOne) SetStatus(v string) *ExtractionRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionRunUpdateOne) SetNillableStatus(v *string) *ExtractionRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLocale sets the "locale" field.
func (_u *ExtractionRunUpdateOne) SetLocale(v string) *ExtractionRunUpdateOne {
	_u.mutation.SetLocale(v)
	return _u
}

// SetNillableLocale sets the "locale" field if the given value is not nil.
func (_u *ExtractionRunUpdateOne) SetNillableLocale(v *string) *ExtractionRunUpdateOne {
	if v != nil {
		_u.SetLocale(*v)
	}
	return _u
}

// ClearLocale clears the value of the "locale" field.
func (_u *ExtractionRunUpdateOne) ClearLocale() *ExtractionRunUpdateOne {
	_u.mutation.ClearLocale()
	return _u
}

// SetTextBytes sets the "text_bytes" field.
func (_u *ExtractionRunUpdateOne) SetTextBytes(v int) *ExtractionRunUpdateOne {
	_u.mutation.ResetTextBytes()
	_u.mutation.SetTextBytes(v)
	return _u
}

// SetNillableTextBytes sets the "text_bytes" field if the given value is not nil.
func (_u *ExtractionRunUpdateOne) SetNillableTextBytes(v *int) *ExtractionRunUpdateOne {
	if v != nil {
		_u.SetTextBytes(*v)
	}
	return _u
}

// AddTextBytes adds value to the "text_bytes" field.
func (_u *ExtractionRunUpdateOne) AddTextBytes(v int) *ExtractionRunUpdateOne {
	_u.mutation.AddTextBytes(v)
	return _u
}

// SetChunksTotal sets the "chunks_total" field.
func (_u *ExtractionRunUpdateOne) SetChunksTotal(v int) *ExtractionRunUpdateOne {
	_u.mutation.ResetChunksTotal()
	_u.mutation.SetChunksTotal(v)
	return _u
}

// SetNillableChunksTotal sets the "chunks_total" field if the given value is not nil.
func (_u *ExtractionRunUpdateOne) SetNillableChunksTotal(v *int) *ExtractionRunUpdateOne {
	if v != nil {
		_u.SetChunksTotal(*v)
	}
	return _u
}

// AddChunksTotal adds value to the "chunks_total" field.
func (_u *ExtractionRunUpdateOne) AddChunksTotal(v int) *ExtractionRunUpdateOne {
	_u.mutation.AddChunksTotal(v)
	return _u
}

// SetChunksProcessed sets the "chunks_processed" field.
func (_u *ExtractionRunUpdateOne) SetChunksProcessed(v int) *ExtractionRunUpdateOne {
	_u.mutation.ResetChunksProcessed()
	_u.mutation.SetChunksProcessed(v)
	return _u
}

// SetNillableChunksProcessed sets the "chunks_processed" field if the given value is not nil.
func (_u *ExtractionRunUpdateOne) SetNillableChunksProcessed(v *int) *ExtractionRunUpdateOne {
	if v != nil {
		_u.SetChunksProcessed(*v)
	}
	return _u
}

// AddChunksProcessed adds value to the "chunks_processed" field.
func (_u *ExtractionRunUpdateOne) AddChunksProcessed(v int) *ExtractionRunUpdateOne {
	_u.mutation.AddChunksProcessed(v)
	return _u
}

// SetChunksFailed sets the "chunks_failed" field.
func (_u *ExtractionRunUpdateOne) SetChunksFailed(v int) *ExtractionRunUpdateOne {
	_u.mutation.ResetChunksFailed()
	_u.mutation.SetChunksFailed(v)
	return _u
}

// SetNillableChunksFailed sets the "chunks_failed" field if the given value is not nil.
func (_u *ExtractionRunUpdateOne) SetNillableChunksFailed(v *int) *ExtractionRunUpdateOne {
	if v != nil {
		_u.SetChunksFailed(*v)
	}
	return _u
}

// AddChunksFailed adds value to the "chunks_failed" field.
func (_u *ExtractionRunUpdateOne) AddChunksFailed(v int) *ExtractionRunUpdateOne {
	_u.mutation.AddChunksFailed(v)
	return _u
}

// SetDuplicatesSkipped sets the "duplicates_skipped" field.
func (_u *ExtractionRunUpdateOne) SetDuplicatesSkipped(v int) *ExtractionRunUpdateOne {
	_u.mutation.ResetDuplicatesSkipped()
	_u.mutation.SetDuplicatesSkipped(v)
	return _u
}

// SetNillableDuplicatesSkipped sets the "duplicates_skipped" field if the given value is not nil.
func (_u *ExtractionRunUpdateOne) SetNillableDuplicatesSkipped(v *int) *ExtractionRunUpdateOne {
	if v != nil {
		_u.SetDuplicatesSkipped(*v)
	}
	return _u
}

// AddDuplicatesSkipped adds value to the "duplicates_skipped" field.
func (_u *ExtractionRunUpdateOne) AddDuplicatesSkipped(v int) *ExtractionRunUpdateOne {
	_u.mutation.AddDuplicatesSkipped(v)
	return _u
}

// SetListingsInserted sets the "listings_inserted" field.
func (_u *ExtractionRunUpdateOne) SetListingsInserted(v int) *ExtractionRunUpdateOne {
	_u.mutation.ResetListingsInserted()
	_u.mutation.SetListingsInserted(v)
	return _u
}

// SetNillableListingsInserted sets the "listings_inserted" field if the given value is not nil.
func (_u *ExtractionRunUpdateOne) SetNillableListingsInserted(v *int) *ExtractionRunUpdateOne {
	if v != nil {
		_u.SetListingsInserted(*v)
	}
	return _u
}

// AddListingsInserted adds value to the "listings_inserted" field.
func (_u *ExtractionRunUpdateOne) AddListingsInserted(v int) *ExtractionRunUpdateOne {
	_u.mutation.AddListingsInserted(v)
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *ExtractionRunUpdateOne) SetErrorCode(v string) *ExtractionRunUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *ExtractionRunUpdateOne) SetNillableErrorCode(v *string) *ExtractionRunUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *ExtractionRunUpdateOne) ClearErrorCode() *ExtractionRunUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionRunUpdateOne) SetErrorMessage(v string) *ExtractionRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionRunUpdateOne) SetNillableErrorMessage(v *string) *ExtractionRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionRunUpdateOne) ClearErrorMessage() *ExtractionRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ExtractionRunUpdateOne) SetModelName(v string) *ExtractionRunUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ExtractionRunUpdateOne) SetNillableModelName(v *string) *ExtractionRunUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ExtractionRunUpdateOne) ClearModelName() *ExtractionRunUpdateOne {
	_u.mutation.ClearModelName()
	return _u
}

// SetModelParams sets the "model_params" field.
func (_u *ExtractionRunUpdateOne) SetModelParams(v json.RawMessage) *ExtractionRunUpdateOne {
	_u.mutation.SetModelParams(v)
	return _u
}

// AppendModelParams appends value to the "model_params" field.
func (_u *ExtractionRunUpdateOne) AppendModelParams(v json.RawMessage) *ExtractionRunUpdateOne {
	_u.mutation.AppendModelParams(v)
	return _u
}

// ClearModelParams clears the value of the "model_params" field.
func (_u *ExtractionRunUpdateOne) ClearModelParams() *ExtractionRunUpdateOne {
	_u.mutation.ClearModelParams()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionRunUpdateOne) SetStartedAt(v time.Time) *ExtractionRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionRunUpdateOne) SetNillableStartedAt(v *time.Time) *ExtractionRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractionRunUpdateOne) SetFinishedAt(v time.Time) *ExtractionRunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractionRunUpdateOne) SetNillableFinishedAt(v *time.Time) *ExtractionRunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractionRunUpdateOne) ClearFinishedAt() *ExtractionRunUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_u *ExtractionRunUpdateOne) SetSupplier(v *Supplier) *ExtractionRunUpdateOne {
	return _u.SetSupplierID(v.ID)
}

// Mutation returns the ExtractionRunMutation object of the builder.
func (_u *ExtractionRunUpdateOne) Mutation() *ExtractionRunMutation {
	return _u.mutation
}

// ClearSupplier clears the "supplier" edge to the Supplier entity.
func (_u *ExtractionRunUpdateOne) ClearSupplier() *ExtractionRunUpdateOne {
	_u.mutation.ClearSupplier()
	return _u
}

// Where appends a list predicates to the ExtractionRunUpdate builder.
func (_u *ExtractionRunUpdateOne) Where(ps ...predicate.ExtractionRun) *ExtractionRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionRunUpdateOne) Select(field string, fields ...string) *ExtractionRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionRun entity.
func (_u *ExtractionRunUpdateOne) Save(ctx context.Context) (*ExtractionRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionRunUpdateOne) SaveX(ctx context.Context) *ExtractionRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionRunUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionrun.Table, extractionrun.Columns, sqlgraph.NewFieldSpec(extractionrun.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionrun.FieldID)
		for _, f := range fields {
			if !extractionrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionrun.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionrun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Locale(); ok {
		_spec.SetField(extractionrun.FieldLocale, field.TypeString, value)
	}
	if _u.mutation.LocaleCleared() {
		_spec.ClearField(extractionrun.FieldLocale, field.TypeString)
	}
	if value, ok := _u.mutation.TextBytes(); ok {
		_spec.SetField(extractionrun.FieldTextBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTextBytes(); ok {
		_spec.AddField(extractionrun.FieldTextBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChunksTotal(); ok {
		_spec.SetField(extractionrun.FieldChunksTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunksTotal(); ok {
		_spec.AddField(extractionrun.FieldChunksTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChunksProcessed(); ok {
		_spec.SetField(extractionrun.FieldChunksProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunksProcessed(); ok {
		_spec.AddField(extractionrun.FieldChunksProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChunksFailed(); ok {
		_spec.SetField(extractionrun.FieldChunksFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunksFailed(); ok {
		_spec.AddField(extractionrun.FieldChunksFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DuplicatesSkipped(); ok {
		_spec.SetField(extractionrun.FieldDuplicatesSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuplicatesSkipped(); ok {
		_spec.AddField(extractionrun.FieldDuplicatesSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ListingsInserted(); ok {
		_spec.SetField(extractionrun.FieldListingsInserted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedListingsInserted(); ok {
		_spec.AddField(extractionrun.FieldListingsInserted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(extractionrun.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(extractionrun.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(extractionrun.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(extractionrun.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.ModelParams(); ok {
		_spec.SetField(extractionrun.FieldModelParams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModelParams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrun.FieldModelParams, value)
		})
	}
	if _u.mutation.ModelParamsCleared() {
		_spec.ClearField(extractionrun.FieldModelParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractionrun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractionrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractionrun.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.SupplierCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SupplierIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractionRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
