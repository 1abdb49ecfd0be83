// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/kahawa-labs/beanmarket/gen/ent/listing"
	"github.com/kahawa-labs/beanmarket/gen/ent/predicate"
	"github.com/kahawa-labs/beanmarket/gen/ent/supplier"
)

// ListingUpdate is the builder for updating Listing entities.
type ListingUpdate struct {
	config
	hooks    []Hook
	mutation *ListingMutation
}

// Where appends a list predicates to the ListingUpdate builder.
func (_u *ListingUpdate) Where(ps ...predicate.Listing) *ListingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSupplierID sets the "supplier_id" field.
func (_u *ListingUpdate) SetSupplierID(v uuid.UUID) *ListingUpdate {
	_u.mutation.SetSupplierID(v)
	return _u
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableSupplierID(v *uuid.UUID) *ListingUpdate {
	if v != nil {
		_u.SetSupplierID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ListingUpdate) SetName(v string) *ListingUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableName(v *string) *ListingUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *ListingUpdate) SetNormalizedName(v string) *ListingUpdate {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableNormalizedName(v *string) *ListingUpdate {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *ListingUpdate) SetOrigin(v string) *ListingUpdate {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableOrigin(v *string) *ListingUpdate {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// ClearOrigin clears the value of the "origin" field.
func (_u *ListingUpdate) ClearOrigin() *ListingUpdate {
	_u.mutation.ClearOrigin()
	return _u
}

// SetRegion sets the "region" field.
func (_u *ListingUpdate) SetRegion(v string) *ListingUpdate {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableRegion(v *string) *ListingUpdate {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// ClearRegion clears the value of the "region" field.
func (_u *ListingUpdate) ClearRegion() *ListingUpdate {
	_u.mutation.ClearRegion()
	return _u
}

// SetProcess sets the "process" field.
func (_u *ListingUpdate) SetProcess(v string) *ListingUpdate {
	_u.mutation.SetProcess(v)
	return _u
}

// SetNillableProcess sets the "process" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableProcess(v *string) *ListingUpdate {
	if v != nil {
		_u.SetProcess(*v)
	}
	return _u
}

// ClearProcess clears the value of the "process" field.
func (_u *ListingUpdate) ClearProcess() *ListingUpdate {
	_u.mutation.ClearProcess()
	return _u
}

// SetPrice sets the "price" field.
func (_u *ListingUpdate) SetPrice(v float64) *ListingUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ListingUpdate) SetNillablePrice(v *float64) *ListingUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ListingUpdate) AddPrice(v float64) *ListingUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// ClearPrice clears the value of the "price" field.
func (_u *ListingUpdate) ClearPrice() *ListingUpdate {
	_u.mutation.ClearPrice()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *ListingUpdate) SetCurrencyCode(v string) *ListingUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableCurrencyCode(v *string) *ListingUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (_u *ListingUpdate) ClearCurrencyCode() *ListingUpdate {
	_u.mutation.ClearCurrencyCode()
	return _u
}

// SetScore sets the "score" field.
func (_u *ListingUpdate) SetScore(v float64) *ListingUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableScore(v *float64) *ListingUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ListingUpdate) AddScore(v float64) *ListingUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *ListingUpdate) ClearScore() *ListingUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetAltitude sets the "altitude" field.
func (_u *ListingUpdate) SetAltitude(v string) *ListingUpdate {
	_u.mutation.SetAltitude(v)
	return _u
}

// SetNillableAltitude sets the "altitude" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableAltitude(v *string) *ListingUpdate {
	if v != nil {
		_u.SetAltitude(*v)
	}
	return _u
}

// ClearAltitude clears the value of the "altitude" field.
func (_u *ListingUpdate) ClearAltitude() *ListingUpdate {
	_u.mutation.ClearAltitude()
	return _u
}

// SetVariety sets the "variety" field.
func (_u *ListingUpdate) SetVariety(v string) *ListingUpdate {
	_u.mutation.SetVariety(v)
	return _u
}

// SetNillableVariety sets the "variety" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableVariety(v *string) *ListingUpdate {
	if v != nil {
		_u.SetVariety(*v)
	}
	return _u
}

// ClearVariety clears the value of the "variety" field.
func (_u *ListingUpdate) ClearVariety() *ListingUpdate {
	_u.mutation.ClearVariety()
	return _u
}

// SetTastingNotes sets the "tasting_notes" field.
func (_u *ListingUpdate) SetTastingNotes(v string) *ListingUpdate {
	_u.mutation.SetTastingNotes(v)
	return _u
}

// SetNillableTastingNotes sets the "tasting_notes" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableTastingNotes(v *string) *ListingUpdate {
	if v != nil {
		_u.SetTastingNotes(*v)
	}
	return _u
}

// ClearTastingNotes clears the value of the "tasting_notes" field.
func (_u *ListingUpdate) ClearTastingNotes() *ListingUpdate {
	_u.mutation.ClearTastingNotes()
	return _u
}

// SetAvailable sets the "available" field.
func (_u *ListingUpdate) SetAvailable(v bool) *ListingUpdate {
	_u.mutation.SetAvailable(v)
	return _u
}

// SetNillableAvailable sets the "available" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableAvailable(v *bool) *ListingUpdate {
	if v != nil {
		_u.SetAvailable(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ListingUpdate) SetCreatedAt(v time.Time) *ListingUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableCreatedAt(v *time.Time) *ListingUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ListingUpdate) SetUpdatedAt(v time.Time) *ListingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_u *ListingUpdate) SetSupplier(v *Supplier) *ListingUpdate {
	return _u.SetSupplierID(v.ID)
}

// Mutation returns the ListingMutation object of the builder.
func (_u *ListingUpdate) Mutation() *ListingMutation {
	return _u.mutation
}

// ClearSupplier clears the "supplier" edge to the Supplier entity.
func (_u *ListingUpdate) ClearSupplier() *ListingUpdate {
	_u.mutation.ClearSupplier()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ListingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ListingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ListingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ListingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ListingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := listing.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ListingUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := listing.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Listing.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := listing.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "Listing.normalized_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := listing.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Listing.currency_code": %w`, err)}
		}
	}
	if _u.mutation.SupplierCleared() && len(_u.mutation.SupplierIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Listing.supplier"`)
	}
	return nil
}

func (_u *ListingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(listing.Table, listing.Columns, sqlgraph.NewFieldSpec(listing.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(listing.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(listing.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(listing.FieldOrigin, field.TypeString, value)
	}
	if _u.mutation.OriginCleared() {
		_spec.ClearField(listing.FieldOrigin, field.TypeString)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(listing.FieldRegion, field.TypeString, value)
	}
	if _u.mutation.RegionCleared() {
		_spec.ClearField(listing.FieldRegion, field.TypeString)
	}
	if value, ok := _u.mutation.Process(); ok {
		_spec.SetField(listing.FieldProcess, field.TypeString, value)
	}
	if _u.mutation.ProcessCleared() {
		_spec.ClearField(listing.FieldProcess, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(listing.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(listing.FieldPrice, field.TypeFloat64, value)
	}
	if _u.mutation.PriceCleared() {
		_spec.ClearField(listing.FieldPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(listing.FieldCurrencyCode, field.TypeString, value)
	}
	if _u.mutation.CurrencyCodeCleared() {
		_spec.ClearField(listing.FieldCurrencyCode, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(listing.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(listing.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(listing.FieldScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Altitude(); ok {
		_spec.SetField(listing.FieldAltitude, field.TypeString, value)
	}
	if _u.mutation.AltitudeCleared() {
		_spec.ClearField(listing.FieldAltitude, field.TypeString)
	}
	if value, ok := _u.mutation.Variety(); ok {
		_spec.SetField(listing.FieldVariety, field.TypeString, value)
	}
	if _u.mutation.VarietyCleared() {
		_spec.ClearField(listing.FieldVariety, field.TypeString)
	}
	if value, ok := _u.mutation.TastingNotes(); ok {
		_spec.SetField(listing.FieldTastingNotes, field.TypeString, value)
	}
	if _u.mutation.TastingNotesCleared() {
		_spec.ClearField(listing.FieldTastingNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Available(); ok {
		_spec.SetField(listing.FieldAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(listing.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(listing.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SupplierCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   listing.SupplierTable,
			Columns: []string{listing.SupplierColumn},
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
			Table:   listing.SupplierTable,
			Columns: []string{listing.SupplierColumn},
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
			err = &NotFoundError{listing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ListingUpdateOne is the builder for updating a single Listing entity.
type ListingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ListingMutation
}

// SetSupplierID sets the "supplier_id" field.
func (_u *ListingUpdateOne) SetSupplierID(v uuid.UUID) *ListingUpdateOne {
	_u.mutation.SetSupplierID(v)
	return _u
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableSupplierID(v *uuid.UUID) *ListingUpdateOne {
	if v != nil {
		_u.SetSupplierID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ListingUpdateOne) SetName(v string) *ListingUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableName(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *ListingUpdateOne) SetNormalizedName(v string) *ListingUpdateOne {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableNormalizedName(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *ListingUpdateOne) SetOrigin(v string) *ListingUpdateOne {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableOrigin(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// ClearOrigin clears the value of the "origin" field.
func (_u *ListingUpdateOne) ClearOrigin() *ListingUpdateOne {
	_u.mutation.ClearOrigin()
	return _u
}

// SetRegion sets the "region" field.
func (_u *ListingUpdateOne) SetRegion(v string) *ListingUpdateOne {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableRegion(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// ClearRegion clears the value of the "region" field.
func (_u *ListingUpdateOne) ClearRegion() *ListingUpdateOne {
	_u.mutation.ClearRegion()
	return _u
}

// SetProcess sets the "process" field.
func (_u *ListingUpdateOne) SetProcess(v string) *ListingUpdateOne {
	_u.mutation.SetProcess(v)
	return _u
}

// SetNillableProcess sets the "process" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableProcess(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetProcess(*v)
	}
	return _u
}

// ClearProcess clears the value of the "process" field.
func (_u *ListingUpdateOne) ClearProcess() *ListingUpdateOne {
	_u.mutation.ClearProcess()
	return _u
}

// SetPrice sets the "price" field.
func (_u *ListingUpdateOne) SetPrice(v float64) *ListingUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillablePrice(v *float64) *ListingUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ListingUpdateOne) AddPrice(v float64) *ListingUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// ClearPrice clears the value of the "price" field.
func (_u *ListingUpdateOne) ClearPrice() *ListingUpdateOne {
	_u.mutation.ClearPrice()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *ListingUpdateOne) SetCurrencyCode(v string) *ListingUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableCurrencyCode(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (_u *ListingUpdateOne) ClearCurrencyCode() *ListingUpdateOne {
	_u.mutation.ClearCurrencyCode()
	return _u
}

// SetScore sets the "score" field.
func (_u *ListingUpdateOne) SetScore(v float64) *ListingUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableScore(v *float64) *ListingUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ListingUpdateOne) AddScore(v float64) *ListingUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *ListingUpdateOne) ClearScore() *ListingUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetAltitude sets the "altitude" field.
func (_u *ListingUpdateOne) SetAltitude(v string) *ListingUpdateOne {
	_u.mutation.SetAltitude(v)
	return _u
}

// SetNillableAltitude sets the "altitude" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableAltitude(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetAltitude(*v)
	}
	return _u
}

// ClearAltitude clears the value of the "altitude" field.
func (_u *ListingUpdateOne) ClearAltitude() *ListingUpdateOne {
	_u.mutation.ClearAltitude()
	return _u
}

// SetVariety sets the "variety" field.
func (_u *ListingUpdateOne) SetVariety(v string) *ListingUpdateOne {
	_u.mutation.SetVariety(v)
	return _u
}

// SetNillableVariety sets the "variety" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableVariety(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetVariety(*v)
	}
	return _u
}

// ClearVariety clears the value of the "variety" field.
func (_u *ListingUpdateOne) ClearVariety() *ListingUpdateOne {
	_u.mutation.ClearVariety()
	return _u
}

// SetTastingNotes sets the "tasting_notes" field.
func (_u *ListingUpdateOne) SetTastingNotes(v string) *ListingUpdateOne {
	_u.mutation.SetTastingNotes(v)
	return _u
}

// SetNillableTastingNotes sets the "tasting_notes" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableTastingNotes(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetTastingNotes(*v)
	}
	return _u
}

// ClearTastingNotes clears the value of the "tasting_notes" field.
func (_u *ListingUpdateOne) ClearTastingNotes() *ListingUpdateOne {
	_u.mutation.ClearTastingNotes()
	return _u
}

// SetAvailable sets the "available" field.
func (_u *ListingUpdateOne) SetAvailable(v bool) *ListingUpdateOne {
	_u.mutation.SetAvailable(v)
	return _u
}

// SetNillableAvailable sets the "available" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableAvailable(v *bool) *ListingUpdateOne {
	if v != nil {
		_u.SetAvailable(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ListingUpdateOne) SetCreatedAt(v time.Time) *ListingUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableCreatedAt(v *time.Time) *ListingUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ListingUpdateOne) SetUpdatedAt(v time.Time) *ListingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_u *ListingUpdateOne) SetSupplier(v *Supplier) *ListingUpdateOne {
	return _u.SetSupplierID(v.ID)
}

// Mutation returns the ListingMutation object of the builder.
func (_u *ListingUpdateOne) Mutation() *ListingMutation {
	return _u.mutation
}

// ClearSupplier clears the "supplier" edge to the Supplier entity.
func (_u *ListingUpdateOne) ClearSupplier() *ListingUpdateOne {
	_u.mutation.ClearSupplier()
	return _u
}

// Where appends a list predicates to the ListingUpdate builder.
func (_u *ListingUpdateOne) Where(ps ...predicate.Listing) *ListingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ListingUpdateOne) Select(field string, fields ...string) *ListingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Listing entity.
func (_u *ListingUpdateOne) Save(ctx context.Context) (*Listing, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ListingUpdateOne) SaveX(ctx context.Context) *Listing {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ListingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ListingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ListingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := listing.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ListingUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := listing.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Listing.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := listing.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "Listing.normalized_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := listing.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Listing.currency_code": %w`, err)}
		}
	}
	if _u.mutation.SupplierCleared() && len(_u.mutation.SupplierIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Listing.supplier"`)
	}
	return nil
}

func (_u *ListingUpdateOne) sqlSave(ctx context.Context) (_node *Listing, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(listing.Table, listing.Columns, sqlgraph.NewFieldSpec(listing.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Listing.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, listing.FieldID)
		for _, f := range fields {
			if !listing.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != listing.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(listing.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(listing.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(listing.FieldOrigin, field.TypeString, value)
	}
	if _u.mutation.OriginCleared() {
		_spec.ClearField(listing.FieldOrigin, field.TypeString)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(listing.FieldRegion, field.TypeString, value)
	}
	if _u.mutation.RegionCleared() {
		_spec.ClearField(listing.FieldRegion, field.TypeString)
	}
	if value, ok := _u.mutation.Process(); ok {
		_spec.SetField(listing.FieldProcess, field.TypeString, value)
	}
	if _u.mutation.ProcessCleared() {
		_spec.ClearField(listing.FieldProcess, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(listing.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(listing.FieldPrice, field.TypeFloat64, value)
	}
	if _u.mutation.PriceCleared() {
		_spec.ClearField(listing.FieldPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(listing.FieldCurrencyCode, field.TypeString, value)
	}
	if _u.mutation.CurrencyCodeCleared() {
		_spec.ClearField(listing.FieldCurrencyCode, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(listing.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(listing.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(listing.FieldScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Altitude(); ok {
		_spec.SetField(listing.FieldAltitude, field.TypeString, value)
	}
	if _u.mutation.AltitudeCleared() {
		_spec.ClearField(listing.FieldAltitude, field.TypeString)
	}
	if value, ok := _u.mutation.Variety(); ok {
		_spec.SetField(listing.FieldVariety, field.TypeString, value)
	}
	if _u.mutation.VarietyCleared() {
		_spec.ClearField(listing.FieldVariety, field.TypeString)
	}
	if value, ok := _u.mutation.TastingNotes(); ok {
		_spec.SetField(listing.FieldTastingNotes, field.TypeString, value)
	}
	if _u.mutation.TastingNotesCleared() {
		_spec.ClearField(listing.FieldTastingNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Available(); ok {
		_spec.SetField(listing.FieldAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(listing.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(listing.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SupplierCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   listing.SupplierTable,
			Columns: []string{listing.SupplierColumn},
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
			Table:   listing.SupplierTable,
			Columns: []string{listing.SupplierColumn},
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
	_node = &Listing{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{listing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
