// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/kahawa-labs/beanmarket/gen/ent/listing"
	"github.com/kahawa-labs/beanmarket/gen/ent/supplier"
)

// ListingCreate is the builder for creating a Listing entity.
type ListingCreate struct {
	config
	mutation *ListingMutation
	hooks    []Hook
}

// SetSupplierID sets the "supplier_id" field.
func (_c *ListingCreate) SetSupplierID(v uuid.UUID) *ListingCreate {
	_c.mutation.SetSupplierID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ListingCreate) SetName(v string) *ListingCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNormalizedName sets the "normalized_name" field.
func (_c *ListingCreate) SetNormalizedName(v string) *ListingCreate {
	_c.mutation.SetNormalizedName(v)
	return _c
}

// SetOrigin sets the "origin" field.
func (_c *ListingCreate) SetOrigin(v string) *ListingCreate {
	_c.mutation.SetOrigin(v)
	return _c
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_c *ListingCreate) SetNillableOrigin(v *string) *ListingCreate {
	if v != nil {
		_c.SetOrigin(*v)
	}
	return _c
}

// SetRegion sets the "region" field.
func (_c *ListingCreate) SetRegion(v string) *ListingCreate {
	_c.mutation.SetRegion(v)
	return _c
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_c *ListingCreate) SetNillableRegion(v *string) *ListingCreate {
	if v != nil {
		_c.SetRegion(*v)
	}
	return _c
}

// SetProcess sets the "process" field.
func (_c *ListingCreate) SetProcess(v string) *ListingCreate {
	_c.mutation.SetProcess(v)
	return _c
}

// SetNillableProcess sets the "process" field if the given value is not nil.
func (_c *ListingCreate) SetNillableProcess(v *string) *ListingCreate {
	if v != nil {
		_c.SetProcess(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *ListingCreate) SetPrice(v float64) *ListingCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *ListingCreate) SetNillablePrice(v *float64) *ListingCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetCurrencyCode sets the "currency_code" field.
func (_c *ListingCreate) SetCurrencyCode(v string) *ListingCreate {
	_c.mutation.SetCurrencyCode(v)
	return _c
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_c *ListingCreate) SetNillableCurrencyCode(v *string) *ListingCreate {
	if v != nil {
		_c.SetCurrencyCode(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *ListingCreate) SetScore(v float64) *ListingCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *ListingCreate) SetNillableScore(v *float64) *ListingCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetAltitude sets the "altitude" field.
func (_c *ListingCreate) SetAltitude(v string) *ListingCreate {
	_c.mutation.SetAltitude(v)
	return _c
}

// SetNillableAltitude sets the "altitude" field if the given value is not nil.
func (_c *ListingCreate) SetNillableAltitude(v *string) *ListingCreate {
	if v != nil {
		_c.SetAltitude(*v)
	}
	return _c
}

// SetVariety sets the "variety" field.
func (_c *ListingCreate) SetVariety(v string) *ListingCreate {
	_c.mutation.SetVariety(v)
	return _c
}

// SetNillableVariety sets the "variety" field if the given value is not nil.
func (_c *ListingCreate) SetNillableVariety(v *string) *ListingCreate {
	if v != nil {
		_c.SetVariety(*v)
	}
	return _c
}

// SetTastingNotes sets the "tasting_notes" field.
func (_c *ListingCreate) SetTastingNotes(v string) *ListingCreate {
	_c.mutation.SetTastingNotes(v)
	return _c
}

// SetNillableTastingNotes sets the "tasting_notes" field if the given value is not nil.
func (_c *ListingCreate) SetNillableTastingNotes(v *string) *ListingCreate {
	if v != nil {
		_c.SetTastingNotes(*v)
	}
	return _c
}

// SetAvailable sets the "available" field.
func (_c *ListingCreate) SetAvailable(v bool) *ListingCreate {
	_c.mutation.SetAvailable(v)
	return _c
}

// SetNillableAvailable sets the "available" field if the given value is not nil.
func (_c *ListingCreate) SetNillableAvailable(v *bool) *ListingCreate {
	if v != nil {
		_c.SetAvailable(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ListingCreate) SetCreatedAt(v time.Time) *ListingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ListingCreate) SetNillableCreatedAt(v *time.Time) *ListingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ListingCreate) SetUpdatedAt(v time.Time) *ListingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ListingCreate) SetNillableUpdatedAt(v *time.Time) *ListingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ListingCreate) SetID(v uuid.UUID) *ListingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ListingCreate) SetNillableID(v *uuid.UUID) *ListingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_c *ListingCreate) SetSupplier(v *Supplier) *ListingCreate {
	return _c.SetSupplierID(v.ID)
}

// Mutation returns the ListingMutation object of the builder.
func (_c *ListingCreate) Mutation() *ListingMutation {
	return _c.mutation
}

// Save creates the Listing in the database.
func (_c *ListingCreate) Save(ctx context.Context) (*Listing, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ListingCreate) SaveX(ctx context.Context) *Listing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ListingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ListingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ListingCreate) defaults() {
	if _, ok := _c.mutation.Available(); !ok {
		v := listing.DefaultAvailable
		_c.mutation.SetAvailable(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := listing.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := listing.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := listing.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ListingCreate) check() error {
	if _, ok := _c.mutation.SupplierID(); !ok {
		return &ValidationError{Name: "supplier_id", err: errors.New(`ent: missing required field "Listing.supplier_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Listing.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := listing.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Listing.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NormalizedName(); !ok {
		return &ValidationError{Name: "normalized_name", err: errors.New(`ent: missing required field "Listing.normalized_name"`)}
	}
	if v, ok := _c.mutation.NormalizedName(); ok {
		if err := listing.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "Listing.normalized_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CurrencyCode(); ok {
		if err := listing.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Listing.currency_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Available(); !ok {
		return &ValidationError{Name: "available", err: errors.New(`ent: missing required field "Listing.available"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Listing.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Listing.updated_at"`)}
	}
	if len(_c.mutation.SupplierIDs()) == 0 {
		return &ValidationError{Name: "supplier", err: errors.New(`ent: missing required edge "Listing.supplier"`)}
	}
	return nil
}

func (_c *ListingCreate) sqlSave(ctx context.Context) (*Listing, error) {
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

func (_c *ListingCreate) createSpec() (*Listing, *sqlgraph.CreateSpec) {
	var (
		_node = &Listing{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(listing.Table, sqlgraph.NewFieldSpec(listing.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(listing.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.NormalizedName(); ok {
		_spec.SetField(listing.FieldNormalizedName, field.TypeString, value)
		_node.NormalizedName = value
	}
	if value, ok := _c.mutation.Origin(); ok {
		_spec.SetField(listing.FieldOrigin, field.TypeString, value)
		_node.Origin = &value
	}
	if value, ok := _c.mutation.Region(); ok {
		_spec.SetField(listing.FieldRegion, field.TypeString, value)
		_node.Region = &value
	}
	if value, ok := _c.mutation.Process(); ok {
		_spec.SetField(listing.FieldProcess, field.TypeString, value)
		_node.Process = &value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(listing.FieldPrice, field.TypeFloat64, value)
		_node.Price = &value
	}
	if value, ok := _c.mutation.CurrencyCode(); ok {
		_spec.SetField(listing.FieldCurrencyCode, field.TypeString, value)
		_node.CurrencyCode = &value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(listing.FieldScore, field.TypeFloat64, value)
		_node.Score = &value
	}
	if value, ok := _c.mutation.Altitude(); ok {
		_spec.SetField(listing.FieldAltitude, field.TypeString, value)
		_node.Altitude = &value
	}
	if value, ok := _c.mutation.Variety(); ok {
		_spec.SetField(listing.FieldVariety, field.TypeString, value)
		_node.Variety = &value
	}
	if value, ok := _c.mutation.TastingNotes(); ok {
		_spec.SetField(listing.FieldTastingNotes, field.TypeString, value)
		_node.TastingNotes = &value
	}
	if value, ok := _c.mutation.Available(); ok {
		_spec.SetField(listing.FieldAvailable, field.TypeBool, value)
		_node.Available = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(listing.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(listing.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SupplierIDs(); len(nodes) > 0 {
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
		_node.SupplierID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ListingCreateBulk is the builder for creating many Listing entities in bulk.
type ListingCreateBulk struct {
	config
	err      error
	builders []*ListingCreate
}

// Save creates the Listing entities in the database.
func (_c *ListingCreateBulk) Save(ctx context.Context) ([]*Listing, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Listing, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ListingMutation)
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
func (_c *ListingCreateBulk) SaveX(ctx context.Context) []*Listing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ListingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ListingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
