// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/kahawa-labs/beanmarket/gen/ent/extractionrun"
	"github.com/kahawa-labs/beanmarket/gen/ent/listing"
	"github.com/kahawa-labs/beanmarket/gen/ent/predicate"
	"github.com/kahawa-labs/beanmarket/gen/ent/supplier"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExtractionRun = "ExtractionRun"
	TypeListing       = "Listing"
	TypeSupplier      = "Supplier"
)

// ExtractionRunMutation represents an operation that mutates the ExtractionRun nodes in the graph.
type ExtractionRunMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	status                *string
	locale                *string
	text_bytes            *int
	addtext_bytes         *int
	chunks_total          *int
	addchunks_total       *int
	chunks_processed      *int
	addchunks_processed   *int
	chunks_failed         *int
	addchunks_failed      *int
	duplicates_skipped    *int
	addduplicates_skipped *int
	listings_inserted     *int
	addlistings_inserted  *int
	error_code            *string
	error_message         *string
	model_name            *string
	model_params          *json.RawMessage
	appendmodel_params    json.RawMessage
	started_at            *time.Time
	finished_at           *time.Time
	clearedFields         map[string]struct{}
	supplier              *uuid.UUID
	clearedsupplier       bool
	done                  bool
	oldValue              func(context.Context) (*ExtractionRun, error)
	predicates            []predicate.ExtractionRun
}

var _ ent.Mutation = (*ExtractionRunMutation)(nil)

// extractionrunOption allows management of the mutation configuration using functional options.
type extractionrunOption func(*ExtractionRunMutation)

// newExtractionRunMutation creates new mutation for the ExtractionRun entity.
func newExtractionRunMutation(c config, op Op, opts ...extractionrunOption) *ExtractionRunMutation {
	m := &ExtractionRunMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionRunID sets the ID field of the mutation.
func withExtractionRunID(id uuid.UUID) extractionrunOption {
	return func(m *ExtractionRunMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionRun
		)
		m.oldValue = func(ctx context.Context) (*ExtractionRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionRun sets the old ExtractionRun of the mutation.
func withExtractionRun(node *ExtractionRun) extractionrunOption {
	return func(m *ExtractionRunMutation) {
		m.oldValue = func(context.Context) (*ExtractionRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionRun entities.
func (m *ExtractionRunMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionRunMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionRunMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSupplierID sets the "supplier_id" field.
func (m *ExtractionRunMutation) SetSupplierID(u uuid.UUID) {
	m.supplier = &u
}

// SupplierID returns the value of the "supplier_id" field in the mutation.
func (m *ExtractionRunMutation) SupplierID() (r uuid.UUID, exists bool) {
	v := m.supplier
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierID returns the old "supplier_id" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldSupplierID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierID: %w", err)
	}
	return oldValue.SupplierID, nil
}

// ClearSupplierID clears the value of the "supplier_id" field.
func (m *ExtractionRunMutation) ClearSupplierID() {
	m.supplier = nil
	m.clearedFields[extractionrun.FieldSupplierID] = struct{}{}
}

// SupplierIDCleared returns if the "supplier_id" field was cleared in this mutation.
func (m *ExtractionRunMutation) SupplierIDCleared() bool {
	_, ok := m.clearedFields[extractionrun.FieldSupplierID]
	return ok
}

// ResetSupplierID resets all changes to the "supplier_id" field.
func (m *ExtractionRunMutation) ResetSupplierID() {
	m.supplier = nil
	delete(m.clearedFields, extractionrun.FieldSupplierID)
}

// SetStatus sets the "status" field.
func (m *ExtractionRunMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractionRunMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *ExtractionRunMutation) ResetStatus() {
	m.status = nil
}

// SetLocale sets the "locale" field.
func (m *ExtractionRunMutation) SetLocale(s string) {
	m.locale = &s
}

// Locale returns the value of the "locale" field in the mutation.
func (m *ExtractionRunMutation) Locale() (r string, exists bool) {
	v := m.locale
	if v == nil {
		return
	}
	return *v, true
}

// OldLocale returns the old "locale" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldLocale(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocale: %w", err)
	}
	return oldValue.Locale, nil
}

// ClearLocale clears the value of the "locale" field.
func (m *ExtractionRunMutation) ClearLocale() {
	m.locale = nil
	m.clearedFields[extractionrun.FieldLocale] = struct{}{}
}

// LocaleCleared returns if the "locale" field was cleared in this mutation.
func (m *ExtractionRunMutation) LocaleCleared() bool {
	_, ok := m.clearedFields[extractionrun.FieldLocale]
	return ok
}

// ResetLocale resets all changes to the "locale" field.
func (m *ExtractionRunMutation) ResetLocale() {
	m.locale = nil
	delete(m.clearedFields, extractionrun.FieldLocale)
}

// SetTextBytes sets the "text_bytes" field.
func (m *ExtractionRunMutation) SetTextBytes(i int) {
	m.text_bytes = &i
	m.addtext_bytes = nil
}

// TextBytes returns the value of the "text_bytes" field in the mutation.
func (m *ExtractionRunMutation) TextBytes() (r int, exists bool) {
	v := m.text_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldTextBytes returns the old "text_bytes" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldTextBytes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextBytes: %w", err)
	}
	return oldValue.TextBytes, nil
}

// AddTextBytes adds i to the "text_bytes" field.
func (m *ExtractionRunMutation) AddTextBytes(i int) {
	if m.addtext_bytes != nil {
		*m.addtext_bytes += i
	} else {
		m.addtext_bytes = &i
	}
}

// AddedTextBytes returns the value that was added to the "text_bytes" field in this mutation.
func (m *ExtractionRunMutation) AddedTextBytes() (r int, exists bool) {
	v := m.addtext_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetTextBytes resets all changes to the "text_bytes" field.
func (m *ExtractionRunMutation) ResetTextBytes() {
	m.text_bytes = nil
	m.addtext_bytes = nil
}

// SetChunksTotal sets the "chunks_total" field.
func (m *ExtractionRunMutation) SetChunksTotal(i int) {
	m.chunks_total = &i
	m.addchunks_total = nil
}

// ChunksTotal returns the value of the "chunks_total" field in the mutation.
func (m *ExtractionRunMutation) ChunksTotal() (r int, exists bool) {
	v := m.chunks_total
	if v == nil {
		return
	}
	return *v, true
}

// OldChunksTotal returns the old "chunks_total" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldChunksTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunksTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunksTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunksTotal: %w", err)
	}
	return oldValue.ChunksTotal, nil
}

// AddChunksTotal adds i to the "chunks_total" field.
func (m *ExtractionRunMutation) AddChunksTotal(i int) {
	if m.addchunks_total != nil {
		*m.addchunks_total += i
	} else {
		m.addchunks_total = &i
	}
}

// AddedChunksTotal returns the value that was added to the "chunks_total" field in this mutation.
func (m *ExtractionRunMutation) AddedChunksTotal() (r int, exists bool) {
	v := m.addchunks_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunksTotal resets all changes to the "chunks_total" field.
func (m *ExtractionRunMutation) ResetChunksTotal() {
	m.chunks_total = nil
	m.addchunks_total = nil
}

// SetChunksProcessed sets the "chunks_processed" field.
func (m *ExtractionRunMutation) SetChunksProcessed(i int) {
	m.chunks_processed = &i
	m.addchunks_processed = nil
}

// ChunksProcessed returns the value of the "chunks_processed" field in the mutation.
func (m *ExtractionRunMutation) ChunksProcessed() (r int, exists bool) {
	v := m.chunks_processed
	if v == nil {
		return
	}
	return *v, true
}

// OldChunksProcessed returns the old "chunks_processed" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldChunksProcessed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunksProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunksProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunksProcessed: %w", err)
	}
	return oldValue.ChunksProcessed, nil
}

// AddChunksProcessed adds i to the "chunks_processed" field.
func (m *ExtractionRunMutation) AddChunksProcessed(i int) {
	if m.addchunks_processed != nil {
		*m.addchunks_processed += i
	} else {
		m.addchunks_processed = &i
	}
}

// AddedChunksProcessed returns the value that was added to the "chunks_processed" field in this mutation.
func (m *ExtractionRunMutation) AddedChunksProcessed() (r int, exists bool) {
	v := m.addchunks_processed
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunksProcessed resets all changes to the "chunks_processed" field.
func (m *ExtractionRunMutation) ResetChunksProcessed() {
	m.chunks_processed = nil
	m.addchunks_processed = nil
}

// SetChunksFailed sets the "chunks_failed" field.
func (m *ExtractionRunMutation) SetChunksFailed(i int) {
	m.chunks_failed = &i
	m.addchunks_failed = nil
}

// ChunksFailed returns the value of the "chunks_failed" field in the mutation.
func (m *ExtractionRunMutation) ChunksFailed() (r int, exists bool) {
	v := m.chunks_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldChunksFailed returns the old "chunks_failed" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldChunksFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunksFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunksFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunksFailed: %w", err)
	}
	return oldValue.ChunksFailed, nil
}

// AddChunksFailed adds i to the "chunks_failed" field.
func (m *ExtractionRunMutation) AddChunksFailed(i int) {
	if m.addchunks_failed != nil {
		*m.addchunks_failed += i
	} else {
		m.addchunks_failed = &i
	}
}

// AddedChunksFailed returns the value that was added to the "chunks_failed" field in this mutation.
func (m *ExtractionRunMutation) AddedChunksFailed() (r int, exists bool) {
	v := m.addchunks_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunksFailed resets all changes to the "chunks_failed" field.
func (m *ExtractionRunMutation) ResetChunksFailed() {
	m.chunks_failed = nil
	m.addchunks_failed = nil
}

// SetDuplicatesSkipped sets the "duplicates_skipped" field.
func (m *ExtractionRunMutation) SetDuplicatesSkipped(i int) {
	m.duplicates_skipped = &i
	m.addduplicates_skipped = nil
}

// DuplicatesSkipped returns the value of the "duplicates_skipped" field in the mutation.
func (m *ExtractionRunMutation) DuplicatesSkipped() (r int, exists bool) {
	v := m.duplicates_skipped
	if v == nil {
		return
	}
	return *v, true
}

// OldDuplicatesSkipped returns the old "duplicates_skipped" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldDuplicatesSkipped(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuplicatesSkipped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuplicatesSkipped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuplicatesSkipped: %w", err)
	}
	return oldValue.DuplicatesSkipped, nil
}

// AddDuplicatesSkipped adds i to the "duplicates_skipped" field.
func (m *ExtractionRunMutation) AddDuplicatesSkipped(i int) {
	if m.addduplicates_skipped != nil {
		*m.addduplicates_skipped += i
	} else {
		m.addduplicates_skipped = &i
	}
}

// AddedDuplicatesSkipped returns the value that was added to the "duplicates_skipped" field in this mutation.
func (m *ExtractionRunMutation) AddedDuplicatesSkipped() (r int, exists bool) {
	v := m.addduplicates_skipped
	if v == nil {
		return
	}
	return *v, true
}

// ResetDuplicatesSkipped resets all changes to the "duplicates_skipped" field.
func (m *ExtractionRunMutation) ResetDuplicatesSkipped() {
	m.duplicates_skipped = nil
	m.addduplicates_skipped = nil
}

// SetListingsInserted sets the "listings_inserted" field.
func (m *ExtractionRunMutation) SetListingsInserted(i int) {
	m.listings_inserted = &i
	m.addlistings_inserted = nil
}

// ListingsInserted returns the value of the "listings_inserted" field in the mutation.
func (m *ExtractionRunMutation) ListingsInserted() (r int, exists bool) {
	v := m.listings_inserted
	if v == nil {
		return
	}
	return *v, true
}

// OldListingsInserted returns the old "listings_inserted" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldListingsInserted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldListingsInserted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldListingsInserted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldListingsInserted: %w", err)
	}
	return oldValue.ListingsInserted, nil
}

// AddListingsInserted adds i to the "listings_inserted" field.
func (m *ExtractionRunMutation) AddListingsInserted(i int) {
	if m.addlistings_inserted != nil {
		*m.addlistings_inserted += i
	} else {
		m.addlistings_inserted = &i
	}
}

// AddedListingsInserted returns the value that was added to the "listings_inserted" field in this mutation.
func (m *ExtractionRunMutation) AddedListingsInserted() (r int, exists bool) {
	v := m.addlistings_inserted
	if v == nil {
		return
	}
	return *v, true
}

// ResetListingsInserted resets all changes to the "listings_inserted" field.
func (m *ExtractionRunMutation) ResetListingsInserted() {
	m.listings_inserted = nil
	m.addlistings_inserted = nil
}

// SetErrorCode sets the "error_code" field.
func (m *ExtractionRunMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *ExtractionRunMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *ExtractionRunMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[extractionrun.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *ExtractionRunMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[extractionrun.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *ExtractionRunMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, extractionrun.FieldErrorCode)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractionRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractionRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractionRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractionrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractionRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractionrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractionRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractionrun.FieldErrorMessage)
}

// SetModelName sets the "model_name" field.
func (m *ExtractionRunMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *ExtractionRunMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldModelName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *ExtractionRunMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[extractionrun.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *ExtractionRunMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[extractionrun.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *ExtractionRunMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, extractionrun.FieldModelName)
}

// SetModelParams sets the "model_params" field.
func (m *ExtractionRunMutation) SetModelParams(jm json.RawMessage) {
	m.model_params = &jm
	m.appendmodel_params = nil
}

// ModelParams returns the value of the "model_params" field in the mutation.
func (m *ExtractionRunMutation) ModelParams() (r json.RawMessage, exists bool) {
	v := m.model_params
	if v == nil {
		return
	}
	return *v, true
}

// OldModelParams returns the old "model_params" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldModelParams(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelParams: %w", err)
	}
	return oldValue.ModelParams, nil
}

// AppendModelParams adds jm to the "model_params" field.
func (m *ExtractionRunMutation) AppendModelParams(jm json.RawMessage) {
	m.appendmodel_params = append(m.appendmodel_params, jm...)
}

// AppendedModelParams returns the list of values that were appended to the "model_params" field in this mutation.
func (m *ExtractionRunMutation) AppendedModelParams() (json.RawMessage, bool) {
	if len(m.appendmodel_params) == 0 {
		return nil, false
	}
	return m.appendmodel_params, true
}

// ClearModelParams clears the value of the "model_params" field.
func (m *ExtractionRunMutation) ClearModelParams() {
	m.model_params = nil
	m.appendmodel_params = nil
	m.clearedFields[extractionrun.FieldModelParams] = struct{}{}
}

// ModelParamsCleared returns if the "model_params" field was cleared in this mutation.
func (m *ExtractionRunMutation) ModelParamsCleared() bool {
	_, ok := m.clearedFields[extractionrun.FieldModelParams]
	return ok
}

// ResetModelParams resets all changes to the "model_params" field.
func (m *ExtractionRunMutation) ResetModelParams() {
	m.model_params = nil
	m.appendmodel_params = nil
	delete(m.clearedFields, extractionrun.FieldModelParams)
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractionRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractionRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractionRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractionRunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractionRunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractionRunMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractionrun.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractionRunMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractionrun.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractionRunMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractionrun.FieldFinishedAt)
}

// ClearSupplier clears the "supplier" edge to the Supplier entity.
func (m *ExtractionRunMutation) ClearSupplier() {
	m.clearedsupplier = true
	m.clearedFields[extractionrun.FieldSupplierID] = struct{}{}
}

// SupplierCleared reports if the "supplier" edge to the Supplier entity was cleared.
func (m *ExtractionRunMutation) SupplierCleared() bool {
	return m.SupplierIDCleared() || m.clearedsupplier
}

// SupplierIDs returns the "supplier" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SupplierID instead. It exists only for internal usage by the builders.
func (m *ExtractionRunMutation) SupplierIDs() (ids []uuid.UUID) {
	if id := m.supplier; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSupplier resets all changes to the "supplier" edge.
func (m *ExtractionRunMutation) ResetSupplier() {
	m.supplier = nil
	m.clearedsupplier = false
}

// Where appends a list predicates to the ExtractionRunMutation builder.
func (m *ExtractionRunMutation) Where(ps ...predicate.ExtractionRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionRun).
func (m *ExtractionRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionRunMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.supplier != nil {
		fields = append(fields, extractionrun.FieldSupplierID)
	}
	if m.status != nil {
		fields = append(fields, extractionrun.FieldStatus)
	}
	if m.locale != nil {
		fields = append(fields, extractionrun.FieldLocale)
	}
	if m.text_bytes != nil {
		fields = append(fields, extractionrun.FieldTextBytes)
	}
	if m.chunks_total != nil {
		fields = append(fields, extractionrun.FieldChunksTotal)
	}
	if m.chunks_processed != nil {
		fields = append(fields, extractionrun.FieldChunksProcessed)
	}
	if m.chunks_failed != nil {
		fields = append(fields, extractionrun.FieldChunksFailed)
	}
	if m.duplicates_skipped != nil {
		fields = append(fields, extractionrun.FieldDuplicatesSkipped)
	}
	if m.listings_inserted != nil {
		fields = append(fields, extractionrun.FieldListingsInserted)
	}
	if m.error_code != nil {
		fields = append(fields, extractionrun.FieldErrorCode)
	}
	if m.error_message != nil {
		fields = append(fields, extractionrun.FieldErrorMessage)
	}
	if m.model_name != nil {
		fields = append(fields, extractionrun.FieldModelName)
	}
	if m.model_params != nil {
		fields = append(fields, extractionrun.FieldModelParams)
	}
	if m.started_at != nil {
		fields = append(fields, extractionrun.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractionrun.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionrun.FieldSupplierID:
		return m.SupplierID()
	case extractionrun.FieldStatus:
		return m.Status()
	case extractionrun.FieldLocale:
		return m.Locale()
	case extractionrun.FieldTextBytes:
		return m.TextBytes()
	case extractionrun.FieldChunksTotal:
		return m.ChunksTotal()
	case extractionrun.FieldChunksProcessed:
		return m.ChunksProcessed()
	case extractionrun.FieldChunksFailed:
		return m.ChunksFailed()
	case extractionrun.FieldDuplicatesSkipped:
		return m.DuplicatesSkipped()
	case extractionrun.FieldListingsInserted:
		return m.ListingsInserted()
	case extractionrun.FieldErrorCode:
		return m.ErrorCode()
	case extractionrun.FieldErrorMessage:
		return m.ErrorMessage()
	case extractionrun.FieldModelName:
		return m.ModelName()
	case extractionrun.FieldModelParams:
		return m.ModelParams()
	case extractionrun.FieldStartedAt:
		return m.StartedAt()
	case extractionrun.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionrun.FieldSupplierID:
		return m.OldSupplierID(ctx)
	case extractionrun.FieldStatus:
		return m.OldStatus(ctx)
	case extractionrun.FieldLocale:
		return m.OldLocale(ctx)
	case extractionrun.FieldTextBytes:
		return m.OldTextBytes(ctx)
	case extractionrun.FieldChunksTotal:
		return m.OldChunksTotal(ctx)
	case extractionrun.FieldChunksProcessed:
		return m.OldChunksProcessed(ctx)
	case extractionrun.FieldChunksFailed:
		return m.OldChunksFailed(ctx)
	case extractionrun.FieldDuplicatesSkipped:
		return m.OldDuplicatesSkipped(ctx)
	case extractionrun.FieldListingsInserted:
		return m.OldListingsInserted(ctx)
	case extractionrun.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case extractionrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractionrun.FieldModelName:
		return m.OldModelName(ctx)
	case extractionrun.FieldModelParams:
		return m.OldModelParams(ctx)
	case extractionrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractionrun.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionrun.FieldSupplierID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierID(v)
		return nil
	case extractionrun.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractionrun.FieldLocale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocale(v)
		return nil
	case extractionrun.FieldTextBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextBytes(v)
		return nil
	case extractionrun.FieldChunksTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunksTotal(v)
		return nil
	case extractionrun.FieldChunksProcessed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunksProcessed(v)
		return nil
	case extractionrun.FieldChunksFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunksFailed(v)
		return nil
	case extractionrun.FieldDuplicatesSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuplicatesSkipped(v)
		return nil
	case extractionrun.FieldListingsInserted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetListingsInserted(v)
		return nil
	case extractionrun.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case extractionrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractionrun.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case extractionrun.FieldModelParams:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelParams(v)
		return nil
	case extractionrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractionrun.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionRunMutation) AddedFields() []string {
	var fields []string
	if m.addtext_bytes != nil {
		fields = append(fields, extractionrun.FieldTextBytes)
	}
	if m.addchunks_total != nil {
		fields = append(fields, extractionrun.FieldChunksTotal)
	}
	if m.addchunks_processed != nil {
		fields = append(fields, extractionrun.FieldChunksProcessed)
	}
	if m.addchunks_failed != nil {
		fields = append(fields, extractionrun.FieldChunksFailed)
	}
	if m.addduplicates_skipped != nil {
		fields = append(fields, extractionrun.FieldDuplicatesSkipped)
	}
	if m.addlistings_inserted != nil {
		fields = append(fields, extractionrun.FieldListingsInserted)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractionrun.FieldTextBytes:
		return m.AddedTextBytes()
	case extractionrun.FieldChunksTotal:
		return m.AddedChunksTotal()
	case extractionrun.FieldChunksProcessed:
		return m.AddedChunksProcessed()
	case extractionrun.FieldChunksFailed:
		return m.AddedChunksFailed()
	case extractionrun.FieldDuplicatesSkipped:
		return m.AddedDuplicatesSkipped()
	case extractionrun.FieldListingsInserted:
		return m.AddedListingsInserted()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractionrun.FieldTextBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTextBytes(v)
		return nil
	case extractionrun.FieldChunksTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunksTotal(v)
		return nil
	case extractionrun.FieldChunksProcessed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunksProcessed(v)
		return nil
	case extractionrun.FieldChunksFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunksFailed(v)
		return nil
	case extractionrun.FieldDuplicatesSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuplicatesSkipped(v)
		return nil
	case extractionrun.FieldListingsInserted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddListingsInserted(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionrun.FieldSupplierID) {
		fields = append(fields, extractionrun.FieldSupplierID)
	}
	if m.FieldCleared(extractionrun.FieldLocale) {
		fields = append(fields, extractionrun.FieldLocale)
	}
	if m.FieldCleared(extractionrun.FieldErrorCode) {
		fields = append(fields, extractionrun.FieldErrorCode)
	}
	if m.FieldCleared(extractionrun.FieldErrorMessage) {
		fields = append(fields, extractionrun.FieldErrorMessage)
	}
	if m.FieldCleared(extractionrun.FieldModelName) {
		fields = append(fields, extractionrun.FieldModelName)
	}
	if m.FieldCleared(extractionrun.FieldModelParams) {
		fields = append(fields, extractionrun.FieldModelParams)
	}
	if m.FieldCleared(extractionrun.FieldFinishedAt) {
		fields = append(fields, extractionrun.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionRunMutation) ClearField(name string) error {
	switch name {
	case extractionrun.FieldSupplierID:
		m.ClearSupplierID()
		return nil
	case extractionrun.FieldLocale:
		m.ClearLocale()
		return nil
	case extractionrun.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case extractionrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractionrun.FieldModelName:
		m.ClearModelName()
		return nil
	case extractionrun.FieldModelParams:
		m.ClearModelParams()
		return nil
	case extractionrun.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionRunMutation) ResetField(name string) error {
	switch name {
	case extractionrun.FieldSupplierID:
		m.ResetSupplierID()
		return nil
	case extractionrun.FieldStatus:
		m.ResetStatus()
		return nil
	case extractionrun.FieldLocale:
		m.ResetLocale()
		return nil
	case extractionrun.FieldTextBytes:
		m.ResetTextBytes()
		return nil
	case extractionrun.FieldChunksTotal:
		m.ResetChunksTotal()
		return nil
	case extractionrun.FieldChunksProcessed:
		m.ResetChunksProcessed()
		return nil
	case extractionrun.FieldChunksFailed:
		m.ResetChunksFailed()
		return nil
	case extractionrun.FieldDuplicatesSkipped:
		m.ResetDuplicatesSkipped()
		return nil
	case extractionrun.FieldListingsInserted:
		m.ResetListingsInserted()
		return nil
	case extractionrun.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case extractionrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractionrun.FieldModelName:
		m.ResetModelName()
		return nil
	case extractionrun.FieldModelParams:
		m.ResetModelParams()
		return nil
	case extractionrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractionrun.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.supplier != nil {
		edges = append(edges, extractionrun.EdgeSupplier)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionrun.EdgeSupplier:
		if id := m.supplier; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsupplier {
		edges = append(edges, extractionrun.EdgeSupplier)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionRunMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionrun.EdgeSupplier:
		return m.clearedsupplier
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionRunMutation) ClearEdge(name string) error {
	switch name {
	case extractionrun.EdgeSupplier:
		m.ClearSupplier()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionRunMutation) ResetEdge(name string) error {
	switch name {
	case extractionrun.EdgeSupplier:
		m.ResetSupplier()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRun edge %s", name)
}

// ListingMutation represents an operation that mutates the Listing nodes in the graph.
type ListingMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	name            *string
	normalized_name *string
	origin          *string
	region          *string
	process         *string
	price           *float64
	addprice        *float64
	currency_code   *string
	score           *float64
	addscore        *float64
	altitude        *string
	variety         *string
	tasting_notes   *string
	available       *bool
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	supplier        *uuid.UUID
	clearedsupplier bool
	done            bool
	oldValue        func(context.Context) (*Listing, error)
	predicates      []predicate.Listing
}

var _ ent.Mutation = (*ListingMutation)(nil)

// listingOption allows management of the mutation configuration using functional options.
type listingOption func(*ListingMutation)

// newListingMutation creates new mutation for the Listing entity.
func newListingMutation(c config, op Op, opts ...listingOption) *ListingMutation {
	m := &ListingMutation{
		config:        c,
		op:            op,
		typ:           TypeListing,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withListingID sets the ID field of the mutation.
func withListingID(id uuid.UUID) listingOption {
	return func(m *ListingMutation) {
		var (
			err   error
			once  sync.Once
			value *Listing
		)
		m.oldValue = func(ctx context.Context) (*Listing, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Listing.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withListing sets the old Listing of the mutation.
func withListing(node *Listing) listingOption {
	return func(m *ListingMutation) {
		m.oldValue = func(context.Context) (*Listing, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ListingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ListingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Listing entities.
func (m *ListingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ListingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ListingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Listing.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSupplierID sets the "supplier_id" field.
func (m *ListingMutation) SetSupplierID(u uuid.UUID) {
	m.supplier = &u
}

// SupplierID returns the value of the "supplier_id" field in the mutation.
func (m *ListingMutation) SupplierID() (r uuid.UUID, exists bool) {
	v := m.supplier
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierID returns the old "supplier_id" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldSupplierID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierID: %w", err)
	}
	return oldValue.SupplierID, nil
}

// ResetSupplierID resets all changes to the "supplier_id" field.
func (m *ListingMutation) ResetSupplierID() {
	m.supplier = nil
}

// SetName sets the "name" field.
func (m *ListingMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ListingMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ListingMutation) ResetName() {
	m.name = nil
}

// SetNormalizedName sets the "normalized_name" field.
func (m *ListingMutation) SetNormalizedName(s string) {
	m.normalized_name = &s
}

// NormalizedName returns the value of the "normalized_name" field in the mutation.
func (m *ListingMutation) NormalizedName() (r string, exists bool) {
	v := m.normalized_name
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedName returns the old "normalized_name" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldNormalizedName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedName: %w", err)
	}
	return oldValue.NormalizedName, nil
}

// ResetNormalizedName resets all changes to the "normalized_name" field.
func (m *ListingMutation) ResetNormalizedName() {
	m.normalized_name = nil
}

// SetOrigin sets the "origin" field.
func (m *ListingMutation) SetOrigin(s string) {
	m.origin = &s
}

// Origin returns the value of the "origin" field in the mutation.
func (m *ListingMutation) Origin() (r string, exists bool) {
	v := m.origin
	if v == nil {
		return
	}
	return *v, true
}

// OldOrigin returns the old "origin" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldOrigin(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrigin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrigin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrigin: %w", err)
	}
	return oldValue.Origin, nil
}

// ClearOrigin clears the value of the "origin" field.
func (m *ListingMutation) ClearOrigin() {
	m.origin = nil
	m.clearedFields[listing.FieldOrigin] = struct{}{}
}

// OriginCleared returns if the "origin" field was cleared in this mutation.
func (m *ListingMutation) OriginCleared() bool {
	_, ok := m.clearedFields[listing.FieldOrigin]
	return ok
}

// ResetOrigin resets all changes to the "origin" field.
func (m *ListingMutation) ResetOrigin() {
	m.origin = nil
	delete(m.clearedFields, listing.FieldOrigin)
}

// SetRegion sets the "region" field.
func (m *ListingMutation) SetRegion(s string) {
	m.region = &s
}

// Region returns the value of the "region" field in the mutation.
func (m *ListingMutation) Region() (r string, exists bool) {
	v := m.region
	if v == nil {
		return
	}
	return *v, true
}

// OldRegion returns the old "region" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldRegion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegion: %w", err)
	}
	return oldValue.Region, nil
}

// ClearRegion clears the value of the "region" field.
func (m *ListingMutation) ClearRegion() {
	m.region = nil
	m.clearedFields[listing.FieldRegion] = struct{}{}
}

// RegionCleared returns if the "region" field was cleared in this mutation.
func (m *ListingMutation) RegionCleared() bool {
	_, ok := m.clearedFields[listing.FieldRegion]
	return ok
}

// ResetRegion resets all changes to the "region" field.
func (m *ListingMutation) ResetRegion() {
	m.region = nil
	delete(m.clearedFields, listing.FieldRegion)
}

// SetProcess sets the "process" field.
func (m *ListingMutation) SetProcess(s string) {
	m.process = &s
}

// Process returns the value of the "process" field in the mutation.
func (m *ListingMutation) Process() (r string, exists bool) {
	v := m.process
	if v == nil {
		return
	}
	return *v, true
}

// OldProcess returns the old "process" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldProcess(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcess: %w", err)
	}
	return oldValue.Process, nil
}

// ClearProcess clears the value of the "process" field.
func (m *ListingMutation) ClearProcess() {
	m.process = nil
	m.clearedFields[listing.FieldProcess] = struct{}{}
}

// ProcessCleared returns if the "process" field was cleared in this mutation.
func (m *ListingMutation) ProcessCleared() bool {
	_, ok := m.clearedFields[listing.FieldProcess]
	return ok
}

// ResetProcess resets all changes to the "process" field.
func (m *ListingMutation) ResetProcess() {
	m.process = nil
	delete(m.clearedFields, listing.FieldProcess)
}

// SetPrice sets the "price" field.
func (m *ListingMutation) SetPrice(f float64) {
	m.price = &f
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *ListingMutation) Price() (r float64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldPrice(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds f to the "price" field.
func (m *ListingMutation) AddPrice(f float64) {
	if m.addprice != nil {
		*m.addprice += f
	} else {
		m.addprice = &f
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *ListingMutation) AddedPrice() (r float64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ClearPrice clears the value of the "price" field.
func (m *ListingMutation) ClearPrice() {
	m.price = nil
	m.addprice = nil
	m.clearedFields[listing.FieldPrice] = struct{}{}
}

// PriceCleared returns if the "price" field was cleared in this mutation.
func (m *ListingMutation) PriceCleared() bool {
	_, ok := m.clearedFields[listing.FieldPrice]
	return ok
}

// ResetPrice resets all changes to the "price" field.
func (m *ListingMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
	delete(m.clearedFields, listing.FieldPrice)
}

// SetCurrencyCode sets the "currency_code" field.
func (m *ListingMutation) SetCurrencyCode(s string) {
	m.currency_code = &s
}

// CurrencyCode returns the value of the "currency_code" field in the mutation.
func (m *ListingMutation) CurrencyCode() (r string, exists bool) {
	v := m.currency_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrencyCode returns the old "currency_code" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldCurrencyCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrencyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrencyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrencyCode: %w", err)
	}
	return oldValue.CurrencyCode, nil
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (m *ListingMutation) ClearCurrencyCode() {
	m.currency_code = nil
	m.clearedFields[listing.FieldCurrencyCode] = struct{}{}
}

// CurrencyCodeCleared returns if the "currency_code" field was cleared in this mutation.
func (m *ListingMutation) CurrencyCodeCleared() bool {
	_, ok := m.clearedFields[listing.FieldCurrencyCode]
	return ok
}

// ResetCurrencyCode resets all changes to the "currency_code" field.
func (m *ListingMutation) ResetCurrencyCode() {
	m.currency_code = nil
	delete(m.clearedFields, listing.FieldCurrencyCode)
}

// SetScore sets the "score" field.
func (m *ListingMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ListingMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *ListingMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ListingMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ClearScore clears the value of the "score" field.
func (m *ListingMutation) ClearScore() {
	m.score = nil
	m.addscore = nil
	m.clearedFields[listing.FieldScore] = struct{}{}
}

// ScoreCleared returns if the "score" field was cleared in this mutation.
func (m *ListingMutation) ScoreCleared() bool {
	_, ok := m.clearedFields[listing.FieldScore]
	return ok
}

// ResetScore resets all changes to the "score" field.
func (m *ListingMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
	delete(m.clearedFields, listing.FieldScore)
}

// SetAltitude sets the "altitude" field.
func (m *ListingMutation) SetAltitude(s string) {
	m.altitude = &s
}

// Altitude returns the value of the "altitude" field in the mutation.
func (m *ListingMutation) Altitude() (r string, exists bool) {
	v := m.altitude
	if v == nil {
		return
	}
	return *v, true
}

// OldAltitude returns the old "altitude" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldAltitude(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAltitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAltitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAltitude: %w", err)
	}
	return oldValue.Altitude, nil
}

// ClearAltitude clears the value of the "altitude" field.
func (m *ListingMutation) ClearAltitude() {
	m.altitude = nil
	m.clearedFields[listing.FieldAltitude] = struct{}{}
}

// AltitudeCleared returns if the "altitude" field was cleared in this mutation.
func (m *ListingMutation) AltitudeCleared() bool {
	_, ok := m.clearedFields[listing.FieldAltitude]
	return ok
}

// ResetAltitude resets all changes to the "altitude" field.
func (m *ListingMutation) ResetAltitude() {
	m.altitude = nil
	delete(m.clearedFields, listing.FieldAltitude)
}

// SetVariety sets the "variety" field.
func (m *ListingMutation) SetVariety(s string) {
	m.variety = &s
}

// Variety returns the value of the "variety" field in the mutation.
func (m *ListingMutation) Variety() (r string, exists bool) {
	v := m.variety
	if v == nil {
		return
	}
	return *v, true
}

// OldVariety returns the old "variety" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldVariety(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariety is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariety requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariety: %w", err)
	}
	return oldValue.Variety, nil
}

// ClearVariety clears the value of the "variety" field.
func (m *ListingMutation) ClearVariety() {
	m.variety = nil
	m.clearedFields[listing.FieldVariety] = struct{}{}
}

// VarietyCleared returns if the "variety" field was cleared in this mutation.
func (m *ListingMutation) VarietyCleared() bool {
	_, ok := m.clearedFields[listing.FieldVariety]
	return ok
}

// ResetVariety resets all changes to the "variety" field.
func (m *ListingMutation) ResetVariety() {
	m.variety = nil
	delete(m.clearedFields, listing.FieldVariety)
}

// SetTastingNotes sets the "tasting_notes" field.
func (m *ListingMutation) SetTastingNotes(s string) {
	m.tasting_notes = &s
}

// TastingNotes returns the value of the "tasting_notes" field in the mutation.
func (m *ListingMutation) TastingNotes() (r string, exists bool) {
	v := m.tasting_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldTastingNotes returns the old "tasting_notes" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldTastingNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTastingNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTastingNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTastingNotes: %w", err)
	}
	return oldValue.TastingNotes, nil
}

// ClearTastingNotes clears the value of the "tasting_notes" field.
func (m *ListingMutation) ClearTastingNotes() {
	m.tasting_notes = nil
	m.clearedFields[listing.FieldTastingNotes] = struct{}{}
}

// TastingNotesCleared returns if the "tasting_notes" field was cleared in this mutation.
func (m *ListingMutation) TastingNotesCleared() bool {
	_, ok := m.clearedFields[listing.FieldTastingNotes]
	return ok
}

// ResetTastingNotes resets all changes to the "tasting_notes" field.
func (m *ListingMutation) ResetTastingNotes() {
	m.tasting_notes = nil
	delete(m.clearedFields, listing.FieldTastingNotes)
}

// SetAvailable sets the "available" field.
func (m *ListingMutation) SetAvailable(b bool) {
	m.available = &b
}

// Available returns the value of the "available" field in the mutation.
func (m *ListingMutation) Available() (r bool, exists bool) {
	v := m.available
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailable returns the old "available" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldAvailable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailable: %w", err)
	}
	return oldValue.Available, nil
}

// ResetAvailable resets all changes to the "available" field.
func (m *ListingMutation) ResetAvailable() {
	m.available = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ListingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ListingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ListingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ListingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ListingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ListingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSupplier clears the "supplier" edge to the Supplier entity.
func (m *ListingMutation) ClearSupplier() {
	m.clearedsupplier = true
	m.clearedFields[listing.FieldSupplierID] = struct{}{}
}

// SupplierCleared reports if the "supplier" edge to the Supplier entity was cleared.
func (m *ListingMutation) SupplierCleared() bool {
	return m.clearedsupplier
}

// SupplierIDs returns the "supplier" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SupplierID instead. It exists only for internal usage by the builders.
func (m *ListingMutation) SupplierIDs() (ids []uuid.UUID) {
	if id := m.supplier; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSupplier resets all changes to the "supplier" edge.
func (m *ListingMutation) ResetSupplier() {
	m.supplier = nil
	m.clearedsupplier = false
}

// Where appends a list predicates to the ListingMutation builder.
func (m *ListingMutation) Where(ps ...predicate.Listing) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ListingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ListingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Listing, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ListingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ListingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Listing).
func (m *ListingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ListingMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.supplier != nil {
		fields = append(fields, listing.FieldSupplierID)
	}
	if m.name != nil {
		fields = append(fields, listing.FieldName)
	}
	if m.normalized_name != nil {
		fields = append(fields, listing.FieldNormalizedName)
	}
	if m.origin != nil {
		fields = append(fields, listing.FieldOrigin)
	}
	if m.region != nil {
		fields = append(fields, listing.FieldRegion)
	}
	if m.process != nil {
		fields = append(fields, listing.FieldProcess)
	}
	if m.price != nil {
		fields = append(fields, listing.FieldPrice)
	}
	if m.currency_code != nil {
		fields = append(fields, listing.FieldCurrencyCode)
	}
	if m.score != nil {
		fields = append(fields, listing.FieldScore)
	}
	if m.altitude != nil {
		fields = append(fields, listing.FieldAltitude)
	}
	if m.variety != nil {
		fields = append(fields, listing.FieldVariety)
	}
	if m.tasting_notes != nil {
		fields = append(fields, listing.FieldTastingNotes)
	}
	if m.available != nil {
		fields = append(fields, listing.FieldAvailable)
	}
	if m.created_at != nil {
		fields = append(fields, listing.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, listing.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ListingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case listing.FieldSupplierID:
		return m.SupplierID()
	case listing.FieldName:
		return m.Name()
	case listing.FieldNormalizedName:
		return m.NormalizedName()
	case listing.FieldOrigin:
		return m.Origin()
	case listing.FieldRegion:
		return m.Region()
	case listing.FieldProcess:
		return m.Process()
	case listing.FieldPrice:
		return m.Price()
	case listing.FieldCurrencyCode:
		return m.CurrencyCode()
	case listing.FieldScore:
		return m.Score()
	case listing.FieldAltitude:
		return m.Altitude()
	case listing.FieldVariety:
		return m.Variety()
	case listing.FieldTastingNotes:
		return m.TastingNotes()
	case listing.FieldAvailable:
		return m.Available()
	case listing.FieldCreatedAt:
		return m.CreatedAt()
	case listing.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ListingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case listing.FieldSupplierID:
		return m.OldSupplierID(ctx)
	case listing.FieldName:
		return m.OldName(ctx)
	case listing.FieldNormalizedName:
		return m.OldNormalizedName(ctx)
	case listing.FieldOrigin:
		return m.OldOrigin(ctx)
	case listing.FieldRegion:
		return m.OldRegion(ctx)
	case listing.FieldProcess:
		return m.OldProcess(ctx)
	case listing.FieldPrice:
		return m.OldPrice(ctx)
	case listing.FieldCurrencyCode:
		return m.OldCurrencyCode(ctx)
	case listing.FieldScore:
		return m.OldScore(ctx)
	case listing.FieldAltitude:
		return m.OldAltitude(ctx)
	case listing.FieldVariety:
		return m.OldVariety(ctx)
	case listing.FieldTastingNotes:
		return m.OldTastingNotes(ctx)
	case listing.FieldAvailable:
		return m.OldAvailable(ctx)
	case listing.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case listing.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Listing field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ListingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case listing.FieldSupplierID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierID(v)
		return nil
	case listing.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case listing.FieldNormalizedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedName(v)
		return nil
	case listing.FieldOrigin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrigin(v)
		return nil
	case listing.FieldRegion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegion(v)
		return nil
	case listing.FieldProcess:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcess(v)
		return nil
	case listing.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case listing.FieldCurrencyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrencyCode(v)
		return nil
	case listing.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case listing.FieldAltitude:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAltitude(v)
		return nil
	case listing.FieldVariety:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariety(v)
		return nil
	case listing.FieldTastingNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTastingNotes(v)
		return nil
	case listing.FieldAvailable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailable(v)
		return nil
	case listing.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case listing.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Listing field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ListingMutation) AddedFields() []string {
	var fields []string
	if m.addprice != nil {
		fields = append(fields, listing.FieldPrice)
	}
	if m.addscore != nil {
		fields = append(fields, listing.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ListingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case listing.FieldPrice:
		return m.AddedPrice()
	case listing.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ListingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case listing.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	case listing.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown Listing numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ListingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(listing.FieldOrigin) {
		fields = append(fields, listing.FieldOrigin)
	}
	if m.FieldCleared(listing.FieldRegion) {
		fields = append(fields, listing.FieldRegion)
	}
	if m.FieldCleared(listing.FieldProcess) {
		fields = append(fields, listing.FieldProcess)
	}
	if m.FieldCleared(listing.FieldPrice) {
		fields = append(fields, listing.FieldPrice)
	}
	if m.FieldCleared(listing.FieldCurrencyCode) {
		fields = append(fields, listing.FieldCurrencyCode)
	}
	if m.FieldCleared(listing.FieldScore) {
		fields = append(fields, listing.FieldScore)
	}
	if m.FieldCleared(listing.FieldAltitude) {
		fields = append(fields, listing.FieldAltitude)
	}
	if m.FieldCleared(listing.FieldVariety) {
		fields = append(fields, listing.FieldVariety)
	}
	if m.FieldCleared(listing.FieldTastingNotes) {
		fields = append(fields, listing.FieldTastingNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ListingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ListingMutation) ClearField(name string) error {
	switch name {
	case listing.FieldOrigin:
		m.ClearOrigin()
		return nil
	case listing.FieldRegion:
		m.ClearRegion()
		return nil
	case listing.FieldProcess:
		m.ClearProcess()
		return nil
	case listing.FieldPrice:
		m.ClearPrice()
		return nil
	case listing.FieldCurrencyCode:
		m.ClearCurrencyCode()
		return nil
	case listing.FieldScore:
		m.ClearScore()
		return nil
	case listing.FieldAltitude:
		m.ClearAltitude()
		return nil
	case listing.FieldVariety:
		m.ClearVariety()
		return nil
	case listing.FieldTastingNotes:
		m.ClearTastingNotes()
		return nil
	}
	return fmt.Errorf("unknown Listing nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ListingMutation) ResetField(name string) error {
	switch name {
	case listing.FieldSupplierID:
		m.ResetSupplierID()
		return nil
	case listing.FieldName:
		m.ResetName()
		return nil
	case listing.FieldNormalizedName:
		m.ResetNormalizedName()
		return nil
	case listing.FieldOrigin:
		m.ResetOrigin()
		return nil
	case listing.FieldRegion:
		m.ResetRegion()
		return nil
	case listing.FieldProcess:
		m.ResetProcess()
		return nil
	case listing.FieldPrice:
		m.ResetPrice()
		return nil
	case listing.FieldCurrencyCode:
		m.ResetCurrencyCode()
		return nil
	case listing.FieldScore:
		m.ResetScore()
		return nil
	case listing.FieldAltitude:
		m.ResetAltitude()
		return nil
	case listing.FieldVariety:
		m.ResetVariety()
		return nil
	case listing.FieldTastingNotes:
		m.ResetTastingNotes()
		return nil
	case listing.FieldAvailable:
		m.ResetAvailable()
		return nil
	case listing.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case listing.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Listing field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ListingMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.supplier != nil {
		edges = append(edges, listing.EdgeSupplier)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ListingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case listing.EdgeSupplier:
		if id := m.supplier; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ListingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ListingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ListingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsupplier {
		edges = append(edges, listing.EdgeSupplier)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ListingMutation) EdgeCleared(name string) bool {
	switch name {
	case listing.EdgeSupplier:
		return m.clearedsupplier
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ListingMutation) ClearEdge(name string) error {
	switch name {
	case listing.EdgeSupplier:
		m.ClearSupplier()
		return nil
	}
	return fmt.Errorf("unknown Listing unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ListingMutation) ResetEdge(name string) error {
	switch name {
	case listing.EdgeSupplier:
		m.ResetSupplier()
		return nil
	}
	return fmt.Errorf("unknown Listing edge %s", name)
}

// SupplierMutation represents an operation that mutates the Supplier nodes in the graph.
type SupplierMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	country          *string
	default_currency *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	listings         map[uuid.UUID]struct{}
	removedlistings  map[uuid.UUID]struct{}
	clearedlistings  bool
	runs             map[uuid.UUID]struct{}
	removedruns      map[uuid.UUID]struct{}
	clearedruns      bool
	done             bool
	oldValue         func(context.Context) (*Supplier, error)
	predicates       []predicate.Supplier
}

var _ ent.Mutation = (*SupplierMutation)(nil)

// supplierOption allows management of the mutation configuration using functional options.
type supplierOption func(*SupplierMutation)

// newSupplierMutation creates new mutation for the Supplier entity.
func newSupplierMutation(c config, op Op, opts ...supplierOption) *SupplierMutation {
	m := &SupplierMutation{
		config:        c,
		op:            op,
		typ:           TypeSupplier,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSupplierID sets the ID field of the mutation.
func withSupplierID(id uuid.UUID) supplierOption {
	return func(m *SupplierMutation) {
		var (
			err   error
			once  sync.Once
			value *Supplier
		)
		m.oldValue = func(ctx context.Context) (*Supplier, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Supplier.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSupplier sets the old Supplier of the mutation.
func withSupplier(node *Supplier) supplierOption {
	return func(m *SupplierMutation) {
		m.oldValue = func(context.Context) (*Supplier, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SupplierMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SupplierMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Supplier entities.
func (m *SupplierMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SupplierMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SupplierMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Supplier.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SupplierMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SupplierMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Supplier entity.
// If the Supplier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SupplierMutation) ResetName() {
	m.name = nil
}

// SetCountry sets the "country" field.
func (m *SupplierMutation) SetCountry(s string) {
	m.country = &s
}

// Country returns the value of the "country" field in the mutation.
func (m *SupplierMutation) Country() (r string, exists bool) {
	v := m.country
	if v == nil {
		return
	}
	return *v, true
}

// OldCountry returns the old "country" field's value of the Supplier entity.
// If the Supplier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMutation) OldCountry(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountry: %w", err)
	}
	return oldValue.Country, nil
}

// ClearCountry clears the value of the "country" field.
func (m *SupplierMutation) ClearCountry() {
	m.country = nil
	m.clearedFields[supplier.FieldCountry] = struct{}{}
}

// CountryCleared returns if the "country" field was cleared in this mutation.
func (m *SupplierMutation) CountryCleared() bool {
	_, ok := m.clearedFields[supplier.FieldCountry]
	return ok
}

// ResetCountry resets all changes to the "country" field.
func (m *SupplierMutation) ResetCountry() {
	m.country = nil
	delete(m.clearedFields, supplier.FieldCountry)
}

// SetDefaultCurrency sets the "default_currency" field.
func (m *SupplierMutation) SetDefaultCurrency(s string) {
	m.default_currency = &s
}

// DefaultCurrency returns the value of the "default_currency" field in the mutation.
func (m *SupplierMutation) DefaultCurrency() (r string, exists bool) {
	v := m.default_currency
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultCurrency returns the old "default_currency" field's value of the Supplier entity.
// If the Supplier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMutation) OldDefaultCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultCurrency: %w", err)
	}
	return oldValue.DefaultCurrency, nil
}

// ResetDefaultCurrency resets all changes to the "default_currency" field.
func (m *SupplierMutation) ResetDefaultCurrency() {
	m.default_currency = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SupplierMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SupplierMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Supplier entity.
// If the Supplier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SupplierMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SupplierMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SupplierMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Supplier entity.
// If the Supplier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SupplierMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddListingIDs adds the "listings" edge to the Listing entity by ids.
func (m *SupplierMutation) AddListingIDs(ids ...uuid.UUID) {
	if m.listings == nil {
		m.listings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.listings[ids[i]] = struct{}{}
	}
}

// ClearListings clears the "listings" edge to the Listing entity.
func (m *SupplierMutation) ClearListings() {
	m.clearedlistings = true
}

// ListingsCleared reports if the "listings" edge to the Listing entity was cleared.
func (m *SupplierMutation) ListingsCleared() bool {
	return m.clearedlistings
}

// RemoveListingIDs removes the "listings" edge to the Listing entity by IDs.
func (m *SupplierMutation) RemoveListingIDs(ids ...uuid.UUID) {
	if m.removedlistings == nil {
		m.removedlistings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.listings, ids[i])
		m.removedlistings[ids[i]] = struct{}{}
	}
}

// RemovedListings returns the removed IDs of the "listings" edge to the Listing entity.
func (m *SupplierMutation) RemovedListingsIDs() (ids []uuid.UUID) {
	for id := range m.removedlistings {
		ids = append(ids, id)
	}
	return
}

// ListingsIDs returns the "listings" edge IDs in the mutation.
func (m *SupplierMutation) ListingsIDs() (ids []uuid.UUID) {
	for id := range m.listings {
		ids = append(ids, id)
	}
	return
}

// ResetListings resets all changes to the "listings" edge.
func (m *SupplierMutation) ResetListings() {
	m.listings = nil
	m.clearedlistings = false
	m.removedlistings = nil
}

// AddRunIDs adds the "runs" edge to the ExtractionRun entity by ids.
func (m *SupplierMutation) AddRunIDs(ids ...uuid.UUID) {
	if m.runs == nil {
		m.runs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the ExtractionRun entity.
func (m *SupplierMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the ExtractionRun entity was cleared.
func (m *SupplierMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the ExtractionRun entity by IDs.
func (m *SupplierMutation) RemoveRunIDs(ids ...uuid.UUID) {
	if m.removedruns == nil {
		m.removedruns = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the ExtractionRun entity.
func (m *SupplierMutation) RemovedRunsIDs() (ids []uuid.UUID) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *SupplierMutation) RunsIDs() (ids []uuid.UUID) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *SupplierMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// Where appends a list predicates to the SupplierMutation builder.
func (m *SupplierMutation) Where(ps ...predicate.Supplier) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SupplierMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SupplierMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Supplier, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SupplierMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SupplierMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Supplier).
func (m *SupplierMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SupplierMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, supplier.FieldName)
	}
	if m.country != nil {
		fields = append(fields, supplier.FieldCountry)
	}
	if m.default_currency != nil {
		fields = append(fields, supplier.FieldDefaultCurrency)
	}
	if m.created_at != nil {
		fields = append(fields, supplier.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, supplier.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SupplierMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case supplier.FieldName:
		return m.Name()
	case supplier.FieldCountry:
		return m.Country()
	case supplier.FieldDefaultCurrency:
		return m.DefaultCurrency()
	case supplier.FieldCreatedAt:
		return m.CreatedAt()
	case supplier.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SupplierMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case supplier.FieldName:
		return m.OldName(ctx)
	case supplier.FieldCountry:
		return m.OldCountry(ctx)
	case supplier.FieldDefaultCurrency:
		return m.OldDefaultCurrency(ctx)
	case supplier.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case supplier.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Supplier field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupplierMutation) SetField(name string, value ent.Value) error {
	switch name {
	case supplier.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case supplier.FieldCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountry(v)
		return nil
	case supplier.FieldDefaultCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultCurrency(v)
		return nil
	case supplier.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case supplier.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Supplier field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SupplierMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SupplierMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupplierMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Supplier numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SupplierMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(supplier.FieldCountry) {
		fields = append(fields, supplier.FieldCountry)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SupplierMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SupplierMutation) ClearField(name string) error {
	switch name {
	case supplier.FieldCountry:
		m.ClearCountry()
		return nil
	}
	return fmt.Errorf("unknown Supplier nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SupplierMutation) ResetField(name string) error {
	switch name {
	case supplier.FieldName:
		m.ResetName()
		return nil
	case supplier.FieldCountry:
		m.ResetCountry()
		return nil
	case supplier.FieldDefaultCurrency:
		m.ResetDefaultCurrency()
		return nil
	case supplier.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case supplier.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Supplier field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SupplierMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.listings != nil {
		edges = append(edges, supplier.EdgeListings)
	}
	if m.runs != nil {
		edges = append(edges, supplier.EdgeRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SupplierMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case supplier.EdgeListings:
		ids := make([]ent.Value, 0, len(m.listings))
		for id := range m.listings {
			ids = append(ids, id)
		}
		return ids
	case supplier.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SupplierMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedlistings != nil {
		edges = append(edges, supplier.EdgeListings)
	}
	if m.removedruns != nil {
		edges = append(edges, supplier.EdgeRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SupplierMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case supplier.EdgeListings:
		ids := make([]ent.Value, 0, len(m.removedlistings))
		for id := range m.removedlistings {
			ids = append(ids, id)
		}
		return ids
	case supplier.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SupplierMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedlistings {
		edges = append(edges, supplier.EdgeListings)
	}
	if m.clearedruns {
		edges = append(edges, supplier.EdgeRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SupplierMutation) EdgeCleared(name string) bool {
	switch name {
	case supplier.EdgeListings:
		return m.clearedlistings
	case supplier.EdgeRuns:
		return m.clearedruns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SupplierMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Supplier unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SupplierMutation) ResetEdge(name string) error {
	switch name {
	case supplier.EdgeListings:
		m.ResetListings()
		return nil
	case supplier.EdgeRuns:
		m.ResetRuns()
		return nil
	}
	return fmt.Errorf("unknown Supplier edge %s", name)
}
