// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/kahawa-labs/beanmarket/gen/ent/extractionrun"
	"github.com/kahawa-labs/beanmarket/gen/ent/supplier"
)

// ExtractionRun is the model entity for the ExtractionRun schema.
type ExtractionRun struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SupplierID holds the value of the "supplier_id" field.
	SupplierID *uuid.UUID `json:"supplier_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Locale holds the value of the "locale" field.
	Locale *string `json:"locale,omitempty"`
	// TextBytes holds the value of the "text_bytes" field.
	TextBytes int `json:"text_bytes,omitempty"`
	// ChunksTotal holds the value of the "chunks_total" field.
	ChunksTotal int `json:"chunks_total,omitempty"`
	// ChunksProcessed holds the value of the "chunks_processed" field.
	ChunksProcessed int `json:"chunks_processed,omitempty"`
	// ChunksFailed holds the value of the "chunks_failed" field.
	ChunksFailed int `json:"chunks_failed,omitempty"`
	// DuplicatesSkipped holds the value of the "duplicates_skipped" field.
	DuplicatesSkipped int `json:"duplicates_skipped,omitempty"`
	// ListingsInserted holds the value of the "listings_inserted" field.
	ListingsInserted int `json:"listings_inserted,omitempty"`
	// ErrorCode holds the value of the "error_code" field.
	ErrorCode *string `json:"error_code,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName *string `json:"model_name,omitempty"`
	// ModelParams holds the value of the "model_params" field.
	ModelParams json.RawMessage `json:"model_params,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractionRunQuery when eager-loading is set.
	Edges        ExtractionRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractionRunEdges holds the relations/edges for other nodes in the graph.
type ExtractionRunEdges struct {
	// Supplier holds the value of the supplier edge.
	Supplier *Supplier `json:"supplier,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SupplierOrErr returns the Supplier value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionRunEdges) SupplierOrErr() (*Supplier, error) {
	if e.Supplier != nil {
		return e.Supplier, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: supplier.Label}
	}
	return nil, &NotLoadedError{edge: "supplier"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractionrun.FieldSupplierID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case extractionrun.FieldModelParams:
			values[i] = new([]byte)
		case extractionrun.FieldTextBytes, extractionrun.FieldChunksTotal, extractionrun.FieldChunksProcessed, extractionrun.FieldChunksFailed, extractionrun.FieldDuplicatesSkipped, extractionrun.FieldListingsInserted:
			values[i] = new(sql.NullInt64)
		case extractionrun.FieldStatus, extractionrun.FieldLocale, extractionrun.FieldErrorCode, extractionrun.FieldErrorMessage, extractionrun.FieldModelName:
			values[i] = new(sql.NullString)
		case extractionrun.FieldStartedAt, extractionrun.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case extractionrun.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionRun fields.
func (_m *ExtractionRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractionrun.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractionrun.FieldSupplierID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_id", values[i])
			} else if value.Valid {
				_m.SupplierID = new(uuid.UUID)
				*_m.SupplierID = *value.S.(*uuid.UUID)
			}
		case extractionrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case extractionrun.FieldLocale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field locale", values[i])
			} else if value.Valid {
				_m.Locale = new(string)
				*_m.Locale = value.String
			}
		case extractionrun.FieldTextBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field text_bytes", values[i])
			} else if value.Valid {
				_m.TextBytes = int(value.Int64)
			}
		case extractionrun.FieldChunksTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chunks_total", values[i])
			} else if value.Valid {
				_m.ChunksTotal = int(value.Int64)
			}
		case extractionrun.FieldChunksProcessed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chunks_processed", values[i])
			} else if value.Valid {
				_m.ChunksProcessed = int(value.Int64)
			}
		case extractionrun.FieldChunksFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chunks_failed", values[i])
			} else if value.Valid {
				_m.ChunksFailed = int(value.Int64)
			}
		case extractionrun.FieldDuplicatesSkipped:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duplicates_skipped", values[i])
			} else if value.Valid {
				_m.DuplicatesSkipped = int(value.Int64)
			}
		case extractionrun.FieldListingsInserted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field listings_inserted", values[i])
			} else if value.Valid {
				_m.ListingsInserted = int(value.Int64)
			}
		case extractionrun.FieldErrorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_code", values[i])
			} else if value.Valid {
				_m.ErrorCode = new(string)
				*_m.ErrorCode = value.String
			}
		case extractionrun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case extractionrun.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = new(string)
				*_m.ModelName = value.String
			}
		case extractionrun.FieldModelParams:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field model_params", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ModelParams); err != nil {
					return fmt.Errorf("unmarshal field model_params: %w", err)
				}
			}
		case extractionrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case extractionrun.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionRun.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySupplier queries the "supplier" edge of the ExtractionRun entity.
func (_m *ExtractionRun) QuerySupplier() *SupplierQuery {
	return NewExtractionRunClient(_m.config).QuerySupplier(_m)
}

// Update returns a builder for updating this ExtractionRun.
// Note that you need to call ExtractionRun.Unwrap() before calling this method if this ExtractionRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionRun) Update() *ExtractionRunUpdateOne {
	return NewExtractionRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionRun) Unwrap() *ExtractionRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionRun) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.SupplierID; v != nil {
		builder.WriteString("supplier_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.Locale; v != nil {
		builder.WriteString("locale=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("text_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TextBytes))
	builder.WriteString(", ")
	builder.WriteString("chunks_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChunksTotal))
	builder.WriteString(", ")
	builder.WriteString("chunks_processed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChunksProcessed))
	builder.WriteString(", ")
	builder.WriteString("chunks_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChunksFailed))
	builder.WriteString(", ")
	builder.WriteString("duplicates_skipped=")
	builder.WriteString(fmt.Sprintf("%v", _m.DuplicatesSkipped))
	builder.WriteString(", ")
	builder.WriteString("listings_inserted=")
	builder.WriteString(fmt.Sprintf("%v", _m.ListingsInserted))
	builder.WriteString(", ")
	if v := _m.ErrorCode; v != nil {
		builder.WriteString("error_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ModelName; v != nil {
		builder.WriteString("model_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("model_params=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModelParams))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionRuns is a parsable slice of ExtractionRun.
type ExtractionRuns []*ExtractionRun
