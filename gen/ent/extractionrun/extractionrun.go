// Code generated by ent, DO NOT EDIT.

package extractionrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractionrun type in the database.
	Label = "extraction_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSupplierID holds the string denoting the supplier_id field in the database.
	FieldSupplierID = "supplier_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLocale holds the string denoting the locale field in the database.
	FieldLocale = "locale"
	// FieldTextBytes holds the string denoting the text_bytes field in the database.
	FieldTextBytes = "text_bytes"
	// FieldChunksTotal holds the string denoting the chunks_total field in the database.
	FieldChunksTotal = "chunks_total"
	// FieldChunksProcessed holds the string denoting the chunks_processed field in the database.
	FieldChunksProcessed = "chunks_processed"
	// FieldChunksFailed holds the string denoting the chunks_failed field in the database.
	FieldChunksFailed = "chunks_failed"
	// FieldDuplicatesSkipped holds the string denoting the duplicates_skipped field in the database.
	FieldDuplicatesSkipped = "duplicates_skipped"
	// FieldListingsInserted holds the string denoting the listings_inserted field in the database.
	FieldListingsInserted = "listings_inserted"
	// FieldErrorCode holds the string denoting the error_code field in the database.
	FieldErrorCode = "error_code"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldModelName holds the string denoting the model_name field in the database.
	FieldModelName = "model_name"
	// FieldModelParams holds the string denoting the model_params field in the database.
	FieldModelParams = "model_params"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// EdgeSupplier holds the string denoting the supplier edge name in mutations.
	EdgeSupplier = "supplier"
	// Table holds the table name of the extractionrun in the database.
	Table = "extraction_runs"
	// SupplierTable is the table that holds the supplier relation/edge.
	SupplierTable = "extraction_runs"
	// SupplierInverseTable is the table name for the Supplier entity.
	// It exists in this package in order to avoid circular dependency with the "supplier" package.
	SupplierInverseTable = "suppliers"
	// SupplierColumn is the table column denoting the supplier relation/edge.
	SupplierColumn = "supplier_id"
)

// Columns holds all SQL columns for extractionrun fields.
var Columns = []string{
	FieldID,
	FieldSupplierID,
	FieldStatus,
	FieldLocale,
	FieldTextBytes,
	FieldChunksTotal,
	FieldChunksProcessed,
	FieldChunksFailed,
	FieldDuplicatesSkipped,
	FieldListingsInserted,
	FieldErrorCode,
	FieldErrorMessage,
	FieldModelName,
	FieldModelParams,
	FieldStartedAt,
	FieldFinishedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultTextBytes holds the default value on creation for the "text_bytes" field.
	DefaultTextBytes int
	// DefaultChunksTotal holds the default value on creation for the "chunks_total" field.
	DefaultChunksTotal int
	// DefaultChunksProcessed holds the default value on creation for the "chunks_processed" field.
	DefaultChunksProcessed int
	// DefaultChunksFailed holds the default value on creation for the "chunks_failed" field.
	DefaultChunksFailed int
	// DefaultDuplicatesSkipped holds the default value on creation for the "duplicates_skipped" field.
	DefaultDuplicatesSkipped int
	// DefaultListingsInserted holds the default value on creation for the "listings_inserted" field.
	DefaultListingsInserted int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractionRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySupplierID orders the results by the supplier_id field.
func BySupplierID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLocale orders the results by the locale field.
func ByLocale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocale, opts...).ToFunc()
}

// ByTextBytes orders the results by the text_bytes field.
func ByTextBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextBytes, opts...).ToFunc()
}

// ByChunksTotal orders the results by the chunks_total field.
func ByChunksTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChunksTotal, opts...).ToFunc()
}

// ByChunksProcessed orders the results by the chunks_processed field.
func ByChunksProcessed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChunksProcessed, opts...).ToFunc()
}

// ByChunksFailed orders the results by the chunks_failed field.
func ByChunksFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChunksFailed, opts...).ToFunc()
}

// ByDuplicatesSkipped orders the results by the duplicates_skipped field.
func ByDuplicatesSkipped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuplicatesSkipped, opts...).ToFunc()
}

// ByListingsInserted orders the results by the listings_inserted field.
func ByListingsInserted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldListingsInserted, opts...).ToFunc()
}

// ByErrorCode orders the results by the error_code field.
func ByErrorCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCode, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByModelName orders the results by the model_name field.
func ByModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelName, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// BySupplierField orders the results by supplier field.
func BySupplierField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSupplierStep(), sql.OrderByField(field, opts...))
	}
}
func newSupplierStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SupplierInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SupplierTable, SupplierColumn),
	)
}
