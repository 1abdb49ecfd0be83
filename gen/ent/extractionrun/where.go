// Code generated by ent, DO NOT EDIT.

package extractionrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/kahawa-labs/beanmarket/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLTE(FieldID, id))
}

// SupplierID applies equality check predicate on the "supplier_id" field. It's identical to SupplierIDEQ.
func SupplierID(v uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldSupplierID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldStatus, v))
}

// Locale applies equality check predicate on the "locale" field. It's identical to LocaleEQ.
func Locale(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldLocale, v))
}

// TextBytes applies equality check predicate on the "text_bytes" field. It's identical to TextBytesEQ.
func TextBytes(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldTextBytes, v))
}

// ChunksTotal applies equality check predicate on the "chunks_total" field. It's identical to ChunksTotalEQ.
func ChunksTotal(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldChunksTotal, v))
}

// ChunksProcessed applies equality check predicate on the "chunks_processed" field. It's identical to ChunksProcessedEQ.
func ChunksProcessed(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldChunksProcessed, v))
}

// ChunksFailed applies equality check predicate on the "chunks_failed" field. It's identical to ChunksFailedEQ.
func ChunksFailed(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldChunksFailed, v))
}

// DuplicatesSkipped applies equality check predicate on the "duplicates_skipped" field. It's identical to DuplicatesSkippedEQ.
func DuplicatesSkipped(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldDuplicatesSkipped, v))
}

// ListingsInserted applies equality check predicate on the "listings_inserted" field. It's identical to ListingsInsertedEQ.
func ListingsInserted(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldListingsInserted, v))
}

// ErrorCode applies equality check predicate on the "error_code" field. It's identical to ErrorCodeEQ.
func ErrorCode(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldModelName, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldFinishedAt, v))
}

// SupplierIDEQ applies the EQ predicate on the "supplier_id" field.
func SupplierIDEQ(v uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldSupplierID, v))
}

// SupplierIDNEQ applies the NEQ predicate on the "supplier_id" field.
func SupplierIDNEQ(v uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNEQ(FieldSupplierID, v))
}

// SupplierIDIn applies the In predicate on the "supplier_id" field.
func SupplierIDIn(vs ...uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIn(FieldSupplierID, vs...))
}

// SupplierIDNotIn applies the NotIn predicate on the "supplier_id" field.
func SupplierIDNotIn(vs ...uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotIn(FieldSupplierID, vs...))
}

// SupplierIDIsNil applies the IsNil predicate on the "supplier_id" field.
func SupplierIDIsNil() predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIsNull(FieldSupplierID))
}

// SupplierIDNotNil applies the NotNil predicate on the "supplier_id" field.
func SupplierIDNotNil() predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotNull(FieldSupplierID))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldContainsFold(FieldStatus, v))
}

// LocaleEQ applies the EQ predicate on the "locale" field.
func LocaleEQ(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldLocale, v))
}

// LocaleNEQ applies the NEQ predicate on the "locale" field.
func LocaleNEQ(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNEQ(FieldLocale, v))
}

// LocaleIn applies the In predicate on the "locale" field.
func LocaleIn(vs ...string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIn(FieldLocale, vs...))
}

// LocaleNotIn applies the NotIn predicate on the "locale" field.
func LocaleNotIn(vs ...string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotIn(FieldLocale, vs...))
}

// LocaleGT applies the GT predicate on the "locale" field.
func LocaleGT(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGT(FieldLocale, v))
}

// LocaleGTE applies the GTE predicate on the "locale" field.
func LocaleGTE(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGTE(FieldLocale, v))
}

// LocaleLT applies the LT predicate on the "locale" field.
func LocaleLT(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLT(FieldLocale, v))
}

// LocaleLTE applies the LTE predicate on the "locale" field.
func LocaleLTE(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLTE(FieldLocale, v))
}

// LocaleContains applies the Contains predicate on the "locale" field.
func LocaleContains(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldContains(FieldLocale, v))
}

// LocaleHasPrefix applies the HasPrefix predicate on the "locale" field.
func LocaleHasPrefix(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldHasPrefix(FieldLocale, v))
}

// LocaleHasSuffix applies the HasSuffix predicate on the "locale" field.
func LocaleHasSuffix(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldHasSuffix(FieldLocale, v))
}

// LocaleIsNil applies the IsNil predicate on the "locale" field.
func LocaleIsNil() predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIsNull(FieldLocale))
}

// LocaleNotNil applies the NotNil predicate on the "locale" field.
func LocaleNotNil() predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotNull(FieldLocale))
}

// LocaleEqualFold applies the EqualFold predicate on the "locale" field.
func LocaleEqualFold(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEqualFold(FieldLocale, v))
}

// LocaleContainsFold applies the ContainsFold predicate on the "locale" field.
func LocaleContainsFold(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldContainsFold(FieldLocale, v))
}

// TextBytesEQ applies the EQ predicate on the "text_bytes" field.
func TextBytesEQ(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldTextBytes, v))
}

// TextBytesNEQ applies the NEQ predicate on the "text_bytes" field.
func TextBytesNEQ(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNEQ(FieldTextBytes, v))
}

// TextBytesIn applies the In predicate on the "text_bytes" field.
func TextBytesIn(vs ...int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIn(FieldTextBytes, vs...))
}

// TextBytesNotIn applies the NotIn predicate on the "text_bytes" field.
func TextBytesNotIn(vs ...int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotIn(FieldTextBytes, vs...))
}

// TextBytesGT applies the GT predicate on the "text_bytes" field.
func TextBytesGT(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGT(FieldTextBytes, v))
}

// TextBytesGTE applies the GTE predicate on the "text_bytes" field.
func TextBytesGTE(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGTE(FieldTextBytes, v))
}

// TextBytesLT applies the LT predicate on the "text_bytes" field.
func TextBytesLT(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLT(FieldTextBytes, v))
}

// TextBytesLTE applies the LTE predicate on the "text_bytes" field.
func TextBytesLTE(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLTE(FieldTextBytes, v))
}

// ChunksTotalEQ applies the EQ predicate on the "chunks_total" field.
func ChunksTotalEQ(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldChunksTotal, v))
}

// ChunksTotalNEQ applies the NEQ predicate on the "chunks_total" field.
func ChunksTotalNEQ(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNEQ(FieldChunksTotal, v))
}

// ChunksTotalIn applies the In predicate on the "chunks_total" field.
func ChunksTotalIn(vs ...int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIn(FieldChunksTotal, vs...))
}

// ChunksTotalNotIn applies the NotIn predicate on the "chunks_total" field.
func ChunksTotalNotIn(vs ...int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotIn(FieldChunksTotal, vs...))
}

// ChunksTotalGT applies the GT predicate on the "chunks_total" field.
func ChunksTotalGT(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGT(FieldChunksTotal, v))
}

// ChunksTotalGTE applies the GTE predicate on the "chunks_total" field.
func ChunksTotalGTE(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGTE(FieldChunksTotal, v))
}

// ChunksTotalLT applies the LT predicate on the "chunks_total" field.
func ChunksTotalLT(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLT(FieldChunksTotal, v))
}

// ChunksTotalLTE applies the LTE predicate on the "chunks_total" field.
func ChunksTotalLTE(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLTE(FieldChunksTotal, v))
}

// ChunksProcessedEQ applies the EQ predicate on the "chunks_processed" field.
func ChunksProcessedEQ(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldChunksProcessed, v))
}

// ChunksProcessedNEQ applies the NEQ predicate on the "chunks_processed" field.
func ChunksProcessedNEQ(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNEQ(FieldChunksProcessed, v))
}

// ChunksProcessedIn applies the In predicate on the "chunks_processed" field.
func ChunksProcessedIn(vs ...int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIn(FieldChunksProcessed, vs...))
}

// ChunksProcessedNotIn applies the NotIn predicate on the "chunks_processed" field.
func ChunksProcessedNotIn(vs ...int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotIn(FieldChunksProcessed, vs...))
}

// ChunksProcessedGT applies the GT predicate on the "chunks_processed" field.
func ChunksProcessedGT(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGT(FieldChunksProcessed, v))
}

// ChunksProcessedGTE applies the GTE predicate on the "chunks_processed" field.
func ChunksProcessedGTE(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGTE(FieldChunksProcessed, v))
}

// ChunksProcessedLT applies the LT predicate on the "chunks_processed" field.
func ChunksProcessedLT(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLT(FieldChunksProcessed, v))
}

// ChunksProcessedLTE applies the LTE predicate on the "chunks_processed" field.
func ChunksProcessedLTE(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLTE(FieldChunksProcessed, v))
}

// ChunksFailedEQ applies the EQ predicate on the "chunks_failed" field.
func ChunksFailedEQ(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldChunksFailed, v))
}

// ChunksFailedNEQ applies the NEQ predicate on the "chunks_failed" field.
func ChunksFailedNEQ(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNEQ(FieldChunksFailed, v))
}

// ChunksFailedIn applies the In predicate on the "chunks_failed" field.
func ChunksFailedIn(vs ...int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIn(FieldChunksFailed, vs...))
}

// ChunksFailedNotIn applies the NotIn predicate on the "chunks_failed" field.
func ChunksFailedNotIn(vs ...int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotIn(FieldChunksFailed, vs...))
}

// ChunksFailedGT applies the GT predicate on the "chunks_failed" field.
func ChunksFailedGT(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGT(FieldChunksFailed, v))
}

// ChunksFailedGTE applies the GTE predicate on the "chunks_failed" field.
func ChunksFailedGTE(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGTE(FieldChunksFailed, v))
}

// ChunksFailedLT applies the LT predicate on the "chunks_failed" field.
func ChunksFailedLT(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLT(FieldChunksFailed, v))
}

// ChunksFailedLTE applies the LTE predicate on the "chunks_failed" field.
func ChunksFailedLTE(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLTE(FieldChunksFailed, v))
}

// DuplicatesSkippedEQ applies the EQ predicate on the "duplicates_skipped" field.
func DuplicatesSkippedEQ(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldDuplicatesSkipped, v))
}

// DuplicatesSkippedNEQ applies the NEQ predicate on the "duplicates_skipped" field.
func DuplicatesSkippedNEQ(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNEQ(FieldDuplicatesSkipped, v))
}

// DuplicatesSkippedIn applies the In predicate on the "duplicates_skipped" field.
func DuplicatesSkippedIn(vs ...int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIn(FieldDuplicatesSkipped, vs...))
}

// DuplicatesSkippedNotIn applies the NotIn predicate on the "duplicates_skipped" field.
func DuplicatesSkippedNotIn(vs ...int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotIn(FieldDuplicatesSkipped, vs...))
}

// DuplicatesSkippedGT applies the GT predicate on the "duplicates_skipped" field.
func DuplicatesSkippedGT(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGT(FieldDuplicatesSkipped, v))
}

// DuplicatesSkippedGTE applies the GTE predicate on the "duplicates_skipped" field.
func DuplicatesSkippedGTE(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGTE(FieldDuplicatesSkipped, v))
}

// DuplicatesSkippedLT applies the LT predicate on the "duplicates_skipped" field.
func DuplicatesSkippedLT(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLT(FieldDuplicatesSkipped, v))
}

// DuplicatesSkippedLTE applies the LTE predicate on the "duplicates_skipped" field.
func DuplicatesSkippedLTE(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLTE(FieldDuplicatesSkipped, v))
}

// ListingsInsertedEQ applies the EQ predicate on the "listings_inserted" field.
func ListingsInsertedEQ(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldListingsInserted, v))
}

// ListingsInsertedNEQ applies the NEQ predicate on the "listings_inserted" field.
func ListingsInsertedNEQ(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNEQ(FieldListingsInserted, v))
}

// ListingsInsertedIn applies the In predicate on the "listings_inserted" field.
func ListingsInsertedIn(vs ...int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIn(FieldListingsInserted, vs...))
}

// ListingsInsertedNotIn applies the NotIn predicate on the "listings_inserted" field.
func ListingsInsertedNotIn(vs ...int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotIn(FieldListingsInserted, vs...))
}

// ListingsInsertedGT applies the GT predicate on the "listings_inserted" field.
func ListingsInsertedGT(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGT(FieldListingsInserted, v))
}

// ListingsInsertedGTE applies the GTE predicate on the "listings_inserted" field.
func ListingsInsertedGTE(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGTE(FieldListingsInserted, v))
}

// ListingsInsertedLT applies the LT predicate on the "listings_inserted" field.
func ListingsInsertedLT(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLT(FieldListingsInserted, v))
}

// ListingsInsertedLTE applies the LTE predicate on the "listings_inserted" field.
func ListingsInsertedLTE(v int) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLTE(FieldListingsInserted, v))
}

// ErrorCodeEQ applies the EQ predicate on the "error_code" field.
func ErrorCodeEQ(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorCodeNEQ applies the NEQ predicate on the "error_code" field.
func ErrorCodeNEQ(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNEQ(FieldErrorCode, v))
}

// ErrorCodeIn applies the In predicate on the "error_code" field.
func ErrorCodeIn(vs ...string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIn(FieldErrorCode, vs...))
}

// ErrorCodeNotIn applies the NotIn predicate on the "error_code" field.
func ErrorCodeNotIn(vs ...string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotIn(FieldErrorCode, vs...))
}

// ErrorCodeGT applies the GT predicate on the "error_code" field.
func ErrorCodeGT(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGT(FieldErrorCode, v))
}

// ErrorCodeGTE applies the GTE predicate on the "error_code" field.
func ErrorCodeGTE(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGTE(FieldErrorCode, v))
}

// ErrorCodeLT applies the LT predicate on the "error_code" field.
func ErrorCodeLT(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLT(FieldErrorCode, v))
}

// ErrorCodeLTE applies the LTE predicate on the "error_code" field.
func ErrorCodeLTE(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLTE(FieldErrorCode, v))
}

// ErrorCodeContains applies the Contains predicate on the "error_code" field.
func ErrorCodeContains(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldContains(FieldErrorCode, v))
}

// ErrorCodeHasPrefix applies the HasPrefix predicate on the "error_code" field.
func ErrorCodeHasPrefix(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldHasPrefix(FieldErrorCode, v))
}

// ErrorCodeHasSuffix applies the HasSuffix predicate on the "error_code" field.
func ErrorCodeHasSuffix(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldHasSuffix(FieldErrorCode, v))
}

// ErrorCodeIsNil applies the IsNil predicate on the "error_code" field.
func ErrorCodeIsNil() predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIsNull(FieldErrorCode))
}

// ErrorCodeNotNil applies the NotNil predicate on the "error_code" field.
func ErrorCodeNotNil() predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotNull(FieldErrorCode))
}

// ErrorCodeEqualFold applies the EqualFold predicate on the "error_code" field.
func ErrorCodeEqualFold(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEqualFold(FieldErrorCode, v))
}

// ErrorCodeContainsFold applies the ContainsFold predicate on the "error_code" field.
func ErrorCodeContainsFold(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldContainsFold(FieldErrorCode, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameIsNil applies the IsNil predicate on the "model_name" field.
func ModelNameIsNil() predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIsNull(FieldModelName))
}

// ModelNameNotNil applies the NotNil predicate on the "model_name" field.
func ModelNameNotNil() predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotNull(FieldModelName))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldContainsFold(FieldModelName, v))
}

// ModelParamsIsNil applies the IsNil predicate on the "model_params" field.
func ModelParamsIsNil() predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIsNull(FieldModelParams))
}

// ModelParamsNotNil applies the NotNil predicate on the "model_params" field.
func ModelParamsNotNil() predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotNull(FieldModelParams))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotNull(FieldFinishedAt))
}

// HasSupplier applies the HasEdge predicate on the "supplier" edge.
func HasSupplier() predicate.ExtractionRun {
	return predicate.ExtractionRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SupplierTable, SupplierColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSupplierWith applies the HasEdge predicate on the "supplier" edge with a given conditions (other predicates).
func HasSupplierWith(preds ...predicate.Supplier) predicate.ExtractionRun {
	return predicate.ExtractionRun(func(s *sql.Selector) {
		step := newSupplierStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionRun) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionRun) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionRun) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.NotPredicates(p))
}
