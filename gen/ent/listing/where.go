// Code generated by ent, DO NOT EDIT.

package listing

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/kahawa-labs/beanmarket/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldID, id))
}

// SupplierID applies equality check predicate on the "supplier_id" field. It's identical to SupplierIDEQ.
func SupplierID(v uuid.UUID) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldSupplierID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldName, v))
}

// NormalizedName applies equality check predicate on the "normalized_name" field. It's identical to NormalizedNameEQ.
func NormalizedName(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldNormalizedName, v))
}

// Origin applies equality check predicate on the "origin" field. It's identical to OriginEQ.
func Origin(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldOrigin, v))
}

// Region applies equality check predicate on the "region" field. It's identical to RegionEQ.
func Region(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldRegion, v))
}

// Process applies equality check predicate on the "process" field. It's identical to ProcessEQ.
func Process(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldProcess, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldPrice, v))
}

// CurrencyCode applies equality check predicate on the "currency_code" field. It's identical to CurrencyCodeEQ.
func CurrencyCode(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldCurrencyCode, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldScore, v))
}

// Altitude applies equality check predicate on the "altitude" field. It's identical to AltitudeEQ.
func Altitude(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldAltitude, v))
}

// Variety applies equality check predicate on the "variety" field. It's identical to VarietyEQ.
func Variety(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldVariety, v))
}

// TastingNotes applies equality check predicate on the "tasting_notes" field. It's identical to TastingNotesEQ.
func TastingNotes(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldTastingNotes, v))
}

// Available applies equality check predicate on the "available" field. It's identical to AvailableEQ.
func Available(v bool) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldAvailable, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldUpdatedAt, v))
}

// SupplierIDEQ applies the EQ predicate on the "supplier_id" field.
func SupplierIDEQ(v uuid.UUID) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldSupplierID, v))
}

// SupplierIDNEQ applies the NEQ predicate on the "supplier_id" field.
func SupplierIDNEQ(v uuid.UUID) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldSupplierID, v))
}

// SupplierIDIn applies the In predicate on the "supplier_id" field.
func SupplierIDIn(vs ...uuid.UUID) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldSupplierID, vs...))
}

// SupplierIDNotIn applies the NotIn predicate on the "supplier_id" field.
func SupplierIDNotIn(vs ...uuid.UUID) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldSupplierID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldName, v))
}

// NormalizedNameEQ applies the EQ predicate on the "normalized_name" field.
func NormalizedNameEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldNormalizedName, v))
}

// NormalizedNameNEQ applies the NEQ predicate on the "normalized_name" field.
func NormalizedNameNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldNormalizedName, v))
}

// NormalizedNameIn applies the In predicate on the "normalized_name" field.
func NormalizedNameIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldNormalizedName, vs...))
}

// NormalizedNameNotIn applies the NotIn predicate on the "normalized_name" field.
func NormalizedNameNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldNormalizedName, vs...))
}

// NormalizedNameGT applies the GT predicate on the "normalized_name" field.
func NormalizedNameGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldNormalizedName, v))
}

// NormalizedNameGTE applies the GTE predicate on the "normalized_name" field.
func NormalizedNameGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldNormalizedName, v))
}

// NormalizedNameLT applies the LT predicate on the "normalized_name" field.
func NormalizedNameLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldNormalizedName, v))
}

// NormalizedNameLTE applies the LTE predicate on the "normalized_name" field.
func NormalizedNameLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldNormalizedName, v))
}

// NormalizedNameContains applies the Contains predicate on the "normalized_name" field.
func NormalizedNameContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldNormalizedName, v))
}

// NormalizedNameHasPrefix applies the HasPrefix predicate on the "normalized_name" field.
func NormalizedNameHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldNormalizedName, v))
}

// NormalizedNameHasSuffix applies the HasSuffix predicate on the "normalized_name" field.
func NormalizedNameHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldNormalizedName, v))
}

// NormalizedNameEqualFold applies the EqualFold predicate on the "normalized_name" field.
func NormalizedNameEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldNormalizedName, v))
}

// NormalizedNameContainsFold applies the ContainsFold predicate on the "normalized_name" field.
func NormalizedNameContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldNormalizedName, v))
}

// OriginEQ applies the EQ predicate on the "origin" field.
func OriginEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldOrigin, v))
}

// OriginNEQ applies the NEQ predicate on the "origin" field.
func OriginNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldOrigin, v))
}

// OriginIn applies the In predicate on the "origin" field.
func OriginIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldOrigin, vs...))
}

// OriginNotIn applies the NotIn predicate on the "origin" field.
func OriginNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldOrigin, vs...))
}

// OriginGT applies the GT predicate on the "origin" field.
func OriginGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldOrigin, v))
}

// OriginGTE applies the GTE predicate on the "origin" field.
func OriginGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldOrigin, v))
}

// OriginLT applies the LT predicate on the "origin" field.
func OriginLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldOrigin, v))
}

// OriginLTE applies the LTE predicate on the "origin" field.
func OriginLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldOrigin, v))
}

// OriginContains applies the Contains predicate on the "origin" field.
func OriginContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldOrigin, v))
}

// OriginHasPrefix applies the HasPrefix predicate on the "origin" field.
func OriginHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldOrigin, v))
}

// OriginHasSuffix applies the HasSuffix predicate on the "origin" field.
func OriginHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldOrigin, v))
}

// OriginIsNil applies the IsNil predicate on the "origin" field.
func OriginIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldOrigin))
}

// OriginNotNil applies the NotNil predicate on the "origin" field.
func OriginNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldOrigin))
}

// OriginEqualFold applies the EqualFold predicate on the "origin" field.
func OriginEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldOrigin, v))
}

// OriginContainsFold applies the ContainsFold predicate on the "origin" field.
func OriginContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldOrigin, v))
}

// RegionEQ applies the EQ predicate on the "region" field.
func RegionEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldRegion, v))
}

// RegionNEQ applies the NEQ predicate on the "region" field.
func RegionNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldRegion, v))
}

// RegionIn applies the In predicate on the "region" field.
func RegionIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldRegion, vs...))
}

// RegionNotIn applies the NotIn predicate on the "region" field.
func RegionNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldRegion, vs...))
}

// RegionGT applies the GT predicate on the "region" field.
func RegionGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldRegion, v))
}

// RegionGTE applies the GTE predicate on the "region" field.
func RegionGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldRegion, v))
}

// RegionLT applies the LT predicate on the "region" field.
func RegionLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldRegion, v))
}

// RegionLTE applies the LTE predicate on the "region" field.
func RegionLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldRegion, v))
}

// RegionContains applies the Contains predicate on the "region" field.
func RegionContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldRegion, v))
}

// RegionHasPrefix applies the HasPrefix predicate on the "region" field.
func RegionHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldRegion, v))
}

// RegionHasSuffix applies the HasSuffix predicate on the "region" field.
func RegionHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldRegion, v))
}

// RegionIsNil applies the IsNil predicate on the "region" field.
func RegionIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldRegion))
}

// RegionNotNil applies the NotNil predicate on the "region" field.
func RegionNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldRegion))
}

// RegionEqualFold applies the EqualFold predicate on the "region" field.
func RegionEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldRegion, v))
}

// RegionContainsFold applies the ContainsFold predicate on the "region" field.
func RegionContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldRegion, v))
}

// ProcessEQ applies the EQ predicate on the "process" field.
func ProcessEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldProcess, v))
}

// ProcessNEQ applies the NEQ predicate on the "process" field.
func ProcessNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldProcess, v))
}

// ProcessIn applies the In predicate on the "process" field.
func ProcessIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldProcess, vs...))
}

// ProcessNotIn applies the NotIn predicate on the "process" field.
func ProcessNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldProcess, vs...))
}

// ProcessGT applies the GT predicate on the "process" field.
func ProcessGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldProcess, v))
}

// ProcessGTE applies the GTE predicate on the "process" field.
func ProcessGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldProcess, v))
}

// ProcessLT applies the LT predicate on the "process" field.
func ProcessLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldProcess, v))
}

// ProcessLTE applies the LTE predicate on the "process" field.
func ProcessLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldProcess, v))
}

// ProcessContains applies the Contains predicate on the "process" field.
func ProcessContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldProcess, v))
}

// ProcessHasPrefix applies the HasPrefix predicate on the "process" field.
func ProcessHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldProcess, v))
}

// ProcessHasSuffix applies the HasSuffix predicate on the "process" field.
func ProcessHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldProcess, v))
}

// ProcessIsNil applies the IsNil predicate on the "process" field.
func ProcessIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldProcess))
}

// ProcessNotNil applies the NotNil predicate on the "process" field.
func ProcessNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldProcess))
}

// ProcessEqualFold applies the EqualFold predicate on the "process" field.
func ProcessEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldProcess, v))
}

// ProcessContainsFold applies the ContainsFold predicate on the "process" field.
func ProcessContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldProcess, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldPrice, v))
}

// PriceIsNil applies the IsNil predicate on the "price" field.
func PriceIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldPrice))
}

// PriceNotNil applies the NotNil predicate on the "price" field.
func PriceNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldPrice))
}

// CurrencyCodeEQ applies the EQ predicate on the "currency_code" field.
func CurrencyCodeEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldCurrencyCode, v))
}

// CurrencyCodeNEQ applies the NEQ predicate on the "currency_code" field.
func CurrencyCodeNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldCurrencyCode, v))
}

// CurrencyCodeIn applies the In predicate on the "currency_code" field.
func CurrencyCodeIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeNotIn applies the NotIn predicate on the "currency_code" field.
func CurrencyCodeNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeGT applies the GT predicate on the "currency_code" field.
func CurrencyCodeGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldCurrencyCode, v))
}

// CurrencyCodeGTE applies the GTE predicate on the "currency_code" field.
func CurrencyCodeGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldCurrencyCode, v))
}

// CurrencyCodeLT applies the LT predicate on the "currency_code" field.
func CurrencyCodeLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldCurrencyCode, v))
}

// CurrencyCodeLTE applies the LTE predicate on the "currency_code" field.
func CurrencyCodeLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldCurrencyCode, v))
}

// CurrencyCodeContains applies the Contains predicate on the "currency_code" field.
func CurrencyCodeContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldCurrencyCode, v))
}

// CurrencyCodeHasPrefix applies the HasPrefix predicate on the "currency_code" field.
func CurrencyCodeHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldCurrencyCode, v))
}

// CurrencyCodeHasSuffix applies the HasSuffix predicate on the "currency_code" field.
func CurrencyCodeHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldCurrencyCode, v))
}

// CurrencyCodeIsNil applies the IsNil predicate on the "currency_code" field.
func CurrencyCodeIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldCurrencyCode))
}

// CurrencyCodeNotNil applies the NotNil predicate on the "currency_code" field.
func CurrencyCodeNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldCurrencyCode))
}

// CurrencyCodeEqualFold applies the EqualFold predicate on the "currency_code" field.
func CurrencyCodeEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldCurrencyCode, v))
}

// CurrencyCodeContainsFold applies the ContainsFold predicate on the "currency_code" field.
func CurrencyCodeContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldCurrencyCode, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldScore, v))
}

// ScoreIsNil applies the IsNil predicate on the "score" field.
func ScoreIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldScore))
}

// ScoreNotNil applies the NotNil predicate on the "score" field.
func ScoreNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldScore))
}

// AltitudeEQ applies the EQ predicate on the "altitude" field.
func AltitudeEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldAltitude, v))
}

// AltitudeNEQ applies the NEQ predicate on the "altitude" field.
func AltitudeNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldAltitude, v))
}

// AltitudeIn applies the In predicate on the "altitude" field.
func AltitudeIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldAltitude, vs...))
}

// AltitudeNotIn applies the NotIn predicate on the "altitude" field.
func AltitudeNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldAltitude, vs...))
}

// AltitudeGT applies the GT predicate on the "altitude" field.
func AltitudeGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldAltitude, v))
}

// AltitudeGTE applies the GTE predicate on the "altitude" field.
func AltitudeGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldAltitude, v))
}

// AltitudeLT applies the LT predicate on the "altitude" field.
func AltitudeLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldAltitude, v))
}

// AltitudeLTE applies the LTE predicate on the "altitude" field.
func AltitudeLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldAltitude, v))
}

// AltitudeContains applies the Contains predicate on the "altitude" field.
func AltitudeContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldAltitude, v))
}

// AltitudeHasPrefix applies the HasPrefix predicate on the "altitude" field.
func AltitudeHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldAltitude, v))
}

// AltitudeHasSuffix applies the HasSuffix predicate on the "altitude" field.
func AltitudeHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldAltitude, v))
}

// AltitudeIsNil applies the IsNil predicate on the "altitude" field.
func AltitudeIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldAltitude))
}

// AltitudeNotNil applies the NotNil predicate on the "altitude" field.
func AltitudeNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldAltitude))
}

// AltitudeEqualFold applies the EqualFold predicate on the "altitude" field.
func AltitudeEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldAltitude, v))
}

// AltitudeContainsFold applies the ContainsFold predicate on the "altitude" field.
func AltitudeContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldAltitude, v))
}

// VarietyEQ applies the EQ predicate on the "variety" field.
func VarietyEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldVariety, v))
}

// VarietyNEQ applies the NEQ predicate on the "variety" field.
func VarietyNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldVariety, v))
}

// VarietyIn applies the In predicate on the "variety" field.
func VarietyIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldVariety, vs...))
}

// VarietyNotIn applies the NotIn predicate on the "variety" field.
func VarietyNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldVariety, vs...))
}

// VarietyGT applies the GT predicate on the "variety" field.
func VarietyGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldVariety, v))
}

// VarietyGTE applies the GTE predicate on the "variety" field.
func VarietyGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldVariety, v))
}

// VarietyLT applies the LT predicate on the "variety" field.
func VarietyLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldVariety, v))
}

// VarietyLTE applies the LTE predicate on the "variety" field.
func VarietyLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldVariety, v))
}

// VarietyContains applies the Contains predicate on the "variety" field.
func VarietyContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldVariety, v))
}

// VarietyHasPrefix applies the HasPrefix predicate on the "variety" field.
func VarietyHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldVariety, v))
}

// VarietyHasSuffix applies the HasSuffix predicate on the "variety" field.
func VarietyHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldVariety, v))
}

// VarietyIsNil applies the IsNil predicate on the "variety" field.
func VarietyIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldVariety))
}

// VarietyNotNil applies the NotNil predicate on the "variety" field.
func VarietyNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldVariety))
}

// VarietyEqualFold applies the EqualFold predicate on the "variety" field.
func VarietyEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldVariety, v))
}

// VarietyContainsFold applies the ContainsFold predicate on the "variety" field.
func VarietyContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldVariety, v))
}

// TastingNotesEQ applies the EQ predicate on the "tasting_notes" field.
func TastingNotesEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldTastingNotes, v))
}

// TastingNotesNEQ applies the NEQ predicate on the "tasting_notes" field.
func TastingNotesNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldTastingNotes, v))
}

// TastingNotesIn applies the In predicate on the "tasting_notes" field.
func TastingNotesIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldTastingNotes, vs...))
}

// TastingNotesNotIn applies the NotIn predicate on the "tasting_notes" field.
func TastingNotesNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldTastingNotes, vs...))
}

// TastingNotesGT applies the GT predicate on the "tasting_notes" field.
func TastingNotesGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldTastingNotes, v))
}

// TastingNotesGTE applies the GTE predicate on the "tasting_notes" field.
func TastingNotesGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldTastingNotes, v))
}

// TastingNotesLT applies the LT predicate on the "tasting_notes" field.
func TastingNotesLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldTastingNotes, v))
}

// TastingNotesLTE applies the LTE predicate on the "tasting_notes" field.
func TastingNotesLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldTastingNotes, v))
}

// TastingNotesContains applies the Contains predicate on the "tasting_notes" field.
func TastingNotesContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldTastingNotes, v))
}

// TastingNotesHasPrefix applies the HasPrefix predicate on the "tasting_notes" field.
func TastingNotesHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldTastingNotes, v))
}

// TastingNotesHasSuffix applies the HasSuffix predicate on the "tasting_notes" field.
func TastingNotesHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldTastingNotes, v))
}

// TastingNotesIsNil applies the IsNil predicate on the "tasting_notes" field.
func TastingNotesIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldTastingNotes))
}

// TastingNotesNotNil applies the NotNil predicate on the "tasting_notes" field.
func TastingNotesNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldTastingNotes))
}

// TastingNotesEqualFold applies the EqualFold predicate on the "tasting_notes" field.
func TastingNotesEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldTastingNotes, v))
}

// TastingNotesContainsFold applies the ContainsFold predicate on the "tasting_notes" field.
func TastingNotesContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldTastingNotes, v))
}

// AvailableEQ applies the EQ predicate on the "available" field.
func AvailableEQ(v bool) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldAvailable, v))
}

// AvailableNEQ applies the NEQ predicate on the "available" field.
func AvailableNEQ(v bool) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldAvailable, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSupplier applies the HasEdge predicate on the "supplier" edge.
func HasSupplier() predicate.Listing {
	return predicate.Listing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SupplierTable, SupplierColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSupplierWith applies the HasEdge predicate on the "supplier" edge with a given conditions (other predicates).
func HasSupplierWith(preds ...predicate.Supplier) predicate.Listing {
	return predicate.Listing(func(s *sql.Selector) {
		step := newSupplierStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Listing) predicate.Listing {
	return predicate.Listing(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Listing) predicate.Listing {
	return predicate.Listing(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Listing) predicate.Listing {
	return predicate.Listing(sql.NotPredicates(p))
}
