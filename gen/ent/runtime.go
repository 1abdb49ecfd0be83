// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/kahawa-labs/beanmarket/db/ent/schema"
	"github.com/kahawa-labs/beanmarket/gen/ent/extractionrun"
	"github.com/kahawa-labs/beanmarket/gen/ent/listing"
	"github.com/kahawa-labs/beanmarket/gen/ent/supplier"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractionrunFields := schema.ExtractionRun{}.Fields()
	_ = extractionrunFields
	// extractionrunDescStatus is the schema descriptor for status field.
	extractionrunDescStatus := extractionrunFields[2].Descriptor()
	// extractionrun.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractionrun.StatusValidator = extractionrunDescStatus.Validators[0].(func(string) error)
	// extractionrunDescTextBytes is the schema descriptor for text_bytes field.
	extractionrunDescTextBytes := extractionrunFields[4].Descriptor()
	// extractionrun.DefaultTextBytes holds the default value on creation for the text_bytes field.
	extractionrun.DefaultTextBytes = extractionrunDescTextBytes.Default.(int)
	// extractionrunDescChunksTotal is the schema descriptor for chunks_total field.
	extractionrunDescChunksTotal := extractionrunFields[5].Descriptor()
	// extractionrun.DefaultChunksTotal holds the default value on creation for the chunks_total field.
	extractionrun.DefaultChunksTotal = extractionrunDescChunksTotal.Default.(int)
	// extractionrunDescChunksProcessed is the schema descriptor for chunks_processed field.
	extractionrunDescChunksProcessed := extractionrunFields[6].Descriptor()
	// extractionrun.DefaultChunksProcessed holds the default value on creation for the chunks_processed field.
	extractionrun.DefaultChunksProcessed = extractionrunDescChunksProcessed.Default.(int)
	// extractionrunDescChunksFailed is the schema descriptor for chunks_failed field.
	extractionrunDescChunksFailed := extractionrunFields[7].Descriptor()
	// extractionrun.DefaultChunksFailed holds the default value on creation for the chunks_failed field.
	extractionrun.DefaultChunksFailed = extractionrunDescChunksFailed.Default.(int)
	// extractionrunDescDuplicatesSkipped is the schema descriptor for duplicates_skipped field.
	extractionrunDescDuplicatesSkipped := extractionrunFields[8].Descriptor()
	// extractionrun.DefaultDuplicatesSkipped holds the default value on creation for the duplicates_skipped field.
	extractionrun.DefaultDuplicatesSkipped = extractionrunDescDuplicatesSkipped.Default.(int)
	// extractionrunDescListingsInserted is the schema descriptor for listings_inserted field.
	extractionrunDescListingsInserted := extractionrunFields[9].Descriptor()
	// extractionrun.DefaultListingsInserted holds the default value on creation for the listings_inserted field.
	extractionrun.DefaultListingsInserted = extractionrunDescListingsInserted.Default.(int)
	// extractionrunDescStartedAt is the schema descriptor for started_at field.
	extractionrunDescStartedAt := extractionrunFields[14].Descriptor()
	// extractionrun.DefaultStartedAt holds the default value on creation for the started_at field.
	extractionrun.DefaultStartedAt = extractionrunDescStartedAt.Default.(func() time.Time)
	// extractionrunDescID is the schema descriptor for id field.
	extractionrunDescID := extractionrunFields[0].Descriptor()
	// extractionrun.DefaultID holds the default value on creation for the id field.
	extractionrun.DefaultID = extractionrunDescID.Default.(func() uuid.UUID)
	listingFields := schema.Listing{}.Fields()
	_ = listingFields
	// listingDescName is the schema descriptor for name field.
	listingDescName := listingFields[2].Descriptor()
	// listing.NameValidator is a validator for the "name" field. It is called by the builders before save.
	listing.NameValidator = listingDescName.Validators[0].(func(string) error)
	// listingDescNormalizedName is the schema descriptor for normalized_name field.
	listingDescNormalizedName := listingFields[3].Descriptor()
	// listing.NormalizedNameValidator is a validator for the "normalized_name" field. It is called by the builders before save.
	listing.NormalizedNameValidator = listingDescNormalizedName.Validators[0].(func(string) error)
	// listingDescCurrencyCode is the schema descriptor for currency_code field.
	listingDescCurrencyCode := listingFields[8].Descriptor()
	// listing.CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	listing.CurrencyCodeValidator = func() func(string) error {
		validators := listingDescCurrencyCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(currency_code string) error {
			for _, fn := range fns {
				if err := fn(currency_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// listingDescAvailable is the schema descriptor for available field.
	listingDescAvailable := listingFields[13].Descriptor()
	// listing.DefaultAvailable holds the default value on creation for the available field.
	listing.DefaultAvailable = listingDescAvailable.Default.(bool)
	// listingDescCreatedAt is the schema descriptor for created_at field.
	listingDescCreatedAt := listingFields[14].Descriptor()
	// listing.DefaultCreatedAt holds the default value on creation for the created_at field.
	listing.DefaultCreatedAt = listingDescCreatedAt.Default.(func() time.Time)
	// listingDescUpdatedAt is the schema descriptor for updated_at field.
	listingDescUpdatedAt := listingFields[15].Descriptor()
	// listing.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	listing.DefaultUpdatedAt = listingDescUpdatedAt.Default.(func() time.Time)
	// listing.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	listing.UpdateDefaultUpdatedAt = listingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// listingDescID is the schema descriptor for id field.
	listingDescID := listingFields[0].Descriptor()
	// listing.DefaultID holds the default value on creation for the id field.
	listing.DefaultID = listingDescID.Default.(func() uuid.UUID)
	supplierFields := schema.Supplier{}.Fields()
	_ = supplierFields
	// supplierDescName is the schema descriptor for name field.
	supplierDescName := supplierFields[1].Descriptor()
	// supplier.NameValidator is a validator for the "name" field. It is called by the builders before save.
	supplier.NameValidator = supplierDescName.Validators[0].(func(string) error)
	// supplierDescDefaultCurrency is the schema descriptor for default_currency field.
	supplierDescDefaultCurrency := supplierFields[3].Descriptor()
	// supplier.DefaultCurrencyValidator is a validator for the "default_currency" field. It is called by the builders before save.
	supplier.DefaultCurrencyValidator = func() func(string) error {
		validators := supplierDescDefaultCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(default_currency string) error {
			for _, fn := range fns {
				if err := fn(default_currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// supplierDescCreatedAt is the schema descriptor for created_at field.
	supplierDescCreatedAt := supplierFields[4].Descriptor()
	// supplier.DefaultCreatedAt holds the default value on creation for the created_at field.
	supplier.DefaultCreatedAt = supplierDescCreatedAt.Default.(func() time.Time)
	// supplierDescUpdatedAt is the schema descriptor for updated_at field.
	supplierDescUpdatedAt := supplierFields[5].Descriptor()
	// supplier.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	supplier.DefaultUpdatedAt = supplierDescUpdatedAt.Default.(func() time.Time)
	// supplier.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	supplier.UpdateDefaultUpdatedAt = supplierDescUpdatedAt.UpdateDefault.(func() time.Time)
	// supplierDescID is the schema descriptor for id field.
	supplierDescID := supplierFields[0].Descriptor()
	// supplier.DefaultID holds the default value on creation for the id field.
	supplier.DefaultID = supplierDescID.Default.(func() uuid.UUID)
}
