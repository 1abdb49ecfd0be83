package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildListingJSONSchema returns a JSON-Schema (draft 2020-12 subset) for one
// extracted catalogue item, as a generic map. Used locally to validate items
// after sanitization; an item failing it is dropped, not fatal.
func BuildListingJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":          map[string]any{"type": "string", "minLength": 1},
			"origin":        map[string]any{"type": "string"},
			"region":        map[string]any{"type": "string"},
			"process":       map[string]any{"type": "string"},
			"price":         map[string]any{"type": "number", "minimum": 0.0},
			"currency_code": map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
			"score":         map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0},
			"altitude":      map[string]any{"type": "string"},
			"variety":       map[string]any{"type": "string"},
			"tasting_notes": map[string]any{"type": "string"},
			"available":     map[string]any{"type": "boolean"},
		},
		"required": []string{"name"},
	}
}

var (
	listingSchemaOnce sync.Once
	listingSchema     *jsonschema.Schema
	listingSchemaErr  error
)

func compiledListingSchema() (*jsonschema.Schema, error) {
	listingSchemaOnce.Do(func() {
		b, err := json.Marshal(BuildListingJSONSchema())
		if err != nil {
			listingSchemaErr = err
			return
		}
		listingSchema, listingSchemaErr = jsonschema.CompileString("listing.schema.json", string(b))
	})
	return listingSchema, listingSchemaErr
}

// ValidateListingItem validates one sanitized item against the listing schema.
func ValidateListingItem(item map[string]any) error {
	sch, err := compiledListingSchema()
	if err != nil {
		return fmt.Errorf("compile listing schema: %w", err)
	}
	return sch.Validate(any(item))
}
