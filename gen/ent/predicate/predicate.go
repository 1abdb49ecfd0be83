// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExtractionRun is the predicate function for extractionrun builders.
type ExtractionRun func(*sql.Selector)

// Listing is the predicate function for listing builders.
type Listing func(*sql.Selector)

// Supplier is the predicate function for supplier builders.
type Supplier func(*sql.Selector)
