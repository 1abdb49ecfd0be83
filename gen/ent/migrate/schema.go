// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractionRunsColumns holds the columns for the "extraction_runs" table.
	ExtractionRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString},
		{Name: "locale", Type: field.TypeString, Nullable: true},
		{Name: "text_bytes", Type: field.TypeInt, Default: 0},
		{Name: "chunks_total", Type: field.TypeInt, Default: 0},
		{Name: "chunks_processed", Type: field.TypeInt, Default: 0},
		{Name: "chunks_failed", Type: field.TypeInt, Default: 0},
		{Name: "duplicates_skipped", Type: field.TypeInt, Default: 0},
		{Name: "listings_inserted", Type: field.TypeInt, Default: 0},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "model_params", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "supplier_id", Type: field.TypeUUID, Nullable: true},
	}
	// ExtractionRunsTable holds the schema information for the "extraction_runs" table.
	ExtractionRunsTable = &schema.Table{
		Name:       "extraction_runs",
		Columns:    ExtractionRunsColumns,
		PrimaryKey: []*schema.Column{ExtractionRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_runs_suppliers_runs",
				Columns:    []*schema.Column{ExtractionRunsColumns[15]},
				RefColumns: []*schema.Column{SuppliersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractionrun_supplier_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionRunsColumns[15], ExtractionRunsColumns[1], ExtractionRunsColumns[13]},
			},
		},
	}
	// ListingsColumns holds the columns for the "listings" table.
	ListingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "normalized_name", Type: field.TypeString},
		{Name: "origin", Type: field.TypeString, Nullable: true},
		{Name: "region", Type: field.TypeString, Nullable: true},
		{Name: "process", Type: field.TypeString, Nullable: true},
		{Name: "price", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "currency_code", Type: field.TypeString, Nullable: true, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "score", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "altitude", Type: field.TypeString, Nullable: true},
		{Name: "variety", Type: field.TypeString, Nullable: true},
		{Name: "tasting_notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "available", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "supplier_id", Type: field.TypeUUID},
	}
	// ListingsTable holds the schema information for the "listings" table.
	ListingsTable = &schema.Table{
		Name:       "listings",
		Columns:    ListingsColumns,
		PrimaryKey: []*schema.Column{ListingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "listings_suppliers_listings",
				Columns:    []*schema.Column{ListingsColumns[15]},
				RefColumns: []*schema.Column{SuppliersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "listing_supplier_id_normalized_name",
				Unique:  true,
				Columns: []*schema.Column{ListingsColumns[15], ListingsColumns[2]},
			},
			{
				Name:    "listing_supplier_id_available",
				Unique:  false,
				Columns: []*schema.Column{ListingsColumns[15], ListingsColumns[12]},
			},
		},
	}
	// SuppliersColumns holds the columns for the "suppliers" table.
	SuppliersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "country", Type: field.TypeString, Nullable: true},
		{Name: "default_currency", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SuppliersTable holds the schema information for the "suppliers" table.
	SuppliersTable = &schema.Table{
		Name:       "suppliers",
		Columns:    SuppliersColumns,
		PrimaryKey: []*schema.Column{SuppliersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractionRunsTable,
		ListingsTable,
		SuppliersTable,
	}
)

func init() {
	ExtractionRunsTable.ForeignKeys[0].RefTable = SuppliersTable
	ExtractionRunsTable.Annotation = &entsql.Annotation{
		Table: "extraction_runs",
	}
	ListingsTable.ForeignKeys[0].RefTable = SuppliersTable
	ListingsTable.Annotation = &entsql.Annotation{
		Table: "listings",
	}
	SuppliersTable.Annotation = &entsql.Annotation{
		Table: "suppliers",
	}
}
