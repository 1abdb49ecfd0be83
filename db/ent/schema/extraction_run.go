package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ExtractionRun is the persisted audit record of one pipeline invocation.
type ExtractionRun struct{ ent.Schema }

func (ExtractionRun) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_runs"},
	}
}

func (ExtractionRun) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("supplier_id", uuid.UUID{}).Optional().Nillable(),
		field.String("status").NotEmpty(),
		field.String("locale").Optional().Nillable(),
		field.Int("text_bytes").Default(0),
		field.Int("chunks_total").Default(0),
		field.Int("chunks_processed").Default(0),
		field.Int("chunks_failed").Default(0),
		field.Int("duplicates_skipped").Default(0),
		field.Int("listings_inserted").Default(0),
		field.String("error_code").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.String("model_name").Optional().Nillable(),
		field.JSON("model_params", json.RawMessage{}).Optional(),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "timestamptz"}),
	}
}

func (ExtractionRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("supplier", Supplier.Type).
			Ref("runs").
			Field("supplier_id").
			Unique(),
	}
}

func (ExtractionRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("supplier_id", "status", "started_at"),
	}
}
