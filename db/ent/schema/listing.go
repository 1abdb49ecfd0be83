package schema

import (
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

type Listing struct{ ent.Schema }

func (Listing) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "listings"},
	}
}

func (Listing) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("supplier_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		// normalized_name mirrors the pipeline's NormalizedKey so the
		// dedup read stays a single indexed column scan.
		field.String("normalized_name").NotEmpty(),
		field.String("origin").Optional().Nillable(),
		field.String("region").Optional().Nillable(),
		field.String("process").Optional().Nillable(),
		field.Float("price").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("currency_code").Optional().Nillable().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.Float("score").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.String("altitude").Optional().Nillable(),
		field.String("variety").Optional().Nillable(),
		field.String("tasting_notes").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("available").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Listing) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY listings -> ONE supplier (FK: listings.supplier_id)
		edge.From("supplier", Supplier.Type).
			Ref("listings").
			Field("supplier_id").
			Required().
			Unique(),
	}
}

func (Listing) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("supplier_id", "normalized_name").Unique(),
		index.Fields("supplier_id", "available"),
	}
}
