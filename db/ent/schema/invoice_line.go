package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type InvoiceLine struct{ ent.Schema }

func (InvoiceLine) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoice_lines"},
	}
}

func (InvoiceLine) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("invoice_id", uuid.UUID{}),
		// position of the row within the document
		field.Int("line_index").NonNegative(),
		field.String("description").NotEmpty(),
		field.String("quantity").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,4)"}),
		field.String("unit_price").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,4)"}),
		field.String("total").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
	}
}

func (InvoiceLine) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY lines -> ONE invoice (FK: invoice_lines.invoice_id)
		edge.From("invoice", Invoice.Type).
			Ref("lines").
			Field("invoice_id").
			Required().
			Unique(),
	}
}

func (InvoiceLine) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_id", "line_index").Unique(),
	}
}
