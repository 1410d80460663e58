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

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("invoice_number").NotEmpty(),
		// Dates stay verbatim as printed on the document.
		field.String("issue_date").NotEmpty(),
		field.String("supplier_name").NotEmpty(),
		field.String("supplier_tax_id").Optional().Nillable(),
		field.String("supplier_address").Optional().Nillable(),
		field.String("customer_name").NotEmpty(),
		field.String("customer_tax_id").Optional().Nillable(),
		field.String("customer_address").Optional().Nillable(),
		// Amounts are stored as strings to keep decimal exactness
		// through the driver; postgres gets a real numeric column.
		field.String("subtotal").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("tax").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("total").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("currency_code").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.String("template_name").NotEmpty(),
		field.JSON("extra", json.RawMessage{}).Optional(),
		field.String("raw_text").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE invoice -> MANY lines
		edge.To("lines", InvoiceLine.Type),
		// ONE invoice -> MANY jobs
		edge.To("jobs", ParseJob.Type),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_number"),
		index.Fields("created_at"),
	}
}
