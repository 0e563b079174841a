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
	"github.com/audittax/audittax/constants"
	"github.com/audittax/audittax/db/ent/schema/utils"

	"github.com/google/uuid"
)

type Audit struct{ ent.Schema }

func (Audit) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "audit"},
	}
}

func (Audit) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("document_key").NotEmpty(),
		field.String("filename").NotEmpty(),
		field.String("status").
			Default(string(constants.JobStatusReady)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.Int("progress").Default(0).Min(0).Max(100),
		field.String("current_step").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.Int("total_items").Default(0),
		field.JSON("result_summary", json.RawMessage{}).Optional(),
		field.JSON("invoice_header", json.RawMessage{}).Optional(),
		field.JSON("consistency_errors", json.RawMessage{}).Optional(),
		field.String("report_path").Optional().Nillable(),
		field.String("document_xml").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("completed_at").Optional().Nillable(),
	}
}

func (Audit) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("items", AuditItem.Type),
	}
}

func (Audit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("document_key"),
	}
}
