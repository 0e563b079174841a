package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/audittax/audittax/constants"
	"github.com/audittax/audittax/db/ent/schema/utils"

	"github.com/google/uuid"
)

type AuditItem struct{ ent.Schema }

func (AuditItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "audit_item"},
	}
}

func (AuditItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("audit_id", uuid.UUID{}),
		field.Int("item_index").Min(1),
		field.String("product_code").NotEmpty(),
		field.String("product_name").NotEmpty(),
		field.String("status").
			Validate(utils.EnumValidator(constants.ItemStatuses...)),
		field.JSON("issues", []string{}).Optional(),
		field.JSON("detail", json.RawMessage{}).Optional(),
	}
}

func (AuditItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("audit", Audit.Type).
			Ref("items").
			Field("audit_id").
			Unique().
			Required(),
	}
}

func (AuditItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("audit_id", "item_index").Unique(),
		index.Fields("audit_id", "status"),
	}
}
