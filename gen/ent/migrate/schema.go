// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditColumns holds the columns for the "audit" table.
	AuditColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "document_key", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "ready"},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "current_step", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "total_items", Type: field.TypeInt, Default: 0},
		{Name: "result_summary", Type: field.TypeJSON, Nullable: true},
		{Name: "invoice_header", Type: field.TypeJSON, Nullable: true},
		{Name: "consistency_errors", Type: field.TypeJSON, Nullable: true},
		{Name: "report_path", Type: field.TypeString, Nullable: true},
		{Name: "document_xml", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// AuditTable holds the schema information for the "audit" table.
	AuditTable = &schema.Table{
		Name:       "audit",
		Columns:    AuditColumns,
		PrimaryKey: []*schema.Column{AuditColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "audit_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditColumns[3], AuditColumns[13]},
			},
			{
				Name:    "audit_document_key",
				Unique:  false,
				Columns: []*schema.Column{AuditColumns[1]},
			},
		},
	}
	// AuditItemColumns holds the columns for the "audit_item" table.
	AuditItemColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "item_index", Type: field.TypeInt},
		{Name: "product_code", Type: field.TypeString},
		{Name: "product_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "issues", Type: field.TypeJSON, Nullable: true},
		{Name: "detail", Type: field.TypeJSON, Nullable: true},
		{Name: "audit_id", Type: field.TypeUUID},
	}
	// AuditItemTable holds the schema information for the "audit_item" table.
	AuditItemTable = &schema.Table{
		Name:       "audit_item",
		Columns:    AuditItemColumns,
		PrimaryKey: []*schema.Column{AuditItemColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_item_audit_items",
				Columns:    []*schema.Column{AuditItemColumns[7]},
				RefColumns: []*schema.Column{AuditColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "audititem_audit_id_item_index",
				Unique:  true,
				Columns: []*schema.Column{AuditItemColumns[7], AuditItemColumns[1]},
			},
			{
				Name:    "audititem_audit_id_status",
				Unique:  false,
				Columns: []*schema.Column{AuditItemColumns[7], AuditItemColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditTable,
		AuditItemTable,
	}
)

func init() {
	AuditTable.Annotation = &entsql.Annotation{
		Table: "audit",
	}
	AuditItemTable.ForeignKeys[0].RefTable = AuditTable
	AuditItemTable.Annotation = &entsql.Annotation{
		Table: "audit_item",
	}
}
