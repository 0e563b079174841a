// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/audittax/audittax/gen/ent/audit"
	"github.com/audittax/audittax/gen/ent/audititem"
	"github.com/google/uuid"
)

// AuditItem is the model entity for the AuditItem schema.
type AuditItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// AuditID holds the value of the "audit_id" field.
	AuditID uuid.UUID `json:"audit_id,omitempty"`
	// ItemIndex holds the value of the "item_index" field.
	ItemIndex int `json:"item_index,omitempty"`
	// ProductCode holds the value of the "product_code" field.
	ProductCode string `json:"product_code,omitempty"`
	// ProductName holds the value of the "product_name" field.
	ProductName string `json:"product_name,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Issues holds the value of the "issues" field.
	Issues []string `json:"issues,omitempty"`
	// Detail holds the value of the "detail" field.
	Detail json.RawMessage `json:"detail,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AuditItemQuery when eager-loading is set.
	Edges        AuditItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AuditItemEdges holds the relations/edges for other nodes in the graph.
type AuditItemEdges struct {
	// Audit holds the value of the audit edge.
	Audit *Audit `json:"audit,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AuditOrErr returns the Audit value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditItemEdges) AuditOrErr() (*Audit, error) {
	if e.Audit != nil {
		return e.Audit, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: audit.Label}
	}
	return nil, &NotLoadedError{edge: "audit"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AuditItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case audititem.FieldIssues, audititem.FieldDetail:
			values[i] = new([]byte)
		case audititem.FieldItemIndex:
			values[i] = new(sql.NullInt64)
		case audititem.FieldProductCode, audititem.FieldProductName, audititem.FieldStatus:
			values[i] = new(sql.NullString)
		case audititem.FieldID, audititem.FieldAuditID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AuditItem fields.
func (_m *AuditItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case audititem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case audititem.FieldAuditID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field audit_id", values[i])
			} else if value != nil {
				_m.AuditID = *value
			}
		case audititem.FieldItemIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_index", values[i])
			} else if value.Valid {
				_m.ItemIndex = int(value.Int64)
			}
		case audititem.FieldProductCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product_code", values[i])
			} else if value.Valid {
				_m.ProductCode = value.String
			}
		case audititem.FieldProductName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product_name", values[i])
			} else if value.Valid {
				_m.ProductName = value.String
			}
		case audititem.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case audititem.FieldIssues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field issues", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Issues); err != nil {
					return fmt.Errorf("unmarshal field issues: %w", err)
				}
			}
		case audititem.FieldDetail:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field detail", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Detail); err != nil {
					return fmt.Errorf("unmarshal field detail: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AuditItem.
// This includes values selected through modifiers, order, etc.
func (_m *AuditItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAudit queries the "audit" edge of the AuditItem entity.
func (_m *AuditItem) QueryAudit() *AuditQuery {
	return NewAuditItemClient(_m.config).QueryAudit(_m)
}

// Update returns a builder for updating this AuditItem.
// Note that you need to call AuditItem.Unwrap() before calling this method if this AuditItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AuditItem) Update() *AuditItemUpdateOne {
	return NewAuditItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AuditItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AuditItem) Unwrap() *AuditItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AuditItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AuditItem) String() string {
	var builder strings.Builder
	builder.WriteString("AuditItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("audit_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AuditID))
	builder.WriteString(", ")
	builder.WriteString("item_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemIndex))
	builder.WriteString(", ")
	builder.WriteString("product_code=")
	builder.WriteString(_m.ProductCode)
	builder.WriteString(", ")
	builder.WriteString("product_name=")
	builder.WriteString(_m.ProductName)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("issues=")
	builder.WriteString(fmt.Sprintf("%v", _m.Issues))
	builder.WriteString(", ")
	builder.WriteString("detail=")
	builder.WriteString(fmt.Sprintf("%v", _m.Detail))
	builder.WriteByte(')')
	return builder.String()
}

// AuditItems is a parsable slice of AuditItem.
type AuditItems []*AuditItem
