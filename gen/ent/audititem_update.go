// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/audittax/audittax/gen/ent/audit"
	"github.com/audittax/audittax/gen/ent/audititem"
	"github.com/audittax/audittax/gen/ent/predicate"
	"github.com/google/uuid"
)

// AuditItemUpdate is the builder for updating AuditItem entities.
type AuditItemUpdate struct {
	config
	hooks    []Hook
	mutation *AuditItemMutation
}

// Where appends a list predicates to the AuditItemUpdate builder.
func (_u *AuditItemUpdate) Where(ps ...predicate.AuditItem) *AuditItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAuditID sets the "audit_id" field.
func (_u *AuditItemUpdate) SetAuditID(v uuid.UUID) *AuditItemUpdate {
	_u.mutation.SetAuditID(v)
	return _u
}

// SetNillableAuditID sets the "audit_id" field if the given value is not nil.
func (_u *AuditItemUpdate) SetNillableAuditID(v *uuid.UUID) *AuditItemUpdate {
	if v != nil {
		_u.SetAuditID(*v)
	}
	return _u
}

// SetItemIndex sets the "item_index" field.
func (_u *AuditItemUpdate) SetItemIndex(v int) *AuditItemUpdate {
	_u.mutation.ResetItemIndex()
	_u.mutation.SetItemIndex(v)
	return _u
}

// SetNillableItemIndex sets the "item_index" field if the given value is not nil.
func (_u *AuditItemUpdate) SetNillableItemIndex(v *int) *AuditItemUpdate {
	if v != nil {
		_u.SetItemIndex(*v)
	}
	return _u
}

// AddItemIndex adds value to the "item_index" field.
func (_u *AuditItemUpdate) AddItemIndex(v int) *AuditItemUpdate {
	_u.mutation.AddItemIndex(v)
	return _u
}

// SetProductCode sets the "product_code" field.
func (_u *AuditItemUpdate) SetProductCode(v string) *AuditItemUpdate {
	_u.mutation.SetProductCode(v)
	return _u
}

// SetNillableProductCode sets the "product_code" field if the given value is not nil.
func (_u *AuditItemUpdate) SetNillableProductCode(v *string) *AuditItemUpdate {
	if v != nil {
		_u.SetProductCode(*v)
	}
	return _u
}

// SetProductName sets the "product_name" field.
func (_u *AuditItemUpdate) SetProductName(v string) *AuditItemUpdate {
	_u.mutation.SetProductName(v)
	return _u
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (_u *AuditItemUpdate) SetNillableProductName(v *string) *AuditItemUpdate {
	if v != nil {
		_u.SetProductName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AuditItemUpdate) SetStatus(v string) *AuditItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AuditItemUpdate) SetNillableStatus(v *string) *AuditItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIssues sets the "issues" field.
func (_u *AuditItemUpdate) SetIssues(v []string) *AuditItemUpdate {
	_u.mutation.SetIssues(v)
	return _u
}

// AppendIssues appends value to the "issues" field.
func (_u *AuditItemUpdate) AppendIssues(v []string) *AuditItemUpdate {
	_u.mutation.AppendIssues(v)
	return _u
}

// ClearIssues clears the value of the "issues" field.
func (_u *AuditItemUpdate) ClearIssues() *AuditItemUpdate {
	_u.mutation.ClearIssues()
	return _u
}

// SetDetail sets the "detail" field.
func (_u *AuditItemUpdate) SetDetail(v json.RawMessage) *AuditItemUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// AppendDetail appends value to the "detail" field.
func (_u *AuditItemUpdate) AppendDetail(v json.RawMessage) *AuditItemUpdate {
	_u.mutation.AppendDetail(v)
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *AuditItemUpdate) ClearDetail() *AuditItemUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_u *AuditItemUpdate) SetAudit(v *Audit) *AuditItemUpdate {
	return _u.SetAuditID(v.ID)
}

// Mutation returns the AuditItemMutation object of the builder.
func (_u *AuditItemUpdate) Mutation() *AuditItemMutation {
	return _u.mutation
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (_u *AuditItemUpdate) ClearAudit() *AuditItemUpdate {
	_u.mutation.ClearAudit()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditItemUpdate) check() error {
	if v, ok := _u.mutation.ItemIndex(); ok {
		if err := audititem.ItemIndexValidator(v); err != nil {
			return &ValidationError{Name: "item_index", err: fmt.Errorf(`ent: validator failed for field "AuditItem.item_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProductCode(); ok {
		if err := audititem.ProductCodeValidator(v); err != nil {
			return &ValidationError{Name: "product_code", err: fmt.Errorf(`ent: validator failed for field "AuditItem.product_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProductName(); ok {
		if err := audititem.ProductNameValidator(v); err != nil {
			return &ValidationError{Name: "product_name", err: fmt.Errorf(`ent: validator failed for field "AuditItem.product_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := audititem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AuditItem.status": %w`, err)}
		}
	}
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditItem.audit"`)
	}
	return nil
}

func (_u *AuditItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(audititem.Table, audititem.Columns, sqlgraph.NewFieldSpec(audititem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemIndex(); ok {
		_spec.SetField(audititem.FieldItemIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemIndex(); ok {
		_spec.AddField(audititem.FieldItemIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProductCode(); ok {
		_spec.SetField(audititem.FieldProductCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProductName(); ok {
		_spec.SetField(audititem.FieldProductName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(audititem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Issues(); ok {
		_spec.SetField(audititem.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audititem.FieldIssues, value)
		})
	}
	if _u.mutation.IssuesCleared() {
		_spec.ClearField(audititem.FieldIssues, field.TypeJSON)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(audititem.FieldDetail, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetail(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audititem.FieldDetail, value)
		})
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(audititem.FieldDetail, field.TypeJSON)
	}
	if _u.mutation.AuditCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   audititem.AuditTable,
			Columns: []string{audititem.AuditColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audit.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   audititem.AuditTable,
			Columns: []string{audititem.AuditColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{audititem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditItemUpdateOne is the builder for updating a single AuditItem entity.
type AuditItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditItemMutation
}

// SetAuditID sets the "audit_id" field.
func (_u *AuditItemUpdateOne) SetAuditID(v uuid.UUID) *AuditItemUpdateOne {
	_u.mutation.SetAuditID(v)
	return _u
}

// SetNillableAuditID sets the "audit_id" field if the given value is not nil.
func (_u *AuditItemUpdateOne) SetNillableAuditID(v *uuid.UUID) *AuditItemUpdateOne {
	if v != nil {
		_u.SetAuditID(*v)
	}
	return _u
}

// SetItemIndex sets the "item_index" field.
func (_u *AuditItemUpdateOne) SetItemIndex(v int) *AuditItemUpdateOne {
	_u.mutation.ResetItemIndex()
	_u.mutation.SetItemIndex(v)
	return _u
}

// SetNillableItemIndex sets the "item_index" field if the given value is not nil.
func (_u *AuditItemUpdateOne) SetNillableItemIndex(v *int) *AuditItemUpdateOne {
	if v != nil {
		_u.SetItemIndex(*v)
	}
	return _u
}

// AddItemIndex adds value to the "item_index" field.
func (_u *AuditItemUpdateOne) AddItemIndex(v int) *AuditItemUpdateOne {
	_u.mutation.AddItemIndex(v)
	return _u
}

// SetProductCode sets the "product_code" field.
func (_u *AuditItemUpdateOne) SetProductCode(v string) *AuditItemUpdateOne {
	_u.mutation.SetProductCode(v)
	return _u
}

// SetNillableProductCode sets the "product_code" field if the given value is not nil.
func (_u *AuditItemUpdateOne) SetNillableProductCode(v *string) *AuditItemUpdateOne {
	if v != nil {
		_u.SetProductCode(*v)
	}
	return _u
}

// SetProductName sets the "product_name" field.
func (_u *AuditItemUpdateOne) SetProductName(v string) *AuditItemUpdateOne {
	_u.mutation.SetProductName(v)
	return _u
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (_u *AuditItemUpdateOne) SetNillableProductName(v *string) *AuditItemUpdateOne {
	if v != nil {
		_u.SetProductName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AuditItemUpdateOne) SetStatus(v string) *AuditItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AuditItemUpdateOne) SetNillableStatus(v *string) *AuditItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIssues sets the "issues" field.
func (_u *AuditItemUpdateOne) SetIssues(v []string) *AuditItemUpdateOne {
	_u.mutation.SetIssues(v)
	return _u
}

// AppendIssues appends value to the "issues" field.
func (_u *AuditItemUpdateOne) AppendIssues(v []string) *AuditItemUpdateOne {
	_u.mutation.AppendIssues(v)
	return _u
}

// ClearIssues clears the value of the "issues" field.
func (_u *AuditItemUpdateOne) ClearIssues() *AuditItemUpdateOne {
	_u.mutation.ClearIssues()
	return _u
}

// SetDetail sets the "detail" field.
func (_u *AuditItemUpdateOne) SetDetail(v json.RawMessage) *AuditItemUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// AppendDetail appends value to the "detail" field.
func (_u *AuditItemUpdateOne) AppendDetail(v json.RawMessage) *AuditItemUpdateOne {
	_u.mutation.AppendDetail(v)
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *AuditItemUpdateOne) ClearDetail() *AuditItemUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_u *AuditItemUpdateOne) SetAudit(v *Audit) *AuditItemUpdateOne {
	return _u.SetAuditID(v.ID)
}

// Mutation returns the AuditItemMutation object of the builder.
func (_u *AuditItemUpdateOne) Mutation() *AuditItemMutation {
	return _u.mutation
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (_u *AuditItemUpdateOne) ClearAudit() *AuditItemUpdateOne {
	_u.mutation.ClearAudit()
	return _u
}

// Where appends a list predicates to the AuditItemUpdate builder.
func (_u *AuditItemUpdateOne) Where(ps ...predicate.AuditItem) *AuditItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditItemUpdateOne) Select(field string, fields ...string) *AuditItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditItem entity.
func (_u *AuditItemUpdateOne) Save(ctx context.Context) (*AuditItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditItemUpdateOne) SaveX(ctx context.Context) *AuditItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditItemUpdateOne) check() error {
	if v, ok := _u.mutation.ItemIndex(); ok {
		if err := audititem.ItemIndexValidator(v); err != nil {
			return &ValidationError{Name: "item_index", err: fmt.Errorf(`ent: validator failed for field "AuditItem.item_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProductCode(); ok {
		if err := audititem.ProductCodeValidator(v); err != nil {
			return &ValidationError{Name: "product_code", err: fmt.Errorf(`ent: validator failed for field "AuditItem.product_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProductName(); ok {
		if err := audititem.ProductNameValidator(v); err != nil {
			return &ValidationError{Name: "product_name", err: fmt.Errorf(`ent: validator failed for field "AuditItem.product_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := audititem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AuditItem.status": %w`, err)}
		}
	}
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditItem.audit"`)
	}
	return nil
}

func (_u *AuditItemUpdateOne) sqlSave(ctx context.Context) (_node *AuditItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(audititem.Table, audititem.Columns, sqlgraph.NewFieldSpec(audititem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, audititem.FieldID)
		for _, f := range fields {
			if !audititem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != audititem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemIndex(); ok {
		_spec.SetField(audititem.FieldItemIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemIndex(); ok {
		_spec.AddField(audititem.FieldItemIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProductCode(); ok {
		_spec.SetField(audititem.FieldProductCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProductName(); ok {
		_spec.SetField(audititem.FieldProductName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(audititem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Issues(); ok {
		_spec.SetField(audititem.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audititem.FieldIssues, value)
		})
	}
	if _u.mutation.IssuesCleared() {
		_spec.ClearField(audititem.FieldIssues, field.TypeJSON)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(audititem.FieldDetail, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetail(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audititem.FieldDetail, value)
		})
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(audititem.FieldDetail, field.TypeJSON)
	}
	if _u.mutation.AuditCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   audititem.AuditTable,
			Columns: []string{audititem.AuditColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audit.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   audititem.AuditTable,
			Columns: []string{audititem.AuditColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AuditItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{audititem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
