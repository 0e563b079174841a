// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/audittax/audittax/gen/ent/audit"
	"github.com/audittax/audittax/gen/ent/audititem"
	"github.com/google/uuid"
)

// AuditItemCreate is the builder for creating a AuditItem entity.
type AuditItemCreate struct {
	config
	mutation *AuditItemMutation
	hooks    []Hook
}

// SetAuditID sets the "audit_id" field.
func (_c *AuditItemCreate) SetAuditID(v uuid.UUID) *AuditItemCreate {
	_c.mutation.SetAuditID(v)
	return _c
}

// SetItemIndex sets the "item_index" field.
func (_c *AuditItemCreate) SetItemIndex(v int) *AuditItemCreate {
	_c.mutation.SetItemIndex(v)
	return _c
}

// SetProductCode sets the "product_code" field.
func (_c *AuditItemCreate) SetProductCode(v string) *AuditItemCreate {
	_c.mutation.SetProductCode(v)
	return _c
}

// SetProductName sets the "product_name" field.
func (_c *AuditItemCreate) SetProductName(v string) *AuditItemCreate {
	_c.mutation.SetProductName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AuditItemCreate) SetStatus(v string) *AuditItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetIssues sets the "issues" field.
func (_c *AuditItemCreate) SetIssues(v []string) *AuditItemCreate {
	_c.mutation.SetIssues(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *AuditItemCreate) SetDetail(v json.RawMessage) *AuditItemCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AuditItemCreate) SetID(v uuid.UUID) *AuditItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AuditItemCreate) SetNillableID(v *uuid.UUID) *AuditItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_c *AuditItemCreate) SetAudit(v *Audit) *AuditItemCreate {
	return _c.SetAuditID(v.ID)
}

// Mutation returns the AuditItemMutation object of the builder.
func (_c *AuditItemCreate) Mutation() *AuditItemMutation {
	return _c.mutation
}

// Save creates the AuditItem in the database.
func (_c *AuditItemCreate) Save(ctx context.Context) (*AuditItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditItemCreate) SaveX(ctx context.Context) *AuditItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditItemCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := audititem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditItemCreate) check() error {
	if _, ok := _c.mutation.AuditID(); !ok {
		return &ValidationError{Name: "audit_id", err: errors.New(`ent: missing required field "AuditItem.audit_id"`)}
	}
	if _, ok := _c.mutation.ItemIndex(); !ok {
		return &ValidationError{Name: "item_index", err: errors.New(`ent: missing required field "AuditItem.item_index"`)}
	}
	if v, ok := _c.mutation.ItemIndex(); ok {
		if err := audititem.ItemIndexValidator(v); err != nil {
			return &ValidationError{Name: "item_index", err: fmt.Errorf(`ent: validator failed for field "AuditItem.item_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProductCode(); !ok {
		return &ValidationError{Name: "product_code", err: errors.New(`ent: missing required field "AuditItem.product_code"`)}
	}
	if v, ok := _c.mutation.ProductCode(); ok {
		if err := audititem.ProductCodeValidator(v); err != nil {
			return &ValidationError{Name: "product_code", err: fmt.Errorf(`ent: validator failed for field "AuditItem.product_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProductName(); !ok {
		return &ValidationError{Name: "product_name", err: errors.New(`ent: missing required field "AuditItem.product_name"`)}
	}
	if v, ok := _c.mutation.ProductName(); ok {
		if err := audititem.ProductNameValidator(v); err != nil {
			return &ValidationError{Name: "product_name", err: fmt.Errorf(`ent: validator failed for field "AuditItem.product_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AuditItem.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := audititem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AuditItem.status": %w`, err)}
		}
	}
	if len(_c.mutation.AuditIDs()) == 0 {
		return &ValidationError{Name: "audit", err: errors.New(`ent: missing required edge "AuditItem.audit"`)}
	}
	return nil
}

func (_c *AuditItemCreate) sqlSave(ctx context.Context) (*AuditItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuditItemCreate) createSpec() (*AuditItem, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(audititem.Table, sqlgraph.NewFieldSpec(audititem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ItemIndex(); ok {
		_spec.SetField(audititem.FieldItemIndex, field.TypeInt, value)
		_node.ItemIndex = value
	}
	if value, ok := _c.mutation.ProductCode(); ok {
		_spec.SetField(audititem.FieldProductCode, field.TypeString, value)
		_node.ProductCode = value
	}
	if value, ok := _c.mutation.ProductName(); ok {
		_spec.SetField(audititem.FieldProductName, field.TypeString, value)
		_node.ProductName = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(audititem.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Issues(); ok {
		_spec.SetField(audititem.FieldIssues, field.TypeJSON, value)
		_node.Issues = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(audititem.FieldDetail, field.TypeJSON, value)
		_node.Detail = value
	}
	if nodes := _c.mutation.AuditIDs(); len(nodes) > 0 {
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
		_node.AuditID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AuditItemCreateBulk is the builder for creating many AuditItem entities in bulk.
type AuditItemCreateBulk struct {
	config
	err      error
	builders []*AuditItemCreate
}

// Save creates the AuditItem entities in the database.
func (_c *AuditItemCreateBulk) Save(ctx context.Context) ([]*AuditItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AuditItemCreateBulk) SaveX(ctx context.Context) []*AuditItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
