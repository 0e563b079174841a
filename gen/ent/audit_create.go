// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/audittax/audittax/gen/ent/audit"
	"github.com/audittax/audittax/gen/ent/audititem"
	"github.com/google/uuid"
)

// AuditCreate is the builder for creating a Audit entity.
type AuditCreate struct {
	config
	mutation *AuditMutation
	hooks    []Hook
}

// SetDocumentKey sets the "document_key" field.
func (_c *AuditCreate) SetDocumentKey(v string) *AuditCreate {
	_c.mutation.SetDocumentKey(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *AuditCreate) SetFilename(v string) *AuditCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AuditCreate) SetStatus(v string) *AuditCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AuditCreate) SetNillableStatus(v *string) *AuditCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *AuditCreate) SetProgress(v int) *AuditCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *AuditCreate) SetNillableProgress(v *int) *AuditCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetCurrentStep sets the "current_step" field.
func (_c *AuditCreate) SetCurrentStep(v string) *AuditCreate {
	_c.mutation.SetCurrentStep(v)
	return _c
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_c *AuditCreate) SetNillableCurrentStep(v *string) *AuditCreate {
	if v != nil {
		_c.SetCurrentStep(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AuditCreate) SetErrorMessage(v string) *AuditCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AuditCreate) SetNillableErrorMessage(v *string) *AuditCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetTotalItems sets the "total_items" field.
func (_c *AuditCreate) SetTotalItems(v int) *AuditCreate {
	_c.mutation.SetTotalItems(v)
	return _c
}

// SetNillableTotalItems sets the "total_items" field if the given value is not nil.
func (_c *AuditCreate) SetNillableTotalItems(v *int) *AuditCreate {
	if v != nil {
		_c.SetTotalItems(*v)
	}
	return _c
}

// SetResultSummary sets the "result_summary" field.
func (_c *AuditCreate) SetResultSummary(v json.RawMessage) *AuditCreate {
	_c.mutation.SetResultSummary(v)
	return _c
}

// SetInvoiceHeader sets the "invoice_header" field.
func (_c *AuditCreate) SetInvoiceHeader(v json.RawMessage) *AuditCreate {
	_c.mutation.SetInvoiceHeader(v)
	return _c
}

// SetConsistencyErrors sets the "consistency_errors" field.
func (_c *AuditCreate) SetConsistencyErrors(v json.RawMessage) *AuditCreate {
	_c.mutation.SetConsistencyErrors(v)
	return _c
}

// SetReportPath sets the "report_path" field.
func (_c *AuditCreate) SetReportPath(v string) *AuditCreate {
	_c.mutation.SetReportPath(v)
	return _c
}

// SetNillableReportPath sets the "report_path" field if the given value is not nil.
func (_c *AuditCreate) SetNillableReportPath(v *string) *AuditCreate {
	if v != nil {
		_c.SetReportPath(*v)
	}
	return _c
}

// SetDocumentXML sets the "document_xml" field.
func (_c *AuditCreate) SetDocumentXML(v string) *AuditCreate {
	_c.mutation.SetDocumentXML(v)
	return _c
}

// SetNillableDocumentXML sets the "document_xml" field if the given value is not nil.
func (_c *AuditCreate) SetNillableDocumentXML(v *string) *AuditCreate {
	if v != nil {
		_c.SetDocumentXML(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuditCreate) SetCreatedAt(v time.Time) *AuditCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuditCreate) SetNillableCreatedAt(v *time.Time) *AuditCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AuditCreate) SetCompletedAt(v time.Time) *AuditCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AuditCreate) SetNillableCompletedAt(v *time.Time) *AuditCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AuditCreate) SetID(v uuid.UUID) *AuditCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AuditCreate) SetNillableID(v *uuid.UUID) *AuditCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddItemIDs adds the "items" edge to the AuditItem entity by IDs.
func (_c *AuditCreate) AddItemIDs(ids ...uuid.UUID) *AuditCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the AuditItem entity.
func (_c *AuditCreate) AddItems(v ...*AuditItem) *AuditCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the AuditMutation object of the builder.
func (_c *AuditCreate) Mutation() *AuditMutation {
	return _c.mutation
}

// Save creates the Audit in the database.
func (_c *AuditCreate) Save(ctx context.Context) (*Audit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditCreate) SaveX(ctx context.Context) *Audit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := audit.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := audit.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.TotalItems(); !ok {
		v := audit.DefaultTotalItems
		_c.mutation.SetTotalItems(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := audit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := audit.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditCreate) check() error {
	if _, ok := _c.mutation.DocumentKey(); !ok {
		return &ValidationError{Name: "document_key", err: errors.New(`ent: missing required field "Audit.document_key"`)}
	}
	if v, ok := _c.mutation.DocumentKey(); ok {
		if err := audit.DocumentKeyValidator(v); err != nil {
			return &ValidationError{Name: "document_key", err: fmt.Errorf(`ent: validator failed for field "Audit.document_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Audit.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := audit.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Audit.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Audit.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := audit.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Audit.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "Audit.progress"`)}
	}
	if v, ok := _c.mutation.Progress(); ok {
		if err := audit.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "Audit.progress": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalItems(); !ok {
		return &ValidationError{Name: "total_items", err: errors.New(`ent: missing required field "Audit.total_items"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Audit.created_at"`)}
	}
	return nil
}

func (_c *AuditCreate) sqlSave(ctx context.Context) (*Audit, error) {
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

func (_c *AuditCreate) createSpec() (*Audit, *sqlgraph.CreateSpec) {
	var (
		_node = &Audit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(audit.Table, sqlgraph.NewFieldSpec(audit.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DocumentKey(); ok {
		_spec.SetField(audit.FieldDocumentKey, field.TypeString, value)
		_node.DocumentKey = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(audit.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(audit.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(audit.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.CurrentStep(); ok {
		_spec.SetField(audit.FieldCurrentStep, field.TypeString, value)
		_node.CurrentStep = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(audit.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.TotalItems(); ok {
		_spec.SetField(audit.FieldTotalItems, field.TypeInt, value)
		_node.TotalItems = value
	}
	if value, ok := _c.mutation.ResultSummary(); ok {
		_spec.SetField(audit.FieldResultSummary, field.TypeJSON, value)
		_node.ResultSummary = value
	}
	if value, ok := _c.mutation.InvoiceHeader(); ok {
		_spec.SetField(audit.FieldInvoiceHeader, field.TypeJSON, value)
		_node.InvoiceHeader = value
	}
	if value, ok := _c.mutation.ConsistencyErrors(); ok {
		_spec.SetField(audit.FieldConsistencyErrors, field.TypeJSON, value)
		_node.ConsistencyErrors = value
	}
	if value, ok := _c.mutation.ReportPath(); ok {
		_spec.SetField(audit.FieldReportPath, field.TypeString, value)
		_node.ReportPath = &value
	}
	if value, ok := _c.mutation.DocumentXML(); ok {
		_spec.SetField(audit.FieldDocumentXML, field.TypeString, value)
		_node.DocumentXML = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(audit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(audit.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.ItemsTable,
			Columns: []string{audit.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audititem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AuditCreateBulk is the builder for creating many Audit entities in bulk.
type AuditCreateBulk struct {
	config
	err      error
	builders []*AuditCreate
}

// Save creates the Audit entities in the database.
func (_c *AuditCreateBulk) Save(ctx context.Context) ([]*Audit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Audit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditMutation)
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
func (_c *AuditCreateBulk) SaveX(ctx context.Context) []*Audit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
