// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/audittax/audittax/gen/ent/audit"
	"github.com/audittax/audittax/gen/ent/audititem"
	"github.com/audittax/audittax/gen/ent/predicate"
	"github.com/google/uuid"
)

// AuditUpdate is the builder for updating Audit entities.
type AuditUpdate struct {
	config
	hooks    []Hook
	mutation *AuditMutation
}

// Where appends a list predicates to the AuditUpdate builder.
func (_u *AuditUpdate) Where(ps ...predicate.Audit) *AuditUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentKey sets the "document_key" field.
func (_u *AuditUpdate) SetDocumentKey(v string) *AuditUpdate {
	_u.mutation.SetDocumentKey(v)
	return _u
}

// SetNillableDocumentKey sets the "document_key" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableDocumentKey(v *string) *AuditUpdate {
	if v != nil {
		_u.SetDocumentKey(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *AuditUpdate) SetFilename(v string) *AuditUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableFilename(v *string) *AuditUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AuditUpdate) SetStatus(v string) *AuditUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableStatus(v *string) *AuditUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *AuditUpdate) SetProgress(v int) *AuditUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableProgress(v *int) *AuditUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *AuditUpdate) AddProgress(v int) *AuditUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *AuditUpdate) SetCurrentStep(v string) *AuditUpdate {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableCurrentStep(v *string) *AuditUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *AuditUpdate) ClearCurrentStep() *AuditUpdate {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AuditUpdate) SetErrorMessage(v string) *AuditUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableErrorMessage(v *string) *AuditUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AuditUpdate) ClearErrorMessage() *AuditUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTotalItems sets the "total_items" field.
func (_u *AuditUpdate) SetTotalItems(v int) *AuditUpdate {
	_u.mutation.ResetTotalItems()
	_u.mutation.SetTotalItems(v)
	return _u
}

// SetNillableTotalItems sets the "total_items" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableTotalItems(v *int) *AuditUpdate {
	if v != nil {
		_u.SetTotalItems(*v)
	}
	return _u
}

// AddTotalItems adds value to the "total_items" field.
func (_u *AuditUpdate) AddTotalItems(v int) *AuditUpdate {
	_u.mutation.AddTotalItems(v)
	return _u
}

// SetResultSummary sets the "result_summary" field.
func (_u *AuditUpdate) SetResultSummary(v json.RawMessage) *AuditUpdate {
	_u.mutation.SetResultSummary(v)
	return _u
}

// AppendResultSummary appends value to the "result_summary" field.
func (_u *AuditUpdate) AppendResultSummary(v json.RawMessage) *AuditUpdate {
	_u.mutation.AppendResultSummary(v)
	return _u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (_u *AuditUpdate) ClearResultSummary() *AuditUpdate {
	_u.mutation.ClearResultSummary()
	return _u
}

// SetInvoiceHeader sets the "invoice_header" field.
func (_u *AuditUpdate) SetInvoiceHeader(v json.RawMessage) *AuditUpdate {
	_u.mutation.SetInvoiceHeader(v)
	return _u
}

// AppendInvoiceHeader appends value to the "invoice_header" field.
func (_u *AuditUpdate) AppendInvoiceHeader(v json.RawMessage) *AuditUpdate {
	_u.mutation.AppendInvoiceHeader(v)
	return _u
}

// ClearInvoiceHeader clears the value of the "invoice_header" field.
func (_u *AuditUpdate) ClearInvoiceHeader() *AuditUpdate {
	_u.mutation.ClearInvoiceHeader()
	return _u
}

// SetConsistencyErrors sets the "consistency_errors" field.
func (_u *AuditUpdate) SetConsistencyErrors(v json.RawMessage) *AuditUpdate {
	_u.mutation.SetConsistencyErrors(v)
	return _u
}

// AppendConsistencyErrors appends value to the "consistency_errors" field.
func (_u *AuditUpdate) AppendConsistencyErrors(v json.RawMessage) *AuditUpdate {
	_u.mutation.AppendConsistencyErrors(v)
	return _u
}

// ClearConsistencyErrors clears the value of the "consistency_errors" field.
func (_u *AuditUpdate) ClearConsistencyErrors() *AuditUpdate {
	_u.mutation.ClearConsistencyErrors()
	return _u
}

// SetReportPath sets the "report_path" field.
func (_u *AuditUpdate) SetReportPath(v string) *AuditUpdate {
	_u.mutation.SetReportPath(v)
	return _u
}

// SetNillableReportPath sets the "report_path" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableReportPath(v *string) *AuditUpdate {
	if v != nil {
		_u.SetReportPath(*v)
	}
	return _u
}

// ClearReportPath clears the value of the "report_path" field.
func (_u *AuditUpdate) ClearReportPath() *AuditUpdate {
	_u.mutation.ClearReportPath()
	return _u
}

// SetDocumentXML sets the "document_xml" field.
func (_u *AuditUpdate) SetDocumentXML(v string) *AuditUpdate {
	_u.mutation.SetDocumentXML(v)
	return _u
}

// SetNillableDocumentXML sets the "document_xml" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableDocumentXML(v *string) *AuditUpdate {
	if v != nil {
		_u.SetDocumentXML(*v)
	}
	return _u
}

// ClearDocumentXML clears the value of the "document_xml" field.
func (_u *AuditUpdate) ClearDocumentXML() *AuditUpdate {
	_u.mutation.ClearDocumentXML()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AuditUpdate) SetCompletedAt(v time.Time) *AuditUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableCompletedAt(v *time.Time) *AuditUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AuditUpdate) ClearCompletedAt() *AuditUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddItemIDs adds the "items" edge to the AuditItem entity by IDs.
func (_u *AuditUpdate) AddItemIDs(ids ...uuid.UUID) *AuditUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the AuditItem entity.
func (_u *AuditUpdate) AddItems(v ...*AuditItem) *AuditUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the AuditMutation object of the builder.
func (_u *AuditUpdate) Mutation() *AuditMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the AuditItem entity.
func (_u *AuditUpdate) ClearItems() *AuditUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to AuditItem entities by IDs.
func (_u *AuditUpdate) RemoveItemIDs(ids ...uuid.UUID) *AuditUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to AuditItem entities.
func (_u *AuditUpdate) RemoveItems(v ...*AuditItem) *AuditUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditUpdate) check() error {
	if v, ok := _u.mutation.DocumentKey(); ok {
		if err := audit.DocumentKeyValidator(v); err != nil {
			return &ValidationError{Name: "document_key", err: fmt.Errorf(`ent: validator failed for field "Audit.document_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := audit.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Audit.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := audit.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Audit.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Progress(); ok {
		if err := audit.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "Audit.progress": %w`, err)}
		}
	}
	return nil
}

func (_u *AuditUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(audit.Table, audit.Columns, sqlgraph.NewFieldSpec(audit.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentKey(); ok {
		_spec.SetField(audit.FieldDocumentKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(audit.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(audit.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(audit.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(audit.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(audit.FieldCurrentStep, field.TypeString, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(audit.FieldCurrentStep, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(audit.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(audit.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TotalItems(); ok {
		_spec.SetField(audit.FieldTotalItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalItems(); ok {
		_spec.AddField(audit.FieldTotalItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResultSummary(); ok {
		_spec.SetField(audit.FieldResultSummary, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResultSummary(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audit.FieldResultSummary, value)
		})
	}
	if _u.mutation.ResultSummaryCleared() {
		_spec.ClearField(audit.FieldResultSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.InvoiceHeader(); ok {
		_spec.SetField(audit.FieldInvoiceHeader, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInvoiceHeader(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audit.FieldInvoiceHeader, value)
		})
	}
	if _u.mutation.InvoiceHeaderCleared() {
		_spec.ClearField(audit.FieldInvoiceHeader, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConsistencyErrors(); ok {
		_spec.SetField(audit.FieldConsistencyErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConsistencyErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audit.FieldConsistencyErrors, value)
		})
	}
	if _u.mutation.ConsistencyErrorsCleared() {
		_spec.ClearField(audit.FieldConsistencyErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReportPath(); ok {
		_spec.SetField(audit.FieldReportPath, field.TypeString, value)
	}
	if _u.mutation.ReportPathCleared() {
		_spec.ClearField(audit.FieldReportPath, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentXML(); ok {
		_spec.SetField(audit.FieldDocumentXML, field.TypeString, value)
	}
	if _u.mutation.DocumentXMLCleared() {
		_spec.ClearField(audit.FieldDocumentXML, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(audit.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(audit.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{audit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditUpdateOne is the builder for updating a single Audit entity.
type AuditUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditMutation
}

// SetDocumentKey sets the "document_key" field.
func (_u *AuditUpdateOne) SetDocumentKey(v string) *AuditUpdateOne {
	_u.mutation.SetDocumentKey(v)
	return _u
}

// SetNillableDocumentKey sets the "document_key" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableDocumentKey(v *string) *AuditUpdateOne {
	if v != nil {
		_u.SetDocumentKey(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *AuditUpdateOne) SetFilename(v string) *AuditUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableFilename(v *string) *AuditUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AuditUpdateOne) SetStatus(v string) *AuditUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableStatus(v *string) *AuditUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *AuditUpdateOne) SetProgress(v int) *AuditUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableProgress(v *int) *AuditUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *AuditUpdateOne) AddProgress(v int) *AuditUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *AuditUpdateOne) SetCurrentStep(v string) *AuditUpdateOne {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableCurrentStep(v *string) *AuditUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *AuditUpdateOne) ClearCurrentStep() *AuditUpdateOne {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AuditUpdateOne) SetErrorMessage(v string) *AuditUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableErrorMessage(v *string) *AuditUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AuditUpdateOne) ClearErrorMessage() *AuditUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTotalItems sets the "total_items" field.
func (_u *AuditUpdateOne) SetTotalItems(v int) *AuditUpdateOne {
	_u.mutation.ResetTotalItems()
	_u.mutation.SetTotalItems(v)
	return _u
}

// SetNillableTotalItems sets the "total_items" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableTotalItems(v *int) *AuditUpdateOne {
	if v != nil {
		_u.SetTotalItems(*v)
	}
	return _u
}

// AddTotalItems adds value to the "total_items" field.
func (_u *AuditUpdateOne) AddTotalItems(v int) *AuditUpdateOne {
	_u.mutation.AddTotalItems(v)
	return _u
}

// SetResultSummary sets the "result_summary" field.
func (_u *AuditUpdateOne) SetResultSummary(v json.RawMessage) *AuditUpdateOne {
	_u.mutation.SetResultSummary(v)
	return _u
}

// AppendResultSummary appends value to the "result_summary" field.
func (_u *AuditUpdateOne) AppendResultSummary(v json.RawMessage) *AuditUpdateOne {
	_u.mutation.AppendResultSummary(v)
	return _u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (_u *AuditUpdateOne) ClearResultSummary() *AuditUpdateOne {
	_u.mutation.ClearResultSummary()
	return _u
}

// SetInvoiceHeader sets the "invoice_header" field.
func (_u *AuditUpdateOne) SetInvoiceHeader(v json.RawMessage) *AuditUpdateOne {
	_u.mutation.SetInvoiceHeader(v)
	return _u
}

// AppendInvoiceHeader appends value to the "invoice_header" field.
func (_u *AuditUpdateOne) AppendInvoiceHeader(v json.RawMessage) *AuditUpdateOne {
	_u.mutation.AppendInvoiceHeader(v)
	return _u
}

// ClearInvoiceHeader clears the value of the "invoice_header" field.
func (_u *AuditUpdateOne) ClearInvoiceHeader() *AuditUpdateOne {
	_u.mutation.ClearInvoiceHeader()
	return _u
}

// SetConsistencyErrors sets the "consistency_errors" field.
func (_u *AuditUpdateOne) SetConsistencyErrors(v json.RawMessage) *AuditUpdateOne {
	_u.mutation.SetConsistencyErrors(v)
	return _u
}

// AppendConsistencyErrors appends value to the "consistency_errors" field.
func (_u *AuditUpdateOne) AppendConsistencyErrors(v json.RawMessage) *AuditUpdateOne {
	_u.mutation.AppendConsistencyErrors(v)
	return _u
}

// ClearConsistencyErrors clears the value of the "consistency_errors" field.
func (_u *AuditUpdateOne) ClearConsistencyErrors() *AuditUpdateOne {
	_u.mutation.ClearConsistencyErrors()
	return _u
}

// SetReportPath sets the "report_path" field.
func (_u *AuditUpdateOne) SetReportPath(v string) *AuditUpdateOne {
	_u.mutation.SetReportPath(v)
	return _u
}

// SetNillableReportPath sets the "report_path" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableReportPath(v *string) *AuditUpdateOne {
	if v != nil {
		_u.SetReportPath(*v)
	}
	return _u
}

// ClearReportPath clears the value of the "report_path" field.
func (_u *AuditUpdateOne) ClearReportPath() *AuditUpdateOne {
	_u.mutation.ClearReportPath()
	return _u
}

// SetDocumentXML sets the "document_xml" field.
func (_u *AuditUpdateOne) SetDocumentXML(v string) *AuditUpdateOne {
	_u.mutation.SetDocumentXML(v)
	return _u
}

// SetNillableDocumentXML sets the "document_xml" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableDocumentXML(v *string) *AuditUpdateOne {
	if v != nil {
		_u.SetDocumentXML(*v)
	}
	return _u
}

// ClearDocumentXML clears the value of the "document_xml" field.
func (_u *AuditUpdateOne) ClearDocumentXML() *AuditUpdateOne {
	_u.mutation.ClearDocumentXML()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AuditUpdateOne) SetCompletedAt(v time.Time) *AuditUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableCompletedAt(v *time.Time) *AuditUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AuditUpdateOne) ClearCompletedAt() *AuditUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddItemIDs adds the "items" edge to the AuditItem entity by IDs.
func (_u *AuditUpdateOne) AddItemIDs(ids ...uuid.UUID) *AuditUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the AuditItem entity.
func (_u *AuditUpdateOne) AddItems(v ...*AuditItem) *AuditUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the AuditMutation object of the builder.
func (_u *AuditUpdateOne) Mutation() *AuditMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the AuditItem entity.
func (_u *AuditUpdateOne) ClearItems() *AuditUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to AuditItem entities by IDs.
func (_u *AuditUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *AuditUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to AuditItem entities.
func (_u *AuditUpdateOne) RemoveItems(v ...*AuditItem) *AuditUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the AuditUpdate builder.
func (_u *AuditUpdateOne) Where(ps ...predicate.Audit) *AuditUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditUpdateOne) Select(field string, fields ...string) *AuditUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Audit entity.
func (_u *AuditUpdateOne) Save(ctx context.Context) (*Audit, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditUpdateOne) SaveX(ctx context.Context) *Audit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditUpdateOne) check() error {
	if v, ok := _u.mutation.DocumentKey(); ok {
		if err := audit.DocumentKeyValidator(v); err != nil {
			return &ValidationError{Name: "document_key", err: fmt.Errorf(`ent: validator failed for field "Audit.document_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := audit.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Audit.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := audit.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Audit.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Progress(); ok {
		if err := audit.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "Audit.progress": %w`, err)}
		}
	}
	return nil
}

func (_u *AuditUpdateOne) sqlSave(ctx context.Context) (_node *Audit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(audit.Table, audit.Columns, sqlgraph.NewFieldSpec(audit.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Audit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, audit.FieldID)
		for _, f := range fields {
			if !audit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != audit.FieldID {
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
	if value, ok := _u.mutation.DocumentKey(); ok {
		_spec.SetField(audit.FieldDocumentKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(audit.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(audit.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(audit.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(audit.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(audit.FieldCurrentStep, field.TypeString, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(audit.FieldCurrentStep, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(audit.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(audit.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TotalItems(); ok {
		_spec.SetField(audit.FieldTotalItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalItems(); ok {
		_spec.AddField(audit.FieldTotalItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResultSummary(); ok {
		_spec.SetField(audit.FieldResultSummary, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResultSummary(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audit.FieldResultSummary, value)
		})
	}
	if _u.mutation.ResultSummaryCleared() {
		_spec.ClearField(audit.FieldResultSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.InvoiceHeader(); ok {
		_spec.SetField(audit.FieldInvoiceHeader, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInvoiceHeader(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audit.FieldInvoiceHeader, value)
		})
	}
	if _u.mutation.InvoiceHeaderCleared() {
		_spec.ClearField(audit.FieldInvoiceHeader, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConsistencyErrors(); ok {
		_spec.SetField(audit.FieldConsistencyErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConsistencyErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audit.FieldConsistencyErrors, value)
		})
	}
	if _u.mutation.ConsistencyErrorsCleared() {
		_spec.ClearField(audit.FieldConsistencyErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReportPath(); ok {
		_spec.SetField(audit.FieldReportPath, field.TypeString, value)
	}
	if _u.mutation.ReportPathCleared() {
		_spec.ClearField(audit.FieldReportPath, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentXML(); ok {
		_spec.SetField(audit.FieldDocumentXML, field.TypeString, value)
	}
	if _u.mutation.DocumentXMLCleared() {
		_spec.ClearField(audit.FieldDocumentXML, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(audit.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(audit.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Audit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{audit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
