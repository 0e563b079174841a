// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/audittax/audittax/gen/ent/audit"
	"github.com/audittax/audittax/gen/ent/audititem"
	"github.com/audittax/audittax/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAudit     = "Audit"
	TypeAuditItem = "AuditItem"
)

// AuditMutation represents an operation that mutates the Audit nodes in the graph.
type AuditMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	document_key             *string
	filename                 *string
	status                   *string
	progress                 *int
	addprogress              *int
	current_step             *string
	error_message            *string
	total_items              *int
	addtotal_items           *int
	result_summary           *json.RawMessage
	appendresult_summary     json.RawMessage
	invoice_header           *json.RawMessage
	appendinvoice_header     json.RawMessage
	consistency_errors       *json.RawMessage
	appendconsistency_errors json.RawMessage
	report_path              *string
	document_xml             *string
	created_at               *time.Time
	completed_at             *time.Time
	clearedFields            map[string]struct{}
	items                    map[uuid.UUID]struct{}
	removeditems             map[uuid.UUID]struct{}
	cleareditems             bool
	done                     bool
	oldValue                 func(context.Context) (*Audit, error)
	predicates               []predicate.Audit
}

var _ ent.Mutation = (*AuditMutation)(nil)

// auditOption allows management of the mutation configuration using functional options.
type auditOption func(*AuditMutation)

// newAuditMutation creates new mutation for the Audit entity.
func newAuditMutation(c config, op Op, opts ...auditOption) *AuditMutation {
	m := &AuditMutation{
		config:        c,
		op:            op,
		typ:           TypeAudit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditID sets the ID field of the mutation.
func withAuditID(id uuid.UUID) auditOption {
	return func(m *AuditMutation) {
		var (
			err   error
			once  sync.Once
			value *Audit
		)
		m.oldValue = func(ctx context.Context) (*Audit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Audit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAudit sets the old Audit of the mutation.
func withAudit(node *Audit) auditOption {
	return func(m *AuditMutation) {
		m.oldValue = func(context.Context) (*Audit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Audit entities.
func (m *AuditMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Audit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentKey sets the "document_key" field.
func (m *AuditMutation) SetDocumentKey(s string) {
	m.document_key = &s
}

// DocumentKey returns the value of the "document_key" field in the mutation.
func (m *AuditMutation) DocumentKey() (r string, exists bool) {
	v := m.document_key
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentKey returns the old "document_key" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldDocumentKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentKey: %w", err)
	}
	return oldValue.DocumentKey, nil
}

// ResetDocumentKey resets all changes to the "document_key" field.
func (m *AuditMutation) ResetDocumentKey() {
	m.document_key = nil
}

// SetFilename sets the "filename" field.
func (m *AuditMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *AuditMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *AuditMutation) ResetFilename() {
	m.filename = nil
}

// SetStatus sets the "status" field.
func (m *AuditMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *AuditMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AuditMutation) ResetStatus() {
	m.status = nil
}

// SetProgress sets the "progress" field.
func (m *AuditMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *AuditMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *AuditMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *AuditMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *AuditMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetCurrentStep sets the "current_step" field.
func (m *AuditMutation) SetCurrentStep(s string) {
	m.current_step = &s
}

// CurrentStep returns the value of the "current_step" field in the mutation.
func (m *AuditMutation) CurrentStep() (r string, exists bool) {
	v := m.current_step
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStep returns the old "current_step" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldCurrentStep(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStep: %w", err)
	}
	return oldValue.CurrentStep, nil
}

// ClearCurrentStep clears the value of the "current_step" field.
func (m *AuditMutation) ClearCurrentStep() {
	m.current_step = nil
	m.clearedFields[audit.FieldCurrentStep] = struct{}{}
}

// CurrentStepCleared returns if the "current_step" field was cleared in this mutation.
func (m *AuditMutation) CurrentStepCleared() bool {
	_, ok := m.clearedFields[audit.FieldCurrentStep]
	return ok
}

// ResetCurrentStep resets all changes to the "current_step" field.
func (m *AuditMutation) ResetCurrentStep() {
	m.current_step = nil
	delete(m.clearedFields, audit.FieldCurrentStep)
}

// SetErrorMessage sets the "error_message" field.
func (m *AuditMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AuditMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AuditMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[audit.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AuditMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[audit.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AuditMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, audit.FieldErrorMessage)
}

// SetTotalItems sets the "total_items" field.
func (m *AuditMutation) SetTotalItems(i int) {
	m.total_items = &i
	m.addtotal_items = nil
}

// TotalItems returns the value of the "total_items" field in the mutation.
func (m *AuditMutation) TotalItems() (r int, exists bool) {
	v := m.total_items
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalItems returns the old "total_items" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldTotalItems(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalItems: %w", err)
	}
	return oldValue.TotalItems, nil
}

// AddTotalItems adds i to the "total_items" field.
func (m *AuditMutation) AddTotalItems(i int) {
	if m.addtotal_items != nil {
		*m.addtotal_items += i
	} else {
		m.addtotal_items = &i
	}
}

// AddedTotalItems returns the value that was added to the "total_items" field in this mutation.
func (m *AuditMutation) AddedTotalItems() (r int, exists bool) {
	v := m.addtotal_items
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalItems resets all changes to the "total_items" field.
func (m *AuditMutation) ResetTotalItems() {
	m.total_items = nil
	m.addtotal_items = nil
}

// SetResultSummary sets the "result_summary" field.
func (m *AuditMutation) SetResultSummary(jm json.RawMessage) {
	m.result_summary = &jm
	m.appendresult_summary = nil
}

// ResultSummary returns the value of the "result_summary" field in the mutation.
func (m *AuditMutation) ResultSummary() (r json.RawMessage, exists bool) {
	v := m.result_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldResultSummary returns the old "result_summary" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldResultSummary(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultSummary: %w", err)
	}
	return oldValue.ResultSummary, nil
}

// AppendResultSummary adds jm to the "result_summary" field.
func (m *AuditMutation) AppendResultSummary(jm json.RawMessage) {
	m.appendresult_summary = append(m.appendresult_summary, jm...)
}

// AppendedResultSummary returns the list of values that were appended to the "result_summary" field in this mutation.
func (m *AuditMutation) AppendedResultSummary() (json.RawMessage, bool) {
	if len(m.appendresult_summary) == 0 {
		return nil, false
	}
	return m.appendresult_summary, true
}

// ClearResultSummary clears the value of the "result_summary" field.
func (m *AuditMutation) ClearResultSummary() {
	m.result_summary = nil
	m.appendresult_summary = nil
	m.clearedFields[audit.FieldResultSummary] = struct{}{}
}

// ResultSummaryCleared returns if the "result_summary" field was cleared in this mutation.
func (m *AuditMutation) ResultSummaryCleared() bool {
	_, ok := m.clearedFields[audit.FieldResultSummary]
	return ok
}

// ResetResultSummary resets all changes to the "result_summary" field.
func (m *AuditMutation) ResetResultSummary() {
	m.result_summary = nil
	m.appendresult_summary = nil
	delete(m.clearedFields, audit.FieldResultSummary)
}

// SetInvoiceHeader sets the "invoice_header" field.
func (m *AuditMutation) SetInvoiceHeader(jm json.RawMessage) {
	m.invoice_header = &jm
	m.appendinvoice_header = nil
}

// InvoiceHeader returns the value of the "invoice_header" field in the mutation.
func (m *AuditMutation) InvoiceHeader() (r json.RawMessage, exists bool) {
	v := m.invoice_header
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceHeader returns the old "invoice_header" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldInvoiceHeader(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceHeader is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceHeader requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceHeader: %w", err)
	}
	return oldValue.InvoiceHeader, nil
}

// AppendInvoiceHeader adds jm to the "invoice_header" field.
func (m *AuditMutation) AppendInvoiceHeader(jm json.RawMessage) {
	m.appendinvoice_header = append(m.appendinvoice_header, jm...)
}

// AppendedInvoiceHeader returns the list of values that were appended to the "invoice_header" field in this mutation.
func (m *AuditMutation) AppendedInvoiceHeader() (json.RawMessage, bool) {
	if len(m.appendinvoice_header) == 0 {
		return nil, false
	}
	return m.appendinvoice_header, true
}

// ClearInvoiceHeader clears the value of the "invoice_header" field.
func (m *AuditMutation) ClearInvoiceHeader() {
	m.invoice_header = nil
	m.appendinvoice_header = nil
	m.clearedFields[audit.FieldInvoiceHeader] = struct{}{}
}

// InvoiceHeaderCleared returns if the "invoice_header" field was cleared in this mutation.
func (m *AuditMutation) InvoiceHeaderCleared() bool {
	_, ok := m.clearedFields[audit.FieldInvoiceHeader]
	return ok
}

// ResetInvoiceHeader resets all changes to the "invoice_header" field.
func (m *AuditMutation) ResetInvoiceHeader() {
	m.invoice_header = nil
	m.appendinvoice_header = nil
	delete(m.clearedFields, audit.FieldInvoiceHeader)
}

// SetConsistencyErrors sets the "consistency_errors" field.
func (m *AuditMutation) SetConsistencyErrors(jm json.RawMessage) {
	m.consistency_errors = &jm
	m.appendconsistency_errors = nil
}

// ConsistencyErrors returns the value of the "consistency_errors" field in the mutation.
func (m *AuditMutation) ConsistencyErrors() (r json.RawMessage, exists bool) {
	v := m.consistency_errors
	if v == nil {
		return
	}
	return *v, true
}

// OldConsistencyErrors returns the old "consistency_errors" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldConsistencyErrors(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsistencyErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsistencyErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsistencyErrors: %w", err)
	}
	return oldValue.ConsistencyErrors, nil
}

// AppendConsistencyErrors adds jm to the "consistency_errors" field.
func (m *AuditMutation) AppendConsistencyErrors(jm json.RawMessage) {
	m.appendconsistency_errors = append(m.appendconsistency_errors, jm...)
}

// AppendedConsistencyErrors returns the list of values that were appended to the "consistency_errors" field in this mutation.
func (m *AuditMutation) AppendedConsistencyErrors() (json.RawMessage, bool) {
	if len(m.appendconsistency_errors) == 0 {
		return nil, false
	}
	return m.appendconsistency_errors, true
}

// ClearConsistencyErrors clears the value of the "consistency_errors" field.
func (m *AuditMutation) ClearConsistencyErrors() {
	m.consistency_errors = nil
	m.appendconsistency_errors = nil
	m.clearedFields[audit.FieldConsistencyErrors] = struct{}{}
}

// ConsistencyErrorsCleared returns if the "consistency_errors" field was cleared in this mutation.
func (m *AuditMutation) ConsistencyErrorsCleared() bool {
	_, ok := m.clearedFields[audit.FieldConsistencyErrors]
	return ok
}

// ResetConsistencyErrors resets all changes to the "consistency_errors" field.
func (m *AuditMutation) ResetConsistencyErrors() {
	m.consistency_errors = nil
	m.appendconsistency_errors = nil
	delete(m.clearedFields, audit.FieldConsistencyErrors)
}

// SetReportPath sets the "report_path" field.
func (m *AuditMutation) SetReportPath(s string) {
	m.report_path = &s
}

// ReportPath returns the value of the "report_path" field in the mutation.
func (m *AuditMutation) ReportPath() (r string, exists bool) {
	v := m.report_path
	if v == nil {
		return
	}
	return *v, true
}

// OldReportPath returns the old "report_path" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldReportPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportPath: %w", err)
	}
	return oldValue.ReportPath, nil
}

// ClearReportPath clears the value of the "report_path" field.
func (m *AuditMutation) ClearReportPath() {
	m.report_path = nil
	m.clearedFields[audit.FieldReportPath] = struct{}{}
}

// ReportPathCleared returns if the "report_path" field was cleared in this mutation.
func (m *AuditMutation) ReportPathCleared() bool {
	_, ok := m.clearedFields[audit.FieldReportPath]
	return ok
}

// ResetReportPath resets all changes to the "report_path" field.
func (m *AuditMutation) ResetReportPath() {
	m.report_path = nil
	delete(m.clearedFields, audit.FieldReportPath)
}

// SetDocumentXML sets the "document_xml" field.
func (m *AuditMutation) SetDocumentXML(s string) {
	m.document_xml = &s
}

// DocumentXML returns the value of the "document_xml" field in the mutation.
func (m *AuditMutation) DocumentXML() (r string, exists bool) {
	v := m.document_xml
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentXML returns the old "document_xml" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldDocumentXML(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentXML is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentXML requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentXML: %w", err)
	}
	return oldValue.DocumentXML, nil
}

// ClearDocumentXML clears the value of the "document_xml" field.
func (m *AuditMutation) ClearDocumentXML() {
	m.document_xml = nil
	m.clearedFields[audit.FieldDocumentXML] = struct{}{}
}

// DocumentXMLCleared returns if the "document_xml" field was cleared in this mutation.
func (m *AuditMutation) DocumentXMLCleared() bool {
	_, ok := m.clearedFields[audit.FieldDocumentXML]
	return ok
}

// ResetDocumentXML resets all changes to the "document_xml" field.
func (m *AuditMutation) ResetDocumentXML() {
	m.document_xml = nil
	delete(m.clearedFields, audit.FieldDocumentXML)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *AuditMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AuditMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AuditMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[audit.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AuditMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[audit.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AuditMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, audit.FieldCompletedAt)
}

// AddItemIDs adds the "items" edge to the AuditItem entity by ids.
func (m *AuditMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the AuditItem entity.
func (m *AuditMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the AuditItem entity was cleared.
func (m *AuditMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the AuditItem entity by IDs.
func (m *AuditMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the AuditItem entity.
func (m *AuditMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *AuditMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *AuditMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the AuditMutation builder.
func (m *AuditMutation) Where(ps ...predicate.Audit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Audit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Audit).
func (m *AuditMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.document_key != nil {
		fields = append(fields, audit.FieldDocumentKey)
	}
	if m.filename != nil {
		fields = append(fields, audit.FieldFilename)
	}
	if m.status != nil {
		fields = append(fields, audit.FieldStatus)
	}
	if m.progress != nil {
		fields = append(fields, audit.FieldProgress)
	}
	if m.current_step != nil {
		fields = append(fields, audit.FieldCurrentStep)
	}
	if m.error_message != nil {
		fields = append(fields, audit.FieldErrorMessage)
	}
	if m.total_items != nil {
		fields = append(fields, audit.FieldTotalItems)
	}
	if m.result_summary != nil {
		fields = append(fields, audit.FieldResultSummary)
	}
	if m.invoice_header != nil {
		fields = append(fields, audit.FieldInvoiceHeader)
	}
	if m.consistency_errors != nil {
		fields = append(fields, audit.FieldConsistencyErrors)
	}
	if m.report_path != nil {
		fields = append(fields, audit.FieldReportPath)
	}
	if m.document_xml != nil {
		fields = append(fields, audit.FieldDocumentXML)
	}
	if m.created_at != nil {
		fields = append(fields, audit.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, audit.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case audit.FieldDocumentKey:
		return m.DocumentKey()
	case audit.FieldFilename:
		return m.Filename()
	case audit.FieldStatus:
		return m.Status()
	case audit.FieldProgress:
		return m.Progress()
	case audit.FieldCurrentStep:
		return m.CurrentStep()
	case audit.FieldErrorMessage:
		return m.ErrorMessage()
	case audit.FieldTotalItems:
		return m.TotalItems()
	case audit.FieldResultSummary:
		return m.ResultSummary()
	case audit.FieldInvoiceHeader:
		return m.InvoiceHeader()
	case audit.FieldConsistencyErrors:
		return m.ConsistencyErrors()
	case audit.FieldReportPath:
		return m.ReportPath()
	case audit.FieldDocumentXML:
		return m.DocumentXML()
	case audit.FieldCreatedAt:
		return m.CreatedAt()
	case audit.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case audit.FieldDocumentKey:
		return m.OldDocumentKey(ctx)
	case audit.FieldFilename:
		return m.OldFilename(ctx)
	case audit.FieldStatus:
		return m.OldStatus(ctx)
	case audit.FieldProgress:
		return m.OldProgress(ctx)
	case audit.FieldCurrentStep:
		return m.OldCurrentStep(ctx)
	case audit.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case audit.FieldTotalItems:
		return m.OldTotalItems(ctx)
	case audit.FieldResultSummary:
		return m.OldResultSummary(ctx)
	case audit.FieldInvoiceHeader:
		return m.OldInvoiceHeader(ctx)
	case audit.FieldConsistencyErrors:
		return m.OldConsistencyErrors(ctx)
	case audit.FieldReportPath:
		return m.OldReportPath(ctx)
	case audit.FieldDocumentXML:
		return m.OldDocumentXML(ctx)
	case audit.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case audit.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Audit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditMutation) SetField(name string, value ent.Value) error {
	switch name {
	case audit.FieldDocumentKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentKey(v)
		return nil
	case audit.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case audit.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case audit.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case audit.FieldCurrentStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStep(v)
		return nil
	case audit.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case audit.FieldTotalItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalItems(v)
		return nil
	case audit.FieldResultSummary:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultSummary(v)
		return nil
	case audit.FieldInvoiceHeader:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceHeader(v)
		return nil
	case audit.FieldConsistencyErrors:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsistencyErrors(v)
		return nil
	case audit.FieldReportPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportPath(v)
		return nil
	case audit.FieldDocumentXML:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentXML(v)
		return nil
	case audit.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case audit.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Audit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditMutation) AddedFields() []string {
	var fields []string
	if m.addprogress != nil {
		fields = append(fields, audit.FieldProgress)
	}
	if m.addtotal_items != nil {
		fields = append(fields, audit.FieldTotalItems)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case audit.FieldProgress:
		return m.AddedProgress()
	case audit.FieldTotalItems:
		return m.AddedTotalItems()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditMutation) AddField(name string, value ent.Value) error {
	switch name {
	case audit.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	case audit.FieldTotalItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalItems(v)
		return nil
	}
	return fmt.Errorf("unknown Audit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(audit.FieldCurrentStep) {
		fields = append(fields, audit.FieldCurrentStep)
	}
	if m.FieldCleared(audit.FieldErrorMessage) {
		fields = append(fields, audit.FieldErrorMessage)
	}
	if m.FieldCleared(audit.FieldResultSummary) {
		fields = append(fields, audit.FieldResultSummary)
	}
	if m.FieldCleared(audit.FieldInvoiceHeader) {
		fields = append(fields, audit.FieldInvoiceHeader)
	}
	if m.FieldCleared(audit.FieldConsistencyErrors) {
		fields = append(fields, audit.FieldConsistencyErrors)
	}
	if m.FieldCleared(audit.FieldReportPath) {
		fields = append(fields, audit.FieldReportPath)
	}
	if m.FieldCleared(audit.FieldDocumentXML) {
		fields = append(fields, audit.FieldDocumentXML)
	}
	if m.FieldCleared(audit.FieldCompletedAt) {
		fields = append(fields, audit.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditMutation) ClearField(name string) error {
	switch name {
	case audit.FieldCurrentStep:
		m.ClearCurrentStep()
		return nil
	case audit.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case audit.FieldResultSummary:
		m.ClearResultSummary()
		return nil
	case audit.FieldInvoiceHeader:
		m.ClearInvoiceHeader()
		return nil
	case audit.FieldConsistencyErrors:
		m.ClearConsistencyErrors()
		return nil
	case audit.FieldReportPath:
		m.ClearReportPath()
		return nil
	case audit.FieldDocumentXML:
		m.ClearDocumentXML()
		return nil
	case audit.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Audit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditMutation) ResetField(name string) error {
	switch name {
	case audit.FieldDocumentKey:
		m.ResetDocumentKey()
		return nil
	case audit.FieldFilename:
		m.ResetFilename()
		return nil
	case audit.FieldStatus:
		m.ResetStatus()
		return nil
	case audit.FieldProgress:
		m.ResetProgress()
		return nil
	case audit.FieldCurrentStep:
		m.ResetCurrentStep()
		return nil
	case audit.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case audit.FieldTotalItems:
		m.ResetTotalItems()
		return nil
	case audit.FieldResultSummary:
		m.ResetResultSummary()
		return nil
	case audit.FieldInvoiceHeader:
		m.ResetInvoiceHeader()
		return nil
	case audit.FieldConsistencyErrors:
		m.ResetConsistencyErrors()
		return nil
	case audit.FieldReportPath:
		m.ResetReportPath()
		return nil
	case audit.FieldDocumentXML:
		m.ResetDocumentXML()
		return nil
	case audit.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case audit.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Audit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.items != nil {
		edges = append(edges, audit.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case audit.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeditems != nil {
		edges = append(edges, audit.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case audit.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditems {
		edges = append(edges, audit.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditMutation) EdgeCleared(name string) bool {
	switch name {
	case audit.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Audit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditMutation) ResetEdge(name string) error {
	switch name {
	case audit.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown Audit edge %s", name)
}

// AuditItemMutation represents an operation that mutates the AuditItem nodes in the graph.
type AuditItemMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	item_index    *int
	additem_index *int
	product_code  *string
	product_name  *string
	status        *string
	issues        *[]string
	appendissues  []string
	detail        *json.RawMessage
	appenddetail  json.RawMessage
	clearedFields map[string]struct{}
	audit         *uuid.UUID
	clearedaudit  bool
	done          bool
	oldValue      func(context.Context) (*AuditItem, error)
	predicates    []predicate.AuditItem
}

var _ ent.Mutation = (*AuditItemMutation)(nil)

// audititemOption allows management of the mutation configuration using functional options.
type audititemOption func(*AuditItemMutation)

// newAuditItemMutation creates new mutation for the AuditItem entity.
func newAuditItemMutation(c config, op Op, opts ...audititemOption) *AuditItemMutation {
	m := &AuditItemMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditItemID sets the ID field of the mutation.
func withAuditItemID(id uuid.UUID) audititemOption {
	return func(m *AuditItemMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditItem
		)
		m.oldValue = func(ctx context.Context) (*AuditItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditItem sets the old AuditItem of the mutation.
func withAuditItem(node *AuditItem) audititemOption {
	return func(m *AuditItemMutation) {
		m.oldValue = func(context.Context) (*AuditItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditItem entities.
func (m *AuditItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAuditID sets the "audit_id" field.
func (m *AuditItemMutation) SetAuditID(u uuid.UUID) {
	m.audit = &u
}

// AuditID returns the value of the "audit_id" field in the mutation.
func (m *AuditItemMutation) AuditID() (r uuid.UUID, exists bool) {
	v := m.audit
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditID returns the old "audit_id" field's value of the AuditItem entity.
// If the AuditItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditItemMutation) OldAuditID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditID: %w", err)
	}
	return oldValue.AuditID, nil
}

// ResetAuditID resets all changes to the "audit_id" field.
func (m *AuditItemMutation) ResetAuditID() {
	m.audit = nil
}

// SetItemIndex sets the "item_index" field.
func (m *AuditItemMutation) SetItemIndex(i int) {
	m.item_index = &i
	m.additem_index = nil
}

// ItemIndex returns the value of the "item_index" field in the mutation.
func (m *AuditItemMutation) ItemIndex() (r int, exists bool) {
	v := m.item_index
	if v == nil {
		return
	}
	return *v, true
}

// OldItemIndex returns the old "item_index" field's value of the AuditItem entity.
// If the AuditItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditItemMutation) OldItemIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemIndex: %w", err)
	}
	return oldValue.ItemIndex, nil
}

// AddItemIndex adds i to the "item_index" field.
func (m *AuditItemMutation) AddItemIndex(i int) {
	if m.additem_index != nil {
		*m.additem_index += i
	} else {
		m.additem_index = &i
	}
}

// AddedItemIndex returns the value that was added to the "item_index" field in this mutation.
func (m *AuditItemMutation) AddedItemIndex() (r int, exists bool) {
	v := m.additem_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemIndex resets all changes to the "item_index" field.
func (m *AuditItemMutation) ResetItemIndex() {
	m.item_index = nil
	m.additem_index = nil
}

// SetProductCode sets the "product_code" field.
func (m *AuditItemMutation) SetProductCode(s string) {
	m.product_code = &s
}

// ProductCode returns the value of the "product_code" field in the mutation.
func (m *AuditItemMutation) ProductCode() (r string, exists bool) {
	v := m.product_code
	if v == nil {
		return
	}
	return *v, true
}

// OldProductCode returns the old "product_code" field's value of the AuditItem entity.
// If the AuditItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditItemMutation) OldProductCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductCode: %w", err)
	}
	return oldValue.ProductCode, nil
}

// ResetProductCode resets all changes to the "product_code" field.
func (m *AuditItemMutation) ResetProductCode() {
	m.product_code = nil
}

// SetProductName sets the "product_name" field.
func (m *AuditItemMutation) SetProductName(s string) {
	m.product_name = &s
}

// ProductName returns the value of the "product_name" field in the mutation.
func (m *AuditItemMutation) ProductName() (r string, exists bool) {
	v := m.product_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProductName returns the old "product_name" field's value of the AuditItem entity.
// If the AuditItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditItemMutation) OldProductName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductName: %w", err)
	}
	return oldValue.ProductName, nil
}

// ResetProductName resets all changes to the "product_name" field.
func (m *AuditItemMutation) ResetProductName() {
	m.product_name = nil
}

// SetStatus sets the "status" field.
func (m *AuditItemMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *AuditItemMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AuditItem entity.
// If the AuditItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditItemMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AuditItemMutation) ResetStatus() {
	m.status = nil
}

// SetIssues sets the "issues" field.
func (m *AuditItemMutation) SetIssues(s []string) {
	m.issues = &s
	m.appendissues = nil
}

// Issues returns the value of the "issues" field in the mutation.
func (m *AuditItemMutation) Issues() (r []string, exists bool) {
	v := m.issues
	if v == nil {
		return
	}
	return *v, true
}

// OldIssues returns the old "issues" field's value of the AuditItem entity.
// If the AuditItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditItemMutation) OldIssues(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssues: %w", err)
	}
	return oldValue.Issues, nil
}

// AppendIssues adds s to the "issues" field.
func (m *AuditItemMutation) AppendIssues(s []string) {
	m.appendissues = append(m.appendissues, s...)
}

// AppendedIssues returns the list of values that were appended to the "issues" field in this mutation.
func (m *AuditItemMutation) AppendedIssues() ([]string, bool) {
	if len(m.appendissues) == 0 {
		return nil, false
	}
	return m.appendissues, true
}

// ClearIssues clears the value of the "issues" field.
func (m *AuditItemMutation) ClearIssues() {
	m.issues = nil
	m.appendissues = nil
	m.clearedFields[audititem.FieldIssues] = struct{}{}
}

// IssuesCleared returns if the "issues" field was cleared in this mutation.
func (m *AuditItemMutation) IssuesCleared() bool {
	_, ok := m.clearedFields[audititem.FieldIssues]
	return ok
}

// ResetIssues resets all changes to the "issues" field.
func (m *AuditItemMutation) ResetIssues() {
	m.issues = nil
	m.appendissues = nil
	delete(m.clearedFields, audititem.FieldIssues)
}

// SetDetail sets the "detail" field.
func (m *AuditItemMutation) SetDetail(jm json.RawMessage) {
	m.detail = &jm
	m.appenddetail = nil
}

// Detail returns the value of the "detail" field in the mutation.
func (m *AuditItemMutation) Detail() (r json.RawMessage, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the AuditItem entity.
// If the AuditItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditItemMutation) OldDetail(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// AppendDetail adds jm to the "detail" field.
func (m *AuditItemMutation) AppendDetail(jm json.RawMessage) {
	m.appenddetail = append(m.appenddetail, jm...)
}

// AppendedDetail returns the list of values that were appended to the "detail" field in this mutation.
func (m *AuditItemMutation) AppendedDetail() (json.RawMessage, bool) {
	if len(m.appenddetail) == 0 {
		return nil, false
	}
	return m.appenddetail, true
}

// ClearDetail clears the value of the "detail" field.
func (m *AuditItemMutation) ClearDetail() {
	m.detail = nil
	m.appenddetail = nil
	m.clearedFields[audititem.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *AuditItemMutation) DetailCleared() bool {
	_, ok := m.clearedFields[audititem.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *AuditItemMutation) ResetDetail() {
	m.detail = nil
	m.appenddetail = nil
	delete(m.clearedFields, audititem.FieldDetail)
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (m *AuditItemMutation) ClearAudit() {
	m.clearedaudit = true
	m.clearedFields[audititem.FieldAuditID] = struct{}{}
}

// AuditCleared reports if the "audit" edge to the Audit entity was cleared.
func (m *AuditItemMutation) AuditCleared() bool {
	return m.clearedaudit
}

// AuditIDs returns the "audit" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuditID instead. It exists only for internal usage by the builders.
func (m *AuditItemMutation) AuditIDs() (ids []uuid.UUID) {
	if id := m.audit; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAudit resets all changes to the "audit" edge.
func (m *AuditItemMutation) ResetAudit() {
	m.audit = nil
	m.clearedaudit = false
}

// Where appends a list predicates to the AuditItemMutation builder.
func (m *AuditItemMutation) Where(ps ...predicate.AuditItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditItem).
func (m *AuditItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditItemMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.audit != nil {
		fields = append(fields, audititem.FieldAuditID)
	}
	if m.item_index != nil {
		fields = append(fields, audititem.FieldItemIndex)
	}
	if m.product_code != nil {
		fields = append(fields, audititem.FieldProductCode)
	}
	if m.product_name != nil {
		fields = append(fields, audititem.FieldProductName)
	}
	if m.status != nil {
		fields = append(fields, audititem.FieldStatus)
	}
	if m.issues != nil {
		fields = append(fields, audititem.FieldIssues)
	}
	if m.detail != nil {
		fields = append(fields, audititem.FieldDetail)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case audititem.FieldAuditID:
		return m.AuditID()
	case audititem.FieldItemIndex:
		return m.ItemIndex()
	case audititem.FieldProductCode:
		return m.ProductCode()
	case audititem.FieldProductName:
		return m.ProductName()
	case audititem.FieldStatus:
		return m.Status()
	case audititem.FieldIssues:
		return m.Issues()
	case audititem.FieldDetail:
		return m.Detail()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case audititem.FieldAuditID:
		return m.OldAuditID(ctx)
	case audititem.FieldItemIndex:
		return m.OldItemIndex(ctx)
	case audititem.FieldProductCode:
		return m.OldProductCode(ctx)
	case audititem.FieldProductName:
		return m.OldProductName(ctx)
	case audititem.FieldStatus:
		return m.OldStatus(ctx)
	case audititem.FieldIssues:
		return m.OldIssues(ctx)
	case audititem.FieldDetail:
		return m.OldDetail(ctx)
	}
	return nil, fmt.Errorf("unknown AuditItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case audititem.FieldAuditID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditID(v)
		return nil
	case audititem.FieldItemIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemIndex(v)
		return nil
	case audititem.FieldProductCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductCode(v)
		return nil
	case audititem.FieldProductName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductName(v)
		return nil
	case audititem.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case audititem.FieldIssues:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssues(v)
		return nil
	case audititem.FieldDetail:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	}
	return fmt.Errorf("unknown AuditItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditItemMutation) AddedFields() []string {
	var fields []string
	if m.additem_index != nil {
		fields = append(fields, audititem.FieldItemIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case audititem.FieldItemIndex:
		return m.AddedItemIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case audititem.FieldItemIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemIndex(v)
		return nil
	}
	return fmt.Errorf("unknown AuditItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(audititem.FieldIssues) {
		fields = append(fields, audititem.FieldIssues)
	}
	if m.FieldCleared(audititem.FieldDetail) {
		fields = append(fields, audititem.FieldDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditItemMutation) ClearField(name string) error {
	switch name {
	case audititem.FieldIssues:
		m.ClearIssues()
		return nil
	case audititem.FieldDetail:
		m.ClearDetail()
		return nil
	}
	return fmt.Errorf("unknown AuditItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditItemMutation) ResetField(name string) error {
	switch name {
	case audititem.FieldAuditID:
		m.ResetAuditID()
		return nil
	case audititem.FieldItemIndex:
		m.ResetItemIndex()
		return nil
	case audititem.FieldProductCode:
		m.ResetProductCode()
		return nil
	case audititem.FieldProductName:
		m.ResetProductName()
		return nil
	case audititem.FieldStatus:
		m.ResetStatus()
		return nil
	case audititem.FieldIssues:
		m.ResetIssues()
		return nil
	case audititem.FieldDetail:
		m.ResetDetail()
		return nil
	}
	return fmt.Errorf("unknown AuditItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.audit != nil {
		edges = append(edges, audititem.EdgeAudit)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case audititem.EdgeAudit:
		if id := m.audit; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaudit {
		edges = append(edges, audititem.EdgeAudit)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditItemMutation) EdgeCleared(name string) bool {
	switch name {
	case audititem.EdgeAudit:
		return m.clearedaudit
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditItemMutation) ClearEdge(name string) error {
	switch name {
	case audititem.EdgeAudit:
		m.ClearAudit()
		return nil
	}
	return fmt.Errorf("unknown AuditItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditItemMutation) ResetEdge(name string) error {
	switch name {
	case audititem.EdgeAudit:
		m.ResetAudit()
		return nil
	}
	return fmt.Errorf("unknown AuditItem edge %s", name)
}
