// Code generated by ent, DO NOT EDIT.

package audit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/audittax/audittax/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldID, id))
}

// DocumentKey applies equality check predicate on the "document_key" field. It's identical to DocumentKeyEQ.
func DocumentKey(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldDocumentKey, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldFilename, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldStatus, v))
}

// Progress applies equality check predicate on the "progress" field. It's identical to ProgressEQ.
func Progress(v int) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldProgress, v))
}

// CurrentStep applies equality check predicate on the "current_step" field. It's identical to CurrentStepEQ.
func CurrentStep(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldCurrentStep, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldErrorMessage, v))
}

// TotalItems applies equality check predicate on the "total_items" field. It's identical to TotalItemsEQ.
func TotalItems(v int) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldTotalItems, v))
}

// ReportPath applies equality check predicate on the "report_path" field. It's identical to ReportPathEQ.
func ReportPath(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldReportPath, v))
}

// DocumentXML applies equality check predicate on the "document_xml" field. It's identical to DocumentXMLEQ.
func DocumentXML(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldDocumentXML, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldCompletedAt, v))
}

// DocumentKeyEQ applies the EQ predicate on the "document_key" field.
func DocumentKeyEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldDocumentKey, v))
}

// DocumentKeyNEQ applies the NEQ predicate on the "document_key" field.
func DocumentKeyNEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldDocumentKey, v))
}

// DocumentKeyIn applies the In predicate on the "document_key" field.
func DocumentKeyIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldDocumentKey, vs...))
}

// DocumentKeyNotIn applies the NotIn predicate on the "document_key" field.
func DocumentKeyNotIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldDocumentKey, vs...))
}

// DocumentKeyGT applies the GT predicate on the "document_key" field.
func DocumentKeyGT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldDocumentKey, v))
}

// DocumentKeyGTE applies the GTE predicate on the "document_key" field.
func DocumentKeyGTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldDocumentKey, v))
}

// DocumentKeyLT applies the LT predicate on the "document_key" field.
func DocumentKeyLT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldDocumentKey, v))
}

// DocumentKeyLTE applies the LTE predicate on the "document_key" field.
func DocumentKeyLTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldDocumentKey, v))
}

// DocumentKeyContains applies the Contains predicate on the "document_key" field.
func DocumentKeyContains(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContains(FieldDocumentKey, v))
}

// DocumentKeyHasPrefix applies the HasPrefix predicate on the "document_key" field.
func DocumentKeyHasPrefix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasPrefix(FieldDocumentKey, v))
}

// DocumentKeyHasSuffix applies the HasSuffix predicate on the "document_key" field.
func DocumentKeyHasSuffix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasSuffix(FieldDocumentKey, v))
}

// DocumentKeyEqualFold applies the EqualFold predicate on the "document_key" field.
func DocumentKeyEqualFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEqualFold(FieldDocumentKey, v))
}

// DocumentKeyContainsFold applies the ContainsFold predicate on the "document_key" field.
func DocumentKeyContainsFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContainsFold(FieldDocumentKey, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContainsFold(FieldFilename, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContainsFold(FieldStatus, v))
}

// ProgressEQ applies the EQ predicate on the "progress" field.
func ProgressEQ(v int) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldProgress, v))
}

// ProgressNEQ applies the NEQ predicate on the "progress" field.
func ProgressNEQ(v int) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldProgress, v))
}

// ProgressIn applies the In predicate on the "progress" field.
func ProgressIn(vs ...int) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldProgress, vs...))
}

// ProgressNotIn applies the NotIn predicate on the "progress" field.
func ProgressNotIn(vs ...int) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldProgress, vs...))
}

// ProgressGT applies the GT predicate on the "progress" field.
func ProgressGT(v int) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldProgress, v))
}

// ProgressGTE applies the GTE predicate on the "progress" field.
func ProgressGTE(v int) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldProgress, v))
}

// ProgressLT applies the LT predicate on the "progress" field.
func ProgressLT(v int) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldProgress, v))
}

// ProgressLTE applies the LTE predicate on the "progress" field.
func ProgressLTE(v int) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldProgress, v))
}

// CurrentStepEQ applies the EQ predicate on the "current_step" field.
func CurrentStepEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldCurrentStep, v))
}

// CurrentStepNEQ applies the NEQ predicate on the "current_step" field.
func CurrentStepNEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldCurrentStep, v))
}

// CurrentStepIn applies the In predicate on the "current_step" field.
func CurrentStepIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldCurrentStep, vs...))
}

// CurrentStepNotIn applies the NotIn predicate on the "current_step" field.
func CurrentStepNotIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldCurrentStep, vs...))
}

// CurrentStepGT applies the GT predicate on the "current_step" field.
func CurrentStepGT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldCurrentStep, v))
}

// CurrentStepGTE applies the GTE predicate on the "current_step" field.
func CurrentStepGTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldCurrentStep, v))
}

// CurrentStepLT applies the LT predicate on the "current_step" field.
func CurrentStepLT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldCurrentStep, v))
}

// CurrentStepLTE applies the LTE predicate on the "current_step" field.
func CurrentStepLTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldCurrentStep, v))
}

// CurrentStepContains applies the Contains predicate on the "current_step" field.
func CurrentStepContains(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContains(FieldCurrentStep, v))
}

// CurrentStepHasPrefix applies the HasPrefix predicate on the "current_step" field.
func CurrentStepHasPrefix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasPrefix(FieldCurrentStep, v))
}

// CurrentStepHasSuffix applies the HasSuffix predicate on the "current_step" field.
func CurrentStepHasSuffix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasSuffix(FieldCurrentStep, v))
}

// CurrentStepIsNil applies the IsNil predicate on the "current_step" field.
func CurrentStepIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldCurrentStep))
}

// CurrentStepNotNil applies the NotNil predicate on the "current_step" field.
func CurrentStepNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldCurrentStep))
}

// CurrentStepEqualFold applies the EqualFold predicate on the "current_step" field.
func CurrentStepEqualFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEqualFold(FieldCurrentStep, v))
}

// CurrentStepContainsFold applies the ContainsFold predicate on the "current_step" field.
func CurrentStepContainsFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContainsFold(FieldCurrentStep, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContainsFold(FieldErrorMessage, v))
}

// TotalItemsEQ applies the EQ predicate on the "total_items" field.
func TotalItemsEQ(v int) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldTotalItems, v))
}

// TotalItemsNEQ applies the NEQ predicate on the "total_items" field.
func TotalItemsNEQ(v int) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldTotalItems, v))
}

// TotalItemsIn applies the In predicate on the "total_items" field.
func TotalItemsIn(vs ...int) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldTotalItems, vs...))
}

// TotalItemsNotIn applies the NotIn predicate on the "total_items" field.
func TotalItemsNotIn(vs ...int) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldTotalItems, vs...))
}

// TotalItemsGT applies the GT predicate on the "total_items" field.
func TotalItemsGT(v int) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldTotalItems, v))
}

// TotalItemsGTE applies the GTE predicate on the "total_items" field.
func TotalItemsGTE(v int) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldTotalItems, v))
}

// TotalItemsLT applies the LT predicate on the "total_items" field.
func TotalItemsLT(v int) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldTotalItems, v))
}

// TotalItemsLTE applies the LTE predicate on the "total_items" field.
func TotalItemsLTE(v int) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldTotalItems, v))
}

// ResultSummaryIsNil applies the IsNil predicate on the "result_summary" field.
func ResultSummaryIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldResultSummary))
}

// ResultSummaryNotNil applies the NotNil predicate on the "result_summary" field.
func ResultSummaryNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldResultSummary))
}

// InvoiceHeaderIsNil applies the IsNil predicate on the "invoice_header" field.
func InvoiceHeaderIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldInvoiceHeader))
}

// InvoiceHeaderNotNil applies the NotNil predicate on the "invoice_header" field.
func InvoiceHeaderNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldInvoiceHeader))
}

// ConsistencyErrorsIsNil applies the IsNil predicate on the "consistency_errors" field.
func ConsistencyErrorsIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldConsistencyErrors))
}

// ConsistencyErrorsNotNil applies the NotNil predicate on the "consistency_errors" field.
func ConsistencyErrorsNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldConsistencyErrors))
}

// ReportPathEQ applies the EQ predicate on the "report_path" field.
func ReportPathEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldReportPath, v))
}

// ReportPathNEQ applies the NEQ predicate on the "report_path" field.
func ReportPathNEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldReportPath, v))
}

// ReportPathIn applies the In predicate on the "report_path" field.
func ReportPathIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldReportPath, vs...))
}

// ReportPathNotIn applies the NotIn predicate on the "report_path" field.
func ReportPathNotIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldReportPath, vs...))
}

// ReportPathGT applies the GT predicate on the "report_path" field.
func ReportPathGT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldReportPath, v))
}

// ReportPathGTE applies the GTE predicate on the "report_path" field.
func ReportPathGTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldReportPath, v))
}

// ReportPathLT applies the LT predicate on the "report_path" field.
func ReportPathLT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldReportPath, v))
}

// ReportPathLTE applies the LTE predicate on the "report_path" field.
func ReportPathLTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldReportPath, v))
}

// ReportPathContains applies the Contains predicate on the "report_path" field.
func ReportPathContains(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContains(FieldReportPath, v))
}

// ReportPathHasPrefix applies the HasPrefix predicate on the "report_path" field.
func ReportPathHasPrefix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasPrefix(FieldReportPath, v))
}

// ReportPathHasSuffix applies the HasSuffix predicate on the "report_path" field.
func ReportPathHasSuffix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasSuffix(FieldReportPath, v))
}

// ReportPathIsNil applies the IsNil predicate on the "report_path" field.
func ReportPathIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldReportPath))
}

// ReportPathNotNil applies the NotNil predicate on the "report_path" field.
func ReportPathNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldReportPath))
}

// ReportPathEqualFold applies the EqualFold predicate on the "report_path" field.
func ReportPathEqualFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEqualFold(FieldReportPath, v))
}

// ReportPathContainsFold applies the ContainsFold predicate on the "report_path" field.
func ReportPathContainsFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContainsFold(FieldReportPath, v))
}

// DocumentXMLEQ applies the EQ predicate on the "document_xml" field.
func DocumentXMLEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldDocumentXML, v))
}

// DocumentXMLNEQ applies the NEQ predicate on the "document_xml" field.
func DocumentXMLNEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldDocumentXML, v))
}

// DocumentXMLIn applies the In predicate on the "document_xml" field.
func DocumentXMLIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldDocumentXML, vs...))
}

// DocumentXMLNotIn applies the NotIn predicate on the "document_xml" field.
func DocumentXMLNotIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldDocumentXML, vs...))
}

// DocumentXMLGT applies the GT predicate on the "document_xml" field.
func DocumentXMLGT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldDocumentXML, v))
}

// DocumentXMLGTE applies the GTE predicate on the "document_xml" field.
func DocumentXMLGTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldDocumentXML, v))
}

// DocumentXMLLT applies the LT predicate on the "document_xml" field.
func DocumentXMLLT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldDocumentXML, v))
}

// DocumentXMLLTE applies the LTE predicate on the "document_xml" field.
func DocumentXMLLTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldDocumentXML, v))
}

// DocumentXMLContains applies the Contains predicate on the "document_xml" field.
func DocumentXMLContains(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContains(FieldDocumentXML, v))
}

// DocumentXMLHasPrefix applies the HasPrefix predicate on the "document_xml" field.
func DocumentXMLHasPrefix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasPrefix(FieldDocumentXML, v))
}

// DocumentXMLHasSuffix applies the HasSuffix predicate on the "document_xml" field.
func DocumentXMLHasSuffix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasSuffix(FieldDocumentXML, v))
}

// DocumentXMLIsNil applies the IsNil predicate on the "document_xml" field.
func DocumentXMLIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldDocumentXML))
}

// DocumentXMLNotNil applies the NotNil predicate on the "document_xml" field.
func DocumentXMLNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldDocumentXML))
}

// DocumentXMLEqualFold applies the EqualFold predicate on the "document_xml" field.
func DocumentXMLEqualFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEqualFold(FieldDocumentXML, v))
}

// DocumentXMLContainsFold applies the ContainsFold predicate on the "document_xml" field.
func DocumentXMLContainsFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContainsFold(FieldDocumentXML, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldCompletedAt))
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.AuditItem) predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Audit) predicate.Audit {
	return predicate.Audit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Audit) predicate.Audit {
	return predicate.Audit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Audit) predicate.Audit {
	return predicate.Audit(sql.NotPredicates(p))
}
