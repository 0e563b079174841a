package utils

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/audittax/audittax/constants"
	auditv1 "github.com/audittax/audittax/gen/proto/audit/v1"
	"github.com/audittax/audittax/internal/entity"
)

func FromPBStatus(s *auditv1.AuditStatus) entity.StatusUpdate {
	u := entity.StatusUpdate{
		JobID:    s.GetAuditId(),
		Status:   constants.JobStatus(s.GetStatus()),
		Progress: int(s.GetProgress()),
		Step:     s.GetCurrentStep(),
		Error:    s.GetError(),
	}
	if ts := s.GetTimestamp(); ts != nil {
		u.Timestamp = ts.AsTime()
	}
	return u
}

func ToPBStatus(u entity.StatusUpdate) *auditv1.AuditStatus {
	s := &auditv1.AuditStatus{
		AuditId:     u.JobID,
		Status:      string(u.Status),
		Progress:    int32(u.Progress),
		CurrentStep: u.Step,
		Error:       u.Error,
	}
	if !u.Timestamp.IsZero() {
		s.Timestamp = timestamppb.New(u.Timestamp)
	}
	return s
}

func FromPBResults(r *auditv1.GetAuditResultsResponse) *entity.ResultBundle {
	b := &entity.ResultBundle{
		Summary: FromPBSummary(r.GetSummary()),
		Items:   make([]entity.Item, 0, len(r.GetItems())),
	}
	for _, it := range r.GetItems() {
		b.Items = append(b.Items, FromPBItem(it))
	}
	if h := r.GetInvoiceHeader(); h != nil {
		b.InvoiceHeader = &entity.InvoiceHeader{
			DocumentKey: h.GetDocumentKey(),
			Issuer:      h.GetIssuer(),
			IssuedAt:    h.GetIssuedAt(),
			TotalAmount: h.GetTotalAmount(),
			TotalTax:    h.GetTotalTax(),
		}
	}
	for _, ce := range r.GetConsistencyErrors() {
		b.ConsistencyErrors = append(b.ConsistencyErrors, entity.ConsistencyError{
			Field:         ce.GetField(),
			DocumentValue: ce.GetDocumentValue(),
			ComputedValue: ce.GetComputedValue(),
			Message:       ce.GetMessage(),
		})
	}
	return b
}

func ToPBResults(b *entity.ResultBundle) *auditv1.GetAuditResultsResponse {
	r := &auditv1.GetAuditResultsResponse{
		Summary: ToPBSummary(b.Summary),
		Items:   make([]*auditv1.AuditItem, 0, len(b.Items)),
	}
	for _, it := range b.Items {
		r.Items = append(r.Items, ToPBItem(it))
	}
	if b.InvoiceHeader != nil {
		r.InvoiceHeader = &auditv1.InvoiceHeader{
			DocumentKey: b.InvoiceHeader.DocumentKey,
			Issuer:      b.InvoiceHeader.Issuer,
			IssuedAt:    b.InvoiceHeader.IssuedAt,
			TotalAmount: b.InvoiceHeader.TotalAmount,
			TotalTax:    b.InvoiceHeader.TotalTax,
		}
	}
	for _, ce := range b.ConsistencyErrors {
		r.ConsistencyErrors = append(r.ConsistencyErrors, &auditv1.ConsistencyError{
			Field:         ce.Field,
			DocumentValue: ce.DocumentValue,
			ComputedValue: ce.ComputedValue,
			Message:       ce.Message,
		})
	}
	return r
}

func FromPBSummary(s *auditv1.ResultSummary) entity.Summary {
	return entity.Summary{
		Total:     int(s.GetTotal()),
		Compliant: int(s.GetCompliant()),
		Divergent: int(s.GetDivergent()),
	}
}

func ToPBSummary(s entity.Summary) *auditv1.ResultSummary {
	return &auditv1.ResultSummary{
		Total:     int32(s.Total),
		Compliant: int32(s.Compliant),
		Divergent: int32(s.Divergent),
	}
}

func FromPBItem(it *auditv1.AuditItem) entity.Item {
	item := entity.Item{
		Index:       int(it.GetItemIndex()),
		ProductCode: it.GetProductCode(),
		ProductName: it.GetProductName(),
		Status:      constants.ItemStatus(it.GetStatus()),
		Issues:      it.GetIssues(),
	}
	if d := it.GetDetails(); d != nil {
		item.Detail = &entity.ItemDetail{
			Quantity:        d.GetQuantity(),
			UnitPrice:       d.GetUnitPrice(),
			AmountTotal:     d.GetAmountTotal(),
			NCM:             d.GetNcm(),
			CEST:            d.GetCest(),
			CFOP:            d.GetCfop(),
			CST:             d.GetCst(),
			TaxBase:         d.GetTaxBase(),
			TaxRate:         d.GetTaxRate(),
			TaxValue:        d.GetTaxValue(),
			RefTaxValue:     d.GetRefTaxValue(),
			RefMVAPercent:   d.GetRefMvaPercent(),
			RefBenefitValue: d.GetRefBenefitValue(),
		}
	}
	return item
}

func ToPBItem(it entity.Item) *auditv1.AuditItem {
	pb := &auditv1.AuditItem{
		ItemIndex:   int32(it.Index),
		ProductCode: it.ProductCode,
		ProductName: it.ProductName,
		Status:      string(it.Status),
		Issues:      it.Issues,
	}
	if it.Detail != nil {
		pb.Details = &auditv1.ItemDetail{
			Quantity:        it.Detail.Quantity,
			UnitPrice:       it.Detail.UnitPrice,
			AmountTotal:     it.Detail.AmountTotal,
			Ncm:             it.Detail.NCM,
			Cest:            it.Detail.CEST,
			Cfop:            it.Detail.CFOP,
			Cst:             it.Detail.CST,
			TaxBase:         it.Detail.TaxBase,
			TaxRate:         it.Detail.TaxRate,
			TaxValue:        it.Detail.TaxValue,
			RefTaxValue:     it.Detail.RefTaxValue,
			RefMvaPercent:   it.Detail.RefMVAPercent,
			RefBenefitValue: it.Detail.RefBenefitValue,
		}
	}
	return pb
}

func FromPBSummaryEntry(a *auditv1.AuditSummary) entity.JobSummary {
	js := entity.JobSummary{
		JobID:       a.GetAuditId(),
		DocumentKey: a.GetDocumentKey(),
		Status:      constants.JobStatus(a.GetStatus()),
	}
	if ts := a.GetCreatedAt(); ts != nil {
		js.CreatedAt = ts.AsTime()
	}
	if ts := a.GetCompletedAt(); ts != nil {
		t := ts.AsTime()
		js.CompletedAt = &t
	}
	if s := a.GetSummary(); s != nil {
		sum := FromPBSummary(s)
		js.Summary = &sum
	}
	return js
}

func ToPBSummaryEntry(js entity.JobSummary) *auditv1.AuditSummary {
	a := &auditv1.AuditSummary{
		AuditId:     js.JobID,
		DocumentKey: js.DocumentKey,
		Status:      string(js.Status),
		CreatedAt:   timestamppb.New(js.CreatedAt),
	}
	if js.CompletedAt != nil {
		a.CompletedAt = timestamppb.New(*js.CompletedAt)
	}
	if js.Summary != nil {
		a.Summary = ToPBSummary(*js.Summary)
	}
	return a
}
