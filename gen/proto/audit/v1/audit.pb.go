// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: audit/v1/audit.proto

package auditv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type UploadDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_audit_v1_audit_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{0}
}

func (x *UploadDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type UploadDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AuditId       string                 `protobuf:"bytes,1,opt,name=audit_id,json=auditId,proto3" json:"audit_id,omitempty"`
	DocumentKey   string                 `protobuf:"bytes,2,opt,name=document_key,json=documentKey,proto3" json:"document_key,omitempty"`
	TotalItems    int32                  `protobuf:"varint,3,opt,name=total_items,json=totalItems,proto3" json:"total_items,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_audit_v1_audit_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{1}
}

func (x *UploadDocumentResponse) GetAuditId() string {
	if x != nil {
		return x.AuditId
	}
	return ""
}

func (x *UploadDocumentResponse) GetDocumentKey() string {
	if x != nil {
		return x.DocumentKey
	}
	return ""
}

func (x *UploadDocumentResponse) GetTotalItems() int32 {
	if x != nil {
		return x.TotalItems
	}
	return 0
}

func (x *UploadDocumentResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type StartAuditRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AuditId       string                 `protobuf:"bytes,1,opt,name=audit_id,json=auditId,proto3" json:"audit_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartAuditRequest) Reset() {
	*x = StartAuditRequest{}
	mi := &file_audit_v1_audit_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartAuditRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartAuditRequest) ProtoMessage() {}

func (x *StartAuditRequest) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartAuditRequest.ProtoReflect.Descriptor instead.
func (*StartAuditRequest) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{2}
}

func (x *StartAuditRequest) GetAuditId() string {
	if x != nil {
		return x.AuditId
	}
	return ""
}

type StartAuditResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AuditId       string                 `protobuf:"bytes,1,opt,name=audit_id,json=auditId,proto3" json:"audit_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartAuditResponse) Reset() {
	*x = StartAuditResponse{}
	mi := &file_audit_v1_audit_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartAuditResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartAuditResponse) ProtoMessage() {}

func (x *StartAuditResponse) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartAuditResponse.ProtoReflect.Descriptor instead.
func (*StartAuditResponse) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{3}
}

func (x *StartAuditResponse) GetAuditId() string {
	if x != nil {
		return x.AuditId
	}
	return ""
}

func (x *StartAuditResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type GetAuditStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AuditId       string                 `protobuf:"bytes,1,opt,name=audit_id,json=auditId,proto3" json:"audit_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAuditStatusRequest) Reset() {
	*x = GetAuditStatusRequest{}
	mi := &file_audit_v1_audit_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAuditStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAuditStatusRequest) ProtoMessage() {}

func (x *GetAuditStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAuditStatusRequest.ProtoReflect.Descriptor instead.
func (*GetAuditStatusRequest) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{4}
}

func (x *GetAuditStatusRequest) GetAuditId() string {
	if x != nil {
		return x.AuditId
	}
	return ""
}

type WatchAuditRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AuditId       string                 `protobuf:"bytes,1,opt,name=audit_id,json=auditId,proto3" json:"audit_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WatchAuditRequest) Reset() {
	*x = WatchAuditRequest{}
	mi := &file_audit_v1_audit_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WatchAuditRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WatchAuditRequest) ProtoMessage() {}

func (x *WatchAuditRequest) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WatchAuditRequest.ProtoReflect.Descriptor instead.
func (*WatchAuditRequest) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{5}
}

func (x *WatchAuditRequest) GetAuditId() string {
	if x != nil {
		return x.AuditId
	}
	return ""
}

type AuditStatus struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AuditId       string                 `protobuf:"bytes,1,opt,name=audit_id,json=auditId,proto3" json:"audit_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Progress      int32                  `protobuf:"varint,3,opt,name=progress,proto3" json:"progress,omitempty"`
	CurrentStep   string                 `protobuf:"bytes,4,opt,name=current_step,json=currentStep,proto3" json:"current_step,omitempty"`
	Error         string                 `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
	Timestamp     *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AuditStatus) Reset() {
	*x = AuditStatus{}
	mi := &file_audit_v1_audit_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AuditStatus) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AuditStatus) ProtoMessage() {}

func (x *AuditStatus) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AuditStatus.ProtoReflect.Descriptor instead.
func (*AuditStatus) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{6}
}

func (x *AuditStatus) GetAuditId() string {
	if x != nil {
		return x.AuditId
	}
	return ""
}

func (x *AuditStatus) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *AuditStatus) GetProgress() int32 {
	if x != nil {
		return x.Progress
	}
	return 0
}

func (x *AuditStatus) GetCurrentStep() string {
	if x != nil {
		return x.CurrentStep
	}
	return ""
}

func (x *AuditStatus) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

func (x *AuditStatus) GetTimestamp() *timestamppb.Timestamp {
	if x != nil {
		return x.Timestamp
	}
	return nil
}

type GetAuditResultsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AuditId       string                 `protobuf:"bytes,1,opt,name=audit_id,json=auditId,proto3" json:"audit_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAuditResultsRequest) Reset() {
	*x = GetAuditResultsRequest{}
	mi := &file_audit_v1_audit_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAuditResultsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAuditResultsRequest) ProtoMessage() {}

func (x *GetAuditResultsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAuditResultsRequest.ProtoReflect.Descriptor instead.
func (*GetAuditResultsRequest) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{7}
}

func (x *GetAuditResultsRequest) GetAuditId() string {
	if x != nil {
		return x.AuditId
	}
	return ""
}

type GetAuditResultsResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Summary           *ResultSummary         `protobuf:"bytes,1,opt,name=summary,proto3" json:"summary,omitempty"`
	Items             []*AuditItem           `protobuf:"bytes,2,rep,name=items,proto3" json:"items,omitempty"`
	InvoiceHeader     *InvoiceHeader         `protobuf:"bytes,3,opt,name=invoice_header,json=invoiceHeader,proto3" json:"invoice_header,omitempty"`
	ConsistencyErrors []*ConsistencyError    `protobuf:"bytes,4,rep,name=consistency_errors,json=consistencyErrors,proto3" json:"consistency_errors,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *GetAuditResultsResponse) Reset() {
	*x = GetAuditResultsResponse{}
	mi := &file_audit_v1_audit_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAuditResultsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAuditResultsResponse) ProtoMessage() {}

func (x *GetAuditResultsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAuditResultsResponse.ProtoReflect.Descriptor instead.
func (*GetAuditResultsResponse) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{8}
}

func (x *GetAuditResultsResponse) GetSummary() *ResultSummary {
	if x != nil {
		return x.Summary
	}
	return nil
}

func (x *GetAuditResultsResponse) GetItems() []*AuditItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *GetAuditResultsResponse) GetInvoiceHeader() *InvoiceHeader {
	if x != nil {
		return x.InvoiceHeader
	}
	return nil
}

func (x *GetAuditResultsResponse) GetConsistencyErrors() []*ConsistencyError {
	if x != nil {
		return x.ConsistencyErrors
	}
	return nil
}

type ResultSummary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Total         int32                  `protobuf:"varint,1,opt,name=total,proto3" json:"total,omitempty"`
	Compliant     int32                  `protobuf:"varint,2,opt,name=compliant,proto3" json:"compliant,omitempty"`
	Divergent     int32                  `protobuf:"varint,3,opt,name=divergent,proto3" json:"divergent,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResultSummary) Reset() {
	*x = ResultSummary{}
	mi := &file_audit_v1_audit_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResultSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResultSummary) ProtoMessage() {}

func (x *ResultSummary) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResultSummary.ProtoReflect.Descriptor instead.
func (*ResultSummary) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{9}
}

func (x *ResultSummary) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *ResultSummary) GetCompliant() int32 {
	if x != nil {
		return x.Compliant
	}
	return 0
}

func (x *ResultSummary) GetDivergent() int32 {
	if x != nil {
		return x.Divergent
	}
	return 0
}

type InvoiceHeader struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentKey   string                 `protobuf:"bytes,1,opt,name=document_key,json=documentKey,proto3" json:"document_key,omitempty"`
	Issuer        string                 `protobuf:"bytes,2,opt,name=issuer,proto3" json:"issuer,omitempty"`
	IssuedAt      string                 `protobuf:"bytes,3,opt,name=issued_at,json=issuedAt,proto3" json:"issued_at,omitempty"`
	TotalAmount   float64                `protobuf:"fixed64,4,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"`
	TotalTax      float64                `protobuf:"fixed64,5,opt,name=total_tax,json=totalTax,proto3" json:"total_tax,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InvoiceHeader) Reset() {
	*x = InvoiceHeader{}
	mi := &file_audit_v1_audit_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InvoiceHeader) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InvoiceHeader) ProtoMessage() {}

func (x *InvoiceHeader) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InvoiceHeader.ProtoReflect.Descriptor instead.
func (*InvoiceHeader) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{10}
}

func (x *InvoiceHeader) GetDocumentKey() string {
	if x != nil {
		return x.DocumentKey
	}
	return ""
}

func (x *InvoiceHeader) GetIssuer() string {
	if x != nil {
		return x.Issuer
	}
	return ""
}

func (x *InvoiceHeader) GetIssuedAt() string {
	if x != nil {
		return x.IssuedAt
	}
	return ""
}

func (x *InvoiceHeader) GetTotalAmount() float64 {
	if x != nil {
		return x.TotalAmount
	}
	return 0
}

func (x *InvoiceHeader) GetTotalTax() float64 {
	if x != nil {
		return x.TotalTax
	}
	return 0
}

type ConsistencyError struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Field         string                 `protobuf:"bytes,1,opt,name=field,proto3" json:"field,omitempty"`
	DocumentValue string                 `protobuf:"bytes,2,opt,name=document_value,json=documentValue,proto3" json:"document_value,omitempty"`
	ComputedValue string                 `protobuf:"bytes,3,opt,name=computed_value,json=computedValue,proto3" json:"computed_value,omitempty"`
	Message       string                 `protobuf:"bytes,4,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConsistencyError) Reset() {
	*x = ConsistencyError{}
	mi := &file_audit_v1_audit_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConsistencyError) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConsistencyError) ProtoMessage() {}

func (x *ConsistencyError) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConsistencyError.ProtoReflect.Descriptor instead.
func (*ConsistencyError) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{11}
}

func (x *ConsistencyError) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

func (x *ConsistencyError) GetDocumentValue() string {
	if x != nil {
		return x.DocumentValue
	}
	return ""
}

func (x *ConsistencyError) GetComputedValue() string {
	if x != nil {
		return x.ComputedValue
	}
	return ""
}

func (x *ConsistencyError) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type AuditItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ItemIndex     int32                  `protobuf:"varint,1,opt,name=item_index,json=itemIndex,proto3" json:"item_index,omitempty"`
	ProductCode   string                 `protobuf:"bytes,2,opt,name=product_code,json=productCode,proto3" json:"product_code,omitempty"`
	ProductName   string                 `protobuf:"bytes,3,opt,name=product_name,json=productName,proto3" json:"product_name,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	Issues        []string               `protobuf:"bytes,5,rep,name=issues,proto3" json:"issues,omitempty"`
	Details       *ItemDetail            `protobuf:"bytes,6,opt,name=details,proto3" json:"details,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AuditItem) Reset() {
	*x = AuditItem{}
	mi := &file_audit_v1_audit_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AuditItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AuditItem) ProtoMessage() {}

func (x *AuditItem) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AuditItem.ProtoReflect.Descriptor instead.
func (*AuditItem) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{12}
}

func (x *AuditItem) GetItemIndex() int32 {
	if x != nil {
		return x.ItemIndex
	}
	return 0
}

func (x *AuditItem) GetProductCode() string {
	if x != nil {
		return x.ProductCode
	}
	return ""
}

func (x *AuditItem) GetProductName() string {
	if x != nil {
		return x.ProductName
	}
	return ""
}

func (x *AuditItem) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *AuditItem) GetIssues() []string {
	if x != nil {
		return x.Issues
	}
	return nil
}

func (x *AuditItem) GetDetails() *ItemDetail {
	if x != nil {
		return x.Details
	}
	return nil
}

type ItemDetail struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Quantity        float64                `protobuf:"fixed64,1,opt,name=quantity,proto3" json:"quantity,omitempty"`
	UnitPrice       float64                `protobuf:"fixed64,2,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	AmountTotal     float64                `protobuf:"fixed64,3,opt,name=amount_total,json=amountTotal,proto3" json:"amount_total,omitempty"`
	Ncm             string                 `protobuf:"bytes,4,opt,name=ncm,proto3" json:"ncm,omitempty"`
	Cest            string                 `protobuf:"bytes,5,opt,name=cest,proto3" json:"cest,omitempty"`
	Cfop            string                 `protobuf:"bytes,6,opt,name=cfop,proto3" json:"cfop,omitempty"`
	Cst             string                 `protobuf:"bytes,7,opt,name=cst,proto3" json:"cst,omitempty"`
	TaxBase         float64                `protobuf:"fixed64,8,opt,name=tax_base,json=taxBase,proto3" json:"tax_base,omitempty"`
	TaxRate         float64                `protobuf:"fixed64,9,opt,name=tax_rate,json=taxRate,proto3" json:"tax_rate,omitempty"`
	TaxValue        float64                `protobuf:"fixed64,10,opt,name=tax_value,json=taxValue,proto3" json:"tax_value,omitempty"`
	RefTaxValue     float64                `protobuf:"fixed64,11,opt,name=ref_tax_value,json=refTaxValue,proto3" json:"ref_tax_value,omitempty"`
	RefMvaPercent   float64                `protobuf:"fixed64,12,opt,name=ref_mva_percent,json=refMvaPercent,proto3" json:"ref_mva_percent,omitempty"`
	RefBenefitValue float64                `protobuf:"fixed64,13,opt,name=ref_benefit_value,json=refBenefitValue,proto3" json:"ref_benefit_value,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ItemDetail) Reset() {
	*x = ItemDetail{}
	mi := &file_audit_v1_audit_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ItemDetail) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ItemDetail) ProtoMessage() {}

func (x *ItemDetail) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ItemDetail.ProtoReflect.Descriptor instead.
func (*ItemDetail) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{13}
}

func (x *ItemDetail) GetQuantity() float64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *ItemDetail) GetUnitPrice() float64 {
	if x != nil {
		return x.UnitPrice
	}
	return 0
}

func (x *ItemDetail) GetAmountTotal() float64 {
	if x != nil {
		return x.AmountTotal
	}
	return 0
}

func (x *ItemDetail) GetNcm() string {
	if x != nil {
		return x.Ncm
	}
	return ""
}

func (x *ItemDetail) GetCest() string {
	if x != nil {
		return x.Cest
	}
	return ""
}

func (x *ItemDetail) GetCfop() string {
	if x != nil {
		return x.Cfop
	}
	return ""
}

func (x *ItemDetail) GetCst() string {
	if x != nil {
		return x.Cst
	}
	return ""
}

func (x *ItemDetail) GetTaxBase() float64 {
	if x != nil {
		return x.TaxBase
	}
	return 0
}

func (x *ItemDetail) GetTaxRate() float64 {
	if x != nil {
		return x.TaxRate
	}
	return 0
}

func (x *ItemDetail) GetTaxValue() float64 {
	if x != nil {
		return x.TaxValue
	}
	return 0
}

func (x *ItemDetail) GetRefTaxValue() float64 {
	if x != nil {
		return x.RefTaxValue
	}
	return 0
}

func (x *ItemDetail) GetRefMvaPercent() float64 {
	if x != nil {
		return x.RefMvaPercent
	}
	return 0
}

func (x *ItemDetail) GetRefBenefitValue() float64 {
	if x != nil {
		return x.RefBenefitValue
	}
	return 0
}

type ListAuditHistoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Offset        int32                  `protobuf:"varint,1,opt,name=offset,proto3" json:"offset,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAuditHistoryRequest) Reset() {
	*x = ListAuditHistoryRequest{}
	mi := &file_audit_v1_audit_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAuditHistoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAuditHistoryRequest) ProtoMessage() {}

func (x *ListAuditHistoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAuditHistoryRequest.ProtoReflect.Descriptor instead.
func (*ListAuditHistoryRequest) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{14}
}

func (x *ListAuditHistoryRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

func (x *ListAuditHistoryRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListAuditHistoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Audits        []*AuditSummary        `protobuf:"bytes,1,rep,name=audits,proto3" json:"audits,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAuditHistoryResponse) Reset() {
	*x = ListAuditHistoryResponse{}
	mi := &file_audit_v1_audit_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAuditHistoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAuditHistoryResponse) ProtoMessage() {}

func (x *ListAuditHistoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAuditHistoryResponse.ProtoReflect.Descriptor instead.
func (*ListAuditHistoryResponse) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{15}
}

func (x *ListAuditHistoryResponse) GetAudits() []*AuditSummary {
	if x != nil {
		return x.Audits
	}
	return nil
}

func (x *ListAuditHistoryResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

type AuditSummary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AuditId       string                 `protobuf:"bytes,1,opt,name=audit_id,json=auditId,proto3" json:"audit_id,omitempty"`
	DocumentKey   string                 `protobuf:"bytes,2,opt,name=document_key,json=documentKey,proto3" json:"document_key,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	CompletedAt   *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	Summary       *ResultSummary         `protobuf:"bytes,6,opt,name=summary,proto3" json:"summary,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AuditSummary) Reset() {
	*x = AuditSummary{}
	mi := &file_audit_v1_audit_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AuditSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AuditSummary) ProtoMessage() {}

func (x *AuditSummary) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AuditSummary.ProtoReflect.Descriptor instead.
func (*AuditSummary) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{16}
}

func (x *AuditSummary) GetAuditId() string {
	if x != nil {
		return x.AuditId
	}
	return ""
}

func (x *AuditSummary) GetDocumentKey() string {
	if x != nil {
		return x.DocumentKey
	}
	return ""
}

func (x *AuditSummary) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *AuditSummary) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *AuditSummary) GetCompletedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CompletedAt
	}
	return nil
}

func (x *AuditSummary) GetSummary() *ResultSummary {
	if x != nil {
		return x.Summary
	}
	return nil
}

type DownloadReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AuditId       string                 `protobuf:"bytes,1,opt,name=audit_id,json=auditId,proto3" json:"audit_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DownloadReportRequest) Reset() {
	*x = DownloadReportRequest{}
	mi := &file_audit_v1_audit_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DownloadReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DownloadReportRequest) ProtoMessage() {}

func (x *DownloadReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DownloadReportRequest.ProtoReflect.Descriptor instead.
func (*DownloadReportRequest) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{17}
}

func (x *DownloadReportRequest) GetAuditId() string {
	if x != nil {
		return x.AuditId
	}
	return ""
}

type DownloadReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DownloadReportResponse) Reset() {
	*x = DownloadReportResponse{}
	mi := &file_audit_v1_audit_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DownloadReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DownloadReportResponse) ProtoMessage() {}

func (x *DownloadReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DownloadReportResponse.ProtoReflect.Descriptor instead.
func (*DownloadReportResponse) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{18}
}

func (x *DownloadReportResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *DownloadReportResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

var File_audit_v1_audit_proto protoreflect.FileDescriptor

const file_audit_v1_audit_proto_rawDesc = "" +
	"\n" +
	"\x14audit/v1/audit.proto\x12\baudit.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"M\n" +
	"\x15UploadDocumentRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\"\x8f\x01\n" +
	"\x16UploadDocumentResponse\x12\x19\n" +
	"\baudit_id\x18\x01 \x01(\tR\aauditId\x12!\n" +
	"\fdocument_key\x18\x02 \x01(\tR\vdocumentKey\x12\x1f\n" +
	"\vtotal_items\x18\x03 \x01(\x05R\n" +
	"totalItems\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\".\n" +
	"\x11StartAuditRequest\x12\x19\n" +
	"\baudit_id\x18\x01 \x01(\tR\aauditId\"G\n" +
	"\x12StartAuditResponse\x12\x19\n" +
	"\baudit_id\x18\x01 \x01(\tR\aauditId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"2\n" +
	"\x15GetAuditStatusRequest\x12\x19\n" +
	"\baudit_id\x18\x01 \x01(\tR\aauditId\".\n" +
	"\x11WatchAuditRequest\x12\x19\n" +
	"\baudit_id\x18\x01 \x01(\tR\aauditId\"\xcf\x01\n" +
	"\vAuditStatus\x12\x19\n" +
	"\baudit_id\x18\x01 \x01(\tR\aauditId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1a\n" +
	"\bprogress\x18\x03 \x01(\x05R\bprogress\x12!\n" +
	"\fcurrent_step\x18\x04 \x01(\tR\vcurrentStep\x12\x14\n" +
	"\x05error\x18\x05 \x01(\tR\x05error\x128\n" +
	"\ttimestamp\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\ttimestamp\"3\n" +
	"\x16GetAuditResultsRequest\x12\x19\n" +
	"\baudit_id\x18\x01 \x01(\tR\aauditId\"\x82\x02\n" +
	"\x17GetAuditResultsResponse\x121\n" +
	"\asummary\x18\x01 \x01(\v2\x17.audit.v1.ResultSummaryR\asummary\x12)\n" +
	"\x05items\x18\x02 \x03(\v2\x13.audit.v1.AuditItemR\x05items\x12>\n" +
	"\x0einvoice_header\x18\x03 \x01(\v2\x17.audit.v1.InvoiceHeaderR\rinvoiceHeader\x12I\n" +
	"\x12consistency_errors\x18\x04 \x03(\v2\x1a.audit.v1.ConsistencyErrorR\x11consistencyErrors\"a\n" +
	"\rResultSummary\x12\x14\n" +
	"\x05total\x18\x01 \x01(\x05R\x05total\x12\x1c\n" +
	"\tcompliant\x18\x02 \x01(\x05R\tcompliant\x12\x1c\n" +
	"\tdivergent\x18\x03 \x01(\x05R\tdivergent\"\xa7\x01\n" +
	"\rInvoiceHeader\x12!\n" +
	"\fdocument_key\x18\x01 \x01(\tR\vdocumentKey\x12\x16\n" +
	"\x06issuer\x18\x02 \x01(\tR\x06issuer\x12\x1b\n" +
	"\tissued_at\x18\x03 \x01(\tR\bissuedAt\x12!\n" +
	"\ftotal_amount\x18\x04 \x01(\x01R\vtotalAmount\x12\x1b\n" +
	"\ttotal_tax\x18\x05 \x01(\x01R\btotalTax\"\x90\x01\n" +
	"\x10ConsistencyError\x12\x14\n" +
	"\x05field\x18\x01 \x01(\tR\x05field\x12%\n" +
	"\x0edocument_value\x18\x02 \x01(\tR\rdocumentValue\x12%\n" +
	"\x0ecomputed_value\x18\x03 \x01(\tR\rcomputedValue\x12\x18\n" +
	"\amessage\x18\x04 \x01(\tR\amessage\"\xd0\x01\n" +
	"\tAuditItem\x12\x1d\n" +
	"\n" +
	"item_index\x18\x01 \x01(\x05R\titemIndex\x12!\n" +
	"\fproduct_code\x18\x02 \x01(\tR\vproductCode\x12!\n" +
	"\fproduct_name\x18\x03 \x01(\tR\vproductName\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x16\n" +
	"\x06issues\x18\x05 \x03(\tR\x06issues\x12.\n" +
	"\adetails\x18\x06 \x01(\v2\x14.audit.v1.ItemDetailR\adetails\"\x81\x03\n" +
	"\n" +
	"ItemDetail\x12\x1a\n" +
	"\bquantity\x18\x01 \x01(\x01R\bquantity\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x02 \x01(\x01R\tunitPrice\x12!\n" +
	"\famount_total\x18\x03 \x01(\x01R\vamountTotal\x12\x10\n" +
	"\x03ncm\x18\x04 \x01(\tR\x03ncm\x12\x12\n" +
	"\x04cest\x18\x05 \x01(\tR\x04cest\x12\x12\n" +
	"\x04cfop\x18\x06 \x01(\tR\x04cfop\x12\x10\n" +
	"\x03cst\x18\a \x01(\tR\x03cst\x12\x19\n" +
	"\btax_base\x18\b \x01(\x01R\ataxBase\x12\x19\n" +
	"\btax_rate\x18\t \x01(\x01R\ataxRate\x12\x1b\n" +
	"\ttax_value\x18\n" +
	" \x01(\x01R\btaxValue\x12\"\n" +
	"\rref_tax_value\x18\v \x01(\x01R\vrefTaxValue\x12&\n" +
	"\x0fref_mva_percent\x18\f \x01(\x01R\rrefMvaPercent\x12*\n" +
	"\x11ref_benefit_value\x18\r \x01(\x01R\x0frefBenefitValue\"G\n" +
	"\x17ListAuditHistoryRequest\x12\x16\n" +
	"\x06offset\x18\x01 \x01(\x05R\x06offset\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\"`\n" +
	"\x18ListAuditHistoryResponse\x12.\n" +
	"\x06audits\x18\x01 \x03(\v2\x16.audit.v1.AuditSummaryR\x06audits\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total\"\x91\x02\n" +
	"\fAuditSummary\x12\x19\n" +
	"\baudit_id\x18\x01 \x01(\tR\aauditId\x12!\n" +
	"\fdocument_key\x18\x02 \x01(\tR\vdocumentKey\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x129\n" +
	"\n" +
	"created_at\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x12=\n" +
	"\fcompleted_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\vcompletedAt\x121\n" +
	"\asummary\x18\x06 \x01(\v2\x17.audit.v1.ResultSummaryR\asummary\"2\n" +
	"\x15DownloadReportRequest\x12\x19\n" +
	"\baudit_id\x18\x01 \x01(\tR\aauditId\"N\n" +
	"\x16DownloadReportResponse\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent2\xc2\x04\n" +
	"\fAuditService\x12S\n" +
	"\x0eUploadDocument\x12\x1f.audit.v1.UploadDocumentRequest\x1a .audit.v1.UploadDocumentResponse\x12G\n" +
	"\n" +
	"StartAudit\x12\x1b.audit.v1.StartAuditRequest\x1a\x1c.audit.v1.StartAuditResponse\x12H\n" +
	"\x0eGetAuditStatus\x12\x1f.audit.v1.GetAuditStatusRequest\x1a\x15.audit.v1.AuditStatus\x12B\n" +
	"\n" +
	"WatchAudit\x12\x1b.audit.v1.WatchAuditRequest\x1a\x15.audit.v1.AuditStatus0\x01\x12V\n" +
	"\x0fGetAuditResults\x12 .audit.v1.GetAuditResultsRequest\x1a!.audit.v1.GetAuditResultsResponse\x12Y\n" +
	"\x10ListAuditHistory\x12!.audit.v1.ListAuditHistoryRequest\x1a\".audit.v1.ListAuditHistoryResponse\x12S\n" +
	"\x0eDownloadReport\x12\x1f.audit.v1.DownloadReportRequest\x1a .audit.v1.DownloadReportResponseB9Z7github.com/audittax/audittax/gen/proto/audit/v1;auditv1b\x06proto3"

var (
	file_audit_v1_audit_proto_rawDescOnce sync.Once
	file_audit_v1_audit_proto_rawDescData []byte
)

func file_audit_v1_audit_proto_rawDescGZIP() []byte {
	file_audit_v1_audit_proto_rawDescOnce.Do(func() {
		file_audit_v1_audit_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_audit_v1_audit_proto_rawDesc), len(file_audit_v1_audit_proto_rawDesc)))
	})
	return file_audit_v1_audit_proto_rawDescData
}

var file_audit_v1_audit_proto_msgTypes = make([]protoimpl.MessageInfo, 19)
var file_audit_v1_audit_proto_goTypes = []any{
	(*UploadDocumentRequest)(nil),    // 0: audit.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),   // 1: audit.v1.UploadDocumentResponse
	(*StartAuditRequest)(nil),        // 2: audit.v1.StartAuditRequest
	(*StartAuditResponse)(nil),       // 3: audit.v1.StartAuditResponse
	(*GetAuditStatusRequest)(nil),    // 4: audit.v1.GetAuditStatusRequest
	(*WatchAuditRequest)(nil),        // 5: audit.v1.WatchAuditRequest
	(*AuditStatus)(nil),              // 6: audit.v1.AuditStatus
	(*GetAuditResultsRequest)(nil),   // 7: audit.v1.GetAuditResultsRequest
	(*GetAuditResultsResponse)(nil),  // 8: audit.v1.GetAuditResultsResponse
	(*ResultSummary)(nil),            // 9: audit.v1.ResultSummary
	(*InvoiceHeader)(nil),            // 10: audit.v1.InvoiceHeader
	(*ConsistencyError)(nil),         // 11: audit.v1.ConsistencyError
	(*AuditItem)(nil),                // 12: audit.v1.AuditItem
	(*ItemDetail)(nil),               // 13: audit.v1.ItemDetail
	(*ListAuditHistoryRequest)(nil),  // 14: audit.v1.ListAuditHistoryRequest
	(*ListAuditHistoryResponse)(nil), // 15: audit.v1.ListAuditHistoryResponse
	(*AuditSummary)(nil),             // 16: audit.v1.AuditSummary
	(*DownloadReportRequest)(nil),    // 17: audit.v1.DownloadReportRequest
	(*DownloadReportResponse)(nil),   // 18: audit.v1.DownloadReportResponse
	(*timestamppb.Timestamp)(nil),    // 19: google.protobuf.Timestamp
}
var file_audit_v1_audit_proto_depIdxs = []int32{
	19, // 0: audit.v1.AuditStatus.timestamp:type_name -> google.protobuf.Timestamp
	9,  // 1: audit.v1.GetAuditResultsResponse.summary:type_name -> audit.v1.ResultSummary
	12, // 2: audit.v1.GetAuditResultsResponse.items:type_name -> audit.v1.AuditItem
	10, // 3: audit.v1.GetAuditResultsResponse.invoice_header:type_name -> audit.v1.InvoiceHeader
	11, // 4: audit.v1.GetAuditResultsResponse.consistency_errors:type_name -> audit.v1.ConsistencyError
	13, // 5: audit.v1.AuditItem.details:type_name -> audit.v1.ItemDetail
	16, // 6: audit.v1.ListAuditHistoryResponse.audits:type_name -> audit.v1.AuditSummary
	19, // 7: audit.v1.AuditSummary.created_at:type_name -> google.protobuf.Timestamp
	19, // 8: audit.v1.AuditSummary.completed_at:type_name -> google.protobuf.Timestamp
	9,  // 9: audit.v1.AuditSummary.summary:type_name -> audit.v1.ResultSummary
	0,  // 10: audit.v1.AuditService.UploadDocument:input_type -> audit.v1.UploadDocumentRequest
	2,  // 11: audit.v1.AuditService.StartAudit:input_type -> audit.v1.StartAuditRequest
	4,  // 12: audit.v1.AuditService.GetAuditStatus:input_type -> audit.v1.GetAuditStatusRequest
	5,  // 13: audit.v1.AuditService.WatchAudit:input_type -> audit.v1.WatchAuditRequest
	7,  // 14: audit.v1.AuditService.GetAuditResults:input_type -> audit.v1.GetAuditResultsRequest
	14, // 15: audit.v1.AuditService.ListAuditHistory:input_type -> audit.v1.ListAuditHistoryRequest
	17, // 16: audit.v1.AuditService.DownloadReport:input_type -> audit.v1.DownloadReportRequest
	1,  // 17: audit.v1.AuditService.UploadDocument:output_type -> audit.v1.UploadDocumentResponse
	3,  // 18: audit.v1.AuditService.StartAudit:output_type -> audit.v1.StartAuditResponse
	6,  // 19: audit.v1.AuditService.GetAuditStatus:output_type -> audit.v1.AuditStatus
	6,  // 20: audit.v1.AuditService.WatchAudit:output_type -> audit.v1.AuditStatus
	8,  // 21: audit.v1.AuditService.GetAuditResults:output_type -> audit.v1.GetAuditResultsResponse
	15, // 22: audit.v1.AuditService.ListAuditHistory:output_type -> audit.v1.ListAuditHistoryResponse
	18, // 23: audit.v1.AuditService.DownloadReport:output_type -> audit.v1.DownloadReportResponse
	17, // [17:24] is the sub-list for method output_type
	10, // [10:17] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_audit_v1_audit_proto_init() }
func file_audit_v1_audit_proto_init() {
	if File_audit_v1_audit_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_audit_v1_audit_proto_rawDesc), len(file_audit_v1_audit_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   19,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_audit_v1_audit_proto_goTypes,
		DependencyIndexes: file_audit_v1_audit_proto_depIdxs,
		MessageInfos:      file_audit_v1_audit_proto_msgTypes,
	}.Build()
	File_audit_v1_audit_proto = out.File
	file_audit_v1_audit_proto_goTypes = nil
	file_audit_v1_audit_proto_depIdxs = nil
}
