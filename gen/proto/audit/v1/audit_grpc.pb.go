// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: audit/v1/audit.proto

package auditv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	AuditService_UploadDocument_FullMethodName   = "/audit.v1.AuditService/UploadDocument"
	AuditService_StartAudit_FullMethodName       = "/audit.v1.AuditService/StartAudit"
	AuditService_GetAuditStatus_FullMethodName   = "/audit.v1.AuditService/GetAuditStatus"
	AuditService_WatchAudit_FullMethodName       = "/audit.v1.AuditService/WatchAudit"
	AuditService_GetAuditResults_FullMethodName  = "/audit.v1.AuditService/GetAuditResults"
	AuditService_ListAuditHistory_FullMethodName = "/audit.v1.AuditService/ListAuditHistory"
	AuditService_DownloadReport_FullMethodName   = "/audit.v1.AuditService/DownloadReport"
)

// AuditServiceClient is the client API for AuditService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AuditService owns the fiscal audit lifecycle: document upload, audit
// execution, status tracking over polling or a server stream, detailed
// results and history.
type AuditServiceClient interface {
	UploadDocument(ctx context.Context, in *UploadDocumentRequest, opts ...grpc.CallOption) (*UploadDocumentResponse, error)
	StartAudit(ctx context.Context, in *StartAuditRequest, opts ...grpc.CallOption) (*StartAuditResponse, error)
	GetAuditStatus(ctx context.Context, in *GetAuditStatusRequest, opts ...grpc.CallOption) (*AuditStatus, error)
	// WatchAudit streams status changes for one audit until it reaches a
	// terminal status or the client cancels.
	WatchAudit(ctx context.Context, in *WatchAuditRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[AuditStatus], error)
	GetAuditResults(ctx context.Context, in *GetAuditResultsRequest, opts ...grpc.CallOption) (*GetAuditResultsResponse, error)
	ListAuditHistory(ctx context.Context, in *ListAuditHistoryRequest, opts ...grpc.CallOption) (*ListAuditHistoryResponse, error)
	DownloadReport(ctx context.Context, in *DownloadReportRequest, opts ...grpc.CallOption) (*DownloadReportResponse, error)
}

type auditServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuditServiceClient(cc grpc.ClientConnInterface) AuditServiceClient {
	return &auditServiceClient{cc}
}

func (c *auditServiceClient) UploadDocument(ctx context.Context, in *UploadDocumentRequest, opts ...grpc.CallOption) (*UploadDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadDocumentResponse)
	err := c.cc.Invoke(ctx, AuditService_UploadDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *auditServiceClient) StartAudit(ctx context.Context, in *StartAuditRequest, opts ...grpc.CallOption) (*StartAuditResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StartAuditResponse)
	err := c.cc.Invoke(ctx, AuditService_StartAudit_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *auditServiceClient) GetAuditStatus(ctx context.Context, in *GetAuditStatusRequest, opts ...grpc.CallOption) (*AuditStatus, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AuditStatus)
	err := c.cc.Invoke(ctx, AuditService_GetAuditStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *auditServiceClient) WatchAudit(ctx context.Context, in *WatchAuditRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[AuditStatus], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &AuditService_ServiceDesc.Streams[0], AuditService_WatchAudit_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[WatchAuditRequest, AuditStatus]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type AuditService_WatchAuditClient = grpc.ServerStreamingClient[AuditStatus]

func (c *auditServiceClient) GetAuditResults(ctx context.Context, in *GetAuditResultsRequest, opts ...grpc.CallOption) (*GetAuditResultsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetAuditResultsResponse)
	err := c.cc.Invoke(ctx, AuditService_GetAuditResults_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *auditServiceClient) ListAuditHistory(ctx context.Context, in *ListAuditHistoryRequest, opts ...grpc.CallOption) (*ListAuditHistoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListAuditHistoryResponse)
	err := c.cc.Invoke(ctx, AuditService_ListAuditHistory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *auditServiceClient) DownloadReport(ctx context.Context, in *DownloadReportRequest, opts ...grpc.CallOption) (*DownloadReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DownloadReportResponse)
	err := c.cc.Invoke(ctx, AuditService_DownloadReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AuditServiceServer is the server API for AuditService service.
// All implementations must embed UnimplementedAuditServiceServer
// for forward compatibility.
//
// AuditService owns the fiscal audit lifecycle: document upload, audit
// execution, status tracking over polling or a server stream, detailed
// results and history.
type AuditServiceServer interface {
	UploadDocument(context.Context, *UploadDocumentRequest) (*UploadDocumentResponse, error)
	StartAudit(context.Context, *StartAuditRequest) (*StartAuditResponse, error)
	GetAuditStatus(context.Context, *GetAuditStatusRequest) (*AuditStatus, error)
	// WatchAudit streams status changes for one audit until it reaches a
	// terminal status or the client cancels.
	WatchAudit(*WatchAuditRequest, grpc.ServerStreamingServer[AuditStatus]) error
	GetAuditResults(context.Context, *GetAuditResultsRequest) (*GetAuditResultsResponse, error)
	ListAuditHistory(context.Context, *ListAuditHistoryRequest) (*ListAuditHistoryResponse, error)
	DownloadReport(context.Context, *DownloadReportRequest) (*DownloadReportResponse, error)
	mustEmbedUnimplementedAuditServiceServer()
}

// UnimplementedAuditServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAuditServiceServer struct{}

func (UnimplementedAuditServiceServer) UploadDocument(context.Context, *UploadDocumentRequest) (*UploadDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UploadDocument not implemented")
}
func (UnimplementedAuditServiceServer) StartAudit(context.Context, *StartAuditRequest) (*StartAuditResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartAudit not implemented")
}
func (UnimplementedAuditServiceServer) GetAuditStatus(context.Context, *GetAuditStatusRequest) (*AuditStatus, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAuditStatus not implemented")
}
func (UnimplementedAuditServiceServer) WatchAudit(*WatchAuditRequest, grpc.ServerStreamingServer[AuditStatus]) error {
	return status.Errorf(codes.Unimplemented, "method WatchAudit not implemented")
}
func (UnimplementedAuditServiceServer) GetAuditResults(context.Context, *GetAuditResultsRequest) (*GetAuditResultsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAuditResults not implemented")
}
func (UnimplementedAuditServiceServer) ListAuditHistory(context.Context, *ListAuditHistoryRequest) (*ListAuditHistoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListAuditHistory not implemented")
}
func (UnimplementedAuditServiceServer) DownloadReport(context.Context, *DownloadReportRequest) (*DownloadReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DownloadReport not implemented")
}
func (UnimplementedAuditServiceServer) mustEmbedUnimplementedAuditServiceServer() {}
func (UnimplementedAuditServiceServer) testEmbeddedByValue()                      {}

// UnsafeAuditServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AuditServiceServer will
// result in compilation errors.
type UnsafeAuditServiceServer interface {
	mustEmbedUnimplementedAuditServiceServer()
}

func RegisterAuditServiceServer(s grpc.ServiceRegistrar, srv AuditServiceServer) {
	// If the following call pancis, it indicates UnimplementedAuditServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AuditService_ServiceDesc, srv)
}

func _AuditService_UploadDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuditServiceServer).UploadDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AuditService_UploadDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AuditServiceServer).UploadDocument(ctx, req.(*UploadDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AuditService_StartAudit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartAuditRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuditServiceServer).StartAudit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AuditService_StartAudit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AuditServiceServer).StartAudit(ctx, req.(*StartAuditRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AuditService_GetAuditStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAuditStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuditServiceServer).GetAuditStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AuditService_GetAuditStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AuditServiceServer).GetAuditStatus(ctx, req.(*GetAuditStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AuditService_WatchAudit_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(WatchAuditRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(AuditServiceServer).WatchAudit(m, &grpc.GenericServerStream[WatchAuditRequest, AuditStatus]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type AuditService_WatchAuditServer = grpc.ServerStreamingServer[AuditStatus]

func _AuditService_GetAuditResults_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAuditResultsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuditServiceServer).GetAuditResults(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AuditService_GetAuditResults_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AuditServiceServer).GetAuditResults(ctx, req.(*GetAuditResultsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AuditService_ListAuditHistory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListAuditHistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuditServiceServer).ListAuditHistory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AuditService_ListAuditHistory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AuditServiceServer).ListAuditHistory(ctx, req.(*ListAuditHistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AuditService_DownloadReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DownloadReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuditServiceServer).DownloadReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AuditService_DownloadReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AuditServiceServer).DownloadReport(ctx, req.(*DownloadReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AuditService_ServiceDesc is the grpc.ServiceDesc for AuditService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AuditService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "audit.v1.AuditService",
	HandlerType: (*AuditServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UploadDocument",
			Handler:    _AuditService_UploadDocument_Handler,
		},
		{
			MethodName: "StartAudit",
			Handler:    _AuditService_StartAudit_Handler,
		},
		{
			MethodName: "GetAuditStatus",
			Handler:    _AuditService_GetAuditStatus_Handler,
		},
		{
			MethodName: "GetAuditResults",
			Handler:    _AuditService_GetAuditResults_Handler,
		},
		{
			MethodName: "ListAuditHistory",
			Handler:    _AuditService_ListAuditHistory_Handler,
		},
		{
			MethodName: "DownloadReport",
			Handler:    _AuditService_DownloadReport_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchAudit",
			Handler:       _AuditService_WatchAudit_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "audit/v1/audit.proto",
}
