// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: adminv1/admin.proto

package adminv1

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
	AdminService_StepDown_FullMethodName = "/adminv1.AdminService/StepDown"
	AdminService_SyncFrom_FullMethodName = "/adminv1.AdminService/SyncFrom"
	AdminService_Reconfig_FullMethodName = "/adminv1.AdminService/Reconfig"
)

// AdminServiceClient is the client API for AdminService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AdminService carries operator commands: they act on the node they are sent
// to, not on the set as a whole.
type AdminServiceClient interface {
	StepDown(ctx context.Context, in *StepDownRequest, opts ...grpc.CallOption) (*StepDownResponse, error)
	SyncFrom(ctx context.Context, in *SyncFromRequest, opts ...grpc.CallOption) (*SyncFromResponse, error)
	Reconfig(ctx context.Context, in *ReconfigRequest, opts ...grpc.CallOption) (*ReconfigResponse, error)
}

type adminServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAdminServiceClient(cc grpc.ClientConnInterface) AdminServiceClient {
	return &adminServiceClient{cc}
}

func (c *adminServiceClient) StepDown(ctx context.Context, in *StepDownRequest, opts ...grpc.CallOption) (*StepDownResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StepDownResponse)
	err := c.cc.Invoke(ctx, AdminService_StepDown_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) SyncFrom(ctx context.Context, in *SyncFromRequest, opts ...grpc.CallOption) (*SyncFromResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SyncFromResponse)
	err := c.cc.Invoke(ctx, AdminService_SyncFrom_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) Reconfig(ctx context.Context, in *ReconfigRequest, opts ...grpc.CallOption) (*ReconfigResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReconfigResponse)
	err := c.cc.Invoke(ctx, AdminService_Reconfig_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AdminServiceServer is the server API for AdminService service.
// All implementations must embed UnimplementedAdminServiceServer
// for forward compatibility.
//
// AdminService carries operator commands: they act on the node they are sent
// to, not on the set as a whole.
type AdminServiceServer interface {
	StepDown(context.Context, *StepDownRequest) (*StepDownResponse, error)
	SyncFrom(context.Context, *SyncFromRequest) (*SyncFromResponse, error)
	Reconfig(context.Context, *ReconfigRequest) (*ReconfigResponse, error)
	mustEmbedUnimplementedAdminServiceServer()
}

// UnimplementedAdminServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAdminServiceServer struct{}

func (UnimplementedAdminServiceServer) StepDown(context.Context, *StepDownRequest) (*StepDownResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StepDown not implemented")
}
func (UnimplementedAdminServiceServer) SyncFrom(context.Context, *SyncFromRequest) (*SyncFromResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SyncFrom not implemented")
}
func (UnimplementedAdminServiceServer) Reconfig(context.Context, *ReconfigRequest) (*ReconfigResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Reconfig not implemented")
}
func (UnimplementedAdminServiceServer) mustEmbedUnimplementedAdminServiceServer() {}
func (UnimplementedAdminServiceServer) testEmbeddedByValue()                      {}

// UnsafeAdminServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AdminServiceServer will
// result in compilation errors.
type UnsafeAdminServiceServer interface {
	mustEmbedUnimplementedAdminServiceServer()
}

func RegisterAdminServiceServer(s grpc.ServiceRegistrar, srv AdminServiceServer) {
	// If the following call panics, it indicates UnimplementedAdminServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AdminService_ServiceDesc, srv)
}

func _AdminService_StepDown_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StepDownRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).StepDown(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_StepDown_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).StepDown(ctx, req.(*StepDownRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_SyncFrom_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SyncFromRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).SyncFrom(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_SyncFrom_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).SyncFrom(ctx, req.(*SyncFromRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_Reconfig_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReconfigRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).Reconfig(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_Reconfig_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).Reconfig(ctx, req.(*ReconfigRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AdminService_ServiceDesc is the grpc.ServiceDesc for AdminService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AdminService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "adminv1.AdminService",
	HandlerType: (*AdminServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "StepDown",
			Handler:    _AdminService_StepDown_Handler,
		},
		{
			MethodName: "SyncFrom",
			Handler:    _AdminService_SyncFrom_Handler,
		},
		{
			MethodName: "Reconfig",
			Handler:    _AdminService_Reconfig_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "adminv1/admin.proto",
}
