// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: voucher.proto

package pb

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
	VoucherService_CheckVoucher_FullMethodName         = "/voucher.v1.VoucherService/CheckVoucher"
	VoucherService_ConfirmVoucher_FullMethodName       = "/voucher.v1.VoucherService/ConfirmVoucher"
	VoucherService_ListRejectionReasons_FullMethodName = "/voucher.v1.VoucherService/ListRejectionReasons"
)

// VoucherServiceClient is the client API for VoucherService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// VoucherService バウチャーの適格性チェックと引き換え確定
type VoucherServiceClient interface {
	// CheckVoucher 副作用なしで適格性を評価し、承認時は割引額を返す
	CheckVoucher(ctx context.Context, in *CheckVoucherRequest, opts ...grpc.CallOption) (*CheckVoucherResponse, error)
	// ConfirmVoucher 使用回数上限を再検査の上で引き換えを台帳に記録し、割引を確定する
	ConfirmVoucher(ctx context.Context, in *ConfirmVoucherRequest, opts ...grpc.CallOption) (*ConfirmVoucherResponse, error)
	// ListRejectionReasons 適格性評価が返しうる拒否理由コードの一覧を返す
	ListRejectionReasons(ctx context.Context, in *ListRejectionReasonsRequest, opts ...grpc.CallOption) (*ListRejectionReasonsResponse, error)
}

type voucherServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewVoucherServiceClient(cc grpc.ClientConnInterface) VoucherServiceClient {
	return &voucherServiceClient{cc}
}

func (c *voucherServiceClient) CheckVoucher(ctx context.Context, in *CheckVoucherRequest, opts ...grpc.CallOption) (*CheckVoucherResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CheckVoucherResponse)
	err := c.cc.Invoke(ctx, VoucherService_CheckVoucher_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *voucherServiceClient) ConfirmVoucher(ctx context.Context, in *ConfirmVoucherRequest, opts ...grpc.CallOption) (*ConfirmVoucherResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ConfirmVoucherResponse)
	err := c.cc.Invoke(ctx, VoucherService_ConfirmVoucher_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *voucherServiceClient) ListRejectionReasons(ctx context.Context, in *ListRejectionReasonsRequest, opts ...grpc.CallOption) (*ListRejectionReasonsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListRejectionReasonsResponse)
	err := c.cc.Invoke(ctx, VoucherService_ListRejectionReasons_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// VoucherServiceServer is the server API for VoucherService service.
// All implementations must embed UnimplementedVoucherServiceServer
// for forward compatibility.
//
// VoucherService バウチャーの適格性チェックと引き換え確定
type VoucherServiceServer interface {
	// CheckVoucher 副作用なしで適格性を評価し、承認時は割引額を返す
	CheckVoucher(context.Context, *CheckVoucherRequest) (*CheckVoucherResponse, error)
	// ConfirmVoucher 使用回数上限を再検査の上で引き換えを台帳に記録し、割引を確定する
	ConfirmVoucher(context.Context, *ConfirmVoucherRequest) (*ConfirmVoucherResponse, error)
	// ListRejectionReasons 適格性評価が返しうる拒否理由コードの一覧を返す
	ListRejectionReasons(context.Context, *ListRejectionReasonsRequest) (*ListRejectionReasonsResponse, error)
	mustEmbedUnimplementedVoucherServiceServer()
}

// UnimplementedVoucherServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedVoucherServiceServer struct{}

func (UnimplementedVoucherServiceServer) CheckVoucher(context.Context, *CheckVoucherRequest) (*CheckVoucherResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckVoucher not implemented")
}
func (UnimplementedVoucherServiceServer) ConfirmVoucher(context.Context, *ConfirmVoucherRequest) (*ConfirmVoucherResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ConfirmVoucher not implemented")
}
func (UnimplementedVoucherServiceServer) ListRejectionReasons(context.Context, *ListRejectionReasonsRequest) (*ListRejectionReasonsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListRejectionReasons not implemented")
}
func (UnimplementedVoucherServiceServer) mustEmbedUnimplementedVoucherServiceServer() {}
func (UnimplementedVoucherServiceServer) testEmbeddedByValue()                        {}

// UnsafeVoucherServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to VoucherServiceServer will
// result in compilation errors.
type UnsafeVoucherServiceServer interface {
	mustEmbedUnimplementedVoucherServiceServer()
}

func RegisterVoucherServiceServer(s grpc.ServiceRegistrar, srv VoucherServiceServer) {
	// If the following call pancis, it indicates UnimplementedVoucherServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&VoucherService_ServiceDesc, srv)
}

func _VoucherService_CheckVoucher_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckVoucherRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VoucherServiceServer).CheckVoucher(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VoucherService_CheckVoucher_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VoucherServiceServer).CheckVoucher(ctx, req.(*CheckVoucherRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VoucherService_ConfirmVoucher_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConfirmVoucherRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VoucherServiceServer).ConfirmVoucher(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VoucherService_ConfirmVoucher_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VoucherServiceServer).ConfirmVoucher(ctx, req.(*ConfirmVoucherRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VoucherService_ListRejectionReasons_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRejectionReasonsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VoucherServiceServer).ListRejectionReasons(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VoucherService_ListRejectionReasons_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VoucherServiceServer).ListRejectionReasons(ctx, req.(*ListRejectionReasonsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// VoucherService_ServiceDesc is the grpc.ServiceDesc for VoucherService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var VoucherService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "voucher.v1.VoucherService",
	HandlerType: (*VoucherServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CheckVoucher",
			Handler:    _VoucherService_CheckVoucher_Handler,
		},
		{
			MethodName: "ConfirmVoucher",
			Handler:    _VoucherService_ConfirmVoucher_Handler,
		},
		{
			MethodName: "ListRejectionReasons",
			Handler:    _VoucherService_ListRejectionReasons_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "voucher.proto",
}
