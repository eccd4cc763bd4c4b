// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: voucher.proto

package pb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
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

type CheckVoucherRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	VoucherId string                 `protobuf:"bytes,1,opt,name=voucher_id,json=voucherId,proto3" json:"voucher_id,omitempty"`
	UserId    string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	// 注文小計（最小通貨単位、10進文字列）
	OrderSubtotal string `protobuf:"bytes,3,opt,name=order_subtotal,json=orderSubtotal,proto3" json:"order_subtotal,omitempty"`
	ShippingCost  string `protobuf:"bytes,4,opt,name=shipping_cost,json=shippingCost,proto3" json:"shipping_cost,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CheckVoucherRequest) Reset() {
	*x = CheckVoucherRequest{}
	mi := &file_voucher_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckVoucherRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckVoucherRequest) ProtoMessage() {}

func (x *CheckVoucherRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voucher_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckVoucherRequest.ProtoReflect.Descriptor instead.
func (*CheckVoucherRequest) Descriptor() ([]byte, []int) {
	return file_voucher_proto_rawDescGZIP(), []int{0}
}

func (x *CheckVoucherRequest) GetVoucherId() string {
	if x != nil {
		return x.VoucherId
	}
	return ""
}

func (x *CheckVoucherRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *CheckVoucherRequest) GetOrderSubtotal() string {
	if x != nil {
		return x.OrderSubtotal
	}
	return ""
}

func (x *CheckVoucherRequest) GetShippingCost() string {
	if x != nil {
		return x.ShippingCost
	}
	return ""
}

type CheckVoucherResponse struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	VoucherId string                 `protobuf:"bytes,1,opt,name=voucher_id,json=voucherId,proto3" json:"voucher_id,omitempty"`
	Approved  bool                   `protobuf:"varint,2,opt,name=approved,proto3" json:"approved,omitempty"`
	Reason    string                 `protobuf:"bytes,3,opt,name=reason,proto3" json:"reason,omitempty"`
	// BelowMinimumOrderValueの場合の不足額
	Shortfall      string `protobuf:"bytes,4,opt,name=shortfall,proto3" json:"shortfall,omitempty"`
	DiscountAmount string `protobuf:"bytes,5,opt,name=discount_amount,json=discountAmount,proto3" json:"discount_amount,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CheckVoucherResponse) Reset() {
	*x = CheckVoucherResponse{}
	mi := &file_voucher_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckVoucherResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckVoucherResponse) ProtoMessage() {}

func (x *CheckVoucherResponse) ProtoReflect() protoreflect.Message {
	mi := &file_voucher_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckVoucherResponse.ProtoReflect.Descriptor instead.
func (*CheckVoucherResponse) Descriptor() ([]byte, []int) {
	return file_voucher_proto_rawDescGZIP(), []int{1}
}

func (x *CheckVoucherResponse) GetVoucherId() string {
	if x != nil {
		return x.VoucherId
	}
	return ""
}

func (x *CheckVoucherResponse) GetApproved() bool {
	if x != nil {
		return x.Approved
	}
	return false
}

func (x *CheckVoucherResponse) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *CheckVoucherResponse) GetShortfall() string {
	if x != nil {
		return x.Shortfall
	}
	return ""
}

func (x *CheckVoucherResponse) GetDiscountAmount() string {
	if x != nil {
		return x.DiscountAmount
	}
	return ""
}

type ConfirmVoucherRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	VoucherId string                 `protobuf:"bytes,1,opt,name=voucher_id,json=voucherId,proto3" json:"voucher_id,omitempty"`
	UserId    string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	OrderId   string                 `protobuf:"bytes,3,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	// チェック時に算出された割引額（最小通貨単位、10進文字列）
	DiscountAmount string `protobuf:"bytes,4,opt,name=discount_amount,json=discountAmount,proto3" json:"discount_amount,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ConfirmVoucherRequest) Reset() {
	*x = ConfirmVoucherRequest{}
	mi := &file_voucher_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmVoucherRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmVoucherRequest) ProtoMessage() {}

func (x *ConfirmVoucherRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voucher_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmVoucherRequest.ProtoReflect.Descriptor instead.
func (*ConfirmVoucherRequest) Descriptor() ([]byte, []int) {
	return file_voucher_proto_rawDescGZIP(), []int{2}
}

func (x *ConfirmVoucherRequest) GetVoucherId() string {
	if x != nil {
		return x.VoucherId
	}
	return ""
}

func (x *ConfirmVoucherRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ConfirmVoucherRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *ConfirmVoucherRequest) GetDiscountAmount() string {
	if x != nil {
		return x.DiscountAmount
	}
	return ""
}

type ConfirmVoucherResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	VoucherId      string                 `protobuf:"bytes,1,opt,name=voucher_id,json=voucherId,proto3" json:"voucher_id,omitempty"`
	Committed      bool                   `protobuf:"varint,2,opt,name=committed,proto3" json:"committed,omitempty"`
	Reason         string                 `protobuf:"bytes,3,opt,name=reason,proto3" json:"reason,omitempty"`
	RedemptionId   string                 `protobuf:"bytes,4,opt,name=redemption_id,json=redemptionId,proto3" json:"redemption_id,omitempty"`
	DiscountAmount string                 `protobuf:"bytes,5,opt,name=discount_amount,json=discountAmount,proto3" json:"discount_amount,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ConfirmVoucherResponse) Reset() {
	*x = ConfirmVoucherResponse{}
	mi := &file_voucher_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmVoucherResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmVoucherResponse) ProtoMessage() {}

func (x *ConfirmVoucherResponse) ProtoReflect() protoreflect.Message {
	mi := &file_voucher_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmVoucherResponse.ProtoReflect.Descriptor instead.
func (*ConfirmVoucherResponse) Descriptor() ([]byte, []int) {
	return file_voucher_proto_rawDescGZIP(), []int{3}
}

func (x *ConfirmVoucherResponse) GetVoucherId() string {
	if x != nil {
		return x.VoucherId
	}
	return ""
}

func (x *ConfirmVoucherResponse) GetCommitted() bool {
	if x != nil {
		return x.Committed
	}
	return false
}

func (x *ConfirmVoucherResponse) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *ConfirmVoucherResponse) GetRedemptionId() string {
	if x != nil {
		return x.RedemptionId
	}
	return ""
}

func (x *ConfirmVoucherResponse) GetDiscountAmount() string {
	if x != nil {
		return x.DiscountAmount
	}
	return ""
}

type ListRejectionReasonsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRejectionReasonsRequest) Reset() {
	*x = ListRejectionReasonsRequest{}
	mi := &file_voucher_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRejectionReasonsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRejectionReasonsRequest) ProtoMessage() {}

func (x *ListRejectionReasonsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voucher_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRejectionReasonsRequest.ProtoReflect.Descriptor instead.
func (*ListRejectionReasonsRequest) Descriptor() ([]byte, []int) {
	return file_voucher_proto_rawDescGZIP(), []int{4}
}

type ListRejectionReasonsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reasons       []string               `protobuf:"bytes,1,rep,name=reasons,proto3" json:"reasons,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRejectionReasonsResponse) Reset() {
	*x = ListRejectionReasonsResponse{}
	mi := &file_voucher_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRejectionReasonsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRejectionReasonsResponse) ProtoMessage() {}

func (x *ListRejectionReasonsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_voucher_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRejectionReasonsResponse.ProtoReflect.Descriptor instead.
func (*ListRejectionReasonsResponse) Descriptor() ([]byte, []int) {
	return file_voucher_proto_rawDescGZIP(), []int{5}
}

func (x *ListRejectionReasonsResponse) GetReasons() []string {
	if x != nil {
		return x.Reasons
	}
	return nil
}

var File_voucher_proto protoreflect.FileDescriptor

const file_voucher_proto_rawDesc = "" +
	"\n" +
	"\rvoucher.proto\x12\n" +
	"voucher.v1\"\x99\x01\n" +
	"\x13CheckVoucherRequest\x12\x1d\n" +
	"\n" +
	"voucher_id\x18\x01 \x01(\tR\tvoucherId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12%\n" +
	"\x0eorder_subtotal\x18\x03 \x01(\tR\rorderSubtotal\x12#\n" +
	"\rshipping_cost\x18\x04 \x01(\tR\fshippingCost\"\xb0\x01\n" +
	"\x14CheckVoucherResponse\x12\x1d\n" +
	"\n" +
	"voucher_id\x18\x01 \x01(\tR\tvoucherId\x12\x1a\n" +
	"\bapproved\x18\x02 \x01(\bR\bapproved\x12\x16\n" +
	"\x06reason\x18\x03 \x01(\tR\x06reason\x12\x1c\n" +
	"\tshortfall\x18\x04 \x01(\tR\tshortfall\x12'\n" +
	"\x0fdiscount_amount\x18\x05 \x01(\tR\x0ediscountAmount\"\x93\x01\n" +
	"\x15ConfirmVoucherRequest\x12\x1d\n" +
	"\n" +
	"voucher_id\x18\x01 \x01(\tR\tvoucherId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x19\n" +
	"\border_id\x18\x03 \x01(\tR\aorderId\x12'\n" +
	"\x0fdiscount_amount\x18\x04 \x01(\tR\x0ediscountAmount\"\xbb\x01\n" +
	"\x16ConfirmVoucherResponse\x12\x1d\n" +
	"\n" +
	"voucher_id\x18\x01 \x01(\tR\tvoucherId\x12\x1c\n" +
	"\tcommitted\x18\x02 \x01(\bR\tcommitted\x12\x16\n" +
	"\x06reason\x18\x03 \x01(\tR\x06reason\x12#\n" +
	"\rredemption_id\x18\x04 \x01(\tR\fredemptionId\x12'\n" +
	"\x0fdiscount_amount\x18\x05 \x01(\tR\x0ediscountAmount\"\x1d\n" +
	"\x1bListRejectionReasonsRequest\"8\n" +
	"\x1cListRejectionReasonsResponse\x12\x18\n" +
	"\areasons\x18\x01 \x03(\tR\areasons2\xa7\x02\n" +
	"\x0eVoucherService\x12Q\n" +
	"\fCheckVoucher\x12\x1f.voucher.v1.CheckVoucherRequest\x1a .voucher.v1.CheckVoucherResponse\x12W\n" +
	"\x0eConfirmVoucher\x12!.voucher.v1.ConfirmVoucherRequest\x1a\".voucher.v1.ConfirmVoucherResponse\x12i\n" +
	"\x14ListRejectionReasons\x12'.voucher.v1.ListRejectionReasonsRequest\x1a(.voucher.v1.ListRejectionReasonsResponseB.Z,voucher-server/internal/presentation/grpc/pbb\x06proto3"

var (
	file_voucher_proto_rawDescOnce sync.Once
	file_voucher_proto_rawDescData []byte
)

func file_voucher_proto_rawDescGZIP() []byte {
	file_voucher_proto_rawDescOnce.Do(func() {
		file_voucher_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_voucher_proto_rawDesc), len(file_voucher_proto_rawDesc)))
	})
	return file_voucher_proto_rawDescData
}

var file_voucher_proto_msgTypes = make([]protoimpl.MessageInfo, 6)
var file_voucher_proto_goTypes = []any{
	(*CheckVoucherRequest)(nil),          // 0: voucher.v1.CheckVoucherRequest
	(*CheckVoucherResponse)(nil),         // 1: voucher.v1.CheckVoucherResponse
	(*ConfirmVoucherRequest)(nil),        // 2: voucher.v1.ConfirmVoucherRequest
	(*ConfirmVoucherResponse)(nil),       // 3: voucher.v1.ConfirmVoucherResponse
	(*ListRejectionReasonsRequest)(nil),  // 4: voucher.v1.ListRejectionReasonsRequest
	(*ListRejectionReasonsResponse)(nil), // 5: voucher.v1.ListRejectionReasonsResponse
}
var file_voucher_proto_depIdxs = []int32{
	0, // 0: voucher.v1.VoucherService.CheckVoucher:input_type -> voucher.v1.CheckVoucherRequest
	2, // 1: voucher.v1.VoucherService.ConfirmVoucher:input_type -> voucher.v1.ConfirmVoucherRequest
	4, // 2: voucher.v1.VoucherService.ListRejectionReasons:input_type -> voucher.v1.ListRejectionReasonsRequest
	1, // 3: voucher.v1.VoucherService.CheckVoucher:output_type -> voucher.v1.CheckVoucherResponse
	3, // 4: voucher.v1.VoucherService.ConfirmVoucher:output_type -> voucher.v1.ConfirmVoucherResponse
	5, // 5: voucher.v1.VoucherService.ListRejectionReasons:output_type -> voucher.v1.ListRejectionReasonsResponse
	3, // [3:6] is the sub-list for method output_type
	0, // [0:3] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_voucher_proto_init() }
func file_voucher_proto_init() {
	if File_voucher_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_voucher_proto_rawDesc), len(file_voucher_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   6,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_voucher_proto_goTypes,
		DependencyIndexes: file_voucher_proto_depIdxs,
		MessageInfos:      file_voucher_proto_msgTypes,
	}.Build()
	File_voucher_proto = out.File
	file_voucher_proto_goTypes = nil
	file_voucher_proto_depIdxs = nil
}
