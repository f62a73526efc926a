// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: adminv1/admin.proto

package adminv1

import (
	replv1 "github.com/i-melnichenko/replset-lab/pkg/proto/replv1"
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

type StepDownRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Force bool                   `protobuf:"varint,1,opt,name=force,proto3" json:"force,omitempty"`
	// wait_millis bounds how long the node may wait for a caught-up,
	// electable secondary before failing the command.
	WaitMillis int64 `protobuf:"varint,2,opt,name=wait_millis,json=waitMillis,proto3" json:"wait_millis,omitempty"`
	// step_down_period_millis is how long the node refuses to stand for
	// election again after stepping down.
	StepDownPeriodMillis int64 `protobuf:"varint,3,opt,name=step_down_period_millis,json=stepDownPeriodMillis,proto3" json:"step_down_period_millis,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *StepDownRequest) Reset() {
	*x = StepDownRequest{}
	mi := &file_adminv1_admin_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StepDownRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StepDownRequest) ProtoMessage() {}

func (x *StepDownRequest) ProtoReflect() protoreflect.Message {
	mi := &file_adminv1_admin_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StepDownRequest.ProtoReflect.Descriptor instead.
func (*StepDownRequest) Descriptor() ([]byte, []int) {
	return file_adminv1_admin_proto_rawDescGZIP(), []int{0}
}

func (x *StepDownRequest) GetForce() bool {
	if x != nil {
		return x.Force
	}
	return false
}

func (x *StepDownRequest) GetWaitMillis() int64 {
	if x != nil {
		return x.WaitMillis
	}
	return 0
}

func (x *StepDownRequest) GetStepDownPeriodMillis() int64 {
	if x != nil {
		return x.StepDownPeriodMillis
	}
	return 0
}

type StepDownResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StepDownResponse) Reset() {
	*x = StepDownResponse{}
	mi := &file_adminv1_admin_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StepDownResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StepDownResponse) ProtoMessage() {}

func (x *StepDownResponse) ProtoReflect() protoreflect.Message {
	mi := &file_adminv1_admin_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StepDownResponse.ProtoReflect.Descriptor instead.
func (*StepDownResponse) Descriptor() ([]byte, []int) {
	return file_adminv1_admin_proto_rawDescGZIP(), []int{1}
}

type SyncFromRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Target        string                 `protobuf:"bytes,1,opt,name=target,proto3" json:"target,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SyncFromRequest) Reset() {
	*x = SyncFromRequest{}
	mi := &file_adminv1_admin_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SyncFromRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SyncFromRequest) ProtoMessage() {}

func (x *SyncFromRequest) ProtoReflect() protoreflect.Message {
	mi := &file_adminv1_admin_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SyncFromRequest.ProtoReflect.Descriptor instead.
func (*SyncFromRequest) Descriptor() ([]byte, []int) {
	return file_adminv1_admin_proto_rawDescGZIP(), []int{2}
}

func (x *SyncFromRequest) GetTarget() string {
	if x != nil {
		return x.Target
	}
	return ""
}

type SyncFromResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Warning is set when the request was accepted but looks unwise, for
	// example syncing from a member that is further behind.
	Warning       string `protobuf:"bytes,1,opt,name=warning,proto3" json:"warning,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SyncFromResponse) Reset() {
	*x = SyncFromResponse{}
	mi := &file_adminv1_admin_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SyncFromResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SyncFromResponse) ProtoMessage() {}

func (x *SyncFromResponse) ProtoReflect() protoreflect.Message {
	mi := &file_adminv1_admin_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SyncFromResponse.ProtoReflect.Descriptor instead.
func (*SyncFromResponse) Descriptor() ([]byte, []int) {
	return file_adminv1_admin_proto_rawDescGZIP(), []int{3}
}

func (x *SyncFromResponse) GetWarning() string {
	if x != nil {
		return x.Warning
	}
	return ""
}

type ReconfigRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Config        *replv1.Config         `protobuf:"bytes,1,opt,name=config,proto3" json:"config,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReconfigRequest) Reset() {
	*x = ReconfigRequest{}
	mi := &file_adminv1_admin_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReconfigRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReconfigRequest) ProtoMessage() {}

func (x *ReconfigRequest) ProtoReflect() protoreflect.Message {
	mi := &file_adminv1_admin_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReconfigRequest.ProtoReflect.Descriptor instead.
func (*ReconfigRequest) Descriptor() ([]byte, []int) {
	return file_adminv1_admin_proto_rawDescGZIP(), []int{4}
}

func (x *ReconfigRequest) GetConfig() *replv1.Config {
	if x != nil {
		return x.Config
	}
	return nil
}

type ReconfigResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Version       int64                  `protobuf:"varint,1,opt,name=version,proto3" json:"version,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReconfigResponse) Reset() {
	*x = ReconfigResponse{}
	mi := &file_adminv1_admin_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReconfigResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReconfigResponse) ProtoMessage() {}

func (x *ReconfigResponse) ProtoReflect() protoreflect.Message {
	mi := &file_adminv1_admin_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReconfigResponse.ProtoReflect.Descriptor instead.
func (*ReconfigResponse) Descriptor() ([]byte, []int) {
	return file_adminv1_admin_proto_rawDescGZIP(), []int{5}
}

func (x *ReconfigResponse) GetVersion() int64 {
	if x != nil {
		return x.Version
	}
	return 0
}

var File_adminv1_admin_proto protoreflect.FileDescriptor

const file_adminv1_admin_proto_rawDesc = "" +
	"\n" +
	"\x13adminv1/admin.proto\x12\aadminv1\x1a\x11replv1/repl.proto\"\x7f\n" +
	"\x0fStepDownRequest\x12\x14\n" +
	"\x05force\x18\x01 \x01(\bR\x05force\x12\x1f\n" +
	"\vwait_millis\x18\x02 \x01(\x03R\n" +
	"waitMillis\x125\n" +
	"\x17step_down_period_millis\x18\x03 \x01(\x03R\x14stepDownPeriodMillis\"\x12\n" +
	"\x10StepDownResponse\")\n" +
	"\x0fSyncFromRequest\x12\x16\n" +
	"\x06target\x18\x01 \x01(\tR\x06target\",\n" +
	"\x10SyncFromResponse\x12\x18\n" +
	"\awarning\x18\x01 \x01(\tR\awarning\"9\n" +
	"\x0fReconfigRequest\x12&\n" +
	"\x06config\x18\x01 \x01(\v2\x0e.replv1.ConfigR\x06config\",\n" +
	"\x10ReconfigResponse\x12\x18\n" +
	"\aversion\x18\x01 \x01(\x03R\aversion2\xd1\x01\n" +
	"\fAdminService\x12?\n" +
	"\bStepDown\x12\x18.adminv1.StepDownRequest\x1a\x19.adminv1.StepDownResponse\x12?\n" +
	"\bSyncFrom\x12\x18.adminv1.SyncFromRequest\x1a\x19.adminv1.SyncFromResponse\x12?\n" +
	"\bReconfig\x12\x18.adminv1.ReconfigRequest\x1a\x19.adminv1.ReconfigResponseB@Z>github.com/i-melnichenko/replset-lab/pkg/proto/adminv1;adminv1b\x06proto3"

var (
	file_adminv1_admin_proto_rawDescOnce sync.Once
	file_adminv1_admin_proto_rawDescData []byte
)

func file_adminv1_admin_proto_rawDescGZIP() []byte {
	file_adminv1_admin_proto_rawDescOnce.Do(func() {
		file_adminv1_admin_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_adminv1_admin_proto_rawDesc), len(file_adminv1_admin_proto_rawDesc)))
	})
	return file_adminv1_admin_proto_rawDescData
}

var file_adminv1_admin_proto_msgTypes = make([]protoimpl.MessageInfo, 6)
var file_adminv1_admin_proto_goTypes = []any{
	(*StepDownRequest)(nil),  // 0: adminv1.StepDownRequest
	(*StepDownResponse)(nil), // 1: adminv1.StepDownResponse
	(*SyncFromRequest)(nil),  // 2: adminv1.SyncFromRequest
	(*SyncFromResponse)(nil), // 3: adminv1.SyncFromResponse
	(*ReconfigRequest)(nil),  // 4: adminv1.ReconfigRequest
	(*ReconfigResponse)(nil), // 5: adminv1.ReconfigResponse
	(*replv1.Config)(nil),    // 6: replv1.Config
}
var file_adminv1_admin_proto_depIdxs = []int32{
	6, // 0: adminv1.ReconfigRequest.config:type_name -> replv1.Config
	0, // 1: adminv1.AdminService.StepDown:input_type -> adminv1.StepDownRequest
	2, // 2: adminv1.AdminService.SyncFrom:input_type -> adminv1.SyncFromRequest
	4, // 3: adminv1.AdminService.Reconfig:input_type -> adminv1.ReconfigRequest
	1, // 4: adminv1.AdminService.StepDown:output_type -> adminv1.StepDownResponse
	3, // 5: adminv1.AdminService.SyncFrom:output_type -> adminv1.SyncFromResponse
	5, // 6: adminv1.AdminService.Reconfig:output_type -> adminv1.ReconfigResponse
	4, // [4:7] is the sub-list for method output_type
	1, // [1:4] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_adminv1_admin_proto_init() }
func file_adminv1_admin_proto_init() {
	if File_adminv1_admin_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_adminv1_admin_proto_rawDesc), len(file_adminv1_admin_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   6,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_adminv1_admin_proto_goTypes,
		DependencyIndexes: file_adminv1_admin_proto_depIdxs,
		MessageInfos:      file_adminv1_admin_proto_msgTypes,
	}.Build()
	File_adminv1_admin_proto = out.File
	file_adminv1_admin_proto_goTypes = nil
	file_adminv1_admin_proto_depIdxs = nil
}
