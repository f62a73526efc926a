// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: replv1/repl.proto

package replv1

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

type Timestamp struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Secs          uint32                 `protobuf:"varint,1,opt,name=secs,proto3" json:"secs,omitempty"`
	Inc           uint32                 `protobuf:"varint,2,opt,name=inc,proto3" json:"inc,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Timestamp) Reset() {
	*x = Timestamp{}
	mi := &file_replv1_repl_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Timestamp) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Timestamp) ProtoMessage() {}

func (x *Timestamp) ProtoReflect() protoreflect.Message {
	mi := &file_replv1_repl_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Timestamp.ProtoReflect.Descriptor instead.
func (*Timestamp) Descriptor() ([]byte, []int) {
	return file_replv1_repl_proto_rawDescGZIP(), []int{0}
}

func (x *Timestamp) GetSecs() uint32 {
	if x != nil {
		return x.Secs
	}
	return 0
}

func (x *Timestamp) GetInc() uint32 {
	if x != nil {
		return x.Inc
	}
	return 0
}

type OpTime struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Timestamp     *Timestamp             `protobuf:"bytes,1,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	Term          int64                  `protobuf:"varint,2,opt,name=term,proto3" json:"term,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OpTime) Reset() {
	*x = OpTime{}
	mi := &file_replv1_repl_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OpTime) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OpTime) ProtoMessage() {}

func (x *OpTime) ProtoReflect() protoreflect.Message {
	mi := &file_replv1_repl_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OpTime.ProtoReflect.Descriptor instead.
func (*OpTime) Descriptor() ([]byte, []int) {
	return file_replv1_repl_proto_rawDescGZIP(), []int{1}
}

func (x *OpTime) GetTimestamp() *Timestamp {
	if x != nil {
		return x.Timestamp
	}
	return nil
}

func (x *OpTime) GetTerm() int64 {
	if x != nil {
		return x.Term
	}
	return 0
}

type OpTimeAndWallTime struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	OpTime             *OpTime                `protobuf:"bytes,1,opt,name=op_time,json=opTime,proto3" json:"op_time,omitempty"`
	WallTimeUnixMillis int64                  `protobuf:"varint,2,opt,name=wall_time_unix_millis,json=wallTimeUnixMillis,proto3" json:"wall_time_unix_millis,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *OpTimeAndWallTime) Reset() {
	*x = OpTimeAndWallTime{}
	mi := &file_replv1_repl_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OpTimeAndWallTime) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OpTimeAndWallTime) ProtoMessage() {}

func (x *OpTimeAndWallTime) ProtoReflect() protoreflect.Message {
	mi := &file_replv1_repl_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OpTimeAndWallTime.ProtoReflect.Descriptor instead.
func (*OpTimeAndWallTime) Descriptor() ([]byte, []int) {
	return file_replv1_repl_proto_rawDescGZIP(), []int{2}
}

func (x *OpTimeAndWallTime) GetOpTime() *OpTime {
	if x != nil {
		return x.OpTime
	}
	return nil
}

func (x *OpTimeAndWallTime) GetWallTimeUnixMillis() int64 {
	if x != nil {
		return x.WallTimeUnixMillis
	}
	return 0
}

type TagPattern struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Constraints   map[string]int32       `protobuf:"bytes,1,rep,name=constraints,proto3" json:"constraints,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TagPattern) Reset() {
	*x = TagPattern{}
	mi := &file_replv1_repl_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TagPattern) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TagPattern) ProtoMessage() {}

func (x *TagPattern) ProtoReflect() protoreflect.Message {
	mi := &file_replv1_repl_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TagPattern.ProtoReflect.Descriptor instead.
func (*TagPattern) Descriptor() ([]byte, []int) {
	return file_replv1_repl_proto_rawDescGZIP(), []int{3}
}

func (x *TagPattern) GetConstraints() map[string]int32 {
	if x != nil {
		return x.Constraints
	}
	return nil
}

type MemberConfig struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               int32                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Host             string                 `protobuf:"bytes,2,opt,name=host,proto3" json:"host,omitempty"`
	Priority         float64                `protobuf:"fixed64,3,opt,name=priority,proto3" json:"priority,omitempty"`
	Votes            int32                  `protobuf:"varint,4,opt,name=votes,proto3" json:"votes,omitempty"`
	Arbiter          bool                   `protobuf:"varint,5,opt,name=arbiter,proto3" json:"arbiter,omitempty"`
	Hidden           bool                   `protobuf:"varint,6,opt,name=hidden,proto3" json:"hidden,omitempty"`
	BuildIndexes     bool                   `protobuf:"varint,7,opt,name=build_indexes,json=buildIndexes,proto3" json:"build_indexes,omitempty"`
	SlaveDelayMillis int64                  `protobuf:"varint,8,opt,name=slave_delay_millis,json=slaveDelayMillis,proto3" json:"slave_delay_millis,omitempty"`
	Tags             map[string]string      `protobuf:"bytes,9,rep,name=tags,proto3" json:"tags,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *MemberConfig) Reset() {
	*x = MemberConfig{}
	mi := &file_replv1_repl_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MemberConfig) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MemberConfig) ProtoMessage() {}

func (x *MemberConfig) ProtoReflect() protoreflect.Message {
	mi := &file_replv1_repl_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MemberConfig.ProtoReflect.Descriptor instead.
func (*MemberConfig) Descriptor() ([]byte, []int) {
	return file_replv1_repl_proto_rawDescGZIP(), []int{4}
}

func (x *MemberConfig) GetId() int32 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *MemberConfig) GetHost() string {
	if x != nil {
		return x.Host
	}
	return ""
}

func (x *MemberConfig) GetPriority() float64 {
	if x != nil {
		return x.Priority
	}
	return 0
}

func (x *MemberConfig) GetVotes() int32 {
	if x != nil {
		return x.Votes
	}
	return 0
}

func (x *MemberConfig) GetArbiter() bool {
	if x != nil {
		return x.Arbiter
	}
	return false
}

func (x *MemberConfig) GetHidden() bool {
	if x != nil {
		return x.Hidden
	}
	return false
}

func (x *MemberConfig) GetBuildIndexes() bool {
	if x != nil {
		return x.BuildIndexes
	}
	return false
}

func (x *MemberConfig) GetSlaveDelayMillis() int64 {
	if x != nil {
		return x.SlaveDelayMillis
	}
	return 0
}

func (x *MemberConfig) GetTags() map[string]string {
	if x != nil {
		return x.Tags
	}
	return nil
}

type Settings struct {
	state                       protoimpl.MessageState `protogen:"open.v1"`
	HeartbeatIntervalMillis     int64                  `protobuf:"varint,1,opt,name=heartbeat_interval_millis,json=heartbeatIntervalMillis,proto3" json:"heartbeat_interval_millis,omitempty"`
	HeartbeatTimeoutMillis      int64                  `protobuf:"varint,2,opt,name=heartbeat_timeout_millis,json=heartbeatTimeoutMillis,proto3" json:"heartbeat_timeout_millis,omitempty"`
	ElectionTimeoutMillis       int64                  `protobuf:"varint,3,opt,name=election_timeout_millis,json=electionTimeoutMillis,proto3" json:"election_timeout_millis,omitempty"`
	CatchUpTimeoutMillis        int64                  `protobuf:"varint,4,opt,name=catch_up_timeout_millis,json=catchUpTimeoutMillis,proto3" json:"catch_up_timeout_millis,omitempty"`
	CatchUpTakeoverDelayMillis  int64                  `protobuf:"varint,5,opt,name=catch_up_takeover_delay_millis,json=catchUpTakeoverDelayMillis,proto3" json:"catch_up_takeover_delay_millis,omitempty"`
	ChainingAllowed             bool                   `protobuf:"varint,6,opt,name=chaining_allowed,json=chainingAllowed,proto3" json:"chaining_allowed,omitempty"`
	WriteConcernMajorityJournal bool                   `protobuf:"varint,7,opt,name=write_concern_majority_journal,json=writeConcernMajorityJournal,proto3" json:"write_concern_majority_journal,omitempty"`
	CustomWriteModes            map[string]*TagPattern `protobuf:"bytes,8,rep,name=custom_write_modes,json=customWriteModes,proto3" json:"custom_write_modes,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields               protoimpl.UnknownFields
	sizeCache                   protoimpl.SizeCache
}

func (x *Settings) Reset() {
	*x = Settings{}
	mi := &file_replv1_repl_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Settings) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Settings) ProtoMessage() {}

func (x *Settings) ProtoReflect() protoreflect.Message {
	mi := &file_replv1_repl_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Settings.ProtoReflect.Descriptor instead.
func (*Settings) Descriptor() ([]byte, []int) {
	return file_replv1_repl_proto_rawDescGZIP(), []int{5}
}

func (x *Settings) GetHeartbeatIntervalMillis() int64 {
	if x != nil {
		return x.HeartbeatIntervalMillis
	}
	return 0
}

func (x *Settings) GetHeartbeatTimeoutMillis() int64 {
	if x != nil {
		return x.HeartbeatTimeoutMillis
	}
	return 0
}

func (x *Settings) GetElectionTimeoutMillis() int64 {
	if x != nil {
		return x.ElectionTimeoutMillis
	}
	return 0
}

func (x *Settings) GetCatchUpTimeoutMillis() int64 {
	if x != nil {
		return x.CatchUpTimeoutMillis
	}
	return 0
}

func (x *Settings) GetCatchUpTakeoverDelayMillis() int64 {
	if x != nil {
		return x.CatchUpTakeoverDelayMillis
	}
	return 0
}

func (x *Settings) GetChainingAllowed() bool {
	if x != nil {
		return x.ChainingAllowed
	}
	return false
}

func (x *Settings) GetWriteConcernMajorityJournal() bool {
	if x != nil {
		return x.WriteConcernMajorityJournal
	}
	return false
}

func (x *Settings) GetCustomWriteModes() map[string]*TagPattern {
	if x != nil {
		return x.CustomWriteModes
	}
	return nil
}

type Config struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SetName       string                 `protobuf:"bytes,1,opt,name=set_name,json=setName,proto3" json:"set_name,omitempty"`
	Version       int64                  `protobuf:"varint,2,opt,name=version,proto3" json:"version,omitempty"`
	Members       []*MemberConfig        `protobuf:"bytes,3,rep,name=members,proto3" json:"members,omitempty"`
	Settings      *Settings              `protobuf:"bytes,4,opt,name=settings,proto3" json:"settings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Config) Reset() {
	*x = Config{}
	mi := &file_replv1_repl_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Config) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Config) ProtoMessage() {}

func (x *Config) ProtoReflect() protoreflect.Message {
	mi := &file_replv1_repl_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Config.ProtoReflect.Descriptor instead.
func (*Config) Descriptor() ([]byte, []int) {
	return file_replv1_repl_proto_rawDescGZIP(), []int{6}
}

func (x *Config) GetSetName() string {
	if x != nil {
		return x.SetName
	}
	return ""
}

func (x *Config) GetVersion() int64 {
	if x != nil {
		return x.Version
	}
	return 0
}

func (x *Config) GetMembers() []*MemberConfig {
	if x != nil {
		return x.Members
	}
	return nil
}

func (x *Config) GetSettings() *Settings {
	if x != nil {
		return x.Settings
	}
	return nil
}

type HeartbeatRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SetName       string                 `protobuf:"bytes,1,opt,name=set_name,json=setName,proto3" json:"set_name,omitempty"`
	ConfigVersion int64                  `protobuf:"varint,2,opt,name=config_version,json=configVersion,proto3" json:"config_version,omitempty"`
	SenderId      int32                  `protobuf:"varint,3,opt,name=sender_id,json=senderId,proto3" json:"sender_id,omitempty"`
	SenderHost    string                 `protobuf:"bytes,4,opt,name=sender_host,json=senderHost,proto3" json:"sender_host,omitempty"`
	Term          int64                  `protobuf:"varint,5,opt,name=term,proto3" json:"term,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HeartbeatRequest) Reset() {
	*x = HeartbeatRequest{}
	mi := &file_replv1_repl_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HeartbeatRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HeartbeatRequest) ProtoMessage() {}

func (x *HeartbeatRequest) ProtoReflect() protoreflect.Message {
	mi := &file_replv1_repl_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HeartbeatRequest.ProtoReflect.Descriptor instead.
func (*HeartbeatRequest) Descriptor() ([]byte, []int) {
	return file_replv1_repl_proto_rawDescGZIP(), []int{7}
}

func (x *HeartbeatRequest) GetSetName() string {
	if x != nil {
		return x.SetName
	}
	return ""
}

func (x *HeartbeatRequest) GetConfigVersion() int64 {
	if x != nil {
		return x.ConfigVersion
	}
	return 0
}

func (x *HeartbeatRequest) GetSenderId() int32 {
	if x != nil {
		return x.SenderId
	}
	return 0
}

func (x *HeartbeatRequest) GetSenderHost() string {
	if x != nil {
		return x.SenderHost
	}
	return ""
}

func (x *HeartbeatRequest) GetTerm() int64 {
	if x != nil {
		return x.Term
	}
	return 0
}

type HeartbeatResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	SetName          string                 `protobuf:"bytes,1,opt,name=set_name,json=setName,proto3" json:"set_name,omitempty"`
	State            int32                  `protobuf:"varint,2,opt,name=state,proto3" json:"state,omitempty"`
	ElectionTime     *Timestamp             `protobuf:"bytes,3,opt,name=election_time,json=electionTime,proto3" json:"election_time,omitempty"`
	AppliedOpTime    *OpTimeAndWallTime     `protobuf:"bytes,4,opt,name=applied_op_time,json=appliedOpTime,proto3" json:"applied_op_time,omitempty"`
	DurableOpTime    *OpTimeAndWallTime     `protobuf:"bytes,5,opt,name=durable_op_time,json=durableOpTime,proto3" json:"durable_op_time,omitempty"`
	PrimaryId        int32                  `protobuf:"varint,6,opt,name=primary_id,json=primaryId,proto3" json:"primary_id,omitempty"`
	Term             int64                  `protobuf:"varint,7,opt,name=term,proto3" json:"term,omitempty"`
	SyncSource       string                 `protobuf:"bytes,8,opt,name=sync_source,json=syncSource,proto3" json:"sync_source,omitempty"`
	ConfigVersion    int64                  `protobuf:"varint,9,opt,name=config_version,json=configVersion,proto3" json:"config_version,omitempty"`
	HeartbeatMessage string                 `protobuf:"bytes,10,opt,name=heartbeat_message,json=heartbeatMessage,proto3" json:"heartbeat_message,omitempty"`
	// Set only when the responder's config is newer than the version the
	// request carried.
	Config        *Config `protobuf:"bytes,11,opt,name=config,proto3" json:"config,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HeartbeatResponse) Reset() {
	*x = HeartbeatResponse{}
	mi := &file_replv1_repl_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HeartbeatResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HeartbeatResponse) ProtoMessage() {}

func (x *HeartbeatResponse) ProtoReflect() protoreflect.Message {
	mi := &file_replv1_repl_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HeartbeatResponse.ProtoReflect.Descriptor instead.
func (*HeartbeatResponse) Descriptor() ([]byte, []int) {
	return file_replv1_repl_proto_rawDescGZIP(), []int{8}
}

func (x *HeartbeatResponse) GetSetName() string {
	if x != nil {
		return x.SetName
	}
	return ""
}

func (x *HeartbeatResponse) GetState() int32 {
	if x != nil {
		return x.State
	}
	return 0
}

func (x *HeartbeatResponse) GetElectionTime() *Timestamp {
	if x != nil {
		return x.ElectionTime
	}
	return nil
}

func (x *HeartbeatResponse) GetAppliedOpTime() *OpTimeAndWallTime {
	if x != nil {
		return x.AppliedOpTime
	}
	return nil
}

func (x *HeartbeatResponse) GetDurableOpTime() *OpTimeAndWallTime {
	if x != nil {
		return x.DurableOpTime
	}
	return nil
}

func (x *HeartbeatResponse) GetPrimaryId() int32 {
	if x != nil {
		return x.PrimaryId
	}
	return 0
}

func (x *HeartbeatResponse) GetTerm() int64 {
	if x != nil {
		return x.Term
	}
	return 0
}

func (x *HeartbeatResponse) GetSyncSource() string {
	if x != nil {
		return x.SyncSource
	}
	return ""
}

func (x *HeartbeatResponse) GetConfigVersion() int64 {
	if x != nil {
		return x.ConfigVersion
	}
	return 0
}

func (x *HeartbeatResponse) GetHeartbeatMessage() string {
	if x != nil {
		return x.HeartbeatMessage
	}
	return ""
}

func (x *HeartbeatResponse) GetConfig() *Config {
	if x != nil {
		return x.Config
	}
	return nil
}

type VoteRequest struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	SetName           string                 `protobuf:"bytes,1,opt,name=set_name,json=setName,proto3" json:"set_name,omitempty"`
	Term              int64                  `protobuf:"varint,2,opt,name=term,proto3" json:"term,omitempty"`
	CandidateIndex    int32                  `protobuf:"varint,3,opt,name=candidate_index,json=candidateIndex,proto3" json:"candidate_index,omitempty"`
	ConfigVersion     int64                  `protobuf:"varint,4,opt,name=config_version,json=configVersion,proto3" json:"config_version,omitempty"`
	LastAppliedOpTime *OpTime                `protobuf:"bytes,5,opt,name=last_applied_op_time,json=lastAppliedOpTime,proto3" json:"last_applied_op_time,omitempty"`
	DryRun            bool                   `protobuf:"varint,6,opt,name=dry_run,json=dryRun,proto3" json:"dry_run,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *VoteRequest) Reset() {
	*x = VoteRequest{}
	mi := &file_replv1_repl_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VoteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VoteRequest) ProtoMessage() {}

func (x *VoteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_replv1_repl_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VoteRequest.ProtoReflect.Descriptor instead.
func (*VoteRequest) Descriptor() ([]byte, []int) {
	return file_replv1_repl_proto_rawDescGZIP(), []int{9}
}

func (x *VoteRequest) GetSetName() string {
	if x != nil {
		return x.SetName
	}
	return ""
}

func (x *VoteRequest) GetTerm() int64 {
	if x != nil {
		return x.Term
	}
	return 0
}

func (x *VoteRequest) GetCandidateIndex() int32 {
	if x != nil {
		return x.CandidateIndex
	}
	return 0
}

func (x *VoteRequest) GetConfigVersion() int64 {
	if x != nil {
		return x.ConfigVersion
	}
	return 0
}

func (x *VoteRequest) GetLastAppliedOpTime() *OpTime {
	if x != nil {
		return x.LastAppliedOpTime
	}
	return nil
}

func (x *VoteRequest) GetDryRun() bool {
	if x != nil {
		return x.DryRun
	}
	return false
}

type VoteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Term          int64                  `protobuf:"varint,1,opt,name=term,proto3" json:"term,omitempty"`
	VoteGranted   bool                   `protobuf:"varint,2,opt,name=vote_granted,json=voteGranted,proto3" json:"vote_granted,omitempty"`
	Reason        string                 `protobuf:"bytes,3,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VoteResponse) Reset() {
	*x = VoteResponse{}
	mi := &file_replv1_repl_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VoteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VoteResponse) ProtoMessage() {}

func (x *VoteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_replv1_repl_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VoteResponse.ProtoReflect.Descriptor instead.
func (*VoteResponse) Descriptor() ([]byte, []int) {
	return file_replv1_repl_proto_rawDescGZIP(), []int{10}
}

func (x *VoteResponse) GetTerm() int64 {
	if x != nil {
		return x.Term
	}
	return 0
}

func (x *VoteResponse) GetVoteGranted() bool {
	if x != nil {
		return x.VoteGranted
	}
	return false
}

func (x *VoteResponse) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type UpdatePositionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MemberId      int32                  `protobuf:"varint,1,opt,name=member_id,json=memberId,proto3" json:"member_id,omitempty"`
	ConfigVersion int64                  `protobuf:"varint,2,opt,name=config_version,json=configVersion,proto3" json:"config_version,omitempty"`
	AppliedOpTime *OpTimeAndWallTime     `protobuf:"bytes,3,opt,name=applied_op_time,json=appliedOpTime,proto3" json:"applied_op_time,omitempty"`
	DurableOpTime *OpTimeAndWallTime     `protobuf:"bytes,4,opt,name=durable_op_time,json=durableOpTime,proto3" json:"durable_op_time,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdatePositionRequest) Reset() {
	*x = UpdatePositionRequest{}
	mi := &file_replv1_repl_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdatePositionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdatePositionRequest) ProtoMessage() {}

func (x *UpdatePositionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_replv1_repl_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdatePositionRequest.ProtoReflect.Descriptor instead.
func (*UpdatePositionRequest) Descriptor() ([]byte, []int) {
	return file_replv1_repl_proto_rawDescGZIP(), []int{11}
}

func (x *UpdatePositionRequest) GetMemberId() int32 {
	if x != nil {
		return x.MemberId
	}
	return 0
}

func (x *UpdatePositionRequest) GetConfigVersion() int64 {
	if x != nil {
		return x.ConfigVersion
	}
	return 0
}

func (x *UpdatePositionRequest) GetAppliedOpTime() *OpTimeAndWallTime {
	if x != nil {
		return x.AppliedOpTime
	}
	return nil
}

func (x *UpdatePositionRequest) GetDurableOpTime() *OpTimeAndWallTime {
	if x != nil {
		return x.DurableOpTime
	}
	return nil
}

// ReplSetMetadata is the consensus metadata a member attaches to replication
// traffic it answers.
type ReplSetMetadata struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	Term                int64                  `protobuf:"varint,1,opt,name=term,proto3" json:"term,omitempty"`
	LastCommittedOpTime *OpTimeAndWallTime     `protobuf:"bytes,2,opt,name=last_committed_op_time,json=lastCommittedOpTime,proto3" json:"last_committed_op_time,omitempty"`
	LastOpVisible       *OpTime                `protobuf:"bytes,3,opt,name=last_op_visible,json=lastOpVisible,proto3" json:"last_op_visible,omitempty"`
	ConfigVersion       int64                  `protobuf:"varint,4,opt,name=config_version,json=configVersion,proto3" json:"config_version,omitempty"`
	PrimaryIndex        int32                  `protobuf:"varint,5,opt,name=primary_index,json=primaryIndex,proto3" json:"primary_index,omitempty"`
	SyncSourceIndex     int32                  `protobuf:"varint,6,opt,name=sync_source_index,json=syncSourceIndex,proto3" json:"sync_source_index,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *ReplSetMetadata) Reset() {
	*x = ReplSetMetadata{}
	mi := &file_replv1_repl_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReplSetMetadata) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReplSetMetadata) ProtoMessage() {}

func (x *ReplSetMetadata) ProtoReflect() protoreflect.Message {
	mi := &file_replv1_repl_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReplSetMetadata.ProtoReflect.Descriptor instead.
func (*ReplSetMetadata) Descriptor() ([]byte, []int) {
	return file_replv1_repl_proto_rawDescGZIP(), []int{12}
}

func (x *ReplSetMetadata) GetTerm() int64 {
	if x != nil {
		return x.Term
	}
	return 0
}

func (x *ReplSetMetadata) GetLastCommittedOpTime() *OpTimeAndWallTime {
	if x != nil {
		return x.LastCommittedOpTime
	}
	return nil
}

func (x *ReplSetMetadata) GetLastOpVisible() *OpTime {
	if x != nil {
		return x.LastOpVisible
	}
	return nil
}

func (x *ReplSetMetadata) GetConfigVersion() int64 {
	if x != nil {
		return x.ConfigVersion
	}
	return 0
}

func (x *ReplSetMetadata) GetPrimaryIndex() int32 {
	if x != nil {
		return x.PrimaryIndex
	}
	return 0
}

func (x *ReplSetMetadata) GetSyncSourceIndex() int32 {
	if x != nil {
		return x.SyncSourceIndex
	}
	return 0
}

// OplogQueryMetadata is the per-query metadata a sync source hands back.
type OplogQueryMetadata struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	LastCommittedOpTime *OpTimeAndWallTime     `protobuf:"bytes,1,opt,name=last_committed_op_time,json=lastCommittedOpTime,proto3" json:"last_committed_op_time,omitempty"`
	LastOpApplied       *OpTime                `protobuf:"bytes,2,opt,name=last_op_applied,json=lastOpApplied,proto3" json:"last_op_applied,omitempty"`
	PrimaryIndex        int32                  `protobuf:"varint,3,opt,name=primary_index,json=primaryIndex,proto3" json:"primary_index,omitempty"`
	SyncSourceIndex     int32                  `protobuf:"varint,4,opt,name=sync_source_index,json=syncSourceIndex,proto3" json:"sync_source_index,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *OplogQueryMetadata) Reset() {
	*x = OplogQueryMetadata{}
	mi := &file_replv1_repl_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OplogQueryMetadata) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OplogQueryMetadata) ProtoMessage() {}

func (x *OplogQueryMetadata) ProtoReflect() protoreflect.Message {
	mi := &file_replv1_repl_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OplogQueryMetadata.ProtoReflect.Descriptor instead.
func (*OplogQueryMetadata) Descriptor() ([]byte, []int) {
	return file_replv1_repl_proto_rawDescGZIP(), []int{13}
}

func (x *OplogQueryMetadata) GetLastCommittedOpTime() *OpTimeAndWallTime {
	if x != nil {
		return x.LastCommittedOpTime
	}
	return nil
}

func (x *OplogQueryMetadata) GetLastOpApplied() *OpTime {
	if x != nil {
		return x.LastOpApplied
	}
	return nil
}

func (x *OplogQueryMetadata) GetPrimaryIndex() int32 {
	if x != nil {
		return x.PrimaryIndex
	}
	return 0
}

func (x *OplogQueryMetadata) GetSyncSourceIndex() int32 {
	if x != nil {
		return x.SyncSourceIndex
	}
	return 0
}

type UpdatePositionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Metadata      *ReplSetMetadata       `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	OplogMetadata *OplogQueryMetadata    `protobuf:"bytes,2,opt,name=oplog_metadata,json=oplogMetadata,proto3" json:"oplog_metadata,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdatePositionResponse) Reset() {
	*x = UpdatePositionResponse{}
	mi := &file_replv1_repl_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdatePositionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdatePositionResponse) ProtoMessage() {}

func (x *UpdatePositionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_replv1_repl_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdatePositionResponse.ProtoReflect.Descriptor instead.
func (*UpdatePositionResponse) Descriptor() ([]byte, []int) {
	return file_replv1_repl_proto_rawDescGZIP(), []int{14}
}

func (x *UpdatePositionResponse) GetMetadata() *ReplSetMetadata {
	if x != nil {
		return x.Metadata
	}
	return nil
}

func (x *UpdatePositionResponse) GetOplogMetadata() *OplogQueryMetadata {
	if x != nil {
		return x.OplogMetadata
	}
	return nil
}

type StatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StatusRequest) Reset() {
	*x = StatusRequest{}
	mi := &file_replv1_repl_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatusRequest) ProtoMessage() {}

func (x *StatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_replv1_repl_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StatusRequest.ProtoReflect.Descriptor instead.
func (*StatusRequest) Descriptor() ([]byte, []int) {
	return file_replv1_repl_proto_rawDescGZIP(), []int{15}
}

type MemberStatus struct {
	state                       protoimpl.MessageState `protogen:"open.v1"`
	Id                          int32                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Name                        string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Health                      int32                  `protobuf:"varint,3,opt,name=health,proto3" json:"health,omitempty"`
	State                       int32                  `protobuf:"varint,4,opt,name=state,proto3" json:"state,omitempty"`
	StateStr                    string                 `protobuf:"bytes,5,opt,name=state_str,json=stateStr,proto3" json:"state_str,omitempty"`
	UptimeSecs                  int64                  `protobuf:"varint,6,opt,name=uptime_secs,json=uptimeSecs,proto3" json:"uptime_secs,omitempty"`
	OpTime                      *OpTime                `protobuf:"bytes,7,opt,name=op_time,json=opTime,proto3" json:"op_time,omitempty"`
	OpTimeDate                  string                 `protobuf:"bytes,8,opt,name=op_time_date,json=opTimeDate,proto3" json:"op_time_date,omitempty"`
	SyncSource                  string                 `protobuf:"bytes,9,opt,name=sync_source,json=syncSource,proto3" json:"sync_source,omitempty"`
	Self                        bool                   `protobuf:"varint,10,opt,name=self,proto3" json:"self,omitempty"`
	LastHeartbeatUnixMillis     *int64                 `protobuf:"varint,11,opt,name=last_heartbeat_unix_millis,json=lastHeartbeatUnixMillis,proto3,oneof" json:"last_heartbeat_unix_millis,omitempty"`
	LastHeartbeatRecvUnixMillis *int64                 `protobuf:"varint,12,opt,name=last_heartbeat_recv_unix_millis,json=lastHeartbeatRecvUnixMillis,proto3,oneof" json:"last_heartbeat_recv_unix_millis,omitempty"`
	PingMillis                  *int64                 `protobuf:"varint,13,opt,name=ping_millis,json=pingMillis,proto3,oneof" json:"ping_millis,omitempty"`
	LastHeartbeatMessage        string                 `protobuf:"bytes,14,opt,name=last_heartbeat_message,json=lastHeartbeatMessage,proto3" json:"last_heartbeat_message,omitempty"`
	ElectionTime                *Timestamp             `protobuf:"bytes,15,opt,name=election_time,json=electionTime,proto3" json:"election_time,omitempty"`
	ConfigVersion               int64                  `protobuf:"varint,16,opt,name=config_version,json=configVersion,proto3" json:"config_version,omitempty"`
	SyncingTo                   string                 `protobuf:"bytes,17,opt,name=syncing_to,json=syncingTo,proto3" json:"syncing_to,omitempty"`
	SyncSourceId                int32                  `protobuf:"varint,18,opt,name=sync_source_id,json=syncSourceId,proto3" json:"sync_source_id,omitempty"`
	InfoMessage                 string                 `protobuf:"bytes,19,opt,name=info_message,json=infoMessage,proto3" json:"info_message,omitempty"`
	unknownFields               protoimpl.UnknownFields
	sizeCache                   protoimpl.SizeCache
}

func (x *MemberStatus) Reset() {
	*x = MemberStatus{}
	mi := &file_replv1_repl_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MemberStatus) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MemberStatus) ProtoMessage() {}

func (x *MemberStatus) ProtoReflect() protoreflect.Message {
	mi := &file_replv1_repl_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MemberStatus.ProtoReflect.Descriptor instead.
func (*MemberStatus) Descriptor() ([]byte, []int) {
	return file_replv1_repl_proto_rawDescGZIP(), []int{16}
}

func (x *MemberStatus) GetId() int32 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *MemberStatus) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *MemberStatus) GetHealth() int32 {
	if x != nil {
		return x.Health
	}
	return 0
}

func (x *MemberStatus) GetState() int32 {
	if x != nil {
		return x.State
	}
	return 0
}

func (x *MemberStatus) GetStateStr() string {
	if x != nil {
		return x.StateStr
	}
	return ""
}

func (x *MemberStatus) GetUptimeSecs() int64 {
	if x != nil {
		return x.UptimeSecs
	}
	return 0
}

func (x *MemberStatus) GetOpTime() *OpTime {
	if x != nil {
		return x.OpTime
	}
	return nil
}

func (x *MemberStatus) GetOpTimeDate() string {
	if x != nil {
		return x.OpTimeDate
	}
	return ""
}

func (x *MemberStatus) GetSyncSource() string {
	if x != nil {
		return x.SyncSource
	}
	return ""
}

func (x *MemberStatus) GetSelf() bool {
	if x != nil {
		return x.Self
	}
	return false
}

func (x *MemberStatus) GetLastHeartbeatUnixMillis() int64 {
	if x != nil && x.LastHeartbeatUnixMillis != nil {
		return *x.LastHeartbeatUnixMillis
	}
	return 0
}

func (x *MemberStatus) GetLastHeartbeatRecvUnixMillis() int64 {
	if x != nil && x.LastHeartbeatRecvUnixMillis != nil {
		return *x.LastHeartbeatRecvUnixMillis
	}
	return 0
}

func (x *MemberStatus) GetPingMillis() int64 {
	if x != nil && x.PingMillis != nil {
		return *x.PingMillis
	}
	return 0
}

func (x *MemberStatus) GetLastHeartbeatMessage() string {
	if x != nil {
		return x.LastHeartbeatMessage
	}
	return ""
}

func (x *MemberStatus) GetElectionTime() *Timestamp {
	if x != nil {
		return x.ElectionTime
	}
	return nil
}

func (x *MemberStatus) GetConfigVersion() int64 {
	if x != nil {
		return x.ConfigVersion
	}
	return 0
}

func (x *MemberStatus) GetSyncingTo() string {
	if x != nil {
		return x.SyncingTo
	}
	return ""
}

func (x *MemberStatus) GetSyncSourceId() int32 {
	if x != nil {
		return x.SyncSourceId
	}
	return 0
}

func (x *MemberStatus) GetInfoMessage() string {
	if x != nil {
		return x.InfoMessage
	}
	return ""
}

type StatusOptimes struct {
	state                           protoimpl.MessageState `protogen:"open.v1"`
	LastCommittedOpTime             *OpTime                `protobuf:"bytes,1,opt,name=last_committed_op_time,json=lastCommittedOpTime,proto3" json:"last_committed_op_time,omitempty"`
	LastCommittedWallTimeUnixMillis int64                  `protobuf:"varint,2,opt,name=last_committed_wall_time_unix_millis,json=lastCommittedWallTimeUnixMillis,proto3" json:"last_committed_wall_time_unix_millis,omitempty"`
	AppliedOpTime                   *OpTime                `protobuf:"bytes,3,opt,name=applied_op_time,json=appliedOpTime,proto3" json:"applied_op_time,omitempty"`
	DurableOpTime                   *OpTime                `protobuf:"bytes,4,opt,name=durable_op_time,json=durableOpTime,proto3" json:"durable_op_time,omitempty"`
	LastAppliedWallTimeUnixMillis   int64                  `protobuf:"varint,5,opt,name=last_applied_wall_time_unix_millis,json=lastAppliedWallTimeUnixMillis,proto3" json:"last_applied_wall_time_unix_millis,omitempty"`
	LastDurableWallTimeUnixMillis   int64                  `protobuf:"varint,6,opt,name=last_durable_wall_time_unix_millis,json=lastDurableWallTimeUnixMillis,proto3" json:"last_durable_wall_time_unix_millis,omitempty"`
	unknownFields                   protoimpl.UnknownFields
	sizeCache                       protoimpl.SizeCache
}

func (x *StatusOptimes) Reset() {
	*x = StatusOptimes{}
	mi := &file_replv1_repl_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StatusOptimes) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatusOptimes) ProtoMessage() {}

func (x *StatusOptimes) ProtoReflect() protoreflect.Message {
	mi := &file_replv1_repl_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StatusOptimes.ProtoReflect.Descriptor instead.
func (*StatusOptimes) Descriptor() ([]byte, []int) {
	return file_replv1_repl_proto_rawDescGZIP(), []int{17}
}

func (x *StatusOptimes) GetLastCommittedOpTime() *OpTime {
	if x != nil {
		return x.LastCommittedOpTime
	}
	return nil
}

func (x *StatusOptimes) GetLastCommittedWallTimeUnixMillis() int64 {
	if x != nil {
		return x.LastCommittedWallTimeUnixMillis
	}
	return 0
}

func (x *StatusOptimes) GetAppliedOpTime() *OpTime {
	if x != nil {
		return x.AppliedOpTime
	}
	return nil
}

func (x *StatusOptimes) GetDurableOpTime() *OpTime {
	if x != nil {
		return x.DurableOpTime
	}
	return nil
}

func (x *StatusOptimes) GetLastAppliedWallTimeUnixMillis() int64 {
	if x != nil {
		return x.LastAppliedWallTimeUnixMillis
	}
	return 0
}

func (x *StatusOptimes) GetLastDurableWallTimeUnixMillis() int64 {
	if x != nil {
		return x.LastDurableWallTimeUnixMillis
	}
	return 0
}

type StatusResponse struct {
	state                   protoimpl.MessageState `protogen:"open.v1"`
	Set                     string                 `protobuf:"bytes,1,opt,name=set,proto3" json:"set,omitempty"`
	DateUnixMillis          int64                  `protobuf:"varint,2,opt,name=date_unix_millis,json=dateUnixMillis,proto3" json:"date_unix_millis,omitempty"`
	MyState                 int32                  `protobuf:"varint,3,opt,name=my_state,json=myState,proto3" json:"my_state,omitempty"`
	Term                    int64                  `protobuf:"varint,4,opt,name=term,proto3" json:"term,omitempty"`
	HeartbeatIntervalMillis int64                  `protobuf:"varint,5,opt,name=heartbeat_interval_millis,json=heartbeatIntervalMillis,proto3" json:"heartbeat_interval_millis,omitempty"`
	SyncSource              string                 `protobuf:"bytes,6,opt,name=sync_source,json=syncSource,proto3" json:"sync_source,omitempty"`
	Optimes                 *StatusOptimes         `protobuf:"bytes,7,opt,name=optimes,proto3" json:"optimes,omitempty"`
	Members                 []*MemberStatus        `protobuf:"bytes,8,rep,name=members,proto3" json:"members,omitempty"`
	SyncingTo               string                 `protobuf:"bytes,9,opt,name=syncing_to,json=syncingTo,proto3" json:"syncing_to,omitempty"`
	SyncSourceId            int32                  `protobuf:"varint,10,opt,name=sync_source_id,json=syncSourceId,proto3" json:"sync_source_id,omitempty"`
	MajorityVoteCount       int32                  `protobuf:"varint,11,opt,name=majority_vote_count,json=majorityVoteCount,proto3" json:"majority_vote_count,omitempty"`
	WriteMajorityCount      int32                  `protobuf:"varint,12,opt,name=write_majority_count,json=writeMajorityCount,proto3" json:"write_majority_count,omitempty"`
	unknownFields           protoimpl.UnknownFields
	sizeCache               protoimpl.SizeCache
}

func (x *StatusResponse) Reset() {
	*x = StatusResponse{}
	mi := &file_replv1_repl_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatusResponse) ProtoMessage() {}

func (x *StatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_replv1_repl_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StatusResponse.ProtoReflect.Descriptor instead.
func (*StatusResponse) Descriptor() ([]byte, []int) {
	return file_replv1_repl_proto_rawDescGZIP(), []int{18}
}

func (x *StatusResponse) GetSet() string {
	if x != nil {
		return x.Set
	}
	return ""
}

func (x *StatusResponse) GetDateUnixMillis() int64 {
	if x != nil {
		return x.DateUnixMillis
	}
	return 0
}

func (x *StatusResponse) GetMyState() int32 {
	if x != nil {
		return x.MyState
	}
	return 0
}

func (x *StatusResponse) GetTerm() int64 {
	if x != nil {
		return x.Term
	}
	return 0
}

func (x *StatusResponse) GetHeartbeatIntervalMillis() int64 {
	if x != nil {
		return x.HeartbeatIntervalMillis
	}
	return 0
}

func (x *StatusResponse) GetSyncSource() string {
	if x != nil {
		return x.SyncSource
	}
	return ""
}

func (x *StatusResponse) GetOptimes() *StatusOptimes {
	if x != nil {
		return x.Optimes
	}
	return nil
}

func (x *StatusResponse) GetMembers() []*MemberStatus {
	if x != nil {
		return x.Members
	}
	return nil
}

func (x *StatusResponse) GetSyncingTo() string {
	if x != nil {
		return x.SyncingTo
	}
	return ""
}

func (x *StatusResponse) GetSyncSourceId() int32 {
	if x != nil {
		return x.SyncSourceId
	}
	return 0
}

func (x *StatusResponse) GetMajorityVoteCount() int32 {
	if x != nil {
		return x.MajorityVoteCount
	}
	return 0
}

func (x *StatusResponse) GetWriteMajorityCount() int32 {
	if x != nil {
		return x.WriteMajorityCount
	}
	return 0
}

type FetchConfigRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FetchConfigRequest) Reset() {
	*x = FetchConfigRequest{}
	mi := &file_replv1_repl_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FetchConfigRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FetchConfigRequest) ProtoMessage() {}

func (x *FetchConfigRequest) ProtoReflect() protoreflect.Message {
	mi := &file_replv1_repl_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FetchConfigRequest.ProtoReflect.Descriptor instead.
func (*FetchConfigRequest) Descriptor() ([]byte, []int) {
	return file_replv1_repl_proto_rawDescGZIP(), []int{19}
}

type FetchConfigResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Config        *Config                `protobuf:"bytes,1,opt,name=config,proto3" json:"config,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FetchConfigResponse) Reset() {
	*x = FetchConfigResponse{}
	mi := &file_replv1_repl_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FetchConfigResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FetchConfigResponse) ProtoMessage() {}

func (x *FetchConfigResponse) ProtoReflect() protoreflect.Message {
	mi := &file_replv1_repl_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FetchConfigResponse.ProtoReflect.Descriptor instead.
func (*FetchConfigResponse) Descriptor() ([]byte, []int) {
	return file_replv1_repl_proto_rawDescGZIP(), []int{20}
}

func (x *FetchConfigResponse) GetConfig() *Config {
	if x != nil {
		return x.Config
	}
	return nil
}

var File_replv1_repl_proto protoreflect.FileDescriptor

const file_replv1_repl_proto_rawDesc = "" +
	"\n" +
	"\x11replv1/repl.proto\x12\x06replv1\"1\n" +
	"\tTimestamp\x12\x12\n" +
	"\x04secs\x18\x01 \x01(\rR\x04secs\x12\x10\n" +
	"\x03inc\x18\x02 \x01(\rR\x03inc\"M\n" +
	"\x06OpTime\x12/\n" +
	"\ttimestamp\x18\x01 \x01(\v2\x11.replv1.TimestampR\ttimestamp\x12\x12\n" +
	"\x04term\x18\x02 \x01(\x03R\x04term\"o\n" +
	"\x11OpTimeAndWallTime\x12'\n" +
	"\aop_time\x18\x01 \x01(\v2\x0e.replv1.OpTimeR\x06opTime\x121\n" +
	"\x15wall_time_unix_millis\x18\x02 \x01(\x03R\x12wallTimeUnixMillis\"\x93\x01\n" +
	"\n" +
	"TagPattern\x12E\n" +
	"\vconstraints\x18\x01 \x03(\v2#.replv1.TagPattern.ConstraintsEntryR\vconstraints\x1a>\n" +
	"\x10ConstraintsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\"\xd6\x02\n" +
	"\fMemberConfig\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x05R\x02id\x12\x12\n" +
	"\x04host\x18\x02 \x01(\tR\x04host\x12\x1a\n" +
	"\bpriority\x18\x03 \x01(\x01R\bpriority\x12\x14\n" +
	"\x05votes\x18\x04 \x01(\x05R\x05votes\x12\x18\n" +
	"\aarbiter\x18\x05 \x01(\bR\aarbiter\x12\x16\n" +
	"\x06hidden\x18\x06 \x01(\bR\x06hidden\x12#\n" +
	"\rbuild_indexes\x18\a \x01(\bR\fbuildIndexes\x12,\n" +
	"\x12slave_delay_millis\x18\b \x01(\x03R\x10slaveDelayMillis\x122\n" +
	"\x04tags\x18\t \x03(\v2\x1e.replv1.MemberConfig.TagsEntryR\x04tags\x1a7\n" +
	"\tTagsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\xd2\x04\n" +
	"\bSettings\x12:\n" +
	"\x19heartbeat_interval_millis\x18\x01 \x01(\x03R\x17heartbeatIntervalMillis\x128\n" +
	"\x18heartbeat_timeout_millis\x18\x02 \x01(\x03R\x16heartbeatTimeoutMillis\x126\n" +
	"\x17election_timeout_millis\x18\x03 \x01(\x03R\x15electionTimeoutMillis\x125\n" +
	"\x17catch_up_timeout_millis\x18\x04 \x01(\x03R\x14catchUpTimeoutMillis\x12B\n" +
	"\x1ecatch_up_takeover_delay_millis\x18\x05 \x01(\x03R\x1acatchUpTakeoverDelayMillis\x12)\n" +
	"\x10chaining_allowed\x18\x06 \x01(\bR\x0fchainingAllowed\x12C\n" +
	"\x1ewrite_concern_majority_journal\x18\a \x01(\bR\x1bwriteConcernMajorityJournal\x12T\n" +
	"\x12custom_write_modes\x18\b \x03(\v2&.replv1.Settings.CustomWriteModesEntryR\x10customWriteModes\x1aW\n" +
	"\x15CustomWriteModesEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12(\n" +
	"\x05value\x18\x02 \x01(\v2\x12.replv1.TagPatternR\x05value:\x028\x01\"\x9b\x01\n" +
	"\x06Config\x12\x19\n" +
	"\bset_name\x18\x01 \x01(\tR\asetName\x12\x18\n" +
	"\aversion\x18\x02 \x01(\x03R\aversion\x12.\n" +
	"\amembers\x18\x03 \x03(\v2\x14.replv1.MemberConfigR\amembers\x12,\n" +
	"\bsettings\x18\x04 \x01(\v2\x10.replv1.SettingsR\bsettings\"\xa6\x01\n" +
	"\x10HeartbeatRequest\x12\x19\n" +
	"\bset_name\x18\x01 \x01(\tR\asetName\x12%\n" +
	"\x0econfig_version\x18\x02 \x01(\x03R\rconfigVersion\x12\x1b\n" +
	"\tsender_id\x18\x03 \x01(\x05R\bsenderId\x12\x1f\n" +
	"\vsender_host\x18\x04 \x01(\tR\n" +
	"senderHost\x12\x12\n" +
	"\x04term\x18\x05 \x01(\x03R\x04term\"\xd2\x03\n" +
	"\x11HeartbeatResponse\x12\x19\n" +
	"\bset_name\x18\x01 \x01(\tR\asetName\x12\x14\n" +
	"\x05state\x18\x02 \x01(\x05R\x05state\x126\n" +
	"\relection_time\x18\x03 \x01(\v2\x11.replv1.TimestampR\felectionTime\x12A\n" +
	"\x0fapplied_op_time\x18\x04 \x01(\v2\x19.replv1.OpTimeAndWallTimeR\rappliedOpTime\x12A\n" +
	"\x0fdurable_op_time\x18\x05 \x01(\v2\x19.replv1.OpTimeAndWallTimeR\rdurableOpTime\x12\x1d\n" +
	"\n" +
	"primary_id\x18\x06 \x01(\x05R\tprimaryId\x12\x12\n" +
	"\x04term\x18\a \x01(\x03R\x04term\x12\x1f\n" +
	"\vsync_source\x18\b \x01(\tR\n" +
	"syncSource\x12%\n" +
	"\x0econfig_version\x18\t \x01(\x03R\rconfigVersion\x12+\n" +
	"\x11heartbeat_message\x18\n" +
	" \x01(\tR\x10heartbeatMessage\x12&\n" +
	"\x06config\x18\v \x01(\v2\x0e.replv1.ConfigR\x06config\"\xe6\x01\n" +
	"\vVoteRequest\x12\x19\n" +
	"\bset_name\x18\x01 \x01(\tR\asetName\x12\x12\n" +
	"\x04term\x18\x02 \x01(\x03R\x04term\x12'\n" +
	"\x0fcandidate_index\x18\x03 \x01(\x05R\x0ecandidateIndex\x12%\n" +
	"\x0econfig_version\x18\x04 \x01(\x03R\rconfigVersion\x12?\n" +
	"\x14last_applied_op_time\x18\x05 \x01(\v2\x0e.replv1.OpTimeR\x11lastAppliedOpTime\x12\x17\n" +
	"\adry_run\x18\x06 \x01(\bR\x06dryRun\"]\n" +
	"\fVoteResponse\x12\x12\n" +
	"\x04term\x18\x01 \x01(\x03R\x04term\x12!\n" +
	"\fvote_granted\x18\x02 \x01(\bR\vvoteGranted\x12\x16\n" +
	"\x06reason\x18\x03 \x01(\tR\x06reason\"\xe1\x01\n" +
	"\x15UpdatePositionRequest\x12\x1b\n" +
	"\tmember_id\x18\x01 \x01(\x05R\bmemberId\x12%\n" +
	"\x0econfig_version\x18\x02 \x01(\x03R\rconfigVersion\x12A\n" +
	"\x0fapplied_op_time\x18\x03 \x01(\v2\x19.replv1.OpTimeAndWallTimeR\rappliedOpTime\x12A\n" +
	"\x0fdurable_op_time\x18\x04 \x01(\v2\x19.replv1.OpTimeAndWallTimeR\rdurableOpTime\"\xa5\x02\n" +
	"\x0fReplSetMetadata\x12\x12\n" +
	"\x04term\x18\x01 \x01(\x03R\x04term\x12N\n" +
	"\x16last_committed_op_time\x18\x02 \x01(\v2\x19.replv1.OpTimeAndWallTimeR\x13lastCommittedOpTime\x126\n" +
	"\x0flast_op_visible\x18\x03 \x01(\v2\x0e.replv1.OpTimeR\rlastOpVisible\x12%\n" +
	"\x0econfig_version\x18\x04 \x01(\x03R\rconfigVersion\x12#\n" +
	"\rprimary_index\x18\x05 \x01(\x05R\fprimaryIndex\x12*\n" +
	"\x11sync_source_index\x18\x06 \x01(\x05R\x0fsyncSourceIndex\"\xed\x01\n" +
	"\x12OplogQueryMetadata\x12N\n" +
	"\x16last_committed_op_time\x18\x01 \x01(\v2\x19.replv1.OpTimeAndWallTimeR\x13lastCommittedOpTime\x126\n" +
	"\x0flast_op_applied\x18\x02 \x01(\v2\x0e.replv1.OpTimeR\rlastOpApplied\x12#\n" +
	"\rprimary_index\x18\x03 \x01(\x05R\fprimaryIndex\x12*\n" +
	"\x11sync_source_index\x18\x04 \x01(\x05R\x0fsyncSourceIndex\"\x90\x01\n" +
	"\x16UpdatePositionResponse\x123\n" +
	"\bmetadata\x18\x01 \x01(\v2\x17.replv1.ReplSetMetadataR\bmetadata\x12A\n" +
	"\x0eoplog_metadata\x18\x02 \x01(\v2\x1a.replv1.OplogQueryMetadataR\roplogMetadata\"\x0f\n" +
	"\rStatusRequest\"\xa1\x06\n" +
	"\fMemberStatus\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x05R\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x16\n" +
	"\x06health\x18\x03 \x01(\x05R\x06health\x12\x14\n" +
	"\x05state\x18\x04 \x01(\x05R\x05state\x12\x1b\n" +
	"\tstate_str\x18\x05 \x01(\tR\bstateStr\x12\x1f\n" +
	"\vuptime_secs\x18\x06 \x01(\x03R\n" +
	"uptimeSecs\x12'\n" +
	"\aop_time\x18\a \x01(\v2\x0e.replv1.OpTimeR\x06opTime\x12 \n" +
	"\fop_time_date\x18\b \x01(\tR\n" +
	"opTimeDate\x12\x1f\n" +
	"\vsync_source\x18\t \x01(\tR\n" +
	"syncSource\x12\x12\n" +
	"\x04self\x18\n" +
	" \x01(\bR\x04self\x12@\n" +
	"\x1alast_heartbeat_unix_millis\x18\v \x01(\x03H\x00R\x17lastHeartbeatUnixMillis\x88\x01\x01\x12I\n" +
	"\x1flast_heartbeat_recv_unix_millis\x18\f \x01(\x03H\x01R\x1blastHeartbeatRecvUnixMillis\x88\x01\x01\x12$\n" +
	"\vping_millis\x18\r \x01(\x03H\x02R\n" +
	"pingMillis\x88\x01\x01\x124\n" +
	"\x16last_heartbeat_message\x18\x0e \x01(\tR\x14lastHeartbeatMessage\x126\n" +
	"\relection_time\x18\x0f \x01(\v2\x11.replv1.TimestampR\felectionTime\x12%\n" +
	"\x0econfig_version\x18\x10 \x01(\x03R\rconfigVersion\x12\x1d\n" +
	"\n" +
	"syncing_to\x18\x11 \x01(\tR\tsyncingTo\x12$\n" +
	"\x0esync_source_id\x18\x12 \x01(\x05R\fsyncSourceId\x12!\n" +
	"\finfo_message\x18\x13 \x01(\tR\vinfoMessageB\x1d\n" +
	"\x1b_last_heartbeat_unix_millisB\"\n" +
	" _last_heartbeat_recv_unix_millisB\x0e\n" +
	"\f_ping_millis\"\xa9\x03\n" +
	"\rStatusOptimes\x12C\n" +
	"\x16last_committed_op_time\x18\x01 \x01(\v2\x0e.replv1.OpTimeR\x13lastCommittedOpTime\x12M\n" +
	"$last_committed_wall_time_unix_millis\x18\x02 \x01(\x03R\x1flastCommittedWallTimeUnixMillis\x126\n" +
	"\x0fapplied_op_time\x18\x03 \x01(\v2\x0e.replv1.OpTimeR\rappliedOpTime\x126\n" +
	"\x0fdurable_op_time\x18\x04 \x01(\v2\x0e.replv1.OpTimeR\rdurableOpTime\x12I\n" +
	"\"last_applied_wall_time_unix_millis\x18\x05 \x01(\x03R\x1dlastAppliedWallTimeUnixMillis\x12I\n" +
	"\"last_durable_wall_time_unix_millis\x18\x06 \x01(\x03R\x1dlastDurableWallTimeUnixMillis\"\xe0\x03\n" +
	"\x0eStatusResponse\x12\x10\n" +
	"\x03set\x18\x01 \x01(\tR\x03set\x12(\n" +
	"\x10date_unix_millis\x18\x02 \x01(\x03R\x0edateUnixMillis\x12\x19\n" +
	"\bmy_state\x18\x03 \x01(\x05R\amyState\x12\x12\n" +
	"\x04term\x18\x04 \x01(\x03R\x04term\x12:\n" +
	"\x19heartbeat_interval_millis\x18\x05 \x01(\x03R\x17heartbeatIntervalMillis\x12\x1f\n" +
	"\vsync_source\x18\x06 \x01(\tR\n" +
	"syncSource\x12/\n" +
	"\aoptimes\x18\a \x01(\v2\x15.replv1.StatusOptimesR\aoptimes\x12.\n" +
	"\amembers\x18\b \x03(\v2\x14.replv1.MemberStatusR\amembers\x12\x1d\n" +
	"\n" +
	"syncing_to\x18\t \x01(\tR\tsyncingTo\x12$\n" +
	"\x0esync_source_id\x18\n" +
	" \x01(\x05R\fsyncSourceId\x12.\n" +
	"\x13majority_vote_count\x18\v \x01(\x05R\x11majorityVoteCount\x120\n" +
	"\x14write_majority_count\x18\f \x01(\x05R\x12writeMajorityCount\"\x14\n" +
	"\x12FetchConfigRequest\"=\n" +
	"\x13FetchConfigResponse\x12&\n" +
	"\x06config\x18\x01 \x01(\v2\x0e.replv1.ConfigR\x06config2\xdb\x02\n" +
	"\vReplService\x12@\n" +
	"\tHeartbeat\x12\x18.replv1.HeartbeatRequest\x1a\x19.replv1.HeartbeatResponse\x128\n" +
	"\vRequestVote\x12\x13.replv1.VoteRequest\x1a\x14.replv1.VoteResponse\x12O\n" +
	"\x0eUpdatePosition\x12\x1d.replv1.UpdatePositionRequest\x1a\x1e.replv1.UpdatePositionResponse\x127\n" +
	"\x06Status\x12\x15.replv1.StatusRequest\x1a\x16.replv1.StatusResponse\x12F\n" +
	"\vFetchConfig\x12\x1a.replv1.FetchConfigRequest\x1a\x1b.replv1.FetchConfigResponseB>Z<github.com/i-melnichenko/replset-lab/pkg/proto/replv1;replv1b\x06proto3"

var (
	file_replv1_repl_proto_rawDescOnce sync.Once
	file_replv1_repl_proto_rawDescData []byte
)

func file_replv1_repl_proto_rawDescGZIP() []byte {
	file_replv1_repl_proto_rawDescOnce.Do(func() {
		file_replv1_repl_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_replv1_repl_proto_rawDesc), len(file_replv1_repl_proto_rawDesc)))
	})
	return file_replv1_repl_proto_rawDescData
}

var file_replv1_repl_proto_msgTypes = make([]protoimpl.MessageInfo, 24)
var file_replv1_repl_proto_goTypes = []any{
	(*Timestamp)(nil),              // 0: replv1.Timestamp
	(*OpTime)(nil),                 // 1: replv1.OpTime
	(*OpTimeAndWallTime)(nil),      // 2: replv1.OpTimeAndWallTime
	(*TagPattern)(nil),             // 3: replv1.TagPattern
	(*MemberConfig)(nil),           // 4: replv1.MemberConfig
	(*Settings)(nil),               // 5: replv1.Settings
	(*Config)(nil),                 // 6: replv1.Config
	(*HeartbeatRequest)(nil),       // 7: replv1.HeartbeatRequest
	(*HeartbeatResponse)(nil),      // 8: replv1.HeartbeatResponse
	(*VoteRequest)(nil),            // 9: replv1.VoteRequest
	(*VoteResponse)(nil),           // 10: replv1.VoteResponse
	(*UpdatePositionRequest)(nil),  // 11: replv1.UpdatePositionRequest
	(*ReplSetMetadata)(nil),        // 12: replv1.ReplSetMetadata
	(*OplogQueryMetadata)(nil),     // 13: replv1.OplogQueryMetadata
	(*UpdatePositionResponse)(nil), // 14: replv1.UpdatePositionResponse
	(*StatusRequest)(nil),          // 15: replv1.StatusRequest
	(*MemberStatus)(nil),           // 16: replv1.MemberStatus
	(*StatusOptimes)(nil),          // 17: replv1.StatusOptimes
	(*StatusResponse)(nil),         // 18: replv1.StatusResponse
	(*FetchConfigRequest)(nil),     // 19: replv1.FetchConfigRequest
	(*FetchConfigResponse)(nil),    // 20: replv1.FetchConfigResponse
	nil,                            // 21: replv1.TagPattern.ConstraintsEntry
	nil,                            // 22: replv1.MemberConfig.TagsEntry
	nil,                            // 23: replv1.Settings.CustomWriteModesEntry
}
var file_replv1_repl_proto_depIdxs = []int32{
	0,  // 0: replv1.OpTime.timestamp:type_name -> replv1.Timestamp
	1,  // 1: replv1.OpTimeAndWallTime.op_time:type_name -> replv1.OpTime
	21, // 2: replv1.TagPattern.constraints:type_name -> replv1.TagPattern.ConstraintsEntry
	22, // 3: replv1.MemberConfig.tags:type_name -> replv1.MemberConfig.TagsEntry
	23, // 4: replv1.Settings.custom_write_modes:type_name -> replv1.Settings.CustomWriteModesEntry
	4,  // 5: replv1.Config.members:type_name -> replv1.MemberConfig
	5,  // 6: replv1.Config.settings:type_name -> replv1.Settings
	0,  // 7: replv1.HeartbeatResponse.election_time:type_name -> replv1.Timestamp
	2,  // 8: replv1.HeartbeatResponse.applied_op_time:type_name -> replv1.OpTimeAndWallTime
	2,  // 9: replv1.HeartbeatResponse.durable_op_time:type_name -> replv1.OpTimeAndWallTime
	6,  // 10: replv1.HeartbeatResponse.config:type_name -> replv1.Config
	1,  // 11: replv1.VoteRequest.last_applied_op_time:type_name -> replv1.OpTime
	2,  // 12: replv1.UpdatePositionRequest.applied_op_time:type_name -> replv1.OpTimeAndWallTime
	2,  // 13: replv1.UpdatePositionRequest.durable_op_time:type_name -> replv1.OpTimeAndWallTime
	2,  // 14: replv1.ReplSetMetadata.last_committed_op_time:type_name -> replv1.OpTimeAndWallTime
	1,  // 15: replv1.ReplSetMetadata.last_op_visible:type_name -> replv1.OpTime
	2,  // 16: replv1.OplogQueryMetadata.last_committed_op_time:type_name -> replv1.OpTimeAndWallTime
	1,  // 17: replv1.OplogQueryMetadata.last_op_applied:type_name -> replv1.OpTime
	12, // 18: replv1.UpdatePositionResponse.metadata:type_name -> replv1.ReplSetMetadata
	13, // 19: replv1.UpdatePositionResponse.oplog_metadata:type_name -> replv1.OplogQueryMetadata
	1,  // 20: replv1.MemberStatus.op_time:type_name -> replv1.OpTime
	0,  // 21: replv1.MemberStatus.election_time:type_name -> replv1.Timestamp
	1,  // 22: replv1.StatusOptimes.last_committed_op_time:type_name -> replv1.OpTime
	1,  // 23: replv1.StatusOptimes.applied_op_time:type_name -> replv1.OpTime
	1,  // 24: replv1.StatusOptimes.durable_op_time:type_name -> replv1.OpTime
	17, // 25: replv1.StatusResponse.optimes:type_name -> replv1.StatusOptimes
	16, // 26: replv1.StatusResponse.members:type_name -> replv1.MemberStatus
	6,  // 27: replv1.FetchConfigResponse.config:type_name -> replv1.Config
	3,  // 28: replv1.Settings.CustomWriteModesEntry.value:type_name -> replv1.TagPattern
	7,  // 29: replv1.ReplService.Heartbeat:input_type -> replv1.HeartbeatRequest
	9,  // 30: replv1.ReplService.RequestVote:input_type -> replv1.VoteRequest
	11, // 31: replv1.ReplService.UpdatePosition:input_type -> replv1.UpdatePositionRequest
	15, // 32: replv1.ReplService.Status:input_type -> replv1.StatusRequest
	19, // 33: replv1.ReplService.FetchConfig:input_type -> replv1.FetchConfigRequest
	8,  // 34: replv1.ReplService.Heartbeat:output_type -> replv1.HeartbeatResponse
	10, // 35: replv1.ReplService.RequestVote:output_type -> replv1.VoteResponse
	14, // 36: replv1.ReplService.UpdatePosition:output_type -> replv1.UpdatePositionResponse
	18, // 37: replv1.ReplService.Status:output_type -> replv1.StatusResponse
	20, // 38: replv1.ReplService.FetchConfig:output_type -> replv1.FetchConfigResponse
	34, // [34:39] is the sub-list for method output_type
	29, // [29:34] is the sub-list for method input_type
	29, // [29:29] is the sub-list for extension type_name
	29, // [29:29] is the sub-list for extension extendee
	0,  // [0:29] is the sub-list for field type_name
}

func init() { file_replv1_repl_proto_init() }
func file_replv1_repl_proto_init() {
	if File_replv1_repl_proto != nil {
		return
	}
	file_replv1_repl_proto_msgTypes[16].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_replv1_repl_proto_rawDesc), len(file_replv1_repl_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   24,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_replv1_repl_proto_goTypes,
		DependencyIndexes: file_replv1_repl_proto_depIdxs,
		MessageInfos:      file_replv1_repl_proto_msgTypes,
	}.Build()
	File_replv1_repl_proto = out.File
	file_replv1_repl_proto_goTypes = nil
	file_replv1_repl_proto_depIdxs = nil
}
