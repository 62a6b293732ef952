// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: schedules/v1/schedules.proto

package schedulespb

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

type ParseTextRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Text  string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	// Optional carrier override; skips detection when set.
	CarrierHint string `protobuf:"bytes,2,opt,name=carrier_hint,json=carrierHint,proto3" json:"carrier_hint,omitempty"`
	// Optional source filename; its prefix can imply the carrier.
	FilenameHint  string `protobuf:"bytes,3,opt,name=filename_hint,json=filenameHint,proto3" json:"filename_hint,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseTextRequest) Reset() {
	*x = ParseTextRequest{}
	mi := &file_schedules_v1_schedules_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseTextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseTextRequest) ProtoMessage() {}

func (x *ParseTextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_schedules_v1_schedules_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseTextRequest.ProtoReflect.Descriptor instead.
func (*ParseTextRequest) Descriptor() ([]byte, []int) {
	return file_schedules_v1_schedules_proto_rawDescGZIP(), []int{0}
}

func (x *ParseTextRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *ParseTextRequest) GetCarrierHint() string {
	if x != nil {
		return x.CarrierHint
	}
	return ""
}

func (x *ParseTextRequest) GetFilenameHint() string {
	if x != nil {
		return x.FilenameHint
	}
	return ""
}

type ParseTextResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Carrier       string                 `protobuf:"bytes,1,opt,name=carrier,proto3" json:"carrier,omitempty"`
	Options       []*ScheduleOption      `protobuf:"bytes,2,rep,name=options,proto3" json:"options,omitempty"`
	Warnings      []*Warning             `protobuf:"bytes,3,rep,name=warnings,proto3" json:"warnings,omitempty"`
	TextSample    string                 `protobuf:"bytes,4,opt,name=text_sample,json=textSample,proto3" json:"text_sample,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseTextResponse) Reset() {
	*x = ParseTextResponse{}
	mi := &file_schedules_v1_schedules_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseTextResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseTextResponse) ProtoMessage() {}

func (x *ParseTextResponse) ProtoReflect() protoreflect.Message {
	mi := &file_schedules_v1_schedules_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseTextResponse.ProtoReflect.Descriptor instead.
func (*ParseTextResponse) Descriptor() ([]byte, []int) {
	return file_schedules_v1_schedules_proto_rawDescGZIP(), []int{1}
}

func (x *ParseTextResponse) GetCarrier() string {
	if x != nil {
		return x.Carrier
	}
	return ""
}

func (x *ParseTextResponse) GetOptions() []*ScheduleOption {
	if x != nil {
		return x.Options
	}
	return nil
}

func (x *ParseTextResponse) GetWarnings() []*Warning {
	if x != nil {
		return x.Warnings
	}
	return nil
}

func (x *ParseTextResponse) GetTextSample() string {
	if x != nil {
		return x.TextSample
	}
	return ""
}

type ScheduleOption struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vessel        string                 `protobuf:"bytes,1,opt,name=vessel,proto3" json:"vessel,omitempty"`
	Resolved      bool                   `protobuf:"varint,2,opt,name=resolved,proto3" json:"resolved,omitempty"`
	Voyage        string                 `protobuf:"bytes,3,opt,name=voyage,proto3" json:"voyage,omitempty"`
	Departure     string                 `protobuf:"bytes,4,opt,name=departure,proto3" json:"departure,omitempty"` // RFC3339, empty when absent
	Arrival       string                 `protobuf:"bytes,5,opt,name=arrival,proto3" json:"arrival,omitempty"`     // RFC3339, empty when absent
	RawEtd        string                 `protobuf:"bytes,6,opt,name=raw_etd,json=rawEtd,proto3" json:"raw_etd,omitempty"`
	RawEta        string                 `protobuf:"bytes,7,opt,name=raw_eta,json=rawEta,proto3" json:"raw_eta,omitempty"`
	Profile       string                 `protobuf:"bytes,8,opt,name=profile,proto3" json:"profile,omitempty"`
	Warnings      []*Warning             `protobuf:"bytes,9,rep,name=warnings,proto3" json:"warnings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScheduleOption) Reset() {
	*x = ScheduleOption{}
	mi := &file_schedules_v1_schedules_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScheduleOption) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScheduleOption) ProtoMessage() {}

func (x *ScheduleOption) ProtoReflect() protoreflect.Message {
	mi := &file_schedules_v1_schedules_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScheduleOption.ProtoReflect.Descriptor instead.
func (*ScheduleOption) Descriptor() ([]byte, []int) {
	return file_schedules_v1_schedules_proto_rawDescGZIP(), []int{2}
}

func (x *ScheduleOption) GetVessel() string {
	if x != nil {
		return x.Vessel
	}
	return ""
}

func (x *ScheduleOption) GetResolved() bool {
	if x != nil {
		return x.Resolved
	}
	return false
}

func (x *ScheduleOption) GetVoyage() string {
	if x != nil {
		return x.Voyage
	}
	return ""
}

func (x *ScheduleOption) GetDeparture() string {
	if x != nil {
		return x.Departure
	}
	return ""
}

func (x *ScheduleOption) GetArrival() string {
	if x != nil {
		return x.Arrival
	}
	return ""
}

func (x *ScheduleOption) GetRawEtd() string {
	if x != nil {
		return x.RawEtd
	}
	return ""
}

func (x *ScheduleOption) GetRawEta() string {
	if x != nil {
		return x.RawEta
	}
	return ""
}

func (x *ScheduleOption) GetProfile() string {
	if x != nil {
		return x.Profile
	}
	return ""
}

func (x *ScheduleOption) GetWarnings() []*Warning {
	if x != nil {
		return x.Warnings
	}
	return nil
}

type Warning struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Code          string                 `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Warning) Reset() {
	*x = Warning{}
	mi := &file_schedules_v1_schedules_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Warning) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Warning) ProtoMessage() {}

func (x *Warning) ProtoReflect() protoreflect.Message {
	mi := &file_schedules_v1_schedules_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Warning.ProtoReflect.Descriptor instead.
func (*Warning) Descriptor() ([]byte, []int) {
	return file_schedules_v1_schedules_proto_rawDescGZIP(), []int{3}
}

func (x *Warning) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *Warning) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type Vessel struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Carrier       string                 `protobuf:"bytes,3,opt,name=carrier,proto3" json:"carrier,omitempty"`
	IsActive      bool                   `protobuf:"varint,4,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	Aliases       []*VesselAlias         `protobuf:"bytes,7,rep,name=aliases,proto3" json:"aliases,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Vessel) Reset() {
	*x = Vessel{}
	mi := &file_schedules_v1_schedules_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Vessel) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Vessel) ProtoMessage() {}

func (x *Vessel) ProtoReflect() protoreflect.Message {
	mi := &file_schedules_v1_schedules_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Vessel.ProtoReflect.Descriptor instead.
func (*Vessel) Descriptor() ([]byte, []int) {
	return file_schedules_v1_schedules_proto_rawDescGZIP(), []int{4}
}

func (x *Vessel) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Vessel) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Vessel) GetCarrier() string {
	if x != nil {
		return x.Carrier
	}
	return ""
}

func (x *Vessel) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

func (x *Vessel) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Vessel) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

func (x *Vessel) GetAliases() []*VesselAlias {
	if x != nil {
		return x.Aliases
	}
	return nil
}

type VesselAlias struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	VesselId      string                 `protobuf:"bytes,2,opt,name=vessel_id,json=vesselId,proto3" json:"vessel_id,omitempty"`
	Alias         string                 `protobuf:"bytes,3,opt,name=alias,proto3" json:"alias,omitempty"`
	Source        string                 `protobuf:"bytes,4,opt,name=source,proto3" json:"source,omitempty"`
	Confidence    float64                `protobuf:"fixed64,5,opt,name=confidence,proto3" json:"confidence,omitempty"`
	UsageCount    int32                  `protobuf:"varint,6,opt,name=usage_count,json=usageCount,proto3" json:"usage_count,omitempty"`
	LastUsedAt    string                 `protobuf:"bytes,7,opt,name=last_used_at,json=lastUsedAt,proto3" json:"last_used_at,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VesselAlias) Reset() {
	*x = VesselAlias{}
	mi := &file_schedules_v1_schedules_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VesselAlias) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VesselAlias) ProtoMessage() {}

func (x *VesselAlias) ProtoReflect() protoreflect.Message {
	mi := &file_schedules_v1_schedules_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VesselAlias.ProtoReflect.Descriptor instead.
func (*VesselAlias) Descriptor() ([]byte, []int) {
	return file_schedules_v1_schedules_proto_rawDescGZIP(), []int{5}
}

func (x *VesselAlias) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *VesselAlias) GetVesselId() string {
	if x != nil {
		return x.VesselId
	}
	return ""
}

func (x *VesselAlias) GetAlias() string {
	if x != nil {
		return x.Alias
	}
	return ""
}

func (x *VesselAlias) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *VesselAlias) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *VesselAlias) GetUsageCount() int32 {
	if x != nil {
		return x.UsageCount
	}
	return 0
}

func (x *VesselAlias) GetLastUsedAt() string {
	if x != nil {
		return x.LastUsedAt
	}
	return ""
}

func (x *VesselAlias) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *VesselAlias) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ListVesselsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	IncludeAliases bool                   `protobuf:"varint,1,opt,name=include_aliases,json=includeAliases,proto3" json:"include_aliases,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListVesselsRequest) Reset() {
	*x = ListVesselsRequest{}
	mi := &file_schedules_v1_schedules_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVesselsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVesselsRequest) ProtoMessage() {}

func (x *ListVesselsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_schedules_v1_schedules_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVesselsRequest.ProtoReflect.Descriptor instead.
func (*ListVesselsRequest) Descriptor() ([]byte, []int) {
	return file_schedules_v1_schedules_proto_rawDescGZIP(), []int{6}
}

func (x *ListVesselsRequest) GetIncludeAliases() bool {
	if x != nil {
		return x.IncludeAliases
	}
	return false
}

type ListVesselsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vessels       []*Vessel              `protobuf:"bytes,1,rep,name=vessels,proto3" json:"vessels,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVesselsResponse) Reset() {
	*x = ListVesselsResponse{}
	mi := &file_schedules_v1_schedules_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVesselsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVesselsResponse) ProtoMessage() {}

func (x *ListVesselsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_schedules_v1_schedules_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVesselsResponse.ProtoReflect.Descriptor instead.
func (*ListVesselsResponse) Descriptor() ([]byte, []int) {
	return file_schedules_v1_schedules_proto_rawDescGZIP(), []int{7}
}

func (x *ListVesselsResponse) GetVessels() []*Vessel {
	if x != nil {
		return x.Vessels
	}
	return nil
}

type AddVesselRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Carrier       string                 `protobuf:"bytes,2,opt,name=carrier,proto3" json:"carrier,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddVesselRequest) Reset() {
	*x = AddVesselRequest{}
	mi := &file_schedules_v1_schedules_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddVesselRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddVesselRequest) ProtoMessage() {}

func (x *AddVesselRequest) ProtoReflect() protoreflect.Message {
	mi := &file_schedules_v1_schedules_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddVesselRequest.ProtoReflect.Descriptor instead.
func (*AddVesselRequest) Descriptor() ([]byte, []int) {
	return file_schedules_v1_schedules_proto_rawDescGZIP(), []int{8}
}

func (x *AddVesselRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *AddVesselRequest) GetCarrier() string {
	if x != nil {
		return x.Carrier
	}
	return ""
}

type AddVesselResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vessel        *Vessel                `protobuf:"bytes,1,opt,name=vessel,proto3" json:"vessel,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddVesselResponse) Reset() {
	*x = AddVesselResponse{}
	mi := &file_schedules_v1_schedules_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddVesselResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddVesselResponse) ProtoMessage() {}

func (x *AddVesselResponse) ProtoReflect() protoreflect.Message {
	mi := &file_schedules_v1_schedules_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddVesselResponse.ProtoReflect.Descriptor instead.
func (*AddVesselResponse) Descriptor() ([]byte, []int) {
	return file_schedules_v1_schedules_proto_rawDescGZIP(), []int{9}
}

func (x *AddVesselResponse) GetVessel() *Vessel {
	if x != nil {
		return x.Vessel
	}
	return nil
}

type AddAliasRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	VesselId string                 `protobuf:"bytes,1,opt,name=vessel_id,json=vesselId,proto3" json:"vessel_id,omitempty"`
	Alias    string                 `protobuf:"bytes,2,opt,name=alias,proto3" json:"alias,omitempty"`
	// Optional origin tag (manual, auto-learned, imported); defaults to manual.
	Source        string `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddAliasRequest) Reset() {
	*x = AddAliasRequest{}
	mi := &file_schedules_v1_schedules_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddAliasRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddAliasRequest) ProtoMessage() {}

func (x *AddAliasRequest) ProtoReflect() protoreflect.Message {
	mi := &file_schedules_v1_schedules_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddAliasRequest.ProtoReflect.Descriptor instead.
func (*AddAliasRequest) Descriptor() ([]byte, []int) {
	return file_schedules_v1_schedules_proto_rawDescGZIP(), []int{10}
}

func (x *AddAliasRequest) GetVesselId() string {
	if x != nil {
		return x.VesselId
	}
	return ""
}

func (x *AddAliasRequest) GetAlias() string {
	if x != nil {
		return x.Alias
	}
	return ""
}

func (x *AddAliasRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

type AddAliasResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Alias         *VesselAlias           `protobuf:"bytes,1,opt,name=alias,proto3" json:"alias,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddAliasResponse) Reset() {
	*x = AddAliasResponse{}
	mi := &file_schedules_v1_schedules_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddAliasResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddAliasResponse) ProtoMessage() {}

func (x *AddAliasResponse) ProtoReflect() protoreflect.Message {
	mi := &file_schedules_v1_schedules_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddAliasResponse.ProtoReflect.Descriptor instead.
func (*AddAliasResponse) Descriptor() ([]byte, []int) {
	return file_schedules_v1_schedules_proto_rawDescGZIP(), []int{11}
}

func (x *AddAliasResponse) GetAlias() *VesselAlias {
	if x != nil {
		return x.Alias
	}
	return nil
}

type DeleteVesselRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteVesselRequest) Reset() {
	*x = DeleteVesselRequest{}
	mi := &file_schedules_v1_schedules_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteVesselRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteVesselRequest) ProtoMessage() {}

func (x *DeleteVesselRequest) ProtoReflect() protoreflect.Message {
	mi := &file_schedules_v1_schedules_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteVesselRequest.ProtoReflect.Descriptor instead.
func (*DeleteVesselRequest) Descriptor() ([]byte, []int) {
	return file_schedules_v1_schedules_proto_rawDescGZIP(), []int{12}
}

func (x *DeleteVesselRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteVesselResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteVesselResponse) Reset() {
	*x = DeleteVesselResponse{}
	mi := &file_schedules_v1_schedules_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteVesselResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteVesselResponse) ProtoMessage() {}

func (x *DeleteVesselResponse) ProtoReflect() protoreflect.Message {
	mi := &file_schedules_v1_schedules_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteVesselResponse.ProtoReflect.Descriptor instead.
func (*DeleteVesselResponse) Descriptor() ([]byte, []int) {
	return file_schedules_v1_schedules_proto_rawDescGZIP(), []int{13}
}

type DeleteAliasRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Alias         string                 `protobuf:"bytes,1,opt,name=alias,proto3" json:"alias,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteAliasRequest) Reset() {
	*x = DeleteAliasRequest{}
	mi := &file_schedules_v1_schedules_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteAliasRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteAliasRequest) ProtoMessage() {}

func (x *DeleteAliasRequest) ProtoReflect() protoreflect.Message {
	mi := &file_schedules_v1_schedules_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteAliasRequest.ProtoReflect.Descriptor instead.
func (*DeleteAliasRequest) Descriptor() ([]byte, []int) {
	return file_schedules_v1_schedules_proto_rawDescGZIP(), []int{14}
}

func (x *DeleteAliasRequest) GetAlias() string {
	if x != nil {
		return x.Alias
	}
	return ""
}

type DeleteAliasResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteAliasResponse) Reset() {
	*x = DeleteAliasResponse{}
	mi := &file_schedules_v1_schedules_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteAliasResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteAliasResponse) ProtoMessage() {}

func (x *DeleteAliasResponse) ProtoReflect() protoreflect.Message {
	mi := &file_schedules_v1_schedules_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteAliasResponse.ProtoReflect.Descriptor instead.
func (*DeleteAliasResponse) Descriptor() ([]byte, []int) {
	return file_schedules_v1_schedules_proto_rawDescGZIP(), []int{15}
}

type PushRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PushRequest) Reset() {
	*x = PushRequest{}
	mi := &file_schedules_v1_schedules_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PushRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PushRequest) ProtoMessage() {}

func (x *PushRequest) ProtoReflect() protoreflect.Message {
	mi := &file_schedules_v1_schedules_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PushRequest.ProtoReflect.Descriptor instead.
func (*PushRequest) Descriptor() ([]byte, []int) {
	return file_schedules_v1_schedules_proto_rawDescGZIP(), []int{16}
}

type PushResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VesselsPushed int32                  `protobuf:"varint,1,opt,name=vessels_pushed,json=vesselsPushed,proto3" json:"vessels_pushed,omitempty"`
	AliasesPushed int32                  `protobuf:"varint,2,opt,name=aliases_pushed,json=aliasesPushed,proto3" json:"aliases_pushed,omitempty"`
	Skipped       int32                  `protobuf:"varint,3,opt,name=skipped,proto3" json:"skipped,omitempty"`
	Conflicts     []string               `protobuf:"bytes,4,rep,name=conflicts,proto3" json:"conflicts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PushResponse) Reset() {
	*x = PushResponse{}
	mi := &file_schedules_v1_schedules_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PushResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PushResponse) ProtoMessage() {}

func (x *PushResponse) ProtoReflect() protoreflect.Message {
	mi := &file_schedules_v1_schedules_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PushResponse.ProtoReflect.Descriptor instead.
func (*PushResponse) Descriptor() ([]byte, []int) {
	return file_schedules_v1_schedules_proto_rawDescGZIP(), []int{17}
}

func (x *PushResponse) GetVesselsPushed() int32 {
	if x != nil {
		return x.VesselsPushed
	}
	return 0
}

func (x *PushResponse) GetAliasesPushed() int32 {
	if x != nil {
		return x.AliasesPushed
	}
	return 0
}

func (x *PushResponse) GetSkipped() int32 {
	if x != nil {
		return x.Skipped
	}
	return 0
}

func (x *PushResponse) GetConflicts() []string {
	if x != nil {
		return x.Conflicts
	}
	return nil
}

type PullRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PullRequest) Reset() {
	*x = PullRequest{}
	mi := &file_schedules_v1_schedules_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PullRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PullRequest) ProtoMessage() {}

func (x *PullRequest) ProtoReflect() protoreflect.Message {
	mi := &file_schedules_v1_schedules_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PullRequest.ProtoReflect.Descriptor instead.
func (*PullRequest) Descriptor() ([]byte, []int) {
	return file_schedules_v1_schedules_proto_rawDescGZIP(), []int{18}
}

type PullResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vessels       int32                  `protobuf:"varint,1,opt,name=vessels,proto3" json:"vessels,omitempty"`
	Aliases       int32                  `protobuf:"varint,2,opt,name=aliases,proto3" json:"aliases,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PullResponse) Reset() {
	*x = PullResponse{}
	mi := &file_schedules_v1_schedules_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PullResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PullResponse) ProtoMessage() {}

func (x *PullResponse) ProtoReflect() protoreflect.Message {
	mi := &file_schedules_v1_schedules_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PullResponse.ProtoReflect.Descriptor instead.
func (*PullResponse) Descriptor() ([]byte, []int) {
	return file_schedules_v1_schedules_proto_rawDescGZIP(), []int{19}
}

func (x *PullResponse) GetVessels() int32 {
	if x != nil {
		return x.Vessels
	}
	return 0
}

func (x *PullResponse) GetAliases() int32 {
	if x != nil {
		return x.Aliases
	}
	return 0
}

var File_schedules_v1_schedules_proto protoreflect.FileDescriptor

const file_schedules_v1_schedules_proto_rawDesc = "" +
	"\n" +
	"\x1cschedules/v1/schedules.proto\x12\fschedules.v1\"n\n" +
	"\x10ParseTextRequest\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12!\n" +
	"\fcarrier_hint\x18\x02 \x01(\tR\vcarrierHint\x12#\n" +
	"\rfilename_hint\x18\x03 \x01(\tR\ffilenameHint\"\xb9\x01\n" +
	"\x11ParseTextResponse\x12\x18\n" +
	"\acarrier\x18\x01 \x01(\tR\acarrier\x126\n" +
	"\aoptions\x18\x02 \x03(\v2\x1c.schedules.v1.ScheduleOptionR\aoptions\x121\n" +
	"\bwarnings\x18\x03 \x03(\v2\x15.schedules.v1.WarningR\bwarnings\x12\x1f\n" +
	"\vtext_sample\x18\x04 \x01(\tR\n" +
	"textSample\"\x93\x02\n" +
	"\x0eScheduleOption\x12\x16\n" +
	"\x06vessel\x18\x01 \x01(\tR\x06vessel\x12\x1a\n" +
	"\bresolved\x18\x02 \x01(\bR\bresolved\x12\x16\n" +
	"\x06voyage\x18\x03 \x01(\tR\x06voyage\x12\x1c\n" +
	"\tdeparture\x18\x04 \x01(\tR\tdeparture\x12\x18\n" +
	"\aarrival\x18\x05 \x01(\tR\aarrival\x12\x17\n" +
	"\araw_etd\x18\x06 \x01(\tR\x06rawEtd\x12\x17\n" +
	"\araw_eta\x18\a \x01(\tR\x06rawEta\x12\x18\n" +
	"\aprofile\x18\b \x01(\tR\aprofile\x121\n" +
	"\bwarnings\x18\t \x03(\v2\x15.schedules.v1.WarningR\bwarnings\"7\n" +
	"\aWarning\x12\x12\n" +
	"\x04code\x18\x01 \x01(\tR\x04code\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\"\xd6\x01\n" +
	"\x06Vessel\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\acarrier\x18\x03 \x01(\tR\acarrier\x12\x1b\n" +
	"\tis_active\x18\x04 \x01(\bR\bisActive\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\x123\n" +
	"\aaliases\x18\a \x03(\v2\x19.schedules.v1.VesselAliasR\aaliases\"\x89\x02\n" +
	"\vVesselAlias\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tvessel_id\x18\x02 \x01(\tR\bvesselId\x12\x14\n" +
	"\x05alias\x18\x03 \x01(\tR\x05alias\x12\x16\n" +
	"\x06source\x18\x04 \x01(\tR\x06source\x12\x1e\n" +
	"\n" +
	"confidence\x18\x05 \x01(\x01R\n" +
	"confidence\x12\x1f\n" +
	"\vusage_count\x18\x06 \x01(\x05R\n" +
	"usageCount\x12 \n" +
	"\flast_used_at\x18\a \x01(\tR\n" +
	"lastUsedAt\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\t \x01(\tR\tupdatedAt\"=\n" +
	"\x12ListVesselsRequest\x12'\n" +
	"\x0finclude_aliases\x18\x01 \x01(\bR\x0eincludeAliases\"E\n" +
	"\x13ListVesselsResponse\x12.\n" +
	"\avessels\x18\x01 \x03(\v2\x14.schedules.v1.VesselR\avessels\"@\n" +
	"\x10AddVesselRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x18\n" +
	"\acarrier\x18\x02 \x01(\tR\acarrier\"A\n" +
	"\x11AddVesselResponse\x12,\n" +
	"\x06vessel\x18\x01 \x01(\v2\x14.schedules.v1.VesselR\x06vessel\"\\\n" +
	"\x0fAddAliasRequest\x12\x1b\n" +
	"\tvessel_id\x18\x01 \x01(\tR\bvesselId\x12\x14\n" +
	"\x05alias\x18\x02 \x01(\tR\x05alias\x12\x16\n" +
	"\x06source\x18\x03 \x01(\tR\x06source\"C\n" +
	"\x10AddAliasResponse\x12/\n" +
	"\x05alias\x18\x01 \x01(\v2\x19.schedules.v1.VesselAliasR\x05alias\"%\n" +
	"\x13DeleteVesselRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x16\n" +
	"\x14DeleteVesselResponse\"*\n" +
	"\x12DeleteAliasRequest\x12\x14\n" +
	"\x05alias\x18\x01 \x01(\tR\x05alias\"\x15\n" +
	"\x13DeleteAliasResponse\"\r\n" +
	"\vPushRequest\"\x94\x01\n" +
	"\fPushResponse\x12%\n" +
	"\x0evessels_pushed\x18\x01 \x01(\x05R\rvesselsPushed\x12%\n" +
	"\x0ealiases_pushed\x18\x02 \x01(\x05R\raliasesPushed\x12\x18\n" +
	"\askipped\x18\x03 \x01(\x05R\askipped\x12\x1c\n" +
	"\tconflicts\x18\x04 \x03(\tR\tconflicts\"\r\n" +
	"\vPullRequest\"B\n" +
	"\fPullResponse\x12\x18\n" +
	"\avessels\x18\x01 \x01(\x05R\avessels\x12\x18\n" +
	"\aaliases\x18\x02 \x01(\x05R\aaliases2]\n" +
	"\rParserService\x12L\n" +
	"\tParseText\x12\x1e.schedules.v1.ParseTextRequest\x1a\x1f.schedules.v1.ParseTextResponse2\xa8\x03\n" +
	"\x0eCatalogService\x12R\n" +
	"\vListVessels\x12 .schedules.v1.ListVesselsRequest\x1a!.schedules.v1.ListVesselsResponse\x12L\n" +
	"\tAddVessel\x12\x1e.schedules.v1.AddVesselRequest\x1a\x1f.schedules.v1.AddVesselResponse\x12I\n" +
	"\bAddAlias\x12\x1d.schedules.v1.AddAliasRequest\x1a\x1e.schedules.v1.AddAliasResponse\x12U\n" +
	"\fDeleteVessel\x12!.schedules.v1.DeleteVesselRequest\x1a\".schedules.v1.DeleteVesselResponse\x12R\n" +
	"\vDeleteAlias\x12 .schedules.v1.DeleteAliasRequest\x1a!.schedules.v1.DeleteAliasResponse2\x8b\x01\n" +
	"\vSyncService\x12=\n" +
	"\x04Push\x12\x19.schedules.v1.PushRequest\x1a\x1a.schedules.v1.PushResponse\x12=\n" +
	"\x04Pull\x12\x19.schedules.v1.PullRequest\x1a\x1a.schedules.v1.PullResponseBJZHgithub.com/danuarta/schedules-tracker/gen/proto/schedules/v1;schedulespbb\x06proto3"

var (
	file_schedules_v1_schedules_proto_rawDescOnce sync.Once
	file_schedules_v1_schedules_proto_rawDescData []byte
)

func file_schedules_v1_schedules_proto_rawDescGZIP() []byte {
	file_schedules_v1_schedules_proto_rawDescOnce.Do(func() {
		file_schedules_v1_schedules_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_schedules_v1_schedules_proto_rawDesc), len(file_schedules_v1_schedules_proto_rawDesc)))
	})
	return file_schedules_v1_schedules_proto_rawDescData
}

var file_schedules_v1_schedules_proto_msgTypes = make([]protoimpl.MessageInfo, 20)
var file_schedules_v1_schedules_proto_goTypes = []any{
	(*ParseTextRequest)(nil),     // 0: schedules.v1.ParseTextRequest
	(*ParseTextResponse)(nil),    // 1: schedules.v1.ParseTextResponse
	(*ScheduleOption)(nil),       // 2: schedules.v1.ScheduleOption
	(*Warning)(nil),              // 3: schedules.v1.Warning
	(*Vessel)(nil),               // 4: schedules.v1.Vessel
	(*VesselAlias)(nil),          // 5: schedules.v1.VesselAlias
	(*ListVesselsRequest)(nil),   // 6: schedules.v1.ListVesselsRequest
	(*ListVesselsResponse)(nil),  // 7: schedules.v1.ListVesselsResponse
	(*AddVesselRequest)(nil),     // 8: schedules.v1.AddVesselRequest
	(*AddVesselResponse)(nil),    // 9: schedules.v1.AddVesselResponse
	(*AddAliasRequest)(nil),      // 10: schedules.v1.AddAliasRequest
	(*AddAliasResponse)(nil),     // 11: schedules.v1.AddAliasResponse
	(*DeleteVesselRequest)(nil),  // 12: schedules.v1.DeleteVesselRequest
	(*DeleteVesselResponse)(nil), // 13: schedules.v1.DeleteVesselResponse
	(*DeleteAliasRequest)(nil),   // 14: schedules.v1.DeleteAliasRequest
	(*DeleteAliasResponse)(nil),  // 15: schedules.v1.DeleteAliasResponse
	(*PushRequest)(nil),          // 16: schedules.v1.PushRequest
	(*PushResponse)(nil),         // 17: schedules.v1.PushResponse
	(*PullRequest)(nil),          // 18: schedules.v1.PullRequest
	(*PullResponse)(nil),         // 19: schedules.v1.PullResponse
}
var file_schedules_v1_schedules_proto_depIdxs = []int32{
	2,  // 0: schedules.v1.ParseTextResponse.options:type_name -> schedules.v1.ScheduleOption
	3,  // 1: schedules.v1.ParseTextResponse.warnings:type_name -> schedules.v1.Warning
	3,  // 2: schedules.v1.ScheduleOption.warnings:type_name -> schedules.v1.Warning
	5,  // 3: schedules.v1.Vessel.aliases:type_name -> schedules.v1.VesselAlias
	4,  // 4: schedules.v1.ListVesselsResponse.vessels:type_name -> schedules.v1.Vessel
	4,  // 5: schedules.v1.AddVesselResponse.vessel:type_name -> schedules.v1.Vessel
	5,  // 6: schedules.v1.AddAliasResponse.alias:type_name -> schedules.v1.VesselAlias
	0,  // 7: schedules.v1.ParserService.ParseText:input_type -> schedules.v1.ParseTextRequest
	6,  // 8: schedules.v1.CatalogService.ListVessels:input_type -> schedules.v1.ListVesselsRequest
	8,  // 9: schedules.v1.CatalogService.AddVessel:input_type -> schedules.v1.AddVesselRequest
	10, // 10: schedules.v1.CatalogService.AddAlias:input_type -> schedules.v1.AddAliasRequest
	12, // 11: schedules.v1.CatalogService.DeleteVessel:input_type -> schedules.v1.DeleteVesselRequest
	14, // 12: schedules.v1.CatalogService.DeleteAlias:input_type -> schedules.v1.DeleteAliasRequest
	16, // 13: schedules.v1.SyncService.Push:input_type -> schedules.v1.PushRequest
	18, // 14: schedules.v1.SyncService.Pull:input_type -> schedules.v1.PullRequest
	1,  // 15: schedules.v1.ParserService.ParseText:output_type -> schedules.v1.ParseTextResponse
	7,  // 16: schedules.v1.CatalogService.ListVessels:output_type -> schedules.v1.ListVesselsResponse
	9,  // 17: schedules.v1.CatalogService.AddVessel:output_type -> schedules.v1.AddVesselResponse
	11, // 18: schedules.v1.CatalogService.AddAlias:output_type -> schedules.v1.AddAliasResponse
	13, // 19: schedules.v1.CatalogService.DeleteVessel:output_type -> schedules.v1.DeleteVesselResponse
	15, // 20: schedules.v1.CatalogService.DeleteAlias:output_type -> schedules.v1.DeleteAliasResponse
	17, // 21: schedules.v1.SyncService.Push:output_type -> schedules.v1.PushResponse
	19, // 22: schedules.v1.SyncService.Pull:output_type -> schedules.v1.PullResponse
	15, // [15:23] is the sub-list for method output_type
	7,  // [7:15] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_schedules_v1_schedules_proto_init() }
func file_schedules_v1_schedules_proto_init() {
	if File_schedules_v1_schedules_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_schedules_v1_schedules_proto_rawDesc), len(file_schedules_v1_schedules_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   20,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_schedules_v1_schedules_proto_goTypes,
		DependencyIndexes: file_schedules_v1_schedules_proto_depIdxs,
		MessageInfos:      file_schedules_v1_schedules_proto_msgTypes,
	}.Build()
	File_schedules_v1_schedules_proto = out.File
	file_schedules_v1_schedules_proto_goTypes = nil
	file_schedules_v1_schedules_proto_depIdxs = nil
}
