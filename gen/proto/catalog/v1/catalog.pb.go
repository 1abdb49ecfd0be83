// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: catalog/v1/catalog.proto

package catalogv1

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

type ExtractCatalogRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Text            string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`                                               // raw catalogue text, 1..10MB
	SupplierId      string                 `protobuf:"bytes,2,opt,name=supplier_id,json=supplierId,proto3" json:"supplier_id,omitempty"`                 // optional; UUID of the owning supplier
	Locale          string                 `protobuf:"bytes,3,opt,name=locale,proto3" json:"locale,omitempty"`                                           // "en" or "es"; empty means "en"
	Truncate        bool                   `protobuf:"varint,4,opt,name=truncate,proto3" json:"truncate,omitempty"`                                      // allow page-budget truncation of oversized text
	MaxPages        int32                  `protobuf:"varint,5,opt,name=max_pages,json=maxPages,proto3" json:"max_pages,omitempty"`                      // optional, 1..1000
	CheckDuplicates bool                   `protobuf:"varint,6,opt,name=check_duplicates,json=checkDuplicates,proto3" json:"check_duplicates,omitempty"` // filter against already-stored listings
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ExtractCatalogRequest) Reset() {
	*x = ExtractCatalogRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractCatalogRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractCatalogRequest) ProtoMessage() {}

func (x *ExtractCatalogRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractCatalogRequest.ProtoReflect.Descriptor instead.
func (*ExtractCatalogRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{0}
}

func (x *ExtractCatalogRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *ExtractCatalogRequest) GetSupplierId() string {
	if x != nil {
		return x.SupplierId
	}
	return ""
}

func (x *ExtractCatalogRequest) GetLocale() string {
	if x != nil {
		return x.Locale
	}
	return ""
}

func (x *ExtractCatalogRequest) GetTruncate() bool {
	if x != nil {
		return x.Truncate
	}
	return false
}

func (x *ExtractCatalogRequest) GetMaxPages() int32 {
	if x != nil {
		return x.MaxPages
	}
	return 0
}

func (x *ExtractCatalogRequest) GetCheckDuplicates() bool {
	if x != nil {
		return x.CheckDuplicates
	}
	return false
}

type ExtractCatalogResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Success           bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Listings          []*Listing             `protobuf:"bytes,2,rep,name=listings,proto3" json:"listings,omitempty"`
	Count             int32                  `protobuf:"varint,3,opt,name=count,proto3" json:"count,omitempty"`
	ChunksProcessed   int32                  `protobuf:"varint,4,opt,name=chunks_processed,json=chunksProcessed,proto3" json:"chunks_processed,omitempty"`
	ChunksFailed      int32                  `protobuf:"varint,5,opt,name=chunks_failed,json=chunksFailed,proto3" json:"chunks_failed,omitempty"`
	DuplicatesSkipped int32                  `protobuf:"varint,6,opt,name=duplicates_skipped,json=duplicatesSkipped,proto3" json:"duplicates_skipped,omitempty"`
	ErrorCode         string                 `protobuf:"bytes,7,opt,name=error_code,json=errorCode,proto3" json:"error_code,omitempty"` // "QUOTA_EXHAUSTED" on a partial abort
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *ExtractCatalogResponse) Reset() {
	*x = ExtractCatalogResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractCatalogResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractCatalogResponse) ProtoMessage() {}

func (x *ExtractCatalogResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractCatalogResponse.ProtoReflect.Descriptor instead.
func (*ExtractCatalogResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{1}
}

func (x *ExtractCatalogResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *ExtractCatalogResponse) GetListings() []*Listing {
	if x != nil {
		return x.Listings
	}
	return nil
}

func (x *ExtractCatalogResponse) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

func (x *ExtractCatalogResponse) GetChunksProcessed() int32 {
	if x != nil {
		return x.ChunksProcessed
	}
	return 0
}

func (x *ExtractCatalogResponse) GetChunksFailed() int32 {
	if x != nil {
		return x.ChunksFailed
	}
	return 0
}

func (x *ExtractCatalogResponse) GetDuplicatesSkipped() int32 {
	if x != nil {
		return x.DuplicatesSkipped
	}
	return 0
}

func (x *ExtractCatalogResponse) GetErrorCode() string {
	if x != nil {
		return x.ErrorCode
	}
	return ""
}

type Supplier struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name            string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Country         string                 `protobuf:"bytes,3,opt,name=country,proto3" json:"country,omitempty"`
	DefaultCurrency string                 `protobuf:"bytes,4,opt,name=default_currency,json=defaultCurrency,proto3" json:"default_currency,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Supplier) Reset() {
	*x = Supplier{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Supplier) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Supplier) ProtoMessage() {}

func (x *Supplier) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Supplier.ProtoReflect.Descriptor instead.
func (*Supplier) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{2}
}

func (x *Supplier) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Supplier) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Supplier) GetCountry() string {
	if x != nil {
		return x.Country
	}
	return ""
}

func (x *Supplier) GetDefaultCurrency() string {
	if x != nil {
		return x.DefaultCurrency
	}
	return ""
}

func (x *Supplier) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Supplier) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Listing struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SupplierId    string                 `protobuf:"bytes,2,opt,name=supplier_id,json=supplierId,proto3" json:"supplier_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Origin        string                 `protobuf:"bytes,4,opt,name=origin,proto3" json:"origin,omitempty"`
	Region        string                 `protobuf:"bytes,5,opt,name=region,proto3" json:"region,omitempty"`
	Process       string                 `protobuf:"bytes,6,opt,name=process,proto3" json:"process,omitempty"`
	Price         string                 `protobuf:"bytes,7,opt,name=price,proto3" json:"price,omitempty"` // decimal string
	CurrencyCode  string                 `protobuf:"bytes,8,opt,name=currency_code,json=currencyCode,proto3" json:"currency_code,omitempty"`
	Score         float64                `protobuf:"fixed64,9,opt,name=score,proto3" json:"score,omitempty"` // cupping score, 0..100
	Altitude      string                 `protobuf:"bytes,10,opt,name=altitude,proto3" json:"altitude,omitempty"`
	Variety       string                 `protobuf:"bytes,11,opt,name=variety,proto3" json:"variety,omitempty"`
	TastingNotes  string                 `protobuf:"bytes,12,opt,name=tasting_notes,json=tastingNotes,proto3" json:"tasting_notes,omitempty"`
	Available     bool                   `protobuf:"varint,13,opt,name=available,proto3" json:"available,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,14,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,15,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Listing) Reset() {
	*x = Listing{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Listing) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Listing) ProtoMessage() {}

func (x *Listing) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Listing.ProtoReflect.Descriptor instead.
func (*Listing) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{3}
}

func (x *Listing) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Listing) GetSupplierId() string {
	if x != nil {
		return x.SupplierId
	}
	return ""
}

func (x *Listing) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Listing) GetOrigin() string {
	if x != nil {
		return x.Origin
	}
	return ""
}

func (x *Listing) GetRegion() string {
	if x != nil {
		return x.Region
	}
	return ""
}

func (x *Listing) GetProcess() string {
	if x != nil {
		return x.Process
	}
	return ""
}

func (x *Listing) GetPrice() string {
	if x != nil {
		return x.Price
	}
	return ""
}

func (x *Listing) GetCurrencyCode() string {
	if x != nil {
		return x.CurrencyCode
	}
	return ""
}

func (x *Listing) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *Listing) GetAltitude() string {
	if x != nil {
		return x.Altitude
	}
	return ""
}

func (x *Listing) GetVariety() string {
	if x != nil {
		return x.Variety
	}
	return ""
}

func (x *Listing) GetTastingNotes() string {
	if x != nil {
		return x.TastingNotes
	}
	return ""
}

func (x *Listing) GetAvailable() bool {
	if x != nil {
		return x.Available
	}
	return false
}

func (x *Listing) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Listing) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateSupplierRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Name            string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	DefaultCurrency string                 `protobuf:"bytes,2,opt,name=default_currency,json=defaultCurrency,proto3" json:"default_currency,omitempty"`
	Country         string                 `protobuf:"bytes,3,opt,name=country,proto3" json:"country,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateSupplierRequest) Reset() {
	*x = CreateSupplierRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSupplierRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSupplierRequest) ProtoMessage() {}

func (x *CreateSupplierRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSupplierRequest.ProtoReflect.Descriptor instead.
func (*CreateSupplierRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{4}
}

func (x *CreateSupplierRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateSupplierRequest) GetDefaultCurrency() string {
	if x != nil {
		return x.DefaultCurrency
	}
	return ""
}

func (x *CreateSupplierRequest) GetCountry() string {
	if x != nil {
		return x.Country
	}
	return ""
}

type CreateSupplierResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Supplier      *Supplier              `protobuf:"bytes,1,opt,name=supplier,proto3" json:"supplier,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSupplierResponse) Reset() {
	*x = CreateSupplierResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSupplierResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSupplierResponse) ProtoMessage() {}

func (x *CreateSupplierResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSupplierResponse.ProtoReflect.Descriptor instead.
func (*CreateSupplierResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{5}
}

func (x *CreateSupplierResponse) GetSupplier() *Supplier {
	if x != nil {
		return x.Supplier
	}
	return nil
}

type ListSuppliersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSuppliersRequest) Reset() {
	*x = ListSuppliersRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSuppliersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSuppliersRequest) ProtoMessage() {}

func (x *ListSuppliersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSuppliersRequest.ProtoReflect.Descriptor instead.
func (*ListSuppliersRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{6}
}

type ListSuppliersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Suppliers     []*Supplier            `protobuf:"bytes,1,rep,name=suppliers,proto3" json:"suppliers,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSuppliersResponse) Reset() {
	*x = ListSuppliersResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSuppliersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSuppliersResponse) ProtoMessage() {}

func (x *ListSuppliersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSuppliersResponse.ProtoReflect.Descriptor instead.
func (*ListSuppliersResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{7}
}

func (x *ListSuppliersResponse) GetSuppliers() []*Supplier {
	if x != nil {
		return x.Suppliers
	}
	return nil
}

type ListListingsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SupplierId    string                 `protobuf:"bytes,1,opt,name=supplier_id,json=supplierId,proto3" json:"supplier_id,omitempty"`
	OnlyAvailable bool                   `protobuf:"varint,2,opt,name=only_available,json=onlyAvailable,proto3" json:"only_available,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListListingsRequest) Reset() {
	*x = ListListingsRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListListingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListListingsRequest) ProtoMessage() {}

func (x *ListListingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListListingsRequest.ProtoReflect.Descriptor instead.
func (*ListListingsRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{8}
}

func (x *ListListingsRequest) GetSupplierId() string {
	if x != nil {
		return x.SupplierId
	}
	return ""
}

func (x *ListListingsRequest) GetOnlyAvailable() bool {
	if x != nil {
		return x.OnlyAvailable
	}
	return false
}

type ListListingsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Listings      []*Listing             `protobuf:"bytes,1,rep,name=listings,proto3" json:"listings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListListingsResponse) Reset() {
	*x = ListListingsResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListListingsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListListingsResponse) ProtoMessage() {}

func (x *ListListingsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListListingsResponse.ProtoReflect.Descriptor instead.
func (*ListListingsResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{9}
}

func (x *ListListingsResponse) GetListings() []*Listing {
	if x != nil {
		return x.Listings
	}
	return nil
}

type ExportListingsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SupplierId    string                 `protobuf:"bytes,1,opt,name=supplier_id,json=supplierId,proto3" json:"supplier_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportListingsRequest) Reset() {
	*x = ExportListingsRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportListingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportListingsRequest) ProtoMessage() {}

func (x *ExportListingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportListingsRequest.ProtoReflect.Descriptor instead.
func (*ExportListingsRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{10}
}

func (x *ExportListingsRequest) GetSupplierId() string {
	if x != nil {
		return x.SupplierId
	}
	return ""
}

type ExportListingsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportListingsResponse) Reset() {
	*x = ExportListingsResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportListingsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportListingsResponse) ProtoMessage() {}

func (x *ExportListingsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportListingsResponse.ProtoReflect.Descriptor instead.
func (*ExportListingsResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{11}
}

func (x *ExportListingsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportListingsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_catalog_v1_catalog_proto protoreflect.FileDescriptor

const file_catalog_v1_catalog_proto_rawDesc = "" +
	"\n" +
	"\x18catalog/v1/catalog.proto\x12\n" +
	"catalog.v1\"\xc8\x01\n" +
	"\x15ExtractCatalogRequest\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12\x1f\n" +
	"\vsupplier_id\x18\x02 \x01(\tR\n" +
	"supplierId\x12\x16\n" +
	"\x06locale\x18\x03 \x01(\tR\x06locale\x12\x1a\n" +
	"\btruncate\x18\x04 \x01(\bR\btruncate\x12\x1b\n" +
	"\tmax_pages\x18\x05 \x01(\x05R\bmaxPages\x12)\n" +
	"\x10check_duplicates\x18\x06 \x01(\bR\x0fcheckDuplicates\"\x97\x02\n" +
	"\x16ExtractCatalogResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12/\n" +
	"\blistings\x18\x02 \x03(\v2\x13.catalog.v1.ListingR\blistings\x12\x14\n" +
	"\x05count\x18\x03 \x01(\x05R\x05count\x12)\n" +
	"\x10chunks_processed\x18\x04 \x01(\x05R\x0fchunksProcessed\x12#\n" +
	"\rchunks_failed\x18\x05 \x01(\x05R\fchunksFailed\x12-\n" +
	"\x12duplicates_skipped\x18\x06 \x01(\x05R\x11duplicatesSkipped\x12\x1d\n" +
	"\n" +
	"error_code\x18\a \x01(\tR\terrorCode\"\xb1\x01\n" +
	"\bSupplier\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\acountry\x18\x03 \x01(\tR\acountry\x12)\n" +
	"\x10default_currency\x18\x04 \x01(\tR\x0fdefaultCurrency\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"\xa0\x03\n" +
	"\aListing\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vsupplier_id\x18\x02 \x01(\tR\n" +
	"supplierId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x16\n" +
	"\x06origin\x18\x04 \x01(\tR\x06origin\x12\x16\n" +
	"\x06region\x18\x05 \x01(\tR\x06region\x12\x18\n" +
	"\aprocess\x18\x06 \x01(\tR\aprocess\x12\x14\n" +
	"\x05price\x18\a \x01(\tR\x05price\x12#\n" +
	"\rcurrency_code\x18\b \x01(\tR\fcurrencyCode\x12\x14\n" +
	"\x05score\x18\t \x01(\x01R\x05score\x12\x1a\n" +
	"\baltitude\x18\n" +
	" \x01(\tR\baltitude\x12\x18\n" +
	"\avariety\x18\v \x01(\tR\avariety\x12#\n" +
	"\rtasting_notes\x18\f \x01(\tR\ftastingNotes\x12\x1c\n" +
	"\tavailable\x18\r \x01(\bR\tavailable\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0e \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0f \x01(\tR\tupdatedAt\"p\n" +
	"\x15CreateSupplierRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12)\n" +
	"\x10default_currency\x18\x02 \x01(\tR\x0fdefaultCurrency\x12\x18\n" +
	"\acountry\x18\x03 \x01(\tR\acountry\"J\n" +
	"\x16CreateSupplierResponse\x120\n" +
	"\bsupplier\x18\x01 \x01(\v2\x14.catalog.v1.SupplierR\bsupplier\"\x16\n" +
	"\x14ListSuppliersRequest\"K\n" +
	"\x15ListSuppliersResponse\x122\n" +
	"\tsuppliers\x18\x01 \x03(\v2\x14.catalog.v1.SupplierR\tsuppliers\"]\n" +
	"\x13ListListingsRequest\x12\x1f\n" +
	"\vsupplier_id\x18\x01 \x01(\tR\n" +
	"supplierId\x12%\n" +
	"\x0eonly_available\x18\x02 \x01(\bR\ronlyAvailable\"G\n" +
	"\x14ListListingsResponse\x12/\n" +
	"\blistings\x18\x01 \x03(\v2\x13.catalog.v1.ListingR\blistings\"8\n" +
	"\x15ExportListingsRequest\x12\x1f\n" +
	"\vsupplier_id\x18\x01 \x01(\tR\n" +
	"supplierId\"H\n" +
	"\x16ExportListingsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2l\n" +
	"\x11ExtractionService\x12W\n" +
	"\x0eExtractCatalog\x12!.catalog.v1.ExtractCatalogRequest\x1a\".catalog.v1.ExtractCatalogResponse2\xeb\x02\n" +
	"\x0eCatalogService\x12W\n" +
	"\x0eCreateSupplier\x12!.catalog.v1.CreateSupplierRequest\x1a\".catalog.v1.CreateSupplierResponse\x12T\n" +
	"\rListSuppliers\x12 .catalog.v1.ListSuppliersRequest\x1a!.catalog.v1.ListSuppliersResponse\x12Q\n" +
	"\fListListings\x12\x1f.catalog.v1.ListListingsRequest\x1a .catalog.v1.ListListingsResponse\x12W\n" +
	"\x0eExportListings\x12!.catalog.v1.ExportListingsRequest\x1a\".catalog.v1.ExportListingsResponseBBZ@github.com/kahawa-labs/beanmarket/gen/proto/catalog/v1;catalogv1b\x06proto3"

var (
	file_catalog_v1_catalog_proto_rawDescOnce sync.Once
	file_catalog_v1_catalog_proto_rawDescData []byte
)

func file_catalog_v1_catalog_proto_rawDescGZIP() []byte {
	file_catalog_v1_catalog_proto_rawDescOnce.Do(func() {
		file_catalog_v1_catalog_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_catalog_v1_catalog_proto_rawDesc), len(file_catalog_v1_catalog_proto_rawDesc)))
	})
	return file_catalog_v1_catalog_proto_rawDescData
}

var file_catalog_v1_catalog_proto_msgTypes = make([]protoimpl.MessageInfo, 12)
var file_catalog_v1_catalog_proto_goTypes = []any{
	(*ExtractCatalogRequest)(nil),  // 0: catalog.v1.ExtractCatalogRequest
	(*ExtractCatalogResponse)(nil), // 1: catalog.v1.ExtractCatalogResponse
	(*Supplier)(nil),               // 2: catalog.v1.Supplier
	(*Listing)(nil),                // 3: catalog.v1.Listing
	(*CreateSupplierRequest)(nil),  // 4: catalog.v1.CreateSupplierRequest
	(*CreateSupplierResponse)(nil), // 5: catalog.v1.CreateSupplierResponse
	(*ListSuppliersRequest)(nil),   // 6: catalog.v1.ListSuppliersRequest
	(*ListSuppliersResponse)(nil),  // 7: catalog.v1.ListSuppliersResponse
	(*ListListingsRequest)(nil),    // 8: catalog.v1.ListListingsRequest
	(*ListListingsResponse)(nil),   // 9: catalog.v1.ListListingsResponse
	(*ExportListingsRequest)(nil),  // 10: catalog.v1.ExportListingsRequest
	(*ExportListingsResponse)(nil), // 11: catalog.v1.ExportListingsResponse
}
var file_catalog_v1_catalog_proto_depIdxs = []int32{
	3,  // 0: catalog.v1.ExtractCatalogResponse.listings:type_name -> catalog.v1.Listing
	2,  // 1: catalog.v1.CreateSupplierResponse.supplier:type_name -> catalog.v1.Supplier
	2,  // 2: catalog.v1.ListSuppliersResponse.suppliers:type_name -> catalog.v1.Supplier
	3,  // 3: catalog.v1.ListListingsResponse.listings:type_name -> catalog.v1.Listing
	0,  // 4: catalog.v1.ExtractionService.ExtractCatalog:input_type -> catalog.v1.ExtractCatalogRequest
	4,  // 5: catalog.v1.CatalogService.CreateSupplier:input_type -> catalog.v1.CreateSupplierRequest
	6,  // 6: catalog.v1.CatalogService.ListSuppliers:input_type -> catalog.v1.ListSuppliersRequest
	8,  // 7: catalog.v1.CatalogService.ListListings:input_type -> catalog.v1.ListListingsRequest
	10, // 8: catalog.v1.CatalogService.ExportListings:input_type -> catalog.v1.ExportListingsRequest
	1,  // 9: catalog.v1.ExtractionService.ExtractCatalog:output_type -> catalog.v1.ExtractCatalogResponse
	5,  // 10: catalog.v1.CatalogService.CreateSupplier:output_type -> catalog.v1.CreateSupplierResponse
	7,  // 11: catalog.v1.CatalogService.ListSuppliers:output_type -> catalog.v1.ListSuppliersResponse
	9,  // 12: catalog.v1.CatalogService.ListListings:output_type -> catalog.v1.ListListingsResponse
	11, // 13: catalog.v1.CatalogService.ExportListings:output_type -> catalog.v1.ExportListingsResponse
	9,  // [9:14] is the sub-list for method output_type
	4,  // [4:9] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_catalog_v1_catalog_proto_init() }
func file_catalog_v1_catalog_proto_init() {
	if File_catalog_v1_catalog_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_catalog_v1_catalog_proto_rawDesc), len(file_catalog_v1_catalog_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   12,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_catalog_v1_catalog_proto_goTypes,
		DependencyIndexes: file_catalog_v1_catalog_proto_depIdxs,
		MessageInfos:      file_catalog_v1_catalog_proto_msgTypes,
	}.Build()
	File_catalog_v1_catalog_proto = out.File
	file_catalog_v1_catalog_proto_goTypes = nil
	file_catalog_v1_catalog_proto_depIdxs = nil
}
