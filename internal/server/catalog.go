package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	catalogpb "github.com/kahawa-labs/beanmarket/gen/proto/catalog/v1"
	"github.com/kahawa-labs/beanmarket/internal/common"
	"github.com/kahawa-labs/beanmarket/internal/export"
	"github.com/kahawa-labs/beanmarket/internal/repository"
	"github.com/kahawa-labs/beanmarket/internal/utils"
)

type CatalogService struct {
	catalogpb.UnimplementedCatalogServiceServer
	supplierRepo repository.SupplierRepository
	listingRepo  repository.ListingRepository
	exportSvc    *export.Service
	logger       *slog.Logger
}

func NewCatalogService(
	supplierRepo repository.SupplierRepository,
	listingRepo repository.ListingRepository,
	exportSvc *export.Service,
	logger *slog.Logger,
) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		supplierRepo: supplierRepo,
		listingRepo:  listingRepo,
		exportSvc:    exportSvc,
		logger:       logger,
	}
}

func (s *CatalogService) CreateSupplier(ctx context.Context, req *catalogpb.CreateSupplierRequest) (*catalogpb.CreateSupplierResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	currency := strings.ToUpper(strings.TrimSpace(req.GetDefaultCurrency()))
	if currency == "" {
		currency = "USD"
	}
	if len(currency) != 3 {
		return nil, common.InvalidArgumentError("default_currency must be a 3-letter code")
	}

	sup, err := s.supplierRepo.GetOrCreateByName(ctx, name, currency)
	if err != nil {
		s.logger.Error("create supplier failed", "name", name, "error", err)
		return nil, common.InternalError("create supplier failed")
	}
	return &catalogpb.CreateSupplierResponse{Supplier: utils.ToPBSupplier(sup)}, nil
}

func (s *CatalogService) ListSuppliers(ctx context.Context, _ *catalogpb.ListSuppliersRequest) (*catalogpb.ListSuppliersResponse, error) {
	sups, err := s.supplierRepo.ListSuppliers(ctx)
	if err != nil {
		s.logger.Error("list suppliers failed", "error", err)
		return nil, common.InternalError("list suppliers failed")
	}
	out := make([]*catalogpb.Supplier, 0, len(sups))
	for _, sup := range sups {
		out = append(out, utils.ToPBSupplier(sup))
	}
	return &catalogpb.ListSuppliersResponse{Suppliers: out}, nil
}

func (s *CatalogService) ListListings(ctx context.Context, req *catalogpb.ListListingsRequest) (*catalogpb.ListListingsResponse, error) {
	supplierID, err := parseSupplierID(req.GetSupplierId())
	if err != nil {
		return nil, err
	}

	recs, err := s.listingRepo.ListListings(ctx, supplierID, req.GetOnlyAvailable())
	if err != nil {
		s.logger.Error("list listings failed", "supplier_id", supplierID, "error", err)
		return nil, common.InternalError("list listings failed")
	}
	s.logger.Info("listings listed", "supplier_id", supplierID, "count", len(recs))

	out := make([]*catalogpb.Listing, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBListing(r))
	}
	return &catalogpb.ListListingsResponse{Listings: out}, nil
}

func (s *CatalogService) ExportListings(ctx context.Context, req *catalogpb.ExportListingsRequest) (*catalogpb.ExportListingsResponse, error) {
	supplierID, err := parseSupplierID(req.GetSupplierId())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.exportSvc.ExportListingsXLSX(ctx, supplierID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "supplier_id", supplierID, "error", err)
		return nil, common.InternalError("export failed")
	}

	filename := fmt.Sprintf("listings-%s-%s.xlsx",
		supplierID.String()[:8], time.Now().UTC().Format("20060102"))
	return &catalogpb.ExportListingsResponse{Xlsx: xlsx, Filename: filename}, nil
}

func parseSupplierID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentError("supplier_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("supplier_id must be a UUID")
	}
	return id, nil
}
