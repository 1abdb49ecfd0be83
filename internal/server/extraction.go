package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/kahawa-labs/beanmarket/constants"
	"github.com/kahawa-labs/beanmarket/gen/ent"
	catalogpb "github.com/kahawa-labs/beanmarket/gen/proto/catalog/v1"
	"github.com/kahawa-labs/beanmarket/internal/common"
	"github.com/kahawa-labs/beanmarket/internal/pipeline"
	"github.com/kahawa-labs/beanmarket/internal/repository"
	"github.com/kahawa-labs/beanmarket/internal/utils"
)

// ExtractionService exposes the catalogue extraction pipeline over gRPC.
// The orchestrator produces candidates; persistence and run bookkeeping
// happen here, so a request without a supplier stays read-only.
type ExtractionService struct {
	catalogpb.UnimplementedExtractionServiceServer
	orch         *pipeline.Orchestrator
	supplierRepo repository.SupplierRepository
	listingRepo  repository.ListingRepository
	runRepo      repository.ExtractionRunRepository
	modelName    string
	logger       *slog.Logger
}

func NewExtractionService(
	orch *pipeline.Orchestrator,
	supplierRepo repository.SupplierRepository,
	listingRepo repository.ListingRepository,
	runRepo repository.ExtractionRunRepository,
	modelName string,
	logger *slog.Logger,
) *ExtractionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractionService{
		orch:         orch,
		supplierRepo: supplierRepo,
		listingRepo:  listingRepo,
		runRepo:      runRepo,
		modelName:    modelName,
		logger:       logger,
	}
}

func (s *ExtractionService) ExtractCatalog(ctx context.Context, req *catalogpb.ExtractCatalogRequest) (*catalogpb.ExtractCatalogResponse, error) {
	ctx = common.WithRequestID(ctx, uuid.New().String())

	if strings.TrimSpace(req.GetText()) == "" {
		return nil, common.InvalidArgumentError("text is required")
	}

	var supplierID uuid.UUID
	var supplierName string
	if sid := strings.TrimSpace(req.GetSupplierId()); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			s.logger.Error("invalid supplier_id format", "supplier_id", sid, "error", err)
			return nil, common.InvalidArgumentError("supplier_id must be a UUID")
		}
		ctx = common.WithSupplierID(ctx, sid)
		sup, err := s.supplierRepo.GetByID(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, common.NotFoundError("supplier not found")
			}
			return nil, common.InternalErrorf("look up supplier: %v", err)
		}
		supplierID = id
		supplierName = sup.Name
	}

	locale := constants.NormalizeLocale(req.GetLocale())

	var runSupplier *uuid.UUID
	if supplierID != uuid.Nil {
		runSupplier = &supplierID
	}
	run, err := s.runRepo.Start(ctx, runSupplier, locale, len(req.GetText()))
	if err != nil {
		return nil, common.InternalErrorf("start extraction run: %v", err)
	}

	sum, err := s.orch.Run(ctx, pipeline.Request{
		Text:            req.GetText(),
		SupplierID:      supplierID,
		SupplierName:    supplierName,
		Locale:          locale,
		Truncate:        req.GetTruncate(),
		MaxPages:        int(req.GetMaxPages()),
		CheckDuplicates: req.GetCheckDuplicates(),
	})
	if err != nil {
		var appErr *common.AppError
		switch {
		case errors.As(err, &appErr) && errors.Is(err, common.ErrValidation):
			_ = s.runRepo.FinishFailure(ctx, run.ID, appErr.Code, appErr.Message)
			return nil, common.InvalidArgumentError(appErr.Message)
		case errors.Is(err, common.ErrQuota):
			_ = s.runRepo.FinishFailure(ctx, run.ID, "QUOTA_EXHAUSTED", err.Error())
			return nil, common.ResourceExhaustedError("extraction quota exhausted")
		default:
			_ = s.runRepo.FinishFailure(ctx, run.ID, "INTERNAL", err.Error())
			return nil, common.InternalErrorf("extraction failed: %v", err)
		}
	}

	inserted := 0
	if supplierID != uuid.Nil && len(sum.Listings) > 0 {
		inserted, err = s.listingRepo.BulkInsert(ctx, supplierID, sum.Listings)
		if err != nil {
			_ = s.runRepo.FinishFailure(ctx, run.ID, "DB_ERROR", err.Error())
			return nil, common.InternalErrorf("persist listings: %v", err)
		}
	}

	st := constants.RunStatusSucceeded
	if sum.ErrorCode != "" || sum.ChunksFailed > 0 {
		st = constants.RunStatusPartial
	}
	_ = s.runRepo.Finish(ctx, run.ID, repository.RunOutcome{
		Summary:          sum,
		Status:           st,
		ListingsInserted: inserted,
		ModelName:        s.modelName,
	})

	out := make([]*catalogpb.Listing, 0, len(sum.Listings))
	for _, c := range sum.Listings {
		pb := utils.CandidateToPB(c)
		if supplierID != uuid.Nil {
			pb.SupplierId = supplierID.String()
		}
		out = append(out, pb)
	}

	s.logger.Info("extract.catalog.done",
		"request_id", common.RequestIDFromContext(ctx),
		"supplier_id", req.GetSupplierId(),
		"run_id", run.ID,
		"listings", len(out),
		"inserted", inserted,
		"status", string(st),
	)
	return &catalogpb.ExtractCatalogResponse{
		Success:           true,
		Listings:          out,
		Count:             int32(len(out)),
		ChunksProcessed:   int32(sum.ChunksProcessed),
		ChunksFailed:      int32(sum.ChunksFailed),
		DuplicatesSkipped: int32(sum.DuplicatesSkipped),
		ErrorCode:         sum.ErrorCode,
	}, nil
}
