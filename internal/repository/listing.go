package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kahawa-labs/beanmarket/gen/ent"
	"github.com/kahawa-labs/beanmarket/gen/ent/listing"
	"github.com/kahawa-labs/beanmarket/internal/entity"
	"github.com/kahawa-labs/beanmarket/internal/llm"
	"github.com/kahawa-labs/beanmarket/internal/utils"
)

type ListingRepository interface {
	ListListings(ctx context.Context, supplierID uuid.UUID, onlyAvailable bool) ([]*entity.Listing, error)
	// ListNames is the pipeline's single store read: the set of normalized
	// listing names already held for the supplier.
	ListNames(ctx context.Context, supplierID uuid.UUID) (map[string]struct{}, error)
	// BulkInsert is the pipeline's single store write.
	BulkInsert(ctx context.Context, supplierID uuid.UUID, candidates []llm.CandidateListing) (int, error)
}

type listingRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewListingRepository(client *ent.Client, logger *slog.Logger) ListingRepository {
	return &listingRepository{
		client: client,
		logger: logger,
	}
}

func (r *listingRepository) ListListings(ctx context.Context, supplierID uuid.UUID, onlyAvailable bool) ([]*entity.Listing, error) {
	q := r.client.Listing.Query().Where(listing.SupplierID(supplierID))
	if onlyAvailable {
		q = q.Where(listing.Available(true))
	}
	rows, err := q.Order(listing.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list listings", "supplier_id", supplierID, "error", err)
		return nil, err
	}

	result := make([]*entity.Listing, len(rows))
	for i, row := range rows {
		result[i] = utils.ToListing(row)
	}
	return result, nil
}

func (r *listingRepository) ListNames(ctx context.Context, supplierID uuid.UUID) (map[string]struct{}, error) {
	names, err := r.client.Listing.Query().
		Where(listing.SupplierID(supplierID)).
		Select(listing.FieldNormalizedName).
		Strings(ctx)
	if err != nil {
		r.logger.Error("failed to list listing names", "supplier_id", supplierID, "error", err)
		return nil, err
	}

	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set, nil
}

func (r *listingRepository) BulkInsert(ctx context.Context, supplierID uuid.UUID, candidates []llm.CandidateListing) (int, error) {
	if len(candidates) == 0 {
		return 0, nil
	}

	builders := make([]*ent.ListingCreate, 0, len(candidates))
	for _, c := range candidates {
		b := r.client.Listing.Create().
			SetSupplierID(supplierID).
			SetName(c.Name).
			SetNormalizedName(c.NormalizedKey())
		if c.Origin != "" {
			b = b.SetOrigin(c.Origin)
		}
		if c.Region != "" {
			b = b.SetRegion(c.Region)
		}
		if c.Process != "" {
			b = b.SetProcess(c.Process)
		}
		if c.Price != nil {
			b = b.SetPrice(*c.Price)
		}
		if c.CurrencyCode != "" {
			b = b.SetCurrencyCode(c.CurrencyCode)
		}
		if c.Score != nil {
			b = b.SetScore(*c.Score)
		}
		if c.Altitude != "" {
			b = b.SetAltitude(c.Altitude)
		}
		if c.Variety != "" {
			b = b.SetVariety(c.Variety)
		}
		if c.TastingNotes != "" {
			b = b.SetTastingNotes(c.TastingNotes)
		}
		if c.Available != nil {
			b = b.SetAvailable(*c.Available)
		}
		builders = append(builders, b)
	}

	rows, err := r.client.Listing.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("bulk insert failed", "supplier_id", supplierID, "candidates", len(candidates), "error", err)
		return 0, err
	}
	r.logger.Info("listings inserted", "supplier_id", supplierID, "count", len(rows))
	return len(rows), nil
}
