package utils

import (
	"fmt"
	"time"

	"github.com/kahawa-labs/beanmarket/gen/ent"
	catalogpb "github.com/kahawa-labs/beanmarket/gen/proto/catalog/v1"
	"github.com/kahawa-labs/beanmarket/internal/entity"
	"github.com/kahawa-labs/beanmarket/internal/llm"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToSupplier(e *ent.Supplier) *entity.Supplier {
	return &entity.Supplier{
		ID:              e.ID,
		Name:            e.Name,
		Country:         e.Country,
		DefaultCurrency: e.DefaultCurrency,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToListing(e *ent.Listing) *entity.Listing {
	return &entity.Listing{
		ID:           e.ID,
		SupplierID:   e.SupplierID,
		Name:         e.Name,
		Origin:       e.Origin,
		Region:       e.Region,
		Process:      e.Process,
		Price:        e.Price,
		CurrencyCode: e.CurrencyCode,
		Score:        e.Score,
		Altitude:     e.Altitude,
		Variety:      e.Variety,
		TastingNotes: e.TastingNotes,
		Available:    e.Available,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToPBSupplier(s *ent.Supplier) *catalogpb.Supplier {
	return &catalogpb.Supplier{
		Id:              s.ID.String(),
		Name:            s.Name,
		Country:         strOrEmpty(s.Country),
		DefaultCurrency: s.DefaultCurrency,
		CreatedAt:       s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBListing(l *entity.Listing) *catalogpb.Listing {
	pb := &catalogpb.Listing{
		Id:           l.ID.String(),
		SupplierId:   l.SupplierID.String(),
		Name:         l.Name,
		Origin:       strOrEmpty(l.Origin),
		Region:       strOrEmpty(l.Region),
		Process:      strOrEmpty(l.Process),
		CurrencyCode: strOrEmpty(l.CurrencyCode),
		Altitude:     strOrEmpty(l.Altitude),
		Variety:      strOrEmpty(l.Variety),
		TastingNotes: strOrEmpty(l.TastingNotes),
		Available:    l.Available,
		CreatedAt:    l.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    l.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if l.Price != nil {
		pb.Price = fmt.Sprintf("%.2f", *l.Price)
	}
	if l.Score != nil {
		pb.Score = *l.Score
	}
	return pb
}

// CandidateToPB maps a not-yet-persisted candidate onto the wire Listing
// shape (no id or timestamps).
func CandidateToPB(c llm.CandidateListing) *catalogpb.Listing {
	pb := &catalogpb.Listing{
		Name:         c.Name,
		Origin:       c.Origin,
		Region:       c.Region,
		Process:      c.Process,
		CurrencyCode: c.CurrencyCode,
		Altitude:     c.Altitude,
		Variety:      c.Variety,
		TastingNotes: c.TastingNotes,
		Available:    c.Available == nil || *c.Available,
	}
	if c.Price != nil {
		pb.Price = fmt.Sprintf("%.2f", *c.Price)
	}
	if c.Score != nil {
		pb.Score = *c.Score
	}
	return pb
}
