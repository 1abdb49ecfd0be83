package llm

import (
	"context"
	"strings"
)

// CandidateListing is the normalized shape we want from the LLM for one
// catalogue item. Only the name is required; everything else is best-effort.
type CandidateListing struct {
	Name         string   `json:"name"`
	Origin       string   `json:"origin,omitempty"`
	Region       string   `json:"region,omitempty"`
	Process      string   `json:"process,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	CurrencyCode string   `json:"currency_code,omitempty"` // ISO 4217
	Score        *float64 `json:"score,omitempty"`         // cupping score, 0..100
	Altitude     string   `json:"altitude,omitempty"`      // free text, e.g. "1800-2100 masl"
	Variety      string   `json:"variety,omitempty"`
	TastingNotes string   `json:"tasting_notes,omitempty"`
	Available    *bool    `json:"available,omitempty"`
}

// NormalizedKey is the identity used for dedup and store-membership checks:
// lower-cased, trimmed name. Two candidates with the same key are treated as
// the same real-world listing.
func (c CandidateListing) NormalizedKey() string {
	return NormalizeKey(c.Name)
}

// NormalizeKey lower-cases and trims a listing name.
func NormalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ChunkContext carries the position and labeling info for one chunk's
// extraction call. It only influences the instruction text sent upstream.
type ChunkContext struct {
	Index        int // zero-based
	Total        int
	SupplierName string
	Locale       string
}

// CatalogExtractor is the interface the pipeline depends on.
type CatalogExtractor interface {
	ExtractListings(ctx context.Context, chunkText string, cc ChunkContext) ([]CandidateListing, error)
}
