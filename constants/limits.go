package constants

import "time"

// Input bounds for the extraction endpoint.
const (
	// MaxCatalogBytes caps raw catalogue text accepted per run.
	MaxCatalogBytes = 10 << 20

	// PageChars is the character-count estimate for one catalogue page,
	// used when a run opts into page-budget truncation.
	PageChars = 3000

	DefaultMaxPages = 120
	MaxPages        = 1000
)

// Pipeline tunables. These are defaults; each is overridable via EXTRACT_* env vars.
const (
	DefaultChunkSize = 12000

	// BoundaryFraction is how far back from a tentative cut point a
	// newline/space boundary may be and still be accepted.
	BoundaryFraction = 0.8

	// DefaultMaxChunks is the hard ceiling on chunks attempted per run;
	// document tail beyond it is not processed.
	DefaultMaxChunks = 40

	DefaultMaxRetries   = 2
	DefaultRetryBackoff = 2 * time.Second
	DefaultChunkPacing  = 500 * time.Millisecond
)
