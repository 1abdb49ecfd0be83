package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/kahawa-labs/beanmarket/constants"
	"github.com/kahawa-labs/beanmarket/internal/common"
	"github.com/kahawa-labs/beanmarket/internal/llm"
)

// Options holds the orchestrator's tunables. Zero values fall back to the
// defaults in constants.
type Options struct {
	MaxChunkSize int
	MaxChunks    int
	Pacing       time.Duration
	Retry        RetryConfig
}

func (o Options) withDefaults() Options {
	if o.MaxChunkSize <= 0 {
		o.MaxChunkSize = constants.DefaultChunkSize
	}
	if o.MaxChunks <= 0 {
		o.MaxChunks = constants.DefaultMaxChunks
	}
	if o.Pacing <= 0 {
		o.Pacing = constants.DefaultChunkPacing
	}
	o.Retry = o.Retry.withDefaults()
	return o
}

// Request is the immutable input for one extraction run.
type Request struct {
	Text            string
	SupplierID      uuid.UUID // uuid.Nil when the run has no owning supplier
	SupplierName    string
	Locale          string
	Truncate        bool
	MaxPages        int
	CheckDuplicates bool
}

// Summary is the caller-facing result of one run. It is always produced,
// even on partial failure, so an operator can see how far the run got.
type Summary struct {
	Listings          []llm.CandidateListing
	ChunksTotal       int
	ChunksProcessed   int
	ChunksFailed      int
	DuplicatesSkipped int
	ErrorCode         string // "QUOTA_EXHAUSTED" when the run was aborted
}

// NameLister is the single read the pipeline performs against the record
// store: the set of normalized listing names already held for a supplier.
type NameLister interface {
	ListNames(ctx context.Context, supplierID uuid.UUID) (map[string]struct{}, error)
}

// Orchestrator sequences chunking, per-chunk extraction with retry,
// cross-chunk aggregation and existing-record filtering. Chunks are
// processed strictly in order, one at a time: the upstream service is
// rate-limited per caller and accumulation order must be deterministic.
// The orchestrator never writes to the store; persistence is the caller's
// explicit follow-up using the Summary.
type Orchestrator struct {
	retry *RetryCoordinator
	names NameLister
	opts  Options
	log   *slog.Logger
}

func NewOrchestrator(extractor llm.CatalogExtractor, names NameLister, opts Options, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	opts = opts.withDefaults()
	return &Orchestrator{
		retry: NewRetryCoordinator(extractor, opts.Retry, logger),
		names: names,
		opts:  opts,
		log:   logger,
	}
}

// Run executes one extraction over req. The returned Summary is non-nil
// whenever processing started; the error is non-nil only for validation
// failures and for a quota-exhausted abort that produced zero records.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Summary, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	text := req.Text
	if req.Truncate {
		pages := req.MaxPages
		if pages <= 0 {
			pages = constants.DefaultMaxPages
		}
		if budget := pages * constants.PageChars; len(text) > budget {
			o.log.Info("pipeline.truncate", "text_bytes", len(text), "page_budget", budget)
			text = text[:budget]
		}
	}

	chunks := SplitChunks(text, o.opts.MaxChunkSize)
	if len(chunks) > o.opts.MaxChunks {
		o.log.Warn("pipeline.chunk_ceiling",
			"chunks", len(chunks), "ceiling", o.opts.MaxChunks)
		chunks = chunks[:o.opts.MaxChunks]
	}

	sum := &Summary{ChunksTotal: len(chunks)}
	limiter := rate.NewLimiter(rate.Every(o.opts.Pacing), 1)

	var perChunk [][]llm.CandidateListing
	aborted := false
	for _, ch := range chunks {
		// Pacing between chunks doubles as the cancellation checkpoint:
		// a run must not begin a new extraction call once canceled.
		if err := limiter.Wait(ctx); err != nil {
			o.finishPartial(sum, perChunk)
			return sum, err
		}

		res := o.retry.ExtractWithRetry(ctx, ch, llm.ChunkContext{
			Index:        ch.Index,
			Total:        ch.Total,
			SupplierName: req.SupplierName,
			Locale:       req.Locale,
		})
		if res.Terminal {
			sum.ErrorCode = res.ErrorCode
			aborted = true
			break
		}
		if res.ErrorCode != "" {
			sum.ChunksFailed++
			o.log.Warn("pipeline.chunk.failed", "chunk", ch.Index, "error_code", res.ErrorCode)
			continue
		}
		sum.ChunksProcessed++
		perChunk = append(perChunk, res.Listings)
		o.log.Info("pipeline.chunk.ok", "chunk", ch.Index, "candidates", len(res.Listings))
	}

	merged := MergeCandidates(perChunk)
	if aborted && len(merged) == 0 {
		return sum, common.NewAppError("QUOTA_EXHAUSTED",
			"extraction quota exhausted before any records were produced", common.ErrQuota)
	}

	if req.CheckDuplicates && o.names != nil && req.SupplierID != uuid.Nil {
		existing, err := o.names.ListNames(ctx, req.SupplierID)
		if err != nil {
			o.finishPartial(sum, perChunk)
			return sum, common.WrapError(err, "list existing listing names")
		}
		fr := FilterExisting(merged, existing)
		sum.Listings = fr.ToInsert
		sum.DuplicatesSkipped = fr.DuplicatesSkipped
	} else {
		sum.Listings = merged
	}

	o.log.Info("pipeline.run.done",
		"chunks_total", sum.ChunksTotal,
		"chunks_processed", sum.ChunksProcessed,
		"chunks_failed", sum.ChunksFailed,
		"duplicates_skipped", sum.DuplicatesSkipped,
		"listings", len(sum.Listings),
		"error_code", sum.ErrorCode,
	)
	return sum, nil
}

// finishPartial fills the summary's listings with whatever was accumulated
// before an early exit, so callers still see how far the run got.
func (o *Orchestrator) finishPartial(sum *Summary, perChunk [][]llm.CandidateListing) {
	sum.Listings = MergeCandidates(perChunk)
}

func validateRequest(req Request) error {
	v := common.NewValidator()
	v.Field("text", req.Text, common.Required)
	if !req.Truncate {
		v.Field("text", req.Text, common.MaxBytes(constants.MaxCatalogBytes))
	}
	v.Field("max_pages", req.MaxPages, common.IntRange(1, constants.MaxPages))
	if !constants.IsSupportedLocale(req.Locale) {
		v.Field("locale", req.Locale, common.OneOf(constants.LocaleEN, constants.LocaleES))
	}
	return v.Error()
}
