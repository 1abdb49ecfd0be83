package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/kahawa-labs/beanmarket/constants"
	"github.com/kahawa-labs/beanmarket/internal/llm"
)

// RetryConfig bounds the retry loop around one chunk's extraction call.
type RetryConfig struct {
	MaxRetries int           // extra attempts after the first failure
	Backoff    time.Duration // linear: Backoff * attempt before each retry
}

func (c RetryConfig) withDefaults() RetryConfig {
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.Backoff <= 0 {
		c.Backoff = constants.DefaultRetryBackoff
	}
	return c
}

// ChunkResult is the resolved outcome of one chunk: either listings (possibly
// empty) on success, or the last error code after exhausted retries. Terminal
// means the run must stop attempting further chunks.
type ChunkResult struct {
	Listings  []llm.CandidateListing
	ErrorCode string
	Terminal  bool
}

// RetryCoordinator wraps an extractor with bounded retry, linear backoff and
// terminal-error classification. Chunk-level failures never propagate as
// errors past it; they resolve into an ErrorCode the orchestrator folds into
// counters.
type RetryCoordinator struct {
	extractor llm.CatalogExtractor
	cfg       RetryConfig
	log       *slog.Logger
}

func NewRetryCoordinator(extractor llm.CatalogExtractor, cfg RetryConfig, logger *slog.Logger) *RetryCoordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &RetryCoordinator{extractor: extractor, cfg: cfg.withDefaults(), log: logger}
}

// ExtractWithRetry attempts the chunk until success, terminal error, context
// cancellation, or exhausted retries.
func (r *RetryCoordinator) ExtractWithRetry(ctx context.Context, chunk Chunk, cc llm.ChunkContext) ChunkResult {
	lastKind := llm.KindService

	for attempt := 0; attempt <= r.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			if !sleepBackoff(ctx, r.cfg.Backoff*time.Duration(attempt)) {
				break
			}
			r.log.Info("pipeline.chunk.retry", "chunk", chunk.Index, "attempt", attempt, "last_error", string(lastKind))
		}

		listings, err := r.extractor.ExtractListings(ctx, chunk.Text, cc)
		if err == nil {
			// Success clears retry state, even for an empty list.
			return ChunkResult{Listings: listings}
		}

		if ee, ok := llm.AsExtractionError(err); ok {
			if !ee.Retryable() {
				r.log.Error("pipeline.chunk.terminal", "chunk", chunk.Index, "error", err)
				return ChunkResult{ErrorCode: string(llm.KindQuotaExhausted), Terminal: true}
			}
			lastKind = ee.Kind
		} else {
			lastKind = llm.KindTransport
		}
		r.log.Warn("pipeline.chunk.attempt_failed", "chunk", chunk.Index, "attempt", attempt, "error", err)

		if ctx.Err() != nil {
			break
		}
	}

	return ChunkResult{Listings: []llm.CandidateListing{}, ErrorCode: string(lastKind)}
}

// sleepBackoff waits for d or until the context is done; it reports whether
// the full delay elapsed.
func sleepBackoff(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
