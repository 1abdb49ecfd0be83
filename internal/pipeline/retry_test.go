package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kahawa-labs/beanmarket/internal/llm"
)

// scriptedExtractor returns one scripted outcome per attempt, in order. The
// last entry repeats once the script runs out.
type scriptedExtractor struct {
	script   []scriptStep
	attempts int
}

type scriptStep struct {
	listings []llm.CandidateListing
	err      error
}

func (s *scriptedExtractor) ExtractListings(_ context.Context, _ string, _ llm.ChunkContext) ([]llm.CandidateListing, error) {
	i := s.attempts
	if i >= len(s.script) {
		i = len(s.script) - 1
	}
	s.attempts++
	step := s.script[i]
	return step.listings, step.err
}

func fastRetry(maxRetries int) RetryConfig {
	return RetryConfig{MaxRetries: maxRetries, Backoff: time.Millisecond}
}

func TestExtractWithRetry_SuccessFirstTry(t *testing.T) {
	ext := &scriptedExtractor{script: []scriptStep{
		{listings: []llm.CandidateListing{{Name: "Yirgacheffe"}}},
	}}
	rc := NewRetryCoordinator(ext, fastRetry(2), nil)

	res := rc.ExtractWithRetry(context.Background(), Chunk{Text: "x", Total: 1}, llm.ChunkContext{Total: 1})
	require.Empty(t, res.ErrorCode)
	assert.False(t, res.Terminal)
	require.Len(t, res.Listings, 1)
	assert.Equal(t, 1, ext.attempts)
}

func TestExtractWithRetry_EmptySuccessIsNotRetried(t *testing.T) {
	ext := &scriptedExtractor{script: []scriptStep{
		{listings: []llm.CandidateListing{}},
	}}
	rc := NewRetryCoordinator(ext, fastRetry(2), nil)

	res := rc.ExtractWithRetry(context.Background(), Chunk{Text: "x", Total: 1}, llm.ChunkContext{Total: 1})
	assert.Empty(t, res.ErrorCode)
	assert.Empty(t, res.Listings)
	assert.Equal(t, 1, ext.attempts)
}

func TestExtractWithRetry_QuotaIsTerminalAfterOneAttempt(t *testing.T) {
	ext := &scriptedExtractor{script: []scriptStep{
		{err: &llm.ExtractionError{Kind: llm.KindQuotaExhausted, Status: 402, Cause: errors.New("payment required")}},
	}}
	rc := NewRetryCoordinator(ext, fastRetry(5), nil)

	res := rc.ExtractWithRetry(context.Background(), Chunk{Text: "x", Total: 1}, llm.ChunkContext{Total: 1})
	assert.True(t, res.Terminal)
	assert.Equal(t, "QUOTA_EXHAUSTED", res.ErrorCode)
	assert.Equal(t, 1, ext.attempts)
}

func TestExtractWithRetry_ExhaustionReportsLastKind(t *testing.T) {
	ext := &scriptedExtractor{script: []scriptStep{
		{err: &llm.ExtractionError{Kind: llm.KindTimeout, Cause: errors.New("deadline")}},
		{err: &llm.ExtractionError{Kind: llm.KindRateLimited, Status: 429, Cause: errors.New("slow down")}},
	}}
	rc := NewRetryCoordinator(ext, fastRetry(2), nil)

	res := rc.ExtractWithRetry(context.Background(), Chunk{Text: "x", Total: 1}, llm.ChunkContext{Total: 1})
	assert.False(t, res.Terminal)
	assert.Equal(t, "RATE_LIMITED", res.ErrorCode)
	assert.Empty(t, res.Listings)
	// first attempt + MaxRetries extras
	assert.Equal(t, 3, ext.attempts)
}

func TestExtractWithRetry_RecoversAfterFailure(t *testing.T) {
	ext := &scriptedExtractor{script: []scriptStep{
		{err: &llm.ExtractionError{Kind: llm.KindService, Status: 500, Cause: errors.New("boom")}},
		{listings: []llm.CandidateListing{{Name: "Sidamo"}}},
	}}
	rc := NewRetryCoordinator(ext, fastRetry(2), nil)

	res := rc.ExtractWithRetry(context.Background(), Chunk{Text: "x", Total: 1}, llm.ChunkContext{Total: 1})
	require.Empty(t, res.ErrorCode)
	require.Len(t, res.Listings, 1)
	assert.Equal(t, 2, ext.attempts)
}

func TestExtractWithRetry_UntypedErrorCountsAsTransport(t *testing.T) {
	ext := &scriptedExtractor{script: []scriptStep{
		{err: errors.New("connection reset")},
	}}
	rc := NewRetryCoordinator(ext, fastRetry(1), nil)

	res := rc.ExtractWithRetry(context.Background(), Chunk{Text: "x", Total: 1}, llm.ChunkContext{Total: 1})
	assert.Equal(t, "TRANSPORT_ERROR", res.ErrorCode)
	assert.Equal(t, 2, ext.attempts)
}

func TestExtractWithRetry_CanceledContextStopsRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ext := &scriptedExtractor{script: []scriptStep{
		{err: &llm.ExtractionError{Kind: llm.KindService, Status: 500, Cause: errors.New("boom")}},
	}}
	rc := NewRetryCoordinator(ext, RetryConfig{MaxRetries: 5, Backoff: time.Second}, nil)

	cancel()
	res := rc.ExtractWithRetry(ctx, Chunk{Text: "x", Total: 1}, llm.ChunkContext{Total: 1})
	assert.NotEmpty(t, res.ErrorCode)
	assert.Equal(t, 1, ext.attempts)
}
