package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kahawa-labs/beanmarket/internal/common"
	"github.com/kahawa-labs/beanmarket/internal/llm"
)

// chunkedExtractor resolves each chunk index to a fixed outcome and records
// which indexes were attempted.
type chunkedExtractor struct {
	byIndex  map[int]scriptStep
	attempts []int
	onCall   func(index int)
}

func (e *chunkedExtractor) ExtractListings(_ context.Context, _ string, cc llm.ChunkContext) ([]llm.CandidateListing, error) {
	e.attempts = append(e.attempts, cc.Index)
	if e.onCall != nil {
		e.onCall(cc.Index)
	}
	step, ok := e.byIndex[cc.Index]
	if !ok {
		return []llm.CandidateListing{}, nil
	}
	return step.listings, step.err
}

type fakeNameLister struct {
	names map[string]struct{}
	err   error
	calls int
}

func (f *fakeNameLister) ListNames(_ context.Context, _ uuid.UUID) (map[string]struct{}, error) {
	f.calls++
	return f.names, f.err
}

func testOptions() Options {
	return Options{
		MaxChunkSize: 100,
		MaxChunks:    40,
		Pacing:       time.Millisecond,
		Retry:        RetryConfig{MaxRetries: 0, Backoff: time.Millisecond},
	}
}

// fiveChunkText yields five chunks at MaxChunkSize 100.
func fiveChunkText() string {
	line := strings.Repeat("k", 99) + "\n"
	return strings.Repeat(line, 5)
}

func quotaErr() error {
	return &llm.ExtractionError{Kind: llm.KindQuotaExhausted, Status: 402, Cause: errors.New("payment required")}
}

func serviceErr() error {
	return &llm.ExtractionError{Kind: llm.KindService, Status: 500, Cause: errors.New("boom")}
}

func TestRun_SingleChunkHappyPath(t *testing.T) {
	ext := &chunkedExtractor{byIndex: map[int]scriptStep{
		0: {listings: []llm.CandidateListing{{Name: "Yirgacheffe"}, {Name: "Sidamo"}}},
	}}
	orch := NewOrchestrator(ext, nil, testOptions(), nil)

	sum, err := orch.Run(context.Background(), Request{Text: "short catalogue"})
	require.NoError(t, err)
	assert.Equal(t, 1, sum.ChunksTotal)
	assert.Equal(t, 1, sum.ChunksProcessed)
	assert.Zero(t, sum.ChunksFailed)
	assert.Len(t, sum.Listings, 2)
	assert.Empty(t, sum.ErrorCode)
}

func TestRun_TerminalShortCircuit(t *testing.T) {
	ext := &chunkedExtractor{byIndex: map[int]scriptStep{
		0: {listings: []llm.CandidateListing{{Name: "Yirgacheffe"}}},
		1: {err: quotaErr()},
	}}
	orch := NewOrchestrator(ext, nil, testOptions(), nil)

	sum, err := orch.Run(context.Background(), Request{Text: fiveChunkText()})
	require.NoError(t, err)
	assert.Equal(t, 5, sum.ChunksTotal)
	assert.Equal(t, 1, sum.ChunksProcessed)
	assert.Zero(t, sum.ChunksFailed)
	assert.Equal(t, "QUOTA_EXHAUSTED", sum.ErrorCode)
	assert.Len(t, sum.Listings, 1)

	// Chunks past the terminal failure are never attempted.
	assert.Equal(t, []int{0, 1}, ext.attempts)
}

func TestRun_QuotaWithZeroRecordsIsAnError(t *testing.T) {
	ext := &chunkedExtractor{byIndex: map[int]scriptStep{
		0: {err: quotaErr()},
	}}
	orch := NewOrchestrator(ext, nil, testOptions(), nil)

	sum, err := orch.Run(context.Background(), Request{Text: fiveChunkText()})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrQuota)
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "QUOTA_EXHAUSTED", appErr.Code)
	require.NotNil(t, sum)
	assert.Equal(t, "QUOTA_EXHAUSTED", sum.ErrorCode)
}

func TestRun_ChunkFailureDoesNotStopRun(t *testing.T) {
	ext := &chunkedExtractor{byIndex: map[int]scriptStep{
		0: {err: serviceErr()},
		1: {listings: []llm.CandidateListing{{Name: "Huila Supremo"}}},
	}}
	opts := testOptions()
	text := strings.Repeat("k", 99) + "\n" + strings.Repeat("m", 99) + "\n"
	orch := NewOrchestrator(ext, nil, opts, nil)

	sum, err := orch.Run(context.Background(), Request{Text: text})
	require.NoError(t, err)
	assert.Equal(t, 2, sum.ChunksTotal)
	assert.Equal(t, 1, sum.ChunksProcessed)
	assert.Equal(t, 1, sum.ChunksFailed)
	require.Len(t, sum.Listings, 1)
	assert.Equal(t, "Huila Supremo", sum.Listings[0].Name)
	assert.Empty(t, sum.ErrorCode)
}

func TestRun_ChunkCeiling(t *testing.T) {
	ext := &chunkedExtractor{byIndex: map[int]scriptStep{}}
	opts := testOptions()
	opts.MaxChunks = 2
	orch := NewOrchestrator(ext, nil, opts, nil)

	sum, err := orch.Run(context.Background(), Request{Text: fiveChunkText()})
	require.NoError(t, err)
	assert.Equal(t, 2, sum.ChunksTotal)
	assert.Equal(t, []int{0, 1}, ext.attempts)
}

func TestRun_CrossChunkDedup(t *testing.T) {
	ext := &chunkedExtractor{byIndex: map[int]scriptStep{
		0: {listings: []llm.CandidateListing{{Name: "Yirgacheffe"}, {Name: "Sidamo"}}},
		1: {listings: []llm.CandidateListing{{Name: " yirgacheffe "}, {Name: "Guji"}}},
	}}
	text := strings.Repeat("k", 99) + "\n" + strings.Repeat("m", 99) + "\n"
	orch := NewOrchestrator(ext, nil, testOptions(), nil)

	sum, err := orch.Run(context.Background(), Request{Text: text})
	require.NoError(t, err)
	require.Len(t, sum.Listings, 3)
	assert.Equal(t, "Yirgacheffe", sum.Listings[0].Name)
	assert.Equal(t, "Sidamo", sum.Listings[1].Name)
	assert.Equal(t, "Guji", sum.Listings[2].Name)
}

func TestRun_FiltersExistingListings(t *testing.T) {
	ext := &chunkedExtractor{byIndex: map[int]scriptStep{
		0: {listings: []llm.CandidateListing{{Name: "Yirgacheffe"}, {Name: "Sidamo"}}},
	}}
	names := &fakeNameLister{names: map[string]struct{}{"sidamo": {}}}
	orch := NewOrchestrator(ext, names, testOptions(), nil)

	sum, err := orch.Run(context.Background(), Request{
		Text:            "catalogue",
		SupplierID:      uuid.New(),
		CheckDuplicates: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, names.calls)
	require.Len(t, sum.Listings, 1)
	assert.Equal(t, "Yirgacheffe", sum.Listings[0].Name)
	assert.Equal(t, 1, sum.DuplicatesSkipped)
}

func TestRun_NoDuplicateCheckWithoutSupplier(t *testing.T) {
	ext := &chunkedExtractor{byIndex: map[int]scriptStep{
		0: {listings: []llm.CandidateListing{{Name: "Sidamo"}}},
	}}
	names := &fakeNameLister{names: map[string]struct{}{"sidamo": {}}}
	orch := NewOrchestrator(ext, names, testOptions(), nil)

	sum, err := orch.Run(context.Background(), Request{
		Text:            "catalogue",
		CheckDuplicates: true, // no supplier, so nothing to check against
	})
	require.NoError(t, err)
	assert.Zero(t, names.calls)
	assert.Len(t, sum.Listings, 1)
}

func TestRun_CancellationBetweenChunks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ext := &chunkedExtractor{
		byIndex: map[int]scriptStep{
			0: {listings: []llm.CandidateListing{{Name: "Yirgacheffe"}}},
		},
		onCall: func(index int) {
			if index == 0 {
				cancel()
			}
		},
	}
	orch := NewOrchestrator(ext, nil, testOptions(), nil)

	sum, err := orch.Run(ctx, Request{Text: fiveChunkText()})
	require.Error(t, err)
	require.NotNil(t, sum)
	// Work done before cancellation is still reported.
	assert.Len(t, sum.Listings, 1)
	assert.Equal(t, []int{0}, ext.attempts)
}

func TestRun_TruncateByPageBudget(t *testing.T) {
	ext := &chunkedExtractor{byIndex: map[int]scriptStep{}}
	opts := testOptions()
	opts.MaxChunkSize = 3000
	orch := NewOrchestrator(ext, nil, opts, nil)

	// 2 pages at 3000 chars/page; 10k chars of input must shrink to 6k.
	sum, err := orch.Run(context.Background(), Request{
		Text:     strings.Repeat("a", 10_000),
		Truncate: true,
		MaxPages: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, sum.ChunksTotal)
}

func TestRun_ValidationFailures(t *testing.T) {
	orch := NewOrchestrator(&chunkedExtractor{}, nil, testOptions(), nil)

	cases := []struct {
		name string
		req  Request
	}{
		{"empty text", Request{Text: ""}},
		{"bad locale", Request{Text: "x", Locale: "fr"}},
		{"max_pages out of range", Request{Text: "x", MaxPages: 100_000}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sum, err := orch.Run(context.Background(), tc.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrValidation)
			assert.Nil(t, sum)
		})
	}
}
