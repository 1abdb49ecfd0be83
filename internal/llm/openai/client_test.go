package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kahawa-labs/beanmarket/internal/llm"
)

func completionBody(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "gpt-4o-mini",
		Timeout: 2 * time.Second,
	}, nil)
}

func TestExtractListings_ParsesFencedContent(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(completionBody("```json\n[{\"name\": \"Yirgacheffe Grade 1\", \"price\": \"$9.50\"}]\n```")))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	out, err := c.ExtractListings(context.Background(), "catalogue text", llm.ChunkContext{Total: 1})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Yirgacheffe Grade 1", out[0].Name)
	require.NotNil(t, out[0].Price)
	assert.Equal(t, 9.5, *out[0].Price)

	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
}

func TestExtractListings_AnnotatesChunkPosition(t *testing.T) {
	var userContent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		for _, m := range req.Messages {
			if m.Role == "user" {
				userContent = m.Content
			}
		}
		_, _ = w.Write([]byte(completionBody("[]")))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.ExtractListings(context.Background(), "slice", llm.ChunkContext{Index: 2, Total: 5})
	require.NoError(t, err)
	assert.Contains(t, userContent, "part 3/5")
}

func TestExtractListings_StatusClassification(t *testing.T) {
	cases := []struct {
		status    int
		wantKind  llm.ErrorKind
		retryable bool
	}{
		{http.StatusTooManyRequests, llm.KindRateLimited, true},
		{http.StatusPaymentRequired, llm.KindQuotaExhausted, false},
		{http.StatusInternalServerError, llm.KindService, true},
		{http.StatusBadGateway, llm.KindService, true},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(`{"error": {"message": "nope"}}`))
		}))

		c := newTestClient(srv.URL)
		_, err := c.ExtractListings(context.Background(), "x", llm.ChunkContext{Total: 1})
		require.Error(t, err, "status %d", tc.status)

		ee, ok := llm.AsExtractionError(err)
		require.True(t, ok, "status %d", tc.status)
		assert.Equal(t, tc.wantKind, ee.Kind, "status %d", tc.status)
		assert.Equal(t, tc.status, ee.Status, "status %d", tc.status)
		assert.Equal(t, tc.retryable, ee.Retryable(), "status %d", tc.status)

		srv.Close()
	}
}

func TestExtractListings_TimeoutClassifiedAsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, nil)
	_, err := c.ExtractListings(context.Background(), "x", llm.ChunkContext{Total: 1})
	require.Error(t, err)

	ee, ok := llm.AsExtractionError(err)
	require.True(t, ok)
	assert.Equal(t, llm.KindTimeout, ee.Kind)
	assert.True(t, ee.Retryable())
}

func TestExtractListings_GarbageContentIsEmptyNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(completionBody("I could not find any coffees in this text.")))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	out, err := c.ExtractListings(context.Background(), "x", llm.ChunkContext{Total: 1})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExtractListings_NoChoicesIsEmptyNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	out, err := c.ExtractListings(context.Background(), "x", llm.ChunkContext{Total: 1})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExtractListings_BrokenEnvelopeIsServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices": "not an array"`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.ExtractListings(context.Background(), "x", llm.ChunkContext{Total: 1})
	require.Error(t, err)

	ee, ok := llm.AsExtractionError(err)
	require.True(t, ok)
	assert.Equal(t, llm.KindService, ee.Kind)
}
