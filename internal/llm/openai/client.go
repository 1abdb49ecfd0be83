package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kahawa-labs/beanmarket/internal/llm"
)

// ExtractListings implements llm.CatalogExtractor using text-only
// chat/completions against an OpenAI-compatible endpoint.
func (c *Client) ExtractListings(ctx context.Context, chunkText string, cc llm.ChunkContext) ([]llm.CandidateListing, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(chunkText),
		"chunk", cc.Index+1,
		"chunks_total", cc.Total,
		"locale", cc.Locale,
	)

	sys := llm.BuildSystemPrompt(cc)
	user := llm.BuildUserPrompt(chunkText, cc)

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"max_tokens":  c.cfg.MaxOutputTokens,
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": user},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.log.Error("llm.extract.call_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	var cc2 struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc2); err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, &llm.ExtractionError{Kind: llm.KindService, Cause: fmt.Errorf("decode completion envelope: %w", err)}
	}

	content := ""
	if len(cc2.Choices) > 0 {
		content = strings.TrimSpace(cc2.Choices[0].Message.Content)
	}

	// The call itself succeeded; whatever the content looks like, parse
	// failures degrade to zero records for this chunk.
	candidates := llm.ParseCandidates(content, c.log)

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"chunk", cc.Index+1,
		"candidates", len(candidates),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return candidates, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, &llm.ExtractionError{Kind: llm.KindService, Cause: fmt.Errorf("marshal request: %w", err)}
	}

	callCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, &llm.ExtractionError{Kind: llm.KindService, Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &llm.ExtractionError{Kind: llm.ClassifyTransport(err), Cause: err}
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.log.Warn("llm.http.response_body_close_error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &llm.ExtractionError{
			Kind:   llm.ClassifyStatus(resp.StatusCode),
			Status: resp.StatusCode,
			Cause:  fmt.Errorf("upstream status %d: %s", resp.StatusCode, truncateBody(raw)),
		}
	}
	return raw, nil
}

func truncateBody(raw []byte) string {
	const max = 300
	if len(raw) > max {
		return string(raw[:max]) + "…"
	}
	return string(raw)
}
