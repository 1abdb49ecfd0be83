package llm

import (
	"encoding/json"
	"log/slog"
	"strings"
)

// ParseCandidates turns the free-text body returned by the extraction
// service into candidate listings. The body may be wrapped in code fences or
// surrounded by prose; we strip known fence markers, try the first [...]
// array literal via a greedy bracket match, then fall back to parsing the
// whole cleaned body. A parse failure is NOT an error: it degrades to "no
// records found in this chunk". The surrounding system relies on partial,
// best-effort extraction, so this leniency is deliberate.
func ParseCandidates(body string, logger *slog.Logger) []CandidateListing {
	if logger == nil {
		logger = slog.Default()
	}

	cleaned := StripCodeFences(body)

	items, ok := decodeArray(locateArray(cleaned))
	if !ok {
		items, ok = decodeArray(cleaned)
	}
	if !ok {
		logger.Warn("llm.parse.unparseable_response", "bytes", len(body))
		return []CandidateListing{}
	}

	out := make([]CandidateListing, 0, len(items))
	for _, it := range items {
		raw, ok := it.(map[string]any)
		if !ok {
			continue
		}
		clean := SanitizeItem(raw)
		if err := ValidateListingItem(clean); err != nil {
			logger.Warn("llm.parse.item_dropped", "error", err)
			continue
		}
		out = append(out, ToCandidate(clean))
	}
	return out
}

// StripCodeFences removes leading/trailing markdown fence markers
// (```json ... ``` and plain ```).
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// drop the language tag on the opening fence, e.g. "json"
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		first := strings.TrimSpace(s[:i])
		if len(first) <= 10 && !strings.ContainsAny(first, "[]{}") {
			s = s[i+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// locateArray returns the first greedy [...] span, or "" when the body has
// no bracket pair.
func locateArray(s string) string {
	start := strings.IndexByte(s, '[')
	end := strings.LastIndexByte(s, ']')
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}

func decodeArray(s string) ([]any, bool) {
	if strings.TrimSpace(s) == "" {
		return nil, false
	}
	var items []any
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, false
	}
	return items, true
}
