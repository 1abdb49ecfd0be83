package pipeline

import "github.com/kahawa-labs/beanmarket/internal/llm"

// MergeCandidates folds per-chunk results, in chunk order, into a
// deduplicated list keyed by NormalizedKey. The first candidate seen for a
// key wins; later duplicates are silently dropped, so output order and
// membership are deterministic for a given input. Candidates without a name
// are excluded before keying.
func MergeCandidates(chunkResults [][]llm.CandidateListing) []llm.CandidateListing {
	seen := make(map[string]struct{})
	out := make([]llm.CandidateListing, 0)
	for _, listings := range chunkResults {
		for _, c := range listings {
			key := c.NormalizedKey()
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}
