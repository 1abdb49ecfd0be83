package pipeline

import "github.com/kahawa-labs/beanmarket/internal/llm"

// FilterResult separates candidates into the insertable set and a count of
// those skipped because the store already holds them.
type FilterResult struct {
	ToInsert          []llm.CandidateListing
	DuplicatesSkipped int
}

// FilterExisting removes candidates whose NormalizedKey is already present
// in the target store. This is what makes re-running the pipeline over an
// unchanged document idempotent: the second run inserts nothing and skips
// everything. A nil key set is a passthrough.
func FilterExisting(candidates []llm.CandidateListing, existingKeys map[string]struct{}) FilterResult {
	if existingKeys == nil {
		return FilterResult{ToInsert: candidates}
	}
	res := FilterResult{ToInsert: make([]llm.CandidateListing, 0, len(candidates))}
	for _, c := range candidates {
		if _, exists := existingKeys[c.NormalizedKey()]; exists {
			res.DuplicatesSkipped++
			continue
		}
		res.ToInsert = append(res.ToInsert, c)
	}
	return res
}
