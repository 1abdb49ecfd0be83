package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kahawa-labs/beanmarket/internal/llm"
)

func TestFilterExisting_SkipsKnownKeys(t *testing.T) {
	candidates := []llm.CandidateListing{
		{Name: "Yirgacheffe Grade 1"},
		{Name: "Sidamo Natural"},
		{Name: "Huila Supremo"},
	}
	existing := map[string]struct{}{
		"yirgacheffe grade 1": {},
		"huila supremo":       {},
	}

	res := FilterExisting(candidates, existing)
	require.Len(t, res.ToInsert, 1)
	assert.Equal(t, "Sidamo Natural", res.ToInsert[0].Name)
	assert.Equal(t, 2, res.DuplicatesSkipped)
}

func TestFilterExisting_Idempotent(t *testing.T) {
	candidates := []llm.CandidateListing{
		{Name: "Kiambu AA"},
		{Name: "Nyeri Peaberry"},
	}

	// First run against an empty store inserts everything.
	first := FilterExisting(candidates, map[string]struct{}{})
	require.Len(t, first.ToInsert, 2)
	assert.Zero(t, first.DuplicatesSkipped)

	// Re-running over the same document after those inserts lands must
	// insert nothing.
	store := make(map[string]struct{})
	for _, c := range first.ToInsert {
		store[c.NormalizedKey()] = struct{}{}
	}
	second := FilterExisting(candidates, store)
	assert.Empty(t, second.ToInsert)
	assert.Equal(t, 2, second.DuplicatesSkipped)
}

func TestFilterExisting_NilSetPassthrough(t *testing.T) {
	candidates := []llm.CandidateListing{{Name: "Gesha Village"}}

	res := FilterExisting(candidates, nil)
	assert.Equal(t, candidates, res.ToInsert)
	assert.Zero(t, res.DuplicatesSkipped)
}
