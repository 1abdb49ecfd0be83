package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kahawa-labs/beanmarket/internal/llm"
)

func TestMergeCandidates_FirstSeenWins(t *testing.T) {
	price1 := 9.50
	price2 := 11.00
	chunks := [][]llm.CandidateListing{
		{
			{Name: "Yirgacheffe Grade 1", Price: &price1},
			{Name: "Sidamo Natural"},
		},
		{
			{Name: "  yirgacheffe grade 1  ", Price: &price2},
		},
	}

	merged := MergeCandidates(chunks)
	require.Len(t, merged, 2)
	assert.Equal(t, "Yirgacheffe Grade 1", merged[0].Name)
	assert.Equal(t, "Sidamo Natural", merged[1].Name)
	// The duplicate from the later chunk must not replace the original.
	require.NotNil(t, merged[0].Price)
	assert.Equal(t, price1, *merged[0].Price)
}

func TestMergeCandidates_PreservesChunkOrder(t *testing.T) {
	chunks := [][]llm.CandidateListing{
		{{Name: "C"}, {Name: "A"}},
		{{Name: "B"}},
	}

	merged := MergeCandidates(chunks)
	require.Len(t, merged, 3)
	assert.Equal(t, []string{"C", "A", "B"}, []string{merged[0].Name, merged[1].Name, merged[2].Name})
}

func TestMergeCandidates_DropsNameless(t *testing.T) {
	chunks := [][]llm.CandidateListing{
		{{Name: "   "}, {Name: "Huila Supremo"}, {Name: ""}},
	}

	merged := MergeCandidates(chunks)
	require.Len(t, merged, 1)
	assert.Equal(t, "Huila Supremo", merged[0].Name)
}

func TestMergeCandidates_Empty(t *testing.T) {
	assert.Empty(t, MergeCandidates(nil))
	assert.Empty(t, MergeCandidates([][]llm.CandidateListing{{}, {}}))
}
