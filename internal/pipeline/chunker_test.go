package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitChunks_SingleChunkIdentity(t *testing.T) {
	text := "Yirgacheffe Grade 1\nWashed, 2100 masl\n"

	chunks := SplitChunks(text, 1000)
	require.Len(t, chunks, 1)
	assert.Equal(t, text, chunks[0].Text)
	assert.Equal(t, 0, chunks[0].Index)
	assert.Equal(t, 1, chunks[0].Total)
}

func TestSplitChunks_Completeness(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 400; i++ {
		b.WriteString("Lot 42 Huila washed caturra 1750 masl 86.5 points\n")
	}
	text := b.String()

	chunks := SplitChunks(text, 500)
	require.Greater(t, len(chunks), 1)

	// Every chunk carries the same Total, indexes are sequential.
	for i, ch := range chunks {
		assert.Equal(t, i, ch.Index)
		assert.Equal(t, len(chunks), ch.Total)
	}

	// Reassembling with one boundary character restored per split must
	// reproduce the document (cuts here always land on a newline).
	rebuilt := chunks[0].Text
	for _, ch := range chunks[1:] {
		rebuilt += "\n" + ch.Text
	}
	assert.Equal(t, text, rebuilt)
}

func TestSplitChunks_MaxSizeBound(t *testing.T) {
	text := strings.Repeat("arabica bourbon natural anaerobic honey ", 300)

	chunks := SplitChunks(text, 256)
	require.Greater(t, len(chunks), 1)
	for _, ch := range chunks {
		assert.LessOrEqual(t, len(ch.Text), 256)
		assert.NotEmpty(t, ch.Text)
	}
}

func TestSplitChunks_PrefersNewlineOverSpace(t *testing.T) {
	// A newline inside the back 20% of the window must win over later spaces.
	line := strings.Repeat("x", 90)
	text := line + "\n" + strings.Repeat("y z ", 100)

	chunks := SplitChunks(text, 100)
	require.Greater(t, len(chunks), 1)
	assert.Equal(t, line, chunks[0].Text)
}

func TestSplitChunks_NoWhitespaceRawCut(t *testing.T) {
	text := strings.Repeat("a", 1000)

	chunks := SplitChunks(text, 100)
	require.Len(t, chunks, 10)
	for _, ch := range chunks {
		assert.Len(t, ch.Text, 100)
	}
	assert.Equal(t, text, strings.Join(collectTexts(chunks), ""))
}

func TestSplitChunks_BoundaryTooEarlyIgnored(t *testing.T) {
	// The only space sits before the 80% mark, so the cut is raw.
	text := "ab cd" + strings.Repeat("e", 200)

	chunks := SplitChunks(text, 100)
	require.Greater(t, len(chunks), 1)
	assert.Len(t, chunks[0].Text, 100)
}

func collectTexts(chunks []Chunk) []string {
	out := make([]string, len(chunks))
	for i, ch := range chunks {
		out[i] = ch.Text
	}
	return out
}
