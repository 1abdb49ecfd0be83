package pipeline

import (
	"strings"

	"github.com/kahawa-labs/beanmarket/constants"
)

// Chunk is a contiguous, read-only slice of the source document. Chunks are
// produced once, in document order, and never overlap; concatenating them
// (restoring at most one boundary character per split) reproduces the input.
type Chunk struct {
	Text  string
	Index int // zero-based
	Total int // chunk count at creation time
}

// SplitChunks splits text into size-bounded, boundary-aware chunks. Cuts
// prefer the nearest newline, then the nearest space, looking backward from
// the tentative cut point; a boundary is only accepted when it sits no
// earlier than 80% of the step size, so pathological whitespace-free text
// still produces full-size chunks instead of tiny ones.
func SplitChunks(text string, maxChunkSize int) []Chunk {
	if maxChunkSize <= 0 {
		maxChunkSize = constants.DefaultChunkSize
	}
	if len(text) <= maxChunkSize {
		return []Chunk{{Text: text, Index: 0, Total: 1}}
	}

	minCut := int(float64(maxChunkSize) * constants.BoundaryFraction)
	var parts []string
	for cursor := 0; cursor < len(text); {
		if len(text)-cursor <= maxChunkSize {
			parts = append(parts, text[cursor:])
			break
		}
		window := text[cursor : cursor+maxChunkSize]
		cut, skip := boundaryCut(window, minCut)
		parts = append(parts, window[:cut])
		cursor += cut + skip
	}

	chunks := make([]Chunk, len(parts))
	for i, p := range parts {
		chunks[i] = Chunk{Text: p, Index: i, Total: len(parts)}
	}
	return chunks
}

// boundaryCut returns the cut length within window and how many boundary
// characters to skip (1 when cutting at whitespace, 0 for a raw cut).
func boundaryCut(window string, minCut int) (cut, skip int) {
	if i := strings.LastIndexByte(window, '\n'); i >= minCut {
		return i, 1
	}
	if i := strings.LastIndexByte(window, ' '); i >= minCut {
		return i, 1
	}
	return len(window), 0
}
