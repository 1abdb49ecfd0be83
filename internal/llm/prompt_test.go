package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSystemPrompt_LocaleSelectsTemplate(t *testing.T) {
	en := BuildSystemPrompt(ChunkContext{Locale: "en"})
	es := BuildSystemPrompt(ChunkContext{Locale: "es"})
	fallback := BuildSystemPrompt(ChunkContext{Locale: "de"})

	assert.Contains(t, en, "JSON array")
	assert.Contains(t, es, "arreglo JSON")
	// unknown locales fall back to English
	assert.Equal(t, en, fallback)

	// The output contract stays English in both templates.
	assert.Contains(t, es, "currency_code")
	assert.Contains(t, es, "tasting_notes")
}

func TestBuildSystemPrompt_IncludesSupplier(t *testing.T) {
	p := BuildSystemPrompt(ChunkContext{SupplierName: "Kahawa Imports"})
	assert.Contains(t, p, "Kahawa Imports")
}

func TestBuildUserPrompt_PartAnnotation(t *testing.T) {
	single := BuildUserPrompt("text", ChunkContext{Index: 0, Total: 1})
	assert.NotContains(t, single, "part")

	multi := BuildUserPrompt("text", ChunkContext{Index: 1, Total: 4})
	assert.Contains(t, multi, "part 2/4")
}
