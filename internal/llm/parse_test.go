package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCandidates_PlainArray(t *testing.T) {
	body := `[{"name": "Yirgacheffe Grade 1", "price": 9.5, "currency_code": "usd"}]`

	out := ParseCandidates(body, nil)
	require.Len(t, out, 1)
	assert.Equal(t, "Yirgacheffe Grade 1", out[0].Name)
	require.NotNil(t, out[0].Price)
	assert.Equal(t, 9.5, *out[0].Price)
	assert.Equal(t, "USD", out[0].CurrencyCode)
}

func TestParseCandidates_FencedArray(t *testing.T) {
	body := "```json\n[{\"name\": \"Sidamo Natural\", \"score\": 86.5}]\n```"

	out := ParseCandidates(body, nil)
	require.Len(t, out, 1)
	assert.Equal(t, "Sidamo Natural", out[0].Name)
	require.NotNil(t, out[0].Score)
	assert.Equal(t, 86.5, *out[0].Score)
}

func TestParseCandidates_ProseWrappedArray(t *testing.T) {
	body := `Here are the coffees I found:
[{"name": "Huila Supremo"}, {"name": "Nariño Excelso"}]
Let me know if you need anything else.`

	out := ParseCandidates(body, nil)
	require.Len(t, out, 2)
	assert.Equal(t, "Huila Supremo", out[0].Name)
	assert.Equal(t, "Nariño Excelso", out[1].Name)
}

func TestParseCandidates_GarbageIsEmptyNotError(t *testing.T) {
	for _, body := range []string{
		"",
		"no coffees found in this text",
		"[{broken json",
		"{\"name\": \"an object, not an array\"}",
		"```\n```",
	} {
		out := ParseCandidates(body, nil)
		assert.NotNil(t, out, "body %q", body)
		assert.Empty(t, out, "body %q", body)
	}
}

func TestParseCandidates_DropsNonObjectAndNamelessItems(t *testing.T) {
	body := `[
		"just a string",
		42,
		{"origin": "Ethiopia"},
		{"name": "Guji Natural"}
	]`

	out := ParseCandidates(body, nil)
	require.Len(t, out, 1)
	assert.Equal(t, "Guji Natural", out[0].Name)
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `[{"a":1}]`, StripCodeFences("```json\n[{\"a\":1}]\n```"))
	assert.Equal(t, `[{"a":1}]`, StripCodeFences("```\n[{\"a\":1}]\n```"))
	assert.Equal(t, `[{"a":1}]`, StripCodeFences(`[{"a":1}]`))
}
