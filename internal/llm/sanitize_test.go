package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kahawa-labs/beanmarket/constants"
)

func TestSanitizeItem_LenientPrice(t *testing.T) {
	cases := []struct {
		raw  any
		want float64
	}{
		{"$ 7.50", 7.5},
		{"USD 1,250.00", 1250},
		{"9.25/lb", 9.25},
		{12.0, 12.0},
		{"-3", 0}, // negative prices clamp to zero
	}
	for _, tc := range cases {
		clean := SanitizeItem(map[string]any{"name": "x", "price": tc.raw})
		require.Contains(t, clean, "price", "raw %v", tc.raw)
		assert.Equal(t, tc.want, clean["price"], "raw %v", tc.raw)
	}
}

func TestSanitizeItem_UnparseablePriceOmitted(t *testing.T) {
	for _, raw := range []any{"call for pricing", "", nil, true, "-"} {
		clean := SanitizeItem(map[string]any{"name": "x", "price": raw})
		assert.NotContains(t, clean, "price", "raw %v", raw)
	}
}

func TestSanitizeItem_ScoreClamped(t *testing.T) {
	clean := SanitizeItem(map[string]any{"name": "x", "score": 104.0})
	assert.Equal(t, 100.0, clean["score"])

	clean = SanitizeItem(map[string]any{"name": "x", "score": "-5"})
	assert.Equal(t, 0.0, clean["score"])

	clean = SanitizeItem(map[string]any{"name": "x", "score": "86.5 pts"})
	assert.Equal(t, 86.5, clean["score"])
}

func TestSanitizeItem_StringTruncation(t *testing.T) {
	long := strings.Repeat("a", constants.MaxFieldLen+50)
	clean := SanitizeItem(map[string]any{"name": long})
	assert.Len(t, clean["name"], constants.MaxFieldLen)

	notes := strings.Repeat("b", constants.MaxTastingNotesLen+1)
	clean = SanitizeItem(map[string]any{"name": "x", "tasting_notes": notes})
	assert.Len(t, clean["tasting_notes"], constants.MaxTastingNotesLen)
}

func TestSanitizeItem_UnknownKeysDropped(t *testing.T) {
	clean := SanitizeItem(map[string]any{
		"name":       "Gesha Village",
		"sku":        "GV-001",
		"__internal": true,
	})
	assert.Contains(t, clean, "name")
	assert.NotContains(t, clean, "sku")
	assert.NotContains(t, clean, "__internal")
}

func TestSanitizeItem_CurrencyNormalized(t *testing.T) {
	clean := SanitizeItem(map[string]any{"name": "x", "currency_code": " usd "})
	assert.Equal(t, "USD", clean["currency_code"])

	// anything that is not exactly 3 letters after trimming is dropped
	clean = SanitizeItem(map[string]any{"name": "x", "currency_code": "us"})
	assert.NotContains(t, clean, "currency_code")
}

func TestSanitizeItem_LenientAvailability(t *testing.T) {
	for raw, want := range map[string]bool{
		"yes": true, "In Stock": true, "sold out": false, "No": false,
	} {
		clean := SanitizeItem(map[string]any{"name": "x", "available": raw})
		assert.Equal(t, want, clean["available"], "raw %q", raw)
	}

	clean := SanitizeItem(map[string]any{"name": "x", "available": "maybe"})
	assert.NotContains(t, clean, "available")
}

func TestValidateListingItem_RequiresName(t *testing.T) {
	err := ValidateListingItem(map[string]any{"origin": "Ethiopia"})
	assert.Error(t, err)

	err = ValidateListingItem(map[string]any{"name": "Guji Natural"})
	assert.NoError(t, err)
}

func TestToCandidate_RoundTrip(t *testing.T) {
	clean := SanitizeItem(map[string]any{
		"name":          "  Yirgacheffe Grade 1 ",
		"origin":        "Ethiopia",
		"price":         "$9.50",
		"currency_code": "usd",
		"score":         87.0,
		"available":     "yes",
	})
	c := ToCandidate(clean)
	assert.Equal(t, "Yirgacheffe Grade 1", c.Name)
	assert.Equal(t, "Ethiopia", c.Origin)
	require.NotNil(t, c.Price)
	assert.Equal(t, 9.5, *c.Price)
	assert.Equal(t, "USD", c.CurrencyCode)
	require.NotNil(t, c.Score)
	assert.Equal(t, 87.0, *c.Score)
	require.NotNil(t, c.Available)
	assert.True(t, *c.Available)
	assert.Equal(t, "yirgacheffe grade 1", c.NormalizedKey())
}
