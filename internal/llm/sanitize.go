package llm

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kahawa-labs/beanmarket/constants"
)

var reNonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// SanitizeItem coerces one raw extracted object field-by-field into the
// shape the listing schema expects. Unknown keys are dropped, numerics are
// parsed leniently and clamped, strings are trimmed and truncated. We never
// fail here; a hopeless item simply ends up without a name and is dropped
// by schema validation.
func SanitizeItem(raw map[string]any) map[string]any {
	clean := make(map[string]any, len(raw))

	if s := cleanString(raw["name"], constants.MaxFieldLen); s != "" {
		clean["name"] = s
	}
	for _, k := range []string{"origin", "region", "process", "altitude", "variety"} {
		if s := cleanString(raw[k], constants.MaxFieldLen); s != "" {
			clean[k] = s
		}
	}
	if s := cleanString(raw["tasting_notes"], constants.MaxTastingNotesLen); s != "" {
		clean["tasting_notes"] = s
	}

	if f, ok := lenientNumber(raw["price"]); ok {
		if f < 0 {
			f = 0
		}
		clean["price"] = f
	}
	if f, ok := lenientNumber(raw["score"]); ok {
		clean["score"] = clamp(f, constants.MinCuppingScore, constants.MaxCuppingScore)
	}

	if s := cleanString(raw["currency_code"], 3); len(s) == 3 {
		clean["currency_code"] = strings.ToUpper(s)
	}
	if b, ok := lenientBool(raw["available"]); ok {
		clean["available"] = b
	}

	return clean
}

// ToCandidate converts a sanitized item into a CandidateListing.
func ToCandidate(clean map[string]any) CandidateListing {
	c := CandidateListing{
		Name:         str(clean["name"]),
		Origin:       str(clean["origin"]),
		Region:       str(clean["region"]),
		Process:      str(clean["process"]),
		CurrencyCode: str(clean["currency_code"]),
		Altitude:     str(clean["altitude"]),
		Variety:      str(clean["variety"]),
		TastingNotes: str(clean["tasting_notes"]),
	}
	if f, ok := clean["price"].(float64); ok {
		c.Price = &f
	}
	if f, ok := clean["score"].(float64); ok {
		c.Score = &f
	}
	if b, ok := clean["available"].(bool); ok {
		c.Available = &b
	}
	return c
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func cleanString(v any, max int) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	s = strings.TrimSpace(s)
	if len(s) > max {
		s = s[:max]
	}
	return s
}

// lenientNumber accepts JSON numbers directly and strips currency symbols,
// spaces and thousands separators from strings before parsing.
func lenientNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		s := reNonNumeric.ReplaceAllString(t, "")
		if s == "" || s == "-" || s == "." {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func lenientBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "y", "available", "in stock":
			return true, true
		case "false", "no", "n", "sold out", "unavailable":
			return false, true
		}
	}
	return false, false
}

func clamp(f, min, max float64) float64 {
	if f < min {
		return min
	}
	if f > max {
		return max
	}
	return f
}
