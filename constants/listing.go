package constants

// Field bounds applied when coercing extraction output before storage.
const (
	MaxFieldLen        = 500
	MaxTastingNotesLen = 2000

	MinCuppingScore = 0
	MaxCuppingScore = 100
)

// ProcessMethods holds the processing methods we recognise; anything else is
// stored verbatim (the extraction service is best-effort).
var ProcessMethods = []string{"Washed", "Natural", "Honey", "Anaerobic", "Wet-Hulled"}
