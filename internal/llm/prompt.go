package llm

import (
	"fmt"
	"strings"

	"github.com/kahawa-labs/beanmarket/constants"
)

// BuildSystemPrompt composes the extraction instruction. The locale picks
// one of two fixed templates; it never changes the output contract (field
// names stay English so the schema matches).
func BuildSystemPrompt(cc ChunkContext) string {
	switch constants.NormalizeLocale(cc.Locale) {
	case constants.LocaleES:
		return buildSystemPromptES(cc)
	default:
		return buildSystemPromptEN(cc)
	}
}

func buildSystemPromptEN(cc ChunkContext) string {
	parts := []string{
		"You are a coffee catalogue parser. The user message contains a slice of a supplier's price list or offering sheet.",
		"Return ONLY a JSON array with one object per distinct coffee you can identify.",
		"Each object has: name (required), origin, region, process, price (number), currency_code (3-letter ISO 4217), score (cupping score 0-100), altitude, variety, tasting_notes, available (boolean).",
		"Omit any field you cannot read from the text. Never output null.",
		"Do not invent coffees; skip table headers, totals, and shipping terms.",
		"If the same coffee appears twice in the slice, output it once.",
	}
	if s := strings.TrimSpace(cc.SupplierName); s != "" {
		parts = append(parts, "Supplier: "+s+".")
	}
	return strings.Join(parts, " ")
}

func buildSystemPromptES(cc ChunkContext) string {
	parts := []string{
		"Eres un analizador de catálogos de café. El mensaje del usuario contiene un fragmento de la lista de precios u oferta de un proveedor.",
		"Devuelve SOLO un arreglo JSON con un objeto por cada café distinto que identifiques.",
		"Cada objeto tiene: name (obligatorio), origin, region, process, price (número), currency_code (código ISO 4217 de 3 letras), score (puntaje de catación 0-100), altitude, variety, tasting_notes, available (booleano).",
		"Los nombres de los campos permanecen en inglés. Omite cualquier campo que no puedas leer del texto. Nunca devuelvas null.",
		"No inventes cafés; ignora encabezados de tabla, totales y condiciones de envío.",
		"Si el mismo café aparece dos veces en el fragmento, inclúyelo una sola vez.",
	}
	if s := strings.TrimSpace(cc.SupplierName); s != "" {
		parts = append(parts, "Proveedor: "+s+".")
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt annotates the chunk with its position when the document
// was split, so the model knows it is looking at a partial list.
func BuildUserPrompt(chunkText string, cc ChunkContext) string {
	var b strings.Builder
	if cc.Total > 1 {
		b.WriteString(fmt.Sprintf("Catalogue text (part %d/%d):\n", cc.Index+1, cc.Total))
	} else {
		b.WriteString("Catalogue text:\n")
	}
	b.WriteString(chunkText)
	return b.String()
}
