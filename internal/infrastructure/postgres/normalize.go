package postgres

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var searchNormalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeForSearch produce la forma indexada de un nombre: minúsculas y sin
// tildes. Debe coincidir con la normalización que aplica la búsqueda global a
// los términos del usuario.
func normalizeForSearch(s string) string {
	folded, _, err := transform.String(searchNormalizer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
