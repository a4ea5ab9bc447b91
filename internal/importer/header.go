package importer

import "strings"

// NormalizeHeader lowercases, folds Turkish diacritics, collapses internal
// whitespace runs to a single space and trims the ends. Matching against the
// alias table is exact after this normalization; no fuzzy matching.
func NormalizeHeader(h string) string {
	folded := strings.Map(foldTurkish, h)
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

func foldTurkish(r rune) rune {
	switch r {
	case 'İ', 'I', 'ı':
		return 'i'
	case 'Ş', 'ş':
		return 's'
	case 'Ğ', 'ğ':
		return 'g'
	case 'Ü', 'ü':
		return 'u'
	case 'Ö', 'ö':
		return 'o'
	case 'Ç', 'ç':
		return 'c'
	}
	return r
}

// ResolveHeaders maps each raw header cell to its canonical field key.
// Unknown headers pass through as their normalized text with spaces replaced
// by underscores; they keep their column position but are not treated as
// known fields. When two headers resolve to the same key, the first
// occurrence's column is the one later lookups use.
func ResolveHeaders(header []string) []string {
	keys := make([]string, len(header))
	for i, raw := range header {
		n := NormalizeHeader(raw)
		if key, ok := aliasToField[n]; ok {
			keys[i] = key
		} else {
			keys[i] = strings.ReplaceAll(n, " ", "_")
		}
	}
	return keys
}
