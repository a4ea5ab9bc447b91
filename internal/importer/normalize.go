package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a human-entered number that may use Turkish
// (1.234,56) or English (1,234.56) separators.
//
// Rules: when both separators appear, the one appearing later is the decimal
// point and the other is stripped as a thousands separator. With only
// commas, the comma is the decimal point when the final group has at most
// two digits, otherwise a thousands separator. With only dots, the dots are
// thousands separators and are stripped.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.Join(strings.Fields(raw), "")
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		groups := strings.Split(s, ",")
		if len(groups) > 1 && len(groups[len(groups)-1]) <= 2 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasDot:
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", raw)
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// ParseDate accepts an ISO date or datetime and returns the date portion.
func ParseDate(raw string) (string, error) {
	s, _, _ := strings.Cut(strings.TrimSpace(raw), "T")
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", fmt.Errorf("invalid date %q", raw)
	}
	return s, nil
}

// NormalizeEnum matches the value case-insensitively against the allowed
// set; unrecognized or empty input falls back to the default.
func NormalizeEnum(raw string, allowed []string, def string) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	for _, a := range allowed {
		if v == a {
			return a
		}
	}
	return def
}

// NormalizeLabel prepares free-text entity references and index candidates
// for lookup: trim, lowercase, collapse whitespace. Index construction and
// query-time resolution share this so they can never disagree.
func NormalizeLabel(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}
