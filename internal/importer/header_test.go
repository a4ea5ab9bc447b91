package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeaderFoldsTurkish(t *testing.T) {
	assert.Equal(t, "acilis bakiyesi", NormalizeHeader("  Açılış   Bakiyesi "))
	assert.Equal(t, "hesap adi", NormalizeHeader("HESAP ADI"))
	assert.Equal(t, "birim fiyat", NormalizeHeader("Birim Fiyat"))
	assert.Equal(t, "duzenleme tarihi", NormalizeHeader("Düzenleme Tarihi"))
}

func TestResolveHeadersBothLanguages(t *testing.T) {
	tr := ResolveHeaders([]string{"Hesap Adı", "Tip", "Açılış Bakiyesi"})
	en := ResolveHeaders([]string{"Name", "Type", "Opening Balance"})
	assert.Equal(t, []string{"name", "type", "opening_balance"}, tr)
	assert.Equal(t, tr, en)
}

func TestResolveHeadersUnknownColumn(t *testing.T) {
	keys := ResolveHeaders([]string{"Tutar", "Mystery Column"})
	assert.Equal(t, []string{"amount", "mystery_column"}, keys)
}

func TestAliasTableHasNoCrossKeyCollisions(t *testing.T) {
	seen := make(map[string]string)
	for key, aliases := range fieldAliases {
		for _, a := range aliases {
			if prev, ok := seen[a]; ok && prev != key {
				t.Fatalf("alias %q claimed by both %q and %q", a, prev, key)
			}
			seen[a] = key
		}
	}
}
