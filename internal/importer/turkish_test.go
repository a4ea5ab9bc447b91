package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidVKN(t *testing.T) {
	cases := []struct {
		vkn   string
		valid bool
	}{
		{"1234567890", true},
		{"1234567891", false},
		{"123", false},
		{"12345678ab", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.valid, ValidVKN(c.vkn), c.vkn)
	}
}

func TestValidTCKN(t *testing.T) {
	cases := []struct {
		tckn  string
		valid bool
	}{
		{"10000000146", true},
		{"10000000147", false},
		{"00000000146", false},
		{"1000000014", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.valid, ValidTCKN(c.tckn), c.tckn)
	}
}

func TestTurkishIBAN(t *testing.T) {
	assert.Equal(t, "TR000000000000000000000000", NormalizeIBAN("tr00 0000 0000 0000 0000 0000 00"))
	assert.True(t, ValidTurkishIBAN("TR000000000000000000000000"))
	assert.False(t, ValidTurkishIBAN("DE000000000000000000000000"))
	assert.False(t, ValidTurkishIBAN("TR0000"))
	assert.False(t, ValidTurkishIBAN("TR0000000000000000000000AB"))
}
