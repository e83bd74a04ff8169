package textutils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		max      int
		expected string
	}{
		{name: "PlainASCII", in: "Miller & Son Ltd", max: 70, expected: "Miller & Son Ltd"},
		{name: "Diacritics", in: "Müller Straße", max: 70, expected: "Muller Strasse"},
		{name: "FrenchAccents", in: "Crédit Agricole", max: 70, expected: "Credit Agricole"},
		{name: "Nordic", in: "Øresund Æblegård", max: 70, expected: "Oresund AEblegard"},
		{name: "Truncated", in: strings.Repeat("a", 100), max: 70, expected: strings.Repeat("a", 70)},
		{name: "SmartQuotes", in: "O’Brien", max: 70, expected: "O'Brien"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.in, tt.max))
		})
	}
}

func TestSanitizeDropsNonASCII(t *testing.T) {
	out := Sanitize("Pay 枚ment", 140)
	for _, r := range out {
		assert.Less(t, int(r), 128)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "ab", Truncate("abcd", 2))

	// Never cut inside a multi-byte rune.
	s := "aé" // 'é' is two bytes, string is three
	assert.Equal(t, "a", Truncate(s, 2))
}
