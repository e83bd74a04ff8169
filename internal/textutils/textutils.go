// Package textutils normalizes free-text fields before they are embedded in
// a payment document. Banks reject files with characters outside the SEPA
// character set, so names and descriptions are transliterated to ASCII and
// truncated to the schema field lengths.
package textutils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes accented characters and drops the combining marks,
// so "Müller" becomes "Muller".
var asciiFold = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// replacements for characters the decomposition pass cannot fold.
var replacer = strings.NewReplacer(
	"ß", "ss",
	"Æ", "AE", "æ", "ae",
	"Ø", "O", "ø", "o",
	"Đ", "D", "đ", "d",
	"Þ", "Th", "þ", "th",
	"Œ", "OE", "œ", "oe",
	"Ł", "L", "ł", "l",
	"€", "E",
	"’", "'", "‘", "'",
	"“", "\"", "”", "\"",
	"–", "-", "—", "-",
)

// Sanitize transliterates s to ASCII and truncates it to max bytes.
func Sanitize(s string, max int) string {
	folded, _, err := transform.String(asciiFold, replacer.Replace(s))
	if err != nil {
		folded = s
	}
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return Truncate(b.String(), max)
}

// Truncate cuts s to at most max bytes without splitting a UTF-8 sequence.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8Start(s[cut]) {
		cut--
	}
	return s[:cut]
}

func utf8Start(b byte) bool {
	return b&0xC0 != 0x80
}
