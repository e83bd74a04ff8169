// Package refs validates and normalizes structured payment references.
//
// Two formats are supported: the Belgian 12-digit OGM/VCS reference and the
// ISO 11649 creditor reference ("RF..."). Both carry a modulo-97 checksum.
// The cleaned, canonical form returned on success is what gets embedded in
// the document.
package refs

import (
	"fmt"
	"strings"
)

// FormatError reports a reference whose shape is wrong before any checksum
// can be computed.
type FormatError struct {
	Ref    string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid structured reference %q: %s", e.Ref, e.Reason)
}

// ChecksumError reports a well-formed reference with a failing check value.
type ChecksumError struct {
	Ref      string
	Expected int
	Got      int
}

func (e *ChecksumError) Error() string {
	if e.Expected < 0 {
		return fmt.Sprintf("structured reference %q failed checksum: check digits %02d do not verify", e.Ref, e.Got)
	}
	return fmt.Sprintf("structured reference %q failed checksum: expected %02d, got %02d",
		e.Ref, e.Expected, e.Got)
}

// ValidateOGM validates a Belgian OGM reference. Formatting characters
// ('/', '+', spaces) are stripped; the result must be exactly 12 digits.
// The last two digits are the check value: 97 - (base mod 97), with 97
// substituted when the base is a multiple of 97. Returns the cleaned
// 12-digit string.
func ValidateOGM(ref string) (string, error) {
	cleaned := strings.NewReplacer("/", "", "+", "", " ", "").Replace(ref)
	if len(cleaned) != 12 {
		return "", &FormatError{Ref: ref, Reason: fmt.Sprintf("expected 12 digits, got %d", len(cleaned))}
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "", &FormatError{Ref: ref, Reason: "contains non-digit characters"}
		}
	}

	var base int64
	for _, r := range cleaned[:10] {
		base = base*10 + int64(r-'0')
	}
	got := int(cleaned[10]-'0')*10 + int(cleaned[11]-'0')

	expected := 97 - int(base%97)
	if base%97 == 0 {
		expected = 97
	}
	if got != expected {
		return "", &ChecksumError{Ref: ref, Expected: expected, Got: got}
	}
	return cleaned, nil
}

// ValidateCreditorReference validates an ISO 11649 creditor reference.
// Spaces are stripped and the reference is upper-cased before checking.
// Validation uses the same rearrangement rule as IBAN check digits: move
// the "RFxx" prefix to the end, map A-Z to 10-35 and the resulting number
// must be congruent to 1 modulo 97. Returns the normalized reference.
func ValidateCreditorReference(ref string) (string, error) {
	cleaned := strings.ToUpper(strings.ReplaceAll(ref, " ", ""))
	if !strings.HasPrefix(cleaned, "RF") {
		return "", &FormatError{Ref: ref, Reason: "must start with RF"}
	}
	if len(cleaned) < 4 || len(cleaned) > 25 {
		return "", &FormatError{Ref: ref, Reason: fmt.Sprintf("length %d outside 4..25", len(cleaned))}
	}
	if !isDigit(cleaned[2]) || !isDigit(cleaned[3]) {
		return "", &FormatError{Ref: ref, Reason: "check digits missing after RF"}
	}
	for i := 4; i < len(cleaned); i++ {
		c := cleaned[i]
		if !isDigit(c) && (c < 'A' || c > 'Z') {
			return "", &FormatError{Ref: ref, Reason: "contains non-alphanumeric characters"}
		}
	}

	if mod97(cleaned[4:]+cleaned[:4]) != 1 {
		got := int(cleaned[2]-'0')*10 + int(cleaned[3]-'0')
		return "", &ChecksumError{Ref: ref, Expected: -1, Got: got}
	}
	return cleaned, nil
}

// mod97 computes the remainder of the digit expansion of s modulo 97,
// mapping letters A-Z to 10-35. Iterative so arbitrarily long references
// never need big-integer types.
func mod97(s string) int {
	rem := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isDigit(c) {
			rem = (rem*10 + int(c-'0')) % 97
		} else {
			v := int(c-'A') + 10
			rem = (rem*100 + v) % 97
		}
	}
	return rem
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
