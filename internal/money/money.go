// Package money provides exact conversion between integer minor units
// (cents) and the decimal amount strings embedded in SEPA documents.
//
// Control sums are legally meaningful, so every conversion here is pure
// integer and string arithmetic. Floating point never enters the picture.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CentsToDecimal formats an amount in cents as a decimal string with a
// two-digit fraction, e.g. 5 -> "0.05", 1234 -> "12.34".
func CentsToDecimal(cents int64) string {
	if cents < 0 {
		return "-" + CentsToDecimal(-cents)
	}
	s := fmt.Sprintf("%d", cents)
	if len(s) <= 2 {
		return "0." + strings.Repeat("0", 2-len(s)) + s
	}
	return s[:len(s)-2] + "." + s[len(s)-2:]
}

// DecimalToCents parses a decimal amount string back into cents. It is the
// inverse of CentsToDecimal for any non-negative amount: the decimal point
// is dropped and the digits parsed as an integer.
func DecimalToCents(s string) (int64, error) {
	digits := strings.Replace(s, ".", "", 1)
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return 0, nil
	}
	var cents int64
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid decimal amount %q", s)
		}
		cents = cents*10 + int64(r-'0')
	}
	return cents, nil
}

// ParseReported parses an amount string from an incoming report (camt) into
// a decimal value, tolerating an empty string.
func ParseReported(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount %q: %w", s, err)
	}
	return d, nil
}
