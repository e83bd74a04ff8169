// Package idgen produces message and payment identifiers. The generator and
// clock are injected into the message builder so tests can pin both.
package idgen

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Clock supplies the current time. Injected so document timestamps are
// reproducible in tests.
type Clock func() time.Time

// Generator produces identifiers for the group header and payment blocks.
type Generator interface {
	// MessageID returns a fresh message identifier, at most 35 characters.
	MessageID() string
	// PaymentID returns an identifier derived from the initiating party
	// name, at most 35 characters.
	PaymentID(name string) string
}

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Random is the default Generator: a timestamp plus twelve hex characters
// of UUID-derived randomness.
type Random struct {
	Now Clock
}

// NewRandom returns a Random generator on the wall clock.
func NewRandom() Random {
	return Random{Now: time.Now}
}

func (g Random) MessageID() string {
	return g.Now().Format("20060102030405") + "-" + randHex(12)
}

func (g Random) PaymentID(name string) string {
	name = nonAlnum.ReplaceAllString(name, "")
	if len(name) > 22 {
		name = name[:22]
	}
	return name + "-" + randHex(12)
}

func randHex(n int) string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")
	return s[:n]
}

// Fixed is a deterministic Generator for tests.
type Fixed struct {
	Message string
	Payment string
}

func (g Fixed) MessageID() string { return g.Message }

func (g Fixed) PaymentID(string) string { return g.Payment }
