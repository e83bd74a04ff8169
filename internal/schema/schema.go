// Package schema enumerates the supported ISO 20022 pain schema versions
// and the structural capabilities the document builder needs to branch on.
package schema

import "fmt"

// Version identifies one pain schema variant.
type Version int

const (
	// Credit transfer initiation (pain.001 family).
	Pain001001003 Version = iota
	Pain001001009
	Pain001003003

	// Direct debit initiation (pain.008 family).
	Pain008001002
	Pain008002002
	Pain008003002
)

var names = map[Version]string{
	Pain001001003: "pain.001.001.03",
	Pain001001009: "pain.001.001.09",
	Pain001003003: "pain.001.003.03",
	Pain008001002: "pain.008.001.02",
	Pain008002002: "pain.008.002.02",
	Pain008003002: "pain.008.003.02",
}

// Parse maps a schema name like "pain.008.001.02" to its Version.
func Parse(name string) (Version, error) {
	for v, n := range names {
		if n == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unsupported schema version %q", name)
}

func (v Version) String() string {
	return names[v]
}

// Namespace returns the document namespace URN for this version.
func (v Version) Namespace() string {
	return "urn:iso:std:iso:20022:tech:xsd:" + v.String()
}

// IsDebit reports whether this version belongs to the pain.008 family.
func (v Version) IsDebit() bool {
	switch v {
	case Pain008001002, Pain008002002, Pain008003002:
		return true
	}
	return false
}

// RootElement returns the element directly under Document.
func (v Version) RootElement() string {
	if v.IsDebit() {
		return "CstmrDrctDbtInitn"
	}
	return "CstmrCdtTrfInitn"
}

// RequiresBIC reports whether the creditor agent BIC is mandatory at the
// message level. Only the two oldest direct debit variants still demand it.
func (v Version) RequiresBIC() bool {
	return v == Pain008001002 || v == Pain008002002
}

// SupportsNotProvidedAgent reports whether an absent BIC may be expressed
// as FinInstnId/Othr/Id=NOTPROVIDED. The old direct debit variants predate
// that construct.
func (v Version) SupportsNotProvidedAgent() bool {
	return !v.RequiresBIC()
}
