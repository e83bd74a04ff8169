package sepa

import (
	"fjacquet/sepa-pain/internal/schema"
)

// UltimateCreditor identifies the party on whose behalf a direct debit is
// collected, when it differs from the creditor itself.
type UltimateCreditor struct {
	Name       string
	BICOrBEI   string
	ID         string
	SchemeName string
}

// Config holds the message-level settings shared by every payment block of
// a document: the initiating party's identity, account and defaults.
type Config struct {
	// Name is the creditor name (direct debit) or debtor name (transfer).
	Name     string
	IBAN     string
	BIC      string
	Currency string

	// Batch groups payments that share a sequence type and requested date
	// into one payment block. When false every payment gets its own block.
	Batch bool

	// CreditorID is the SEPA creditor identifier, required for direct
	// debit messages only.
	CreditorID string

	// Instrument selects the direct debit local instrument, CORE or B2B.
	// Defaults to CORE.
	Instrument string

	// Domestic suppresses the SEPA service level for in-country schemes
	// that reject it.
	Domestic bool

	// MessageID overrides the generated message identifier.
	MessageID string

	// InitiatingParty overrides the name emitted in the group header.
	InitiatingParty string

	// InitiatingPartyID overrides the organisation identifier emitted in
	// the group header of direct debit messages.
	InitiatingPartyID string

	Address          *Address
	UltimateCreditor *UltimateCreditor
}

// validate checks the config against the requirements of the target schema
// version and returns a ConfigError naming every missing field.
func (c Config) validate(v schema.Version) error {
	var missing []string
	if c.Name == "" {
		missing = append(missing, "name")
	}
	if c.IBAN == "" {
		missing = append(missing, "IBAN")
	}
	if c.Currency == "" {
		missing = append(missing, "currency")
	}
	if v.IsDebit() {
		if c.CreditorID == "" {
			missing = append(missing, "creditor ID")
		}
		if c.BIC == "" && v.RequiresBIC() {
			missing = append(missing, "BIC")
		}
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}
