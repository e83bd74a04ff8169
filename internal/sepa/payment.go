package sepa

import (
	"time"

	"fjacquet/sepa-pain/internal/refs"
	"fjacquet/sepa-pain/internal/textutils"
)

// Sequence types accepted on direct debit payments.
const (
	SeqFirst     = "FRST"
	SeqRecurrent = "RCUR"
	SeqOneOff    = "OOFF"
	SeqFinal     = "FNAL"
)

// Reference format tags for StructuredDescriptionType.
const (
	// RefTypeOGM selects the Belgian 12-digit structured communication
	// with a mod-97 check on the last two digits.
	RefTypeOGM = "BBA"
	// RefTypeISO selects an ISO 11649 creditor reference starting with RF.
	RefTypeISO = "ISO"
)

// SMNDA is the joker emitted as the original debtor account identifier
// when the debtor moved to a different bank and no previous IBAN is known.
const SMNDA = "SMNDA"

// Payment is one transaction to be added to a message. Amount is in cents;
// amounts are never represented as floating point.
type Payment struct {
	Name     string
	IBAN     string
	BIC      string
	Amount   int64
	Currency string

	// Exactly one of Description, StructuredDescription and
	// StructuredReference must be set. StructuredDescription is checked
	// according to StructuredDescriptionType; StructuredReference is
	// carried verbatim.
	Description               string
	StructuredDescription     string
	StructuredDescriptionType string
	StructuredReference       string

	EndToEndID string

	// ExecutionDate is the requested execution date of a transfer. The
	// zero value omits the date and leaves scheduling to the bank.
	ExecutionDate time.Time

	// Instant requests SEPA instant settlement for a transfer.
	Instant bool

	// Direct debit fields.
	CollectionDate time.Time
	MandateID      string
	MandateDate    time.Time
	SequenceType   string

	// OriginalIBAN signals that the debtor account differs from the one
	// the mandate was signed against. It carries the previous IBAN, or
	// the SMNDA joker when the debtor moved to an unknown bank. Equal to
	// the current IBAN it is treated as a mistaken signal and ignored.
	OriginalIBAN string

	Address *Address
}

func validSequenceType(s string) bool {
	switch s {
	case SeqFirst, SeqRecurrent, SeqOneOff, SeqFinal:
		return true
	}
	return false
}

// validate checks the payment for the given message kind and returns a
// normalized copy ready for assembly. The receiver is never mutated.
func (p Payment) validate(debit, clean bool) (Payment, error) {
	if p.Name == "" {
		return Payment{}, &PaymentError{Field: "name", Reason: "is required"}
	}
	if p.IBAN == "" {
		return Payment{}, &PaymentError{Field: "IBAN", Reason: "is required"}
	}
	if p.Amount < 0 {
		return Payment{}, &PaymentError{Field: "amount", Reason: "must not be negative"}
	}

	forms := 0
	for _, s := range []string{p.Description, p.StructuredDescription, p.StructuredReference} {
		if s != "" {
			forms++
		}
	}
	switch {
	case forms == 0:
		return Payment{}, &PaymentError{Field: "description", Reason: "is required"}
	case forms > 1:
		return Payment{}, &PaymentError{
			Field:  "description",
			Reason: "cannot be combined with a structured reference",
		}
	}

	if p.StructuredDescription != "" {
		switch p.StructuredDescriptionType {
		case RefTypeOGM:
			cleaned, err := refs.ValidateOGM(p.StructuredDescription)
			if err != nil {
				return Payment{}, err
			}
			p.StructuredDescription = cleaned
		case RefTypeISO:
			cleaned, err := refs.ValidateCreditorReference(p.StructuredDescription)
			if err != nil {
				return Payment{}, err
			}
			p.StructuredDescription = cleaned
		}
	}

	if debit {
		if p.MandateID == "" {
			return Payment{}, &PaymentError{Field: "mandate ID", Reason: "is required"}
		}
		if p.MandateDate.IsZero() {
			return Payment{}, &PaymentError{Field: "mandate date", Reason: "is required"}
		}
		if p.CollectionDate.IsZero() {
			return Payment{}, &PaymentError{Field: "collection date", Reason: "is required"}
		}
		if !validSequenceType(p.SequenceType) {
			return Payment{}, &PaymentError{Field: "sequence type", Reason: "must be FRST, RCUR, OOFF or FNAL"}
		}
		if p.Instant {
			return Payment{}, &PaymentError{Field: "instant", Reason: "is not available for direct debits"}
		}
	}

	if clean {
		p.Name = textutils.Sanitize(p.Name, 70)
		p.Description = textutils.Sanitize(p.Description, 140)
	} else {
		p.Name = textutils.Truncate(p.Name, 70)
		p.Description = textutils.Truncate(p.Description, 140)
	}
	p.EndToEndID = textutils.Truncate(p.EndToEndID, 35)

	return p, nil
}
