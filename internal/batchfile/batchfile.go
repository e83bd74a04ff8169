// Package batchfile reads the YAML documents the command line accepts as
// input: one originator block plus a list of payments, which it maps onto
// the builder types used to assemble a pain document.
package batchfile

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"fjacquet/sepa-pain/internal/dateutils"
	"fjacquet/sepa-pain/internal/schema"
	"fjacquet/sepa-pain/internal/sepa"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

type addressDoc struct {
	Type               string   `yaml:"type"`
	Department         string   `yaml:"department"`
	SubDepartment      string   `yaml:"sub_department"`
	Street             string   `yaml:"street"`
	BuildingNumber     string   `yaml:"building_number"`
	Postcode           string   `yaml:"postcode"`
	Town               string   `yaml:"town"`
	CountrySubdivision string   `yaml:"country_subdivision"`
	Country            string   `yaml:"country"`
	Lines              []string `yaml:"lines"`
}

type ultimateCreditorDoc struct {
	Name       string `yaml:"name"`
	BICOrBEI   string `yaml:"bic_or_bei"`
	ID         string `yaml:"id"`
	SchemeName string `yaml:"scheme_name"`
}

type originatorDoc struct {
	Name              string               `yaml:"name"`
	IBAN              string               `yaml:"iban"`
	BIC               string               `yaml:"bic"`
	Currency          string               `yaml:"currency"`
	Batch             *bool                `yaml:"batch"`
	CreditorID        string               `yaml:"creditor_id"`
	Instrument        string               `yaml:"instrument"`
	Domestic          bool                 `yaml:"domestic"`
	MessageID         string               `yaml:"message_id"`
	InitiatingParty   string               `yaml:"initiating_party"`
	InitiatingPartyID string               `yaml:"initiating_party_id"`
	Address           *addressDoc          `yaml:"address"`
	UltimateCreditor  *ultimateCreditorDoc `yaml:"ultimate_creditor"`
}

type paymentDoc struct {
	Name                      string      `yaml:"name"`
	IBAN                      string      `yaml:"iban"`
	BIC                       string      `yaml:"bic"`
	Amount                    string      `yaml:"amount"`
	Currency                  string      `yaml:"currency"`
	Description               string      `yaml:"description"`
	StructuredDescription     string      `yaml:"structured_description"`
	StructuredDescriptionType string      `yaml:"structured_description_type"`
	StructuredReference       string      `yaml:"structured_reference"`
	EndToEndID                string      `yaml:"end_to_end_id"`
	ExecutionDate             string      `yaml:"execution_date"`
	Instant                   bool        `yaml:"instant"`
	CollectionDate            string      `yaml:"collection_date"`
	MandateID                 string      `yaml:"mandate_id"`
	MandateDate               string      `yaml:"mandate_date"`
	SequenceType              string      `yaml:"sequence_type"`
	OriginalIBAN              string      `yaml:"original_iban"`
	Address                   *addressDoc `yaml:"address"`
}

type document struct {
	Schema     string        `yaml:"schema"`
	Originator originatorDoc `yaml:"originator"`
	Payments   []paymentDoc  `yaml:"payments"`
}

// File is a fully decoded batch file, ready to be fed to the message
// builder.
type File struct {
	Version  schema.Version
	Config   sepa.Config
	Payments []sepa.Payment
}

// Load reads and decodes a batch file. The schema falls back to
// defaultSchema when the file does not name one, the originator
// currency falls back to defaultCurrency, and a direct debit payment
// without a collection date is scheduled for the next business day.
func Load(path, defaultSchema, defaultCurrency string) (*File, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse batch file %s: %w", path, err)
	}
	if len(doc.Payments) == 0 {
		return nil, fmt.Errorf("batch file %s contains no payments", path)
	}

	schemaName := doc.Schema
	if schemaName == "" {
		schemaName = defaultSchema
	}
	version, err := schema.Parse(schemaName)
	if err != nil {
		return nil, err
	}

	f := &File{
		Version: version,
		Config:  doc.Originator.config(defaultCurrency),
	}
	for i, pd := range doc.Payments {
		p, err := pd.payment()
		if err != nil {
			return nil, fmt.Errorf("payment %d: %w", i+1, err)
		}
		// A direct debit needs a collection date; a payment that leaves it
		// out gets the next business day.
		if version.IsDebit() && p.CollectionDate.IsZero() {
			p.CollectionDate = dateutils.NextBusinessDay(time.Now())
		}
		f.Payments = append(f.Payments, p)
	}

	log.WithFields(logrus.Fields{
		"file":     path,
		"schema":   version.String(),
		"payments": len(f.Payments),
	}).Debug("Loaded batch file")
	return f, nil
}

func (o originatorDoc) config(defaultCurrency string) sepa.Config {
	cfg := sepa.Config{
		Name:              o.Name,
		IBAN:              o.IBAN,
		BIC:               o.BIC,
		Currency:          o.Currency,
		Batch:             true,
		CreditorID:        o.CreditorID,
		Instrument:        o.Instrument,
		Domestic:          o.Domestic,
		MessageID:         o.MessageID,
		InitiatingParty:   o.InitiatingParty,
		InitiatingPartyID: o.InitiatingPartyID,
		Address:           o.Address.address(),
	}
	if o.Batch != nil {
		cfg.Batch = *o.Batch
	}
	if cfg.Currency == "" {
		cfg.Currency = defaultCurrency
	}
	if o.UltimateCreditor != nil {
		cfg.UltimateCreditor = &sepa.UltimateCreditor{
			Name:       o.UltimateCreditor.Name,
			BICOrBEI:   o.UltimateCreditor.BICOrBEI,
			ID:         o.UltimateCreditor.ID,
			SchemeName: o.UltimateCreditor.SchemeName,
		}
	}
	return cfg
}

func (pd paymentDoc) payment() (sepa.Payment, error) {
	amount, err := ParseAmount(pd.Amount)
	if err != nil {
		return sepa.Payment{}, err
	}

	p := sepa.Payment{
		Name:                      pd.Name,
		IBAN:                      pd.IBAN,
		BIC:                       pd.BIC,
		Amount:                    amount,
		Currency:                  pd.Currency,
		Description:               pd.Description,
		StructuredDescription:     pd.StructuredDescription,
		StructuredDescriptionType: pd.StructuredDescriptionType,
		StructuredReference:       pd.StructuredReference,
		EndToEndID:                pd.EndToEndID,
		Instant:                   pd.Instant,
		MandateID:                 pd.MandateID,
		SequenceType:              pd.SequenceType,
		OriginalIBAN:              pd.OriginalIBAN,
		Address:                   pd.Address.address(),
	}

	if p.ExecutionDate, err = parseDate(pd.ExecutionDate, "execution_date"); err != nil {
		return sepa.Payment{}, err
	}
	if p.CollectionDate, err = parseDate(pd.CollectionDate, "collection_date"); err != nil {
		return sepa.Payment{}, err
	}
	if p.MandateDate, err = parseDate(pd.MandateDate, "mandate_date"); err != nil {
		return sepa.Payment{}, err
	}
	return p, nil
}

func (a *addressDoc) address() *sepa.Address {
	if a == nil {
		return nil
	}
	return &sepa.Address{
		Type:               a.Type,
		Department:         a.Department,
		SubDepartment:      a.SubDepartment,
		Street:             a.Street,
		BuildingNumber:     a.BuildingNumber,
		Postcode:           a.Postcode,
		Town:               a.Town,
		CountrySubdivision: a.CountrySubdivision,
		Country:            a.Country,
		Lines:              a.Lines,
	}
}

func parseDate(s, field string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, _, err := dateutils.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %w", field, s, err)
	}
	return t, nil
}

// ParseAmount converts a decimal amount string like "123.45" into cents.
// Amounts carry at most two decimal places and must be positive.
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	cents := d.Shift(2)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	if cents.Sign() <= 0 {
		return 0, fmt.Errorf("amount %q must be positive", s)
	}
	return cents.IntPart(), nil
}
