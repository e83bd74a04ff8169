package batchfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/sepa-pain/internal/dateutils"
	"fjacquet/sepa-pain/internal/schema"
	"fjacquet/sepa-pain/internal/sepa"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadTransferFile(t *testing.T) {
	path := writeFile(t, `
schema: pain.001.001.03
originator:
  name: TestCreditor
  iban: NL50BANK1234567890
  bic: BANKNL2A
payments:
  - name: Test von Testenstein
    iban: NL50BANK1234567890
    bic: BANKNL2A
    amount: "10.12"
    description: Test transaction
    execution_date: 2017-01-20
`)

	f, err := Load(path, "pain.001.001.03", "EUR")
	require.NoError(t, err)

	assert.Equal(t, schema.Pain001001003, f.Version)
	assert.Equal(t, "TestCreditor", f.Config.Name)
	assert.Equal(t, "EUR", f.Config.Currency, "currency should fall back to the default")
	assert.True(t, f.Config.Batch, "batch mode should default to on")

	require.Len(t, f.Payments, 1)
	p := f.Payments[0]
	assert.Equal(t, int64(1012), p.Amount)
	assert.Equal(t, time.Date(2017, 1, 20, 0, 0, 0, 0, time.UTC), p.ExecutionDate)
}

func TestLoadDebitFile(t *testing.T) {
	path := writeFile(t, `
originator:
  name: TestCreditor
  iban: NL50BANK1234567890
  bic: BANKNL2A
  currency: EUR
  creditor_id: DE26ZZZ00000000000
  batch: false
payments:
  - name: Test Debtor
    iban: NL50BANK1234567890
    bic: BANKNL2A
    amount: "50.00"
    description: Membership fee
    collection_date: 2017-01-20
    mandate_id: MDT-1
    mandate_date: 2014-08-01
    sequence_type: RCUR
`)

	f, err := Load(path, "pain.008.003.02", "EUR")
	require.NoError(t, err)

	assert.Equal(t, schema.Pain008003002, f.Version)
	assert.True(t, f.Version.IsDebit())
	assert.False(t, f.Config.Batch)
	assert.Equal(t, "DE26ZZZ00000000000", f.Config.CreditorID)

	require.Len(t, f.Payments, 1)
	p := f.Payments[0]
	assert.Equal(t, int64(5000), p.Amount)
	assert.Equal(t, sepa.SeqRecurrent, p.SequenceType)
	assert.Equal(t, time.Date(2014, 8, 1, 0, 0, 0, 0, time.UTC), p.MandateDate)
}

func TestLoadDebitDefaultsCollectionDate(t *testing.T) {
	path := writeFile(t, `
originator:
  name: TestCreditor
  iban: NL50BANK1234567890
  creditor_id: DE26ZZZ00000000000
payments:
  - name: Test Debtor
    iban: NL50BANK1234567890
    amount: "50.00"
    description: Membership fee
    mandate_id: MDT-1
    mandate_date: 2014-08-01
    sequence_type: RCUR
`)

	f, err := Load(path, "pain.008.003.02", "EUR")
	require.NoError(t, err)

	require.Len(t, f.Payments, 1)
	date := f.Payments[0].CollectionDate
	require.False(t, date.IsZero())
	assert.False(t, dateutils.IsWeekend(date))
	assert.True(t, date.After(time.Now()))
}

func TestLoadSchemaOverride(t *testing.T) {
	path := writeFile(t, `
schema: pain.001.003.03
originator:
  name: TestCreditor
  iban: NL50BANK1234567890
payments:
  - name: Someone
    iban: NL50BANK1234567890
    amount: "1.00"
    description: x
`)

	f, err := Load(path, "pain.001.001.03", "EUR")
	require.NoError(t, err)
	assert.Equal(t, schema.Pain001003003, f.Version)
}

func TestLoadAddressAndUltimateCreditor(t *testing.T) {
	path := writeFile(t, `
originator:
  name: TestCreditor
  iban: NL50BANK1234567890
  address:
    street: Oranje straat
    building_number: "47"
    postcode: "4120"
    town: Mariakerke
    country: BE
  ultimate_creditor:
    name: Ultimate Creditor
    id: "123456789"
payments:
  - name: Someone
    iban: NL50BANK1234567890
    amount: "1.00"
    description: x
    collection_date: 2017-01-20
    mandate_id: M1
    mandate_date: 2014-08-01
    sequence_type: FRST
`)

	f, err := Load(path, "pain.008.003.02", "EUR")
	require.NoError(t, err)
	require.NotNil(t, f.Config.Address)
	assert.Equal(t, "Oranje straat", f.Config.Address.Street)
	assert.Equal(t, "BE", f.Config.Address.Country)
	require.NotNil(t, f.Config.UltimateCreditor)
	assert.Equal(t, "Ultimate Creditor", f.Config.UltimateCreditor.Name)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "no payments",
			content: "originator:\n  name: X\n  iban: NL50BANK1234567890\n",
			errMsg:  "contains no payments",
		},
		{
			name: "unknown schema",
			content: `
schema: pain.009.001.01
originator:
  name: X
payments:
  - name: Y
    iban: NL50BANK1234567890
    amount: "1.00"
    description: x
`,
			errMsg: "unsupported schema version",
		},
		{
			name: "bad amount",
			content: `
originator:
  name: X
payments:
  - name: Y
    iban: NL50BANK1234567890
    amount: ten euro
    description: x
`,
			errMsg: "invalid amount",
		},
		{
			name: "bad date",
			content: `
originator:
  name: X
payments:
  - name: Y
    iban: NL50BANK1234567890
    amount: "1.00"
    description: x
    execution_date: someday
`,
			errMsg: "invalid execution_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)
			_, err := Load(path, "pain.001.001.03", "EUR")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "pain.001.001.03", "EUR")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read batch file")
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in    string
		cents int64
		ok    bool
	}{
		{"10.12", 1012, true},
		{"0.01", 1, true},
		{"1000", 100000, true},
		{"5.5", 550, true},
		{"1.234", 0, false},
		{"-3.00", 0, false},
		{"0", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cents, err := ParseAmount(tt.in)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.cents, cents)
			} else {
				require.Error(t, err)
			}
		})
	}
}
