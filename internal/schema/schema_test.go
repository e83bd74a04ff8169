package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	v, err := Parse("pain.008.003.02")
	require.NoError(t, err)
	assert.Equal(t, Pain008003002, v)
	assert.Equal(t, "pain.008.003.02", v.String())

	_, err = Parse("pain.002.001.03")
	assert.Error(t, err)
}

func TestNamespace(t *testing.T) {
	assert.Equal(t,
		"urn:iso:std:iso:20022:tech:xsd:pain.008.003.02",
		Pain008003002.Namespace())
}

func TestCapabilities(t *testing.T) {
	tests := []struct {
		version     Version
		debit       bool
		requiresBIC bool
		root        string
	}{
		{Pain001001003, false, false, "CstmrCdtTrfInitn"},
		{Pain001001009, false, false, "CstmrCdtTrfInitn"},
		{Pain001003003, false, false, "CstmrCdtTrfInitn"},
		{Pain008001002, true, true, "CstmrDrctDbtInitn"},
		{Pain008002002, true, true, "CstmrDrctDbtInitn"},
		{Pain008003002, true, false, "CstmrDrctDbtInitn"},
	}

	for _, tt := range tests {
		t.Run(tt.version.String(), func(t *testing.T) {
			assert.Equal(t, tt.debit, tt.version.IsDebit())
			assert.Equal(t, tt.requiresBIC, tt.version.RequiresBIC())
			assert.Equal(t, !tt.requiresBIC, tt.version.SupportsNotProvidedAgent())
			assert.Equal(t, tt.root, tt.version.RootElement())
		})
	}
}
