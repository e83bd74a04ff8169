package camt_test

import (
	"testing"

	"fjacquet/sepa-pain/cmd/camt"

	"github.com/stretchr/testify/assert"
)

func TestCamtCommand_Metadata(t *testing.T) {
	assert.Equal(t, "camt", camt.Cmd.Use)
	assert.Contains(t, camt.Cmd.Short, "camt.052/053")
	assert.Contains(t, camt.Cmd.Long, "CSV format")
	assert.NotNil(t, camt.Cmd.Run)
}

func TestCamtCommand_HelpText(t *testing.T) {
	assert.Contains(t, camt.Cmd.Long, "camt.052")
	assert.Contains(t, camt.Cmd.Long, "camt.053")
}
