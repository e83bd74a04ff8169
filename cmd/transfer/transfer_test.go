package transfer_test

import (
	"testing"

	"fjacquet/sepa-pain/cmd/transfer"

	"github.com/stretchr/testify/assert"
)

func TestTransferCommand_Metadata(t *testing.T) {
	assert.Equal(t, "transfer", transfer.Cmd.Use)
	assert.Contains(t, transfer.Cmd.Short, "pain.001")
	assert.Contains(t, transfer.Cmd.Long, "credit transfer initiation document")
	assert.NotNil(t, transfer.Cmd.Run)
}

func TestTransferCommand_HelpText(t *testing.T) {
	assert.Contains(t, transfer.Cmd.Long, "YAML batch file")
	assert.Contains(t, transfer.Cmd.Long, "debtor")
}
