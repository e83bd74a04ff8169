package root_test

import (
	"testing"

	"fjacquet/sepa-pain/cmd/root"

	"github.com/stretchr/testify/assert"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "sepa-pain", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "pain.001/pain.008")
	assert.Contains(t, root.Cmd.Long, "payment initiation documents")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()

	inputFlag := root.Cmd.PersistentFlags().Lookup("input")
	assert.NotNil(t, inputFlag)
	assert.Equal(t, "i", inputFlag.Shorthand)

	outputFlag := root.Cmd.PersistentFlags().Lookup("output")
	assert.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)

	validateFlag := root.Cmd.PersistentFlags().Lookup("validate")
	assert.NotNil(t, validateFlag)
	assert.Equal(t, "v", validateFlag.Shorthand)
}

func TestGetLogrusAdapter(t *testing.T) {
	logger := root.GetLogrusAdapter()
	assert.NotNil(t, logger)
	assert.NotPanics(t, func() {
		logger.Info("adapter works")
	})
}
