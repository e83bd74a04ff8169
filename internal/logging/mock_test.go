package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLoggerRecordsEntries(t *testing.T) {
	mock := &MockLogger{}

	mock.Debug("reading batch file")
	mock.Info("payment file written", Field{Key: FieldOutputFile, Value: "out.xml"})
	mock.Warn("document failed validation")
	mock.Error("conversion failed")

	require.Len(t, mock.Entries, 4)
	assert.True(t, mock.HasEntry("DEBUG", "reading batch file"))
	assert.True(t, mock.HasEntry("INFO", "payment file written"))
	assert.True(t, mock.HasEntry("WARN", "document failed validation"))
	assert.True(t, mock.HasEntry("ERROR", "conversion failed"))
	assert.False(t, mock.HasEntry("INFO", "conversion failed"))

	infoEntries := mock.EntriesByLevel("INFO")
	require.Len(t, infoEntries, 1)
	require.Len(t, infoEntries[0].Fields, 1)
	assert.Equal(t, FieldOutputFile, infoEntries[0].Fields[0].Key)
}

func TestMockLoggerDerivedEntriesLandOnOriginal(t *testing.T) {
	mock := &MockLogger{}
	testErr := errors.New("schema mismatch")

	mock.
		WithFields(Field{Key: FieldInputFile, Value: "batch.yaml"}).
		WithError(testErr).
		Error("generation failed")

	require.Len(t, mock.Entries, 1)
	entry := mock.Entries[0]
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "generation failed", entry.Message)
	assert.Equal(t, testErr, entry.Error)
	require.Len(t, entry.Fields, 1)
	assert.Equal(t, "batch.yaml", entry.Fields[0].Value)
}

func TestMockLoggerFatalf(t *testing.T) {
	mock := &MockLogger{}

	mock.Fatalf("cannot open %s", "payments.yaml")

	require.Len(t, mock.Entries, 1)
	assert.True(t, mock.HasEntry("FATAL", "cannot open payments.yaml"))
}

func TestMockLoggerClear(t *testing.T) {
	mock := &MockLogger{}
	mock.Info("first")
	mock.Clear()

	assert.Empty(t, mock.Entries)
	assert.False(t, mock.HasEntry("INFO", "first"))
}
