package logging

import "fmt"

// MockLogger captures log entries so tests can assert on them.
type MockLogger struct {
	Entries []LogEntry

	pendingError  error
	pendingFields []Field
	sink          *MockLogger
}

// LogEntry is a single entry captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	entry := LogEntry{
		Level:   level,
		Message: msg,
		Fields:  append(append([]Field{}, m.pendingFields...), fields...),
		Error:   m.pendingError,
	}
	target := m
	if m.sink != nil {
		target = m.sink
	}
	target.Entries = append(target.Entries, entry)
}

// Debug records a debug-level entry.
func (m *MockLogger) Debug(msg string, fields ...Field) {
	m.record("DEBUG", msg, fields)
}

// Info records an info-level entry.
func (m *MockLogger) Info(msg string, fields ...Field) {
	m.record("INFO", msg, fields)
}

// Warn records a warning-level entry.
func (m *MockLogger) Warn(msg string, fields ...Field) {
	m.record("WARN", msg, fields)
}

// Error records an error-level entry.
func (m *MockLogger) Error(msg string, fields ...Field) {
	m.record("ERROR", msg, fields)
}

func (m *MockLogger) derive() *MockLogger {
	sink := m
	if m.sink != nil {
		sink = m.sink
	}
	return &MockLogger{
		pendingError:  m.pendingError,
		pendingFields: m.pendingFields,
		sink:          sink,
	}
}

// WithError returns a logger that records err on every entry. Entries
// still land on the original MockLogger.
func (m *MockLogger) WithError(err error) Logger {
	d := m.derive()
	d.pendingError = err
	return d
}

// WithFields returns a logger that records the given fields on every
// entry. Entries still land on the original MockLogger.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	d := m.derive()
	d.pendingFields = append(append([]Field{}, m.pendingFields...), fields...)
	return d
}

// Fatalf records a fatal-level entry without exiting.
func (m *MockLogger) Fatalf(format string, args ...interface{}) {
	m.record("FATAL", fmt.Sprintf(format, args...), nil)
}

// HasEntry reports whether an entry with the given level and message
// was recorded.
func (m *MockLogger) HasEntry(level, message string) bool {
	for _, entry := range m.Entries {
		if entry.Level == level && entry.Message == message {
			return true
		}
	}
	return false
}

// EntriesByLevel returns the recorded entries with the given level.
func (m *MockLogger) EntriesByLevel(level string) []LogEntry {
	var entries []LogEntry
	for _, entry := range m.Entries {
		if entry.Level == level {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Clear drops all recorded entries.
func (m *MockLogger) Clear() {
	m.Entries = nil
}
