// Package logging defines the structured logging surface the command
// layer works against. The document and statement packages log through
// their own logrus instances; this interface exists for helpers whose
// logging needs to be asserted on in tests.
package logging

// Field is one key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// Logger is the structured logger handed to command helpers.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a logger that attaches err to every entry it
	// emits.
	WithError(err error) Logger

	// WithFields returns a logger that attaches the given fields to
	// every entry it emits.
	WithFields(fields ...Field) Logger

	// Fatalf logs a formatted message and exits.
	Fatalf(format string, args ...interface{})
}
