package sepa

import (
	"fmt"
	"strings"
)

// ConfigError reports message-level configuration that cannot produce a
// schema-valid document. It is raised before any XML is built.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid message config: missing %s", strings.Join(e.Missing, ", "))
}

// PaymentError reports a single invalid payment. The message is left
// untouched when this is returned, so the caller can correct the payment
// and retry.
type PaymentError struct {
	Field  string
	Reason string
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("invalid payment: %s %s", e.Field, e.Reason)
}
