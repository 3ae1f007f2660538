package validation

import (
	"strings"
)

// FieldError is a single failed check, keyed to the request field it
// belongs to.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"msg"`
	Value   any    `json:"value,omitempty"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Errors is the aggregate of every failed check of a chain run.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether field failed at least one check.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Messages returns the messages reported for field, in check order.
func (e Errors) Messages(field string) []string {
	var out []string
	for _, fe := range e {
		if fe.Field == field {
			out = append(out, fe.Message)
		}
	}
	return out
}
