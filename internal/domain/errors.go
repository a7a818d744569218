package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid session token")
)

// ValidationError carries per-field validation messages keyed by the
// submitted field name. It unwraps to ErrInvalidInput so callers can
// branch with errors.Is without inspecting individual fields.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("invalid input")
	for _, k := range keys {
		fmt.Fprintf(&b, "; %s: %s", k, strings.Join(e.Fields[k], ", "))
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Add appends a message for the given field.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors reports whether any field message has been recorded.
func (e *ValidationError) HasErrors() bool { return len(e.Fields) > 0 }
