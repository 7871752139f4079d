package charts

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotPersisted is returned by operations that need a chart id before the
// chart has been created remotely.
var ErrNotPersisted = errors.New("charts: chart has no id; call Create first or set ID")

// ValidationError reports a field value outside its legal set or range. The
// message carries the offending value and what would have been accepted.
type ValidationError struct {
	Field   string
	Value   any
	Allowed string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("charts: invalid %s: %v. Must be %s", e.Field, e.Value, e.Allowed)
}

func oneOf(field string, v string, allowed ...string) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return &ValidationError{Field: field, Value: v, Allowed: "one of " + strings.Join(allowed, ", ")}
}

func intOneOf(field string, v int, allowed ...int) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	parts := make([]string, len(allowed))
	for i, a := range allowed {
		parts[i] = fmt.Sprint(a)
	}
	return &ValidationError{Field: field, Value: v, Allowed: "one of " + strings.Join(parts, ", ")}
}

func inRange(field string, v, lo, hi float64) error {
	if v < lo || v > hi {
		return &ValidationError{Field: field, Value: v, Allowed: fmt.Sprintf("between %v and %v (inclusive)", lo, hi)}
	}
	return nil
}
