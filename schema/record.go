// Package schema has the shared value types for traffic-event analytics.
package schema

import (
	"strconv"
	"strings"
)

// EventRecord is a single traffic event with an open field set. Upstream
// feeds do not share a schema, so fields are looked up by name and callers
// must handle absence. Records are never mutated by the engine.
type EventRecord map[string]any

// Sentinel strings that show up when missing data gets stringified upstream.
// They must never become chart categories.
var junkFieldValues = map[string]struct{}{
	"":          {},
	"undefined": {},
	"null":      {},
}

// Field returns the string value of a named field. It reports ok=false when
// the field is absent, not a string, or one of the junk sentinels.
func (r EventRecord) Field(name string) (string, bool) {
	v, ok := r[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	if _, junk := junkFieldValues[strings.TrimSpace(s)]; junk {
		return "", false
	}
	return s, true
}

// Number returns the numeric value of a named field, accepting native
// numbers and numeric strings. It reports ok=false otherwise.
func (r EventRecord) Number(name string) (float64, bool) {
	v, ok := r[name]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Raw returns the untyped field value for callers that need to inspect it
// themselves (the temporal bucketer accepts several date encodings).
func (r EventRecord) Raw(name string) (any, bool) {
	v, ok := r[name]
	return v, ok
}

// IsJunkValue reports whether a string is one of the sentinel values that
// stringified missing data produces upstream.
func IsJunkValue(s string) bool {
	_, junk := junkFieldValues[strings.TrimSpace(s)]
	return junk
}
