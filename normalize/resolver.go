// Package normalize turns upstream payloads of unstable shape into the
// canonical entity model. The upstream mixes snake_case, camelCase and
// legacy key names per deployment, so every canonical field is resolved
// through an ordered candidate-key list with a typed default.
package normalize

import (
	"strconv"
	"time"
)

// Raw is a decoded JSON object of unknown shape.
type Raw = map[string]any

// pick returns the first candidate key present with a non-nil value.
func pick(raw Raw, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// Str resolves a string field. JSON numbers are rendered in their minimal
// decimal form (ids and table numbers arrive as numbers from some
// upstream versions). Anything else defaults to "".
func Str(raw Raw, keys ...string) string {
	v, ok := pick(raw, keys...)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

// Num resolves a numeric field, defaulting to 0. Numeric strings are
// accepted because some upstream versions quote their amounts.
func Num(raw Raw, keys ...string) float64 {
	v, ok := pick(raw, keys...)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
	}
	return 0
}

// Bool resolves a boolean field, defaulting to false.
func Bool(raw Raw, keys ...string) bool {
	v, ok := pick(raw, keys...)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Slice resolves a sequence field, defaulting to an empty slice.
func Slice(raw Raw, keys ...string) []any {
	v, ok := pick(raw, keys...)
	if !ok {
		return nil
	}
	s, _ := v.([]any)
	return s
}

// StrSlice resolves a field that should be a list of strings but may
// arrive as an array, a single string, or be absent entirely.
func StrSlice(raw Raw, keys ...string) []string {
	v, ok := pick(raw, keys...)
	if !ok {
		return []string{}
	}
	switch s := v.(type) {
	case string:
		if s == "" {
			return []string{}
		}
		return []string{s}
	case []any:
		out := make([]string, 0, len(s))
		for _, e := range s {
			if str, ok := e.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return []string{}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Time resolves a timestamp field. Unparsable or absent values yield the
// zero time; callers treat that as "not present".
func Time(raw Raw, keys ...string) time.Time {
	s := Str(raw, keys...)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// List coerces a decoded payload into a list of objects. Upstream list
// endpoints return either a bare array or an object wrapping the array
// under one of the given keys.
func List(v any, wrapKeys ...string) []Raw {
	switch t := v.(type) {
	case []any:
		return toRaws(t)
	case map[string]any:
		for _, k := range wrapKeys {
			if inner, ok := t[k].([]any); ok {
				return toRaws(inner)
			}
		}
	}
	return nil
}

func toRaws(in []any) []Raw {
	out := make([]Raw, 0, len(in))
	for _, e := range in {
		if m, ok := e.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
