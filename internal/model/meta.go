package model

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Meta is the dynamic front-matter mapping of a content file. Values
// come straight out of the YAML decoder; the typed accessors apply
// the documented defaults instead of callers type-asserting ad hoc.
type Meta map[string]any

// String returns the value under key if it is a string, else def.
func (m Meta) String(key, def string) string {
	if s, ok := m[key].(string); ok && s != "" {
		return s
	}
	return def
}

// Int returns the value under key if it is integer-like, else def.
func (m Meta) Int(key string, def int) int {
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

// Date returns the value under key as a calendar date. YAML decoders
// may hand back a native time.Time or a string; anything else is
// stringified and parsed as YYYY-MM-DD. A missing or unparseable
// value is an error.
func (m Meta) Date(key string) (time.Time, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return time.Time{}, fmt.Errorf("missing %q", key)
	}
	if t, ok := v.(time.Time); ok {
		return t, nil
	}
	t, err := time.Parse(dateLayout, fmt.Sprint(v))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %q: %w", key, err)
	}
	return t, nil
}

// OptionalDate is Date for keys that may be absent: ok is false and
// no error is returned when the key is missing.
func (m Meta) OptionalDate(key string) (time.Time, bool, error) {
	if v, present := m[key]; !present || v == nil {
		return time.Time{}, false, nil
	}
	t, err := m.Date(key)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

// StringList returns the value under key as a list of strings,
// defaulting to an empty list. YAML sequences decode as []any, so
// elements are stringified individually.
func (m Meta) StringList(key string) []string {
	switch v := m[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			out = append(out, fmt.Sprint(e))
		}
		return out
	}
	return []string{}
}

// MetadataParseError reports front matter that could not be parsed.
// It aborts the publish run: there is no per-file isolation.
type MetadataParseError struct {
	Path string
	Err  error
}

func (e *MetadataParseError) Error() string {
	return fmt.Sprintf("parse front matter in %s: %v", e.Path, e.Err)
}

func (e *MetadataParseError) Unwrap() error { return e.Err }
