// Package schema defines the declarative field model behind the wren
// renderers.
//
// A SchemaDefinition lists every field one external tool recognizes: its
// key, kind, default value, and the serialization rule that decides whether
// the field contributes output. Renderers walk the schema in declared order
// and delegate suppression decisions to the rule, so adding a field to a
// tool's config is a data change, not new renderer control flow.
package schema

import (
	"fmt"
)

// Kind identifies the value type a field carries.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindList    // ordered list of strings
	KindMapping // raw TYPE:TREATMENT entries, parsed at render time
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Rule decides whether a field contributes a line (or block) to the
// rendered output, given its current value.
type Rule int

const (
	// Always emits the field unconditionally.
	Always Rule = iota

	// OnlyIfNonEmpty emits strings when non-empty and lists when they
	// have at least one element.
	OnlyIfNonEmpty

	// OnlyIfDifferentFromDefault emits a string field when it is
	// non-empty and not byte-equal to the field's default. The comparison
	// is string equality, never numeric.
	OnlyIfDifferentFromDefault

	// OnlyIfTrue emits a boolean field only when true.
	OnlyIfTrue

	// OnlyIfFalse emits a boolean field only when false. Used for flags
	// whose output format has no "on" keyword.
	OnlyIfFalse

	// OnlyIfPathExists emits a string field only when it is non-empty
	// and names an existing filesystem entry at render time.
	OnlyIfPathExists
)

// FieldSpec describes one named, typed configuration field.
type FieldSpec struct {
	Key     string
	Kind    Kind
	Default any
	Rule    Rule
}

// SchemaDefinition is the fixed, versioned set of fields one tool
// recognizes. Definitions are package-level values, built once and never
// mutated; the two tool schemas coexist independently and are never merged.
type SchemaDefinition struct {
	Tool    string
	Version string
	Fields  []FieldSpec
}

// Field returns the FieldSpec for key, if declared.
func (d *SchemaDefinition) Field(key string) (FieldSpec, bool) {
	for _, f := range d.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Settings is a snapshot of field values keyed by field key. Callers build
// it from their configuration source (defaults overridden by user input)
// and must populate every field the schema declares before rendering.
type Settings map[string]any

// String returns the string value for key. A missing field or a value of
// the wrong kind is a contract violation and returns an error naming the
// field.
func (s Settings) String(key string) (string, error) {
	v, ok := s[key]
	if !ok {
		return "", fmt.Errorf("settings missing field %q", key)
	}
	str, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q: expected string, got %T", key, v)
	}
	return str, nil
}

// Bool returns the boolean value for key.
func (s Settings) Bool(key string) (bool, error) {
	v, ok := s[key]
	if !ok {
		return false, fmt.Errorf("settings missing field %q", key)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("field %q: expected bool, got %T", key, v)
	}
	return b, nil
}

// List returns the string-list value for key. List and mapping fields both
// carry []string values; mapping entries stay raw until parsed by the
// render engine.
func (s Settings) List(key string) ([]string, error) {
	v, ok := s[key]
	if !ok {
		return nil, fmt.Errorf("settings missing field %q", key)
	}
	list, ok := v.([]string)
	if !ok {
		return nil, fmt.Errorf("field %q: expected list of strings, got %T", key, v)
	}
	return list, nil
}

// Warning records a non-fatal problem observed during one render call.
// Warnings are returned alongside the output and never abort rendering.
type Warning struct {
	Scope   string
	Message string
}

// String formats the warning for terminal output.
func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s", w.Scope, w.Message)
}

// RenderedConfig is the product of one render call: the destination path
// and the full serialized text. It is produced fresh per invocation; no
// state is retained between renders.
type RenderedConfig struct {
	Path string
	Text string
}
