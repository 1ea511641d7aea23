// Package render implements the field-kind-agnostic serialization helpers
// shared by the cmock and gcovr renderers: sequence rendering, mapping-pair
// parsing, boolean-token rendering, and suppression-rule evaluation.
package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/wrenkit/wren/internal/schema"
)

// Pair is one parsed TYPE:TREATMENT mapping entry.
type Pair struct {
	Type      string
	Treatment string
}

// Sequence joins values into an indented block, one element per line with
// the given bullet prefix. An empty sequence renders as an empty block.
func Sequence(values []string, indent, bullet string) string {
	if len(values) == 0 {
		return ""
	}
	var b strings.Builder
	for _, v := range values {
		b.WriteString(indent)
		b.WriteString(bullet)
		b.WriteString(v)
		b.WriteString("\n")
	}
	return b.String()
}

// MappingPairs parses raw TYPE:TREATMENT entries. Each entry is split on
// its first colon; anything that does not yield two non-empty tokens is
// dropped and recorded as a warning. Parsing always continues through the
// remaining entries.
func MappingPairs(raw []string) ([]Pair, []schema.Warning) {
	var pairs []Pair
	var warnings []schema.Warning
	for _, entry := range raw {
		typ, treatment, found := strings.Cut(entry, ":")
		if !found || typ == "" || treatment == "" {
			warnings = append(warnings, schema.Warning{
				Scope:   "mapping",
				Message: fmt.Sprintf("invalid entry: %s", entry),
			})
			continue
		}
		pairs = append(pairs, Pair{Type: typ, Treatment: treatment})
	}
	return pairs, warnings
}

// BoolToken renders a boolean as one of exactly two tokens. No other
// boolean representation is permitted in rendered output.
func BoolToken(value bool, trueToken, falseToken string) string {
	if value {
		return trueToken
	}
	return falseToken
}

// ShouldEmit evaluates a suppression rule against a field value and its
// declared default. OnlyIfPathExists stats the filesystem; a missing or
// empty path means "do not emit", never an error.
func ShouldEmit(rule schema.Rule, value, def any) bool {
	switch rule {
	case schema.Always:
		return true

	case schema.OnlyIfNonEmpty:
		switch v := value.(type) {
		case string:
			return v != ""
		case []string:
			return len(v) > 0
		}
		return value != nil

	case schema.OnlyIfDifferentFromDefault:
		v, _ := value.(string)
		d, _ := def.(string)
		// String equality against the literal default; a differently
		// formatted equivalent ("0.0" vs "0") is emitted.
		return v != "" && v != d

	case schema.OnlyIfTrue:
		v, _ := value.(bool)
		return v

	case schema.OnlyIfFalse:
		v, _ := value.(bool)
		return !v

	case schema.OnlyIfPathExists:
		p, _ := value.(string)
		if p == "" {
			return false
		}
		_, err := os.Stat(p)
		return err == nil
	}
	return false
}
