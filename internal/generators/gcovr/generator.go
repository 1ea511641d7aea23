// Package gcovr renders the flat key = value configuration consumed by the
// gcovr coverage reporter.
//
// Unlike the CMock document, list fields render as one repeated
// "key = value" line per element, and boolean flags emit a "yes"/"no" line
// only on the side their rule selects.
package gcovr

import (
	"strings"

	"github.com/wrenkit/wren/internal/render"
	"github.com/wrenkit/wren/internal/schema"
)

// definition is the fixed field schema for gcovr. Field order is output
// order.
//
// The fail-under thresholds are deliberately string fields compared
// byte-for-byte against the literal default "0": a caller passing "0.0"
// gets an emitted line. Numeric comparison would change observable output
// for existing consumers.
var definition = schema.SchemaDefinition{
	Tool:    "gcovr",
	Version: "7.2",
	Fields: []schema.FieldSpec{
		{Key: "search-path", Kind: schema.KindList, Default: []string(nil), Rule: schema.Always},
		{Key: "filter", Kind: schema.KindList, Default: []string(nil), Rule: schema.Always},
		{Key: "exclude", Kind: schema.KindList, Default: []string(nil), Rule: schema.Always},
		{Key: "exclude-directories", Kind: schema.KindList, Default: []string(nil), Rule: schema.Always},
		{Key: "exclude-unreachable-branches", Kind: schema.KindBool, Default: true, Rule: schema.OnlyIfTrue},
		{Key: "exclude-throw-branches", Kind: schema.KindBool, Default: true, Rule: schema.OnlyIfTrue},
		{Key: "exclude-function-lines", Kind: schema.KindBool, Default: false, Rule: schema.OnlyIfTrue},
		{Key: "fail-under-line", Kind: schema.KindString, Default: "0", Rule: schema.OnlyIfDifferentFromDefault},
		{Key: "fail-under-branch", Kind: schema.KindString, Default: "0", Rule: schema.OnlyIfDifferentFromDefault},
		{Key: "fail-under-function", Kind: schema.KindString, Default: "0", Rule: schema.OnlyIfDifferentFromDefault},
		{Key: "fail-under-decision", Kind: schema.KindString, Default: "0", Rule: schema.OnlyIfDifferentFromDefault},
		{Key: "html-high-threshold", Kind: schema.KindString, Default: "90", Rule: schema.Always},
		{Key: "html-medium-threshold", Kind: schema.KindString, Default: "75", Rule: schema.Always},
		{Key: "html-title", Kind: schema.KindString, Default: "Coverage Report", Rule: schema.OnlyIfDifferentFromDefault},
		{Key: "html-self-contained", Kind: schema.KindBool, Default: true, Rule: schema.OnlyIfFalse},
		{Key: "sort", Kind: schema.KindString, Default: "uncovered-number", Rule: schema.OnlyIfDifferentFromDefault},
		{Key: "gcov-executable", Kind: schema.KindString, Default: "", Rule: schema.OnlyIfPathExists},
		{Key: "decisions", Kind: schema.KindBool, Default: false, Rule: schema.OnlyIfTrue},
		{Key: "calls", Kind: schema.KindBool, Default: false, Rule: schema.OnlyIfTrue},
	},
}

// Definition returns the gcovr field schema. The returned value is shared
// and must not be mutated.
func Definition() schema.SchemaDefinition {
	return definition
}

// Generator renders gcovr.cfg documents.
type Generator struct {
	path string
}

// New creates a gcovr config generator that targets the given output path.
func New(path string) *Generator {
	return &Generator{path: path}
}

// Render serializes the settings snapshot into a gcovr cfg document.
// Missing or mis-typed fields abort with an error. Rendering performs at
// most one filesystem stat, for the gcov-executable path gate.
func (g *Generator) Render(settings schema.Settings) (schema.RenderedConfig, []schema.Warning, error) {
	var b strings.Builder

	for _, f := range definition.Fields {
		switch f.Kind {
		case schema.KindString:
			v, err := settings.String(f.Key)
			if err != nil {
				return schema.RenderedConfig{}, nil, err
			}
			if !render.ShouldEmit(f.Rule, v, f.Default) {
				continue
			}
			b.WriteString(f.Key + " = " + v + "\n")

		case schema.KindBool:
			v, err := settings.Bool(f.Key)
			if err != nil {
				return schema.RenderedConfig{}, nil, err
			}
			if !render.ShouldEmit(f.Rule, v, f.Default) {
				continue
			}
			// The cfg format has no "on" keyword; OnlyIfFalse flags emit
			// their "no" form, everything else emits "yes".
			if f.Rule == schema.OnlyIfFalse {
				b.WriteString(f.Key + " = no\n")
			} else {
				b.WriteString(f.Key + " = yes\n")
			}

		case schema.KindList:
			v, err := settings.List(f.Key)
			if err != nil {
				return schema.RenderedConfig{}, nil, err
			}
			// One repeated key = value line per element, in list order.
			// Empty lists emit zero lines.
			b.WriteString(render.Sequence(v, "", f.Key+" = "))
		}
	}

	return schema.RenderedConfig{Path: g.path, Text: b.String()}, nil, nil
}
