// Package cmock renders the YAML configuration consumed by the CMock mock
// generator.
package cmock

import (
	"strings"

	"github.com/wrenkit/wren/internal/render"
	"github.com/wrenkit/wren/internal/schema"
)

// definition is the fixed field schema for CMock. Field order here is
// output order; the renderer never reorders.
var definition = schema.SchemaDefinition{
	Tool:    "cmock",
	Version: "2.6",
	Fields: []schema.FieldSpec{
		{Key: "mock_path", Kind: schema.KindString, Default: "mocks", Rule: schema.Always},
		{Key: "mock_prefix", Kind: schema.KindString, Default: "mock_", Rule: schema.Always},
		{Key: "mock_suffix", Kind: schema.KindString, Default: "", Rule: schema.Always},
		{Key: "includes", Kind: schema.KindList, Default: []string(nil), Rule: schema.Always},
		{Key: "plugins", Kind: schema.KindList, Default: []string{"ignore", "callback"}, Rule: schema.Always},
		{Key: "treat_as", Kind: schema.KindMapping, Default: []string(nil), Rule: schema.OnlyIfNonEmpty},
		{Key: "when_no_prototypes", Kind: schema.KindString, Default: ":warn", Rule: schema.Always},
		{Key: "enforce_strict_ordering", Kind: schema.KindBool, Default: true, Rule: schema.Always},
		{Key: "callback_include_count", Kind: schema.KindBool, Default: true, Rule: schema.Always},
		{Key: "callback_after_arg_check", Kind: schema.KindBool, Default: false, Rule: schema.Always},
		{Key: "includes_h_pre_orig_header", Kind: schema.KindString, Default: "", Rule: schema.OnlyIfNonEmpty},
		{Key: "includes_h_post_orig_header", Kind: schema.KindString, Default: "", Rule: schema.OnlyIfNonEmpty},
		{Key: "includes_c_pre_header", Kind: schema.KindString, Default: "", Rule: schema.OnlyIfNonEmpty},
		{Key: "includes_c_post_header", Kind: schema.KindString, Default: "", Rule: schema.OnlyIfNonEmpty},
	},
}

// Definition returns the CMock field schema. The returned value is shared
// and must not be mutated.
func Definition() schema.SchemaDefinition {
	return definition
}

// Generator renders cmock.yml documents.
type Generator struct {
	path string
}

// New creates a CMock config generator that targets the given output path.
func New(path string) *Generator {
	return &Generator{path: path}
}

// Render serializes the settings snapshot into a CMock YAML document.
// Missing or mis-typed fields abort with an error; malformed treat_as
// entries and free-text values containing control characters are dropped
// and reported as warnings.
func (g *Generator) Render(settings schema.Settings) (schema.RenderedConfig, []schema.Warning, error) {
	var b strings.Builder
	var warnings []schema.Warning

	b.WriteString(":cmock:\n")

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
			if f.Rule == schema.OnlyIfNonEmpty {
				// Free-text injection fields are emitted single-quoted.
				quoted, ok := quoteFreeText(v)
				if !ok {
					warnings = append(warnings, schema.Warning{
						Scope:   "cmock",
						Message: "field " + f.Key + ": control characters not allowed, dropping",
					})
					continue
				}
				b.WriteString("  :" + f.Key + ": " + quoted + "\n")
				continue
			}
			b.WriteString("  :" + f.Key + ": " + scalar(v) + "\n")

		case schema.KindBool:
			v, err := settings.Bool(f.Key)
			if err != nil {
				return schema.RenderedConfig{}, nil, err
			}
			if !render.ShouldEmit(f.Rule, v, f.Default) {
				continue
			}
			b.WriteString("  :" + f.Key + ": " + render.BoolToken(v, "1", "0") + "\n")

		case schema.KindList:
			v, err := settings.List(f.Key)
			if err != nil {
				return schema.RenderedConfig{}, nil, err
			}
			if !render.ShouldEmit(f.Rule, v, f.Default) {
				continue
			}
			b.WriteString("  :" + f.Key + ":\n")
			b.WriteString(render.Sequence(v, "    ", "- "))

		case schema.KindMapping:
			raw, err := settings.List(f.Key)
			if err != nil {
				return schema.RenderedConfig{}, nil, err
			}
			pairs, ws := render.MappingPairs(raw)
			warnings = append(warnings, ws...)
			// The block header is omitted entirely when no well-formed
			// pair survives parsing.
			if len(pairs) == 0 {
				continue
			}
			b.WriteString("  :" + f.Key + ":\n")
			for _, p := range pairs {
				b.WriteString("    " + p.Type + ": " + p.Treatment + "\n")
			}
		}
	}

	return schema.RenderedConfig{Path: g.path, Text: b.String()}, warnings, nil
}

// scalar renders a plain string value, using an explicit empty scalar so
// the document stays valid YAML when the value is blank.
func scalar(v string) string {
	if v == "" {
		return "''"
	}
	return v
}

// quoteFreeText wraps injected free text in single quotes, doubling any
// embedded single quote. Values carrying control characters are rejected;
// there is no safe single-line YAML rendering for them.
func quoteFreeText(v string) (string, bool) {
	if strings.ContainsAny(v, "\n\r\t") {
		return "", false
	}
	return "'" + strings.ReplaceAll(v, "'", "''") + "'", true
}
