package cmock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/wrenkit/wren/internal/schema"
)

// testSettings returns a fully populated snapshot; individual tests
// override fields as needed.
func testSettings() schema.Settings {
	return schema.Settings{
		"mock_path":                   "build/mocks",
		"mock_prefix":                 "mock_",
		"mock_suffix":                 "",
		"includes":                    []string{"unity.h"},
		"plugins":                     []string{"ignore", "callback"},
		"treat_as":                    []string{"uint8_t:HEX8", "size_t:HEX32"},
		"when_no_prototypes":          ":warn",
		"enforce_strict_ordering":     true,
		"callback_include_count":      true,
		"callback_after_arg_check":    false,
		"includes_h_pre_orig_header":  "",
		"includes_h_post_orig_header": "",
		"includes_c_pre_header":       "",
		"includes_c_post_header":      "",
	}
}

func TestRenderFullDocument(t *testing.T) {
	gen := New("build/cmock.yml")

	rc, warnings, err := gen.Render(testSettings())
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "build/cmock.yml", rc.Path)

	want := `:cmock:
  :mock_path: build/mocks
  :mock_prefix: mock_
  :mock_suffix: ''
  :includes:
    - unity.h
  :plugins:
    - ignore
    - callback
  :treat_as:
    uint8_t: HEX8
    size_t: HEX32
  :when_no_prototypes: :warn
  :enforce_strict_ordering: 1
  :callback_include_count: 1
  :callback_after_arg_check: 0
`
	assert.Equal(t, want, rc.Text)
}

func TestRenderIsDeterministic(t *testing.T) {
	gen := New("cmock.yml")
	settings := testSettings()
	settings["treat_as"] = []string{"uint8_t:HEX8", "bad", "size_t:HEX32"}

	first, firstWarnings, err := gen.Render(settings)
	require.NoError(t, err)
	second, secondWarnings, err := gen.Render(settings)
	require.NoError(t, err)

	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, firstWarnings, secondWarnings)
}

func TestRenderIsValidYAML(t *testing.T) {
	gen := New("cmock.yml")
	settings := testSettings()
	settings["includes_h_pre_orig_header"] = `#include "prefix.h"`

	rc, _, err := gen.Render(settings)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(rc.Text), &doc))

	root, ok := doc[":cmock"].(map[string]any)
	require.True(t, ok, "missing :cmock root key")
	assert.Equal(t, "build/mocks", root[":mock_path"])
	assert.Equal(t, `#include "prefix.h"`, root[":includes_h_pre_orig_header"])

	treatAs, ok := root[":treat_as"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "HEX8", treatAs["uint8_t"])
}

func TestRenderMappingTolerance(t *testing.T) {
	gen := New("cmock.yml")
	settings := testSettings()
	settings["treat_as"] = []string{"uint8_t:HEX8", "badentry", "size_t:HEX32"}

	rc, warnings, err := gen.Render(settings)
	require.NoError(t, err)

	assert.Contains(t, rc.Text, "  :treat_as:\n    uint8_t: HEX8\n    size_t: HEX32\n")
	assert.NotContains(t, rc.Text, "badentry")

	require.Len(t, warnings, 1)
	assert.Equal(t, "mapping", warnings[0].Scope)
	assert.Contains(t, warnings[0].Message, "badentry")
}

func TestRenderOmitsTreatAsBlockWhenEmpty(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
	}{
		{"no entries", nil},
		{"only malformed entries", []string{"bad", ":", "x:"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := New("cmock.yml")
			settings := testSettings()
			settings["treat_as"] = tt.entries

			rc, _, err := gen.Render(settings)
			require.NoError(t, err)
			assert.NotContains(t, rc.Text, ":treat_as:")
		})
	}
}

func TestRenderFreeTextQuoting(t *testing.T) {
	gen := New("cmock.yml")
	settings := testSettings()
	settings["includes_c_pre_header"] = "#define IT'S 1"

	rc, warnings, err := gen.Render(settings)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	// Embedded single quotes are doubled, YAML single-quote style.
	assert.Contains(t, rc.Text, "  :includes_c_pre_header: '#define IT''S 1'\n")
}

func TestRenderFreeTextControlCharsDropped(t *testing.T) {
	gen := New("cmock.yml")
	settings := testSettings()
	settings["includes_h_post_orig_header"] = "#define A 1\n#define B 2"

	rc, warnings, err := gen.Render(settings)
	require.NoError(t, err)

	assert.NotContains(t, rc.Text, ":includes_h_post_orig_header:")
	require.Len(t, warnings, 1)
	assert.Equal(t, "cmock", warnings[0].Scope)
	assert.Contains(t, warnings[0].Message, "includes_h_post_orig_header")
}

func TestRenderEmptyFreeTextSuppressed(t *testing.T) {
	gen := New("cmock.yml")

	rc, _, err := gen.Render(testSettings())
	require.NoError(t, err)

	assert.NotContains(t, rc.Text, ":includes_h_pre_orig_header:")
	assert.NotContains(t, rc.Text, ":includes_c_post_header:")
}

func TestRenderEmptyIncludesStillEmitsHeader(t *testing.T) {
	gen := New("cmock.yml")
	settings := testSettings()
	settings["includes"] = []string{}

	rc, _, err := gen.Render(settings)
	require.NoError(t, err)

	assert.Contains(t, rc.Text, "  :includes:\n  :plugins:\n")
}

func TestRenderMissingField(t *testing.T) {
	gen := New("cmock.yml")
	settings := testSettings()
	delete(settings, "mock_path")

	_, _, err := gen.Render(settings)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing field "mock_path"`)
}

func TestRenderWrongKind(t *testing.T) {
	gen := New("cmock.yml")
	settings := testSettings()
	settings["enforce_strict_ordering"] = "1"

	_, _, err := gen.Render(settings)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enforce_strict_ordering")
	assert.Contains(t, err.Error(), "expected bool")
}

func TestDefinitionKeysAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range Definition().Fields {
		assert.False(t, seen[f.Key], "duplicate key %q", f.Key)
		seen[f.Key] = true
	}
}
