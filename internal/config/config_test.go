package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenkit/wren/internal/generators/cmock"
	"github.com/wrenkit/wren/internal/generators/gcovr"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wren.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
project:
  name: demo
output:
  dir: out
cmock:
  mock_path: build/mocks
  includes:
    - unity.h
gcovr:
  fail-under-line: 85
  exclude:
    - "vendor/.*"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.ProjectName)
	assert.Equal(t, "out", cfg.OutputDir)

	mockPath, err := cfg.CMockSettings().String("mock_path")
	require.NoError(t, err)
	assert.Equal(t, "build/mocks", mockPath)

	includes, err := cfg.CMockSettings().List("includes")
	require.NoError(t, err)
	assert.Equal(t, []string{"unity.h"}, includes)

	// Unquoted YAML scalars still arrive as strings.
	failUnder, err := cfg.GcovrSettings().String("fail-under-line")
	require.NoError(t, err)
	assert.Equal(t, "85", failUnder)

	exclude, err := cfg.GcovrSettings().List("exclude")
	require.NoError(t, err)
	assert.Equal(t, []string{"vendor/.*"}, exclude)
}

func TestLoadAppliesSchemaDefaults(t *testing.T) {
	path := writeConfig(t, "project:\n  name: demo\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "build", cfg.OutputDir)

	prefix, err := cfg.CMockSettings().String("mock_prefix")
	require.NoError(t, err)
	assert.Equal(t, "mock_", prefix)

	policy, err := cfg.CMockSettings().String("when_no_prototypes")
	require.NoError(t, err)
	assert.Equal(t, ":warn", policy)

	selfContained, err := cfg.GcovrSettings().Bool("html-self-contained")
	require.NoError(t, err)
	assert.True(t, selfContained)
}

// Every field a schema declares must be present in the snapshot; the
// renderers treat a missing field as a contract violation.
func TestLoadSettingsAreComplete(t *testing.T) {
	path := writeConfig(t, "project:\n  name: demo\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	for _, f := range cmock.Definition().Fields {
		_, ok := cfg.CMockSettings()[f.Key]
		assert.True(t, ok, "cmock settings missing %q", f.Key)
	}
	for _, f := range gcovr.Definition().Fields {
		_, ok := cfg.GcovrSettings()[f.Key]
		assert.True(t, ok, "gcovr settings missing %q", f.Key)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "gcovr:\n  fail-under-branch: \"10\"\n")
	t.Setenv("WREN_GCOVR_FAIL_UNDER_BRANCH", "70")

	cfg, err := Load(path)
	require.NoError(t, err)

	v, err := cfg.GcovrSettings().String("fail-under-branch")
	require.NoError(t, err)
	assert.Equal(t, "70", v)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "wren.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestLoadValidationFailure(t *testing.T) {
	path := writeConfig(t, `
cmock:
  when_no_prototypes: :explode
gcovr:
  html-high-threshold: "150"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cmock.when_no_prototypes")
	assert.Contains(t, err.Error(), "gcovr.html-high-threshold")
	assert.Contains(t, err.Error(), ":ignore, :warn, or :error")
}

func TestValidateThresholdValuesStayLiteral(t *testing.T) {
	// "0.0" is valid input; validation never normalizes it to "0".
	path := writeConfig(t, "gcovr:\n  fail-under-line: \"0.0\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	v, err := cfg.GcovrSettings().String("fail-under-line")
	require.NoError(t, err)
	assert.Equal(t, "0.0", v)
}

func TestValidationErrorsFormatting(t *testing.T) {
	errs := ValidationErrors{
		{Field: "gcovr.sort", Message: `unknown sort order "size"`, Suggestion: "use filename, uncovered-number, or uncovered-percent"},
	}
	assert.Contains(t, errs.Error(), "validation error at gcovr.sort")
	assert.Contains(t, errs.Error(), "Suggestion")

	errs = append(errs, ValidationError{Field: "gcovr.html-high-threshold", Message: "bad"})
	assert.Contains(t, errs.Error(), "found 2 validation errors")
}
