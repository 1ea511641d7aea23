// Package config loads wren.yml and builds the fully populated settings
// snapshots the renderers require.
//
// Every field a tool schema declares is present in the snapshot: the
// schema default is registered with viper up front, then overridden by the
// config file and WREN_* environment variables. The renderers themselves
// never default anything.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/wrenkit/wren/internal/generators/cmock"
	"github.com/wrenkit/wren/internal/generators/gcovr"
	"github.com/wrenkit/wren/internal/schema"
)

// Config is the parsed wren.yml plus the per-tool settings snapshots.
type Config struct {
	ProjectName string
	OutputDir   string

	cmock schema.Settings
	gcovr schema.Settings
}

// Load reads the config file at path. Defaults come from the tool schemas;
// environment variables prefixed WREN_ override file values
// (e.g. WREN_GCOVR_FAIL_UNDER_LINE=85).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("WREN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("project.name", "")
	v.SetDefault("output.dir", "build")
	registerDefaults(v, "cmock", cmock.Definition())
	registerDefaults(v, "gcovr", gcovr.Definition())

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg := &Config{
		ProjectName: v.GetString("project.name"),
		OutputDir:   v.GetString("output.dir"),
		cmock:       buildSettings(v, "cmock", cmock.Definition()),
		gcovr:       buildSettings(v, "gcovr", gcovr.Definition()),
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs
	}

	return cfg, nil
}

// CMockSettings returns the snapshot for the CMock renderer.
func (c *Config) CMockSettings() schema.Settings {
	return c.cmock
}

// GcovrSettings returns the snapshot for the gcovr renderer.
func (c *Config) GcovrSettings() schema.Settings {
	return c.gcovr
}

// registerDefaults seeds viper with every schema default, keyed under the
// tool section. Keeping this schema-driven means a new field needs no
// config-package change.
func registerDefaults(v *viper.Viper, section string, def schema.SchemaDefinition) {
	for _, f := range def.Fields {
		v.SetDefault(section+"."+f.Key, f.Default)
	}
}

// buildSettings extracts one value per schema field using the getter that
// matches the declared kind. Viper coerces scalars, so numeric thresholds
// written unquoted in YAML still arrive as strings.
func buildSettings(v *viper.Viper, section string, def schema.SchemaDefinition) schema.Settings {
	s := make(schema.Settings, len(def.Fields))
	for _, f := range def.Fields {
		key := section + "." + f.Key
		switch f.Kind {
		case schema.KindString:
			s[f.Key] = v.GetString(key)
		case schema.KindBool:
			s[f.Key] = v.GetBool(key)
		case schema.KindList, schema.KindMapping:
			s[f.Key] = v.GetStringSlice(key)
		}
	}
	return s
}
