// Package project locates and identifies wren projects: directories
// carrying a wren.yml configuration file.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the configuration file marking a project root.
const ConfigFileName = "wren.yml"

// Info describes a detected wren project.
type Info struct {
	Root       string // directory containing wren.yml
	ConfigPath string // full path to wren.yml
	Name       string // project name from the config, may be empty
}

// IsProject checks if a directory contains wren.yml.
func IsProject(rootPath string) bool {
	_, err := os.Stat(filepath.Join(rootPath, ConfigFileName))
	return err == nil
}

// Find walks up from startDir looking for wren.yml and returns the
// project info. Returns an error when no project root is found.
func Find(startDir string) (*Info, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", startDir, err)
	}

	for {
		if IsProject(dir) {
			return detect(dir)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("%s not found in %s or any parent directory", ConfigFileName, startDir)
		}
		dir = parent
	}
}

// detect reads the project name out of wren.yml. A config that fails to
// parse here still counts as a project; full parsing and validation happen
// in the config package.
func detect(root string) (*Info, error) {
	configPath := filepath.Join(root, ConfigFileName)

	info := &Info{Root: root, ConfigPath: configPath}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", configPath, err)
	}

	var header struct {
		Project struct {
			Name string `yaml:"name"`
		} `yaml:"project"`
	}
	if err := yaml.Unmarshal(data, &header); err == nil {
		info.Name = header.Project.Name
	}

	return info, nil
}
