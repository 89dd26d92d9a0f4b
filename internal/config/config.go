// Package config loads optional defaults for the CLI from a YAML file.
// Flags always win over file values; the file only fills in what the user
// did not pass on the command line.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory, then in $HOME.
const DefaultFileName = ".article-translate.yaml"

// File holds the optional defaults.
type File struct {
	Provider    string `yaml:"provider"`
	Model       string `yaml:"model"`
	Target      string `yaml:"target"`
	MaxChunks   int    `yaml:"max_chunks"`
	Concurrency int    `yaml:"concurrency"`
	TokenBudget int    `yaml:"token_budget"`
}

// Load reads the config file at path. An empty path searches the default
// locations; a missing file is not an error and yields zero defaults.
func Load(path string) (File, error) {
	explicit := path != ""
	if !explicit {
		path = locate()
		if path == "" {
			return File{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return f, nil
}

func locate() string {
	if wd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(wd, DefaultFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, DefaultFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
