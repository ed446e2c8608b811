// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ik5/fixgen/fixture"
	"github.com/ik5/fixgen/internal/logging"
)

// ErrUnknownFileType indicates a request file whose extension is neither YAML nor TOML.
var ErrUnknownFileType = errors.New("request file must be .yaml, .yml or .toml")

// File is the on-disk request format. Pointer fields distinguish "absent"
// from an explicit zero.
type File struct {
	Dir        string   `yaml:"dir" toml:"dir"`
	Count      *int     `yaml:"count" toml:"count"`
	Extensions []string `yaml:"extensions" toml:"extensions"`
	MinSizeKB  *int     `yaml:"min_size_kb" toml:"min_size_kb"`
	MaxSizeKB  *int     `yaml:"max_size_kb" toml:"max_size_kb"`
	FilePrefix string   `yaml:"file_prefix" toml:"file_prefix"`
	Seed       *uint64  `yaml:"seed" toml:"seed"`
	Workers    *int     `yaml:"workers" toml:"workers"`
	SizePolicy string   `yaml:"size_policy" toml:"size_policy"`
	FailFast   *bool    `yaml:"fail_fast" toml:"fail_fast"`
	Verify     *bool    `yaml:"verify" toml:"verify"`
	Progress   *bool    `yaml:"progress" toml:"progress"`
	Log        struct {
		Level  string `yaml:"level" toml:"level"`
		Format string `yaml:"format" toml:"format"`
	} `yaml:"log" toml:"log"`
}

// LoadFile reads a request file, picking the decoder by extension.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file %s: %w", path, err)
	}

	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse YAML request %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse TOML request %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, path)
	}

	return &f, nil
}

func (c *Config) applyFile(f *File) error {
	if f.Dir != "" {
		c.Dir = expandPath(f.Dir)
	}
	if f.Count != nil {
		c.Count = *f.Count
	}
	if len(f.Extensions) > 0 {
		c.Extensions = f.Extensions
	}
	if f.MinSizeKB != nil {
		c.MinSizeKB = *f.MinSizeKB
	}
	if f.MaxSizeKB != nil {
		c.MaxSizeKB = *f.MaxSizeKB
	}
	if f.FilePrefix != "" {
		c.FilePrefix = f.FilePrefix
	}
	if f.Seed != nil {
		c.Seed = *f.Seed
		c.SeedSet = true
	}
	if f.Workers != nil {
		c.Workers = *f.Workers
	}
	if f.SizePolicy != "" {
		policy, err := fixture.ParseSizePolicy(f.SizePolicy)
		if err != nil {
			return err
		}
		c.SizePolicy = policy
	}
	if f.FailFast != nil {
		c.FailFast = *f.FailFast
	}
	if f.Verify != nil {
		c.Verify = *f.Verify
	}
	if f.Progress != nil {
		c.Progress = *f.Progress
	}
	c.Log = logging.Config{Level: f.Log.Level, Format: f.Log.Format}.Merge(c.Log)

	return nil
}

func expandPath(value string) string {
	trimmed := strings.TrimSpace(value)
	if home, err := os.UserHomeDir(); err == nil {
		trimmed = strings.ReplaceAll(trimmed, "{{HOME}}", home)
	}
	return os.ExpandEnv(trimmed)
}
