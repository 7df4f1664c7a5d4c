package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/improc/features"
	"github.com/gogpu/improc/filter"
)

// Config holds the tunables of every subcommand. A YAML file passed with
// --config overrides the defaults; flags set on the command line override
// the file.
//
// Example file:
//
//	harris:
//	  threshold: 0.2
//	orb:
//	  levels: 3
//	  suppression_radius: 8
//	match:
//	  ratio: 0.7
//	filter:
//	  size: 2
//	  padding: zeros
type Config struct {
	Harris features.HarrisConfig `yaml:"harris"`
	FAST   features.FASTConfig   `yaml:"fast"`
	ORB    features.ORBConfig    `yaml:"orb"`
	Match  MatchConfig           `yaml:"match"`
	Filter FilterConfig          `yaml:"filter"`
}

// MatchConfig configures descriptor matching.
type MatchConfig struct {
	// Ratio is the Lowe ratio-test threshold in (0,1].
	Ratio float64 `yaml:"ratio"`
}

// FilterConfig configures the filter subcommands.
type FilterConfig struct {
	// Size is the window half-size: the window is (2·Size+1)² pixels.
	Size int `yaml:"size"`

	// Sigma is the Gaussian standard deviation.
	Sigma float64 `yaml:"sigma"`

	// Padding is "zeros" or "repeat".
	Padding string `yaml:"padding"`

	// Noise is the salt-and-pepper percentage applied before filtering.
	Noise int `yaml:"noise"`
}

// DefaultConfig returns the library defaults.
func DefaultConfig() Config {
	return Config{
		Harris: features.DefaultHarrisConfig(),
		FAST:   features.DefaultFASTConfig(),
		ORB:    features.DefaultORBConfig(),
		Match:  MatchConfig{Ratio: 0.8},
		Filter: FilterConfig{Size: 1, Sigma: 1, Padding: "repeat"},
	}
}

// Load overlays the YAML file at path onto c. Unknown keys are rejected.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return c.Validate()
}

// Validate reports the first out-of-range value.
func (c *Config) Validate() error {
	switch {
	case c.ORB.Levels < 1:
		return fmt.Errorf("orb.levels must be at least 1, got %d", c.ORB.Levels)
	case c.ORB.PatchRadius < 0:
		return fmt.Errorf("orb.patch_radius must not be negative, got %d", c.ORB.PatchRadius)
	case !(c.Match.Ratio > 0 && c.Match.Ratio <= 1):
		return fmt.Errorf("match.ratio must be in (0,1], got %v", c.Match.Ratio)
	case c.Filter.Size < 0:
		return fmt.Errorf("filter.size must not be negative, got %d", c.Filter.Size)
	case c.Filter.Noise < 0 || c.Filter.Noise > 100:
		return fmt.Errorf("filter.noise must be in [0,100], got %d", c.Filter.Noise)
	}
	_, err := parsePadding(c.Filter.Padding)
	return err
}

func parsePadding(s string) (filter.Padding, error) {
	switch strings.ToLower(s) {
	case "zeros":
		return filter.Zeros, nil
	case "repeat":
		return filter.Repeat, nil
	default:
		return 0, fmt.Errorf("unknown padding %q (want zeros or repeat)", s)
	}
}
