// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package config holds the settings of a benchmark simulation.
package config

import (
	"os"
	"slices"
	"strings"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Structure names.
const (
	Trie  = "trie"
	Tree  = "tree"
	Array = "array"
)

// Output formats.
const (
	OutputTable = "table"
	OutputCSV   = "csv"
)

// Range is a half-open arithmetic progression of reference lengths.
type Range struct {
	Min  int `yaml:"min"`
	Max  int `yaml:"max"`
	Step int `yaml:"step"`
}

// Lengths returns Min, Min+Step, ... below Max.
func (r Range) Lengths() []int {
	if r.Step <= 0 {
		return nil
	}
	var out []int
	for l := r.Min; l < r.Max; l += r.Step {
		out = append(out, l)
	}
	return out
}

// ParseRange parses "min,max,step". Numbers may be written with exponents or
// unit prefixes, such as "1e3".
func ParseRange(s string) (Range, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Range{}, errors.Errorf("config: range %q: want min,max,step", s)
	}
	var v [3]int
	for i, p := range parts {
		f, err := strconv.ParsePrefix(strings.TrimSpace(p), strconv.AutoParse)
		if err != nil {
			return Range{}, errors.Wrapf(err, "config: range %q", s)
		}
		v[i] = int(f)
	}
	return Range{Min: v[0], Max: v[1], Step: v[2]}, nil
}

// Simulation configures a benchmark run.
type Simulation struct {
	Reference  string   `yaml:"reference"`
	RefLengths Range    `yaml:"ref_lengths"`
	Reads      int      `yaml:"n_reads"`
	ErrorRate  float64  `yaml:"error_rate"`
	ReadLength int      `yaml:"n_size"`
	Seed       int64    `yaml:"seed"`
	Structures []string `yaml:"structures"`
	Output     string   `yaml:"output"`
}

// Default returns the default simulation settings.
func Default() Simulation {
	return Simulation{
		RefLengths: Range{Min: 1000, Max: 5000, Step: 1000},
		Reads:      5,
		ErrorRate:  0.05,
		ReadLength: 200,
		Seed:       1,
		Structures: []string{Trie, Tree, Array},
		Output:     OutputTable,
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Simulation, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "config: read")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: parse %s", path)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (s Simulation) Validate() error {
	switch {
	case s.RefLengths.Step <= 0:
		return errors.Errorf("config: ref_lengths step %d must be positive", s.RefLengths.Step)
	case s.RefLengths.Min <= 0 || s.RefLengths.Min >= s.RefLengths.Max:
		return errors.Errorf("config: ref_lengths [%d, %d) is empty", s.RefLengths.Min, s.RefLengths.Max)
	case s.Reads <= 0:
		return errors.Errorf("config: n_reads %d must be positive", s.Reads)
	case s.ReadLength <= 0:
		return errors.Errorf("config: n_size %d must be positive", s.ReadLength)
	case s.ErrorRate < 0 || s.ErrorRate > 1:
		return errors.Errorf("config: error_rate %v outside [0, 1]", s.ErrorRate)
	case len(s.Structures) == 0:
		return errors.New("config: no structures")
	case s.Output != OutputTable && s.Output != OutputCSV:
		return errors.Errorf("config: unknown output %q", s.Output)
	}
	for _, name := range s.Structures {
		if !slices.Contains([]string{Trie, Tree, Array}, name) {
			return errors.Errorf("config: unknown structure %q", name)
		}
	}
	return nil
}
