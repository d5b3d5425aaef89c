// Package vectors loads declarative test-vector files for the path-safety
// checks. Vector files keep the concrete scenario tables out of test code so
// the same cases can run against every path style.
package vectors

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the top-level shape of a vectors YAML file.
type File struct {
	Join   []JoinCase   `yaml:"join"`
	Parent []ParentCase `yaml:"parent"`
	Root   []RootCase   `yaml:"root"`
}

// Outcome states whether a checked operation must be accepted or rejected.
type Outcome string

const (
	OK     Outcome = "ok"
	Unsafe Outcome = "unsafe"
)

// UnmarshalYAML restricts Outcome to its two valid spellings.
func (o *Outcome) UnmarshalYAML(value *yaml.Node) error {
	var v string
	if err := value.Decode(&v); err != nil {
		return err
	}
	switch Outcome(v) {
	case OK, Unsafe:
		*o = Outcome(v)
		return nil
	default:
		return fmt.Errorf("outcome must be %q or %q, got %q", OK, Unsafe, v)
	}
}

// JoinCase describes one join scenario. Result is the expected joined path
// whenever at least one mode accepts, written with forward slashes.
type JoinCase struct {
	Name     string  `yaml:"name"`
	Base     string  `yaml:"base"`
	Fragment string  `yaml:"fragment"`
	Strict   Outcome `yaml:"strict"`
	Relaxed  Outcome `yaml:"relaxed"`
	Result   string  `yaml:"result,omitempty"`
}

// ParentCase describes one parent scenario. NoParent marks the accepted
// outcome where the path has no parent at all, such as the relaxed parent
// of the root.
type ParentCase struct {
	Name     string  `yaml:"name"`
	Base     string  `yaml:"base"`
	Strict   Outcome `yaml:"strict"`
	Relaxed  Outcome `yaml:"relaxed"`
	Result   string  `yaml:"result,omitempty"`
	NoParent bool    `yaml:"no-parent,omitempty"`
}

// RootCase describes one root-detector scenario.
type RootCase struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
	Root bool   `yaml:"root"`
}

// Load reads and validates a vector file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if err := Validate(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks required fields and internal consistency.
func Validate(f *File) error {
	if len(f.Join) == 0 && len(f.Parent) == 0 && len(f.Root) == 0 {
		return errors.New("vector file defines no cases")
	}
	for i, c := range f.Join {
		if c.Name == "" {
			return fmt.Errorf("join case %d: name is required", i)
		}
		if c.Strict == "" || c.Relaxed == "" {
			return fmt.Errorf("join case %q: strict and relaxed verdicts are required", c.Name)
		}
		if c.Strict == OK && c.Relaxed == Unsafe {
			return fmt.Errorf("join case %q: strict ok but relaxed unsafe", c.Name)
		}
		if c.Relaxed == OK && c.Result == "" {
			return fmt.Errorf("join case %q: accepted joins must state a result", c.Name)
		}
	}
	for i, c := range f.Parent {
		if c.Name == "" {
			return fmt.Errorf("parent case %d: name is required", i)
		}
		if c.Strict == "" || c.Relaxed == "" {
			return fmt.Errorf("parent case %q: strict and relaxed verdicts are required", c.Name)
		}
		if c.Strict == OK && c.Relaxed == Unsafe {
			return fmt.Errorf("parent case %q: strict ok but relaxed unsafe", c.Name)
		}
		if c.NoParent && c.Result != "" {
			return fmt.Errorf("parent case %q: no-parent cases cannot state a result", c.Name)
		}
	}
	for i, c := range f.Root {
		if c.Name == "" {
			return fmt.Errorf("root case %d: name is required", i)
		}
	}
	return nil
}
