// Package config loads vec3calc scenario files.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/vecmath/pkg/vec3"
)

// DefaultEps is the tolerance used when a scenario does not set one.
const DefaultEps float32 = 1e-5

// File is the top level of a scenario file.
type File struct {
	LogLevel  string     `yaml:"log_level,omitempty"`
	Scenarios []Scenario `yaml:"scenarios"`

	// Path is set by LoadFile.
	Path string `yaml:"-"`
}

// Scenario describes one vector operation and, optionally, its expected
// outcome. Which operands are read depends on Op.
type Scenario struct {
	Name string `yaml:"name"`
	Op   string `yaml:"op"`

	A Vector   `yaml:"a,omitempty"`
	B Vector   `yaml:"b,omitempty"`
	C Vector   `yaml:"c,omitempty"`
	S *float32 `yaml:"s,omitempty"`

	Expect       Vector   `yaml:"expect,omitempty"`
	ExpectScalar *float32 `yaml:"expect_scalar,omitempty"`
	Eps          float32  `yaml:"eps,omitempty"`
}

// Tolerance returns Eps, or DefaultEps when it is unset.
func (s *Scenario) Tolerance() float32 {
	if s.Eps > 0 {
		return s.Eps
	}
	return DefaultEps
}

// Vector is a vec3.Vec3 written as a YAML sequence of 2 or 3 numbers.
// A two element sequence leaves Z at 0. Set reports whether the key was
// present in the document.
type Vector struct {
	V   vec3.Vec3
	Set bool
}

func Vec(x, y, z float32) Vector {
	return Vector{V: vec3.New(x, y, z), Set: true}
}

func (v *Vector) UnmarshalYAML(node *yaml.Node) error {
	var parts []float32
	if err := node.Decode(&parts); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	switch len(parts) {
	case 2:
		v.V = vec3.New(parts[0], parts[1], 0)
	case 3:
		v.V = vec3.New(parts[0], parts[1], parts[2])
	default:
		return fmt.Errorf("line %d: %w, got %d", node.Line, ErrMalformedVector, len(parts))
	}
	v.Set = true
	return nil
}

func (v Vector) MarshalYAML() (any, error) {
	return []float32{v.V.X, v.V.Y, v.V.Z}, nil
}

func (v Vector) IsZero() bool {
	return !v.Set
}

// Load decodes a scenario file from YAML.
func Load(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, err
	}
	return &f, nil
}

// LoadFile reads, decodes and validates the scenario file at path.
func LoadFile(path string) (*File, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	f, err := Load(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path

	if err = f.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Validate validates every scenario in the file.
func (f *File) Validate() error {
	seen := make(map[string]struct{}, len(f.Scenarios))
	for i := range f.Scenarios {
		s := &f.Scenarios[i]
		if err := s.Validate(); err != nil {
			return fmt.Errorf("scenario %d: %w", i, err)
		}
		if _, ok := seen[s.Name]; ok {
			return fmt.Errorf("scenario %d: %w: %s", i, ErrDuplicateName, s.Name)
		}
		seen[s.Name] = struct{}{}
	}
	return nil
}

func (s *Scenario) Validate() error {
	if s.Name == "" {
		return ErrMissingName
	}
	if s.Op == "" {
		return fmt.Errorf("%s: %w", s.Name, ErrMissingOp)
	}
	return nil
}
