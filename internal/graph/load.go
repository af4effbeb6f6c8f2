package graph

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoEntities is returned for graph files that parse but describe
// nothing to lay out.
var ErrNoEntities = errors.New("graph has no entities")

// File is the on-disk graph description consumed by the CLI.
type File struct {
	Name     string   `yaml:"name"`
	Seed     int64    `yaml:"seed"`
	Entities []Entity `yaml:"entities"`
}

// LoadFile reads a YAML entity set and builds the layout model from it.
func LoadFile(path string) (*Model, *File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("parse graph file: %w", err)
	}
	if len(f.Entities) == 0 {
		return nil, nil, fmt.Errorf("graph file %s: %w", path, ErrNoEntities)
	}
	seed := f.Seed
	if seed == 0 {
		seed = 42
	}
	return Build(f.Entities, seed), &f, nil
}
