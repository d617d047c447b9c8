package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// matrixFile is the on-disk input. JSON documents parse too, since JSON is
// a subset of YAML.
type matrixFile struct {
	Labels    []string    `yaml:"labels"`
	Distances [][]float64 `yaml:"distances"`
}

// italyCities is the built-in example: road distances in km between six
// Italian cities.
var italyCities = matrixFile{
	Labels: []string{"BA", "FI", "MI", "NA", "RM", "TO"},
	Distances: [][]float64{
		{0, 662, 877, 255, 412, 996},
		{662, 0, 295, 468, 268, 400},
		{877, 295, 0, 754, 564, 138},
		{255, 468, 754, 0, 219, 869},
		{412, 268, 564, 219, 0, 669},
		{996, 400, 138, 869, 669, 0},
	},
}

// loadMatrix reads path, or returns the built-in example when path is empty.
// Missing labels default to the point indices.
func loadMatrix(path string) (*matrixFile, error) {
	if path == "" {
		m := italyCities
		return &m, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read matrix: %w", err)
	}

	var m matrixFile
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse matrix %s: %w", path, err)
	}
	if len(m.Distances) == 0 {
		return nil, fmt.Errorf("parse matrix %s: no distances", path)
	}

	switch {
	case len(m.Labels) == 0:
		m.Labels = make([]string, len(m.Distances))
		for i := range m.Labels {
			m.Labels[i] = strconv.Itoa(i)
		}
	case len(m.Labels) != len(m.Distances):
		return nil, fmt.Errorf("parse matrix %s: %d labels for %d rows", path, len(m.Labels), len(m.Distances))
	}
	return &m, nil
}
