// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/electorate/models"
)

// File is the on-disk layout of a baseline dataset.
type File struct {
	Candidates models.Candidates `json:"candidates" yaml:"candidates"`
	Categories []models.Category `json:"categories" yaml:"categories"`
}

// LoadFile reads a baseline from a .json, .yaml or .yml file.
func LoadFile(path string) (*Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported dataset extension %q", ext)
	}
}

// ParseJSON decodes and validates a JSON dataset.
func ParseJSON(data []byte) (*Baseline, error) {
	var f File
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	return f.Baseline()
}

// ParseYAML decodes and validates a YAML dataset.
func ParseYAML(data []byte) (*Baseline, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	return f.Baseline()
}

// Baseline validates the file contents. Missing candidate labels fall back
// to DefaultCandidates.
func (f File) Baseline() (*Baseline, error) {
	candidates := f.Candidates
	if candidates.A == "" {
		candidates.A = DefaultCandidates.A
	}
	if candidates.B == "" {
		candidates.B = DefaultCandidates.B
	}
	if candidates.Other == "" {
		candidates.Other = DefaultCandidates.Other
	}
	return New(candidates, f.Categories...)
}

// Export returns the baseline in file layout.
func (b *Baseline) Export() File {
	return File{Candidates: b.Candidates(), Categories: b.Categories()}
}
