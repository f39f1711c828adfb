package rolltable

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlTableFile is the top-level YAML structure for roll-table files.
type yamlTableFile struct {
	Table Table `yaml:"table"`
}

// LoadFromBytes parses and validates a roll table from YAML bytes.
//
// Precondition: data must be valid YAML conforming to the table schema.
// Postcondition: Returns a validated Table or a non-nil error.
func LoadFromBytes(data []byte) (*Table, error) {
	var file yamlTableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing roll table YAML: %w", err)
	}

	table := file.Table
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("validating roll table: %w", err)
	}
	return &table, nil
}

// LoadFromFile reads and validates a single roll-table YAML file.
//
// Precondition: path must point to a valid YAML roll-table file.
// Postcondition: Returns a validated Table or a non-nil error.
func LoadFromFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roll table file %s: %w", path, err)
	}
	return LoadFromBytes(data)
}

// LoadDir loads every *.yaml and *.yml file in dir, keyed by table name.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all validated tables or an error naming the first
// file that failed; duplicate table names across files are an error.
func LoadDir(dir string) (map[string]*Table, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading roll table dir %s: %w", dir, err)
	}

	tables := make(map[string]*Table)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, e.Name())
		table, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		if _, exists := tables[table.Name]; exists {
			return nil, fmt.Errorf("duplicate roll table name %q in %s", table.Name, path)
		}
		tables[table.Name] = table
	}

	return tables, nil
}
