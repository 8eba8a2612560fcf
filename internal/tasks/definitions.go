// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tasks

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

//go:embed tasks.yaml
var embedDefinitions embed.FS

// Definition describes one task as written in the definitions file.
type Definition struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Command     Command `yaml:"command"`
}

type definitionsFile struct {
	Tasks []Definition `yaml:"tasks"`
}

// readDefinitions parses and validates the definitions stored at path in fsys.
func readDefinitions(fsys fs.FS, path string) ([]Definition, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("error reading task definitions: %w", err)
	}

	return parseDefinitions(data)
}

func parseDefinitions(data []byte) ([]Definition, error) {
	var file definitionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	if len(file.Tasks) == 0 {
		return nil, fmt.Errorf("%w: no tasks defined", ErrInvalidDefinition)
	}

	seen := make(map[string]struct{}, len(file.Tasks))
	for i, def := range file.Tasks {
		if def.Name == "" {
			return nil, fmt.Errorf("%w: task #%d has no name", ErrInvalidDefinition, i+1)
		}
		if _, ok := seen[def.Name]; ok {
			return nil, fmt.Errorf("%w: task %q defined twice", ErrInvalidDefinition, def.Name)
		}
		seen[def.Name] = struct{}{}

		if !def.Command.valid() {
			return nil, fmt.Errorf("%w: %q in task %q", ErrUnknownCommand, def.Command, def.Name)
		}
	}

	return file.Tasks, nil
}
