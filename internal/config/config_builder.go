// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"dario.cat/mergo"
)

// configBuilder assembles the initial configuration from layers. Layers are
// merged in the order they were added and earlier layers win.
type configBuilder struct {
	layers []map[string]string
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		layers: make([]map[string]string, 0, 3),
	}
}

func (b *configBuilder) build() (*Configuration, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	values := make(map[string]string)
	for _, layer := range b.layers {
		if err := mergo.Merge(&values, layer); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	cfg := newConfiguration(values)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// withSeed adds values supplied by the caller that triggered materialization.
func (b *configBuilder) withSeed(seed map[string]string) *configBuilder {
	if len(seed) > 0 {
		b.layers = append(b.layers, seed)
	}

	return b
}

// withConnection resolves [KeyConnection] unless an earlier layer already
// provides a non-empty value.
func (b *configBuilder) withConnection(resolver ConnectionResolver) *configBuilder {
	for _, layer := range b.layers {
		if layer[KeyConnection] != "" {
			return b
		}
	}

	connection, err := resolver.Resolve()
	if err != nil {
		b.err = err
		return b
	}

	b.layers = append(b.layers, map[string]string{KeyConnection: connection})
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.layers = append(b.layers, map[string]string{
		KeyMigrations: DefaultMigrations,
		KeyNamespace:  DefaultNamespace,
	})

	return b
}
