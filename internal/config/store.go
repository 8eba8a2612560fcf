// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-migrate-tasks/internal/connection"
	"github.com/MKhiriev/go-migrate-tasks/internal/logger"
)

// TasksFile is the task definitions resource handed to the [TaskLoader].
const TasksFile = "tasks.yaml"

// Store owns the process configuration. It is UNINITIALIZED until the first
// [Store.Configuration], [Store.Get] or [Store.Set], and INITIALIZED
// afterwards for its whole lifetime.
//
// A Store is safe for concurrent use; the connection is resolved at most once.
type Store struct {
	mu  sync.Mutex
	cfg *Configuration

	resolver ConnectionResolver
	loader   TaskLoader
	logger   *logger.Logger
}

// NewStore returns an uninitialized store. A nil resolver defaults to a
// [connection.Resolver] without override. loader may be nil when tasks are
// never loaded; log may be nil to discard output.
func NewStore(resolver ConnectionResolver, loader TaskLoader, log *logger.Logger) *Store {
	if resolver == nil {
		resolver = connection.NewResolver()
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Store{
		resolver: resolver,
		loader:   loader,
		logger:   log,
	}
}

// Configuration returns the live configuration, building it on the first
// call. A failed build publishes nothing and is retried by the next call.
func (s *Store) Configuration() (*Configuration, error) {
	return s.materialize(nil)
}

// Get returns the value for key. On first access it may fail with the
// resolver's error; unknown keys yield a [*KeyNotFoundError].
func (s *Store) Get(key string) (string, error) {
	cfg, err := s.materialize(nil)
	if err != nil {
		return "", err
	}

	return cfg.Get(key)
}

// Set inserts or replaces key, materializing the configuration if needed.
// Setting [KeyConnection] before the first read supplies the connection
// directly and skips the resolver.
func (s *Store) Set(key, value string) error {
	var seed map[string]string
	if key == KeyConnection {
		seed = map[string]string{KeyConnection: value}
	}

	cfg, err := s.materialize(seed)
	if err != nil {
		return err
	}

	cfg.Set(key, value)
	return nil
}

// Configure runs fn with a [Builder] bound to the store. Values set before
// fn returns an error stay set.
func (s *Store) Configure(fn func(b *Builder) error) error {
	return fn(&Builder{store: s})
}

// LoadTasks hands [TasksFile] to the task loader together with the store.
// Repeated calls are passed through; rejecting them is up to the loader.
func (s *Store) LoadTasks(ctx context.Context) error {
	if s.loader == nil {
		return ErrNoTaskLoader
	}

	if err := s.loader.Load(ctx, TasksFile, s); err != nil {
		return fmt.Errorf("error loading tasks from %s: %w", TasksFile, err)
	}

	s.logger.Debug().Str("tasks", TasksFile).Msg("tasks loaded")
	return nil
}

func (s *Store) materialize(seed map[string]string) (*Configuration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg != nil {
		return s.cfg, nil
	}

	cfg, err := newConfigBuilder().
		withSeed(seed).
		withConnection(s.resolver).
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	s.cfg = cfg
	s.logger.Debug().
		Str(KeyMigrations, cfg.Migrations()).
		Str(KeyNamespace, cfg.Namespace()).
		Msg("configuration materialized")

	return cfg, nil
}

// Builder is the mutation session passed to [Store.Configure].
type Builder struct {
	store *Store
}

// Set forwards to [Store.Set].
func (b *Builder) Set(key, value string) error {
	return b.store.Set(key, value)
}

// Get forwards to [Store.Get].
func (b *Builder) Get(key string) (string, error) {
	return b.store.Get(key)
}
