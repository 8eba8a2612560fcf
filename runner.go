// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migratetasks

import (
	"context"
	"io/fs"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-migrate-tasks/internal/config"
	"github.com/MKhiriev/go-migrate-tasks/internal/connection"
	"github.com/MKhiriev/go-migrate-tasks/internal/logger"
	"github.com/MKhiriev/go-migrate-tasks/internal/tasks"
)

type (
	// Builder is the mutation session passed to [Runner.Configure].
	Builder = config.Builder
	// Configuration is the materialized key/value configuration.
	Configuration = config.Configuration
	// Task is a registered, namespaced migration task.
	Task = tasks.Task
	// ConfigurationError reports that no connection string is available.
	ConfigurationError = connection.ConfigurationError
	// KeyNotFoundError reports a read of a key that was never set.
	KeyNotFoundError = config.KeyNotFoundError
)

// Configuration keys and their defaults.
const (
	KeyConnection = config.KeyConnection
	KeyMigrations = config.KeyMigrations
	KeyNamespace  = config.KeyNamespace

	DefaultMigrations = config.DefaultMigrations
	DefaultNamespace  = config.DefaultNamespace

	EnvDatabaseURL = connection.EnvDatabaseURL
)

// Sentinel errors, matched with errors.Is.
var (
	ErrMissingConnection     = connection.ErrMissingConnection
	ErrKeyNotFound           = config.ErrKeyNotFound
	ErrTaskAlreadyRegistered = tasks.ErrTaskAlreadyRegistered
	ErrTaskNotFound          = tasks.ErrTaskNotFound
)

// Runner wires the connection resolver, the configuration store and the task
// engine together. Create one per process with [New].
type Runner struct {
	resolver *connection.Resolver
	store    *config.Store
	engine   *tasks.Engine
}

type options struct {
	logger     *logger.Logger
	engineOpts []tasks.Option
}

// Option configures a [Runner].
type Option func(*options)

// WithLogger sets the logger used by the store and the engine.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger.Logger{Logger: l}
	}
}

// WithTaskDefinitions makes the engine read task definitions from fsys
// instead of the embedded tasks.yaml. fsys must contain a tasks.yaml file.
func WithTaskDefinitions(fsys fs.FS) Option {
	return func(o *options) {
		o.engineOpts = append(o.engineOpts, tasks.WithFS(fsys))
	}
}

// New returns a Runner with no connection override and an uninitialized
// configuration.
func New(opts ...Option) *Runner {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.NewLogger("migrate-tasks")
	}

	resolver := connection.NewResolver()
	engine := tasks.NewEngine(o.logger.WithStr("component", "tasks"), o.engineOpts...)

	return &Runner{
		resolver: resolver,
		store:    config.NewStore(resolver, engine, o.logger.WithStr("component", "config")),
		engine:   engine,
	}
}

// SetConnection sets the explicit connection string. It has no effect on a
// configuration that has already been read.
func (r *Runner) SetConnection(url string) {
	r.resolver.SetOverride(url)
}

// Connection returns the explicit connection string, if one was set.
func (r *Runner) Connection() (string, bool) {
	return r.resolver.Override()
}

// Configuration returns the live configuration, building it on first use.
func (r *Runner) Configuration() (*Configuration, error) {
	return r.store.Configuration()
}

// Configure runs fn against the configuration store.
func (r *Runner) Configure(fn func(b *Builder) error) error {
	return r.store.Configure(fn)
}

// Set inserts or replaces a configuration value.
func (r *Runner) Set(key, value string) error {
	return r.store.Set(key, value)
}

// Get returns a configuration value.
func (r *Runner) Get(key string) (string, error) {
	return r.store.Get(key)
}

// LoadTasks registers the migration tasks with the engine. Calling it twice
// fails with [ErrTaskAlreadyRegistered].
func (r *Runner) LoadTasks(ctx context.Context) error {
	return r.store.LoadTasks(ctx)
}

// Tasks lists the registered tasks.
func (r *Runner) Tasks() []Task {
	return r.engine.Tasks()
}

// Run executes a registered task, e.g. "sequel:migrate".
func (r *Runner) Run(ctx context.Context, name string) error {
	return r.engine.Run(ctx, name)
}
