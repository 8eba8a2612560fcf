// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tasks

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-migrate-tasks/internal/config"
	"github.com/MKhiriev/go-migrate-tasks/internal/logger"
	"github.com/MKhiriev/go-migrate-tasks/internal/store"
)

var _ config.TaskLoader = (*Engine)(nil)

// opener opens the database for a connection string.
type opener func(ctx context.Context, connection string, log *logger.Logger) (*store.DB, error)

// Engine loads task definitions and runs the registered tasks.
type Engine struct {
	fsys     fs.FS
	registry *Registry
	open     opener
	commands map[Command]commandFunc
	logger   *logger.Logger
}

// Option configures an [Engine].
type Option func(*Engine)

// WithFS makes the engine read definitions from fsys instead of the embedded
// tasks.yaml.
func WithFS(fsys fs.FS) Option {
	return func(e *Engine) {
		e.fsys = fsys
	}
}

// WithRegistry makes the engine register tasks into r.
func WithRegistry(r *Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// NewEngine returns an engine reading the embedded definitions.
// log may be nil to discard output.
func NewEngine(log *logger.Logger, opts ...Option) *Engine {
	if log == nil {
		log = logger.Nop()
	}

	e := &Engine{
		fsys:     embedDefinitions,
		registry: NewRegistry(),
		open:     store.Open,
		commands: gooseCommands,
		logger:   log,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Load reads the definitions at path and registers them as
// "<namespace>:<name>". Loading the same definitions twice fails with
// [ErrTaskAlreadyRegistered].
func (e *Engine) Load(ctx context.Context, path string, values config.Values) error {
	defs, err := readDefinitions(e.fsys, path)
	if err != nil {
		return err
	}

	namespace, err := values.Get(config.KeyNamespace)
	if err != nil {
		return fmt.Errorf("error getting task namespace: %w", err)
	}

	for _, def := range defs {
		task := Task{
			Name:        namespace + ":" + def.Name,
			Description: def.Description,
			Command:     def.Command,
			values:      values,
		}
		if err := e.registry.Register(task); err != nil {
			return err
		}
	}

	e.logger.Debug().Str("namespace", namespace).Int("count", len(defs)).Msg("registered tasks")
	return nil
}

// Tasks returns the registered tasks sorted by name.
func (e *Engine) Tasks() []Task {
	return e.registry.Tasks()
}

// Run executes the task registered under name. The connection and migrations
// directory are read from the configuration at this point.
func (e *Engine) Run(ctx context.Context, name string) error {
	task, err := e.registry.Lookup(name)
	if err != nil {
		return err
	}

	fn, ok := e.commands[task.Command]
	if !ok {
		return fmt.Errorf("%w: %q in task %q", ErrUnknownCommand, task.Command, name)
	}

	connection, err := task.values.Get(config.KeyConnection)
	if err != nil {
		return fmt.Errorf("error getting connection for %s: %w", name, err)
	}
	dir, err := task.values.Get(config.KeyMigrations)
	if err != nil {
		return fmt.Errorf("error getting migrations for %s: %w", name, err)
	}

	log := e.logger.WithStr("run_id", uuid.NewString()).WithStr("task", name)
	ctx = log.WithContext(ctx)

	db, err := e.open(ctx, connection, log)
	if err != nil {
		return fmt.Errorf("error opening database for %s: %w", name, err)
	}
	defer db.Close()

	log.Info().Str("command", string(task.Command)).Str("migrations", dir).Msg("running task")
	if err := runGoose(ctx, db.Dialect, log, fn, db.DB, dir); err != nil {
		return fmt.Errorf("task %s failed: %w", name, err)
	}
	log.Info().Msg("task finished")

	return nil
}
