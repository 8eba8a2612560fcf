// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tasks

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-migrate-tasks/internal/config"
)

// Task is a registered, namespaced task.
type Task struct {
	// Name is the qualified name, "<namespace>:<definition name>".
	Name        string
	Description string
	Command     Command

	values config.Values
}

// Registry holds registered tasks by qualified name.
type Registry struct {
	mu    sync.RWMutex
	tasks map[string]Task
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tasks: make(map[string]Task)}
}

// Register adds task, refusing names that are already taken.
func (r *Registry) Register(task Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[task.Name]; ok {
		return fmt.Errorf("%w: %q", ErrTaskAlreadyRegistered, task.Name)
	}

	r.tasks[task.Name] = task
	return nil
}

// Lookup returns the task registered under name.
func (r *Registry) Lookup(name string) (Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[name]
	if !ok {
		return Task{}, fmt.Errorf("%w: %q", ErrTaskNotFound, name)
	}

	return task, nil
}

// Tasks returns all registered tasks sorted by name.
func (r *Registry) Tasks() []Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		list = append(list, task)
	}
	slices.SortFunc(list, func(a, b Task) int {
		return strings.Compare(a.Name, b.Name)
	})

	return list
}
