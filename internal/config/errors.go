// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is matched by the [*KeyNotFoundError] returned by Get
	// for keys that were never set.
	ErrKeyNotFound = errors.New("configuration key not found")

	// ErrMissingRequiredKey indicates a materialized configuration without one
	// of the built-in keys. It signals a programming error in the builder.
	ErrMissingRequiredKey = errors.New("required configuration key is missing")

	// ErrNoTaskLoader is returned by [Store.LoadTasks] when the store was
	// created without a [TaskLoader].
	ErrNoTaskLoader = errors.New("no task loader configured")
)

// KeyNotFoundError reports a Get for a key that has no value.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrKeyNotFound, e.Key)
}

// Is reports whether target is [ErrKeyNotFound].
func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}
