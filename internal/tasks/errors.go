// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tasks

import "errors"

var (
	// ErrTaskAlreadyRegistered is returned by [Registry.Register] for a name
	// that is already taken, e.g. when definitions are loaded twice.
	ErrTaskAlreadyRegistered = errors.New("task already registered")

	// ErrTaskNotFound is returned when running a task that was never registered.
	ErrTaskNotFound = errors.New("task not found")

	// ErrUnknownCommand is returned for a definition naming an unsupported
	// goose command.
	ErrUnknownCommand = errors.New("unknown task command")

	// ErrInvalidDefinition is returned for a malformed task definitions file.
	ErrInvalidDefinition = errors.New("invalid task definition")
)
