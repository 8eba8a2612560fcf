// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tasks is the task engine the configuration store hands control to.
//
// [Engine.Load] reads task definitions (by default the embedded tasks.yaml),
// qualifies every task name with the configured namespace and registers it.
// [Engine.Run] executes a registered task with goose against the configured
// connection and migrations directory. Both values are read when the task
// runs, not when it is loaded.
package tasks
