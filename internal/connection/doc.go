// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package connection resolves the database connection string used by the
// migration tasks.
//
// Sources are consulted in a fixed order:
//  1. An explicit override set with [Resolver.SetOverride]
//  2. The DATABASE_URL environment variable
//
// When neither source yields a value, [Resolver.Resolve] returns a
// [*ConfigurationError] that matches [ErrMissingConnection].
package connection
