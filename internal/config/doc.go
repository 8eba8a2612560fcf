// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides the lazily built configuration consumed by the
// migration tasks.
//
// A [Store] materializes its [Configuration] on the first read or write.
// Values are layered in the following priority order (earlier layers win):
//  1. Values passed explicitly through [Store.Set] or [Store.Configure]
//  2. The connection string resolved by a [ConnectionResolver]
//  3. Built-in defaults for [KeyMigrations] and [KeyNamespace]
//
// Once materialized, the configuration is never rebuilt: overrides applied
// to the resolver afterwards do not change [KeyConnection].
package config
