// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/config_mock.go -package=mock

// ConnectionResolver produces the connection string used to seed
// [KeyConnection]. It is called at most once per [Store].
type ConnectionResolver interface {
	Resolve() (string, error)
}

// Values gives read access to configuration keys. [*Store] implements it.
type Values interface {
	Get(key string) (string, error)
}

// TaskLoader hands control to the task engine. It locates the task
// definitions named by path and registers them, reading configuration
// through values. What the loaded tasks do is up to the implementation.
type TaskLoader interface {
	Load(ctx context.Context, path string, values Values) error
}
