// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connection

import "sync"

// Resolver picks the connection string from an explicit override or the
// environment. The zero value is ready to use.
type Resolver struct {
	mu       sync.RWMutex
	override string

	// lookupEnv is replaced in tests; nil means parseEnv.
	lookupEnv func() (environment, error)
}

// NewResolver returns a [Resolver] with no override set.
func NewResolver() *Resolver {
	return &Resolver{}
}

// SetOverride stores value as the explicit connection string. The last call
// wins; an empty value clears the override. The value is not validated.
func (r *Resolver) SetOverride(value string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.override = value
}

// Override returns the explicit connection string and whether one is set.
func (r *Resolver) Override() (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.override, r.override != ""
}

// Resolve returns the override if set, otherwise a non-empty DATABASE_URL.
// With no source available it returns a [*ConfigurationError].
func (r *Resolver) Resolve() (string, error) {
	if override, ok := r.Override(); ok {
		return override, nil
	}

	lookup := r.lookupEnv
	if lookup == nil {
		lookup = parseEnv
	}

	e, err := lookup()
	if err != nil {
		return "", err
	}

	if e.DatabaseURL != "" {
		return e.DatabaseURL, nil
	}

	return "", &ConfigurationError{Variable: EnvDatabaseURL}
}
