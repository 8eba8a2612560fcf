// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connection

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvDatabaseURL is the environment variable consulted when no override is set.
const EnvDatabaseURL = "DATABASE_URL"

// environment mirrors the process environment variables read by the resolver.
type environment struct {
	// DatabaseURL is the implicit connection string.
	// Env: DATABASE_URL
	DatabaseURL string `env:"DATABASE_URL"`
}

// parseEnv reads [environment] from the process environment using the
// caarlos0/env library.
func parseEnv() (environment, error) {
	var e environment
	if err := env.Parse(&e); err != nil {
		return environment{}, fmt.Errorf("error getting env configs: %w", err)
	}

	return e, nil
}
