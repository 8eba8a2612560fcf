// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that every built-in key carries a non-empty value before
// the configuration is published by the [Store].
func (c *Configuration) validate() error {
	for _, key := range requiredKeys {
		if c.lookup(key) == "" {
			return fmt.Errorf("%w: %q", ErrMissingRequiredKey, key)
		}
	}

	return nil
}
