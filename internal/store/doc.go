// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store opens the database named by a connection URL for the
// migration tasks.
//
// Supported schemes:
//   - postgres://, postgresql:// through the pgx stdlib driver
//   - sqlite3://, sqlite://, file: through mattn/go-sqlite3
//
// The connection is pinged before it is returned. Pings failing with a
// transient error (see [Classify]) are retried with exponential backoff.
package store
