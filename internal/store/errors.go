// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrUnsupportedScheme is returned when the connection URL scheme maps to
	// no known driver.
	ErrUnsupportedScheme = errors.New("unsupported connection scheme")

	// ErrOpeningDatabase is returned when the driver cannot open the database.
	ErrOpeningDatabase = errors.New("error opening database")

	// ErrPingingDatabase is returned when the database does not answer a ping.
	ErrPingingDatabase = errors.New("error connecting database (ping)")

	// ErrDatabaseDoesNotExist is returned when the server reports that the
	// database named in the connection URL does not exist (SQLSTATE 3D000).
	ErrDatabaseDoesNotExist = errors.New("database does not exist")

	// ErrAuthentication is returned when the server rejects the credentials
	// from the connection URL (SQLSTATE class 28).
	ErrAuthentication = errors.New("database authentication failed")
)
