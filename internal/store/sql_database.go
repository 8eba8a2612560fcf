// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-migrate-tasks/internal/logger"
)

const (
	defaultPingRetries = 3
	defaultPingBackoff = 200 * time.Millisecond
)

// DB is an open database together with the goose dialect matching its driver.
type DB struct {
	*sql.DB
	Dialect goose.Dialect
	logger  *logger.Logger
}

// target describes how to open a connection URL.
type target struct {
	driver  string
	dsn     string
	dialect goose.Dialect
}

// Open connects to the database named by connection and pings it.
func Open(ctx context.Context, connection string, log *logger.Logger) (*DB, error) {
	return open(ctx, connection, log, retry.WithMaxRetries(defaultPingRetries, retry.NewExponential(defaultPingBackoff)))
}

func open(ctx context.Context, connection string, log *logger.Logger, backoff retry.Backoff) (*DB, error) {
	if log == nil {
		log = logger.Nop()
	}

	t, err := parseConnection(connection)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(t.driver, t.dsn)
	if err != nil {
		log.Err(err).Str("driver", t.driver).Msg("error occurred during database connection")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}

	if t.driver == "sqlite3" {
		// sqlite only supports a single writer
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(4)
	}

	if err := ping(ctx, conn, backoff, log); err != nil {
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("driver", t.driver).Msg("connected to database successfully")

	return &DB{
		DB:      conn,
		Dialect: t.dialect,
		logger:  log,
	}, nil
}

// ping retries conn.PingContext while the failure is [Retryable].
func ping(ctx context.Context, conn *sql.DB, backoff retry.Backoff, log *logger.Logger) error {
	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := conn.PingContext(ctx)
		if err == nil {
			return nil
		}

		if Classify(err) == Retryable {
			log.Debug().Err(err).Int("attempt", attempt).Msg("retrying database ping")
			return retry.RetryableError(err)
		}

		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPingingDatabase, mapError(err))
	}

	return nil
}

// parseConnection maps a connection URL to a driver, DSN and goose dialect.
func parseConnection(connection string) (target, error) {
	scheme, rest, found := strings.Cut(connection, "://")
	if !found {
		if strings.HasPrefix(connection, "file:") {
			return target{driver: "sqlite3", dsn: connection, dialect: goose.DialectSQLite3}, nil
		}
		return target{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, redact(connection))
	}

	switch strings.ToLower(scheme) {
	case "postgres", "postgresql":
		return target{driver: "pgx", dsn: connection, dialect: goose.DialectPostgres}, nil
	case "sqlite3", "sqlite":
		if rest == "" {
			return target{}, fmt.Errorf("%w: empty sqlite path", ErrUnsupportedScheme)
		}
		return target{driver: "sqlite3", dsn: rest, dialect: goose.DialectSQLite3}, nil
	}

	return target{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
}

// redact keeps credentials out of error messages.
func redact(connection string) string {
	if i := strings.LastIndex(connection, "@"); i >= 0 {
		return "***" + connection[i:]
	}

	return connection
}
