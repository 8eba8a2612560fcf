// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tasks

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/go-migrate-tasks/internal/logger"
)

// Command names a goose operation a task performs.
type Command string

// Supported commands.
const (
	CommandUp      Command = "up"
	CommandDown    Command = "down"
	CommandRedo    Command = "redo"
	CommandReset   Command = "reset"
	CommandStatus  Command = "status"
	CommandVersion Command = "version"
)

// commandFunc runs a command against db using the migrations in dir.
type commandFunc func(ctx context.Context, db *sql.DB, dir string) error

var gooseCommands = map[Command]commandFunc{
	CommandUp:      func(ctx context.Context, db *sql.DB, dir string) error { return goose.UpContext(ctx, db, dir) },
	CommandDown:    func(ctx context.Context, db *sql.DB, dir string) error { return goose.DownContext(ctx, db, dir) },
	CommandRedo:    func(ctx context.Context, db *sql.DB, dir string) error { return goose.RedoContext(ctx, db, dir) },
	CommandReset:   func(ctx context.Context, db *sql.DB, dir string) error { return goose.ResetContext(ctx, db, dir) },
	CommandStatus:  func(ctx context.Context, db *sql.DB, dir string) error { return goose.StatusContext(ctx, db, dir) },
	CommandVersion: func(ctx context.Context, db *sql.DB, dir string) error { return goose.VersionContext(ctx, db, dir) },
}

func (c Command) valid() bool {
	_, ok := gooseCommands[c]
	return ok
}

// gooseMu serializes runs because goose keeps dialect and logger globally.
var gooseMu sync.Mutex

// runGoose configures goose for dialect and log, then runs fn.
func runGoose(ctx context.Context, dialect goose.Dialect, log *logger.Logger, fn commandFunc, db *sql.DB, dir string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}
	goose.SetLogger(gooseLogger{log: log})
	goose.SetBaseFS(nil)

	if err := fn(ctx, db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger routes goose output into zerolog.
type gooseLogger struct {
	log *logger.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.log.Info().Msg(strings.TrimRight(fmt.Sprintf(format, v...), "\n"))
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.log.Fatal().Msg(strings.TrimRight(fmt.Sprintf(format, v...), "\n"))
}
