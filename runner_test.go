// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migratetasks

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetDatabaseURL(t *testing.T) {
	t.Helper()
	t.Setenv(EnvDatabaseURL, "")
	require.NoError(t, os.Unsetenv(EnvDatabaseURL))
}

func newTestRunner(opts ...Option) *Runner {
	return New(append([]Option{WithLogger(zerolog.Nop())}, opts...)...)
}

func TestRunner_SetConnection(t *testing.T) {
	unsetDatabaseURL(t)

	r := newTestRunner()
	r.SetConnection("postgres://a")

	override, ok := r.Connection()
	assert.True(t, ok)
	assert.Equal(t, "postgres://a", override)

	value, err := r.Get(KeyConnection)
	require.NoError(t, err)
	assert.Equal(t, "postgres://a", value)
}

func TestRunner_EnvironmentConnection(t *testing.T) {
	t.Setenv(EnvDatabaseURL, "postgres://b")

	value, err := newTestRunner().Get(KeyConnection)
	require.NoError(t, err)
	assert.Equal(t, "postgres://b", value)
}

func TestRunner_MissingConnection(t *testing.T) {
	unsetDatabaseURL(t)

	_, err := newTestRunner().Configuration()

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.ErrorIs(t, err, ErrMissingConnection)
	assert.Contains(t, err.Error(), EnvDatabaseURL)
}

func TestRunner_ConfigurationIsStable(t *testing.T) {
	unsetDatabaseURL(t)

	r := newTestRunner()
	r.SetConnection("postgres://first")

	first, err := r.Configuration()
	require.NoError(t, err)

	r.SetConnection("postgres://second")

	second, err := r.Configuration()
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, "postgres://first", second.Connection())
}

func TestRunner_DefaultsAndCustomKeys(t *testing.T) {
	t.Setenv(EnvDatabaseURL, "postgres://b")
	r := newTestRunner()

	namespace, err := r.Get(KeyNamespace)
	require.NoError(t, err)
	assert.Equal(t, DefaultNamespace, namespace)

	migrations, err := r.Get(KeyMigrations)
	require.NoError(t, err)
	assert.Equal(t, DefaultMigrations, migrations)

	require.NoError(t, r.Set("custom_key", "v1"))
	value, err := r.Get("custom_key")
	require.NoError(t, err)
	assert.Equal(t, "v1", value)

	_, err = r.Get("never_set_key")
	var keyErr *KeyNotFoundError
	assert.True(t, errors.As(err, &keyErr))
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRunner_LoadTasks(t *testing.T) {
	unsetDatabaseURL(t)
	r := newTestRunner()
	ctx := context.Background()

	require.NoError(t, r.Configure(func(b *Builder) error {
		if err := b.Set(KeyConnection, "sqlite3://"+filepath.Join(t.TempDir(), "app.db")); err != nil {
			return err
		}
		return b.Set(KeyNamespace, "db")
	}))

	require.NoError(t, r.LoadTasks(ctx))
	assert.Len(t, r.Tasks(), 6)

	err := r.LoadTasks(ctx)
	assert.ErrorIs(t, err, ErrTaskAlreadyRegistered)
}

func TestRunner_LoadTasksWithoutConnectionFails(t *testing.T) {
	unsetDatabaseURL(t)

	err := newTestRunner().LoadTasks(context.Background())
	assert.ErrorIs(t, err, ErrMissingConnection)
}

func TestRunner_CustomTaskDefinitions(t *testing.T) {
	t.Setenv(EnvDatabaseURL, "postgres://b")
	fsys := fstest.MapFS{
		"tasks.yaml": &fstest.MapFile{Data: []byte("tasks:\n  - name: up\n    command: up\n")},
	}

	r := newTestRunner(WithTaskDefinitions(fsys))
	require.NoError(t, r.LoadTasks(context.Background()))

	tasks := r.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "sequel:up", tasks[0].Name)
}

func TestRunner_RunUnknownTask(t *testing.T) {
	err := newTestRunner().Run(context.Background(), "sequel:missing")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestRunner_WithLogger(t *testing.T) {
	t.Setenv(EnvDatabaseURL, "postgres://b")

	var buf bytes.Buffer
	r := New(WithLogger(zerolog.New(&buf)))

	_, err := r.Configuration()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "configuration materialized")
	assert.NotContains(t, buf.String(), "postgres://b")
}
