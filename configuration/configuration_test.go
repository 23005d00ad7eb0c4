// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrik-cihal/binary-search-tree/configuration"
	"github.com/patrik-cihal/binary-search-tree/fault"
)

type loggingType struct {
	Directory string            `gluamapper:"directory"`
	File      string            `gluamapper:"file"`
	Count     int               `gluamapper:"count"`
	Levels    map[string]string `gluamapper:"levels"`
}

type testConfiguration struct {
	DataDirectory string      `gluamapper:"data_directory"`
	OnError       string      `gluamapper:"on_error"`
	Dump          bool        `gluamapper:"dump"`
	Check         bool        `gluamapper:"check"`
	Logging       loggingType `gluamapper:"logging"`
}

func writeFile(t *testing.T, content string) string {
	name := filepath.Join(t.TempDir(), "test.conf")
	require.NoError(t, os.WriteFile(name, []byte(content), 0600))
	return name
}

func TestParse(t *testing.T) {
	fileName := writeFile(t, `
local M = {}
M.data_directory = "."
M.on_error = "continue"
M.check = true
M.logging = {
  file = "bstree.log",
  count = 5,
  levels = {
    DEFAULT = "info",
    session = "debug",
  },
}
-- the config file name is passed in arg[0]
assert(arg[0] ~= nil)
return M
`)

	config := testConfiguration{
		OnError: "abort",
		Dump:    true,
		Logging: loggingType{
			Directory: "log",
			Count:     10,
		},
	}
	err := configuration.ParseConfigurationFile(fileName, &config)
	require.NoError(t, err)

	assert.Equal(t, ".", config.DataDirectory)
	assert.Equal(t, "continue", config.OnError)
	assert.True(t, config.Dump, "default overwritten")
	assert.True(t, config.Check)
	assert.Equal(t, "log", config.Logging.Directory, "default overwritten")
	assert.Equal(t, "bstree.log", config.Logging.File)
	assert.Equal(t, 5, config.Logging.Count)
	assert.Equal(t, map[string]string{"DEFAULT": "info", "session": "debug"}, config.Logging.Levels)
}

func TestParseMissingFile(t *testing.T) {
	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "absent.conf"), &config)
	assert.True(t, errors.Is(err, fault.ErrNotFoundConfigFile), "error: %v", err)
	assert.True(t, fault.IsErrNotFound(err), "error class: %v", err)
}

func TestParseNotATable(t *testing.T) {
	fileName := writeFile(t, `return "abort"`)

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &config)
	assert.True(t, errors.Is(err, fault.ErrConfigurationNotTable), "error: %v", err)
}

func TestParseSyntaxError(t *testing.T) {
	fileName := writeFile(t, `return {`)

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &config)
	assert.Error(t, err)
}

func TestEnsureAbsolute(t *testing.T) {
	tcs := []struct {
		name      string
		directory string
		path      string
		expected  string
	}{
		{"relative", "/var/lib/bstree", "log", "/var/lib/bstree/log"},
		{"absolute", "/var/lib/bstree", "/tmp/log", "/tmp/log"},
		{"dot", "/var/lib/bstree", ".", "/var/lib/bstree"},
		{"unclean", "/var/lib/bstree", "a/../b//c", "/var/lib/bstree/b/c"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, configuration.EnsureAbsolute(tc.directory, tc.path))
		})
	}
}

func TestEnsureDirectory(t *testing.T) {
	dir := t.TempDir()

	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, configuration.EnsureDirectory(nested))
	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// existing directory is fine
	assert.NoError(t, configuration.EnsureDirectory(nested))

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))
	err = configuration.EnsureDirectory(file)
	assert.True(t, errors.Is(err, fault.ErrNotADirectory), "error: %v", err)
}
