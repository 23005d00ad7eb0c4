// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/patrik-cihal/binary-search-tree/configuration"
	"github.com/patrik-cihal/binary-search-tree/fault"
	"github.com/patrik-cihal/binary-search-tree/session"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file
	defaultTempDirectory = "bstree"

	defaultLogDirectory = "log"
	defaultLogFile      = "bstree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// Configuration - the decoded configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	OnError       session.Policy       `gluamapper:"on_error" json:"on_error"`
	Dump          bool                 `gluamapper:"dump" json:"dump"`
	Check         bool                 `gluamapper:"check" json:"check"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// a blank file name selects the built-in defaults with the data
// directory under the system temporary directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		OnError:       session.Abort,
		Dump:          false,
		Check:         false,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels: LoglevelMap{
				logger.DefaultTag: "critical",
			},
		},
	}

	if "" == configurationFileName {
		options.DataDirectory = filepath.Join(os.TempDir(), defaultTempDirectory)
		if err := configuration.EnsureDirectory(options.DataDirectory); nil != err {
			return nil, err
		}
	} else {
		configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
			return nil, err
		}

		// ensure absolute data directory
		if "" == options.DataDirectory || "~" == options.DataDirectory {
			return nil, fmt.Errorf("%w: %q", fault.ErrNotADirectory, options.DataDirectory)
		} else if "." == options.DataDirectory {
			// same directory as the configuration file
			options.DataDirectory, _ = filepath.Split(configurationFileName)
		}
		options.DataDirectory = configuration.EnsureAbsolute(filepath.Dir(configurationFileName), options.DataDirectory)

		// this directory must exist - i.e. must be created prior to running
		if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
			return nil, err
		} else if !fileInfo.IsDir() {
			return nil, fmt.Errorf("%w: %q", fault.ErrNotADirectory, options.DataDirectory)
		}
	}

	policy, err := session.ParsePolicy(string(options.OnError))
	if nil != err {
		return nil, err
	}
	options.OnError = policy

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = configuration.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := configuration.EnsureDirectory(options.Logging.Directory); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// session settings from the configuration
func (c *Configuration) sessionOptions() session.Options {
	return session.Options{
		OnError: c.OnError,
		Dump:    c.Dump,
		Check:   c.Check,
	}
}
