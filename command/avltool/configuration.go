// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ordertree/configuration"
	"github.com/bitmark-inc/ordertree/fault"
)

// basic defaults (log directory is relative to the configuration file)
const (
	defaultKeyType = integerKeys

	defaultLogDirectory = "."
	defaultLogFile      = "avltool.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - settings read from the Lua file
type Configuration struct {
	KeyType  string               `gluamapper:"key_type" json:"key_type"`
	Balanced bool                 `gluamapper:"balanced" json:"balanced"`
	Logging  logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration, an empty file name
// gives the defaults
func getConfiguration(configurationFileName string) (*Configuration, error) {

	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{
		KeyType:  defaultKeyType,
		Balanced: false,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	baseDirectory := "."
	if "" != configurationFileName {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		baseDirectory, _ = filepath.Split(fileName)

		if err := configuration.ParseConfigurationFile(fileName, options); err != nil {
			return nil, err
		}
	}

	options.KeyType = strings.ToLower(options.KeyType)
	if integerKeys != options.KeyType && stringKeys != options.KeyType {
		return nil, fault.ErrInvalidKeyType
	}

	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(baseDirectory, options.Logging.Directory)
	}
	options.Logging.Directory = filepath.Clean(options.Logging.Directory)

	return options, nil
}
