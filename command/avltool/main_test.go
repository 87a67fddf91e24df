// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ordertree/fault"
)

var testDirectory string

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "avltool")
	if nil != err {
		panic(fmt.Sprintf("temporary directory failed: %s", err))
	}
	testDirectory = dir

	logConfig := logger.Configuration{
		Directory: dir,
		File:      "avltool.log",
		Size:      1048576,
		Count:     20,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}
	if err := logger.Initialise(logConfig); err != nil {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}

func TestParseKey(t *testing.T) {
	k, err := parseKey(integerKeys, "-42")
	require.NoError(t, err)
	assert.Equal(t, integerKey(-42), k)
	assert.Equal(t, "-42", fmt.Sprint(k))

	_, err = parseKey(integerKeys, "forty")
	assert.Error(t, err)

	k, err = parseKey(stringKeys, "forty")
	require.NoError(t, err)
	assert.Equal(t, stringKey("forty"), k)

	_, err = parseKey("float", "1.5")
	assert.Equal(t, fault.ErrInvalidKeyType, err)

	assert.True(t, integerKey(9).Compare(integerKey(10)) < 0)
	assert.True(t, stringKey("9").Compare(stringKey("10")) > 0)
}

func TestReadKeys(t *testing.T) {
	text := "# sample keys\n37\n  13 \n\n49\n# end\n"
	texts, err := readKeys(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, []string{"37", "13", "49"}, texts)
}

func TestDefaultConfiguration(t *testing.T) {
	config, err := getConfiguration("")
	require.NoError(t, err)
	assert.Equal(t, integerKeys, config.KeyType)
	assert.False(t, config.Balanced)
	assert.Equal(t, defaultLogFile, config.Logging.File)
	assert.Equal(t, "critical", config.Logging.Levels[logger.DefaultTag])

	// the defaults must not be shared between calls
	config.Logging.Levels["main"] = "debug"
	assert.Equal(t, "info", defaultLogLevels["main"])
}

func TestConfigurationFile(t *testing.T) {
	fileName := filepath.Join(testDirectory, "avltool.conf")
	text := `
return {
    key_type = "STRING",
    balanced = true,
    logging = {
        directory = "log",
        file = "tool.log",
        size = 4096,
        count = 3,
        levels = { main = "warn" },
    },
}
`
	require.NoError(t, ioutil.WriteFile(fileName, []byte(text), 0600))

	config, err := getConfiguration(fileName)
	require.NoError(t, err)
	assert.Equal(t, stringKeys, config.KeyType)
	assert.True(t, config.Balanced)
	assert.Equal(t, filepath.Join(testDirectory, "log"), config.Logging.Directory)
	assert.Equal(t, "tool.log", config.Logging.File)
	assert.Equal(t, 4096, config.Logging.Size)
	assert.Equal(t, "warn", config.Logging.Levels["main"])
}

func TestConfigurationBadKeyType(t *testing.T) {
	fileName := filepath.Join(testDirectory, "bad.conf")
	require.NoError(t, ioutil.WriteFile(fileName, []byte(`return { key_type = "float" }`), 0600))

	_, err := getConfiguration(fileName)
	assert.Equal(t, fault.ErrInvalidKeyType, err)
}

func TestProcess(t *testing.T) {
	log := logger.New("test")

	for _, balanced := range []bool{false, true} {
		r := &request{
			keyType:  integerKeys,
			balanced: balanced,
			keys:     []string{"37", "13", "49", "12", "39", "11", "13"},
			deletes:  []string{"12", "99"},
			queries: []query{
				{operation: opFind, key: "39"},
				{operation: opFind, key: "12"},
				{operation: opNext, key: "14"},
				{operation: opPrev, key: "11"},
			},
		}

		tree, rpt, err := process(log, r)
		require.NoError(t, err, "balanced: %v", balanced)
		require.NoError(t, tree.Check())

		assert.Equal(t, []string{"11", "13", "37", "39", "49"}, rpt.Keys)
		assert.Equal(t, 5, rpt.Count)
		assert.Equal(t, []string{"12"}, rpt.Deleted)
		assert.Equal(t, []string{"99"}, rpt.Missing)
		require.Len(t, rpt.Queries, 4)
		assert.Equal(t, "39", *rpt.Queries[0].Result)
		assert.Nil(t, rpt.Queries[1].Result)
		assert.Equal(t, "37", *rpt.Queries[2].Result)
		assert.Nil(t, rpt.Queries[3].Result)
		assert.Equal(t, "11", *rpt.Min)
		assert.Equal(t, "49", *rpt.Max)

		if balanced {
			assert.Equal(t, uint64(0), tree.Rotations())
		}
	}
}

func TestProcessBadKey(t *testing.T) {
	log := logger.New("test")
	r := &request{
		keyType: integerKeys,
		keys:    []string{"1", "two"},
	}
	_, _, err := process(log, r)
	assert.Error(t, err)
}

func TestProcessEmpty(t *testing.T) {
	log := logger.New("test")
	r := &request{
		keyType: stringKeys,
		deletes: []string{"a"},
	}
	tree, rpt, err := process(log, r)
	require.NoError(t, err)
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, -1, rpt.Height)
	assert.Nil(t, rpt.Min)
	assert.Nil(t, rpt.Max)
	assert.Equal(t, []string{"a"}, rpt.Missing)
}

func TestPrintJson(t *testing.T) {
	s := "b"
	rpt := &report{
		Keys:    []string{"a", "b"},
		Count:   2,
		Max:     &s,
		Deleted: []string{},
		Missing: []string{},
		Queries: []queryResult{{Operation: opNext, Key: "a", Result: &s}},
	}

	buffer := bytes.Buffer{}
	printJson(&buffer, "", rpt)

	decoded := report{}
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &decoded))
	assert.Equal(t, rpt.Keys, decoded.Keys)
	assert.Equal(t, "b", *decoded.Queries[0].Result)
	assert.Nil(t, decoded.Min)
}
