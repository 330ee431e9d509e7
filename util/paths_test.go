// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/solnote/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/etc/notes/log", util.EnsureAbsolute("/etc/notes", "log"), "relative")
	assert.Equal(t, "/var/log", util.EnsureAbsolute("/etc/notes", "/var/log"), "absolute")
	assert.Equal(t, "/etc/log", util.EnsureAbsolute("/etc/notes", "../log"), "cleaned")
}

func TestEnsureFileExists(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "present")
	if err := os.WriteFile(name, []byte("x"), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}

	assert.True(t, util.EnsureFileExists(name), "file")
	assert.False(t, util.EnsureFileExists(dir), "directory")
	assert.False(t, util.EnsureFileExists(filepath.Join(dir, "absent")), "absent")
}
