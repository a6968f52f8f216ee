// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_rotates(t *testing.T) {
	dir := t.TempDir()

	for i := 0; i < 3; i++ {
		log, err := New(dir, "audit")
		require.NoError(t, err)
		log.Infof("run %d", i)
		log.Close()
	}

	latest, err := os.ReadFile(filepath.Join(dir, "audit.log"))
	require.NoError(t, err)
	assert.Contains(t, string(latest), "[INFO]: run 2")

	second, err := os.ReadFile(filepath.Join(dir, "audit.2.log"))
	require.NoError(t, err)
	assert.Contains(t, string(second), "[INFO]: run 1")

	third, err := os.ReadFile(filepath.Join(dir, "audit.3.log"))
	require.NoError(t, err)
	assert.Contains(t, string(third), "[INFO]: run 0")
}

func TestNew_keepsAtMostFiveLogs(t *testing.T) {
	dir := t.TempDir()

	for i := 0; i < logCount+3; i++ {
		log, err := New(dir, "audit")
		require.NoError(t, err)
		log.Close()
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, logCount)
}

func TestContext_levels(t *testing.T) {
	dir := t.TempDir()

	log, err := New(dir, "levels")
	require.NoError(t, err)

	log.Raw("raw line")
	log.Warnf("warn %s", "line")
	err = log.Errorf("error %d", 7)
	assert.EqualError(t, err, "error 7")
	CloseAll()

	b, err := os.ReadFile(log.File())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], " raw line"))
	assert.True(t, strings.HasSuffix(lines[1], "[WARN]: warn line"))
	assert.True(t, strings.HasSuffix(lines[2], "[ERROR]: error 7"))

	// writing after close must not panic
	log.Info("dropped")
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Info("nothing")
	assert.Error(t, log.Error("still returned"))
	assert.Equal(t, "", log.File())
	log.Close()
}
