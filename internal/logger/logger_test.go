package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Not parallel: the logger is package state

func TestInit_WritesJSONLines(t *testing.T) {
	dir := t.TempDir()

	log, err := Init(dir)
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.Equal(t, filepath.Join(dir, "debug.log"), GetLogPath())

	log.Info("set found", zap.Int("score", 3))
	LogPanic("boom")
	Close()

	data, err := os.ReadFile(GetLogPath())
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, `"msg":"logger initialized"`)
	assert.Contains(t, content, `"score":3`)
	assert.Contains(t, content, `"recovered":"boom"`)
	assert.Len(t, strings.Split(strings.TrimSpace(content), "\n"), 3)
}

func TestInit_DefaultsToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	_, err := Init("")
	require.NoError(t, err)
	defer Close()

	assert.Equal(t, filepath.Join(home, appDirName, logFileName), GetLogPath())
}

const maxLogSize = maxLogSizeMB * 1024 * 1024

func TestInit_RotatesLargeFile(t *testing.T) {
	dir := t.TempDir()
	big := make([]byte, maxLogSize+1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, logFileName), big, 0o600))

	_, err := Init(dir)
	require.NoError(t, err)
	Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	info, err := os.Stat(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(maxLogSize))
}

func TestInit_RotatesWhileRunning(t *testing.T) {
	dir := t.TempDir()

	log, err := Init(dir)
	require.NoError(t, err)

	payload := strings.Repeat("x", 1024*1024)
	for i := range maxLogSizeMB + 2 {
		log.Info("filler", zap.Int("i", i), zap.String("payload", payload))
	}
	Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(entries), 2, "log is rotated once it passes the size limit")

	for _, e := range entries {
		info, err := e.Info()
		require.NoError(t, err)
		assert.LessOrEqual(t, info.Size(), int64(maxLogSize), e.Name())
	}
}

func TestCloseWithoutInit(t *testing.T) {
	Close()
	assert.NotPanics(t, func() { LogPanic("after close") })
	assert.NotNil(t, Nop())
}
