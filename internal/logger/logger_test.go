package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInit_Disabled(t *testing.T) {
	require.NoError(t, Init(Options{Enabled: false}))
	require.False(t, L.Enabled(t.Context(), slog.LevelError))
}

func TestInit_Output(t *testing.T) {
	t.Cleanup(func() { _ = Init(Options{}) })

	var buf bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Level: slog.LevelDebug, Output: &buf}))
	Debug("flushed", "combinations", 3)
	require.Contains(t, buf.String(), "combinations=3")
}

func TestInit_LogDir(t *testing.T) {
	t.Cleanup(func() { _ = Init(Options{}) })

	dir := t.TempDir()
	stale := filepath.Join(dir, "stylectl-2000-01-01.log")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(stale, nil, 0o644))
	require.NoError(t, os.WriteFile(other, nil, 0o644))

	require.NoError(t, Init(Options{Enabled: true, LogDir: dir}))
	Info("resolved", "elements", 2)

	_, err := os.Stat(stale)
	require.ErrorIs(t, err, os.ErrNotExist, "old logs are removed")
	_, err = os.Stat(other)
	require.NoError(t, err, "unrelated files are kept")

	data, err := os.ReadFile(filepath.Join(dir, "stylectl-"+time.Now().Format("2006-01-02")+".log"))
	require.NoError(t, err)
	require.Contains(t, string(data), `"elements":2`)
}

func TestInit_ClosesPreviousFile(t *testing.T) {
	t.Cleanup(func() { _ = Close() })

	require.NoError(t, Init(Options{Enabled: true, LogDir: t.TempDir()}))
	first := file
	require.NotNil(t, first)

	require.NoError(t, Init(Options{Enabled: true, LogDir: t.TempDir()}))
	require.NotSame(t, first, file)
	require.ErrorIs(t, first.Close(), os.ErrClosed, "re-init closes the old file")

	require.NoError(t, Close())
	require.Nil(t, file)
	require.False(t, L.Enabled(t.Context(), slog.LevelError))
	require.NoError(t, Close(), "closing twice is a no-op")
}
