package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/datagrid/internal/cli/styles"
	"github.com/bnema/datagrid/internal/logging"
)

func writeSession(t *testing.T, dir, id, body string, mod time.Time) string {
	t.Helper()
	path := filepath.Join(dir, logging.SessionFilename(id))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	require.NoError(t, os.Chtimes(path, mod, mod))
	return path
}

func TestGetSessions_NewestFirst(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeSession(t, dir, "20251217_205106_a7b3", "old\n", now.Add(-time.Hour))
	writeSession(t, dir, "20251218_101010_bbbb", "new\n", now)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))

	sessions, err := getSessions(dir)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "bbbb", sessions[0].ShortID)
	assert.Equal(t, "a7b3", sessions[1].ShortID)
}

func TestGetSessions_MissingDir(t *testing.T) {
	sessions, err := getSessions(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestFindSession(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeSession(t, dir, "20251217_205106_a7b3", "", now)
	writeSession(t, dir, "20251217_220000_c0de", "", now)

	s, err := findSession(dir, "A7B3")
	require.NoError(t, err)
	assert.Equal(t, "20251217_205106_a7b3", s.SessionID)

	s, err = findSession(dir, "2200")
	require.NoError(t, err)
	assert.Equal(t, "c0de", s.ShortID)

	_, err = findSession(dir, "20251217")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple sessions")

	_, err = findSession(dir, "ffff")
	assert.Error(t, err)
}

func TestShowSession_LastLines(t *testing.T) {
	dir := t.TempDir()
	path := writeSession(t, dir, "20251217_205106_a7b3", "one\ntwo\nthree\n", time.Now())

	var buf bytes.Buffer
	require.NoError(t, showSession(&buf, path, 2, styles.NewTheme(nil)))
	assert.Equal(t, "two\nthree\n", buf.String())
}

func TestClearSessions(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	old := writeSession(t, dir, "20251201_000000_0001", "x", now.AddDate(0, 0, -10))
	fresh := writeSession(t, dir, "20251218_000000_0002", "x", now)
	sessions, err := getSessions(dir)
	require.NoError(t, err)

	var buf bytes.Buffer
	removed := clearSessions(&buf, sessions, now.AddDate(0, 0, -7), false, styles.NewTheme(nil))
	assert.Equal(t, 1, removed)
	assert.NoFileExists(t, old)
	assert.FileExists(t, fresh)
}

func TestColorizeLogLine_JSON(t *testing.T) {
	line := `{"level":"warn","time":"12:00:00","message":"operation failed","component":"grid","error":"boom"}`
	out := colorizeLogLine(line, styles.NewTheme(nil))
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "[grid]")
	assert.Contains(t, out, "operation failed")
	assert.Contains(t, out, "boom")
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", formatSize(512))
	assert.Equal(t, "1.5 KB", formatSize(1536))
	assert.Equal(t, "2.0 MB", formatSize(2*1024*1024))
}
