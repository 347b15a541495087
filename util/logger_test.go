package util

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	gokitlog "github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWritesStdoutAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	stdout := &bytes.Buffer{}
	now := time.Date(2024, 9, 1, 10, 30, 0, 0, time.UTC)

	logger, closer, err := newLogger(stdout, dir, "grades", now)
	require.NoError(t, err)

	require.NoError(t, logger.Log("msg", "hello"))
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, "grades_2024-09-01_10-30-00.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
	assert.Contains(t, stdout.String(), "msg=hello")
	assert.Contains(t, stdout.String(), "caller=")
}

func TestTimeFunction(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := gokitlog.NewLogfmtLogger(buf)

	assert.NoError(t, TimeFunction(logger, "seed", func() error { return nil }))
	assert.Contains(t, buf.String(), "op=seed msg=started")
	assert.Contains(t, buf.String(), "op=seed msg=completed took=")

	buf.Reset()
	boom := errors.New("boom")
	assert.ErrorIs(t, TimeFunction(logger, "shutdown", func() error { return boom }), boom)
	assert.Contains(t, buf.String(), "op=shutdown msg=failed err=boom")
	assert.NotContains(t, buf.String(), "msg=completed")
}

func TestLogWithTiming(t *testing.T) {
	buf := &bytes.Buffer{}
	LogWithTiming(gokitlog.NewLogfmtLogger(buf), time.Now(), "Seeded %d courses", 6)

	assert.Contains(t, buf.String(), `msg="Seeded 6 courses"`)
	assert.Contains(t, buf.String(), "took=")
}
