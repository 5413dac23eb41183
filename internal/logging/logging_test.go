package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	scenarios := map[string]struct {
		debug     bool
		wantDebug bool
	}{
		"test info level": {
			debug:     false,
			wantDebug: false,
		},
		"test debug level": {
			debug:     true,
			wantDebug: true,
		},
	}

	for scenario, data := range scenarios {
		t.Run(scenario, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, data.debug)

			logger.Debug("read acl", "target", "/tmp/foo.txt")
			logger.Info("done")

			assert.Equal(t, data.wantDebug, bytes.Contains(buf.Bytes(), []byte("read acl")))
			assert.Contains(t, buf.String(), "msg=done")
		})
	}
}

func TestNewLogger(t *testing.T) {
	logfile := filepath.Join(t.TempDir(), "logs", "solfile.log")

	logger, f, err := NewLogger(logfile, false)
	require.NoError(t, err)

	_, err = NewErrorWriter(logger).Write([]byte("  failed to count acl entries\n"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	contents, err := os.ReadFile(logfile)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "level=ERROR")
	assert.Contains(t, string(contents), `msg="failed to count acl entries"`)
}

func TestNewLoggerInvalidPath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, _, err := NewLogger(filepath.Join(blocker, "solfile.log"), false)
	assert.Error(t, err)
}
