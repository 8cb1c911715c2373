package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type cliEnv struct {
	dir     string
	storage string
}

// newCLIEnv isolates configuration lookups and the preference file in a
// temporary directory.
func newCLIEnv(t *testing.T) cliEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	for _, name := range []string{"FOLIO_STORAGE_PATH", "FOLIO_SYSTEM_SCHEME", "FOLIO_CATALOG_PATH", "FOLIO_LOGGING_LEVEL", "FOLIO_LOGGING_FORMAT", "NO_MOTION"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	return cliEnv{dir: dir, storage: filepath.Join(dir, "prefs.json")}
}

func (e cliEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return e.runContext(t, context.Background(), args...)
}

func (e cliEnv) runContext(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	app := newAppContext()
	t.Cleanup(app.Close)

	root := newRootCmd(app)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(append([]string{"--storage", e.storage, "--scheme", "light", "--log-level", "error"}, args...))

	err := root.ExecuteContext(ctx)
	app.Close()
	return stdout.String(), stderr.String(), err
}

func (e cliEnv) write(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(e.dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}
