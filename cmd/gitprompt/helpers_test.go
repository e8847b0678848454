package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// runRoot executes the root command with args and returns stdout, stderr
// and the error.
func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())
	return stdout.String(), stderr.String(), err
}

// isolateConfig points GITPROMPT_CONFIG at a file with content (or at a
// missing file when content is empty) and clears the env overrides.
func isolateConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	t.Setenv("GITPROMPT_CONFIG", path)
	t.Setenv("GITPROMPT_BACKEND", "")
	t.Setenv("GITPROMPT_COLOR", "")
	return path
}
