package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/predictable-shuf/internal/hcl"
)

// WriteTestFile writes content to a fresh file under t.TempDir and returns its path.
func WriteTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

// SetupAppTest creates a new app instance wired to in-memory buffers. Log
// output is dumped when PSHUF_TEST_LOGS=true.
func SetupAppTest(t *testing.T, appConfig *Config) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	if appConfig.LogLevel == "" {
		appConfig.LogLevel = "debug"
	}
	testApp, err := NewApp(out, logs, appConfig, hcl.NewLoader())
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("PSHUF_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return testApp, out, logs
}
