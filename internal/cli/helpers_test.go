package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/datatable/internal/config"
)

// peopleJSON has four rows with a nested address and one missing age.
const peopleJSON = `[
  {"name": "Ada", "age": 36, "address": {"city": "London"}},
  {"name": "Grace", "age": 85, "address": {"city": "Arlington"}},
  {"name": "Linus", "age": 28, "address": {"city": "Helsinki"}},
  {"name": "Edsger", "address": {"city": "Nuenen"}}
]`

// writeFile writes content to name inside a temp dir and returns the path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// executeRoot runs the root command with args in an isolated config home.
func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("DATATABLE_HOME", t.TempDir())
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)

	root := NewRootCmd("test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), errOut.String(), err
}
