package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"github.com/zos-automation/tso-command/internal/app"
	"github.com/zos-automation/tso-command/internal/domain"
	"github.com/zos-automation/tso-command/internal/testutil"
)

// testEnv bundles a container built on mocks with the mocks themselves.
type testEnv struct {
	Container *app.Container
	Runner    *testutil.MockProcessRunner
	Logger    *testutil.MockLogger
	Manager   *testutil.MockConfigManager
}

func newTestEnv(t *testing.T, stdout, stderr string, rc int) *testEnv {
	t.Helper()
	cfg := domain.NewDefaultConfig()
	runner := testutil.NewMockProcessRunner(stdout, stderr, rc)
	logger := &testutil.MockLogger{}
	manager := &testutil.MockConfigManager{
		GlobalInfo: domain.ConfigInfo{Path: "/home/user/.config/tso-command/config.toml"},
	}
	c := app.NewWithDeps(cfg, runner, logger, &testutil.MockConfigLoader{Config: cfg}, manager)
	return &testEnv{Container: c, Runner: runner, Logger: logger, Manager: manager}
}

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(root *cobra.Command, args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeArgsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "args")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
