package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zos-automation/tso-command/internal/app"
	"github.com/zos-automation/tso-command/internal/domain"
)

type moduleResult struct {
	RC        *int     `json:"rc"`
	Msg       string   `json:"msg"`
	Stderr    string   `json:"stderr"`
	Exception string   `json:"exception"`
	Content   []string `json:"content"`
	Changed   bool     `json:"changed"`
	Failed    bool     `json:"failed"`
}

func runModuleCommand(t *testing.T, env *testEnv, args string) (moduleResult, error) {
	t.Helper()
	root := newRootCommandWithContainer(env.Container, "dev")
	out, _, err := execute(root, "module", writeArgsFile(t, args))

	var res moduleResult
	require.NoError(t, json.Unmarshal([]byte(out), &res), "stdout must be one JSON object: %q", out)
	return res, err
}

func TestModuleCommand_LongUnauthorizedCommand(t *testing.T) {
	env := newTestEnv(t, "", "", 0)
	command := "alloc da('imstestl.ims1.temp.ps') catalog lrecl(133) blksize(13300) recfm(f b) dsorg(po) cylinders space(5,5) dir(5)"

	res, err := runModuleCommand(t, env, `{"command": "`+command+`"}`)

	require.NoError(t, err)
	require.NotNil(t, res.RC)
	assert.Equal(t, 0, *res.RC)
	assert.True(t, res.Changed)
	assert.False(t, res.Failed)
	require.Len(t, env.Runner.Calls, 1)
	assert.Equal(t, []string{command}, env.Runner.Calls[0].Args)
}

func TestModuleCommand_ShortAuthorizedCommand(t *testing.T) {
	env := newTestEnv(t, "IMSTESTL.IMS1.TEMP.PS\n--RECFM-LRECL-BLKSIZE-DSORG\n", "", 0)

	res, err := runModuleCommand(t, env, `{"command": "LISTDS 'imstestl.ims1.temp.ps'", "auth": true}`)

	require.NoError(t, err)
	assert.Equal(t, 0, *res.RC)
	assert.True(t, res.Changed)
	assert.Equal(t, []string{"IMSTESTL.IMS1.TEMP.PS", "--RECFM-LRECL-BLKSIZE-DSORG"}, res.Content)
	require.Len(t, env.Runner.Calls, 1)
	assert.Equal(t, "mvscmdauth", env.Runner.Calls[0].Program)
	assert.Equal(t, "LISTDS 'imstestl.ims1.temp.ps'", env.Runner.Calls[0].Stdin)
}

func TestModuleCommand_LongAuthorizedCommand(t *testing.T) {
	env := newTestEnv(t, "", "", 0)
	command := strings.Repeat("a", 70) + strings.Repeat("b", 70) + strings.Repeat("c", 10)

	_, err := runModuleCommand(t, env, `{"command": "`+command+`", "auth": "yes"}`)

	require.NoError(t, err)
	require.Len(t, env.Runner.Calls, 1)
	assert.Equal(t,
		strings.Repeat("a", 70)+"-\n"+strings.Repeat("b", 70)+"-\n"+strings.Repeat("c", 10),
		env.Runner.Calls[0].Stdin)
}

func TestModuleCommand_EmptyCommand(t *testing.T) {
	for _, args := range []string{`{"command": ""}`, `{"command": "   "}`, `{}`} {
		env := newTestEnv(t, "", "", 0)

		res, err := runModuleCommand(t, env, args)

		require.Error(t, err)
		assert.False(t, res.Changed)
		assert.True(t, res.Failed)
		assert.Equal(t, domain.ErrEmptyCommand.Error(), res.Msg)
		assert.Nil(t, res.RC)
		assert.Empty(t, env.Runner.Calls, "no process may be spawned for %s", args)
	}
}

func TestModuleCommand_EmptyCommandSkipsConfig(t *testing.T) {
	factoryCalled := false
	factory := func(app.Options) (*app.Container, error) {
		factoryCalled = true
		return nil, assert.AnError
	}
	root := NewRootCommand(factory, "dev")

	out, _, err := execute(root, "module", writeArgsFile(t, `{"command": ""}`))

	require.Error(t, err)
	assert.False(t, factoryCalled)
	assert.Contains(t, out, `"failed":true`)
}

// The command ran but failed: rc and content are preserved, changed stays false.
func TestModuleCommand_InvalidCommand(t *testing.T) {
	env := newTestEnv(t, "IKJ56500I COMMAND XXXXXX NOT FOUND\n", "", 255)

	res, err := runModuleCommand(t, env, `{"command": "xxxxxx"}`)

	var exitErr *ExitCodeError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	require.NotNil(t, res.RC)
	assert.Equal(t, 255, *res.RC)
	assert.False(t, res.Changed)
	assert.True(t, res.Failed)
	assert.Equal(t, `the TSO command "xxxxxx" execution failed`, res.Msg)
	assert.Equal(t, []string{"IKJ56500I COMMAND XXXXXX NOT FOUND"}, res.Content)
}

func TestModuleCommand_UnsupportedParameter(t *testing.T) {
	env := newTestEnv(t, "", "", 0)

	res, err := runModuleCommand(t, env, `{"command": "TIME", "retries": 2}`)

	require.Error(t, err)
	assert.True(t, res.Failed)
	assert.Contains(t, res.Msg, "unsupported parameters: retries")
	assert.Empty(t, env.Runner.Calls)
}

func TestModuleCommand_SpawnFailureIsUnexpected(t *testing.T) {
	env := newTestEnv(t, "", "", 0)
	env.Runner.RunErr = assert.AnError

	res, err := runModuleCommand(t, env, `{"command": "TIME"}`)

	require.Error(t, err)
	assert.True(t, res.Failed)
	assert.False(t, res.Changed)
	assert.True(t, strings.HasPrefix(res.Msg, "an unexpected error occurred: "))
	assert.Contains(t, res.Exception, assert.AnError.Error())
	assert.Contains(t, res.Exception, "goroutine")
}

func TestModuleCommand_ConfigErrorIsUnexpected(t *testing.T) {
	factory := func(app.Options) (*app.Container, error) { return nil, assert.AnError }
	root := NewRootCommand(factory, "dev")

	out, _, err := execute(root, "module", writeArgsFile(t, `{"command": "TIME"}`))

	require.Error(t, err)
	var res moduleResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Failed)
	assert.Contains(t, res.Msg, "an unexpected error occurred")
}

func TestModuleCommand_MissingArgsFile(t *testing.T) {
	env := newTestEnv(t, "", "", 0)
	root := newRootCommandWithContainer(env.Container, "dev")

	out, _, err := execute(root, "module", "/nonexistent/args")

	require.Error(t, err)
	var res moduleResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Failed)
	assert.Contains(t, res.Msg, "read module arguments")
}
