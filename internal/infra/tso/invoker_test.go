package tso

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zos-automation/tso-command/internal/domain"
	"github.com/zos-automation/tso-command/internal/testutil"
)

var authArgs = []string{"--pgm=IKJEFT01", "--sysprint=*", "--systsprt=*", "--systsin=stdin"}

func TestUnauthorizedInvoker_PassesCommandUnmodified(t *testing.T) {
	tests := []string{
		"LISTCAT ENT('imstestl.ims1.temp.ps')",
		"delete 'imstestl.ims1.temp.ps'",
		"alloc da('imstestl.ims1.temp.ps') catalog lrecl(133) blksize(13300) recfm(f b) dsorg(po) cylinders space(5,5) dir(5)",
	}

	for _, command := range tests {
		runner := testutil.NewMockProcessRunner("READY\n", "", 0)
		inv := NewUnauthorizedInvoker(runner, "tso")

		stdout, stderr, rc, err := inv.Invoke(context.Background(), command)

		require.NoError(t, err)
		assert.Equal(t, "READY\n", stdout)
		assert.Empty(t, stderr)
		assert.Equal(t, 0, rc)
		require.Len(t, runner.Calls, 1)
		assert.Equal(t, "tso", runner.Calls[0].Program)
		assert.Equal(t, []string{command}, runner.Calls[0].Args)
		assert.Empty(t, runner.Calls[0].Stdin)
	}
}

func TestAuthorizedInvoker_ShortCommandSingleLine(t *testing.T) {
	runner := testutil.NewMockProcessRunner("IKJ56xxxI\n", "", 0)
	inv := NewAuthorizedInvoker(runner, "mvscmdauth", authArgs)

	_, _, _, err := inv.Invoke(context.Background(), "LU TESTUSER")

	require.NoError(t, err)
	require.Len(t, runner.Calls, 1)
	call := runner.Calls[0]
	assert.Equal(t, "mvscmdauth", call.Program)
	assert.Equal(t, authArgs, call.Args)
	assert.Equal(t, "LU TESTUSER", call.Stdin)
	assert.NotContains(t, call.Stdin, "\n")
}

func TestAuthorizedInvoker_LongCommandContinued(t *testing.T) {
	runner := testutil.NewMockProcessRunner("", "", 0)
	inv := NewAuthorizedInvoker(runner, "mvscmdauth", authArgs)
	command := strings.Repeat("a", 70) + strings.Repeat("b", 70) + strings.Repeat("c", 10)

	_, _, _, err := inv.Invoke(context.Background(), command)

	require.NoError(t, err)
	require.Len(t, runner.Calls, 1)
	lines := strings.Split(runner.Calls[0].Stdin, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("a", 70)+"-", lines[0])
	assert.Equal(t, strings.Repeat("b", 70)+"-", lines[1])
	assert.Equal(t, strings.Repeat("c", 10), lines[2])
}

func TestAuthorizedInvoker_DoesNotShareArgs(t *testing.T) {
	args := []string{"--pgm=IKJEFT01"}
	runner := testutil.NewMockProcessRunner("", "", 0)
	inv := NewAuthorizedInvoker(runner, "mvscmdauth", args)
	args[0] = "changed"

	cmd := inv.BuildCommand("LU X")
	cmd.Args[0] = "mutated"

	assert.Equal(t, []string{"--pgm=IKJEFT01"}, inv.BuildCommand("LU X").Args)
}

func TestInvoke_PassesThroughNonZeroExit(t *testing.T) {
	runner := testutil.NewMockProcessRunner("IKJ56228I DATA SET NOT IN CATALOG\n", "warning", 255)
	inv := NewAuthorizedInvoker(runner, "mvscmdauth", authArgs)

	stdout, stderr, rc, err := inv.Invoke(context.Background(), "delete 'A.B'")

	require.NoError(t, err)
	assert.Equal(t, 255, rc)
	assert.Equal(t, "IKJ56228I DATA SET NOT IN CATALOG\n", stdout)
	assert.Equal(t, "warning", stderr)
}

func TestInvoke_PropagatesRunnerError(t *testing.T) {
	spawnErr := errors.New("exec: \"tso\": executable file not found in $PATH")
	runner := &testutil.MockProcessRunner{RunErr: spawnErr}

	for _, inv := range []domain.Invoker{
		NewUnauthorizedInvoker(runner, "tso"),
		NewAuthorizedInvoker(runner, "mvscmdauth", authArgs),
	} {
		_, _, _, err := inv.Invoke(context.Background(), "LU X")
		assert.ErrorIs(t, err, spawnErr)
	}
}

func TestInvokers_For(t *testing.T) {
	runner := testutil.NewMockProcessRunner("", "", 0)
	invokers := NewInvokers(runner, domain.NewDefaultConfig())

	assert.IsType(t, &UnauthorizedInvoker{}, invokers.For(domain.ModeUnauthorized))
	assert.IsType(t, &AuthorizedInvoker{}, invokers.For(domain.ModeAuthorized))
}
