package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zos-automation/tso-command/internal/domain"
)

func TestEncodeCommand(t *testing.T) {
	env := newTestEnv(t, "", "", 0)
	root := newRootCommandWithContainer(env.Container, "dev")
	command := strings.Repeat("a", 70) + strings.Repeat("b", 70) + strings.Repeat("c", 10)

	out, _, err := execute(root, "encode", "--", command)

	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 70)+"-\n"+strings.Repeat("b", 70)+"-\n"+strings.Repeat("c", 10)+"\n", out)
	assert.Empty(t, env.Runner.Calls)
}

func TestEncodeCommand_WorksWithoutConfig(t *testing.T) {
	root := NewRootCommand(nil, "dev")

	out, _, err := execute(root, "encode", "--", "LU", "TESTUSER")

	require.NoError(t, err)
	assert.Equal(t, "LU TESTUSER\n", out)
}

func TestEncodeCommand_Blank(t *testing.T) {
	root := NewRootCommand(nil, "dev")

	_, _, err := execute(root, "encode", "--", " ")

	assert.ErrorIs(t, err, domain.ErrEmptyCommand)
}
