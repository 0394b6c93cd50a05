// Package executor provides command execution functionality.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/zos-automation/tso-command/internal/domain"
)

// Client implements domain.ProcessRunner interface.
type Client struct{}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.ProcessRunner interface.
var _ domain.ProcessRunner = (*Client)(nil)

// Run executes cmd, feeding cmd.Stdin to the process, and waits for it to exit.
// Stdout and stderr are captured separately. A non-zero exit status is
// returned in the result; an error is returned only when the process could
// not be started or waited on.
func (c *Client) Run(ctx context.Context, cmd *domain.ExecCommand) (*domain.ProcessResult, error) {
	if cmd == nil || cmd.Program == "" {
		return nil, fmt.Errorf("run: %w", domain.ErrProgramNotFound)
	}

	// #nosec G204 - cmd.Program and cmd.Args come from configuration, the TSO
	// command itself is passed as a single argument or on stdin.
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	if cmd.Stdin != "" {
		execCmd.Stdin = strings.NewReader(cmd.Stdin)
	}

	var stdout, stderr bytes.Buffer
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	err := execCmd.Run()
	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("run %s: %w", cmd.Program, err)
		}
		exitCode = exitErr.ExitCode()
	}

	return &domain.ProcessResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}, nil
}
