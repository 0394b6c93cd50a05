// Package tso implements the two TSO invocation paths.
//
// UnauthorizedInvoker hands the command to the tso program as an argument.
// AuthorizedInvoker runs IKJEFT01 under the APF-authorized helper and writes
// the command to SYSTSIN, because tso reports spurious select/read errors
// (BPXW9047I, BPXW9018I) on authorized commands even when they succeed.
package tso

import (
	"context"

	"github.com/zos-automation/tso-command/internal/domain"
)

// Ensure both invokers implement domain.Invoker.
var (
	_ domain.Invoker = (*UnauthorizedInvoker)(nil)
	_ domain.Invoker = (*AuthorizedInvoker)(nil)
)

// UnauthorizedInvoker runs `<program> <command>`.
type UnauthorizedInvoker struct {
	runner  domain.ProcessRunner
	program string
}

// NewUnauthorizedInvoker creates an invoker for the standard TSO facility.
func NewUnauthorizedInvoker(runner domain.ProcessRunner, program string) *UnauthorizedInvoker {
	return &UnauthorizedInvoker{runner: runner, program: program}
}

// BuildCommand returns the process to spawn for command.
func (i *UnauthorizedInvoker) BuildCommand(command string) *domain.ExecCommand {
	return domain.NewCommand(i.program, []string{command}, "")
}

// Invoke runs command unmodified as the single argument of the tso program.
func (i *UnauthorizedInvoker) Invoke(ctx context.Context, command string) (string, string, int, error) {
	return run(ctx, i.runner, i.BuildCommand(command))
}

// AuthorizedInvoker runs the privileged helper with the command on stdin.
type AuthorizedInvoker struct {
	runner  domain.ProcessRunner
	program string
	args    []string
}

// NewAuthorizedInvoker creates an invoker for the APF-authorized helper.
func NewAuthorizedInvoker(runner domain.ProcessRunner, program string, args []string) *AuthorizedInvoker {
	return &AuthorizedInvoker{
		runner:  runner,
		program: program,
		args:    append([]string(nil), args...),
	}
}

// BuildCommand returns the process to spawn for command, with the
// continuation-encoded command as stdin.
func (i *AuthorizedInvoker) BuildCommand(command string) *domain.ExecCommand {
	return domain.NewCommand(i.program, append([]string(nil), i.args...), "").
		WithStdin(domain.EncodeContinuation(command))
}

// Invoke runs command through the helper.
func (i *AuthorizedInvoker) Invoke(ctx context.Context, command string) (string, string, int, error) {
	return run(ctx, i.runner, i.BuildCommand(command))
}

func run(ctx context.Context, runner domain.ProcessRunner, cmd *domain.ExecCommand) (string, string, int, error) {
	res, err := runner.Run(ctx, cmd)
	if err != nil {
		return "", "", 0, err
	}
	return res.Stdout, res.Stderr, res.ExitCode, nil
}

// Ensure Invokers implements domain.InvokerSelector.
var _ domain.InvokerSelector = Invokers{}

// Invokers holds one invoker per invocation mode.
type Invokers struct {
	Unauthorized domain.Invoker
	Authorized   domain.Invoker
}

// NewInvokers builds both invokers from configuration.
func NewInvokers(runner domain.ProcessRunner, cfg *domain.Config) Invokers {
	return Invokers{
		Unauthorized: NewUnauthorizedInvoker(runner, cfg.TSO.Program),
		Authorized:   NewAuthorizedInvoker(runner, cfg.Auth.Program, cfg.Auth.Args),
	}
}

// For returns the invoker for mode.
func (s Invokers) For(mode domain.InvocationMode) domain.Invoker {
	if mode == domain.ModeAuthorized {
		return s.Authorized
	}
	return s.Unauthorized
}
