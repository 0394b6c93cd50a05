package cli

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zos-automation/tso-command/internal/domain"
	"github.com/zos-automation/tso-command/internal/infra/hostproto"
	"github.com/zos-automation/tso-command/internal/usecase"
)

// newModuleCommand creates the module command.
func newModuleCommand(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "module <args-file>",
		Short: "Run as an automation-host module",
		Long: `Read module parameters from a JSON file, run the TSO command and write
one JSON result object to stdout.

Parameters:
  command  (string, required)  TSO command to run
  auth     (bool, default no)  Run the command APF authorized

Result keys: changed, failed, rc, content, stderr, msg, exception.
The process exits with status 1 when the result is failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := runModule(cmd.Context(), d, args[0])
			if err := hostproto.Write(cmd.OutOrStdout(), resp); err != nil {
				return err
			}
			if resp.Failed {
				return &ExitCodeError{Code: 1}
			}
			return nil
		},
	}

	return cmd
}

// runModule never returns an error: every outcome becomes a response.
func runModule(ctx context.Context, d *deps, argsPath string) (resp hostproto.Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = hostproto.NewFailureResponse(
				fmt.Sprintf("%s: %v", domain.ErrUnexpected, r),
				string(debug.Stack()),
			)
		}
	}()

	args, err := hostproto.ReadArgsFile(argsPath)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgs) {
			return hostproto.NewFailureResponse(err.Error(), "")
		}
		return unexpectedResponse(err)
	}

	// Blank commands are rejected before any configuration or process work.
	if _, err := domain.NewCommandRequest(args.Command, args.Auth); err != nil {
		return hostproto.NewFailureResponse(err.Error(), "")
	}

	c, err := d.Get()
	if err != nil {
		return unexpectedResponse(err)
	}

	out, err := c.RunTSOCommandUseCase().Execute(ctx, usecase.RunTSOCommandInput{
		Command:    args.Command,
		Authorized: args.Auth,
	})
	return moduleResponse(out, err)
}

// moduleResponse maps a use case outcome to a host response.
func moduleResponse(out *usecase.RunTSOCommandOutput, err error) hostproto.Response {
	switch {
	case err == nil:
		return hostproto.NewResultResponse(out.Result, out.Changed, "")
	case errors.Is(err, domain.ErrEmptyCommand):
		return hostproto.NewFailureResponse(err.Error(), "")
	case errors.Is(err, domain.ErrCommandFailed) && out != nil:
		return hostproto.NewResultResponse(out.Result, out.Changed, err.Error())
	default:
		return unexpectedResponse(err)
	}
}

func unexpectedResponse(err error) hostproto.Response {
	return hostproto.NewFailureResponse(
		fmt.Sprintf("%s: %v", domain.ErrUnexpected, err),
		errorTrace(err),
	)
}

// errorTrace lists every error in the wrap chain followed by the stack.
func errorTrace(err error) string {
	var b strings.Builder
	for e := err; e != nil; e = errors.Unwrap(e) {
		fmt.Fprintf(&b, "%T: %v\n", e, e)
	}
	b.Write(debug.Stack())
	return b.String()
}
