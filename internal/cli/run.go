package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zos-automation/tso-command/internal/domain"
	"github.com/zos-automation/tso-command/internal/infra/render"
	"github.com/zos-automation/tso-command/internal/usecase"
)

// newRunCommand creates the run command.
func newRunCommand(d *deps) *cobra.Command {
	var opts struct {
		Format string
		Auth   bool
	}

	cmd := &cobra.Command{
		Use:   "run [flags] -- <command>...",
		Short: "Run a TSO command",
		Long: `Run a TSO command and print its return code and output.

Arguments are joined with single spaces to form the command text.
The command exits with status 1 when the TSO command returns a non-zero
return code.

Examples:
  # List catalog entries
  tso-command run -- "LISTCAT ENT('USER.DATA')"

  # Run an APF-authorized command
  tso-command run --auth -- LU TESTUSER

  # Machine-readable output
  tso-command run --format json -- TIME`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := d.Get()
			if err != nil {
				return err
			}

			formatName := c.Config.Output.Format
			if cmd.Flags().Changed("format") {
				formatName = opts.Format
			}
			format, err := domain.ParseOutputFormat(formatName)
			if err != nil {
				return err
			}

			command := strings.Join(args, " ")
			out, err := c.RunTSOCommandUseCase().Execute(cmd.Context(), usecase.RunTSOCommandInput{
				Command:    command,
				Authorized: opts.Auth,
			})
			if out == nil {
				return err
			}

			view := render.NewResult(command, out.Mode, out.RequestID, out.Result, out.Changed)
			if renderErr := render.Write(cmd.OutOrStdout(), format, view); renderErr != nil {
				return renderErr
			}

			if errors.Is(err, domain.ErrCommandFailed) {
				return &ExitCodeError{Code: 1, Err: err}
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.Auth, "auth", false, "Run the command APF authorized")
	cmd.Flags().StringVarP(&opts.Format, "format", "o", "", "Output format: text, json or yaml (default from config)")

	return cmd
}
