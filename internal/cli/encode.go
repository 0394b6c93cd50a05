package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/zos-automation/tso-command/internal/infra/render"
	"github.com/zos-automation/tso-command/internal/usecase"
)

// newEncodeCommand creates the encode command.
func newEncodeCommand(d *deps) *cobra.Command {
	var numbered bool

	cmd := &cobra.Command{
		Use:   "encode [flags] -- <command>...",
		Short: "Show the SYSTSIN data for an authorized command",
		Long: `Print the input lines an authorized command would be sent as, without
running anything.

Commands longer than 72 characters are cut every 70 characters and each
continued line ends with "-".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := usecase.NewEncodeCommand()
			if c, err := d.Get(); err == nil {
				uc = c.EncodeCommandUseCase()
			}

			out, err := uc.Execute(cmd.Context(), usecase.EncodeCommandInput{
				Command: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}
			return render.Payload(cmd.OutOrStdout(), out.Lines, numbered)
		},
	}

	cmd.Flags().BoolVarP(&numbered, "numbered", "n", false, "Prefix each line with its number and length")

	return cmd
}
