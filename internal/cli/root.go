// Package cli provides the command-line interface for tso-command.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/zos-automation/tso-command/internal/app"
)

// Command group IDs.
const (
	groupExec  = "exec"
	groupSetup = "setup"
)

// ContainerFactory builds the application container once flags are parsed.
type ContainerFactory func(opts app.Options) (*app.Container, error)

// deps builds the container on first use so that the module command can
// report configuration errors in its own response format.
type deps struct {
	factory   ContainerFactory
	container *app.Container
	err       error
	errOut    io.Writer
	opts      app.Options
	built     bool
}

// Get returns the container, building it on the first call.
func (d *deps) Get() (*app.Container, error) {
	if d.built {
		return d.container, d.err
	}
	d.built = true
	if d.factory == nil {
		d.err = fmt.Errorf("no container available")
		return nil, d.err
	}
	d.container, d.err = d.factory(d.opts)
	if d.err != nil {
		return nil, d.err
	}
	if d.errOut != nil {
		for _, w := range d.container.Config.Warnings {
			_, _ = fmt.Fprintf(d.errOut, "Warning: %s\n", w)
		}
	}
	return d.container, nil
}

// Close releases the container if it was built.
func (d *deps) Close() error {
	if d.container == nil {
		return nil
	}
	return d.container.Close()
}

// NewRootCommand creates the root command for tso-command.
// The container is built from factory after global flags are parsed.
func NewRootCommand(factory ContainerFactory, version string) *cobra.Command {
	return newRootCommand(&deps{factory: factory}, version)
}

// newRootCommandWithContainer creates a root command around an existing container.
func newRootCommandWithContainer(c *app.Container, version string) *cobra.Command {
	return newRootCommand(&deps{container: c, built: true}, version)
}

func newRootCommand(d *deps, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "tso-command",
		Short: "Run TSO commands on z/OS and return structured results",
		Long: `tso-command runs a TSO command on the local z/OS system and returns
its return code and output lines.

Unauthorized commands run through the tso program. Authorized (APF) commands
run IKJEFT01 through the mvscmdauth helper with the command written to SYSTSIN,
split into 70-character continuation lines when longer than 72 characters.

Use "tso-command module <args-file>" when invoking from an automation host.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			d.errOut = cmd.ErrOrStderr()
			if d.opts.Verbose {
				d.opts.LogMirror = cmd.ErrOrStderr()
			}
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return d.Close()
		},
	}

	root.PersistentFlags().StringVar(&d.opts.ConfigPath, "config", "", "Config file (default: $TSO_COMMAND_CONFIG, then ~/.config/tso-command/config.toml)")
	root.PersistentFlags().BoolVar(&d.opts.Verbose, "verbose", false, "Write debug logs to stderr")

	root.AddGroup(
		&cobra.Group{ID: groupExec, Title: "Execution:"},
		&cobra.Group{ID: groupSetup, Title: "Setup:"},
	)

	runCmd := newRunCommand(d)
	runCmd.GroupID = groupExec

	moduleCmd := newModuleCommand(d)
	moduleCmd.GroupID = groupExec

	encodeCmd := newEncodeCommand(d)
	encodeCmd.GroupID = groupExec

	configCmd := newConfigCommand(d)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		runCmd,
		moduleCmd,
		encodeCmd,
		configCmd,
	)

	return root
}

// ExitCodeError asks main to exit with Code. Err, when set, is printed first.
type ExitCodeError struct {
	Err  error
	Code int
}

// Error implements error.
func (e *ExitCodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCodeError) Unwrap() error {
	return e.Err
}
