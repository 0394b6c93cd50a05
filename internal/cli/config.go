package cli

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/zos-automation/tso-command/internal/domain"
	"github.com/zos-automation/tso-command/internal/usecase"
	"gopkg.in/yaml.v3"
)

// newConfigCommand creates the config command.
func newConfigCommand(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage tso-command configuration files and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(d))
	cmd.AddCommand(newConfigTemplateCommand())
	cmd.AddCommand(newConfigInitCommand(d))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(d *deps) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging defaults, the global config
file and the file given by --config.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := d.Get()
			if err != nil {
				return err
			}

			out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if format == "yaml" {
				return formatEffectiveConfigYAML(w, out.Effective)
			}

			_, _ = fmt.Fprintln(w, "[Loaded from]")
			if out.GlobalConfig.Exists {
				_, _ = fmt.Fprintf(w, "- %s\n", out.GlobalConfig.Path)
			} else {
				_, _ = fmt.Fprintf(w, "- %s (not found)\n", out.GlobalConfig.Path)
			}
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, out.Effective)
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", "Output format: toml or yaml")

	return cmd
}

// formatEffectiveConfig formats the effective config in TOML format.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// effectiveConfigYAML mirrors domain.Config with yaml keys.
type effectiveConfigYAML struct {
	TSO struct {
		Program string `yaml:"program"`
	} `yaml:"tso"`
	Auth struct {
		Program string   `yaml:"program"`
		Args    []string `yaml:"args"`
	} `yaml:"auth"`
	Log struct {
		Level string `yaml:"level"`
		Dir   string `yaml:"dir"`
	} `yaml:"log"`
	Output struct {
		Format string `yaml:"format"`
	} `yaml:"output"`
}

// formatEffectiveConfigYAML formats the effective config in YAML format.
func formatEffectiveConfigYAML(w io.Writer, cfg *domain.Config) error {
	var out effectiveConfigYAML
	out.TSO.Program = cfg.TSO.Program
	out.Auth.Program = cfg.Auth.Program
	out.Auth.Args = cfg.Auth.Args
	out.Log.Level = cfg.Log.Level
	out.Log.Dir = cfg.Log.Dir
	out.Output.Format = cfg.Output.Format

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

// newConfigTemplateCommand creates the config template subcommand.
func newConfigTemplateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Output configuration template",
		Long: `Output a configuration file template with default values to stdout.
It does not read existing configuration files and works even if they are broken.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), domain.RenderConfigTemplate(domain.NewDefaultConfig()))
			return nil
		},
	}
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(d *deps) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate configuration file",
		Long: `Generate a configuration file with default values.

By default, creates the global configuration file at ~/.config/tso-command/config.toml.
With --path, creates the file at the given location.

Error conditions:
- Target file already exists: error`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := d.Get()
			if err != nil {
				return err
			}

			out, err := c.InitConfigUseCase().Execute(cmd.Context(), usecase.InitConfigInput{
				Path: path,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Write the config file to this path instead of the global location")

	return cmd
}
