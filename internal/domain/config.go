package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string     `toml:"-"`
	Auth     AuthConfig   `toml:"auth"`
	TSO      TSOConfig    `toml:"tso"`
	Log      LogConfig    `toml:"log"`
	Output   OutputConfig `toml:"output"`
}

// TSOConfig holds settings for the unauthorized path from [tso] section.
type TSOConfig struct {
	Program string `toml:"program,omitempty"` // Program that runs a TSO command passed as argument
}

// AuthConfig holds settings for the authorized path from [auth] section.
type AuthConfig struct {
	Program string   `toml:"program,omitempty"` // Privileged program-invocation helper
	Args    []string `toml:"args,omitempty"`    // Helper arguments; the command arrives on stdin
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
	Dir   string `toml:"dir,omitempty"`   // Directory for tso-command.log (empty = no file log)
}

// OutputConfig holds rendering settings from [output] section.
type OutputConfig struct {
	Format string `toml:"format,omitempty"` // text, json or yaml
}

// OutputFormat names a result rendering.
type OutputFormat string

// Output formats.
const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// ParseOutputFormat validates a format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q (want text, json or yaml)", ErrInvalidFormat, s)
	}
}

// Default configuration values.
const (
	DefaultTSOProgram  = "tso"
	DefaultAuthProgram = "mvscmdauth"
	DefaultLogLevel    = "info"
	DefaultFormat      = string(FormatText)
)

// DefaultAuthArgs runs IKJEFT01 with SYSTSIN read from stdin and both print
// DDs sent to stdout.
func DefaultAuthArgs() []string {
	return []string{"--pgm=IKJEFT01", "--sysprint=*", "--systsprt=*", "--systsin=stdin"}
}

// Config file locations.
const (
	AppDirName     = "tso-command"        // Directory name under XDG_CONFIG_HOME
	ConfigFileName = "config.toml"        // Config file name
	LogFileName    = "tso-command.log"    // Log file name inside [log].dir
	ConfigEnvVar   = "TSO_COMMAND_CONFIG" // Explicit config file path
)

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// LogFilePath returns the log file path inside a log directory.
func LogFilePath(logDir string) string {
	return filepath.Join(logDir, LogFileName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		TSO: TSOConfig{
			Program: DefaultTSOProgram,
		},
		Auth: AuthConfig{
			Program: DefaultAuthProgram,
			Args:    DefaultAuthArgs(),
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Output: OutputConfig{
			Format: DefaultFormat,
		},
	}
}

// Validate checks that both invocation paths have a program.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.TSO.Program) == "" {
		return fmt.Errorf("%w: [tso].program", ErrProgramNotFound)
	}
	if strings.TrimSpace(c.Auth.Program) == "" {
		return fmt.Errorf("%w: [auth].program", ErrProgramNotFound)
	}
	if _, err := ParseOutputFormat(c.Output.Format); err != nil {
		return err
	}
	return nil
}

type configTemplateData struct {
	TSOProgram  string
	AuthProgram string
	AuthArgs    string
	LogLevel    string
	LogDir      string
	Format      string
}

// RenderConfigTemplate renders a commented config file from cfg.
func RenderConfigTemplate(cfg *Config) string {
	quoted := make([]string, 0, len(cfg.Auth.Args))
	for _, a := range cfg.Auth.Args {
		quoted = append(quoted, strconv.Quote(a))
	}
	data := configTemplateData{
		TSOProgram:  strconv.Quote(cfg.TSO.Program),
		AuthProgram: strconv.Quote(cfg.Auth.Program),
		AuthArgs:    "[" + strings.Join(quoted, ", ") + "]",
		LogLevel:    strconv.Quote(cfg.Log.Level),
		LogDir:      strconv.Quote(cfg.Log.Dir),
		Format:      strconv.Quote(cfg.Output.Format),
	}

	tmpl := template.Must(template.New("config").Parse(configTemplateContent))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// The template is embedded and only references fields of data.
		panic(err)
	}
	return buf.String()
}
