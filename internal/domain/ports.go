package domain

import "context"

// ProcessRunner spawns one external process and waits for it to exit.
type ProcessRunner interface {
	// Run executes cmd. A non-zero exit is reported through
	// ProcessResult.ExitCode, not as an error; errors mean the process
	// could not be run at all.
	Run(ctx context.Context, cmd *ExecCommand) (*ProcessResult, error)
}

// Invoker runs a TSO command through one external facility.
type Invoker interface {
	// Invoke executes command and returns its raw output and return code.
	Invoke(ctx context.Context, command string) (stdout, stderr string, rc int, err error)
}

// Logger writes request-scoped log entries.
type Logger interface {
	Debug(requestID, category, msg string)
	Info(requestID, category, msg string)
	Warn(requestID, category, msg string)
	Error(requestID, category, msg string)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- explicit file).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ConfigManager inspects and creates config files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitGlobalConfig writes a default global config file.
	InitGlobalConfig(cfg *Config) error

	// InitConfigAt writes a default config file at path.
	InitConfigAt(path string, cfg *Config) error
}

// InvokerSelector picks the invoker for an invocation mode.
type InvokerSelector interface {
	For(mode InvocationMode) Invoker
}
