// Package app provides the dependency injection container for the application.
package app

import (
	"io"

	"github.com/zos-automation/tso-command/internal/domain"
	"github.com/zos-automation/tso-command/internal/infra/config"
	"github.com/zos-automation/tso-command/internal/infra/executor"
	"github.com/zos-automation/tso-command/internal/infra/logging"
	"github.com/zos-automation/tso-command/internal/infra/tso"
	"github.com/zos-automation/tso-command/internal/usecase"
)

// Options controls how the container is built.
type Options struct {
	LogMirror  io.Writer // Also write log entries here (e.g. stderr for --verbose)
	ConfigPath string    // Explicit config file (empty = TSO_COMMAND_CONFIG, then global only)
	Verbose    bool      // Force debug level
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Runner        domain.ProcessRunner
	Invokers      domain.InvokerSelector
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Pointer fields
	Config *domain.Config

	closers []io.Closer
}

// New creates a new Container, loading configuration from disk.
func New(opts Options) (*Container, error) {
	configLoader := config.NewLoader(config.ExplicitPathFromEnv(opts.ConfigPath))
	cfg, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	level := logging.ParseLevel(cfg.Log.Level)
	if opts.Verbose {
		level = logging.ParseLevel("debug")
	}
	logger := logging.New(cfg.Log.Dir, level)
	if opts.LogMirror != nil {
		logger.WithMirror(opts.LogMirror)
	}

	runner := executor.NewClient()

	return &Container{
		Runner:        runner,
		Invokers:      tso.NewInvokers(runner, cfg),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(),
		Logger:        logger,
		Config:        cfg,
		closers:       []io.Closer{logger},
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, runner domain.ProcessRunner, logger domain.Logger, loader domain.ConfigLoader, manager domain.ConfigManager) *Container {
	return &Container{
		Runner:        runner,
		Invokers:      tso.NewInvokers(runner, cfg),
		ConfigLoader:  loader,
		ConfigManager: manager,
		Logger:        logger,
		Config:        cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	var lastErr error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil {
			lastErr = err
		}
	}
	c.closers = nil
	return lastErr
}

// UseCase factory methods

// RunTSOCommandUseCase returns a new RunTSOCommand use case.
func (c *Container) RunTSOCommandUseCase() *usecase.RunTSOCommand {
	return usecase.NewRunTSOCommand(c.Invokers, c.Logger)
}

// EncodeCommandUseCase returns a new EncodeCommand use case.
func (c *Container) EncodeCommandUseCase() *usecase.EncodeCommand {
	return usecase.NewEncodeCommand()
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
