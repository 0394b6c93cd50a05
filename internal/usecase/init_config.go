package usecase

import (
	"context"

	"github.com/zos-automation/tso-command/internal/domain"
)

// InitConfigInput contains the input for the InitConfig use case.
type InitConfigInput struct {
	Config *domain.Config // Values rendered into the template (defaults when nil)
	Path   string         // Target file; empty means the global config path
}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Path string // Path to the created config file
}

// InitConfig generates a configuration file template.
type InitConfig struct {
	configManager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configManager domain.ConfigManager) *InitConfig {
	return &InitConfig{
		configManager: configManager,
	}
}

// Execute creates a configuration file with default template.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	cfg := in.Config
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}

	if in.Path != "" {
		if err := uc.configManager.InitConfigAt(in.Path, cfg); err != nil {
			return nil, err
		}
		return &InitConfigOutput{Path: in.Path}, nil
	}

	path := uc.configManager.GetGlobalConfigInfo().Path
	if err := uc.configManager.InitGlobalConfig(cfg); err != nil {
		return nil, err
	}
	return &InitConfigOutput{Path: path}, nil
}
