// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/zos-automation/tso-command/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	explicitPath  string // Config file named by --config or TSO_COMMAND_CONFIG
	globalConfDir string // Path to global config directory (e.g., ~/.config/tso-command)
}

// NewLoader creates a new Loader.
func NewLoader(explicitPath string) *Loader {
	return &Loader{
		explicitPath:  explicitPath,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(explicitPath, globalConfDir string) *Loader {
	return &Loader{
		explicitPath:  explicitPath,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// ExplicitPathFromEnv returns flagValue, falling back to TSO_COMMAND_CONFIG.
func ExplicitPathFromEnv(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(domain.ConfigEnvVar)
}

// Load returns the merged configuration.
// Precedence: default <- global <- explicit file. A missing global file is
// ignored; a missing explicit file is an error.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	var explicit *domain.Config
	if l.explicitPath != "" {
		explicit, err = l.loadFile(l.explicitPath)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", l.explicitPath, err)
		}
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if explicit != nil {
		base = mergeConfigs(base, explicit)
	}

	if err := base.Validate(); err != nil {
		return nil, err
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	globalPath := filepath.Join(l.globalConfDir, domain.ConfigFileName)
	return l.loadFile(globalPath)
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "tso":
			for k, v := range m {
				switch k {
				case "program":
					if s, ok := v.(string); ok {
						res.TSO.Program = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [tso]: %s", k))
				}
			}
		case "auth":
			for k, v := range m {
				switch k {
				case "program":
					if s, ok := v.(string); ok {
						res.Auth.Program = s
					}
				case "args":
					if args, ok := toStringSlice(v); ok {
						res.Auth.Args = args
					} else {
						warnings = append(warnings, "invalid value in [auth]: args must be an array of strings")
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [auth]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				case "dir":
					if s, ok := v.(string); ok {
						res.Log.Dir = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "output":
			for k, v := range m {
				switch k {
				case "format":
					if s, ok := v.(string); ok {
						res.Output.Format = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [output]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

func toStringSlice(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// mergeConfigs overlays non-empty values of override onto base.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	res := *base
	res.Auth.Args = append([]string(nil), base.Auth.Args...)
	res.Warnings = append(append([]string(nil), base.Warnings...), override.Warnings...)

	if override.TSO.Program != "" {
		res.TSO.Program = override.TSO.Program
	}
	if override.Auth.Program != "" {
		res.Auth.Program = override.Auth.Program
	}
	if override.Auth.Args != nil {
		res.Auth.Args = append([]string(nil), override.Auth.Args...)
	}
	if override.Log.Level != "" {
		res.Log.Level = override.Log.Level
	}
	if override.Log.Dir != "" {
		res.Log.Dir = override.Log.Dir
	}
	if override.Output.Format != "" {
		res.Output.Format = override.Output.Format
	}
	return &res
}
