// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/zos-automation/tso-command/internal/domain"
)

// MockProcessRunner is a test double for domain.ProcessRunner.
// Fields are ordered to minimize memory padding.
type MockProcessRunner struct {
	Result *domain.ProcessResult
	RunErr error
	Calls  []domain.ExecCommand
}

// NewMockProcessRunner creates a runner that returns the given output.
func NewMockProcessRunner(stdout, stderr string, exitCode int) *MockProcessRunner {
	return &MockProcessRunner{
		Result: &domain.ProcessResult{Stdout: stdout, Stderr: stderr, ExitCode: exitCode},
	}
}

// Run records the command and returns the configured result.
func (m *MockProcessRunner) Run(_ context.Context, cmd *domain.ExecCommand) (*domain.ProcessResult, error) {
	m.Calls = append(m.Calls, *cmd)
	if m.RunErr != nil {
		return nil, m.RunErr
	}
	if m.Result == nil {
		return &domain.ProcessResult{}, nil
	}
	res := *m.Result
	return &res, nil
}

// MockInvoker is a test double for domain.Invoker.
// Fields are ordered to minimize memory padding.
type MockInvoker struct {
	Stdout   string
	Stderr   string
	Err      error
	Commands []string
	RC       int
}

// Invoke records the command and returns the configured output.
func (m *MockInvoker) Invoke(_ context.Context, command string) (string, string, int, error) {
	m.Commands = append(m.Commands, command)
	if m.Err != nil {
		return "", "", 0, m.Err
	}
	return m.Stdout, m.Stderr, m.RC, nil
}

// MockInvokerSelector is a test double for domain.InvokerSelector.
type MockInvokerSelector struct {
	Unauthorized *MockInvoker
	Authorized   *MockInvoker
}

// NewMockInvokerSelector creates a selector with two empty invokers.
func NewMockInvokerSelector() *MockInvokerSelector {
	return &MockInvokerSelector{
		Unauthorized: &MockInvoker{},
		Authorized:   &MockInvoker{},
	}
}

// For returns the invoker for mode.
func (m *MockInvokerSelector) For(mode domain.InvocationMode) domain.Invoker {
	if mode == domain.ModeAuthorized {
		return m.Authorized
	}
	return m.Unauthorized
}

// TotalCalls returns the number of invocations across both invokers.
func (m *MockInvokerSelector) TotalCalls() int {
	return len(m.Unauthorized.Commands) + len(m.Authorized.Commands)
}

// MockLogger is a test double for domain.Logger that keeps entries in memory.
type MockLogger struct {
	Entries []string
	mu      sync.Mutex
}

func (m *MockLogger) add(level, requestID, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, fmt.Sprintf("[%s] [%s] [%s] %s", level, requestID, category, msg))
}

// Debug records a debug entry.
func (m *MockLogger) Debug(requestID, category, msg string) { m.add("DEBUG", requestID, category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(requestID, category, msg string) { m.add("INFO", requestID, category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(requestID, category, msg string) { m.add("WARN", requestID, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(requestID, category, msg string) { m.add("ERROR", requestID, category, msg) }

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Load returns the configured config or a default one.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// LoadGlobal behaves like Load.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	return m.Load()
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	GlobalInfo domain.ConfigInfo
	InitErr    error
	Written    map[string]string
}

// GetGlobalConfigInfo returns the configured info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalInfo
}

// InitGlobalConfig records a write to the global config path.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config) error {
	return m.InitConfigAt(m.GlobalInfo.Path, cfg)
}

// InitConfigAt records a write at path.
func (m *MockConfigManager) InitConfigAt(path string, cfg *domain.Config) error {
	if m.InitErr != nil {
		return m.InitErr
	}
	if m.Written == nil {
		m.Written = make(map[string]string)
	}
	m.Written[path] = domain.RenderConfigTemplate(cfg)
	return nil
}
