// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/zos-automation/tso-command/internal/domain"
)

// RunTSOCommandInput contains the parameters for running one TSO command.
// Fields are ordered to minimize memory padding.
type RunTSOCommandInput struct {
	Command    string // TSO command text (required, non-blank)
	RequestID  string // Correlation id for log entries (generated when empty)
	Authorized bool   // Run through the APF-authorized helper
}

// RunTSOCommandOutput contains the structured result of a dispatched command.
// Fields are ordered to minimize memory padding.
type RunTSOCommandOutput struct {
	Result    *domain.ExecutionResult
	RequestID string
	Mode      domain.InvocationMode
	Changed   bool // True when the command exited with return code 0
}

// RunTSOCommand is the use case for dispatching a TSO command.
type RunTSOCommand struct {
	invokers domain.InvokerSelector
	logger   domain.Logger
	newID    func() string
}

// NewRunTSOCommand creates a new RunTSOCommand use case.
func NewRunTSOCommand(invokers domain.InvokerSelector, logger domain.Logger) *RunTSOCommand {
	return &RunTSOCommand{
		invokers: invokers,
		logger:   logger,
		newID:    newRequestID,
	}
}

func newRequestID() string {
	return uuid.NewString()[:8]
}

// Execute validates the command, runs it through the invoker selected by the
// authorization flag and packages the output.
//
// Errors:
//   - domain.ErrEmptyCommand when the command is blank; nothing is spawned.
//   - *domain.CommandFailedError (errors.Is ErrCommandFailed) when the command
//     exits non-zero; the output is returned alongside the error.
//   - any error from the invoker, unchanged.
func (uc *RunTSOCommand) Execute(ctx context.Context, in RunTSOCommandInput) (*RunTSOCommandOutput, error) {
	reqID := in.RequestID
	if reqID == "" {
		reqID = uc.newID()
	}

	req, err := domain.NewCommandRequest(in.Command, in.Authorized)
	if err != nil {
		uc.logger.Warn(reqID, "dispatch", "rejected blank command")
		return nil, err
	}

	uc.logger.Info(reqID, "dispatch", fmt.Sprintf("running %s command: %q", req.Mode(), req.Command()))
	if req.Authorized() && domain.NeedsContinuation(req.Command()) {
		uc.logger.Debug(reqID, "dispatch", fmt.Sprintf("command split into %d continuation lines",
			len(domain.ContinuationSegments(req.Command()))))
	}

	stdout, stderr, rc, err := uc.invokers.For(req.Mode()).Invoke(ctx, req.Command())
	if err != nil {
		uc.logger.Error(reqID, "dispatch", fmt.Sprintf("invocation failed: %v", err))
		return nil, err
	}

	result := domain.NewExecutionResult(stdout, stderr, rc)
	out := &RunTSOCommandOutput{
		Result:    result,
		RequestID: reqID,
		Mode:      req.Mode(),
		Changed:   result.Succeeded(),
	}

	if !result.Succeeded() {
		uc.logger.Warn(reqID, "dispatch", fmt.Sprintf("command exited with rc=%d", rc))
		return out, &domain.CommandFailedError{Command: req.Command(), ReturnCode: rc}
	}

	uc.logger.Info(reqID, "dispatch", fmt.Sprintf("command completed, %d output lines", len(result.StandardOutput)))
	return out, nil
}
