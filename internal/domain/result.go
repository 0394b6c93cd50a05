package domain

import "strings"

// ExecutionResult is the structured outcome of a dispatched TSO command.
// Fields are ordered to minimize memory padding.
type ExecutionResult struct {
	StandardError  string
	StandardOutput []string
	ReturnCode     int
}

// NewExecutionResult packages raw process output.
func NewExecutionResult(stdout, stderr string, rc int) *ExecutionResult {
	return &ExecutionResult{
		ReturnCode:     rc,
		StandardOutput: SplitLines(stdout),
		StandardError:  stderr,
	}
}

// Succeeded reports whether the command exited with return code 0.
func (r *ExecutionResult) Succeeded() bool {
	return r.ReturnCode == 0
}

// SplitLines splits text on line breaks (\n, \r\n or \r) and drops the break
// characters. A trailing break does not produce an empty final line, and empty
// text yields an empty, non-nil slice.
func SplitLines(text string) []string {
	lines := []string{}
	if text == "" {
		return lines
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return append(lines, strings.Split(text, "\n")...)
}
