// Package render writes command results for humans (styled text) and for
// scripts (JSON or YAML).
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zos-automation/tso-command/internal/domain"
	"gopkg.in/yaml.v3"
)

// Colors defines the palette for text output.
var Colors = struct {
	Success lipgloss.Color
	Error   lipgloss.Color
	Muted   lipgloss.Color
}{
	Success: lipgloss.Color("#00B894"), // Green
	Error:   lipgloss.Color("#D63031"), // Red
	Muted:   lipgloss.Color("#636E72"), // Gray
}

var (
	okStyle     = lipgloss.NewStyle().Bold(true).Foreground(Colors.Success)
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(Colors.Error)
	mutedStyle  = lipgloss.NewStyle().Foreground(Colors.Muted)
	stderrStyle = lipgloss.NewStyle().Foreground(Colors.Error)
)

// Result is the rendered view of one command execution.
// Fields are ordered to minimize memory padding.
type Result struct {
	Command   string   `json:"command" yaml:"command"`
	Mode      string   `json:"mode" yaml:"mode"`
	RequestID string   `json:"request_id" yaml:"request_id"`
	Stderr    string   `json:"stderr,omitempty" yaml:"stderr,omitempty"`
	Content   []string `json:"content" yaml:"content"`
	RC        int      `json:"rc" yaml:"rc"`
	Changed   bool     `json:"changed" yaml:"changed"`
}

// NewResult builds a view from an execution result.
func NewResult(command string, mode domain.InvocationMode, requestID string, res *domain.ExecutionResult, changed bool) Result {
	content := res.StandardOutput
	if content == nil {
		content = []string{}
	}
	return Result{
		Command:   command,
		Mode:      string(mode),
		RequestID: requestID,
		RC:        res.ReturnCode,
		Changed:   changed,
		Content:   content,
		Stderr:    res.StandardError,
	}
}

// Write renders r to w in the given format.
func Write(w io.Writer, format domain.OutputFormat, r Result) error {
	switch format {
	case domain.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(r)
	case domain.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case domain.FormatText, "":
		return writeText(w, r)
	default:
		return fmt.Errorf("%w: %q", domain.ErrInvalidFormat, format)
	}
}

func writeText(w io.Writer, r Result) error {
	var b strings.Builder
	for _, line := range r.Content {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if r.Stderr != "" {
		b.WriteString(stderrStyle.Render(strings.TrimRight(r.Stderr, "\n")))
		b.WriteByte('\n')
	}

	status := okStyle.Render(fmt.Sprintf("rc=%d", r.RC))
	if r.RC != 0 {
		status = failStyle.Render(fmt.Sprintf("rc=%d", r.RC))
	}
	b.WriteString(status)
	b.WriteString(mutedStyle.Render(fmt.Sprintf(" %s changed=%t req=%s", r.Mode, r.Changed, r.RequestID)))
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// Payload writes the SYSTSIN payload lines, numbering them when numbered is set.
func Payload(w io.Writer, lines []string, numbered bool) error {
	for i, line := range lines {
		var err error
		if numbered {
			_, err = fmt.Fprintf(w, "%s %s\n", mutedStyle.Render(fmt.Sprintf("%3d|%2d|", i+1, len([]rune(line)))), line)
		} else {
			_, err = fmt.Fprintln(w, line)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
