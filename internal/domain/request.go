package domain

import "strings"

// CommandRequest is a validated request to run one TSO command.
// It is immutable once constructed; use NewCommandRequest to build one.
type CommandRequest struct {
	command    string
	authorized bool
}

// NewCommandRequest validates the command text and returns a request.
// A command that is empty after trimming whitespace yields ErrEmptyCommand.
func NewCommandRequest(command string, authorized bool) (CommandRequest, error) {
	if strings.TrimSpace(command) == "" {
		return CommandRequest{}, ErrEmptyCommand
	}
	return CommandRequest{command: command, authorized: authorized}, nil
}

// Command returns the command text exactly as supplied.
func (r CommandRequest) Command() string {
	return r.command
}

// Authorized reports whether the command runs through the APF-authorized path.
func (r CommandRequest) Authorized() bool {
	return r.authorized
}

// Mode returns the invocation mode selected by the authorization flag.
func (r CommandRequest) Mode() InvocationMode {
	if r.authorized {
		return ModeAuthorized
	}
	return ModeUnauthorized
}

// InvocationMode names the external facility a command is dispatched to.
type InvocationMode string

// Invocation modes.
const (
	ModeUnauthorized InvocationMode = "unauthorized"
	ModeAuthorized   InvocationMode = "authorized"
)
