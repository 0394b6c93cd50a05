package domain

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Dir     string
	Stdin   string // Data written to the process's standard input (empty = none)
	Args    []string
}

// NewCommand creates an ExecCommand for a program and its arguments.
func NewCommand(program string, args []string, dir string) *ExecCommand {
	return &ExecCommand{
		Program: program,
		Args:    args,
		Dir:     dir,
	}
}

// NewShellCommand creates an ExecCommand that runs a script through sh -c.
func NewShellCommand(script, dir string) *ExecCommand {
	return NewCommand("sh", []string{"-c", script}, dir)
}

// WithStdin returns a copy of the command with stdin data attached.
func (c *ExecCommand) WithStdin(data string) *ExecCommand {
	cp := *c
	cp.Args = append([]string(nil), c.Args...)
	cp.Stdin = data
	return &cp
}

// ProcessResult is the raw outcome of one external process.
// Fields are ordered to minimize memory padding.
type ProcessResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}
