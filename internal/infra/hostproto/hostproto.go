// Package hostproto implements the argument and response format exchanged
// with the orchestration host when tso-command runs as a module: the host
// passes a JSON file of parameters and reads one JSON object from stdout.
package hostproto

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/zos-automation/tso-command/internal/domain"
)

// Parameter names.
const (
	ParamCommand   = "command"
	ParamAuth      = "auth"
	checkModeParam = "_ansible_check_mode"
	internalPrefix = "_ansible_"
)

// ModuleArgs are the parameters of one module invocation.
// Fields are ordered to minimize memory padding.
type ModuleArgs struct {
	Command   string
	Auth      bool
	CheckMode bool
}

// ReadArgsFile reads and parses the host's argument file.
func ReadArgsFile(path string) (ModuleArgs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ModuleArgs{}, fmt.Errorf("read module arguments: %w", err)
	}
	return ParseArgs(data)
}

// ParseArgs decodes module parameters.
//
// Unknown user parameters are rejected. Host-internal keys (_ansible_*) are
// ignored except for check mode. A missing or null command decodes to an
// empty string and is left for request validation to reject.
func ParseArgs(data []byte) (ModuleArgs, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return ModuleArgs{}, fmt.Errorf("%w: %v", domain.ErrInvalidArgs, err)
	}

	var args ModuleArgs
	var unsupported []string
	for key, value := range raw {
		switch {
		case key == ParamCommand:
			s, err := decodeString(value)
			if err != nil {
				return ModuleArgs{}, fmt.Errorf("%w: %s: %v", domain.ErrInvalidArgs, key, err)
			}
			args.Command = s
		case key == ParamAuth:
			b, err := decodeBool(value)
			if err != nil {
				return ModuleArgs{}, fmt.Errorf("%w: %s: %v", domain.ErrInvalidArgs, key, err)
			}
			args.Auth = b
		case key == checkModeParam:
			b, err := decodeBool(value)
			if err == nil {
				args.CheckMode = b
			}
		case strings.HasPrefix(key, internalPrefix):
		default:
			unsupported = append(unsupported, key)
		}
	}

	if len(unsupported) > 0 {
		sort.Strings(unsupported)
		return ModuleArgs{}, fmt.Errorf("%w: unsupported parameters: %s",
			domain.ErrInvalidArgs, strings.Join(unsupported, ", "))
	}
	return args, nil
}

func decodeString(value json.RawMessage) (string, error) {
	var v any
	if err := json.Unmarshal(value, &v); err != nil {
		return "", err
	}
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	default:
		return "", fmt.Errorf("expected a string, got %T", v)
	}
}

// decodeBool accepts JSON booleans and the host's boolean spellings.
// A null value means the parameter was not set and decodes to false.
func decodeBool(value json.RawMessage) (bool, error) {
	var v any
	if err := json.Unmarshal(value, &v); err != nil {
		return false, err
	}
	switch b := v.(type) {
	case nil:
		return false, nil
	case bool:
		return b, nil
	case float64:
		switch b {
		case 1:
			return true, nil
		case 0:
			return false, nil
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "y", "yes", "on", "1", "true", "t":
			return true, nil
		case "n", "no", "off", "0", "false", "f", "":
			return false, nil
		}
	}
	return false, fmt.Errorf("%v is not a valid boolean", v)
}

// Response is the JSON object written back to the host.
// Fields are ordered to minimize memory padding.
type Response struct {
	RC        *int     `json:"rc,omitempty"`
	Msg       string   `json:"msg,omitempty"`
	Stderr    string   `json:"stderr,omitempty"`
	Exception string   `json:"exception,omitempty"`
	Content   []string `json:"content,omitempty"`
	Changed   bool     `json:"changed"`
	Failed    bool     `json:"failed,omitempty"`
}

// NewResultResponse describes a command that ran to completion.
// msg is set only when the command failed.
func NewResultResponse(res *domain.ExecutionResult, changed bool, msg string) Response {
	rc := res.ReturnCode
	content := res.StandardOutput
	if content == nil {
		content = []string{}
	}
	return Response{
		RC:      &rc,
		Content: content,
		Stderr:  res.StandardError,
		Changed: changed,
		Failed:  msg != "",
		Msg:     msg,
	}
}

// NewFailureResponse describes a request that failed before or while
// spawning the process.
func NewFailureResponse(msg, exception string) Response {
	return Response{
		Failed:    true,
		Msg:       msg,
		Exception: exception,
	}
}

// Write encodes resp as a single JSON object followed by a newline.
func Write(w io.Writer, resp Response) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(resp)
}
