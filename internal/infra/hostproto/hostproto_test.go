package hostproto

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zos-automation/tso-command/internal/domain"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ModuleArgs
		wantErr string
	}{
		{
			name:  "command only",
			input: `{"command": "LISTCAT ENT('A.B')"}`,
			want:  ModuleArgs{Command: "LISTCAT ENT('A.B')"},
		},
		{
			name:  "auth true",
			input: `{"command": "LU TESTUSER", "auth": true}`,
			want:  ModuleArgs{Command: "LU TESTUSER", Auth: true},
		},
		{
			name:  "auth as yes string",
			input: `{"command": "LU TESTUSER", "auth": "yes"}`,
			want:  ModuleArgs{Command: "LU TESTUSER", Auth: true},
		},
		{
			name:  "auth null defaults to false",
			input: `{"command": "LU TESTUSER", "auth": null}`,
			want:  ModuleArgs{Command: "LU TESTUSER"},
		},
		{
			name:  "internal keys ignored",
			input: `{"command": "TIME", "_ansible_verbosity": 3, "_ansible_check_mode": true}`,
			want:  ModuleArgs{Command: "TIME", CheckMode: true},
		},
		{
			name:  "missing command decodes empty",
			input: `{"auth": false}`,
			want:  ModuleArgs{},
		},
		{
			name:  "null command decodes empty",
			input: `{"command": null}`,
			want:  ModuleArgs{},
		},
		{
			name:    "unsupported parameter",
			input:   `{"command": "TIME", "retries": 3, "timeout": 5}`,
			wantErr: "unsupported parameters: retries, timeout",
		},
		{
			name:    "invalid auth",
			input:   `{"command": "TIME", "auth": "maybe"}`,
			wantErr: "auth",
		},
		{
			name:    "command not a string",
			input:   `{"command": 12}`,
			wantErr: "expected a string",
		},
		{
			name:    "not json",
			input:   `command=TIME`,
			wantErr: "invalid module arguments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs([]byte(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidArgs)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeBool(t *testing.T) {
	for _, in := range []string{`true`, `1`, `"y"`, `"YES"`, `"on"`, `"True"`, `"t"`, `"1"`} {
		b, err := decodeBool(json.RawMessage(in))
		require.NoError(t, err, in)
		assert.True(t, b, in)
	}
	for _, in := range []string{`false`, `0`, `"n"`, `"No"`, `"off"`, `"false"`, `"f"`, `"0"`, `null`} {
		b, err := decodeBool(json.RawMessage(in))
		require.NoError(t, err, in)
		assert.False(t, b, in)
	}
	for _, in := range []string{`2`, `"maybe"`, `[]`} {
		_, err := decodeBool(json.RawMessage(in))
		assert.Error(t, err, in)
	}
}

func TestReadArgsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "args")
	require.NoError(t, os.WriteFile(path, []byte(`{"command": "TIME", "auth": true}`), 0o600))

	args, err := ReadArgsFile(path)
	require.NoError(t, err)
	assert.Equal(t, ModuleArgs{Command: "TIME", Auth: true}, args)

	_, err = ReadArgsFile(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWrite_SuccessResponse(t *testing.T) {
	res := domain.NewExecutionResult("line1\nline2\n", "", 0)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, NewResultResponse(res, true, "")))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, true, got["changed"])
	assert.Equal(t, float64(0), got["rc"])
	assert.Equal(t, []any{"line1", "line2"}, got["content"])
	assert.NotContains(t, got, "failed")
	assert.NotContains(t, got, "msg")
}

func TestWrite_FailedCommandResponse(t *testing.T) {
	res := domain.NewExecutionResult("IKJ56500I COMMAND NOT FOUND\n", "err", 255)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, NewResultResponse(res, false, `the TSO command "xxxxxx" execution failed`)))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, false, got["changed"])
	assert.Equal(t, true, got["failed"])
	assert.Equal(t, float64(255), got["rc"])
	assert.Equal(t, "err", got["stderr"])
	assert.Equal(t, `the TSO command "xxxxxx" execution failed`, got["msg"])
	assert.Equal(t, []any{"IKJ56500I COMMAND NOT FOUND"}, got["content"])
}

func TestWrite_FailureResponse(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, NewFailureResponse(domain.ErrEmptyCommand.Error(), "")))

	assert.JSONEq(t, `{"changed": false, "failed": true, "msg": "please provide a valid value for option \"command\""}`, buf.String())
}
