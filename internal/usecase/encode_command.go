package usecase

import (
	"context"
	"strings"

	"github.com/zos-automation/tso-command/internal/domain"
)

// EncodeCommandInput contains the command to encode.
type EncodeCommandInput struct {
	Command string
}

// EncodeCommandOutput contains the SYSTSIN payload for the authorized path.
// Fields are ordered to minimize memory padding.
type EncodeCommandOutput struct {
	Payload   string   // Exact stdin data sent to the authorized helper
	Lines     []string // Payload split into physical lines
	Continued bool     // True when the command was split across lines
}

// EncodeCommand shows how a command would be written to SYSTSIN without
// running anything.
type EncodeCommand struct{}

// NewEncodeCommand creates a new EncodeCommand use case.
func NewEncodeCommand() *EncodeCommand {
	return &EncodeCommand{}
}

// Execute encodes the command.
func (uc *EncodeCommand) Execute(_ context.Context, in EncodeCommandInput) (*EncodeCommandOutput, error) {
	req, err := domain.NewCommandRequest(in.Command, true)
	if err != nil {
		return nil, err
	}

	payload := domain.EncodeContinuation(req.Command())
	return &EncodeCommandOutput{
		Payload:   payload,
		Lines:     strings.Split(payload, "\n"),
		Continued: domain.NeedsContinuation(req.Command()),
	}, nil
}
