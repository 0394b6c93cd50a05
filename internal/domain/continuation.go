package domain

import "strings"

// Limits of the SYSTSIN input stream used by the authorized path.
const (
	// MaxInputLineLength is the longest physical line SYSTSIN accepts.
	MaxInputLineLength = 72
	// SegmentWidth is the number of command characters per continued line.
	SegmentWidth = 70
	// ContinuationMarker ends every physical line that continues on the next.
	ContinuationMarker = "-"
)

// NeedsContinuation reports whether command must be split across lines.
func NeedsContinuation(command string) bool {
	return len([]rune(command)) > MaxInputLineLength
}

// EncodeContinuation formats command for SYSTSIN.
//
// Commands up to MaxInputLineLength characters are returned unchanged. Longer
// commands are cut every SegmentWidth characters; each segment except the last
// is followed by ContinuationMarker and a newline. Cuts are positional and may
// land inside quoted strings or parenthesized operands.
func EncodeContinuation(command string) string {
	if !NeedsContinuation(command) {
		return command
	}
	segments := ContinuationSegments(command)
	var b strings.Builder
	for i, seg := range segments {
		b.WriteString(seg)
		if i < len(segments)-1 {
			b.WriteString(ContinuationMarker)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// ContinuationSegments cuts command into SegmentWidth-character pieces.
// The final piece holds the remainder and may be shorter.
func ContinuationSegments(command string) []string {
	runes := []rune(command)
	n := (len(runes) + SegmentWidth - 1) / SegmentWidth
	segments := make([]string, 0, n)
	for start := 0; start < len(runes); start += SegmentWidth {
		end := min(start+SegmentWidth, len(runes))
		segments = append(segments, string(runes[start:end]))
	}
	return segments
}

// DecodeContinuation joins continued lines back into one logical command.
func DecodeContinuation(payload string) string {
	lines := strings.Split(payload, "\n")
	var b strings.Builder
	for i, line := range lines {
		if i < len(lines)-1 {
			line = strings.TrimSuffix(line, ContinuationMarker)
		}
		b.WriteString(line)
	}
	return b.String()
}
