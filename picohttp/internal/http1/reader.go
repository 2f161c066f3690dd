package http1

import (
	"io"
	"strings"
)

// ParsedRequest is a minimal representation parsed from the wire.
// Fields preserves header arrival order, duplicates included.
type ParsedRequest struct {
	Method string
	Path   string
	Fields [][2]string
	Body   []byte
}

// ParseRequest parses one raw buffer as read from the socket. The buffer
// is decoded lossily, so invalid byte sequences never fail the parse; only
// a request line with fewer than two tokens does.
func ParseRequest(raw []byte) (*ParsedRequest, error) {
	text := strings.ToValidUTF8(string(raw), "�")
	lines := strings.Split(text, "\r\n")

	parts := strings.Fields(lines[0])
	if len(parts) < 2 {
		// Extra tokens (the version, usually) are ignored, but method
		// and path must both be present.
		return nil, io.ErrUnexpectedEOF
	}
	pr := &ParsedRequest{
		Method: parts[0],
		Path:   parts[1],
	}

	i := 1
	for i < len(lines) && lines[i] != "" {
		if name, value, ok := strings.Cut(lines[i], ": "); ok {
			pr.Fields = append(pr.Fields, [2]string{name, value})
		}
		i++
	}
	// The body is the single line after the blank terminator, when one
	// exists. Anything past it is ignored.
	if i < len(lines)-1 {
		pr.Body = []byte(lines[i+1])
	}
	return pr, nil
}
