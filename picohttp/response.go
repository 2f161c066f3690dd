package picohttp

import "dqx0.com/go/picoserve/picohttp/internal/http1"

// Status lines carry their trailing CRLF so serialization is a plain append.
const (
	StatusOK               = "HTTP/1.1 200 OK\r\n"
	StatusUnauthorized     = "HTTP/1.1 401 Unauthorized\r\n"
	StatusNotFound         = "HTTP/1.1 404 Not Found\r\n"
	StatusMethodNotAllowed = "HTTP/1.1 405 Method Not Allowed\r\n"
)

// Response accumulates a status line, headers, and a body, then serializes
// once. Headers go out in attachment order. Content-Length is computed from
// the final body at serialization time and is always appended after the
// attached headers; a caller-supplied Content-Length is not deduplicated
// against it. No other headers (Date, Server, Connection) are ever emitted.
type Response struct {
	statusLine string
	header     Header
	body       []byte
}

// NewResponse starts a response with the given status line. The trailing
// CRLF on the StatusXxx constants is optional here; serialization ensures
// exactly one.
func NewResponse(statusLine string) *Response {
	return &Response{statusLine: statusLine}
}

// WithHeader attaches one header field and returns the response for
// chaining.
func (r *Response) WithHeader(name, value string) *Response {
	r.header.Add(name, value)
	return r
}

// WithBody sets the body, replacing any previous one.
func (r *Response) WithBody(body []byte) *Response {
	r.body = body
	return r
}

// Bytes serializes the response into the exact byte sequence for the wire.
func (r *Response) Bytes() []byte {
	fields := make([][2]string, 0, len(r.header))
	for _, f := range r.header {
		fields = append(fields, [2]string{f.Name, f.Value})
	}
	return http1.AppendResponse(nil, r.statusLine, fields, r.body)
}
