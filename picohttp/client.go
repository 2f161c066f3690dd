package picohttp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultDialTimeout      = 5 * time.Second
	DefaultMaxResponseBytes = 1 << 20
)

// Client performs single-exchange requests against a server that closes
// the connection after answering: dial, one write, read to EOF. It exists
// for probes and tests; it is not a general HTTP client.
type Client struct {
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MaxResponseBytes bounds how much of a response is read.
	MaxResponseBytes int
}

// ClientResponse is one parsed response.
type ClientResponse struct {
	StatusLine string
	Header     Header
	Body       []byte
}

// StatusCode extracts the numeric code from the status line, or 0.
func (r *ClientResponse) StatusCode() int {
	parts := strings.Fields(r.StatusLine)
	if len(parts) < 2 {
		return 0
	}
	code, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return code
}

// Get performs a GET for path against addr.
func (c *Client) Get(addr, path string) (*ClientResponse, error) {
	return c.Do(addr, &Request{Method: MethodGet, Path: path})
}

// Do sends req to addr and reads the close-delimited response. A dropped
// connection surfaces as ErrMalformedResponse since no bytes arrive.
func (c *Client) Do(addr string, req *Request) (*ClientResponse, error) {
	if req == nil {
		return nil, errors.New("picohttp: nil request")
	}
	conn, err := net.DialTimeout("tcp", addr, c.dialTimeout())
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(c.writeTimeout()))
	if _, err := conn.Write(appendRequest(nil, req)); err != nil {
		return nil, err
	}
	_ = conn.SetReadDeadline(time.Now().Add(c.readTimeout()))
	raw, err := io.ReadAll(io.LimitReader(conn, int64(c.maxResponseBytes())))
	if err != nil {
		return nil, err
	}
	return parseResponse(raw)
}

// appendRequest serializes req. Content-Length is written only when a body
// is present; the fixed-route server ignores it either way.
func appendRequest(dst []byte, req *Request) []byte {
	path := req.Path
	if path == "" {
		path = "/"
	}
	dst = append(dst, req.Method...)
	dst = append(dst, ' ')
	dst = append(dst, path...)
	dst = append(dst, " HTTP/1.1\r\n"...)
	for _, f := range req.Header {
		dst = append(dst, f.Name...)
		dst = append(dst, ": "...)
		dst = append(dst, f.Value...)
		dst = append(dst, '\r', '\n')
	}
	if len(req.Body) > 0 {
		dst = append(dst, "Content-Length: "...)
		dst = strconv.AppendInt(dst, int64(len(req.Body)), 10)
		dst = append(dst, '\r', '\n')
	}
	dst = append(dst, '\r', '\n')
	dst = append(dst, req.Body...)
	return dst
}

func parseResponse(raw []byte) (*ClientResponse, error) {
	head, body, ok := bytes.Cut(raw, []byte("\r\n\r\n"))
	if !ok {
		return nil, fmt.Errorf("%w: missing header terminator", ErrMalformedResponse)
	}
	lines := strings.Split(string(head), "\r\n")
	if !strings.HasPrefix(lines[0], "HTTP/1.") {
		return nil, fmt.Errorf("%w: status line %q", ErrMalformedResponse, lines[0])
	}
	res := &ClientResponse{StatusLine: lines[0], Body: body}
	for _, line := range lines[1:] {
		if name, value, ok := strings.Cut(line, ": "); ok {
			res.Header.Add(name, value)
		}
	}
	return res, nil
}

func (c *Client) dialTimeout() time.Duration {
	if c.DialTimeout <= 0 {
		return DefaultDialTimeout
	}
	return c.DialTimeout
}

func (c *Client) readTimeout() time.Duration {
	if c.ReadTimeout <= 0 {
		return DefaultReadTimeout
	}
	return c.ReadTimeout
}

func (c *Client) writeTimeout() time.Duration {
	if c.WriteTimeout <= 0 {
		return DefaultWriteTimeout
	}
	return c.WriteTimeout
}

func (c *Client) maxResponseBytes() int {
	if c.MaxResponseBytes <= 0 {
		return DefaultMaxResponseBytes
	}
	return c.MaxResponseBytes
}
