package picohttp

import (
	"context"
	"fmt"

	"dqx0.com/go/picoserve/picohttp/internal/http1"
)

// Request is one parsed inbound request.
//
// Method and Path are present whenever parsing succeeded; Path keeps any
// query string, undecoded. Header preserves wire order and duplicates.
// Body is the raw body fragment, possibly empty. A Request lives for one
// connection: built from the first read, dispatched once, then discarded.
type Request struct {
	Method string
	Path   string
	Header Header
	Body   []byte

	// RemoteAddr and RequestID are stamped by the server before dispatch.
	RemoteAddr string
	RequestID  string

	ctx context.Context
}

// Context returns the request's context. If nil, returns Background.
func (r *Request) Context() context.Context {
	if r == nil || r.ctx == nil {
		return context.Background()
	}
	return r.ctx
}

// WithContext returns a shallow copy of r with its context changed to ctx.
func (r *Request) WithContext(ctx context.Context) *Request {
	if r == nil {
		return nil
	}
	r2 := *r
	r2.ctx = ctx
	return &r2
}

// ParseRequest parses one raw buffer as read from the socket. Failures wrap
// ErrMalformedRequest; callers that only need the drop decision can test
// err != nil.
func ParseRequest(raw []byte) (*Request, error) {
	pr, err := http1.ParseRequest(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	h := make(Header, 0, len(pr.Fields))
	for _, f := range pr.Fields {
		h = append(h, Field{Name: f[0], Value: f[1]})
	}
	return &Request{
		Method: pr.Method,
		Path:   pr.Path,
		Header: h,
		Body:   pr.Body,
	}, nil
}
