package picohttp

import "errors"

var (
	ErrMalformedRequest  = errors.New("picohttp: malformed request")
	ErrMalformedResponse = errors.New("picohttp: malformed response")
)
