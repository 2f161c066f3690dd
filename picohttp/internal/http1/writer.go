package http1

import (
	"strconv"
	"strings"
)

// AppendResponse appends one serialized response to dst and returns the
// extended slice. Field values are sanitized; names are emitted as given.
// Content-Length is always computed from body and appended after the
// caller's fields, never deduplicated against them.
func AppendResponse(dst []byte, statusLine string, fields [][2]string, body []byte) []byte {
	dst = append(dst, statusLine...)
	if !strings.HasSuffix(statusLine, "\r\n") {
		dst = append(dst, '\r', '\n')
	}
	for _, f := range fields {
		dst = append(dst, f[0]...)
		dst = append(dst, ':', ' ')
		dst = append(dst, sanitizeHeaderValue(f[1])...)
		dst = append(dst, '\r', '\n')
	}
	dst = append(dst, "Content-Length: "...)
	dst = strconv.AppendInt(dst, int64(len(body)), 10)
	dst = append(dst, '\r', '\n', '\r', '\n')
	dst = append(dst, body...)
	return dst
}

func sanitizeHeaderValue(v string) string {
	if v == "" {
		return v
	}
	// Remove CR/LF and other control chars except HTAB
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c == '\r' || c == '\n' || c == 0x7f {
			continue
		}
		if c < 0x20 && c != '\t' {
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
