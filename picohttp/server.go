package picohttp

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"dqx0.com/go/picoserve/internal/obs"
)

// Defaults applied when the corresponding Server field is zero.
const (
	DefaultAddr           = "127.0.0.1:8080"
	DefaultReadTimeout    = 5 * time.Second
	DefaultWriteTimeout   = 5 * time.Second
	DefaultMaxConns       = 256
	DefaultReadBufferSize = 1024
)

// Server accepts TCP connections and serves exactly one request/response
// exchange per connection, then closes it. There is no keep-alive: clients
// must reconnect for every request, and they can rely on the close to
// delimit the response.
//
// Each connection gets one bounded read; bytes beyond ReadBufferSize are
// never read. Unparseable input drops the connection without an answer.
// Read and write errors, timeouts included, are logged and swallowed; they
// never reach other connections or the accept loop.
type Server struct {
	Addr         string
	Handler      Handler
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MaxConns bounds how many connections are served at once. When all
	// slots are busy the accept loop waits instead of spawning more.
	MaxConns int

	// ReadBufferSize caps the single read per connection.
	ReadBufferSize int

	Logger obs.Logger
	Meter  obs.Meter
}

// ListenAndServe listens on Addr and serves until the listener fails.
func (s *Server) ListenAndServe() error {
	addr := s.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until ln is closed. A failed accept is
// logged and the loop continues; only a closed listener ends it.
func (s *Server) Serve(ln net.Listener) error {
	defer ln.Close()
	sem := make(chan struct{}, s.maxConns())
	for {
		c, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			s.logf(obs.Error, "accept: %v", err)
			continue
		}
		sem <- struct{}{}
		go func(c net.Conn) {
			defer func() { <-sem }()
			s.serveConn(c)
		}(c)
	}
}

func (s *Server) serveConn(c net.Conn) {
	defer c.Close()
	start := time.Now()
	s.metricCounter("picohttp_conns_total", 1)

	_ = c.SetReadDeadline(time.Now().Add(s.readTimeout()))
	buf := make([]byte, s.readBufferSize())
	n, err := c.Read(buf)
	if err != nil {
		s.logf(obs.Error, "read %s: %v", c.RemoteAddr(), err)
		s.metricCounter("picohttp_read_errors_total", 1)
		return
	}

	req, err := ParseRequest(buf[:n])
	if err != nil {
		// Silent drop: nothing is written back, not even a 400.
		s.logf(obs.Debug, "drop %s: %v", c.RemoteAddr(), err)
		s.metricCounter("picohttp_parse_failures_total", 1)
		return
	}
	req.RemoteAddr = c.RemoteAddr().String()
	req.RequestID = genID()
	req = req.WithContext(WithRequestID(context.Background(), req.RequestID))
	s.metricCounter("picohttp_requests_total", 1, obs.Label{Key: "method", Value: req.Method})

	h := s.Handler
	if h == nil {
		h = HandlerFunc(func(*Request) *Response { return NotFound() })
	}
	res := h.Serve(req)
	if res == nil {
		res = NotFound()
	}

	_ = c.SetWriteDeadline(time.Now().Add(s.writeTimeout()))
	if _, err := c.Write(res.Bytes()); err != nil {
		s.logf(obs.Error, "write %s: %v", c.RemoteAddr(), err)
		s.metricCounter("picohttp_write_errors_total", 1)
		return
	}

	status := statusOf(res.statusLine)
	s.logf(obs.Debug, "%s %s %s -> %s (%s)",
		req.RequestID, req.Method, req.Path, status, req.RemoteAddr)
	s.metricCounter("picohttp_responses_total", 1, obs.Label{Key: "status", Value: status})
	s.metricHistogram("picohttp_request_duration_ms", float64(time.Since(start).Milliseconds()),
		obs.Label{Key: "method", Value: req.Method})
}

func (s *Server) readTimeout() time.Duration {
	if s.ReadTimeout <= 0 {
		return DefaultReadTimeout
	}
	return s.ReadTimeout
}

func (s *Server) writeTimeout() time.Duration {
	if s.WriteTimeout <= 0 {
		return DefaultWriteTimeout
	}
	return s.WriteTimeout
}

func (s *Server) maxConns() int {
	if s.MaxConns <= 0 {
		return DefaultMaxConns
	}
	return s.MaxConns
}

func (s *Server) readBufferSize() int {
	if s.ReadBufferSize <= 0 {
		return DefaultReadBufferSize
	}
	return s.ReadBufferSize
}

func (s *Server) logf(level obs.Level, format string, args ...any) {
	lg := s.Logger
	if lg == nil {
		lg = obs.NopLogger{}
	}
	lg.Logf(level, format, args...)
}

func (s *Server) metricCounter(name string, value float64, labels ...obs.Label) {
	s.getMeter().Counter(name, value, labels...)
}

func (s *Server) metricHistogram(name string, value float64, labels ...obs.Label) {
	s.getMeter().Histogram(name, value, labels...)
}

func (s *Server) getMeter() obs.Meter {
	if s.Meter != nil {
		return s.Meter
	}
	return obs.NopMeter{}
}

// statusOf extracts the status code token from a status line for logs and
// labels.
func statusOf(line string) string {
	parts := strings.Fields(line)
	if len(parts) >= 2 {
		return parts[1]
	}
	return "unknown"
}
