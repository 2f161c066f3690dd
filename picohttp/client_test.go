package picohttp

import (
	"errors"
	"net"
	"testing"
	"time"
)

func TestClientGet(t *testing.T) {
	addr := startServer(t, &Server{Handler: DefaultRouter(nil)})

	var cl Client
	res, err := cl.Get(addr, "/health")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if res.StatusCode() != 200 {
		t.Fatalf("status = %d (%q)", res.StatusCode(), res.StatusLine)
	}
	if string(res.Body) != `{"status": "healthy"}` {
		t.Fatalf("body = %q", res.Body)
	}
	if got := res.Header.Get(HeaderContentType); got != "application/json" {
		t.Fatalf("content type = %q", got)
	}
	if got := res.Header.Get(HeaderContentLength); got != "21" {
		t.Fatalf("content length = %q", got)
	}
}

func TestClientDoEcho(t *testing.T) {
	addr := startServer(t, &Server{Handler: DefaultRouter(nil)})

	var cl Client
	req := &Request{
		Method: MethodPost,
		Path:   "/echo",
		Header: Header{{HeaderAuthorization, "Bearer " + DefaultToken}},
		Body:   []byte(`{"n":42}`),
	}
	res, err := cl.Do(addr, req)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if res.StatusCode() != 200 {
		t.Fatalf("status = %d", res.StatusCode())
	}
	if string(res.Body) != `{"n":42}` {
		t.Fatalf("body = %q", res.Body)
	}
}

func TestClientDoNilRequest(t *testing.T) {
	var cl Client
	if _, err := cl.Do("127.0.0.1:0", nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestClientDroppedConnection(t *testing.T) {
	// A listener that reads the request and closes without answering, as
	// the server does on a parse failure.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			buf := make([]byte, 1024)
			_, _ = c.Read(buf)
			c.Close()
		}
	}()

	cl := Client{ReadTimeout: time.Second}
	_, err = cl.Get(ln.Addr().String(), "/")
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("err = %v, want ErrMalformedResponse", err)
	}
}

func TestClientMaxResponseBytes(t *testing.T) {
	addr := startServer(t, &Server{Handler: DefaultRouter(nil)})

	cl := Client{MaxResponseBytes: 16}
	_, err := cl.Get(addr, "/")
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("err = %v, want ErrMalformedResponse on a truncated read", err)
	}
}

func TestClientStatusCode(t *testing.T) {
	cases := []struct {
		line string
		want int
	}{
		{"HTTP/1.1 200 OK\r\n", 200},
		{"HTTP/1.1 404 Not Found\r\n", 404},
		{"HTTP/1.1", 0},
		{"HTTP/1.1 abc OK", 0},
		{"", 0},
	}
	for _, tc := range cases {
		r := &ClientResponse{StatusLine: tc.line}
		if got := r.StatusCode(); got != tc.want {
			t.Fatalf("StatusCode(%q) = %d, want %d", tc.line, got, tc.want)
		}
	}
}

func TestAppendRequest(t *testing.T) {
	got := appendRequest(nil, &Request{
		Method: MethodPost,
		Path:   "/echo",
		Header: Header{{HeaderAuthorization, "Bearer t"}},
		Body:   []byte("hi"),
	})
	want := "POST /echo HTTP/1.1\r\nAuthorization: Bearer t\r\nContent-Length: 2\r\n\r\nhi"
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	// Empty path defaults to /; empty body carries no Content-Length.
	got = appendRequest(nil, &Request{Method: MethodGet})
	want = "GET / HTTP/1.1\r\n\r\n"
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseResponseMalformed(t *testing.T) {
	for _, raw := range []string{"", "HTTP/1.1 200 OK\r\n", "BOGUS line\r\n\r\nbody"} {
		if _, err := parseResponse([]byte(raw)); !errors.Is(err, ErrMalformedResponse) {
			t.Fatalf("parseResponse(%q) err = %v, want ErrMalformedResponse", raw, err)
		}
	}
}
