// Package picohttp is a small HTTP/1.1 server that speaks directly over
// TCP: one bounded read per connection, a hand-rolled parser and response
// builder, fixed first-match-wins routes, and one response per connection.
// It trades protocol coverage for a core you can read in one sitting.
//
// Highlights
//   - Server: goroutine per connection behind an admission bound,
//     read/write deadlines, silent drop of unparseable input, logging and
//     metrics hooks.
//   - Parser: lossy text decode, CRLF line split, ordered duplicate-keeping
//     headers, line-positional body rule.
//   - Builder: chained header/body attachment, computed Content-Length,
//     single serialization.
//   - Routes: welcome page, bearer-token-gated echo behind a pluggable
//     TokenVerifier, health check.
//   - Client: single-exchange dial/write/read-to-EOF helper for probes and
//     tests.
//
// Quick start:
//
//	s := &picohttp.Server{
//	    Addr:    "127.0.0.1:8080",
//	    Handler: picohttp.DefaultRouter(picohttp.StaticBearer{Token: "secret-token"}),
//	}
//	if err := s.ListenAndServe(); err != nil { log.Fatal(err) }
//
// Custom routes reuse the same table:
//
//	rt := picohttp.NewRouter().HandleFunc("GET", "/ping", func(r *picohttp.Request) *picohttp.Response {
//	    return picohttp.NewResponse(picohttp.StatusOK).
//	        WithHeader("Content-Type", "text/plain").
//	        WithBody([]byte("pong"))
//	})
//	s.Handler = rt
//
// Not in scope: keep-alive, chunked transfer, TLS, content negotiation,
// and HTTP conformance beyond the happy path.
package picohttp
