package main

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/rs/zerolog"

	"dqx0.com/go/picoserve/internal/obs"
	"dqx0.com/go/picoserve/picohttp"
)

func main() {
	var (
		addr         = flag.String("addr", picohttp.DefaultAddr, "TCP listen address")
		token        = flag.String("token", picohttp.DefaultToken, "bearer token accepted on POST /echo")
		readTimeout  = flag.Duration("read-timeout", picohttp.DefaultReadTimeout, "per-connection read deadline")
		writeTimeout = flag.Duration("write-timeout", picohttp.DefaultWriteTimeout, "per-connection write deadline")
		maxConns     = flag.Int("max-conns", picohttp.DefaultMaxConns, "connections served at once")
		logLevel     = flag.String("log-level", "info", "minimum log level (debug, info, warn, error)")
	)
	flag.Parse()

	lvl, err := obs.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	srv := &picohttp.Server{
		Addr:         *addr,
		Handler:      picohttp.DefaultRouter(picohttp.StaticBearer{Token: *token}),
		ReadTimeout:  *readTimeout,
		WriteTimeout: *writeTimeout,
		MaxConns:     *maxConns,
		Logger:       obs.ZerologLogger{L: zl, Min: lvl},
	}

	// Bind failure is the one fatal error; everything later is logged
	// and survived.
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		zl.Error().Err(err).Str("addr", srv.Addr).Msg("bind failed")
		os.Exit(1)
	}
	fmt.Printf("Server listening on http://%s\n", ln.Addr())

	if err := srv.Serve(ln); err != nil && !errors.Is(err, net.ErrClosed) {
		zl.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
