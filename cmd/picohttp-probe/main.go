package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"dqx0.com/go/picoserve/picohttp"
)

// picohttp-probe performs one GET against a running server and exits 0 on
// HTTP 200. Meant for liveness checks against /health.
func main() {
	var (
		addr    = flag.String("addr", picohttp.DefaultAddr, "server address")
		path    = flag.String("path", "/health", "path to probe")
		timeout = flag.Duration("timeout", 3*time.Second, "dial/read/write timeout")
	)
	flag.Parse()

	c := &picohttp.Client{
		DialTimeout:  *timeout,
		ReadTimeout:  *timeout,
		WriteTimeout: *timeout,
	}
	res, err := c.Get(*addr, *path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "probe %s%s: %v\n", *addr, *path, err)
		os.Exit(1)
	}
	fmt.Println(res.StatusCode(), string(res.Body))
	if res.StatusCode() != 200 {
		os.Exit(1)
	}
}
