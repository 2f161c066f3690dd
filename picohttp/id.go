package picohttp

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

// genID returns a 16-char hex identifier for one request.
func genID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err == nil {
		return hex.EncodeToString(b[:])
	}
	// rand should not fail; keep IDs usable anyway
	return strconv.FormatInt(time.Now().UnixNano(), 16)
}
