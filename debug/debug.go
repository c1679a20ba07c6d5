package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Bytes  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("WBX_DEBUG_TOKENS")
	d.Bytes = boolEnv("WBX_DEBUG_BYTES")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Tokens reports whether per-token tracing is enabled (WBX_DEBUG_TOKENS).
func Tokens() bool {
	return d.Tokens
}

// Bytes reports whether per-byte tracing is enabled (WBX_DEBUG_BYTES).
func Bytes() bool {
	return d.Bytes
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
