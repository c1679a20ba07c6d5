package stream

import (
	"io"

	"github.com/openairsync/wbxml/codepages"
)

// Option configures a Decoder.
type Option func(*decodeOpts)

type decodeOpts struct {
	registry *codepages.Registry
	capture  io.Writer
	trace    func(string)
}

// WithRegistry sets the tag table registry. The default is the builtin
// Exchange ActiveSync page set.
func WithRegistry(r *codepages.Registry) Option {
	return func(o *decodeOpts) {
		o.registry = r
	}
}

// WithCapture mirrors every raw byte read from the source to w, before any
// interpretation. Capture is purely observational: write errors are
// discarded and parsing is never affected. Useful for persisting live
// traffic as test fixtures.
func WithCapture(w io.Writer) Option {
	return func(o *decodeOpts) {
		o.capture = w
	}
}

// WithTrace sets the sink for indent-aware diagnostic trace lines. When
// unset, trace lines go to stderr only when WBX_DEBUG_TOKENS is set.
func WithTrace(f func(string)) Option {
	return func(o *decodeOpts) {
		o.trace = f
	}
}
