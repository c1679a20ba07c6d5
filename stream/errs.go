package stream

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyStream reports a source with no bytes at all ahead of the
	// document header. Callers distinguish it from truncation.
	ErrEmptyStream = errors.New("empty stream")
	// ErrUnexpectedEOF reports a source that ended mid-header, mid-token
	// or before an expected terminator. Read failures from the source
	// also map here.
	ErrUnexpectedEOF = errors.New("unexpected end of stream")
	// ErrMalformedEnd reports end of stream while a tag other than the
	// document itself was still pending.
	ErrMalformedEnd = errors.New("document ended inside open tag")
	// ErrUnknownPage reports a page switch outside the registry's bounds.
	ErrUnknownPage = errors.New("unknown code page")
	// ErrUnsupported reports encoding features outside the supported
	// subset: string tables, attributes, entities, processing
	// instructions.
	ErrUnsupported = errors.New("unsupported feature")
	// ErrUnexpectedToken reports a token incompatible with the requested
	// shape during value extraction, a missing end token, or malformed
	// nesting.
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrValueFormat reports a text payload that does not parse as the
	// requested scalar type.
	ErrValueFormat = errors.New("bad value")
)

// ParseError wraps one of the sentinel errors above with the stream offset
// at which it was detected. It matches the sentinel under errors.Is.
type ParseError struct {
	Err    error
	Offset int64
	Detail string
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s at offset %d", e.Err.Error(), e.Offset)
	}
	return fmt.Sprintf("%s: %s at offset %d", e.Err.Error(), e.Detail, e.Offset)
}
