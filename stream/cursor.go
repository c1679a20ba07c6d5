package stream

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/openairsync/wbxml/debug"
)

// cursor provides primitive reads over a sequential, single-pass byte
// source: single bytes, multi-byte integers, zero-terminated strings and
// fixed-length blobs. It tracks the absolute offset of the next byte and
// optionally mirrors every raw byte to a capture observer.
type cursor struct {
	r   *bufio.Reader
	off int64

	// observers; neither influences control flow or error outcomes
	capture io.Writer
	trace   func(string)
}

func newCursor(r io.Reader) *cursor {
	return &cursor{r: bufio.NewReader(r)}
}

// readByteOrEnd returns the next byte, or ok=false at a clean end of the
// source. Any other read failure maps to ErrUnexpectedEOF.
func (c *cursor) readByteOrEnd() (byte, bool, error) {
	b, err := c.r.ReadByte()
	if err == io.EOF {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, &ParseError{Err: ErrUnexpectedEOF, Offset: c.off, Detail: err.Error()}
	}
	c.off++
	if c.capture != nil {
		_, _ = c.capture.Write([]byte{b})
	}
	if c.trace != nil && debug.Bytes() {
		c.trace(fmt.Sprintf("byte: %#02x", b))
	}
	return b, true, nil
}

// readByte returns the next byte, failing with ErrUnexpectedEOF when the
// source is exhausted.
func (c *cursor) readByte() (byte, error) {
	b, ok, err := c.readByteOrEnd()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &ParseError{Err: ErrUnexpectedEOF, Offset: c.off}
	}
	return b, nil
}

// readUvarint reads a multi-byte unsigned integer: 7-bit groups, most
// significant group first, the high bit of each byte marking continuation.
// Values above 32 bits are malformed data; nothing in the format carries
// lengths that large and the accumulator must not overflow and go
// negative.
func (c *cursor) readUvarint() (int, error) {
	var v int64
	for {
		b, err := c.readByte()
		if err != nil {
			return 0, err
		}
		v = v<<7 | int64(b&0x7F)
		if v > math.MaxInt32 {
			return 0, &ParseError{Err: ErrUnsupported, Offset: c.off, Detail: "multi-byte integer overflows 32 bits"}
		}
		if b&0x80 == 0 {
			return int(v), nil
		}
	}
}

// initial blob allocation cap; a declared length never reserves more than
// this before the bytes actually arrive
const maxExactPrealloc = 1 << 10

// readExact reads exactly n bytes. The buffer grows with the read, so a
// corrupt length fails with ErrUnexpectedEOF instead of exhausting memory
// up front.
func (c *cursor) readExact(n int) ([]byte, error) {
	if n < 0 {
		return nil, &ParseError{Err: ErrUnsupported, Offset: c.off, Detail: fmt.Sprintf("negative length %d", n)}
	}
	buf := make([]byte, 0, min(n, maxExactPrealloc))
	for len(buf) < n {
		b, err := c.readByte()
		if err != nil {
			return nil, err
		}
		buf = append(buf, b)
	}
	return buf, nil
}

// readString reads bytes up to a zero terminator and returns them as a
// UTF-8 string. The terminator is consumed and not included.
func (c *cursor) readString() (string, error) {
	var buf []byte
	for {
		b, err := c.readByte()
		if err != nil {
			return "", err
		}
		if b == 0 {
			return string(buf), nil
		}
		buf = append(buf, b)
	}
}
