package stream

import "fmt"

// maxVersion is the newest encoding version this decoder understands.
// Newer versions are traced as a compatibility warning, not rejected.
const maxVersion = 3

// Header is the fixed document preamble: a version byte followed by three
// multi-byte integers. The public identifier and charset are read and
// discarded; UTF-8 is assumed throughout. A nonzero string table length is
// fatal, since string tables are outside the supported subset.
type Header struct {
	Version  byte
	PublicID int
	Charset  int
}

func (d *Decoder) readHeader() (Header, error) {
	var h Header
	b, ok, err := d.cur.readByteOrEnd()
	if err != nil {
		return h, err
	}
	if !ok {
		// No data at all, as opposed to a truncated header.
		return h, &ParseError{Err: ErrEmptyStream, Offset: 0}
	}
	h.Version = b
	if b > maxVersion {
		d.trace(fmt.Sprintf("version %d is newer than supported version %d", b, maxVersion))
	}
	if h.PublicID, err = d.cur.readUvarint(); err != nil {
		return h, err
	}
	if h.Charset, err = d.cur.readUvarint(); err != nil {
		return h, err
	}
	tableLen, err := d.cur.readUvarint()
	if err != nil {
		return h, err
	}
	if tableLen != 0 {
		return h, d.failf(ErrUnsupported, "string table (%d bytes)", tableLen)
	}
	return h, nil
}
