package stream

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/openairsync/wbxml/codepages"
	"github.com/openairsync/wbxml/debug"
	"github.com/openairsync/wbxml/token"
)

// Sentinel results of NextTag. Both are negative, distinct from every real
// tag id, and distinct from each other: closing the current tag and
// finishing the document are never aliased.
const (
	// EndTag is returned by NextTag when the requested ending tag closes.
	EndTag = token.TagID(-1)
	// EndDocument is returned by NextTag when the stream ends while the
	// pending tag is the document itself.
	EndDocument = token.TagID(-2)
)

var errHandedOff = errors.New("decoder handed off")

// Decoder is a single-pass pull decoder over one tag stream. Exactly one
// caller drives a Decoder at a time; internal state is mutated in place
// with no synchronization. After any error the Decoder is terminal and
// repeats that error on every call.
type Decoder struct {
	cur   *cursor
	reg   *codepages.Registry
	stack tagStack

	hdr  Header
	page int // active code page

	// set when the most recently pushed frame has no body; the next
	// token request synthesizes its End without consuming input
	pendingEnd bool

	err error // terminal state

	traceFn func(string)
}

// NewDecoder attaches a decoder to r and consumes the document header. An
// exhausted source before the first header byte is ErrEmptyStream,
// distinct from mid-header truncation. The active page starts at 0.
func NewDecoder(r io.Reader, opts ...Option) (*Decoder, error) {
	d := newDecoder(newCursor(r), opts...)
	h, err := d.readHeader()
	if err != nil {
		d.err = err
		return nil, err
	}
	d.hdr = h
	return d, nil
}

// NewDecoderFrom hands prev's stream to a fresh decoder without
// re-consuming the document header, for sources carrying multiple
// independent sub-documents. The active page resets to 0. prev is left
// terminal and must not be used afterward.
func NewDecoderFrom(prev *Decoder, opts ...Option) (*Decoder, error) {
	if prev.err != nil {
		return nil, fmt.Errorf("stream: handoff from failed decoder: %w", prev.err)
	}
	d := newDecoder(prev.cur, opts...)
	d.hdr = prev.hdr
	prev.err = errHandedOff
	prev.cur = nil
	return d, nil
}

func newDecoder(cur *cursor, opts ...Option) *Decoder {
	o := &decodeOpts{}
	for _, opt := range opts {
		opt(o)
	}
	if o.registry == nil {
		o.registry = codepages.Builtin()
	}
	d := &Decoder{
		cur:     cur,
		reg:     o.registry,
		traceFn: o.trace,
	}
	if o.capture != nil {
		cur.capture = o.capture
	}
	cur.trace = d.trace
	return d
}

// Header returns the document preamble consumed at stream attachment, or
// the one inherited through handoff.
func (d *Decoder) Header() Header {
	return d.hdr
}

// Depth returns the number of currently open tags.
func (d *Decoder) Depth() int {
	return d.stack.depth()
}

// Page returns the active code page.
func (d *Decoder) Page() int {
	return d.page
}

// ReadToken returns the next primitive from the stream: a tag start, a tag
// end, a text or opaque payload, or EndOfStream. Code page switches are
// resolved transparently and never surface as tokens. A tag encoded
// without content yields its End on the following call without consuming
// input.
func (d *Decoder) ReadToken() (token.Token, error) {
	if d.err != nil {
		return token.Token{}, d.err
	}
	tok, err := d.readToken()
	if err != nil {
		d.err = err
		return token.Token{}, err
	}
	return tok, nil
}

func (d *Decoder) readToken() (token.Token, error) {
	if d.pendingEnd {
		d.pendingEnd = false
		return d.popEnd()
	}

	b, ok, err := d.cur.readByteOrEnd()
	if err != nil {
		return token.Token{}, err
	}
	if !ok {
		return token.Token{Type: token.EndOfStream}, nil
	}

	// A run of consecutive page switches collapses to its last page.
	for b == token.SwitchPage {
		pg, err := d.cur.readByte()
		if err != nil {
			return token.Token{}, err
		}
		if !d.reg.Valid(int(pg)) {
			// Out-of-range pages are invalid data from the peer.
			return token.Token{}, d.failf(ErrUnknownPage, "page %d", pg)
		}
		d.page = int(pg)
		if debug.Bytes() {
			d.trace(fmt.Sprintf("page %d (%s)", pg, d.reg.PageName(int(pg))))
		}
		if b, ok, err = d.cur.readByteOrEnd(); err != nil {
			return token.Token{}, err
		}
		if !ok {
			return token.Token{Type: token.EndOfStream}, nil
		}
	}

	switch b {
	case token.EndToken:
		return d.popEnd()

	case token.InlineString:
		s, err := d.cur.readString()
		if err != nil {
			return token.Token{}, err
		}
		d.trace(d.currentName() + ": " + strconv.Quote(s))
		return token.Token{Type: token.Text, Text: s}, nil

	case token.OpaqueData:
		n, err := d.cur.readUvarint()
		if err != nil {
			return token.Token{}, err
		}
		data, err := d.cur.readExact(n)
		if err != nil {
			return token.Token{}, err
		}
		d.trace(fmt.Sprintf("%s: (opaque:%d)", d.currentName(), n))
		return token.Token{Type: token.Opaque, Bytes: data}, nil

	default:
		tb := token.TagByte(b)
		if tb.Index() < token.TagBase {
			return token.Token{}, d.failf(ErrUnsupported, "global token %#02x", b)
		}
		if tb.HasAttributes() {
			return token.Token{}, d.failf(ErrUnsupported, "attributes on tag %#02x", b)
		}
		f := frame{
			id:         token.Compose(d.page, tb.Index()),
			name:       d.reg.Name(d.page, tb.Index()),
			hasContent: tb.HasContent(),
		}
		if f.hasContent {
			d.trace("<" + f.name + ">")
		} else {
			d.trace("<" + f.name + "/>")
		}
		d.stack.push(f)
		if !f.hasContent {
			d.pendingEnd = true
		}
		return token.Token{
			Type:       token.Start,
			Tag:        f.id,
			Name:       f.name,
			HasContent: f.hasContent,
		}, nil
	}
}

// popEnd closes the most recently opened tag.
func (d *Decoder) popEnd() (token.Token, error) {
	f, ok := d.stack.pop()
	if !ok {
		return token.Token{}, d.failf(ErrUnexpectedToken, "end token without open tag")
	}
	d.trace("</" + f.name + ">")
	return token.Token{Type: token.End, Tag: f.id, Name: f.name}, nil
}

// NextTag advances to the next start tag and returns its page-qualified
// id. When an end token closes the tag identified by ending, NextTag
// returns EndTag instead. At end of stream the result is EndDocument if
// ending is token.StartDocument, the normal way to finish a document; for
// any other pending tag the stream was truncated and the result is
// ErrMalformedEnd.
func (d *Decoder) NextTag(ending token.TagID) (token.TagID, error) {
	for {
		tok, err := d.ReadToken()
		if err != nil {
			return 0, err
		}
		switch tok.Type {
		case token.Start:
			return tok.Tag, nil
		case token.End:
			if tok.Tag.Index() == ending.Index() {
				return EndTag, nil
			}
		case token.EndOfStream:
			if ending.Index() == token.StartDocument.Index() {
				return EndDocument, nil
			}
			return 0, d.fail(ErrMalformedEnd, "")
		}
	}
}

// SkipTag discards everything through the end of the current tag,
// including arbitrarily nested children. It must be called while a tag is
// open.
func (d *Decoder) SkipTag() error {
	if d.err != nil {
		return d.err
	}
	f, ok := d.stack.top()
	if !ok {
		return d.fail(ErrUnexpectedToken, "skip with no open tag")
	}
	for {
		tok, err := d.ReadToken()
		if err != nil {
			return err
		}
		switch tok.Type {
		case token.End:
			if tok.Tag.Index() == f.id.Index() {
				return nil
			}
		case token.EndOfStream:
			return d.fail(ErrUnexpectedEOF, "skipping "+f.name)
		}
	}
}

// Value returns the text body of the current tag and consumes its end
// token. It must be called immediately after the tag's start token. A tag
// without a body yields the empty string, never an absent value.
func (d *Decoder) Value() (string, error) {
	if d.err != nil {
		return "", d.err
	}
	f, ok := d.stack.top()
	if !ok {
		return "", d.fail(ErrUnexpectedToken, "value with no open tag")
	}
	tok, err := d.ReadToken()
	if err != nil {
		return "", err
	}
	switch tok.Type {
	case token.End:
		d.trace("no value for " + f.name)
		return "", nil
	case token.Text:
	default:
		return "", d.failf(ErrUnexpectedToken, "expected text for %s, got %s", f.name, tok.Type)
	}
	val := tok.Text
	if err := d.requireEnd(f.name); err != nil {
		return "", err
	}
	return val, nil
}

// ValueBytes returns the body of the current tag as raw bytes, accepting
// either opaque or text content, and consumes the end token. It never
// returns nil: a tag without a body yields an empty slice.
func (d *Decoder) ValueBytes() ([]byte, error) {
	if d.err != nil {
		return nil, d.err
	}
	f, ok := d.stack.top()
	if !ok {
		return nil, d.fail(ErrUnexpectedToken, "value with no open tag")
	}
	tok, err := d.ReadToken()
	if err != nil {
		return nil, err
	}
	var val []byte
	switch tok.Type {
	case token.End:
		d.trace("no value for " + f.name)
		return []byte{}, nil
	case token.Opaque:
		val = tok.Bytes
	case token.Text:
		val = []byte(tok.Text)
	default:
		return nil, d.failf(ErrUnexpectedToken, "expected opaque or text for %s, got %s", f.name, tok.Type)
	}
	if err := d.requireEnd(f.name); err != nil {
		return nil, err
	}
	return val, nil
}

// ValueInt returns the body of the current tag parsed as a base-10
// integer. A tag without a body yields 0.
func (d *Decoder) ValueInt() (int, error) {
	name := d.currentName()
	val, err := d.Value()
	if err != nil {
		return 0, err
	}
	if val == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, d.failf(ErrValueFormat, "tag %s: %q is not an integer", name, val)
	}
	return n, nil
}

func (d *Decoder) requireEnd(name string) error {
	tok, err := d.ReadToken()
	if err != nil {
		return err
	}
	if tok.Type != token.End {
		return d.failf(ErrUnexpectedToken, "no end for %s, got %s", name, tok.Type)
	}
	return nil
}

func (d *Decoder) currentName() string {
	if f, ok := d.stack.top(); ok {
		return f.name
	}
	return "document"
}

// fail records a terminal error and returns it.
func (d *Decoder) fail(sentinel error, detail string) error {
	var off int64
	if d.cur != nil {
		off = d.cur.off
	}
	d.err = &ParseError{Err: sentinel, Offset: off, Detail: detail}
	return d.err
}

func (d *Decoder) failf(sentinel error, format string, args ...any) error {
	return d.fail(sentinel, fmt.Sprintf(format, args...))
}

// trace emits one diagnostic line, indented two spaces per open tag. With
// no injected sink, lines go to stderr only when WBX_DEBUG_TOKENS is set.
// Tracing never influences the parse.
func (d *Decoder) trace(s string) {
	if d.traceFn == nil && !debug.Tokens() {
		return
	}
	if i := strings.IndexByte(s, '\n'); i > 0 {
		s = s[:i]
	}
	line := strings.Repeat("  ", d.stack.depth()) + s
	if d.traceFn != nil {
		d.traceFn(line)
		return
	}
	debug.Logf("%s\n", line)
}
