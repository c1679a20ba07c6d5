package token

import "fmt"

// Global tokens. Only SwitchPage, EndToken, InlineString and OpaqueData
// are part of the supported subset; the others are listed so that rejected
// bytes can be named in diagnostics.
const (
	SwitchPage   byte = 0x00 // followed by one page-number byte
	EndToken     byte = 0x01 // closes the most recently opened tag
	Entity       byte = 0x02 // unsupported
	InlineString byte = 0x03 // followed by UTF-8 bytes and a zero terminator
	LiteralTag   byte = 0x04 // unsupported (string table reference)
	OpaqueData   byte = 0xC3 // followed by a varint length and raw bytes
)

// Tag byte layout: the low 6 bits carry the in-page index, bit 6 marks an
// attribute list (unsupported) and the high bit marks a tag with content.
// In-page indices below TagBase are reserved for global tokens.
const (
	CodeMask    byte = 0x3F
	AttrFlag    byte = 0x40
	ContentFlag byte = 0x80

	PageShift = 6
	TagBase   = 5
)

// TagByte is a raw tag token byte.
type TagByte byte

// Index returns the in-page tag index.
func (b TagByte) Index() int { return int(byte(b) & CodeMask) }

// HasContent reports whether the tag has a body.
func (b TagByte) HasContent() bool { return byte(b)&ContentFlag != 0 }

// HasAttributes reports whether the tag carries an attribute list.
func (b TagByte) HasAttributes() bool { return byte(b)&AttrFlag != 0 }

// TagID is a page-qualified tag identifier, (page << PageShift) | index.
// TagIDs are unique across all code pages.
type TagID int

// StartDocument is the ending marker denoting the document itself. Its
// in-page index is below TagBase, so it never collides with a real tag.
const StartDocument TagID = 0

// Compose builds the TagID for index on page.
func Compose(page, index int) TagID {
	return TagID(page<<PageShift | index)
}

func (id TagID) Page() int  { return int(id) >> PageShift }
func (id TagID) Index() int { return int(id) & int(CodeMask) }

func (id TagID) String() string {
	return fmt.Sprintf("%d/%#02x", id.Page(), id.Index())
}
