package stream

// Test document construction helpers. The header matches live traffic:
// version 3, public id 1, charset 0x6A (UTF-8), empty string table.

import (
	"testing"

	"github.com/openairsync/wbxml/codepages"
	"github.com/openairsync/wbxml/token"
)

const testDef = `
pages:
  - page: 0
    name: Greetings
    tags: [Greeting, Count, Blob, Wrapper]
  - page: 1
    name: Remote
    tags: [Envelope]
`

// in-page indices in the test registry
const (
	greetingIdx = token.TagBase + iota
	countIdx
	blobIdx
	wrapperIdx
)

func testRegistry(t *testing.T) *codepages.Registry {
	t.Helper()
	r, err := codepages.FromDefinition([]byte(testDef))
	if err != nil {
		t.Fatalf("test registry: %v", err)
	}
	return r
}

func doc(body ...[]byte) []byte {
	d := []byte{0x03, 0x01, 0x6A, 0x00}
	for _, b := range body {
		d = append(d, b...)
	}
	return d
}

// start encodes a tag token with content.
func start(index byte) []byte {
	return []byte{index | token.ContentFlag}
}

// selfClosed encodes a tag token without content.
func selfClosed(index byte) []byte {
	return []byte{index}
}

func inline(s string) []byte {
	b := []byte{token.InlineString}
	b = append(b, s...)
	return append(b, 0x00)
}

// opaque encodes an opaque token; only lengths below 128 are supported
// by this helper.
func opaque(data []byte) []byte {
	b := []byte{token.OpaqueData, byte(len(data))}
	return append(b, data...)
}

func switchPage(p byte) []byte {
	return []byte{token.SwitchPage, p}
}

func endTag() []byte {
	return []byte{token.EndToken}
}
